package utils

import (
	"strconv"
	"time"
)

// time.go - утилиты для работы с millisecond-таймстампами
//
// Pionex API везде оперирует временем в миллисекундах Unix-эпохи:
// параметр timestamp в подписанных запросах и поле updatedAt у записей
// ботов. Эти функции - единственное место конвертации.

// NowMillis возвращает текущее время в миллисекундах Unix-эпохи
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// MillisFrom возвращает время t в миллисекундах Unix-эпохи
func MillisFrom(t time.Time) int64 {
	return t.UnixMilli()
}

// TimeFromMillis восстанавливает time.Time из миллисекунд (UTC)
func TimeFromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// FormatMillis форматирует millisecond-таймстамп как десятичную строку
// для подстановки в query string
func FormatMillis(ms int64) string {
	return strconv.FormatInt(ms, 10)
}
