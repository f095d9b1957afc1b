package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// validator.go - валидация входных данных API
//
// Проверки намеренно мягкие: прокси не знает полного словаря символов
// Pionex, поэтому отсекает только заведомо мусорный ввод.

// MaxBotNameLength - максимальная длина имени бота
const MaxBotNameLength = 64

// ValidateBotName проверяет имя записи бота (ключ в хранилище)
func ValidateBotName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("bot name cannot be empty")
	}
	if len(name) > MaxBotNameLength {
		return fmt.Errorf("bot name exceeds %d characters", MaxBotNameLength)
	}
	return nil
}

// ValidateSymbol проверяет формат торгового символа (BTC_USDT, BTCUSDT)
// Пустой символ допустим - параметр опционален почти во всех маршрутах
func ValidateSymbol(symbol string) error {
	if symbol == "" {
		return nil
	}
	for _, r := range symbol {
		isUpper := r >= 'A' && r <= 'Z'
		isLower := r >= 'a' && r <= 'z'
		isDigit := r >= '0' && r <= '9'
		if !isUpper && !isLower && !isDigit && r != '_' && r != '-' {
			return fmt.Errorf("symbol contains invalid character %q", r)
		}
	}
	return nil
}

// ValidateLimit проверяет query-параметр limit, возвращая нормализованное
// строковое значение. Пустая строка дает значение по умолчанию
func ValidateLimit(raw string, def int) (string, error) {
	if raw == "" {
		return strconv.Itoa(def), nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return "", fmt.Errorf("limit must be an integer: %q", raw)
	}
	if n < 1 {
		return "", fmt.Errorf("limit must be positive, got %d", n)
	}
	return strconv.Itoa(n), nil
}
