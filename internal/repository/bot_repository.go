// Package repository реализует хранилища записей ботов.
package repository

import (
	"errors"

	"pionex-dashboard/internal/models"
)

// Ошибки репозитория ботов
var (
	ErrBotNotFound = errors.New("bot not found")
)

// BotRepository - хранилище записей ботов по уникальному имени.
// Реализации: in-memory (по умолчанию) и PostgreSQL.
type BotRepository interface {
	// GetAll возвращает все записи
	GetAll() ([]models.BotRecord, error)

	// GetByName возвращает запись по имени или ErrBotNotFound
	GetByName(name string) (models.BotRecord, error)

	// Upsert создает запись или перезаписывает существующую с тем же именем
	Upsert(bot models.BotRecord) error

	// Delete удаляет запись по имени или возвращает ErrBotNotFound
	Delete(name string) error

	// Count возвращает число записей
	Count() (int, error)
}
