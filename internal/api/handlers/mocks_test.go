package handlers

import (
	"context"

	"pionex-dashboard/internal/models"
	"pionex-dashboard/internal/service"
)

// ============================================================
// Mocks
// ============================================================

// mockPionexAPI - ручной mock подписанного клиента биржи
type mockPionexAPI struct {
	configured bool

	// Ответ по умолчанию
	response []byte
	err      error

	// Ответы по конкретным параметрам (для составных запросов)
	responsesByType map[string][]byte

	// Записанные вызовы
	calls        int
	lastEndpoint string
	lastParams   map[string]string
}

func (m *mockPionexAPI) Configured() bool {
	return m.configured
}

func (m *mockPionexAPI) Get(ctx context.Context, endpoint string, params map[string]string) ([]byte, error) {
	m.calls++
	m.lastEndpoint = endpoint
	m.lastParams = params

	if m.err != nil {
		return nil, m.err
	}
	if m.responsesByType != nil {
		if resp, ok := m.responsesByType[params["type"]]; ok {
			return resp, nil
		}
	}
	return m.response, nil
}

// mockBotService - ручной mock сервиса ботов
type mockBotService struct {
	bots      []models.BotRecord
	upserted  models.BotRecord
	deleted   string
	listErr   error
	upsertErr error
	deleteErr error
}

func (m *mockBotService) List() ([]models.BotRecord, error) {
	return m.bots, m.listErr
}

func (m *mockBotService) Upsert(update service.BotUpdate) (models.BotRecord, error) {
	if m.upsertErr != nil {
		return models.BotRecord{}, m.upsertErr
	}
	m.upserted = models.BotRecord{
		Name:     update.Name,
		Pair:     update.Pair,
		Leverage: 1,
	}
	if update.Leverage != nil {
		m.upserted.Leverage = *update.Leverage
	}
	m.upserted.UpdatedAt = 1700000000000
	return m.upserted, nil
}

func (m *mockBotService) Delete(name string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = name
	return nil
}
