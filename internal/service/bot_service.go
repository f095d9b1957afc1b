// Package service содержит бизнес-логику работы с записями ботов.
package service

import (
	"errors"
	"strings"

	"pionex-dashboard/internal/metrics"
	"pionex-dashboard/internal/models"
	"pionex-dashboard/internal/repository"
	"pionex-dashboard/internal/websocket"
	"pionex-dashboard/pkg/utils"
)

// Ошибки сервиса ботов
var (
	ErrBotNameRequired = errors.New("bot name required")
	ErrBotNotFound     = repository.ErrBotNotFound
)

// BotUpdate - входные данные создания или обновления бота.
// Указатели отличают "поле не прислано" от нулевого значения.
type BotUpdate struct {
	Name          string   `json:"name"`
	Pair          string   `json:"pair"`
	Leverage      *float64 `json:"leverage"`
	Investment    *float64 `json:"investment"`
	Profit        *float64 `json:"profit"`
	ProfitPercent *float64 `json:"profitPercent"`
	LastPrice     *float64 `json:"lastPrice"`
	MarkPrice     *float64 `json:"markPrice"`
	LiqPrice      *float64 `json:"liqPrice"`
}

// BotService управляет записями ботов: валидация, значения по
// умолчанию, простановка времени обновления, рассылка изменений.
type BotService struct {
	repo   repository.BotRepository
	hub    *websocket.Hub
	logger *utils.Logger
	now    func() int64 // подменяется в тестах
}

// NewBotService создает сервис поверх репозитория.
// hub может быть nil, тогда рассылка обновлений отключена.
func NewBotService(repo repository.BotRepository, hub *websocket.Hub, logger *utils.Logger) *BotService {
	svc := &BotService{
		repo:   repo,
		hub:    hub,
		logger: logger.WithComponent("bot_service"),
		now:    utils.NowMillis,
	}
	svc.refreshGauge()
	return svc
}

// List возвращает все записи ботов
func (s *BotService) List() ([]models.BotRecord, error) {
	return s.repo.GetAll()
}

// Upsert создает запись или перезаписывает одноименную.
// Отсутствующие поля получают значения по умолчанию, updatedAt
// проставляется текущим временем.
func (s *BotService) Upsert(update BotUpdate) (models.BotRecord, error) {
	// Имя нормализуется до ключа хранилища: " grid-1 " и "grid-1"
	// должны указывать на одну запись
	name := strings.TrimSpace(update.Name)
	if err := utils.ValidateBotName(name); err != nil {
		return models.BotRecord{}, ErrBotNameRequired
	}

	bot := models.BotRecord{
		Name:          name,
		Pair:          update.Pair,
		Leverage:      valueOr(update.Leverage, 1),
		Investment:    valueOr(update.Investment, 0),
		Profit:        valueOr(update.Profit, 0),
		ProfitPercent: valueOr(update.ProfitPercent, 0),
		LastPrice:     valueOr(update.LastPrice, 0),
		MarkPrice:     valueOr(update.MarkPrice, 0),
		LiqPrice:      update.LiqPrice,
		UpdatedAt:     s.now(),
	}

	if err := s.repo.Upsert(bot); err != nil {
		return models.BotRecord{}, err
	}

	s.logger.Info("bot record upserted",
		utils.Bot(bot.Name),
		utils.Symbol(bot.Pair),
	)

	if s.hub != nil {
		s.hub.BroadcastBotUpdate(bot)
	}
	s.refreshGauge()

	return bot, nil
}

// Delete удаляет запись по имени
func (s *BotService) Delete(name string) error {
	name = strings.TrimSpace(name)
	if err := s.repo.Delete(name); err != nil {
		return err
	}

	s.logger.Info("bot record deleted", utils.Bot(name))

	if s.hub != nil {
		s.hub.BroadcastBotDelete(name)
	}
	s.refreshGauge()

	return nil
}

// refreshGauge обновляет метрику числа записей
func (s *BotService) refreshGauge() {
	if count, err := s.repo.Count(); err == nil {
		metrics.BotRecords.Set(float64(count))
	}
}

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
