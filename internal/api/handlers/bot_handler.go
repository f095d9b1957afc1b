package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"pionex-dashboard/internal/models"
	"pionex-dashboard/internal/service"
)

// BotListData - payload списка ботов
type BotListData struct {
	Bots []models.BotRecord `json:"bots"`
}

// BotServiceInterface - операции над записями ботов, нужные handler
type BotServiceInterface interface {
	List() ([]models.BotRecord, error)
	Upsert(update service.BotUpdate) (models.BotRecord, error)
	Delete(name string) error
}

// BotHandler отвечает за вручную вводимые данные ботов
//
// Endpoints:
// - GET /api/bots - список записей
// - POST /api/bots - создание или перезапись записи по имени
// - DELETE /api/bots/{name} - удаление записи
//
// Эти маршруты не обращаются к бирже: Pionex не отдает состояние
// ботов через публичный API, записи вводятся пользователем вручную.
type BotHandler struct {
	botService BotServiceInterface
}

// NewBotHandler создает новый BotHandler
func NewBotHandler(botService BotServiceInterface) *BotHandler {
	return &BotHandler{botService: botService}
}

// GetBots возвращает все записи ботов
// GET /api/bots
func (h *BotHandler) GetBots(w http.ResponseWriter, r *http.Request) {
	bots, err := h.botService.List()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if bots == nil {
		bots = []models.BotRecord{}
	}

	respondWithJSON(w, http.StatusOK, SuccessEnvelope{
		Result: true,
		Data:   BotListData{Bots: bots},
	})
}

// UpsertBot создает или перезаписывает запись бота
// POST /api/bots
func (h *BotHandler) UpsertBot(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBodySize)

	var update service.BotUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	bot, err := h.botService.Upsert(update)
	if err != nil {
		if errors.Is(err, service.ErrBotNameRequired) {
			respondWithError(w, http.StatusBadRequest, "Bot name required")
			return
		}
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, SuccessEnvelope{Result: true, Data: bot})
}

// DeleteBot удаляет запись бота по имени
// DELETE /api/bots/{name}
func (h *BotHandler) DeleteBot(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	if err := h.botService.Delete(name); err != nil {
		if errors.Is(err, service.ErrBotNotFound) {
			respondWithError(w, http.StatusNotFound, "Bot not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, SuccessEnvelope{Result: true})
}
