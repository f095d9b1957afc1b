package handlers

import (
	"net/http"
)

// HealthResponse - ответ health check
type HealthResponse struct {
	Status     string `json:"status"`
	Configured bool   `json:"configured"`
	Result     bool   `json:"result"`
}

// TestResponse - диагностический ответ /api/test
type TestResponse struct {
	Result     bool   `json:"result"`
	Message    string `json:"message"`
	HasKey     bool   `json:"has_key"`
	HasSecret  bool   `json:"has_secret"`
	KeyPreview string `json:"key_preview"`
}

// HealthHandler отвечает за служебные endpoints дашборда
//
// Endpoints:
// - GET /api/health - health check и статус конфигурации ключей
// - GET /api/test - диагностика наличия API ключей
//
// Ни один из этих маршрутов не обращается к бирже.
type HealthHandler struct {
	hasKey     bool
	hasSecret  bool
	keyPreview string
}

// NewHealthHandler создает новый HealthHandler.
// Ключ сохраняется только как короткий префикс для диагностики.
func NewHealthHandler(apiKey, apiSecret string) *HealthHandler {
	h := &HealthHandler{
		hasKey:    apiKey != "",
		hasSecret: apiSecret != "",
	}
	if apiKey != "" {
		n := 8
		if len(apiKey) < n {
			n = len(apiKey)
		}
		h.keyPreview = apiKey[:n] + "..."
	}
	return h
}

// Health возвращает статус сервера и признак наличия ключей
// GET /api/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, HealthResponse{
		Status:     "ok",
		Configured: h.hasKey && h.hasSecret,
		Result:     true,
	})
}

// Test возвращает диагностику конфигурации API ключей
// GET /api/test
func (h *HealthHandler) Test(w http.ResponseWriter, r *http.Request) {
	preview := h.keyPreview
	if preview == "" {
		preview = "not set"
	}

	respondWithJSON(w, http.StatusOK, TestResponse{
		Result:     true,
		Message:    "API is working",
		HasKey:     h.hasKey,
		HasSecret:  h.hasSecret,
		KeyPreview: preview,
	})
}
