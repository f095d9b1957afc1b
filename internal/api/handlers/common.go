// Package handlers содержит HTTP handlers дашборда.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"pionex-dashboard/internal/pionex"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MaxRequestBodySize ограничение размера тела запроса (1 MB)
const MaxRequestBodySize = 1 << 20 // 1 MB

// ErrorEnvelope - формат ответа об ошибке, совместимый с frontend
// дашборда: result всегда false, error содержит человекочитаемый текст
type ErrorEnvelope struct {
	Result bool   `json:"result"`
	Error  string `json:"error"`
}

// SuccessEnvelope - формат успешного ответа для локальных операций
type SuccessEnvelope struct {
	Result bool        `json:"result"`
	Data   interface{} `json:"data,omitempty"`
}

// PionexAPI - подписанный доступ к бирже, нужный проксирующим handlers
type PionexAPI interface {
	Configured() bool
	Get(ctx context.Context, endpoint string, params map[string]string) ([]byte, error)
}

// respondWithJSON отправляет JSON ответ
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"result":false,"error":"Failed to marshal response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithError отправляет конверт ошибки с заданным HTTP кодом
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorEnvelope{Result: false, Error: message})
}

// respondWithRawJSON отдает тело ответа биржи как есть
func respondWithRawJSON(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// respondWithUpstreamError преобразует ошибку запроса к бирже в конверт.
// HTTP статус ответа остается 200: для frontend признак ошибки - поле
// result, а не статус код, как и в остальных проксируемых ответах.
func respondWithUpstreamError(w http.ResponseWriter, err error) {
	respondWithJSON(w, http.StatusOK, ErrorEnvelope{
		Result: false,
		Error:  upstreamErrorMessage(err),
	})
}

// upstreamErrorMessage возвращает текст ошибки для конверта
func upstreamErrorMessage(err error) string {
	var upstreamErr *pionex.UpstreamError
	switch {
	case errors.Is(err, pionex.ErrNotConfigured):
		return "API credentials not configured"
	case errors.As(err, &upstreamErr):
		return fmt.Sprintf("HTTP %d: %s", upstreamErr.Status, string(upstreamErr.Body))
	default:
		return err.Error()
	}
}

// proxyResult отдает успешный ответ биржи или конверт ошибки
func proxyResult(w http.ResponseWriter, body []byte, err error) {
	if err != nil {
		respondWithUpstreamError(w, err)
		return
	}
	if !json.Valid(body) {
		respondWithUpstreamError(w, fmt.Errorf("invalid JSON from upstream"))
		return
	}
	respondWithRawJSON(w, body)
}
