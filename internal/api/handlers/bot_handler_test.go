package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"pionex-dashboard/internal/models"
	"pionex-dashboard/internal/service"
)

// ============================================================
// BotHandler Tests
// ============================================================

func TestBotHandler_GetBots(t *testing.T) {
	mock := &mockBotService{
		bots: []models.BotRecord{
			{Name: "grid-1", Pair: "BTC_USDT_PERP", Leverage: 5},
		},
	}
	handler := NewBotHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/bots", nil)
	rr := httptest.NewRecorder()
	handler.GetBots(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	body := rr.Body.String()
	if !strings.Contains(body, `"result":true`) {
		t.Errorf("body = %s", body)
	}
	if !strings.Contains(body, `"bots":[`) {
		t.Errorf("body = %s, want bots array", body)
	}
	if !strings.Contains(body, `"name":"grid-1"`) {
		t.Errorf("body = %s", body)
	}
}

func TestBotHandler_GetBots_EmptyList(t *testing.T) {
	handler := NewBotHandler(&mockBotService{})

	req := httptest.NewRequest(http.MethodGet, "/api/bots", nil)
	rr := httptest.NewRecorder()
	handler.GetBots(rr, req)

	if !strings.Contains(rr.Body.String(), `"bots":[]`) {
		t.Errorf("body = %s, want пустой массив, не null", rr.Body.String())
	}
}

func TestBotHandler_UpsertBot(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		upsertErr  error
		wantStatus int
		wantInBody string
	}{
		{
			name:       "success",
			body:       `{"name":"grid-1","pair":"BTC_USDT_PERP","leverage":5}`,
			wantStatus: http.StatusOK,
			wantInBody: `"name":"grid-1"`,
		},
		{
			name:       "missing name",
			body:       `{"pair":"BTC_USDT_PERP"}`,
			upsertErr:  service.ErrBotNameRequired,
			wantStatus: http.StatusBadRequest,
			wantInBody: "Bot name required",
		},
		{
			name:       "invalid json",
			body:       `{not json`,
			wantStatus: http.StatusBadRequest,
			wantInBody: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockBotService{upsertErr: tt.upsertErr}
			handler := NewBotHandler(mock)

			req := httptest.NewRequest(http.MethodPost, "/api/bots", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			handler.UpsertBot(rr, req)

			if rr.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rr.Code, tt.wantStatus)
			}
			if !strings.Contains(rr.Body.String(), tt.wantInBody) {
				t.Errorf("body = %s, want %q", rr.Body.String(), tt.wantInBody)
			}
		})
	}
}

func TestBotHandler_DeleteBot(t *testing.T) {
	tests := []struct {
		name       string
		botName    string
		deleteErr  error
		wantStatus int
	}{
		{name: "deleted", botName: "grid-1", wantStatus: http.StatusOK},
		{name: "not found", botName: "missing", deleteErr: service.ErrBotNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockBotService{deleteErr: tt.deleteErr}
			handler := NewBotHandler(mock)

			req := httptest.NewRequest(http.MethodDelete, "/api/bots/"+tt.botName, nil)
			req = mux.SetURLVars(req, map[string]string{"name": tt.botName})
			rr := httptest.NewRecorder()
			handler.DeleteBot(rr, req)

			if rr.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rr.Code, tt.wantStatus)
			}

			if tt.wantStatus == http.StatusOK {
				if mock.deleted != tt.botName {
					t.Errorf("deleted = %q, want %q", mock.deleted, tt.botName)
				}
				if !strings.Contains(rr.Body.String(), `"result":true`) {
					t.Errorf("body = %s", rr.Body.String())
				}
			} else if !strings.Contains(rr.Body.String(), "Bot not found") {
				t.Errorf("body = %s", rr.Body.String())
			}
		})
	}
}
