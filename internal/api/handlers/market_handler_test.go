package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

// ============================================================
// MarketHandler Tests
// ============================================================

func TestMarketHandler_GetTickers(t *testing.T) {
	mock := &mockPionexAPI{response: []byte(`{"result":true,"data":{"symbols":[]}}`)}
	handler := NewMarketHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/market/tickers", nil)
	rr := httptest.NewRecorder()
	handler.GetTickers(rr, req)

	if mock.lastEndpoint != "/api/v1/common/symbols" {
		t.Errorf("endpoint = %q", mock.lastEndpoint)
	}
	if mock.lastParams["type"] != "PERP" {
		t.Errorf("params = %v, want type=PERP", mock.lastParams)
	}
}

func TestMarketHandler_GetPrice(t *testing.T) {
	mock := &mockPionexAPI{response: []byte(`{"result":true,"data":{"price":"61000"}}`)}
	handler := NewMarketHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/market/price/BTC_USDT_PERP", nil)
	req = mux.SetURLVars(req, map[string]string{"symbol": "BTC_USDT_PERP"})
	rr := httptest.NewRecorder()
	handler.GetPrice(rr, req)

	if mock.lastEndpoint != "/api/v1/market/ticker" {
		t.Errorf("endpoint = %q", mock.lastEndpoint)
	}
	if mock.lastParams["symbol"] != "BTC_USDT_PERP" {
		t.Errorf("params = %v", mock.lastParams)
	}
}

func TestMarketHandler_GetPrice_InvalidSymbol(t *testing.T) {
	mock := &mockPionexAPI{}
	handler := NewMarketHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/market/price/bad%20symbol", nil)
	req = mux.SetURLVars(req, map[string]string{"symbol": "bad symbol"})
	rr := httptest.NewRecorder()
	handler.GetPrice(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
	if mock.calls != 0 {
		t.Error("запрос к бирже не должен выполняться")
	}
}
