package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"pionex-dashboard/pkg/utils"
)

// Upstream endpoints рыночных данных Pionex
const (
	endpointCommonSymbols = "/api/v1/common/symbols"
	endpointMarketTicker  = "/api/v1/market/ticker"
)

// MarketHandler проксирует запросы рыночных данных Pionex
//
// Endpoints:
// - GET /api/market/tickers - список PERP символов (symbol опционален)
// - GET /api/market/price/{symbol} - текущая цена символа
type MarketHandler struct {
	client PionexAPI
}

// NewMarketHandler создает новый MarketHandler
func NewMarketHandler(client PionexAPI) *MarketHandler {
	return &MarketHandler{client: client}
}

// GetTickers возвращает описания PERP символов
// GET /api/market/tickers?symbol=BTC_USDT_PERP
func (h *MarketHandler) GetTickers(w http.ResponseWriter, r *http.Request) {
	params := map[string]string{"type": "PERP"}

	symbol, ok := symbolParam(w, r)
	if !ok {
		return
	}
	if symbol != "" {
		params["symbol"] = symbol
	}

	body, err := h.client.Get(r.Context(), endpointCommonSymbols, params)
	proxyResult(w, body, err)
}

// GetPrice возвращает текущую цену символа
// GET /api/market/price/{symbol}
func (h *MarketHandler) GetPrice(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]
	if err := utils.ValidateSymbol(symbol); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	body, err := h.client.Get(r.Context(), endpointMarketTicker, map[string]string{"symbol": symbol})
	proxyResult(w, body, err)
}
