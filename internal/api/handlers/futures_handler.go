package handlers

import (
	"net/http"

	"pionex-dashboard/pkg/utils"
)

// Upstream endpoints фьючерсного API Pionex
const (
	endpointAccountBalances  = "/api/v1/account/balances"
	endpointPositions        = "/api/v1/futures/positions"
	endpointPositionsHistory = "/api/v1/futures/positions/history"
	endpointOrders           = "/api/v1/futures/orders"
	endpointOrdersHistory    = "/api/v1/futures/orders/history"
	endpointFunding          = "/api/v1/futures/funding"
)

// defaultHistoryLimit - limit по умолчанию для исторических маршрутов
const defaultHistoryLimit = 100

// FuturesHandler проксирует запросы фьючерсного API Pionex
//
// Endpoints:
// - GET /api/futures/balance - баланс фьючерсного аккаунта (type=PERP)
// - GET /api/futures/positions - открытые позиции
// - GET /api/futures/positions/history - история позиций (limit, symbol)
// - GET /api/futures/orders - открытые ордера (symbol)
// - GET /api/futures/orders/history - история ордеров (limit, symbol)
// - GET /api/futures/funding - история funding fee (limit, symbol)
//
// Все маршруты отдают JSON биржи без изменений. Ошибки любого рода
// превращаются в конверт {"result":false,"error":...} со статусом 200.
type FuturesHandler struct {
	client PionexAPI
}

// NewFuturesHandler создает новый FuturesHandler
func NewFuturesHandler(client PionexAPI) *FuturesHandler {
	return &FuturesHandler{client: client}
}

// GetBalance возвращает баланс фьючерсного аккаунта
// GET /api/futures/balance
func (h *FuturesHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	body, err := h.client.Get(r.Context(), endpointAccountBalances, map[string]string{"type": "PERP"})
	proxyResult(w, body, err)
}

// GetPositions возвращает открытые фьючерсные позиции
// GET /api/futures/positions
func (h *FuturesHandler) GetPositions(w http.ResponseWriter, r *http.Request) {
	body, err := h.client.Get(r.Context(), endpointPositions, nil)
	proxyResult(w, body, err)
}

// GetPositionHistory возвращает историю позиций
// GET /api/futures/positions/history?limit=100&symbol=BTC_USDT_PERP
func (h *FuturesHandler) GetPositionHistory(w http.ResponseWriter, r *http.Request) {
	params, ok := historyParams(w, r)
	if !ok {
		return
	}

	body, err := h.client.Get(r.Context(), endpointPositionsHistory, params)
	proxyResult(w, body, err)
}

// GetOrders возвращает открытые ордера
// GET /api/futures/orders?symbol=BTC_USDT_PERP
func (h *FuturesHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	params := map[string]string{}
	if symbol, ok := symbolParam(w, r); ok {
		if symbol != "" {
			params["symbol"] = symbol
		}
	} else {
		return
	}

	body, err := h.client.Get(r.Context(), endpointOrders, params)
	proxyResult(w, body, err)
}

// GetOrderHistory возвращает историю ордеров
// GET /api/futures/orders/history?limit=100&symbol=BTC_USDT_PERP
func (h *FuturesHandler) GetOrderHistory(w http.ResponseWriter, r *http.Request) {
	params, ok := historyParams(w, r)
	if !ok {
		return
	}

	body, err := h.client.Get(r.Context(), endpointOrdersHistory, params)
	proxyResult(w, body, err)
}

// GetFunding возвращает историю funding fee
// GET /api/futures/funding?limit=100&symbol=BTC_USDT_PERP
func (h *FuturesHandler) GetFunding(w http.ResponseWriter, r *http.Request) {
	params, ok := historyParams(w, r)
	if !ok {
		return
	}

	body, err := h.client.Get(r.Context(), endpointFunding, params)
	proxyResult(w, body, err)
}

// historyParams собирает общие query-параметры исторических маршрутов
func historyParams(w http.ResponseWriter, r *http.Request) (map[string]string, bool) {
	limit, err := utils.ValidateLimit(r.URL.Query().Get("limit"), defaultHistoryLimit)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	params := map[string]string{"limit": limit}

	symbol, ok := symbolParam(w, r)
	if !ok {
		return nil, false
	}
	if symbol != "" {
		params["symbol"] = symbol
	}

	return params, true
}

// symbolParam читает и валидирует опциональный параметр symbol
func symbolParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	symbol := r.URL.Query().Get("symbol")
	if err := utils.ValidateSymbol(symbol); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return symbol, true
}
