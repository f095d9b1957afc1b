package handlers

import (
	jsonlib "encoding/json"
	"net/http"
)

// BalancesResponse - составной ответ /api/balances.
// spot и futures содержат сырые ответы биржи либо конверты ошибок,
// независимо друг от друга: отказ одного запроса не скрывает второй.
type BalancesResponse struct {
	Result  bool               `json:"result"`
	Spot    jsonlib.RawMessage `json:"spot"`
	Futures jsonlib.RawMessage `json:"futures"`
}

// AccountHandler проксирует запросы балансов аккаунта
//
// Endpoints:
// - GET /api/balance - спотовый баланс
// - GET /api/balances - спотовый и фьючерсный балансы одним ответом
type AccountHandler struct {
	client PionexAPI
}

// NewAccountHandler создает новый AccountHandler
func NewAccountHandler(client PionexAPI) *AccountHandler {
	return &AccountHandler{client: client}
}

// GetBalance возвращает спотовый баланс
// GET /api/balance
func (h *AccountHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	body, err := h.client.Get(r.Context(), endpointAccountBalances, nil)
	proxyResult(w, body, err)
}

// GetBalances возвращает спотовый и фьючерсный балансы
// GET /api/balances
func (h *AccountHandler) GetBalances(w http.ResponseWriter, r *http.Request) {
	spot := h.fetchSection(r, "SPOT")
	futures := h.fetchSection(r, "PERP")

	respondWithJSON(w, http.StatusOK, BalancesResponse{
		Result:  true,
		Spot:    spot,
		Futures: futures,
	})
}

// fetchSection запрашивает один тип баланса, ошибка превращается
// в конверт внутри соответствующей секции ответа
func (h *AccountHandler) fetchSection(r *http.Request, accountType string) jsonlib.RawMessage {
	body, err := h.client.Get(r.Context(), endpointAccountBalances, map[string]string{"type": accountType})
	if err != nil {
		raw, _ := json.Marshal(ErrorEnvelope{Result: false, Error: upstreamErrorMessage(err)})
		return raw
	}
	if !json.Valid(body) {
		raw, _ := json.Marshal(ErrorEnvelope{Result: false, Error: "invalid JSON from upstream"})
		return raw
	}
	return body
}
