// Package api собирает HTTP маршруты сервера дашборда.
package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pionex-dashboard/internal/api/handlers"
	"pionex-dashboard/internal/api/middleware"
	"pionex-dashboard/internal/websocket"
)

// Dependencies содержит все зависимости для API handlers
type Dependencies struct {
	Pionex     handlers.PionexAPI
	BotService handlers.BotServiceInterface
	Hub        *websocket.Hub

	// Для health/test endpoints и Basic auth
	APIKey                string
	APISecret             string
	DashboardUser         string
	DashboardPasswordHash string

	// Разрешенные origins для CORS и WebSocket, пустой список = все
	AllowedOrigins []string
}

// SetupRoutes настраивает все HTTP маршруты приложения
//
// Структура маршрутов:
//
// /api/
//
//	├── GET /health - статус сервера и конфигурации ключей
//	├── GET /test - диагностика API ключей
//	├── GET /balance - спотовый баланс
//	├── GET /balances - спотовый и фьючерсный балансы
//	├── /futures/
//	│   ├── GET /balance - баланс фьючерсного аккаунта
//	│   ├── GET /positions - открытые позиции
//	│   ├── GET /positions/history - история позиций
//	│   ├── GET /orders - открытые ордера
//	│   ├── GET /orders/history - история ордеров
//	│   └── GET /funding - история funding fee
//	├── /market/
//	│   ├── GET /tickers - список PERP символов
//	│   └── GET /price/{symbol} - текущая цена
//	└── /bots/
//	    ├── GET / - список записей ботов
//	    ├── POST / - создание или перезапись записи
//	    └── DELETE /{name} - удаление записи
//
// /ws/stream - WebSocket для real-time обновлений ботов
// /metrics - Prometheus метрики
//
// Middleware применяется в порядке: CORS, Recovery, Logging, BasicAuth.
// CORS оборачивает роутер снаружи, а не через router.Use: mux собирает
// цепочку Use только для совпавшего маршрута, и preflight OPTIONS
// (который не матчится Methods-маршрутами) остался бы без заголовков.
func SetupRoutes(deps *Dependencies) http.Handler {
	router := mux.NewRouter()

	router.Use(middleware.Recovery)
	router.Use(middleware.Logging)

	healthHandler := handlers.NewHealthHandler(deps.APIKey, deps.APISecret)
	futuresHandler := handlers.NewFuturesHandler(deps.Pionex)
	marketHandler := handlers.NewMarketHandler(deps.Pionex)
	accountHandler := handlers.NewAccountHandler(deps.Pionex)
	botHandler := handlers.NewBotHandler(deps.BotService)

	apiRouter := router.PathPrefix("/api").Subrouter()
	apiRouter.Use(middleware.BasicAuth(deps.DashboardUser, deps.DashboardPasswordHash))

	// Служебные
	apiRouter.HandleFunc("/health", healthHandler.Health).Methods(http.MethodGet)
	apiRouter.HandleFunc("/test", healthHandler.Test).Methods(http.MethodGet)

	// Балансы аккаунта
	apiRouter.HandleFunc("/balance", accountHandler.GetBalance).Methods(http.MethodGet)
	apiRouter.HandleFunc("/balances", accountHandler.GetBalances).Methods(http.MethodGet)

	// Фьючерсы
	apiRouter.HandleFunc("/futures/balance", futuresHandler.GetBalance).Methods(http.MethodGet)
	apiRouter.HandleFunc("/futures/positions", futuresHandler.GetPositions).Methods(http.MethodGet)
	apiRouter.HandleFunc("/futures/positions/history", futuresHandler.GetPositionHistory).Methods(http.MethodGet)
	apiRouter.HandleFunc("/futures/orders", futuresHandler.GetOrders).Methods(http.MethodGet)
	apiRouter.HandleFunc("/futures/orders/history", futuresHandler.GetOrderHistory).Methods(http.MethodGet)
	apiRouter.HandleFunc("/futures/funding", futuresHandler.GetFunding).Methods(http.MethodGet)

	// Рыночные данные
	apiRouter.HandleFunc("/market/tickers", marketHandler.GetTickers).Methods(http.MethodGet)
	apiRouter.HandleFunc("/market/price/{symbol}", marketHandler.GetPrice).Methods(http.MethodGet)

	// Ручные записи ботов
	apiRouter.HandleFunc("/bots", botHandler.GetBots).Methods(http.MethodGet)
	apiRouter.HandleFunc("/bots", botHandler.UpsertBot).Methods(http.MethodPost)
	apiRouter.HandleFunc("/bots/{name}", botHandler.DeleteBot).Methods(http.MethodDelete)

	// WebSocket для real-time обновлений
	if deps.Hub != nil {
		originChecker := websocket.NewOriginChecker(deps.AllowedOrigins)
		router.HandleFunc("/ws/stream", func(w http.ResponseWriter, r *http.Request) {
			websocket.ServeWS(deps.Hub, originChecker, w, r)
		})
	}

	// Prometheus метрики
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return middleware.CORS(deps.AllowedOrigins)(router)
}
