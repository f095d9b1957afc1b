// Package metrics определяет Prometheus метрики сервера дашборда.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pionex"

var (
	// HTTPRequests - входящие запросы к дашборду по маршруту и коду ответа
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "proxy",
			Name:      "http_requests_total",
			Help:      "Количество обработанных HTTP запросов",
		},
		[]string{"route", "code"},
	)

	// HTTPDuration - длительность обработки входящих запросов
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "proxy",
			Name:      "http_request_duration_seconds",
			Help:      "Длительность обработки HTTP запроса",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	// UpstreamRequests - запросы к Pionex по endpoint и исходу
	// result: ok | http_error | transport_error
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "Количество запросов к Pionex API",
		},
		[]string{"endpoint", "result"},
	)

	// UpstreamDuration - длительность запросов к Pionex
	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Длительность запроса к Pionex API",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		},
		[]string{"endpoint"},
	)

	// WebSocketClients - текущее число подключенных WebSocket клиентов
	WebSocketClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "websocket",
			Name:      "clients",
			Help:      "Число подключенных WebSocket клиентов",
		},
	)

	// BotRecords - текущее число записей ботов в хранилище
	BotRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "bots",
			Name:      "records",
			Help:      "Число записей ботов в хранилище",
		},
	)
)
