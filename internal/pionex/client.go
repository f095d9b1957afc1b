package pionex

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"pionex-dashboard/internal/metrics"
	"pionex-dashboard/pkg/ratelimit"
	"pionex-dashboard/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrNotConfigured возвращается, когда API ключи не заданы.
// Запрос к бирже в этом случае не выполняется вовсе.
var ErrNotConfigured = errors.New("pionex: API credentials not configured")

// UpstreamError - ответ биржи с кодом вне 2xx. Тело ответа сохраняется
// как есть, чтобы клиент дашборда видел оригинальную ошибку Pionex.
type UpstreamError struct {
	Status int
	Body   []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, string(e.Body))
}

// Client выполняет подписанные запросы к REST API Pionex.
// Повторных попыток нет: неудавшийся запрос сразу возвращает ошибку.
type Client struct {
	baseURL    string
	apiKey     string
	signer     *Signer
	httpClient *http.Client
	limiter    *ratelimit.RateLimiter
	logger     *utils.Logger
	configured bool
}

// ClientConfig - параметры создания клиента
type ClientConfig struct {
	BaseURL   string
	APIKey    string
	APISecret string
	Timeout   time.Duration
	RateLimit float64
	RateBurst float64
}

// NewClient создает клиент Pionex. Отсутствие ключей не является
// ошибкой: такой клиент отвечает ErrNotConfigured на каждый запрос.
func NewClient(cfg ClientConfig, logger *utils.Logger) *Client {
	httpCfg := DefaultHTTPClientConfig()
	if cfg.Timeout > 0 {
		httpCfg.TotalTimeout = cfg.Timeout
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		signer:     NewSigner(cfg.APISecret),
		httpClient: NewHTTPClient(httpCfg),
		limiter:    ratelimit.NewRateLimiter(cfg.RateLimit, cfg.RateBurst),
		logger:     logger.WithComponent("pionex_client"),
		configured: cfg.APIKey != "" && cfg.APISecret != "",
	}
}

// Configured сообщает, заданы ли API ключи
func (c *Client) Configured() bool {
	return c.configured
}

// Get выполняет подписанный GET запрос
func (c *Client) Get(ctx context.Context, endpoint string, params map[string]string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, endpoint, params, nil)
}

// Post выполняет подписанный POST запрос. Тело сериализуется в
// компактный JSON: та же строка входит в подпись и уходит на биржу.
func (c *Client) Post(ctx context.Context, endpoint string, params map[string]string, body interface{}) ([]byte, error) {
	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
	}
	return c.do(ctx, http.MethodPost, endpoint, params, raw)
}

// Delete выполняет подписанный DELETE запрос
func (c *Client) Delete(ctx context.Context, endpoint string, params map[string]string, body interface{}) ([]byte, error) {
	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
	}
	return c.do(ctx, http.MethodDelete, endpoint, params, raw)
}

// do подписывает и выполняет один запрос к бирже
func (c *Client) do(ctx context.Context, method, endpoint string, params map[string]string, body []byte) ([]byte, error) {
	if !c.configured {
		return nil, ErrNotConfigured
	}

	// Rate limiter защищает квоту аккаунта на бирже
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	// Один timestamp: он входит в подпись и в итоговый URL.
	// Повторный вызов часов здесь дал бы расхождение и отказ биржи.
	signed := c.signer.Sign(method, endpoint, params, body)
	reqURL := c.baseURL + signed.Path + "?" + signed.Query

	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("PIONEX-KEY", c.apiKey)
	req.Header.Set("PIONEX-SIGNATURE", signed.Signature)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(endpoint, "transport_error").Inc()
		c.logger.Warn("upstream request failed",
			utils.Endpoint(endpoint),
			utils.Method(method),
			utils.Err(err),
		)
		return nil, fmt.Errorf("pionex request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(endpoint, "transport_error").Inc()
		return nil, fmt.Errorf("read response: %w", err)
	}

	elapsed := time.Since(start)
	metrics.UpstreamDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.UpstreamRequests.WithLabelValues(endpoint, "http_error").Inc()
		c.logger.Warn("upstream returned error status",
			utils.Endpoint(endpoint),
			utils.Status(resp.StatusCode),
			utils.Latency(elapsed.Seconds()*1000),
		)
		return nil, &UpstreamError{Status: resp.StatusCode, Body: respBody}
	}

	metrics.UpstreamRequests.WithLabelValues(endpoint, "ok").Inc()
	c.logger.Debug("upstream request completed",
		utils.Endpoint(endpoint),
		utils.Status(resp.StatusCode),
		utils.Latency(elapsed.Seconds()*1000),
	)

	return respBody, nil
}
