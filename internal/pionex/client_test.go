package pionex

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pionex-dashboard/pkg/utils"
)

func testLogger(t *testing.T) *utils.Logger {
	t.Helper()
	return utils.InitLogger(utils.LogConfig{Level: "error", Format: "json"})
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c := NewClient(ClientConfig{
		BaseURL:   baseURL,
		APIKey:    "test-key",
		APISecret: "test-secret",
		Timeout:   2 * time.Second,
		RateLimit: 1000,
		RateBurst: 1000,
	}, testLogger(t))
	c.signer.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return c
}

func TestClient_Get_SignedHeaders(t *testing.T) {
	var gotKey, gotSig, gotQuery string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("PIONEX-KEY")
		gotSig = r.Header.Get("PIONEX-SIGNATURE")
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"result":true,"data":{}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	body, err := client.Get(context.Background(), "/api/v1/account/balances", map[string]string{"type": "PERP"})
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !strings.Contains(string(body), `"result":true`) {
		t.Errorf("body = %s", body)
	}

	if gotKey != "test-key" {
		t.Errorf("PIONEX-KEY = %q, want test-key", gotKey)
	}
	if gotQuery != "type=PERP&timestamp=1700000000000" {
		t.Errorf("query = %q", gotQuery)
	}

	// Подпись в заголовке обязана соответствовать отправленному query
	mac := hmac.New(sha256.New, []byte("test-secret"))
	mac.Write([]byte("GET/api/v1/account/balances?" + gotQuery))
	if want := hex.EncodeToString(mac.Sum(nil)); gotSig != want {
		t.Errorf("PIONEX-SIGNATURE = %s, want %s", gotSig, want)
	}
}

func TestClient_NotConfigured(t *testing.T) {
	client := NewClient(ClientConfig{
		BaseURL:   "https://api.pionex.com",
		RateLimit: 10,
		RateBurst: 10,
	}, testLogger(t))

	if client.Configured() {
		t.Error("Configured() = true без ключей")
	}

	_, err := client.Get(context.Background(), "/api/v1/futures/positions", nil)
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
}

func TestClient_UpstreamError_PreservesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"result":false,"code":"INVALID_SIGNATURE"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Get(context.Background(), "/api/v1/futures/positions", nil)

	var upstreamErr *UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("err = %v, want *UpstreamError", err)
	}
	if upstreamErr.Status != http.StatusForbidden {
		t.Errorf("Status = %d, want 403", upstreamErr.Status)
	}
	if !strings.Contains(string(upstreamErr.Body), "INVALID_SIGNATURE") {
		t.Errorf("Body = %s, тело ответа должно сохраниться", upstreamErr.Body)
	}
	if !strings.Contains(upstreamErr.Error(), "HTTP 403") {
		t.Errorf("Error() = %q", upstreamErr.Error())
	}
}

func TestClient_Post_SignsCompactBody(t *testing.T) {
	var gotBody, gotSig, gotQuery string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, r.ContentLength)
		r.Body.Read(buf)
		gotBody = string(buf)
		gotSig = r.Header.Get("PIONEX-SIGNATURE")
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"result":true}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Post(context.Background(), "/api/v1/trade/order", nil, map[string]string{"symbol": "BTC_USDT"})
	if err != nil {
		t.Fatalf("Post() error = %v", err)
	}

	if gotBody != `{"symbol":"BTC_USDT"}` {
		t.Errorf("body = %q, want компактный JSON", gotBody)
	}

	// Тело входит в подписываемую строку
	mac := hmac.New(sha256.New, []byte("test-secret"))
	mac.Write([]byte("POST/api/v1/trade/order?" + gotQuery + gotBody))
	if want := hex.EncodeToString(mac.Sum(nil)); gotSig != want {
		t.Errorf("PIONEX-SIGNATURE = %s, want %s", gotSig, want)
	}
}

func TestClient_NoRetryOnFailure(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"result":false}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Get(context.Background(), "/api/v1/futures/positions", nil)
	if err == nil {
		t.Fatal("ожидалась ошибка")
	}
	if calls != 1 {
		t.Errorf("calls = %d, повторных попыток быть не должно", calls)
	}
}

func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"result":true}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Get(ctx, "/api/v1/futures/positions", nil)
	if err == nil {
		t.Fatal("ожидалась ошибка таймаута")
	}

	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		t.Error("таймаут не должен быть UpstreamError")
	}
}
