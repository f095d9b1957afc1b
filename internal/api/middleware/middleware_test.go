package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"pionex-dashboard/pkg/crypto"
)

// okHandler - тривиальный handler для проверки цепочки middleware
var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
})

// ============================================================
// Recovery Tests
// ============================================================

func TestRecovery_PassesThrough(t *testing.T) {
	handler := Recovery(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rr.Code)
	}
}

func TestRecovery_CatchesPanic(t *testing.T) {
	handler := Recovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"result":false`) {
		t.Errorf("body = %s, want конверт ошибки", rr.Body.String())
	}
}

// ============================================================
// CORS Tests
// ============================================================

func TestCORS_AnyOrigin(t *testing.T) {
	handler := CORS(nil)(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestCORS_RestrictedOrigins(t *testing.T) {
	handler := CORS([]string{"https://dashboard.example.com"})(okHandler)

	tests := []struct {
		name   string
		origin string
		want   string
	}{
		{"allowed origin echoed", "https://dashboard.example.com", "https://dashboard.example.com"},
		{"unknown origin gets no header", "https://evil.example.org", ""},
		{"no origin gets no header", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if got := rr.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCORS_WildcardInList(t *testing.T) {
	handler := CORS([]string{"https://dashboard.example.com", "*"})(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://anywhere.example.org")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestCORS_Preflight(t *testing.T) {
	called := false
	handler := CORS(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/bots", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rr.Code)
	}
	if called {
		t.Error("preflight не должен доходить до handler")
	}
	if got := rr.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, "DELETE") {
		t.Errorf("Access-Control-Allow-Methods = %q", got)
	}
}

// ============================================================
// BasicAuth Tests
// ============================================================

func TestBasicAuth_Disabled(t *testing.T) {
	handler := BasicAuth("", "")(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, без настроек auth должен пропускать", rr.Code)
	}
}

func TestBasicAuth_Enabled(t *testing.T) {
	hash, err := crypto.HashPasswordWithCost("correct-password", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPasswordWithCost() error = %v", err)
	}

	handler := BasicAuth("admin", hash)(okHandler)

	tests := []struct {
		name       string
		user       string
		pass       string
		noAuth     bool
		wantStatus int
	}{
		{name: "valid credentials", user: "admin", pass: "correct-password", wantStatus: http.StatusOK},
		{name: "wrong password", user: "admin", pass: "wrong", wantStatus: http.StatusUnauthorized},
		{name: "wrong user", user: "guest", pass: "correct-password", wantStatus: http.StatusUnauthorized},
		{name: "no credentials", noAuth: true, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if !tt.noAuth {
				req.SetBasicAuth(tt.user, tt.pass)
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rr.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusUnauthorized {
				if got := rr.Header().Get("WWW-Authenticate"); got == "" {
					t.Error("WWW-Authenticate header отсутствует")
				}
			}
		})
	}
}

// ============================================================
// Logging Tests
// ============================================================

func TestLogging_CapturesStatus(t *testing.T) {
	handler := Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("nope"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	// Middleware не должен менять ответ
	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rr.Code)
	}
	if rr.Body.String() != "nope" {
		t.Errorf("body = %q", rr.Body.String())
	}
}
