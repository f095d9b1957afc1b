package middleware

import (
	"net/http"
	"strings"
)

// CORS возвращает middleware, разрешающий браузерные запросы.
//
// Пустой список (или элемент "*") означает wildcard: дашборд отдается
// с произвольного хоста (локальный файл, Vercel, dev-сервер), а API
// не использует cookies, поэтому это повторяет поведение исходного
// сервера. Непустой CORS_ALLOWED_ORIGINS ограничивает доступ
// перечисленными origins.
//
// Оборачивает роутер СНАРУЖИ: mux собирает цепочку router.Use только
// для совпавшего маршрута, а preflight OPTIONS не совпадает с
// маршрутами, зарегистрированными через Methods(), и вернулся бы 405
// без заголовков.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	allowAll := len(allowedOrigins) == 0
	for _, origin := range allowedOrigins {
		origin = strings.TrimSpace(origin)
		if origin == "*" {
			allowAll = true
			continue
		}
		if origin != "" {
			allowed[origin] = struct{}{}
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if allowAll {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			} else if origin := r.Header.Get("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Add("Vary", "Origin")
				}
			}

			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Max-Age", "86400")

			// Preflight запросы обрываются здесь
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
