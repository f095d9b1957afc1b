// Package middleware содержит HTTP middleware сервера дашборда.
package middleware

import (
	"net/http"
	"runtime/debug"

	"pionex-dashboard/pkg/utils"
)

// Recovery перехватывает panic в handlers и возвращает клиенту 500
// вместо падения всего сервера. Stack trace уходит в лог.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				utils.Errorf("panic recovered: %v\n%s", err, debug.Stack())

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"result":false,"error":"Internal server error"}`))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
