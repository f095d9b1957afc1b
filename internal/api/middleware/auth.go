package middleware

import (
	"crypto/subtle"
	"net/http"

	"pionex-dashboard/pkg/crypto"
)

// BasicAuth защищает API дашборда HTTP Basic аутентификацией.
//
// Пароль хранится только в виде bcrypt-хеша (DASHBOARD_PASSWORD_HASH).
// При пустых настройках возвращается passthrough middleware: локальное
// развертывание на один компьютер работает без авторизации.
func BasicAuth(username, passwordHash string) func(http.Handler) http.Handler {
	enabled := username != "" && passwordHash != ""

	return func(next http.Handler) http.Handler {
		if !enabled {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok {
				unauthorized(w)
				return
			}

			// Constant-time сравнение имени против timing attacks
			userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1
			passErr := crypto.VerifyPassword(pass, passwordHash)

			if !userMatch || passErr != nil {
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="Pionex Dashboard"`)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"result":false,"error":"Unauthorized"}`))
}
