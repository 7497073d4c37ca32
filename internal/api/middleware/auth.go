package middleware

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
)

const userIDHeader = "X-User-ID"

// Auth проверяет наличие валидного X-User-ID в заголовках запроса
// Аутентификацию выполняет API gateway, здесь только проверка заголовка
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(userIDHeader)
		if userIDStr == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "заголовок X-User-ID обязателен")
			return
		}

		if _, err := strconv.ParseInt(userIDStr, 10, 64); err != nil {
			handlers.RespondError(w, http.StatusUnauthorized, "некорректный заголовок X-User-ID")
			return
		}

		next.ServeHTTP(w, r)
	})
}
