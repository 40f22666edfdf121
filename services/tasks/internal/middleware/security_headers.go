package middleware

import "net/http"

// SecurityHeadersMiddleware добавляет заголовки безопасности
func SecurityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Запрет на определение MIME-типа из содержимого
		w.Header().Set("X-Content-Type-Options", "nosniff")

		// Защита от clickjacking
		w.Header().Set("X-Frame-Options", "DENY")

		// API не отдаёт HTML, поэтому запрещаем всё
		w.Header().Set("Content-Security-Policy", "default-src 'none'")

		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		next.ServeHTTP(w, r)
	})
}
