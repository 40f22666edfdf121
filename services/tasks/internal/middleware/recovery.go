package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/sirupsen/logrus"

	sharedmw "github.com/sun1tar/tasks-api/shared/middleware"
)

// InternalErrorBody - тело ответа при любой непредвиденной ошибке
const InternalErrorBody = `{"error":"Something went wrong!"}`

// WriteInternalError отвечает 500 с общим сообщением, без деталей ошибки
func WriteInternalError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte(InternalErrorBody + "\n"))
}

// RecoveryMiddleware перехватывает панику в обработчике, логирует её со стеком
// и отвечает 500. Состояние сервиса при этом не меняется.
func RecoveryMiddleware(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.WithFields(logrus.Fields{
					"component":  "recovery",
					"request_id": sharedmw.GetRequestID(r.Context()),
					"method":     r.Method,
					"path":       r.URL.Path,
					"panic":      rec,
					"stack":      string(debug.Stack()),
				}).Error("unhandled panic")

				WriteInternalError(w)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
