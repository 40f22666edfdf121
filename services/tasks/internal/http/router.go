package http

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/sun1tar/tasks-api/services/tasks/internal/middleware"
	sharedmw "github.com/sun1tar/tasks-api/shared/middleware"
)

// NewRouter собирает маршруты и цепочку middleware
func NewRouter(h *TaskHandler, logger *logrus.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /tasks", h.handle("ListTasks", h.ListTasks))
	mux.HandleFunc("GET /tasks/{$}", h.handle("ListTasks", h.ListTasks))
	mux.HandleFunc("GET /tasks/{id}", h.handle("GetTask", h.GetTask))
	mux.HandleFunc("POST /tasks", h.handle("CreateTask", h.CreateTask))
	mux.HandleFunc("PUT /tasks/{id}", h.handle("UpdateTask", h.UpdateTask))
	mux.HandleFunc("DELETE /tasks/{id}", h.handle("DeleteTask", h.DeleteTask))
	mux.Handle("GET /metrics", middleware.MetricsHandler())

	// Порядок важен: request-id снаружи, recovery ближе всего к обработчикам,
	// чтобы логи и метрики видели итоговый статус 500
	handler := middleware.RecoveryMiddleware(logger)(mux)
	handler = middleware.SecurityHeadersMiddleware(handler)
	handler = middleware.MetricsMiddleware(handler)
	handler = sharedmw.LoggingMiddleware(logger)(handler)
	handler = sharedmw.RequestIDMiddleware(handler)

	return handler
}
