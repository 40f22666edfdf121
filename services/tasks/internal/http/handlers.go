package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/sun1tar/tasks-api/services/tasks/internal/middleware"
	"github.com/sun1tar/tasks-api/services/tasks/internal/service"
	sharedmw "github.com/sun1tar/tasks-api/shared/middleware"
)

const (
	msgTaskNotFound = "Task not found"
	msgInvalidTask  = "Invalid task data"
	msgTaskDeleted  = "Task deleted successfully"
)

type TaskHandler struct {
	taskService *service.TaskService
	logger      *logrus.Logger
}

func NewTaskHandler(ts *service.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: ts,
		logger:      logger,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// handlerFunc - обработчик, который возвращает ошибку вместо записи ответа
type handlerFunc func(w http.ResponseWriter, r *http.Request, logEntry *logrus.Entry) error

// handle - единая точка перевода ошибок в HTTP-статусы.
// NotFound и InvalidInput - ожидаемые исходы, всё остальное - 500.
func (h *TaskHandler) handle(name string, fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logEntry := h.logger.WithFields(logrus.Fields{
			"component":  "http_handler",
			"handler":    name,
			"request_id": sharedmw.GetRequestID(r.Context()),
		})

		err := fn(w, r, logEntry)
		switch {
		case err == nil:
		case errors.Is(err, service.ErrNotFound):
			logEntry.WithField("task_id", r.PathValue("id")).Warn("task not found")
			writeJSON(w, http.StatusNotFound, errorResponse{Error: msgTaskNotFound})
		case errors.Is(err, service.ErrInvalidInput):
			logEntry.Warn("invalid task data")
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidTask})
		default:
			logEntry.WithError(err).Error("request failed")
			middleware.WriteInternalError(w)
		}
	}
}

// ListTasks обрабатывает GET /tasks
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request, logEntry *logrus.Entry) error {
	tasks, err := h.taskService.List(r.Context())
	if err != nil {
		return err
	}

	logEntry.WithField("count", len(tasks)).Debug("tasks listed")
	writeJSON(w, http.StatusOK, tasks)
	return nil
}

// GetTask обрабатывает GET /tasks/{id}
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request, logEntry *logrus.Entry) error {
	id, ok := parseID(r.PathValue("id"))
	if !ok {
		return service.ErrNotFound
	}

	task, err := h.taskService.Get(r.Context(), id)
	if err != nil {
		return err
	}

	logEntry.WithField("task_id", id).Debug("task retrieved")
	writeJSON(w, http.StatusOK, task)
	return nil
}

// CreateTask обрабатывает POST /tasks
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request, logEntry *logrus.Entry) error {
	payload, err := decodePayload(w, r)
	if err != nil {
		return err
	}

	task, err := h.taskService.Create(r.Context(), payload)
	if err != nil {
		return err
	}

	logEntry.WithField("task_id", task.ID).Info("task created successfully")
	writeJSON(w, http.StatusCreated, task)
	return nil
}

// UpdateTask обрабатывает PUT /tasks/{id}
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request, logEntry *logrus.Entry) error {
	id, ok := parseID(r.PathValue("id"))
	if !ok {
		return service.ErrNotFound
	}

	payload, err := decodePayload(w, r)
	if err != nil {
		return err
	}

	task, err := h.taskService.Update(r.Context(), id, payload)
	if err != nil {
		return err
	}

	logEntry.WithField("task_id", id).Info("task updated successfully")
	writeJSON(w, http.StatusOK, task)
	return nil
}

// DeleteTask обрабатывает DELETE /tasks/{id}
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request, logEntry *logrus.Entry) error {
	id, ok := parseID(r.PathValue("id"))
	if !ok {
		return service.ErrNotFound
	}

	if err := h.taskService.Delete(r.Context(), id); err != nil {
		return err
	}

	logEntry.WithField("task_id", id).Info("task deleted successfully")
	writeJSON(w, http.StatusOK, messageResponse{Message: msgTaskDeleted})
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
