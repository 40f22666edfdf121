package service

import (
	"math"

	"github.com/sun1tar/tasks-api/services/tasks/internal/models"
)

// candidate - ещё не проверенная задача, поля которой пришли из запроса как есть
type candidate struct {
	id          int
	title       any
	description any
	completed   any
}

// validateTask проверяет наличие и точный тип каждого поля.
// title и description - непустые строки, completed - строго bool.
func validateTask(c candidate) (models.Task, error) {
	title, ok := c.title.(string)
	if !ok || title == "" {
		return models.Task{}, ErrInvalidInput
	}
	description, ok := c.description.(string)
	if !ok || description == "" {
		return models.Task{}, ErrInvalidInput
	}
	completed, ok := c.completed.(bool)
	if !ok {
		return models.Task{}, ErrInvalidInput
	}

	return models.Task{
		ID:          c.id,
		Title:       title,
		Description: description,
		Completed:   completed,
	}, nil
}

// truthy повторяет семантику "истинности" значений, пришедших из JSON или формы
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case float64:
		return val != 0 && !math.IsNaN(val)
	case int:
		return val != 0
	default:
		return true
	}
}
