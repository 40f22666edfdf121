package repository

import (
	"context"
	"errors"

	"github.com/sun1tar/tasks-api/services/tasks/internal/models"
)

// ErrNotFound возвращается, когда задачи с указанным id нет
var ErrNotFound = errors.New("task not found")

type TaskRepository interface {
	List(ctx context.Context) ([]models.Task, error)
	GetByID(ctx context.Context, id int) (*models.Task, error)
	MaxID(ctx context.Context) (int, error)
	Create(ctx context.Context, task models.Task) error
	Update(ctx context.Context, task models.Task) error
	Delete(ctx context.Context, id int) error
	Reset(ctx context.Context) error
}
