package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/sun1tar/tasks-api/services/tasks/internal/models"
)

// MemoryTaskRepository хранит задачи в памяти процесса в порядке вставки
type MemoryTaskRepository struct {
	mu    sync.RWMutex
	tasks []models.Task
	seed  []models.Task
}

var _ TaskRepository = (*MemoryTaskRepository)(nil)

func NewMemoryTaskRepository(seed []models.Task) *MemoryTaskRepository {
	r := &MemoryTaskRepository{seed: cloneTasks(seed)}
	r.tasks = cloneTasks(seed)
	return r
}

func (r *MemoryTaskRepository) List(ctx context.Context) ([]models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneTasks(r.tasks), nil
}

func (r *MemoryTaskRepository) GetByID(ctx context.Context, id int) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i == -1 {
		return nil, nil
	}
	task := r.tasks[i]
	return &task, nil
}

// MaxID возвращает максимальный id среди задач или 0 для пустой коллекции
func (r *MemoryTaskRepository) MaxID(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	maxID := 0
	for _, t := range r.tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID, nil
}

func (r *MemoryTaskRepository) Create(ctx context.Context, task models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(task.ID) != -1 {
		return fmt.Errorf("task %d already exists", task.ID)
	}
	r.tasks = append(r.tasks, task)
	return nil
}

// Update заменяет задачу целиком, сохраняя её позицию
func (r *MemoryTaskRepository) Update(ctx context.Context, task models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(task.ID)
	if i == -1 {
		return ErrNotFound
	}
	r.tasks[i] = task
	return nil
}

func (r *MemoryTaskRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i == -1 {
		return ErrNotFound
	}
	r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
	return nil
}

// Reset возвращает коллекцию к начальному набору
func (r *MemoryTaskRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = cloneTasks(r.seed)
	return nil
}

func (r *MemoryTaskRepository) indexOf(id int) int {
	for i, t := range r.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func cloneTasks(tasks []models.Task) []models.Task {
	result := make([]models.Task, len(tasks))
	copy(result, tasks)
	return result
}
