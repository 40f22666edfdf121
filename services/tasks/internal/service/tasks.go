package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/sun1tar/tasks-api/services/tasks/internal/models"
	"github.com/sun1tar/tasks-api/services/tasks/internal/repository"
)

// Количество задач в коллекции после последней операции
var tasksStored = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "tasks_stored",
		Help: "Current number of tasks held in memory",
	},
)

// TaskService владеет коллекцией задач. Все операции выполняются под одной
// блокировкой, поэтому чтение, проверка и изменение не перемежаются.
type TaskService struct {
	mu   sync.Mutex
	repo repository.TaskRepository
}

func NewTaskService(repo repository.TaskRepository) *TaskService {
	s := &TaskService{
		repo: repo,
	}
	s.observe(context.Background())
	return s
}

func (s *TaskService) List(ctx context.Context) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.List(ctx)
}

func (s *TaskService) Get(ctx context.Context, id int) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.Task{}, err
	}
	if task == nil {
		return models.Task{}, ErrNotFound
	}
	return *task, nil
}

// Create назначает id = max(id) + 1 и добавляет задачу в конец коллекции.
// Отсутствующее или "ложное" completed становится false.
func (s *TaskService) Create(ctx context.Context, payload models.Payload) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxID, err := s.repo.MaxID(ctx)
	if err != nil {
		return models.Task{}, err
	}

	c := candidate{id: maxID + 1}
	c.title, _ = payload.Field("title")
	c.description, _ = payload.Field("description")
	c.completed, _ = payload.Field("completed")
	if !truthy(c.completed) {
		c.completed = false
	}

	task, err := validateTask(c)
	if err != nil {
		return models.Task{}, err
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return models.Task{}, fmt.Errorf("failed to store task: %w", err)
	}
	s.observe(ctx)
	return task, nil
}

// Update заменяет задачу целиком. id берётся из пути, id из тела игнорируется.
// В отличие от Create, completed не подставляется по умолчанию.
func (s *TaskService) Update(ctx context.Context, id int, payload models.Payload) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.Task{}, err
	}
	if existing == nil {
		return models.Task{}, ErrNotFound
	}

	c := candidate{id: id}
	c.title, _ = payload.Field("title")
	c.description, _ = payload.Field("description")
	c.completed, _ = payload.Field("completed")

	task, err := validateTask(c)
	if err != nil {
		return models.Task{}, err
	}

	if err := s.repo.Update(ctx, task); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Task{}, ErrNotFound
		}
		return models.Task{}, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	s.observe(ctx)
	return nil
}

// Reset возвращает коллекцию к начальному набору (используется в тестах)
func (s *TaskService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset tasks: %w", err)
	}
	s.observe(ctx)
	return nil
}

func (s *TaskService) observe(ctx context.Context) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return
	}
	tasksStored.Set(float64(len(tasks)))
}
