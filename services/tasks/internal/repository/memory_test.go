package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/sun1tar/tasks-api/services/tasks/internal/models"
)

func testSeed() []models.Task {
	return []models.Task{
		{ID: 1, Title: "one", Description: "first", Completed: false},
		{ID: 2, Title: "two", Description: "second", Completed: true},
		{ID: 3, Title: "three", Description: "third", Completed: false},
	}
}

func TestMemoryTaskRepository_DeletePreservesOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTaskRepository(testSeed())

	if err := repo.Delete(ctx, 2); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	tasks, _ := repo.List(ctx)
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != 1 || tasks[1].ID != 3 {
		t.Errorf("unexpected order after delete: %+v", tasks)
	}
	if tasks[1].Title != "three" {
		t.Errorf("remaining task changed: %+v", tasks[1])
	}

	if err := repo.Delete(ctx, 2); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestMemoryTaskRepository_UpdateKeepsPosition(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTaskRepository(testSeed())

	updated := models.Task{ID: 2, Title: "two v2", Description: "changed", Completed: false}
	if err := repo.Update(ctx, updated); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	tasks, _ := repo.List(ctx)
	if tasks[1] != updated {
		t.Errorf("tasks[1] = %+v, want %+v", tasks[1], updated)
	}

	if err := repo.Update(ctx, models.Task{ID: 42}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() of missing task error = %v, want ErrNotFound", err)
	}
}

func TestMemoryTaskRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTaskRepository(testSeed())

	task, err := repo.GetByID(ctx, 3)
	if err != nil || task == nil {
		t.Fatalf("GetByID(3) = %v, %v", task, err)
	}
	if task.Title != "three" {
		t.Errorf("Title = %q, want three", task.Title)
	}

	// Изменение копии не затрагивает хранилище
	task.Title = "mutated"
	again, _ := repo.GetByID(ctx, 3)
	if again.Title != "three" {
		t.Errorf("stored task was mutated through returned pointer")
	}

	missing, err := repo.GetByID(ctx, 99)
	if err != nil || missing != nil {
		t.Errorf("GetByID(99) = %v, %v, want nil, nil", missing, err)
	}
}

func TestMemoryTaskRepository_MaxIDAndCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTaskRepository(nil)

	maxID, _ := repo.MaxID(ctx)
	if maxID != 0 {
		t.Errorf("MaxID() on empty = %d, want 0", maxID)
	}

	if err := repo.Create(ctx, models.Task{ID: 7, Title: "a", Description: "b"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := repo.Create(ctx, models.Task{ID: 7, Title: "dup", Description: "dup"}); err == nil {
		t.Error("Create() with duplicate id should fail")
	}

	maxID, _ = repo.MaxID(ctx)
	if maxID != 7 {
		t.Errorf("MaxID() = %d, want 7", maxID)
	}

	tasks, _ := repo.List(ctx)
	if tasks == nil || len(tasks) != 1 {
		t.Errorf("List() = %v, want one task", tasks)
	}
}

func TestMemoryTaskRepository_Reset(t *testing.T) {
	ctx := context.Background()
	seed := testSeed()
	repo := NewMemoryTaskRepository(seed)

	// Изменение исходного среза не должно влиять на начальный набор
	seed[0].Title = "changed outside"

	repo.Delete(ctx, 1)
	repo.Create(ctx, models.Task{ID: 10, Title: "x", Description: "y"})

	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}

	tasks, _ := repo.List(ctx)
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks after reset, got %d", len(tasks))
	}
	if tasks[0].Title != "one" {
		t.Errorf("tasks[0].Title = %q, want one", tasks[0].Title)
	}
}
