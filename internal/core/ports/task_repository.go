package ports

import (
	"context"

	"github.com/taskforge/task-tracker/internal/core/domain"
)

// TaskUpdate carries a partial mutation: nil fields retain their prior value.
type TaskUpdate struct {
	Status   *domain.TaskStatus
	Priority *domain.TaskPriority
}

// TaskRepository defines the persistence interface for tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id int64) (*domain.Task, error)
	// ListAll returns every task in stable insertion order.
	ListAll(ctx context.Context) ([]domain.Task, error)
	// ListByOwner returns the owner's tasks in stable insertion order.
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Task, error)
	// Update applies the non-nil fields of upd atomically and returns the
	// resulting row, or domain.ErrTaskNotFound if the task vanished.
	Update(ctx context.Context, id int64, upd TaskUpdate) (*domain.Task, error)
	// Delete removes the task and returns the deleted row, or
	// domain.ErrTaskNotFound if it was already gone.
	Delete(ctx context.Context, id int64) (*domain.Task, error)
}
