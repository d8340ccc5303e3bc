package ports

import (
	"context"

	"github.com/taskforge/task-tracker/internal/core/domain"
)

// CreateTaskInput carries the fields a user supplies when creating a task.
// Priority may be empty, in which case it defaults to medium.
type CreateTaskInput struct {
	Title    string
	Priority string
}

// UpdateTaskInput carries a partial update; nil fields are left untouched.
// Values are raw strings validated by the service.
type UpdateTaskInput struct {
	Status   *string
	Priority *string
}

type TaskService interface {
	Create(ctx context.Context, requester *domain.User, input CreateTaskInput) (*domain.Task, error)
	List(ctx context.Context, requester *domain.User) ([]domain.Task, error)
	Update(ctx context.Context, requester *domain.User, taskID int64, input UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, requester *domain.User, taskID int64) (*domain.Task, error)
}
