package ports

import (
	"context"

	"github.com/taskforge/task-tracker/internal/core/domain"
)

type UserService interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
