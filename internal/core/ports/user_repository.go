package ports

import (
	"context"

	"github.com/taskforge/task-tracker/internal/core/domain"
)

// UserRepository defines the persistence interface for user credentials.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
