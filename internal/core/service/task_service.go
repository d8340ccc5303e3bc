package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/taskforge/task-tracker/internal/api/metrics"
	"github.com/taskforge/task-tracker/internal/core/domain"
	"github.com/taskforge/task-tracker/internal/core/ports"
)

// TaskService orchestrates the authorization policy and the task store.
// It never compares roles or owner ids itself; every decision goes through
// domain.CanViewAll / domain.CanMutate.
type TaskService struct {
	repo   ports.TaskRepository
	logger zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, logger: logger}
}

// Create persists a new task owned by the requester. Status always starts
// as pending; priority defaults to medium when omitted.
func (s *TaskService) Create(ctx context.Context, requester *domain.User, input ports.CreateTaskInput) (*domain.Task, error) {
	if input.Title == "" {
		return nil, domain.ErrValidation
	}
	priority, err := domain.ParsePriority(input.Priority)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.Task{
		Title:    input.Title,
		Status:   domain.StatusPending,
		Priority: priority,
		OwnerID:  requester.ID,
	})
	if err != nil {
		s.logger.Error().Err(err).Int64("owner_id", requester.ID).Msg("failed to create task")
		return nil, err
	}

	metrics.TasksCreatedTotal.WithLabelValues(string(created.Priority)).Inc()
	s.logger.Info().Int64("task_id", created.ID).Int64("owner_id", created.OwnerID).Msg("task created")
	return created, nil
}

// List returns every task for an admin requester, and only the requester's
// own tasks otherwise. Order is stable insertion order in both cases.
func (s *TaskService) List(ctx context.Context, requester *domain.User) ([]domain.Task, error) {
	if domain.CanViewAll(requester.Role) {
		return s.repo.ListAll(ctx)
	}
	return s.repo.ListByOwner(ctx, requester.ID)
}

// Update applies a partial mutation to a task. The existence check runs
// before the permission check, so an unauthorized requester probing a task
// id gets NotFound for absent tasks and Forbidden for present ones. This
// mirrors the original API and is pinned by tests; see DESIGN.md.
func (s *TaskService) Update(ctx context.Context, requester *domain.User, taskID int64, input ports.UpdateTaskInput) (*domain.Task, error) {
	upd, err := parseUpdate(input)
	if err != nil {
		return nil, err
	}

	task, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !domain.CanMutate(requester.Role, requester.ID, task.OwnerID) {
		metrics.TaskMutationsTotal.WithLabelValues("update", "forbidden").Inc()
		return nil, domain.ErrForbidden
	}

	updated, err := s.repo.Update(ctx, taskID, upd)
	if err != nil {
		return nil, err
	}

	metrics.TaskMutationsTotal.WithLabelValues("update", "ok").Inc()
	s.logger.Info().Int64("task_id", taskID).Int64("requester_id", requester.ID).Msg("task updated")
	return updated, nil
}

// Delete removes a task and returns the deleted record. Same lookup and
// permission ordering as Update.
func (s *TaskService) Delete(ctx context.Context, requester *domain.User, taskID int64) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !domain.CanMutate(requester.Role, requester.ID, task.OwnerID) {
		metrics.TaskMutationsTotal.WithLabelValues("delete", "forbidden").Inc()
		return nil, domain.ErrForbidden
	}

	deleted, err := s.repo.Delete(ctx, taskID)
	if err != nil {
		return nil, err
	}

	metrics.TaskMutationsTotal.WithLabelValues("delete", "ok").Inc()
	s.logger.Info().Int64("task_id", taskID).Int64("requester_id", requester.ID).Msg("task deleted")
	return deleted, nil
}

func parseUpdate(input ports.UpdateTaskInput) (ports.TaskUpdate, error) {
	var upd ports.TaskUpdate
	if input.Status != nil {
		status, err := domain.ParseStatus(*input.Status)
		if err != nil {
			return ports.TaskUpdate{}, err
		}
		upd.Status = &status
	}
	if input.Priority != nil {
		// An explicitly supplied empty priority is malformed; only an omitted
		// field keeps its prior value.
		if *input.Priority == "" {
			return ports.TaskUpdate{}, domain.ErrValidation
		}
		priority, err := domain.ParsePriority(*input.Priority)
		if err != nil {
			return ports.TaskUpdate{}, err
		}
		upd.Priority = &priority
	}
	return upd, nil
}
