package domain

import (
	"errors"
	"time"
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

// TaskPriority represents the urgency assigned to a task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

var ErrValidation = errors.New("validation failed")
var ErrTaskNotFound = errors.New("task not found")
var ErrForbidden = errors.New("access forbidden")

// ParseStatus validates a status string.
func ParseStatus(s string) (TaskStatus, error) {
	switch TaskStatus(s) {
	case StatusPending, StatusInProgress, StatusCompleted:
		return TaskStatus(s), nil
	default:
		return "", ErrValidation
	}
}

// ParsePriority validates a priority string. An empty string defaults to
// PriorityMedium, matching the creation contract where priority is optional.
func ParsePriority(s string) (TaskPriority, error) {
	switch TaskPriority(s) {
	case "":
		return PriorityMedium, nil
	case PriorityLow, PriorityMedium, PriorityHigh:
		return TaskPriority(s), nil
	default:
		return "", ErrValidation
	}
}

// Task is the core aggregate root. Title and OwnerID are immutable after
// creation; only Status and Priority may change.
type Task struct {
	ID        int64        `json:"id"`
	Title     string       `json:"title"`
	Status    TaskStatus   `json:"status"`
	Priority  TaskPriority `json:"priority"`
	OwnerID   int64        `json:"owner_id"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
