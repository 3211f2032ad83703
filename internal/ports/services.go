package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/mahdi-morovati/rira-task/internal/domain/task"
)

// TaskService defines the service port for todo task operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type TaskService interface {
	// ListTasks returns all tasks. An empty store yields an empty slice,
	// never nil.
	ListTasks(ctx context.Context) ([]task.Task, error)

	// GetTask returns a single task by ID.
	// Returns domain.ErrNotFound if the task does not exist.
	GetTask(ctx context.Context, id uuid.UUID) (*task.Task, error)

	// CreateTask validates and creates a new task, returning the created
	// entity with server-assigned fields (ID, timestamps).
	// Returns domain.ErrValidation if the input fails validation.
	CreateTask(ctx context.Context, t *task.Task) (*task.Task, error)

	// UpdateTask validates and updates an existing task, preserving its ID
	// and creation timestamp, and returns the updated entity.
	// Returns domain.ErrNotFound if the task does not exist and
	// domain.ErrValidation if the input fails field validation; the two are
	// always distinguishable via errors.Is.
	UpdateTask(ctx context.Context, id uuid.UUID, t *task.Task) (*task.Task, error)

	// DeleteTask removes a task permanently.
	// Returns domain.ErrNotFound if the task does not exist.
	DeleteTask(ctx context.Context, id uuid.UUID) error
}
