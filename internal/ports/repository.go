package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/mahdi-morovati/rira-task/internal/domain/task"
)

// TaskRepository defines the repository port for task persistence.
// Implemented by the storage adapter; called by the application layer.
// It is the only component permitted to talk to the store.
//
// Implementations must honor context cancellation and are scoped to a
// per-request unit of work: calls are safe to issue from concurrent requests
// but a single returned entity is never shared across requests.
type TaskRepository interface {
	// GetAll returns all persisted tasks in store-default order.
	// An empty store yields an empty slice.
	GetAll(ctx context.Context) ([]task.Task, error)

	// GetByID returns the task with the given ID.
	// Returns domain.ErrNotFound if no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*task.Task, error)

	// Add inserts t. On return t carries the server-assigned ID and
	// creation/modification timestamps.
	Add(ctx context.Context, t *task.Task) error

	// Update replaces the client-mutable fields of the row matching t.ID and
	// refreshes the modification timestamp. The creation timestamp is never
	// written. Returns domain.ErrNotFound if no row matches.
	Update(ctx context.Context, t *task.Task) error

	// Delete removes the row matching t.ID. Hard delete, no tombstone.
	// Returns domain.ErrNotFound if no row matches.
	Delete(ctx context.Context, t *task.Task) error
}
