// Package task defines the todo task domain entity.
package task

import (
	"time"

	"github.com/google/uuid"
)

// Task represents a single todo task record.
//
// ID, CreatedAt, and UpdatedAt are server-assigned by the persistence boundary:
// ID and CreatedAt are fixed at insert and never change afterwards, UpdatedAt is
// refreshed on every insert and update. CreatedAt <= UpdatedAt always holds.
type Task struct {
	ID          uuid.UUID
	Title       string
	Description string
	IsCompleted bool
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Merge copies the client-mutable fields of in onto t, preserving the
// server-assigned ID and CreatedAt. Used by the update use case to build the
// row image written back to the store.
func (t *Task) Merge(in *Task) {
	t.Title = in.Title
	t.Description = in.Description
	t.IsCompleted = in.IsCompleted
	t.DueDate = in.DueDate
}
