package dto

import "time"

// CreateTaskRequest represents the JSON body for creating a new todo task.
// Field content rules (required, length bounds) are enforced by the
// application-layer validator, not here; the DTO only defines the wire shape.
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// UpdateTaskRequest represents the JSON body for replacing an existing todo
// task. Title and description are full replacements subject to the same
// content rules as creation; is_completed and due_date are optional.
type UpdateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	IsCompleted bool       `json:"is_completed"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}
