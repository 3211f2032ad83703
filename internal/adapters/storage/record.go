package storage

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mahdi-morovati/rira-task/internal/domain/task"
)

// taskRecord is the persisted representation of a todo task. It is owned
// exclusively by this package; the domain entity never carries GORM tags.
// CreatedAt and UpdatedAt are stamped by GORM: CreatedAt on insert only,
// UpdatedAt on insert and every update.
type taskRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"size:255;not null"`
	Description string    `gorm:"size:1000;not null"`
	IsCompleted bool      `gorm:"not null;default:false"`
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for taskRecord.
func (taskRecord) TableName() string {
	return "tasks"
}

// BeforeCreate assigns the server-side ID exactly once, at insert.
func (r *taskRecord) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (r taskRecord) recordID() uuid.UUID {
	return r.ID
}

// toEntity converts a storage record to the domain entity.
func (r *taskRecord) toEntity() *task.Task {
	return &task.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		IsCompleted: r.IsCompleted,
		DueDate:     r.DueDate,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// fromEntity converts a domain entity to its storage record.
func fromEntity(t *task.Task) *taskRecord {
	return &taskRecord{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		IsCompleted: t.IsCompleted,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
