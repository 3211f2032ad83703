package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mahdi-morovati/rira-task/internal/domain/task"
	"github.com/mahdi-morovati/rira-task/internal/platform/telemetry"
	"github.com/mahdi-morovati/rira-task/internal/ports"
)

// Compile-time check that TaskRepository implements ports.TaskRepository.
var _ ports.TaskRepository = (*TaskRepository)(nil)

// TaskRepository implements ports.TaskRepository over the generic GORM
// repository, translating between taskRecord rows and task.Task entities and
// recording per-query telemetry.
type TaskRepository struct {
	rows    *Repository[taskRecord]
	metrics *telemetry.Metrics
}

// NewTaskRepository creates a TaskRepository over db. metrics may be nil when
// telemetry is disabled.
func NewTaskRepository(db *gorm.DB, metrics *telemetry.Metrics) *TaskRepository {
	return &TaskRepository{
		rows:    NewRepository[taskRecord](db, "title", "description", "is_completed", "due_date"),
		metrics: metrics,
	}
}

// GetAll returns all persisted tasks.
func (r *TaskRepository) GetAll(ctx context.Context) ([]task.Task, error) {
	start := time.Now()

	recs, err := r.rows.GetAll(ctx)
	r.observe(ctx, "get_all", start, err)
	if err != nil {
		return nil, err
	}

	tasks := make([]task.Task, len(recs))
	for i := range recs {
		tasks[i] = *recs[i].toEntity()
	}
	return tasks, nil
}

// GetByID returns the task with the given ID, or domain.ErrNotFound.
func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	start := time.Now()

	rec, err := r.rows.GetByID(ctx, id)
	r.observe(ctx, "get_by_id", start, err)
	if err != nil {
		return nil, err
	}
	return rec.toEntity(), nil
}

// Add inserts t and copies the server-assigned ID and timestamps back onto it.
func (r *TaskRepository) Add(ctx context.Context, t *task.Task) error {
	start := time.Now()

	rec := fromEntity(t)
	err := r.rows.Add(ctx, rec)
	r.observe(ctx, "add", start, err)
	if err != nil {
		return err
	}

	*t = *rec.toEntity()
	return nil
}

// Update writes t's mutable fields to the row matching t.ID, then re-reads
// the row so the caller observes the refreshed modification timestamp.
func (r *TaskRepository) Update(ctx context.Context, t *task.Task) error {
	start := time.Now()

	rec := fromEntity(t)
	err := r.rows.Update(ctx, rec)
	r.observe(ctx, "update", start, err)
	if err != nil {
		return err
	}

	fresh, err := r.rows.GetByID(ctx, t.ID)
	if err != nil {
		return err
	}
	*t = *fresh.toEntity()
	return nil
}

// Delete removes the row matching t.ID.
func (r *TaskRepository) Delete(ctx context.Context, t *task.Task) error {
	start := time.Now()

	err := r.rows.Delete(ctx, fromEntity(t))
	r.observe(ctx, "delete", start, err)
	return err
}

// observe records query duration and count metrics. Safe with nil metrics.
func (r *TaskRepository) observe(ctx context.Context, operation string, start time.Time, err error) {
	if r.metrics == nil {
		return
	}
	telemetry.RecordQuery(ctx, r.metrics, operation, time.Since(start), err)
}
