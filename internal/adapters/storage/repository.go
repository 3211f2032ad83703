package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mahdi-morovati/rira-task/internal/domain"
)

// record is the constraint for persisted row types: any struct addressable by
// a uuid primary key.
type record interface {
	recordID() uuid.UUID
}

// Repository is a generic GORM-backed implementation of the persistence
// contract {GetAll, GetByID, Add, Update, Delete} over a single record type.
// One instance per record type; entity-specific repositories wrap it with
// record-to-domain translation.
type Repository[R record] struct {
	db *gorm.DB

	// updateColumns names the client-mutable columns written by Update.
	// The creation timestamp is deliberately absent; GORM adds updated_at.
	updateColumns []string
}

// NewRepository creates a generic repository over db. updateColumns lists the
// columns Update is allowed to write.
func NewRepository[R record](db *gorm.DB, updateColumns ...string) *Repository[R] {
	return &Repository[R]{db: db, updateColumns: updateColumns}
}

// GetAll returns every row in store-default order.
func (r *Repository[R]) GetAll(ctx context.Context) ([]R, error) {
	var recs []R
	if err := r.db.WithContext(ctx).Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("listing rows: %w", err)
	}
	return recs, nil
}

// GetByID returns the row with the given primary key, or domain.ErrNotFound.
func (r *Repository[R]) GetByID(ctx context.Context, id uuid.UUID) (*R, error) {
	var rec R
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("finding row: %w", err)
	}
	return &rec, nil
}

// Add inserts rec. GORM create hooks assign the ID and both timestamps; the
// caller observes them on rec after the call returns.
func (r *Repository[R]) Add(ctx context.Context, rec *R) error {
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("inserting row: %w", err)
	}
	return nil
}

// Update writes the configured mutable columns of the row matching rec's
// primary key. Selecting the columns explicitly forces zero values (for
// example a cleared completion flag) to be written; updated_at is refreshed
// by GORM, created_at is never part of the update set.
func (r *Repository[R]) Update(ctx context.Context, rec *R) error {
	res := r.db.WithContext(ctx).
		Model(rec).
		Select(r.updateColumns).
		Updates(*rec)
	if res.Error != nil {
		return fmt.Errorf("updating row: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the row matching rec's primary key. Hard delete.
func (r *Repository[R]) Delete(ctx context.Context, rec *R) error {
	res := r.db.WithContext(ctx).Delete(rec)
	if res.Error != nil {
		return fmt.Errorf("deleting row: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
