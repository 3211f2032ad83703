// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mahdi-morovati/rira-task/internal/domain/task"
	"github.com/mahdi-morovati/rira-task/internal/ports"
)

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

// TaskService implements ports.TaskService by orchestrating validation,
// entity mapping, and repository calls. Each operation performs at most one
// logical mutation against the repository; the repository call itself is the
// atomicity boundary.
type TaskService struct {
	repo      ports.TaskRepository
	validator *TaskValidator
	logger    *slog.Logger
}

// NewTaskService creates a TaskService. The repository port provides access to
// the relational store; the validator carries the configured field limits.
func NewTaskService(repo ports.TaskRepository, validator *TaskValidator, logger *slog.Logger) *TaskService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TaskService{
		repo:      repo,
		validator: validator,
		logger:    logger,
	}
}

// ListTasks returns all tasks. An empty store yields an empty slice.
func (s *TaskService) ListTasks(ctx context.Context) ([]task.Task, error) {
	s.logger.InfoContext(ctx, "listing tasks")

	tasks, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list tasks",
			slog.String("operation", "ListTasks"),
			slog.Any("error", err),
		)
		return nil, err
	}

	if tasks == nil {
		tasks = []task.Task{}
	}
	return tasks, nil
}

// GetTask returns a single task by ID.
func (s *TaskService) GetTask(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	s.logger.InfoContext(ctx, "fetching task", slog.String("id", id.String()))

	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch task",
			slog.String("operation", "GetTask"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	return t, nil
}

// CreateTask validates and creates a new task, returning the created entity
// with server-assigned fields (ID, timestamps).
func (s *TaskService) CreateTask(ctx context.Context, t *task.Task) (*task.Task, error) {
	s.logger.InfoContext(ctx, "creating task", slog.String("title", t.Title))

	if err := s.validator.Validate(t); err != nil {
		s.logger.WarnContext(ctx, "task failed create validation",
			slog.String("operation", "CreateTask"),
			slog.Any("error", err),
		)
		return nil, err
	}

	if err := s.repo.Add(ctx, t); err != nil {
		s.logger.ErrorContext(ctx, "failed to create task",
			slog.String("operation", "CreateTask"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("adding task: %w", err)
	}

	return t, nil
}

// UpdateTask validates and updates an existing task. The existence check runs
// before the field rules so a missing target is always reported as
// domain.ErrNotFound, never folded into a validation error. The stored ID and
// creation timestamp are preserved.
func (s *TaskService) UpdateTask(ctx context.Context, id uuid.UUID, t *task.Task) (*task.Task, error) {
	s.logger.InfoContext(ctx, "updating task", slog.String("id", id.String()))

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to resolve update target",
			slog.String("operation", "UpdateTask"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	if err := s.validator.Validate(t); err != nil {
		s.logger.WarnContext(ctx, "task failed update validation",
			slog.String("operation", "UpdateTask"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	existing.Merge(t)

	if err := s.repo.Update(ctx, existing); err != nil {
		s.logger.ErrorContext(ctx, "failed to update task",
			slog.String("operation", "UpdateTask"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	return existing, nil
}

// DeleteTask removes a task permanently.
func (s *TaskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	s.logger.InfoContext(ctx, "deleting task", slog.String("id", id.String()))

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to resolve delete target",
			slog.String("operation", "DeleteTask"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return err
	}

	if err := s.repo.Delete(ctx, existing); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete task",
			slog.String("operation", "DeleteTask"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}
