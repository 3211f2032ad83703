package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mahdi-morovati/rira-task/internal/adapters/http/dto"
	"github.com/mahdi-morovati/rira-task/internal/domain/task"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func validTask() task.Task {
	return task.Task{
		ID:          uuid.MustParse("0b9fba9a-7f34-4e48-a6a6-1efb8e0b4f15"),
		Title:       "Buy groceries",
		Description: "Milk, eggs, bread",
		IsCompleted: false,
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
	}
}

func TestToTaskResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		task   task.Task
		verify func(t *testing.T, got dto.TaskResponse)
	}{
		{
			name: "maps all fields correctly",
			task: validTask(),
			verify: func(t *testing.T, got dto.TaskResponse) {
				t.Helper()
				if got.ID != "0b9fba9a-7f34-4e48-a6a6-1efb8e0b4f15" {
					t.Errorf("ID = %q, want the task UUID", got.ID)
				}
				if got.Title != "Buy groceries" {
					t.Errorf("Title = %q, want %q", got.Title, "Buy groceries")
				}
				if got.Description != "Milk, eggs, bread" {
					t.Errorf("Description = %q, want %q", got.Description, "Milk, eggs, bread")
				}
				if got.IsCompleted {
					t.Error("IsCompleted = true, want false")
				}
			},
		},
		{
			name: "timestamps format as RFC 3339",
			task: validTask(),
			verify: func(t *testing.T, got dto.TaskResponse) {
				t.Helper()
				if got.CreatedAt != "2026-02-12T15:04:05Z" {
					t.Errorf("CreatedAt = %q, want %q", got.CreatedAt, "2026-02-12T15:04:05Z")
				}
				if got.UpdatedAt != "2026-02-12T15:04:05Z" {
					t.Errorf("UpdatedAt = %q, want %q", got.UpdatedAt, "2026-02-12T15:04:05Z")
				}
			},
		},
		{
			name: "nil due date omitted",
			task: validTask(),
			verify: func(t *testing.T, got dto.TaskResponse) {
				t.Helper()
				if got.DueDate != nil {
					t.Errorf("DueDate = %v, want nil", *got.DueDate)
				}
			},
		},
		{
			name: "due date formats as RFC 3339",
			task: func() task.Task {
				tk := validTask()
				due := testTime.Add(48 * time.Hour)
				tk.DueDate = &due
				return tk
			}(),
			verify: func(t *testing.T, got dto.TaskResponse) {
				t.Helper()
				if got.DueDate == nil {
					t.Fatal("DueDate = nil, want value")
				}
				if *got.DueDate != "2026-02-14T15:04:05Z" {
					t.Errorf("DueDate = %q, want %q", *got.DueDate, "2026-02-14T15:04:05Z")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tk := tt.task
			tt.verify(t, dto.ToTaskResponse(&tk))
		})
	}
}

func TestToTaskListResponse(t *testing.T) {
	t.Parallel()

	t.Run("maps tasks and count", func(t *testing.T) {
		t.Parallel()
		tasks := []task.Task{validTask(), validTask()}

		got := dto.ToTaskListResponse(tasks)

		if got.Count != 2 {
			t.Errorf("Count = %d, want 2", got.Count)
		}
		if len(got.Tasks) != 2 {
			t.Errorf("len(Tasks) = %d, want 2", len(got.Tasks))
		}
	})

	t.Run("empty slice yields empty non-nil array", func(t *testing.T) {
		t.Parallel()
		got := dto.ToTaskListResponse([]task.Task{})

		if got.Count != 0 {
			t.Errorf("Count = %d, want 0", got.Count)
		}
		if got.Tasks == nil {
			t.Error("Tasks = nil, want empty slice")
		}

		// An empty list must serialize as [] not null.
		b, err := json.Marshal(got)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(b) != `{"tasks":[],"count":0}` {
			t.Errorf("marshal = %s, want tasks as empty array", b)
		}
	})
}
