package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mahdi-morovati/rira-task/internal/adapters/http/dto"
	"github.com/mahdi-morovati/rira-task/internal/domain"
	"github.com/mahdi-morovati/rira-task/internal/domain/task"
)

// parseID extracts a uuid path parameter from the chi URL params.
func parseID(r *http.Request, param string) (uuid.UUID, error) {
	raw := chi.URLParam(r, param)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &domain.ValidationError{
			Fields: map[string][]string{param: {"must be a valid uuid"}},
		}
	}
	return id, nil
}

// mapCreateTaskRequest converts a CreateTaskRequest DTO to a domain Task
// entity. Server fields (ID, timestamps) are left unset for the persistence
// boundary to assign.
func mapCreateTaskRequest(req *dto.CreateTaskRequest) *task.Task {
	return &task.Task{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	}
}

// mapUpdateTaskRequest converts an UpdateTaskRequest DTO to a domain Task
// entity carrying only client-mutable fields.
func mapUpdateTaskRequest(req *dto.UpdateTaskRequest) *task.Task {
	return &task.Task{
		Title:       req.Title,
		Description: req.Description,
		IsCompleted: req.IsCompleted,
		DueDate:     req.DueDate,
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string][]string{"body": {"invalid JSON"}},
		})
		return false
	}
	return true
}
