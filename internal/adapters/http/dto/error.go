package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mahdi-morovati/rira-task/internal/domain"
	"github.com/mahdi-morovati/rira-task/internal/platform/logging"
)

// genericInternalDetail is the only detail text ever serialized for
// unexpected failures. The underlying error is logged server-side with full
// context but never leaks to the client.
const genericInternalDetail = "an unexpected error occurred"

// ErrorResponse represents an RFC 9457 Problem Details response. Errors
// carries per-field validation messages and is omitted for any failure that
// is not a field-validation failure.
type ErrorResponse struct {
	Type     string              `json:"type"`
	Title    string              `json:"title"`
	Status   int                 `json:"status"`
	Detail   string              `json:"detail,omitempty"`
	Instance string              `json:"instance,omitempty"`
	Errors   map[string][]string `json:"errors,omitempty"`
}

// NewErrorResponse creates an RFC 9457 ErrorResponse from a domain error.
// The request is used to populate the instance field with the request URI.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := domainErrorToStatus(err)

	detail := err.Error()
	if status == http.StatusInternalServerError {
		detail = genericInternalDetail
	}

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = verr.Fields
	}

	return resp
}

// WriteErrorResponse writes an RFC 9457 error response for the given domain
// error. The full error is logged with request context before anything is
// serialized; the client sees only the translated payload. Content-Type is
// application/problem+json.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	logger := logging.FromContext(r.Context())
	level := slog.LevelWarn
	if resp.Status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	logger.Log(r.Context(), level, "request failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", resp.Status),
		slog.Any("error", err),
	)

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		logger.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// domainErrorToStatus maps domain sentinel errors to HTTP status codes.
// One consistent policy: field-validation failures are 400; a missing target
// is 404 on reads and mutations alike; everything else is 500.
func domainErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
