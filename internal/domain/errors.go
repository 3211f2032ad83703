package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	// ErrNotFound signals that the target entity does not exist. Repositories
	// return it for misses; the HTTP boundary translates it to 404.
	ErrNotFound = errors.New("todo task not found")

	// ErrValidation signals a client-caused input failure. Usually carried
	// inside a *ValidationError; the HTTP boundary translates it to 400.
	ErrValidation = errors.New("validation error")
)

// ValidationError provides programmatic access to field-level validation
// failures. Each field maps to the ordered list of messages produced by the
// rule chain. Use errors.Is(err, ErrValidation) for simple checks, or
// errors.As(err, &verr) to access verr.Fields for per-field details.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(e.Fields[field], "; "))
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
