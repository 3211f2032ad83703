package app

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mahdi-morovati/rira-task/internal/domain"
	"github.com/mahdi-morovati/rira-task/internal/domain/task"
)

// Validation field keys as they appear in error payloads.
const (
	fieldTitle       = "Title"
	fieldDescription = "Description"
)

// Limits holds the configurable length bounds for task fields. Bounds are
// inclusive: a value of exactly the limit passes, one character more fails.
type Limits struct {
	TitleMaxLength       int
	DescriptionMaxLength int
}

// rule is a single validation predicate over a task. It returns the field key
// and zero or more human-readable violation messages for that field.
type rule func(t *task.Task) (string, []string)

// TaskValidator checks create/update inputs against an ordered rule chain.
// It is stateless and safe for concurrent use; it never mutates its input.
type TaskValidator struct {
	rules []rule
}

// NewTaskValidator builds a validator with the given length limits.
func NewTaskValidator(limits Limits) *TaskValidator {
	return &TaskValidator{
		rules: []rule{
			requiredMax(fieldTitle, limits.TitleMaxLength, func(t *task.Task) string { return t.Title }),
			requiredMax(fieldDescription, limits.DescriptionMaxLength, func(t *task.Task) string { return t.Description }),
		},
	}
}

// Validate runs every rule in order and collects violations per field.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) when any
// rule fails, or nil if all rules pass.
func (v *TaskValidator) Validate(t *task.Task) error {
	fields := make(map[string][]string)
	for _, r := range v.rules {
		if field, msgs := r(t); len(msgs) > 0 {
			fields[field] = append(fields[field], msgs...)
		}
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// requiredMax builds a rule requiring a non-blank value of at most max
// characters. The message wording follows the payloads this service has
// always produced.
func requiredMax(field string, max int, get func(t *task.Task) string) rule {
	return func(t *task.Task) (string, []string) {
		var msgs []string
		val := get(t)
		if strings.TrimSpace(val) == "" {
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		} else if utf8.RuneCountInString(val) > max {
			msgs = append(msgs, fmt.Sprintf("%s must be fewer than %d characters", field, max))
		}
		return field, msgs
	}
}
