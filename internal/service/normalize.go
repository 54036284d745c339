package service

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	apperrors "github.com/zaer/hr-service/pkg/util"
)

// normalize trims and lowercases free text before it is stored.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func normalizePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := normalize(*s)
	return &v
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// fieldErrors collects per-field validation failures.
type fieldErrors map[string]any

func (f fieldErrors) text(field, value string, maxLen int) {
	if value == "" {
		f[field] = "must not be empty"
		return
	}
	if maxLen > 0 && len([]rune(value)) > maxLen {
		f[field] = fmt.Sprintf("must be at most %d characters", maxLen)
	}
}

func (f fieldErrors) optionalText(field string, value *string, maxLen int) {
	if value != nil {
		f.text(field, *value, maxLen)
	}
}

func (f fieldErrors) id(field, value string) {
	if _, err := uuid.Parse(value); err != nil {
		f[field] = "must be a valid uuid"
	}
}

func (f fieldErrors) optionalID(field string, value *string) {
	if value != nil {
		f.id(field, *value)
	}
}

func (f fieldErrors) digits(field, value string) {
	if !isDigits(value) {
		f[field] = "must contain only digits"
	}
}

func (f fieldErrors) date(field string, value time.Time) {
	if value.IsZero() {
		f[field] = "is required"
	}
}

func (f fieldErrors) check(ok bool, field, message string) {
	if !ok {
		f[field] = message
	}
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return apperrors.NewValidationError("invalid payload", map[string]any(f))
}

// validateID rejects malformed identifiers before they reach the database.
func validateID(field, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.NewValidationError("invalid identifier", map[string]any{field: "must be a valid uuid"})
	}
	return nil
}
