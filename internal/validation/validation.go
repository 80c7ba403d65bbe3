// Package validation checks incoming request payloads before they reach the
// ledger. Field-level failures are collected into an Error keyed by field
// name so clients can surface them next to the offending input.
package validation

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/finsheet/Finance-Sheets-Backend/internal/apperrors"
)

// Error is a validation failure carrying per-field messages.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(msgs, "; ")
}

// ValidateUUID checks if a string is a valid UUID. Failures wrap
// apperrors.ErrInvalidUUID.
func ValidateUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidUUID, id)
	}
	return nil
}
