package validation

import (
	"strings"

	"github.com/finsheet/Finance-Sheets-Backend/internal/api/request"
)

// ValidateCreateSheet validates a sheet creation request.
//
// Required fields:
//   - name: Must be non-empty after trimming whitespace, at most 100 characters
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateSheet(req request.CreateSheetRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateSelectSheet validates a sheet selection request. The id must be a
// well-formed UUID; whether it names an active sheet is deliberately not
// checked here, matching the store's permissive selection behavior.
func ValidateSelectSheet(req request.SelectSheetRequest) error {
	return ValidateUUID(req.ID)
}
