package validation

import (
	"fmt"
	"strings"

	"github.com/finsheet/Finance-Sheets-Backend/internal/api/request"
	"github.com/finsheet/Finance-Sheets-Backend/internal/model"
)

// ValidateCreateTransaction validates a transaction creation request.
// Checks all required fields and validates their formats and constraints.
//
// Required fields:
//   - description: Must be non-empty, at most 200 characters
//   - amount: Must be strictly positive
//   - type: Must be one of: income, expense
//   - category: Must belong to the category set matching the type ("Other"
//     is accepted for both types)
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Description) == "" {
		errors["description"] = "description is required"
	} else if len(req.Description) > 200 {
		errors["description"] = "description must be 200 characters or less"
	}

	if req.Amount <= 0 {
		errors["amount"] = "amount must be strictly positive"
	}

	transactionType := model.TransactionType(req.Type)
	if strings.TrimSpace(req.Type) == "" {
		errors["type"] = "type is required"
	} else if !model.ValidTransactionType[transactionType] {
		errors["type"] = fmt.Sprintf("invalid type: %s", req.Type)
	}

	if strings.TrimSpace(req.Category) == "" {
		errors["category"] = "category is required"
	} else if _, hasTypeErr := errors["type"]; !hasTypeErr {
		if !model.Category(req.Category).IsValidForType(transactionType) {
			errors["category"] = fmt.Sprintf("category %q is not valid for type %q", req.Category, req.Type)
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
