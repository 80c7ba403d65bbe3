package validation

import (
	"encoding/base64"
	"strings"

	"github.com/finsheet/Finance-Sheets-Backend/internal/api/request"
)

// ValidateParseReceipt validates a receipt parse request.
//
// Required fields:
//   - image: Must be non-empty, valid base64
//   - mimeType: Must be an image/* mime type
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateParseReceipt(req request.ParseReceiptRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Image) == "" {
		errors["image"] = "image is required"
	} else if _, err := base64.StdEncoding.DecodeString(req.Image); err != nil {
		errors["image"] = "image must be valid base64"
	}

	if strings.TrimSpace(req.MimeType) == "" {
		errors["mimeType"] = "mimeType is required"
	} else if !strings.HasPrefix(req.MimeType, "image/") {
		errors["mimeType"] = "mimeType must be an image type"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateConfirmReceipt validates a receipt confirmation request. The
// category is not validated against the expense set here: unrecognized
// AI-sourced categories are normalized to "Other" downstream rather than
// rejected.
func ValidateConfirmReceipt(req request.ConfirmReceiptRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Description) == "" {
		errors["description"] = "description is required"
	}

	if req.Amount <= 0 {
		errors["amount"] = "amount must be strictly positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateReceiptConfig validates a scanner configuration update.
func ValidateUpdateReceiptConfig(req request.UpdateReceiptConfigRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.APIKey) == "" {
		errors["apiKey"] = "apiKey is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
