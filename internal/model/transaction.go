package model

import (
	"strings"
	"time"

	"github.com/finsheet/Finance-Sheets-Backend/internal/apperrors"
)

// Transaction represents a single income or expense record inside a sheet.
// A transaction is immutable once created: the ledger store assigns the ID and
// date at creation time and never mutates a transaction in place.
type Transaction struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"` // always strictly positive; sign is carried by Type
	Type        TransactionType `json:"type"`
	Category    Category        `json:"category"`
}

// TransactionDraft is an unvalidated candidate transaction awaiting acceptance
// into a sheet. Drafts come either from direct user input or from the receipt
// intake adapter.
type TransactionDraft struct {
	Description string
	Amount      float64
	Type        TransactionType
	Category    Category
}

// Validate checks the draft against the entity invariants: non-empty
// description, strictly positive amount, known type, and a category belonging
// to the subset matching the type (or CategoryOther).
func (d TransactionDraft) Validate() error {
	if strings.TrimSpace(d.Description) == "" {
		return apperrors.ErrEmptyDescription
	}
	if d.Amount <= 0 {
		return apperrors.ErrNonPositiveAmount
	}
	if !ValidTransactionType[d.Type] {
		return apperrors.ErrInvalidTransactionType
	}
	if !d.Category.IsValidForType(d.Type) {
		return apperrors.ErrCategoryTypeMismatch
	}
	return nil
}

// DateOnly truncates t to a calendar date (midnight UTC). Transactions carry
// no time-of-day component.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
