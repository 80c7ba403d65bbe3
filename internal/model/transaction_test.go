package model_test

import (
	"errors"
	"testing"
	"time"

	"github.com/finsheet/Finance-Sheets-Backend/internal/apperrors"
	"github.com/finsheet/Finance-Sheets-Backend/internal/model"
)

// TestTransactionDraft_Validate tests the entity invariants on drafts.
//
// WHY: Every transaction in the system passes through draft validation before
// it exists; these invariants are the last line of defense for stored data.
func TestTransactionDraft_Validate(t *testing.T) {
	valid := model.TransactionDraft{
		Description: "Weekly groceries",
		Amount:      54.20,
		Type:        model.TypeExpense,
		Category:    model.CategoryFood,
	}

	t.Run("accepts a valid draft", func(t *testing.T) {
		if err := valid.Validate(); err != nil {
			t.Errorf("Validate() returned unexpected error: %v", err)
		}
	})

	t.Run("rejects empty description", func(t *testing.T) {
		draft := valid
		draft.Description = "   "

		if err := draft.Validate(); !errors.Is(err, apperrors.ErrEmptyDescription) {
			t.Errorf("Expected ErrEmptyDescription, got %v", err)
		}
	})

	t.Run("rejects zero amount", func(t *testing.T) {
		draft := valid
		draft.Amount = 0

		if err := draft.Validate(); !errors.Is(err, apperrors.ErrNonPositiveAmount) {
			t.Errorf("Expected ErrNonPositiveAmount, got %v", err)
		}
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		draft := valid
		draft.Amount = -10

		if err := draft.Validate(); !errors.Is(err, apperrors.ErrNonPositiveAmount) {
			t.Errorf("Expected ErrNonPositiveAmount, got %v", err)
		}
	})

	t.Run("rejects unknown transaction type", func(t *testing.T) {
		draft := valid
		draft.Type = "transfer"

		if err := draft.Validate(); !errors.Is(err, apperrors.ErrInvalidTransactionType) {
			t.Errorf("Expected ErrInvalidTransactionType, got %v", err)
		}
	})

	t.Run("rejects category from the wrong partition", func(t *testing.T) {
		draft := valid
		draft.Category = model.CategorySalary

		if err := draft.Validate(); !errors.Is(err, apperrors.ErrCategoryTypeMismatch) {
			t.Errorf("Expected ErrCategoryTypeMismatch, got %v", err)
		}
	})

	t.Run("accepts Other for both types", func(t *testing.T) {
		expense := valid
		expense.Category = model.CategoryOther
		if err := expense.Validate(); err != nil {
			t.Errorf("Validate() returned unexpected error for expense/Other: %v", err)
		}

		income := valid
		income.Type = model.TypeIncome
		income.Category = model.CategoryOther
		if err := income.Validate(); err != nil {
			t.Errorf("Validate() returned unexpected error for income/Other: %v", err)
		}
	})
}

// TestDateOnly tests calendar-date truncation.
//
// WHY: Transactions carry no time of day; the reporting windows group by
// calendar date and depend on consistent UTC midnight values.
func TestDateOnly(t *testing.T) {
	t.Run("truncates time of day in UTC", func(t *testing.T) {
		in := time.Date(2025, 6, 15, 23, 59, 58, 123, time.UTC)
		want := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

		if got := model.DateOnly(in); !got.Equal(want) {
			t.Errorf("DateOnly(%v) = %v, want %v", in, got, want)
		}
	})

	t.Run("converts other zones to UTC first", func(t *testing.T) {
		zone := time.FixedZone("UTC+10", 10*60*60)
		in := time.Date(2025, 6, 15, 5, 0, 0, 0, zone) // 2025-06-14 19:00 UTC
		want := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)

		if got := model.DateOnly(in); !got.Equal(want) {
			t.Errorf("DateOnly(%v) = %v, want %v", in, got, want)
		}
	})
}

// TestSheet_Clone tests deep copying of sheets.
//
// WHY: The ledger store hands out clones; a shallow copy would let callers
// mutate store-owned transaction slices.
func TestSheet_Clone(t *testing.T) {
	t.Run("mutating the clone leaves the original untouched", func(t *testing.T) {
		original := model.Sheet{
			ID:   "s1",
			Name: "Budget",
			Transactions: []model.Transaction{
				{ID: "t1", Description: "Coffee", Amount: 3.50, Type: model.TypeExpense, Category: model.CategoryFood},
			},
		}

		clone := original.Clone()
		clone.Transactions[0].Description = "changed"

		if original.Transactions[0].Description != "Coffee" {
			t.Error("Expected original transaction to be unchanged after mutating clone")
		}
	})

	t.Run("preserves nil transaction slice", func(t *testing.T) {
		clone := model.Sheet{ID: "s1", Name: "Empty"}.Clone()
		if clone.Transactions != nil {
			t.Errorf("Expected nil transactions, got %v", clone.Transactions)
		}
	})
}
