package testutil

import (
	"testing"
	"time"

	"github.com/finsheet/Finance-Sheets-Backend/internal/ledger"
	"github.com/finsheet/Finance-Sheets-Backend/internal/model"
)

// MakeTransaction builds a transaction with a fresh ID and the given fields.
// The date is truncated to a calendar day like the store would.
func MakeTransaction(description string, amount float64, transactionType model.TransactionType, category model.Category, date time.Time) model.Transaction {
	return model.Transaction{
		ID:          MakeID(),
		Date:        model.DateOnly(date),
		Description: description,
		Amount:      amount,
		Type:        transactionType,
		Category:    category,
	}
}

// MakeExpense builds an expense transaction dated today.
func MakeExpense(description string, amount float64, category model.Category) model.Transaction {
	return MakeTransaction(description, amount, model.TypeExpense, category, time.Now())
}

// MakeIncome builds an income transaction dated today.
func MakeIncome(description string, amount float64, category model.Category) model.Transaction {
	return MakeTransaction(description, amount, model.TypeIncome, category, time.Now())
}

// MakeSheet builds a sheet with a fresh ID holding the given transactions.
func MakeSheet(name string, transactions ...model.Transaction) model.Sheet {
	return model.Sheet{
		ID:           MakeID(),
		Name:         name,
		Transactions: transactions,
	}
}

// AddExpense adds an expense transaction to the named sheet through the
// ordinary add path and returns the created transaction.
func AddExpense(t *testing.T, store *ledger.Store, sheetID, description string, amount float64, category model.Category) model.Transaction {
	t.Helper()

	tx, err := store.AddTransaction(sheetID, model.TransactionDraft{
		Description: description,
		Amount:      amount,
		Type:        model.TypeExpense,
		Category:    category,
	})
	if err != nil {
		t.Fatalf("Failed to add expense %q: %v", description, err)
	}
	return tx
}

// AddIncome adds an income transaction to the named sheet through the
// ordinary add path and returns the created transaction.
func AddIncome(t *testing.T, store *ledger.Store, sheetID, description string, amount float64, category model.Category) model.Transaction {
	t.Helper()

	tx, err := store.AddTransaction(sheetID, model.TransactionDraft{
		Description: description,
		Amount:      amount,
		Type:        model.TypeIncome,
		Category:    category,
	})
	if err != nil {
		t.Fatalf("Failed to add income %q: %v", description, err)
	}
	return tx
}
