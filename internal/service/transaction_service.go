package service

import (
	"github.com/finsheet/Finance-Sheets-Backend/internal/ledger"
	"github.com/finsheet/Finance-Sheets-Backend/internal/model"
)

// TransactionService handles transaction operations within a sheet.
type TransactionService struct {
	store *ledger.Store
}

// NewTransactionService creates a new TransactionService backed by the provided ledger store.
func NewTransactionService(store *ledger.Store) *TransactionService {
	return &TransactionService{store: store}
}

// GetTransactions retrieves the transactions of an active sheet, newest first.
// Returns ErrSheetNotFound when the sheet ID does not name an active sheet.
func (s *TransactionService) GetTransactions(sheetID string) ([]model.Transaction, error) {
	sheet, err := s.store.Sheet(sheetID)
	if err != nil {
		return nil, err
	}
	return sheet.Transactions, nil
}

// CreateTransaction adds a transaction to the named sheet. The store assigns
// the ID and the current date; the draft carries everything else.
//
// Returns a draft validation error or ErrSheetNotFound; in either case no
// transaction is created.
func (s *TransactionService) CreateTransaction(sheetID string, draft model.TransactionDraft) (model.Transaction, error) {
	return s.store.AddTransaction(sheetID, draft)
}

// DeleteTransaction removes a transaction from the named sheet. Missing sheets
// and missing transactions are silent no-ops.
func (s *TransactionService) DeleteTransaction(sheetID, transactionID string) {
	s.store.DeleteTransaction(sheetID, transactionID)
}
