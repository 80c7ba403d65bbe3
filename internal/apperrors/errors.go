package apperrors

import "errors"

// Domain entity errors represent missing entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrSheetNotFound indicates that an active sheet with the given ID does not exist.
	ErrSheetNotFound = errors.New("sheet not found")

	// ErrNoSheetSelected indicates that no sheet is currently selected.
	ErrNoSheetSelected = errors.New("no sheet selected")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business
// rules. They are surfaced to the caller synchronously and never partially
// applied.
var (
	// ErrEmptySheetName indicates that a sheet name is empty after trimming whitespace.
	ErrEmptySheetName = errors.New("sheet name cannot be empty")

	// ErrEmptyDescription indicates that a transaction description is empty.
	ErrEmptyDescription = errors.New("description cannot be empty")

	// ErrNonPositiveAmount indicates that a transaction amount is zero or negative.
	ErrNonPositiveAmount = errors.New("amount must be strictly positive")

	// ErrInvalidTransactionType indicates a transaction type outside income/expense.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrCategoryTypeMismatch indicates that a category does not belong to the
	// category subset matching the transaction type.
	ErrCategoryTypeMismatch = errors.New("category does not match transaction type")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")
)

// External adapter errors represent failures of the receipt intake adapter.
// Adapter failures are reported as retryable and never mutate ledger state.
var (
	// ErrReceiptParseFailed indicates that the AI receipt parser returned a
	// malformed response or the call failed. The operation can be retried.
	ErrReceiptParseFailed = errors.New("failed to parse receipt")

	// ErrScannerNotConfigured indicates that no API key is available for the
	// receipt scanner.
	ErrScannerNotConfigured = errors.New("receipt scanner is not configured")
)

// Persistence errors represent inconsistencies in loaded snapshot data or an
// absent persistence layer.
var (
	// ErrSnapshotInvalid indicates that a persisted ledger snapshot violates
	// entity invariants and was rejected on load.
	ErrSnapshotInvalid = errors.New("persisted ledger snapshot is invalid")

	// ErrSettingsUnavailable indicates that an operation requires the settings
	// store but the server is running without a database.
	ErrSettingsUnavailable = errors.New("settings storage is not available")
)
