package testutil

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/finsheet/Finance-Sheets-Backend/internal/gemini"
	"github.com/finsheet/Finance-Sheets-Backend/internal/ledger"
	"github.com/finsheet/Finance-Sheets-Backend/internal/service"
)

// NewTestStore creates a fresh ledger store seeded with one sheet per given
// name. The first sheet becomes selected.
func NewTestStore(t *testing.T, sheetNames ...string) *ledger.Store {
	t.Helper()

	store := ledger.New()
	for _, name := range sheetNames {
		if _, err := store.AddSheet(name); err != nil {
			t.Fatalf("Failed to seed sheet %q: %v", name, err)
		}
	}
	if sheets := store.Sheets(); len(sheets) > 0 {
		store.SelectSheet(sheets[0].ID)
	}
	return store
}

// FreezeClock pins the store's clock to the given time so transaction dates
// are deterministic.
func FreezeClock(store *ledger.Store, at time.Time) {
	store.SetClock(func() time.Time { return at })
}

func NewTestSheetService(t *testing.T, store *ledger.Store) *service.SheetService {
	t.Helper()

	return service.NewSheetService(store)
}

func NewTestTransactionService(t *testing.T, store *ledger.Store) *service.TransactionService {
	t.Helper()

	return service.NewTransactionService(store)
}

func NewTestReportService(t *testing.T, store *ledger.Store) *service.ReportService {
	t.Helper()

	return service.NewReportService(store)
}

// NewTestReceiptService creates a ReceiptService with a mock Gemini client and
// no settings storage. The API key comes from the envAPIKey parameter; pass an
// empty string to exercise the unconfigured path.
func NewTestReceiptService(t *testing.T, store *ledger.Store, client gemini.Client, envAPIKey string) *service.ReceiptService {
	t.Helper()

	return service.NewReceiptService(client, store, nil, nil, envAPIKey)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeSheetName generates a unique sheet name for testing.
//
// Example usage:
//
//	name := testutil.MakeSheetName("Budget")
//	// Returns: "Budget ABC123"
func MakeSheetName(base string) string {
	if base == "" {
		base = "Sheet"
	}
	return base + " " + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
