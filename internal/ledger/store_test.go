package ledger_test

import (
	"errors"
	"testing"
	"time"

	"github.com/finsheet/Finance-Sheets-Backend/internal/apperrors"
	"github.com/finsheet/Finance-Sheets-Backend/internal/ledger"
	"github.com/finsheet/Finance-Sheets-Backend/internal/model"
	"github.com/finsheet/Finance-Sheets-Backend/internal/testutil"
)

// TestStore_AddSheet tests sheet creation.
//
// WHY: Creating a sheet is the entry point of the whole ledger; the new sheet
// must land at the end of the active list and immediately become selected.
func TestStore_AddSheet(t *testing.T) {
	t.Run("appends the new sheet and selects it", func(t *testing.T) {
		// Setup
		store := ledger.New()

		// Execute
		first, err := store.AddSheet("Personal")
		if err != nil {
			t.Fatalf("AddSheet() returned unexpected error: %v", err)
		}
		second, err := store.AddSheet("Business")
		if err != nil {
			t.Fatalf("AddSheet() returned unexpected error: %v", err)
		}

		// Assert
		sheets := store.Sheets()
		if len(sheets) != 2 {
			t.Fatalf("Expected 2 sheets, got %d", len(sheets))
		}
		if sheets[0].ID != first.ID || sheets[1].ID != second.ID {
			t.Error("Expected sheets in creation order")
		}
		if store.SelectedID() != second.ID {
			t.Errorf("Expected newest sheet selected, got %s", store.SelectedID())
		}
	})

	t.Run("rejects a whitespace-only name", func(t *testing.T) {
		store := ledger.New()

		_, err := store.AddSheet("   ")
		if !errors.Is(err, apperrors.ErrEmptySheetName) {
			t.Errorf("Expected ErrEmptySheetName, got %v", err)
		}
		if len(store.Sheets()) != 0 {
			t.Error("Expected no sheet created on validation failure")
		}
	})

	t.Run("assigns unique ids", func(t *testing.T) {
		store := ledger.New()

		a, _ := store.AddSheet("A")
		b, _ := store.AddSheet("B")
		if a.ID == b.ID {
			t.Error("Expected distinct sheet ids")
		}
	})
}

// TestStore_DeleteSheet tests soft deletion into the trash.
//
// WHY: Deletion must preserve the minimum-one-active invariant, keep the
// sheet's transactions intact through the move, and hand selection to the
// first remaining sheet.
func TestStore_DeleteSheet(t *testing.T) {
	t.Run("moves the sheet to the trash with its transactions", func(t *testing.T) {
		// Setup
		store := testutil.NewTestStore(t, "Keep", "Drop")
		sheets := store.Sheets()
		tx := testutil.AddExpense(t, store, sheets[1].ID, "Lunch", 12.00, model.CategoryFood)

		// Execute
		store.DeleteSheet(sheets[1].ID)

		// Assert
		if len(store.Sheets()) != 1 {
			t.Fatalf("Expected 1 active sheet, got %d", len(store.Sheets()))
		}
		trashed := store.TrashedSheets()
		if len(trashed) != 1 {
			t.Fatalf("Expected 1 trashed sheet, got %d", len(trashed))
		}
		if len(trashed[0].Transactions) != 1 || trashed[0].Transactions[0].ID != tx.ID {
			t.Error("Expected transactions to survive the move to trash")
		}
	})

	t.Run("never deletes the last active sheet", func(t *testing.T) {
		store := testutil.NewTestStore(t, "Only")
		only := store.Sheets()[0]

		store.DeleteSheet(only.ID)

		if len(store.Sheets()) != 1 {
			t.Error("Expected the last active sheet to survive deletion")
		}
		if len(store.TrashedSheets()) != 0 {
			t.Error("Expected empty trash")
		}
	})

	t.Run("ignores unknown ids", func(t *testing.T) {
		store := testutil.NewTestStore(t, "A", "B")

		store.DeleteSheet(testutil.MakeID())

		if len(store.Sheets()) != 2 {
			t.Error("Expected active sheets unchanged for unknown id")
		}
	})

	t.Run("transfers selection to the first remaining sheet", func(t *testing.T) {
		store := testutil.NewTestStore(t, "First", "Second", "Third")
		sheets := store.Sheets()
		store.SelectSheet(sheets[2].ID)

		store.DeleteSheet(sheets[2].ID)

		if store.SelectedID() != sheets[0].ID {
			t.Errorf("Expected selection on first remaining sheet %s, got %s", sheets[0].ID, store.SelectedID())
		}
	})

	t.Run("leaves selection alone when another sheet was selected", func(t *testing.T) {
		store := testutil.NewTestStore(t, "First", "Second", "Third")
		sheets := store.Sheets()
		store.SelectSheet(sheets[1].ID)

		store.DeleteSheet(sheets[2].ID)

		if store.SelectedID() != sheets[1].ID {
			t.Errorf("Expected selection unchanged, got %s", store.SelectedID())
		}
	})
}

// TestStore_RestoreSheet tests restoration from the trash.
//
// WHY: Restore must be lossless, re-sort the active sheets by name, and adopt
// selection only when nothing is selected. The round trip delete-then-restore
// has to leave the sheet byte-for-byte equal.
func TestStore_RestoreSheet(t *testing.T) {
	t.Run("round trip through the trash is lossless", func(t *testing.T) {
		// Setup
		store := testutil.NewTestStore(t, "Anchor", "Traveler")
		traveler := store.Sheets()[1]
		testutil.AddExpense(t, store, traveler.ID, "Bus ticket", 2.75, model.CategoryTransport)
		testutil.AddIncome(t, store, traveler.ID, "Refund", 30, model.CategoryOther)
		before, err := store.Sheet(traveler.ID)
		if err != nil {
			t.Fatalf("Sheet() returned unexpected error: %v", err)
		}

		// Execute
		store.DeleteSheet(traveler.ID)
		store.RestoreSheet(traveler.ID)

		// Assert
		after, err := store.Sheet(traveler.ID)
		if err != nil {
			t.Fatalf("Expected sheet active after restore, got %v", err)
		}
		if after.Name != before.Name || len(after.Transactions) != len(before.Transactions) {
			t.Fatal("Expected sheet unchanged after round trip")
		}
		for i := range before.Transactions {
			if after.Transactions[i] != before.Transactions[i] {
				t.Errorf("Transaction %d changed across round trip", i)
			}
		}
	})

	t.Run("re-sorts active sheets by name ascending", func(t *testing.T) {
		store := testutil.NewTestStore(t, "Charlie", "Alpha")
		charlie := store.Sheets()[0]

		store.DeleteSheet(charlie.ID)
		store.RestoreSheet(charlie.ID)

		names := []string{}
		for _, s := range store.Sheets() {
			names = append(names, s.Name)
		}
		if names[0] != "Alpha" || names[1] != "Charlie" {
			t.Errorf("Expected [Alpha Charlie], got %v", names)
		}
	})

	t.Run("ignores ids not in the trash", func(t *testing.T) {
		store := testutil.NewTestStore(t, "A")

		store.RestoreSheet(testutil.MakeID())

		if len(store.Sheets()) != 1 || len(store.TrashedSheets()) != 0 {
			t.Error("Expected state unchanged for unknown id")
		}
	})

	t.Run("keeps existing selection", func(t *testing.T) {
		store := testutil.NewTestStore(t, "Stay", "Go")
		stay, g := store.Sheets()[0], store.Sheets()[1]
		store.SelectSheet(stay.ID)

		store.DeleteSheet(g.ID)
		store.RestoreSheet(g.ID)

		if store.SelectedID() != stay.ID {
			t.Errorf("Expected selection to stay on %s, got %s", stay.ID, store.SelectedID())
		}
	})
}

// TestStore_PermanentlyDeleteSheet tests irreversible removal from the trash.
//
// WHY: Permanent deletion must only act on trashed sheets; active sheets are
// not reachable through it.
func TestStore_PermanentlyDeleteSheet(t *testing.T) {
	t.Run("removes a trashed sheet for good", func(t *testing.T) {
		store := testutil.NewTestStore(t, "Keep", "Gone")
		gone := store.Sheets()[1]
		store.DeleteSheet(gone.ID)

		store.PermanentlyDeleteSheet(gone.ID)

		if len(store.TrashedSheets()) != 0 {
			t.Error("Expected empty trash")
		}
		store.RestoreSheet(gone.ID)
		if len(store.Sheets()) != 1 {
			t.Error("Expected permanently deleted sheet to be unrecoverable")
		}
	})

	t.Run("does not touch active sheets", func(t *testing.T) {
		store := testutil.NewTestStore(t, "Active")
		active := store.Sheets()[0]

		store.PermanentlyDeleteSheet(active.ID)

		if len(store.Sheets()) != 1 {
			t.Error("Expected active sheet untouched")
		}
	})
}

// TestStore_SelectSheet tests the selection operations.
//
// WHY: Selection is deliberately permissive on write and strict on read; the
// pair of behaviors must hold together so a stale selection never surfaces a
// sheet that is not active.
func TestStore_SelectSheet(t *testing.T) {
	t.Run("accepts any id without validation", func(t *testing.T) {
		store := testutil.NewTestStore(t, "A")
		bogus := testutil.MakeID()

		store.SelectSheet(bogus)

		if store.SelectedID() != bogus {
			t.Errorf("Expected selected id %s, got %s", bogus, store.SelectedID())
		}
	})

	t.Run("SelectedSheet resolves only active sheets", func(t *testing.T) {
		store := testutil.NewTestStore(t, "A")
		store.SelectSheet(testutil.MakeID())

		if _, ok := store.SelectedSheet(); ok {
			t.Error("Expected no selected sheet for a dangling id")
		}
	})

	t.Run("SelectedSheet returns the selected sheet", func(t *testing.T) {
		store := testutil.NewTestStore(t, "A", "B")
		b := store.Sheets()[1]
		store.SelectSheet(b.ID)

		sheet, ok := store.SelectedSheet()
		if !ok || sheet.ID != b.ID {
			t.Errorf("Expected selected sheet %s, got %v (%v)", b.ID, sheet.ID, ok)
		}
	})
}

// TestStore_AddTransaction tests transaction creation.
//
// WHY: The store assigns identity and date itself and prepends to keep the
// newest-first ordering; violating either breaks every consumer that reads a
// sheet's sequence.
func TestStore_AddTransaction(t *testing.T) {
	t.Run("prepends with a fresh id and the current date", func(t *testing.T) {
		// Setup
		store := testutil.NewTestStore(t, "Budget")
		sheet := store.Sheets()[0]
		frozen := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
		testutil.FreezeClock(store, frozen)

		// Execute
		first := testutil.AddExpense(t, store, sheet.ID, "Groceries", 54.20, model.CategoryFood)
		second := testutil.AddIncome(t, store, sheet.ID, "Salary", 3000, model.CategorySalary)

		// Assert
		got, err := store.Sheet(sheet.ID)
		if err != nil {
			t.Fatalf("Sheet() returned unexpected error: %v", err)
		}
		if len(got.Transactions) != 2 {
			t.Fatalf("Expected 2 transactions, got %d", len(got.Transactions))
		}
		if got.Transactions[0].ID != second.ID || got.Transactions[1].ID != first.ID {
			t.Error("Expected newest transaction first")
		}
		want := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
		if !first.Date.Equal(want) {
			t.Errorf("Expected transaction date %v, got %v", want, first.Date)
		}
		if first.ID == second.ID {
			t.Error("Expected distinct transaction ids")
		}
	})

	t.Run("returns ErrSheetNotFound for unknown sheets", func(t *testing.T) {
		store := testutil.NewTestStore(t, "Budget")

		_, err := store.AddTransaction(testutil.MakeID(), model.TransactionDraft{
			Description: "Orphan",
			Amount:      5,
			Type:        model.TypeExpense,
			Category:    model.CategoryOther,
		})
		if !errors.Is(err, apperrors.ErrSheetNotFound) {
			t.Errorf("Expected ErrSheetNotFound, got %v", err)
		}
	})

	t.Run("rejects invalid drafts without mutating the sheet", func(t *testing.T) {
		store := testutil.NewTestStore(t, "Budget")
		sheet := store.Sheets()[0]

		_, err := store.AddTransaction(sheet.ID, model.TransactionDraft{
			Description: "Bad",
			Amount:      -1,
			Type:        model.TypeExpense,
			Category:    model.CategoryFood,
		})

		if !errors.Is(err, apperrors.ErrNonPositiveAmount) {
			t.Errorf("Expected ErrNonPositiveAmount, got %v", err)
		}
		got, _ := store.Sheet(sheet.ID)
		if len(got.Transactions) != 0 {
			t.Error("Expected no transaction created on validation failure")
		}
	})

	t.Run("does not touch trashed sheets", func(t *testing.T) {
		store := testutil.NewTestStore(t, "Keep", "Trashed")
		trashed := store.Sheets()[1]
		store.DeleteSheet(trashed.ID)

		_, err := store.AddTransaction(trashed.ID, model.TransactionDraft{
			Description: "Late",
			Amount:      5,
			Type:        model.TypeExpense,
			Category:    model.CategoryOther,
		})
		if !errors.Is(err, apperrors.ErrSheetNotFound) {
			t.Errorf("Expected ErrSheetNotFound for trashed sheet, got %v", err)
		}
	})
}

// TestStore_DeleteTransaction tests transaction removal.
//
// WHY: Deletes are idempotent-style; stale client state must not cause
// errors, and only the named sheet may be touched.
func TestStore_DeleteTransaction(t *testing.T) {
	t.Run("removes exactly the named transaction", func(t *testing.T) {
		store := testutil.NewTestStore(t, "Budget")
		sheet := store.Sheets()[0]
		keep := testutil.AddExpense(t, store, sheet.ID, "Keep", 10, model.CategoryFood)
		drop := testutil.AddExpense(t, store, sheet.ID, "Drop", 20, model.CategoryFood)

		store.DeleteTransaction(sheet.ID, drop.ID)

		got, _ := store.Sheet(sheet.ID)
		if len(got.Transactions) != 1 || got.Transactions[0].ID != keep.ID {
			t.Error("Expected only the named transaction removed")
		}
	})

	t.Run("ignores missing transactions and missing sheets", func(t *testing.T) {
		store := testutil.NewTestStore(t, "Budget")
		sheet := store.Sheets()[0]
		testutil.AddExpense(t, store, sheet.ID, "Keep", 10, model.CategoryFood)

		store.DeleteTransaction(sheet.ID, testutil.MakeID())
		store.DeleteTransaction(testutil.MakeID(), testutil.MakeID())

		got, _ := store.Sheet(sheet.ID)
		if len(got.Transactions) != 1 {
			t.Error("Expected state unchanged for missing ids")
		}
	})
}

// TestStore_Snapshot tests snapshot round trips and load validation.
//
// WHY: Persistence is layered on snapshots; a load must either install a
// fully valid state or reject the snapshot outright. An all-trashed ledger
// and a dangling selected id are the two defects repaired instead of
// rejected.
func TestStore_Snapshot(t *testing.T) {
	t.Run("snapshot and load round trip preserves state", func(t *testing.T) {
		// Setup
		store := testutil.NewTestStore(t, "Active", "Trashme")
		trashme := store.Sheets()[1]
		testutil.AddExpense(t, store, store.Sheets()[0].ID, "Rent", 900, model.CategoryHousing)
		store.DeleteSheet(trashme.ID)

		// Execute
		snap := store.Snapshot()
		restored := ledger.New()
		if err := restored.LoadSnapshot(snap); err != nil {
			t.Fatalf("LoadSnapshot() returned unexpected error: %v", err)
		}

		// Assert
		if len(restored.Sheets()) != 1 || len(restored.TrashedSheets()) != 1 {
			t.Fatal("Expected active and trashed sheets to survive the round trip")
		}
		if restored.SelectedID() != store.SelectedID() {
			t.Errorf("Expected selection %s, got %s", store.SelectedID(), restored.SelectedID())
		}
		if len(restored.Sheets()[0].Transactions) != 1 {
			t.Error("Expected transactions to survive the round trip")
		}
	})

	t.Run("rejects duplicate sheet ids across active and trash", func(t *testing.T) {
		store := ledger.New()
		dup := testutil.MakeSheet("Dup")

		err := store.LoadSnapshot(model.LedgerSnapshot{
			ActiveSheets:  []model.Sheet{dup},
			TrashedSheets: []model.Sheet{dup},
		})

		if !errors.Is(err, apperrors.ErrSnapshotInvalid) {
			t.Errorf("Expected ErrSnapshotInvalid, got %v", err)
		}
	})

	t.Run("rejects invalid transactions", func(t *testing.T) {
		store := ledger.New()
		sheet := testutil.MakeSheet("Bad", model.Transaction{
			ID:          testutil.MakeID(),
			Description: "Negative",
			Amount:      -5,
			Type:        model.TypeExpense,
			Category:    model.CategoryFood,
		})

		err := store.LoadSnapshot(model.LedgerSnapshot{ActiveSheets: []model.Sheet{sheet}})

		if !errors.Is(err, apperrors.ErrSnapshotInvalid) {
			t.Errorf("Expected ErrSnapshotInvalid, got %v", err)
		}
	})

	t.Run("rejection leaves the store unchanged", func(t *testing.T) {
		store := testutil.NewTestStore(t, "Existing")

		err := store.LoadSnapshot(model.LedgerSnapshot{
			ActiveSheets: []model.Sheet{{ID: "", Name: "NoID"}},
		})

		if !errors.Is(err, apperrors.ErrSnapshotInvalid) {
			t.Fatalf("Expected ErrSnapshotInvalid, got %v", err)
		}
		if len(store.Sheets()) != 1 || store.Sheets()[0].Name != "Existing" {
			t.Error("Expected store unchanged after rejected load")
		}
	})

	t.Run("repairs a snapshot with only trashed sheets", func(t *testing.T) {
		store := ledger.New()
		first := testutil.MakeSheet("First",
			testutil.MakeTransaction("Rent", 900, model.TypeExpense, model.CategoryHousing, time.Now()))
		second := testutil.MakeSheet("Second")

		err := store.LoadSnapshot(model.LedgerSnapshot{
			TrashedSheets: []model.Sheet{first, second},
		})

		if err != nil {
			t.Fatalf("LoadSnapshot() returned unexpected error: %v", err)
		}
		if len(store.Sheets()) != 1 || store.Sheets()[0].ID != first.ID {
			t.Fatal("Expected the first trashed sheet restored to active")
		}
		if len(store.Sheets()[0].Transactions) != 1 {
			t.Error("Expected the restored sheet to keep its transactions")
		}
		if len(store.TrashedSheets()) != 1 || store.TrashedSheets()[0].ID != second.ID {
			t.Error("Expected the remaining sheet to stay in trash")
		}
		if store.SelectedID() != first.ID {
			t.Errorf("Expected selection to fall back to %s, got %s", first.ID, store.SelectedID())
		}
	})

	t.Run("repairs a dangling selected id", func(t *testing.T) {
		store := ledger.New()
		sheet := testutil.MakeSheet("Only")

		err := store.LoadSnapshot(model.LedgerSnapshot{
			ActiveSheets: []model.Sheet{sheet},
			SelectedID:   testutil.MakeID(),
		})

		if err != nil {
			t.Fatalf("LoadSnapshot() returned unexpected error: %v", err)
		}
		if store.SelectedID() != sheet.ID {
			t.Errorf("Expected selection repaired to %s, got %s", sheet.ID, store.SelectedID())
		}
	})
}

// TestStore_CopySemantics tests that reads return clones.
//
// WHY: The store's single-writer guarantee is worthless if callers can reach
// into shared slices and mutate state without the mutex.
func TestStore_CopySemantics(t *testing.T) {
	t.Run("mutating a returned sheet does not affect the store", func(t *testing.T) {
		store := testutil.NewTestStore(t, "Budget")
		sheet := store.Sheets()[0]
		testutil.AddExpense(t, store, sheet.ID, "Coffee", 3.50, model.CategoryFood)

		got, _ := store.Sheet(sheet.ID)
		got.Transactions[0].Amount = 9999

		fresh, _ := store.Sheet(sheet.ID)
		if fresh.Transactions[0].Amount != 3.50 {
			t.Error("Expected store state unaffected by caller mutation")
		}
	})
}
