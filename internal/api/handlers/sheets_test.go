package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/finsheet/Finance-Sheets-Backend/internal/api/handlers"
	"github.com/finsheet/Finance-Sheets-Backend/internal/api/request"
	"github.com/finsheet/Finance-Sheets-Backend/internal/model"
	"github.com/finsheet/Finance-Sheets-Backend/internal/testutil"
)

// TestSheetHandler_Sheets tests the sheet list endpoint.
//
// WHY: The list drives the sheet switcher in the frontend; it must return
// active sheets only, in creation order.
func TestSheetHandler_Sheets(t *testing.T) {
	// Setup
	store := testutil.NewTestStore(t, "Personal", "Business")
	handler := handlers.NewSheetHandler(testutil.NewTestSheetService(t, store))
	req := httptest.NewRequest(http.MethodGet, "/api/sheet", nil)
	rec := httptest.NewRecorder()

	// Execute
	handler.Sheets(rec, req)

	// Assert
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	sheets := testutil.DecodeJSONResponse[[]model.Sheet](t, rec)
	if len(sheets) != 2 {
		t.Fatalf("Expected 2 sheets, got %d", len(sheets))
	}
	if sheets[0].Name != "Personal" || sheets[1].Name != "Business" {
		t.Error("Expected sheets in creation order")
	}
}

// TestSheetHandler_CreateSheet tests sheet creation over HTTP.
//
// WHY: Creation is the only way new sheets enter the system; the handler must
// reject bad input with 400 and return the full sheet on success so the
// frontend can switch to it immediately.
func TestSheetHandler_CreateSheet(t *testing.T) {
	t.Run("creates and selects the new sheet", func(t *testing.T) {
		// Setup
		store := testutil.NewTestStore(t, "Existing")
		handler := handlers.NewSheetHandler(testutil.NewTestSheetService(t, store))
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/sheet",
			request.CreateSheetRequest{Name: "Groceries"}, nil)
		rec := httptest.NewRecorder()

		// Execute
		handler.CreateSheet(rec, req)

		// Assert
		if rec.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
		}
		sheet := testutil.DecodeJSONResponse[model.Sheet](t, rec)
		if sheet.Name != "Groceries" || sheet.ID == "" {
			t.Errorf("Expected named sheet with an id, got %+v", sheet)
		}
		if store.SelectedID() != sheet.ID {
			t.Error("Expected the new sheet to become selected")
		}
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		store := testutil.NewTestStore(t, "Existing")
		handler := handlers.NewSheetHandler(testutil.NewTestSheetService(t, store))
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/sheet",
			request.CreateSheetRequest{Name: "   "}, nil)
		rec := httptest.NewRecorder()

		handler.CreateSheet(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rec.Code)
		}
		if len(store.Sheets()) != 1 {
			t.Error("Expected no sheet created")
		}
	})

	t.Run("rejects a malformed body", func(t *testing.T) {
		store := testutil.NewTestStore(t, "Existing")
		handler := handlers.NewSheetHandler(testutil.NewTestSheetService(t, store))
		req := httptest.NewRequest(http.MethodPost, "/api/sheet", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()

		handler.CreateSheet(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rec.Code)
		}
	})
}

// TestSheetHandler_GetSheet tests single-sheet retrieval.
//
// WHY: Trashed and unknown sheets must be indistinguishable here; both are 404.
func TestSheetHandler_GetSheet(t *testing.T) {
	t.Run("returns an active sheet", func(t *testing.T) {
		store := testutil.NewTestStore(t, "Budget")
		sheetID := store.Sheets()[0].ID
		handler := handlers.NewSheetHandler(testutil.NewTestSheetService(t, store))
		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/sheet/"+sheetID,
			map[string]string{"uuid": sheetID})
		rec := httptest.NewRecorder()

		handler.GetSheet(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rec.Code)
		}
		sheet := testutil.DecodeJSONResponse[model.Sheet](t, rec)
		if sheet.ID != sheetID {
			t.Errorf("Expected sheet %s, got %s", sheetID, sheet.ID)
		}
	})

	t.Run("returns 404 for a trashed sheet", func(t *testing.T) {
		store := testutil.NewTestStore(t, "Keep", "Trash")
		trashedID := store.Sheets()[1].ID
		store.DeleteSheet(trashedID)
		handler := handlers.NewSheetHandler(testutil.NewTestSheetService(t, store))
		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/sheet/"+trashedID,
			map[string]string{"uuid": trashedID})
		rec := httptest.NewRecorder()

		handler.GetSheet(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", rec.Code)
		}
	})
}

// TestSheetHandler_DeleteSheet tests trashing over HTTP.
//
// WHY: Delete is idempotent by contract: unknown IDs and the protected last
// sheet both produce 204 with no state change, so the frontend never needs to
// special-case delete failures.
func TestSheetHandler_DeleteSheet(t *testing.T) {
	t.Run("moves the sheet to trash", func(t *testing.T) {
		store := testutil.NewTestStore(t, "Keep", "Remove")
		removeID := store.Sheets()[1].ID
		handler := handlers.NewSheetHandler(testutil.NewTestSheetService(t, store))
		req := testutil.NewRequestWithURLParams(http.MethodDelete, "/api/sheet/"+removeID,
			map[string]string{"uuid": removeID})
		rec := httptest.NewRecorder()

		handler.DeleteSheet(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("Expected status 204, got %d", rec.Code)
		}
		if len(store.TrashedSheets()) != 1 {
			t.Error("Expected sheet in trash")
		}
	})

	t.Run("silently refuses to trash the last sheet", func(t *testing.T) {
		store := testutil.NewTestStore(t, "Only")
		onlyID := store.Sheets()[0].ID
		handler := handlers.NewSheetHandler(testutil.NewTestSheetService(t, store))
		req := testutil.NewRequestWithURLParams(http.MethodDelete, "/api/sheet/"+onlyID,
			map[string]string{"uuid": onlyID})
		rec := httptest.NewRecorder()

		handler.DeleteSheet(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("Expected status 204, got %d", rec.Code)
		}
		if len(store.Sheets()) != 1 {
			t.Error("Expected the last sheet to survive")
		}
	})
}

// TestSheetHandler_SelectedSheet tests selection reads and writes.
//
// WHY: Selection is permissive on write (any well-formed UUID is stored) but
// strict on read (a dangling selection is a 404); the pair of endpoints must
// honor both halves.
func TestSheetHandler_SelectedSheet(t *testing.T) {
	t.Run("returns the selected sheet", func(t *testing.T) {
		store := testutil.NewTestStore(t, "Budget")
		handler := handlers.NewSheetHandler(testutil.NewTestSheetService(t, store))
		req := httptest.NewRequest(http.MethodGet, "/api/sheet/selected", nil)
		rec := httptest.NewRecorder()

		handler.SelectedSheet(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rec.Code)
		}
		sheet := testutil.DecodeJSONResponse[model.Sheet](t, rec)
		if sheet.Name != "Budget" {
			t.Errorf("Expected Budget, got %s", sheet.Name)
		}
	})

	t.Run("returns 404 for a dangling selection", func(t *testing.T) {
		store := testutil.NewTestStore(t, "Budget")
		store.SelectSheet(testutil.MakeID())
		handler := handlers.NewSheetHandler(testutil.NewTestSheetService(t, store))
		req := httptest.NewRequest(http.MethodGet, "/api/sheet/selected", nil)
		rec := httptest.NewRecorder()

		handler.SelectedSheet(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", rec.Code)
		}
	})

	t.Run("accepts any well-formed id on select", func(t *testing.T) {
		store := testutil.NewTestStore(t, "Budget")
		handler := handlers.NewSheetHandler(testutil.NewTestSheetService(t, store))
		unknown := testutil.MakeID()
		req := testutil.NewJSONRequest(t, http.MethodPut, "/api/sheet/selected",
			request.SelectSheetRequest{ID: unknown}, nil)
		rec := httptest.NewRecorder()

		handler.SelectSheet(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("Expected status 204, got %d", rec.Code)
		}
		if store.SelectedID() != unknown {
			t.Error("Expected the unknown id to be stored as-is")
		}
	})

	t.Run("rejects a malformed id on select", func(t *testing.T) {
		store := testutil.NewTestStore(t, "Budget")
		handler := handlers.NewSheetHandler(testutil.NewTestSheetService(t, store))
		req := testutil.NewJSONRequest(t, http.MethodPut, "/api/sheet/selected",
			request.SelectSheetRequest{ID: "not-a-uuid"}, nil)
		rec := httptest.NewRecorder()

		handler.SelectSheet(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rec.Code)
		}
	})
}
