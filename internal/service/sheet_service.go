package service

import (
	"github.com/finsheet/Finance-Sheets-Backend/internal/apperrors"
	"github.com/finsheet/Finance-Sheets-Backend/internal/ledger"
	"github.com/finsheet/Finance-Sheets-Backend/internal/model"
)

// SheetService handles sheet lifecycle operations: creation, selection, soft
// deletion into the trash, restoration, and permanent deletion. It is a thin
// coordination layer over the ledger store, which owns the actual state and
// its invariants.
type SheetService struct {
	store *ledger.Store
}

// NewSheetService creates a new SheetService backed by the provided ledger store.
func NewSheetService(store *ledger.Store) *SheetService {
	return &SheetService{store: store}
}

// GetSheets retrieves all active sheets in their current order.
func (s *SheetService) GetSheets() []model.Sheet {
	return s.store.Sheets()
}

// GetSheet retrieves a single active sheet by its ID.
// Returns ErrSheetNotFound when the ID does not name an active sheet.
func (s *SheetService) GetSheet(id string) (model.Sheet, error) {
	return s.store.Sheet(id)
}

// CreateSheet creates a new empty sheet and selects it.
// Returns ErrEmptySheetName when the name trims to empty.
func (s *SheetService) CreateSheet(name string) (model.Sheet, error) {
	return s.store.AddSheet(name)
}

// DeleteSheet moves a sheet into the trash. The operation is idempotent-style:
// unknown IDs and the last remaining active sheet are silent no-ops.
func (s *SheetService) DeleteSheet(id string) {
	s.store.DeleteSheet(id)
}

// GetTrashedSheets retrieves all sheets currently in the trash.
func (s *SheetService) GetTrashedSheets() []model.Sheet {
	return s.store.TrashedSheets()
}

// RestoreSheet moves a trashed sheet back into the active sheets, re-sorting
// the active sheets by name. Unknown IDs are silent no-ops.
func (s *SheetService) RestoreSheet(id string) {
	s.store.RestoreSheet(id)
}

// PermanentlyDeleteSheet removes a sheet from the trash for good.
// Unknown IDs are silent no-ops.
func (s *SheetService) PermanentlyDeleteSheet(id string) {
	s.store.PermanentlyDeleteSheet(id)
}

// SelectSheet marks the sheet with the given ID as selected. The store accepts
// any ID; callers validate the format beforehand.
func (s *SheetService) SelectSheet(id string) {
	s.store.SelectSheet(id)
}

// GetSelectedSheet retrieves the currently selected sheet.
// Returns ErrNoSheetSelected when no active sheet is selected.
func (s *SheetService) GetSelectedSheet() (model.Sheet, error) {
	sheet, ok := s.store.SelectedSheet()
	if !ok {
		return model.Sheet{}, apperrors.ErrNoSheetSelected
	}
	return sheet, nil
}
