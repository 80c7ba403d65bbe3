// Package ledger owns the in-memory ledger state: the active sheets, the
// trashed sheets, and the currently selected sheet. All mutation goes through
// Store methods, which serialize concurrent callers behind a single mutex so
// every operation runs to completion before the next begins.
package ledger

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/finsheet/Finance-Sheets-Backend/internal/apperrors"
	"github.com/finsheet/Finance-Sheets-Backend/internal/model"
)

// Store holds the process-wide ledger state. State is ephemeral: it lives for
// the lifetime of the store unless a persistence layer saves and reloads its
// snapshot. Construct one with New and inject it into whatever host drives it;
// there is no package-level instance.
type Store struct {
	mu       sync.Mutex
	active   []model.Sheet
	trashed  []model.Sheet
	selected string

	// now is swappable for tests; defaults to time.Now.
	now func() time.Time
}

// New creates a Store seeded with the given active sheets. The first seed
// sheet, if any, becomes the selected sheet.
func New(initial ...model.Sheet) *Store {
	s := &Store{now: time.Now}
	for _, sheet := range initial {
		s.active = append(s.active, sheet.Clone())
	}
	if len(s.active) > 0 {
		s.selected = s.active[0].ID
	}
	return s
}

// SetClock overrides the store's time source. Intended for tests that need
// deterministic transaction dates.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// AddSheet creates a new empty sheet with the given name, appends it to the
// active sheets, and selects it. Returns ErrEmptySheetName if the name trims
// to empty.
func (s *Store) AddSheet(name string) (model.Sheet, error) {
	if err := validateSheetName(name); err != nil {
		return model.Sheet{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sheet := model.Sheet{
		ID:   uuid.New().String(),
		Name: name,
	}
	s.active = append(s.active, sheet)
	s.selected = sheet.ID

	return sheet.Clone(), nil
}

// DeleteSheet moves the sheet with the given id from the active sheets to the
// trash. The sheet itself is unchanged; its transactions survive the move.
//
// The operation is a silent no-op when the id does not name an active sheet,
// and when exactly one active sheet remains: at least one active sheet must
// always exist, so the last one cannot be deleted.
//
// If the deleted sheet was selected, selection transfers to the first
// remaining active sheet.
func (s *Store) DeleteSheet(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.active) <= 1 {
		return
	}

	idx := indexOf(s.active, id)
	if idx < 0 {
		return
	}

	sheet := s.active[idx]
	s.active = append(s.active[:idx], s.active[idx+1:]...)
	s.trashed = append(s.trashed, sheet)

	if s.selected == id {
		s.selected = ""
		if len(s.active) > 0 {
			s.selected = s.active[0].ID
		}
	}
}

// RestoreSheet moves the sheet with the given id from the trash back into the
// active sheets and re-sorts the active sheets by name (case-sensitive
// lexicographic, ascending). The re-sort is deliberate: it gives restoration a
// predictable ordering, distinct from the append-on-create ordering of new
// sheets.
//
// Silent no-op when the id is not in the trash. Selection is untouched unless
// no sheet was selected, in which case the restored sheet becomes selected.
func (s *Store) RestoreSheet(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOf(s.trashed, id)
	if idx < 0 {
		return
	}

	sheet := s.trashed[idx]
	s.trashed = append(s.trashed[:idx], s.trashed[idx+1:]...)
	s.active = append(s.active, sheet)
	sort.SliceStable(s.active, func(i, j int) bool {
		return s.active[i].Name < s.active[j].Name
	})

	if s.selected == "" {
		s.selected = sheet.ID
	}
}

// PermanentlyDeleteSheet removes the sheet with the given id from the trash.
// Irreversible: the sheet and its transactions are unrecoverable. Silent no-op
// when the id is not in the trash. Active sheets can never be permanently
// deleted directly; they must pass through the trash first.
func (s *Store) PermanentlyDeleteSheet(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOf(s.trashed, id)
	if idx < 0 {
		return
	}
	s.trashed = append(s.trashed[:idx], s.trashed[idx+1:]...)
}

// SelectSheet sets the selected sheet id unconditionally. The reference
// behavior is permissive: the id is not validated against the active sheets,
// and callers are expected to pass a valid id. This choice is deliberate and
// kept; HTTP-facing callers validate the id format before calling.
func (s *Store) SelectSheet(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = id
}

// SelectedSheet returns a copy of the currently selected sheet, or false when
// no sheet is selected or the selected id no longer names an active sheet.
func (s *Store) SelectedSheet() (model.Sheet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == "" {
		return model.Sheet{}, false
	}
	idx := indexOf(s.active, s.selected)
	if idx < 0 {
		return model.Sheet{}, false
	}
	return s.active[idx].Clone(), true
}

// SelectedID returns the selected sheet id, or empty when none is selected.
func (s *Store) SelectedID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// Sheets returns copies of the active sheets in order.
func (s *Store) Sheets() []model.Sheet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAll(s.active)
}

// TrashedSheets returns copies of the trashed sheets in order.
func (s *Store) TrashedSheets() []model.Sheet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAll(s.trashed)
}

// Sheet returns a copy of the active sheet with the given id.
// Returns ErrSheetNotFound when the id does not name an active sheet.
func (s *Store) Sheet(id string) (model.Sheet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOf(s.active, id)
	if idx < 0 {
		return model.Sheet{}, apperrors.ErrSheetNotFound
	}
	return s.active[idx].Clone(), nil
}

// AddTransaction validates the draft, assigns a fresh unique id and the
// current date, and prepends the new transaction to the named sheet's
// sequence. Exactly the named sheet is mutated; all other sheets and the trash
// are untouched.
//
// Returns a validation error when the draft violates the entity invariants,
// and ErrSheetNotFound when the id does not name an active sheet. On any
// error no transaction is created.
func (s *Store) AddTransaction(sheetID string, draft model.TransactionDraft) (model.Transaction, error) {
	if err := draft.Validate(); err != nil {
		return model.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOf(s.active, sheetID)
	if idx < 0 {
		return model.Transaction{}, apperrors.ErrSheetNotFound
	}

	tx := model.Transaction{
		ID:          uuid.New().String(),
		Date:        model.DateOnly(s.now()),
		Description: draft.Description,
		Amount:      draft.Amount,
		Type:        draft.Type,
		Category:    draft.Category,
	}

	sheet := &s.active[idx]
	sheet.Transactions = append([]model.Transaction{tx}, sheet.Transactions...)

	return tx, nil
}

// DeleteTransaction removes the transaction with the given id from the named
// sheet's sequence. Silent no-op when either the sheet or the transaction is
// absent; deletes are idempotent-style operations typically triggered by
// already-stale client state. No other sheet is affected.
func (s *Store) DeleteTransaction(sheetID, transactionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOf(s.active, sheetID)
	if idx < 0 {
		return
	}

	sheet := &s.active[idx]
	for i, tx := range sheet.Transactions {
		if tx.ID == transactionID {
			sheet.Transactions = append(sheet.Transactions[:i], sheet.Transactions[i+1:]...)
			return
		}
	}
}

// Snapshot returns a deep copy of the full ledger state, suitable for
// persistence layered on top of the store.
func (s *Store) Snapshot() model.LedgerSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return model.LedgerSnapshot{
		ActiveSheets:  cloneAll(s.active),
		TrashedSheets: cloneAll(s.trashed),
		SelectedID:    s.selected,
	}
}

// LoadSnapshot replaces the store state with a previously persisted snapshot.
//
// The snapshot is validated before any state changes: every transaction must
// satisfy the entity invariants, and sheet ids must be unique across the
// active and trashed collections. A snapshot violating these is rejected with
// ErrSnapshotInvalid and the store is left unchanged. Two defects are
// repaired rather than rejected: a snapshot with no active sheets but a
// non-empty trash has its first trashed sheet restored, and a dangling
// selected id falls back to the first active sheet, or none.
func (s *Store) LoadSnapshot(snap model.LedgerSnapshot) error {
	seen := make(map[string]bool)
	for _, sheet := range append(append([]model.Sheet{}, snap.ActiveSheets...), snap.TrashedSheets...) {
		if sheet.ID == "" || seen[sheet.ID] {
			return apperrors.ErrSnapshotInvalid
		}
		seen[sheet.ID] = true
		if err := validateSheetName(sheet.Name); err != nil {
			return apperrors.ErrSnapshotInvalid
		}
		for _, tx := range sheet.Transactions {
			draft := model.TransactionDraft{
				Description: tx.Description,
				Amount:      tx.Amount,
				Type:        tx.Type,
				Category:    tx.Category,
			}
			if tx.ID == "" || draft.Validate() != nil {
				return apperrors.ErrSnapshotInvalid
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.active = cloneAll(snap.ActiveSheets)
	s.trashed = cloneAll(snap.TrashedSheets)

	// DeleteSheet never trashes the last active sheet, so a snapshot with
	// only trashed sheets is unreachable state; restore the first one.
	if len(s.active) == 0 && len(s.trashed) > 0 {
		s.active = append(s.active, s.trashed[0])
		s.trashed = s.trashed[1:]
	}

	s.selected = ""
	if indexOf(s.active, snap.SelectedID) >= 0 {
		s.selected = snap.SelectedID
	} else if len(s.active) > 0 {
		s.selected = s.active[0].ID
	}
	return nil
}

func validateSheetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.ErrEmptySheetName
	}
	return nil
}

func indexOf(sheets []model.Sheet, id string) int {
	for i, sheet := range sheets {
		if sheet.ID == id {
			return i
		}
	}
	return -1
}

func cloneAll(sheets []model.Sheet) []model.Sheet {
	out := make([]model.Sheet, len(sheets))
	for i, sheet := range sheets {
		out[i] = sheet.Clone()
	}
	return out
}
