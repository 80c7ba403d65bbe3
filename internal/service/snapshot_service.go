package service

import (
	"github.com/finsheet/Finance-Sheets-Backend/internal/ledger"
	"github.com/finsheet/Finance-Sheets-Backend/internal/repository"
)

// SnapshotService moves ledger state between the in-memory store and the
// snapshot database. Persistence is layered on top of the store: the store
// never knows about the database, and the service copies whole snapshots in
// either direction.
type SnapshotService struct {
	store      *ledger.Store
	ledgerRepo *repository.LedgerRepository
}

// NewSnapshotService creates a new SnapshotService with the provided store and repository.
func NewSnapshotService(store *ledger.Store, ledgerRepo *repository.LedgerRepository) *SnapshotService {
	return &SnapshotService{store: store, ledgerRepo: ledgerRepo}
}

// Save persists the current ledger state. The whole snapshot is written in one
// transaction.
func (s *SnapshotService) Save() error {
	return s.ledgerRepo.SaveSnapshot(s.store.Snapshot())
}

// Load replaces the ledger state with the persisted snapshot, if one exists.
// A snapshot that violates entity invariants is rejected with
// ErrSnapshotInvalid and the store keeps its current state. When nothing has
// been persisted yet the store is left untouched.
func (s *SnapshotService) Load() error {
	snap, found, err := s.ledgerRepo.LoadSnapshot()
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	return s.store.LoadSnapshot(snap)
}
