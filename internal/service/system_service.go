package service

import (
	"database/sql"

	"github.com/finsheet/Finance-Sheets-Backend/internal/database"
	"github.com/finsheet/Finance-Sheets-Backend/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService. The database handle is nil
// when the server runs without snapshot persistence.
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{
		db: db,
	}
}

// CheckHealth checks the health of the system. Without a database there is
// nothing to probe and the system is considered healthy.
func (s *SystemService) CheckHealth() error {
	if s.db == nil {
		return nil
	}
	return database.HealthCheck(s.db)
}

// PersistenceEnabled reports whether snapshot persistence is active.
func (s *SystemService) PersistenceEnabled() bool {
	return s.db != nil
}

func (s *SystemService) CheckVersion() string {
	return version.Version
}
