package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/finsheet/Finance-Sheets-Backend/internal/model"
)

const (
	statusActive  = "active"
	statusTrashed = "trashed"
)

// LedgerRepository persists ledger snapshots to the sheet and
// sheet_transaction tables. Persistence is layered on top of the ledger
// store's snapshot: the whole state is written and read as a unit, preserving
// sheet and transaction ordering through explicit position columns.
type LedgerRepository struct {
	db *sql.DB
}

// NewLedgerRepository creates a new LedgerRepository with the provided database connection.
func NewLedgerRepository(db *sql.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// SaveSnapshot replaces the persisted ledger state with the given snapshot.
// The write is transactional: either the full snapshot lands or nothing
// changes.
func (r *LedgerRepository) SaveSnapshot(snap model.LedgerSnapshot) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.Exec(`DELETE FROM sheet_transaction`); err != nil {
		return fmt.Errorf("failed to clear sheet_transaction table: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM sheet`); err != nil {
		return fmt.Errorf("failed to clear sheet table: %w", err)
	}

	if err := insertSheets(tx, snap.ActiveSheets, statusActive); err != nil {
		return err
	}
	if err := insertSheets(tx, snap.TrashedSheets, statusTrashed); err != nil {
		return err
	}

	if err := setSettingTx(tx, "selected_sheet_id", snap.SelectedID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads the persisted ledger state. The second return value is
// false when no sheets have ever been persisted.
func (r *LedgerRepository) LoadSnapshot() (model.LedgerSnapshot, bool, error) {
	var snap model.LedgerSnapshot

	rows, err := r.db.Query(`
          SELECT id, name, status
          FROM sheet
          ORDER BY status, position
      `)
	if err != nil {
		return model.LedgerSnapshot{}, false, fmt.Errorf("failed to query sheet table: %w", err)
	}
	defer rows.Close()

	found := false
	for rows.Next() {
		var sheet model.Sheet
		var status string
		if err := rows.Scan(&sheet.ID, &sheet.Name, &status); err != nil {
			return model.LedgerSnapshot{}, false, fmt.Errorf("failed to scan sheet table results: %w", err)
		}

		sheet.Transactions, err = r.loadTransactions(sheet.ID)
		if err != nil {
			return model.LedgerSnapshot{}, false, err
		}

		found = true
		if status == statusTrashed {
			snap.TrashedSheets = append(snap.TrashedSheets, sheet)
		} else {
			snap.ActiveSheets = append(snap.ActiveSheets, sheet)
		}
	}
	if err := rows.Err(); err != nil {
		return model.LedgerSnapshot{}, false, fmt.Errorf("error iterating sheet table: %w", err)
	}

	if !found {
		return model.LedgerSnapshot{}, false, nil
	}

	selected, err := r.getSetting("selected_sheet_id")
	if err != nil {
		return model.LedgerSnapshot{}, false, err
	}
	snap.SelectedID = selected

	return snap, true, nil
}

func (r *LedgerRepository) loadTransactions(sheetID string) ([]model.Transaction, error) {
	rows, err := r.db.Query(`
          SELECT id, date, description, amount, type, category
          FROM sheet_transaction
          WHERE sheet_id = ?
          ORDER BY position
      `, sheetID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sheet_transaction table: %w", err)
	}
	defer rows.Close()

	var transactions []model.Transaction
	for rows.Next() {
		var t model.Transaction
		var date string
		if err := rows.Scan(&t.ID, &date, &t.Description, &t.Amount, &t.Type, &t.Category); err != nil {
			return nil, fmt.Errorf("failed to scan sheet_transaction table results: %w", err)
		}
		t.Date, err = time.ParseInLocation("2006-01-02", date, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("failed to parse transaction date %q: %w", date, err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sheet_transaction table: %w", err)
	}

	return transactions, nil
}

func insertSheets(tx *sql.Tx, sheets []model.Sheet, status string) error {
	for pos, sheet := range sheets {
		if _, err := tx.Exec(`
              INSERT INTO sheet (id, name, status, position)
              VALUES (?, ?, ?, ?)
          `, sheet.ID, sheet.Name, status, pos); err != nil {
			return fmt.Errorf("failed to insert sheet %s: %w", sheet.ID, err)
		}

		for txPos, t := range sheet.Transactions {
			if _, err := tx.Exec(`
                  INSERT INTO sheet_transaction (id, sheet_id, date, description, amount, type, category, position)
                  VALUES (?, ?, ?, ?, ?, ?, ?, ?)
              `, t.ID, sheet.ID, t.Date.UTC().Format("2006-01-02"), t.Description, t.Amount, string(t.Type), string(t.Category), txPos); err != nil {
				return fmt.Errorf("failed to insert transaction %s: %w", t.ID, err)
			}
		}
	}
	return nil
}

func (r *LedgerRepository) getSetting(key string) (string, error) {
	var value string
	err := r.db.QueryRow(`SELECT value FROM setting WHERE "key" = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to query setting %s: %w", key, err)
	}
	return value, nil
}

func setSettingTx(tx *sql.Tx, key, value string) error {
	if _, err := tx.Exec(`
          INSERT INTO setting ("key", value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
          ON CONFLICT("key") DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
      `, key, value); err != nil {
		return fmt.Errorf("failed to upsert setting %s: %w", key, err)
	}
	return nil
}
