package repository

import (
	"database/sql"
	"fmt"
)

// SettingRepository handles database operations for the setting key/value
// table. Values are stored as opaque strings; sensitive values such as the
// receipt scanner API key are encrypted before they reach this layer.
type SettingRepository struct {
	db *sql.DB
}

// NewSettingRepository creates a new SettingRepository with the provided database connection.
func NewSettingRepository(db *sql.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// Get returns the value for a key. The second return value is false when the
// key has never been set.
func (r *SettingRepository) Get(key string) (string, bool, error) {
	var value string
	err := r.db.QueryRow(`SELECT value FROM setting WHERE "key" = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to query setting %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores the value for a key, replacing any previous value.
func (r *SettingRepository) Set(key, value string) error {
	if _, err := r.db.Exec(`
          INSERT INTO setting ("key", value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
          ON CONFLICT("key") DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
      `, key, value); err != nil {
		return fmt.Errorf("failed to upsert setting %s: %w", key, err)
	}
	return nil
}

// Delete removes a key. Deleting a missing key is not an error.
func (r *SettingRepository) Delete(key string) error {
	if _, err := r.db.Exec(`DELETE FROM setting WHERE "key" = ?`, key); err != nil {
		return fmt.Errorf("failed to delete setting %s: %w", key, err)
	}
	return nil
}
