// ABOUTME: App storage operations for SQLite
// ABOUTME: Apps are upserted lazily by normalized name on first memory write
package sqlite

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/keeperhq/memkeeper/internal/models"
)

// AppStore handles app persistence
type AppStore struct {
	db *DB
}

// NewAppStore creates a new AppStore
func NewAppStore(db *DB) *AppStore {
	return &AppStore{db: db}
}

// GetOrCreate returns the app with the given normalized name under the given
// user, inserting it first if absent. Callers normalize the name with
// models.NormalizeAppName before calling.
func (s *AppStore) GetOrCreate(name, userID string) (*models.App, error) {
	_, err := s.db.Exec(`
		INSERT INTO apps (id, name, user_id)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO NOTHING
	`, uuid.New().String(), name, userID)
	if err != nil {
		return nil, err
	}

	return s.GetByName(name)
}

// GetByName retrieves an app by its unique name
func (s *AppStore) GetByName(name string) (*models.App, error) {
	var app models.App

	err := s.db.QueryRow(`
		SELECT id, name, user_id, created_at
		FROM apps
		WHERE name = ?
	`, name).Scan(&app.ID, &app.Name, &app.UserID, &app.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &app, nil
}

// Count returns the number of app rows
func (s *AppStore) Count() (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM apps").Scan(&n)
	return n, err
}
