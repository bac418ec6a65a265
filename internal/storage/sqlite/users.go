// ABOUTME: User storage operations for SQLite
// ABOUTME: Implements race-free get-or-create keyed on the unique name
package sqlite

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/keeperhq/memkeeper/internal/models"
)

// UserStore handles user persistence
type UserStore struct {
	db *DB
}

// NewUserStore creates a new UserStore
func NewUserStore(db *DB) *UserStore {
	return &UserStore{db: db}
}

// GetOrCreate returns the user with the given name, inserting it first if
// absent. The unique constraint on name carries the idempotency: the insert
// is a no-op when the row already exists.
func (s *UserStore) GetOrCreate(name string) (*models.User, error) {
	_, err := s.db.Exec(`
		INSERT INTO users (id, name)
		VALUES (?, ?)
		ON CONFLICT(name) DO NOTHING
	`, uuid.New().String(), name)
	if err != nil {
		return nil, err
	}

	return s.GetByName(name)
}

// GetByName retrieves a user by its unique name
func (s *UserStore) GetByName(name string) (*models.User, error) {
	var user models.User

	err := s.db.QueryRow(`
		SELECT id, name, created_at
		FROM users
		WHERE name = ?
	`, name).Scan(&user.ID, &user.Name, &user.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}
