// ABOUTME: Category storage operations for SQLite
// ABOUTME: Category upsert plus the memory-category join rows
package sqlite

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/keeperhq/memkeeper/internal/models"
)

// CategoryStore handles category persistence and memory tagging
type CategoryStore struct {
	db *DB
}

// NewCategoryStore creates a new CategoryStore
func NewCategoryStore(db *DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// GetOrCreate returns the category with the given name, inserting it first
// if absent
func (s *CategoryStore) GetOrCreate(name string) (*models.Category, error) {
	_, err := s.db.Exec(`
		INSERT INTO categories (id, name)
		VALUES (?, ?)
		ON CONFLICT(name) DO NOTHING
	`, uuid.New().String(), name)
	if err != nil {
		return nil, err
	}

	var cat models.Category
	err = s.db.QueryRow(`
		SELECT id, name FROM categories WHERE name = ?
	`, name).Scan(&cat.ID, &cat.Name)
	if err != nil {
		return nil, err
	}

	return &cat, nil
}

// Attach links a memory to a category. The pair primary key makes repeated
// attaches a no-op.
func (s *CategoryStore) Attach(memoryID, categoryID string) error {
	_, err := s.db.Exec(`
		INSERT INTO memory_categories (memory_id, category_id)
		VALUES (?, ?)
		ON CONFLICT(memory_id, category_id) DO NOTHING
	`, memoryID, categoryID)
	return err
}

// NamesForMemory returns the category names joined to a memory, sorted
func (s *CategoryStore) NamesForMemory(memoryID string) ([]string, error) {
	rows, err := s.db.Query(`
		SELECT c.name
		FROM categories c
		JOIN memory_categories mc ON mc.category_id = c.id
		WHERE mc.memory_id = ?
		ORDER BY c.name
	`, memoryID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

// GetByName retrieves a category by its unique name
func (s *CategoryStore) GetByName(name string) (*models.Category, error) {
	var cat models.Category

	err := s.db.QueryRow(`
		SELECT id, name FROM categories WHERE name = ?
	`, name).Scan(&cat.ID, &cat.Name)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &cat, nil
}
