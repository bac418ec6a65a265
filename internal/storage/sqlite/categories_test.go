// ABOUTME: Tests for category storage and memory tagging
// ABOUTME: Verifies category upsert and join-row pair uniqueness
package sqlite

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/keeperhq/memkeeper/internal/models"
)

// newTestMemory inserts a minimal memory row with its user and app fixtures
func newTestMemory(t *testing.T, db *DB, content string, createdAt time.Time) *models.Memory {
	t.Helper()

	user, err := NewUserStore(db).GetOrCreate("default-user")
	if err != nil {
		t.Fatalf("GetOrCreate(user) error = %v", err)
	}
	app, err := NewAppStore(db).GetOrCreate("test_agent", user.ID)
	if err != nil {
		t.Fatalf("GetOrCreate(app) error = %v", err)
	}

	m := &models.Memory{
		ID:        uuid.New().String(),
		Content:   content,
		UserID:    user.ID,
		AppID:     app.ID,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if err := NewMemoryStore(db).Insert(m); err != nil {
		t.Fatalf("Insert(memory) error = %v", err)
	}
	return m
}

func TestCategoryGetOrCreate(t *testing.T) {
	db, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	store := NewCategoryStore(db)

	cat, err := store.GetOrCreate("meetings")
	if err != nil {
		t.Fatalf("GetOrCreate() error = %v", err)
	}
	if cat.Name != "meetings" {
		t.Errorf("Name = %q, want meetings", cat.Name)
	}

	again, err := store.GetOrCreate("meetings")
	if err != nil {
		t.Fatalf("GetOrCreate() second call error = %v", err)
	}
	if again.ID != cat.ID {
		t.Errorf("second GetOrCreate returned different ID: %q vs %q", again.ID, cat.ID)
	}
}

func TestCategoryAttach_PairUnique(t *testing.T) {
	db, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	store := NewCategoryStore(db)
	memory := newTestMemory(t, db, "tagged memory", time.Now().UTC())

	cat, err := store.GetOrCreate("research")
	if err != nil {
		t.Fatalf("GetOrCreate() error = %v", err)
	}

	if err := store.Attach(memory.ID, cat.ID); err != nil {
		t.Fatalf("Attach() error = %v", err)
	}
	// Duplicate attach is a no-op, not an error
	if err := store.Attach(memory.ID, cat.ID); err != nil {
		t.Fatalf("Attach() duplicate error = %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM memory_categories").Scan(&count); err != nil {
		t.Fatalf("counting join rows: %v", err)
	}
	if count != 1 {
		t.Errorf("join row count = %d, want 1", count)
	}

	names, err := store.NamesForMemory(memory.ID)
	if err != nil {
		t.Fatalf("NamesForMemory() error = %v", err)
	}
	if len(names) != 1 || names[0] != "research" {
		t.Errorf("NamesForMemory() = %v, want [research]", names)
	}
}
