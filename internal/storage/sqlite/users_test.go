// ABOUTME: Tests for user storage operations
// ABOUTME: Verifies race-free get-or-create idempotency on the unique name
package sqlite

import "testing"

func TestUserGetOrCreate(t *testing.T) {
	db, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	store := NewUserStore(db)

	user, err := store.GetOrCreate("default-user")
	if err != nil {
		t.Fatalf("GetOrCreate() error = %v", err)
	}
	if user == nil {
		t.Fatal("GetOrCreate() returned nil user")
	}
	if user.Name != "default-user" {
		t.Errorf("Name = %q, want default-user", user.Name)
	}
	if user.ID == "" {
		t.Error("ID should not be empty")
	}

	// Second call returns the same row, not a new one
	again, err := store.GetOrCreate("default-user")
	if err != nil {
		t.Fatalf("GetOrCreate() second call error = %v", err)
	}
	if again.ID != user.ID {
		t.Errorf("second GetOrCreate returned different ID: %q vs %q", again.ID, user.ID)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		t.Fatalf("counting users: %v", err)
	}
	if count != 1 {
		t.Errorf("user count = %d, want 1", count)
	}
}

func TestUserGetByName_Missing(t *testing.T) {
	db, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	store := NewUserStore(db)

	user, err := store.GetByName("nobody")
	if err != nil {
		t.Fatalf("GetByName() error = %v", err)
	}
	if user != nil {
		t.Errorf("GetByName() = %v, want nil for missing user", user)
	}
}
