// ABOUTME: Tests for app storage operations
// ABOUTME: Verifies lazy upsert semantics and unique-name idempotency
package sqlite

import "testing"

func TestAppGetOrCreate(t *testing.T) {
	db, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	users := NewUserStore(db)
	user, err := users.GetOrCreate("default-user")
	if err != nil {
		t.Fatalf("GetOrCreate(user) error = %v", err)
	}

	apps := NewAppStore(db)

	app, err := apps.GetOrCreate("test_agent", user.ID)
	if err != nil {
		t.Fatalf("GetOrCreate() error = %v", err)
	}
	if app.Name != "test_agent" {
		t.Errorf("Name = %q, want test_agent", app.Name)
	}
	if app.UserID != user.ID {
		t.Errorf("UserID = %q, want %q", app.UserID, user.ID)
	}

	// Repeating with the same name must not create a duplicate
	again, err := apps.GetOrCreate("test_agent", user.ID)
	if err != nil {
		t.Fatalf("GetOrCreate() second call error = %v", err)
	}
	if again.ID != app.ID {
		t.Errorf("second GetOrCreate returned different ID: %q vs %q", again.ID, app.ID)
	}

	count, err := apps.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 1 {
		t.Errorf("app count = %d, want 1", count)
	}
}

func TestAppGetByName_Missing(t *testing.T) {
	db, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	apps := NewAppStore(db)

	app, err := apps.GetByName("missing_app")
	if err != nil {
		t.Fatalf("GetByName() error = %v", err)
	}
	if app != nil {
		t.Errorf("GetByName() = %v, want nil for missing app", app)
	}
}
