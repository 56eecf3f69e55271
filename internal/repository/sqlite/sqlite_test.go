package sqlite

import (
	"testing"
)

// newTestDB opens an in-memory database with the full schema applied.
// Each call gets its own database, so tests never share state.
func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("New(\":memory:\"): %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("closing test database: %v", err)
		}
	})

	return db
}

func TestNew_AppliesSchema(t *testing.T) {
	db := newTestDB(t)

	// Every table the repos touch must exist after New.
	for _, table := range []string{
		"users", "skills", "projects", "experience",
		"articles", "social_links", "contact_messages", "homepage_content",
	} {
		var name string
		err := db.conn.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}
