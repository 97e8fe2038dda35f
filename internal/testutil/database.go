package testutil

import (
	"database/sql"
	"testing"

	"github.com/DanteArceneaux/wegovy/internal/database"
)

// UserID is the logical user seeded by the migrations; every repository
// test operates against it.
const UserID = "default"

func NewTestDatabase(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}
