package database

import (
	"testing"
)

func TestMigrate_Success(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count)
	if err != nil {
		t.Fatalf("querying migrations: %v", err)
	}
	if count == 0 {
		t.Error("expected at least one applied migration")
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("first migration: %v", err)
	}

	var first int
	db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&first)

	if err := Migrate(db); err != nil {
		t.Fatalf("second migration should not fail: %v", err)
	}

	var second int
	db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&second)
	if first != second {
		t.Errorf("expected %d migrations after double run, got %d", first, second)
	}
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}

	expectedTables := []string{"users", "settings", "shots", "weight_entries", "daily_logs", "food_items", "grocery_state"}
	for _, table := range expectedTables {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("table '%s' not found: %v", table, err)
		}
	}
}

func TestMigrate_SeedsDefaultUserAndSettings(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}

	var calorieGoal int
	err = db.QueryRow("SELECT calorie_goal FROM settings WHERE user_id = 'default'").Scan(&calorieGoal)
	if err != nil {
		t.Fatalf("reading seeded settings: %v", err)
	}
	if calorieGoal != 1800 {
		t.Errorf("expected seeded calorie goal 1800, got %d", calorieGoal)
	}
}
