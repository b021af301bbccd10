package database

import (
	"context"
	"testing"
)

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	db := NewTestDB(t)
	// NewTestDB already applied the schema once; a second run must not fail.
	if err := EnsureSchema(context.Background(), db, SQLite); err != nil {
		t.Fatalf("second EnsureSchema: %v", err)
	}
}

func TestSeedIfEmptySeedsExactlyOnce(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	seeded, err := SeedIfEmpty(ctx, db, SQLite)
	if err != nil {
		t.Fatalf("SeedIfEmpty: %v", err)
	}
	if !seeded {
		t.Fatal("expected first run to seed")
	}

	var count int64
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM cars").Scan(&count); err != nil {
		t.Fatalf("counting cars: %v", err)
	}
	if count != 26 {
		t.Fatalf("expected 26 seeded cars, got %d", count)
	}

	seeded, err = SeedIfEmpty(ctx, db, SQLite)
	if err != nil {
		t.Fatalf("second SeedIfEmpty: %v", err)
	}
	if seeded {
		t.Error("second run must not reseed")
	}
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM cars").Scan(&count); err != nil {
		t.Fatalf("counting cars: %v", err)
	}
	if count != 26 {
		t.Errorf("row count changed after reseed, got %d", count)
	}
}

func TestSeedIfEmptyLeavesPartialCatalogAlone(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		"INSERT INTO cars (make, model, year, price) VALUES ('Fiat', 'Panda', 2001, 900)")
	if err != nil {
		t.Fatalf("inserting row: %v", err)
	}

	// One row is not zero rows: seeding must not run, not clear-and-reseed.
	seeded, err := SeedIfEmpty(ctx, db, SQLite)
	if err != nil {
		t.Fatalf("SeedIfEmpty: %v", err)
	}
	if seeded {
		t.Error("seeding ran against a non-empty table")
	}

	var count int64
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM cars").Scan(&count); err != nil {
		t.Fatalf("counting cars: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 row, got %d", count)
	}
}
