// AngelaMos | 2026
// repository_test.go

package stock

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/jmoiron/sqlx"
)

// testDB connects to the database named by TEST_DATABASE_URL, applies the
// schema, and leaves blood_stock empty. Tests that need it are skipped when
// the variable is unset.
func testDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	schema, err := os.ReadFile("../../migrations/0001_init.sql")
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}
	if _, err := db.Exec(string(schema)); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	if _, err := db.Exec(`TRUNCATE blood_stock RESTART IDENTITY`); err != nil {
		t.Fatalf("truncate blood_stock: %v", err)
	}

	return db
}

func TestUpsertConcurrentAddsToOnePair(t *testing.T) {
	db := testDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	const workers = 8

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Upsert(ctx, "O+", 1, "Dhaka")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("Upsert: %v", err)
		}
	}

	entries, err := repo.Search(ctx, SearchParams{BloodGroup: "O+"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	if entries[0].Units != workers {
		t.Errorf("units = %d, want %d", entries[0].Units, workers)
	}
}

func TestUpsertKeepsPairsSeparate(t *testing.T) {
	db := testDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	first, err := repo.Upsert(ctx, "A+", 5, "Dhaka")
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	second, err := repo.Upsert(ctx, "A+", 3, "Chittagong")
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if first.ID == second.ID {
		t.Fatal("expected distinct rows per location")
	}

	again, err := repo.Upsert(ctx, "A+", 2, "Dhaka")
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if again.ID != first.ID {
		t.Errorf("row id = %d, want %d", again.ID, first.ID)
	}
	if again.Units != 7 {
		t.Errorf("units = %d, want 7", again.Units)
	}
}
