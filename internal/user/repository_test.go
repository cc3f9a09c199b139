// AngelaMos | 2026
// repository_test.go

package user

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/redconnect-dev/redconnect/internal/core"
)

// testDB connects to the database named by TEST_DATABASE_URL, applies the
// schema, and leaves all tables empty. Tests that need it are skipped when
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
	if _, err := db.Exec(`TRUNCATE users RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate users: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, repo Repository, email string) *User {
	t.Helper()

	u := &User{
		Name:         "Chloe Park",
		Email:        email,
		PasswordHash: "hash",
		BloodGroup:   "O+",
		Location:     "Dhaka",
		Phone:        "555-0100",
	}
	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("Create: %v", err)
	}
	return u
}

func addDependents(t *testing.T, db *sqlx.DB, userID int64) {
	t.Helper()

	inserts := []struct {
		query string
		args  []any
	}{
		{
			`INSERT INTO blood_requests (user_id, blood_group, location, units)
			 VALUES ($1, 'O+', 'Dhaka', 2)`,
			[]any{userID},
		},
		{
			`INSERT INTO donations (user_id, blood_group, donation_date)
			 VALUES ($1, 'O+', CURRENT_DATE)`,
			[]any{userID},
		},
		{
			`INSERT INTO notifications (user_id, title, message)
			 VALUES ($1, 'Welcome', 'Thanks for registering.')`,
			[]any{userID},
		},
		{
			`INSERT INTO refresh_tokens (id, user_id, token_hash, family_id, expires_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			[]any{
				uuid.NewString(),
				userID,
				fmt.Sprintf("hash-%d-%s", userID, uuid.NewString()),
				uuid.NewString(),
				time.Now().Add(24 * time.Hour),
			},
		},
	}

	for _, ins := range inserts {
		if _, err := db.Exec(ins.query, ins.args...); err != nil {
			t.Fatalf("insert dependent row: %v", err)
		}
	}
}

func countDependents(t *testing.T, db *sqlx.DB, userID int64) int {
	t.Helper()

	tables := []string{
		"blood_requests",
		"donations",
		"notifications",
		"refresh_tokens",
	}

	total := 0
	for _, table := range tables {
		var n int
		query := fmt.Sprintf(
			`SELECT COUNT(*) FROM %s WHERE user_id = $1`,
			table,
		)
		if err := db.Get(&n, query, userID); err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		total += n
	}
	return total
}

func TestDeleteRemovesUserAndDependents(t *testing.T) {
	db := testDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	u := createTestUser(t, repo, "delete-me@example.com")
	addDependents(t, db, u.ID)

	if got := countDependents(t, db, u.ID); got != 4 {
		t.Fatalf("dependent rows before delete = %d, want 4", got)
	}

	if err := repo.Delete(ctx, u.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if got := countDependents(t, db, u.ID); got != 0 {
		t.Errorf("dependent rows after delete = %d, want 0", got)
	}
	if _, err := repo.GetByID(ctx, u.ID); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("GetByID error = %v, want ErrNotFound", err)
	}
}

func TestDeleteMissingUserChangesNothing(t *testing.T) {
	db := testDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	u := createTestUser(t, repo, "keep-me@example.com")
	addDependents(t, db, u.ID)

	err := repo.Delete(ctx, u.ID+1000)
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("Delete error = %v, want ErrNotFound", err)
	}

	if got := countDependents(t, db, u.ID); got != 4 {
		t.Errorf("dependent rows = %d, want 4", got)
	}
	if _, err := repo.GetByID(ctx, u.ID); err != nil {
		t.Errorf("GetByID: %v", err)
	}
}
