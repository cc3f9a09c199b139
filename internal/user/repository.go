// AngelaMos | 2026
// repository.go

package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/redconnect-dev/redconnect/internal/core"
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateProfile(ctx context.Context, user *User) error
	SetDonorStatus(ctx context.Context, id int64, isDonor bool) error
	SetAdminStatus(ctx context.Context, id int64, isAdmin bool) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	IncrementTokenVersion(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, params SearchParams) ([]DonorRow, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (
			name, email, password_hash, blood_group, location, phone,
			is_admin, is_donor
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, token_version, created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.BloodGroup,
		user.Location,
		user.Phone,
		user.IsAdmin,
		user.IsDonor,
	).Scan(&user.ID, &user.TokenVersion, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*User, error) {
	query := `
		SELECT id, name, email, password_hash, blood_group, location, phone,
		       is_admin, is_donor, token_version, created_at, updated_at
		FROM users
		WHERE id = $1`

	var user User
	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	query := `
		SELECT id, name, email, password_hash, blood_group, location, phone,
		       is_admin, is_donor, token_version, created_at, updated_at
		FROM users
		WHERE email = $1`

	var user User
	err := r.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return &user, nil
}

func (r *repository) UpdateProfile(ctx context.Context, user *User) error {
	query := `
		UPDATE users
		SET name = $2, email = $3, phone = $4, blood_group = $5,
		    location = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &user.UpdatedAt, query,
		user.ID,
		user.Name,
		user.Email,
		user.Phone,
		user.BloodGroup,
		user.Location,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update profile: %w", core.ErrNotFound)
	}
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("update profile: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("update profile: %w", err)
	}

	return nil
}

func (r *repository) SetDonorStatus(
	ctx context.Context,
	id int64,
	isDonor bool,
) error {
	return r.setFlag(ctx, "is_donor", id, isDonor)
}

func (r *repository) SetAdminStatus(
	ctx context.Context,
	id int64,
	isAdmin bool,
) error {
	return r.setFlag(ctx, "is_admin", id, isAdmin)
}

func (r *repository) setFlag(
	ctx context.Context,
	column string,
	id int64,
	value bool,
) error {
	query := fmt.Sprintf(`
		UPDATE users
		SET %s = $2, updated_at = NOW()
		WHERE id = $1`, column)

	result, err := r.db.ExecContext(ctx, query, id, value)
	if err != nil {
		return fmt.Errorf("set %s: %w", column, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set %s: %w", column, err)
	}

	if rows == 0 {
		return fmt.Errorf("set %s: %w", column, core.ErrNotFound)
	}

	return nil
}

func (r *repository) UpdatePassword(
	ctx context.Context,
	id int64,
	passwordHash string,
) error {
	query := `
		UPDATE users
		SET password_hash = $2, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update password: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) IncrementTokenVersion(
	ctx context.Context,
	id int64,
) error {
	query := `
		UPDATE users
		SET token_version = token_version + 1, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("increment token version: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("increment token version: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("increment token version: %w", core.ErrNotFound)
	}

	return nil
}

// Delete removes the user and every row that references them. Dependent
// rows go first so referential integrity holds at each statement; the
// transaction makes the removal all-or-nothing.
func (r *repository) Delete(ctx context.Context, id int64) error {
	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		dependents := []string{
			`DELETE FROM blood_requests WHERE user_id = $1`,
			`DELETE FROM donations WHERE user_id = $1`,
			`DELETE FROM notifications WHERE user_id = $1`,
			`DELETE FROM refresh_tokens WHERE user_id = $1`,
		}

		for _, query := range dependents {
			if _, err := tx.ExecContext(ctx, query, id); err != nil {
				return fmt.Errorf("delete user dependents: %w", err)
			}
		}

		result, err := tx.ExecContext(
			ctx,
			`DELETE FROM users WHERE id = $1`,
			id,
		)
		if err != nil {
			return fmt.Errorf("delete user: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete user: %w", err)
		}

		if rows == 0 {
			return fmt.Errorf("delete user: %w", core.ErrNotFound)
		}

		return nil
	})
}

func (r *repository) Search(
	ctx context.Context,
	params SearchParams,
) ([]DonorRow, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.BloodGroup != "" {
		conditions = append(
			conditions,
			fmt.Sprintf("u.blood_group = $%d", argIdx),
		)
		args = append(args, params.BloodGroup)
		argIdx++
	}

	if params.Location != "" {
		conditions = append(
			conditions,
			fmt.Sprintf("u.location ILIKE $%d", argIdx),
		)
		args = append(args, "%"+core.EscapeLike(params.Location)+"%")
		argIdx++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	// Users with no donations sort after everyone else; id breaks ties so
	// the ordering is deterministic.
	query := fmt.Sprintf(`
		SELECT u.id, u.name, u.phone, u.blood_group, u.location,
		       u.is_admin, u.is_donor,
		       MAX(d.donation_date) AS last_donation
		FROM users u
		LEFT JOIN donations d ON d.user_id = u.id
		%s
		GROUP BY u.id
		ORDER BY last_donation DESC NULLS LAST, u.id
		LIMIT $%d`, whereClause, argIdx)

	args = append(args, params.Limit)

	var rows []DonorRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}

	return rows, nil
}

func (r *repository) ExistsByEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}

	return exists, nil
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
