// AngelaMos | 2026
// repository.go

package stock

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/redconnect-dev/redconnect/internal/core"
)

type Repository interface {
	// Upsert adds a positive unit delta to the ledger row for the
	// (blood group, location) pair, creating the row on first addition.
	Upsert(
		ctx context.Context,
		bloodGroup string,
		units int,
		location string,
	) (*Entry, error)
	SetUnits(ctx context.Context, id int64, units int) (*Entry, error)
	GetByID(ctx context.Context, id int64) (*Entry, error)
	Search(ctx context.Context, params SearchParams) ([]Entry, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Upsert is a single atomic statement, so concurrent additions to the same
// pair cannot lose updates and concurrent first inserts cannot collide on
// the unique (blood_group, location) constraint.
func (r *repository) Upsert(
	ctx context.Context,
	bloodGroup string,
	units int,
	location string,
) (*Entry, error) {
	query := `
		INSERT INTO blood_stock (blood_group, units, location)
		VALUES ($1, $2, $3)
		ON CONFLICT (blood_group, location)
		DO UPDATE SET
			units = blood_stock.units + EXCLUDED.units,
			last_updated = CURRENT_DATE
		RETURNING id, blood_group, units, location, last_updated`

	var entry Entry
	if err := r.db.GetContext(ctx, &entry, query, bloodGroup, units, location); err != nil {
		return nil, fmt.Errorf("upsert stock entry: %w", err)
	}

	return &entry, nil
}

// SetUnits overwrites the unit count of one ledger row. This is the admin
// correction path and deliberately does not accumulate.
func (r *repository) SetUnits(
	ctx context.Context,
	id int64,
	units int,
) (*Entry, error) {
	query := `
		UPDATE blood_stock
		SET units = $2, last_updated = CURRENT_DATE
		WHERE id = $1
		RETURNING id, blood_group, units, location, last_updated`

	var entry Entry
	err := r.db.GetContext(ctx, &entry, query, id, units)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("set stock units: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("set stock units: %w", err)
	}

	return &entry, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Entry, error) {
	query := `
		SELECT id, blood_group, units, location, last_updated
		FROM blood_stock
		WHERE id = $1`

	var entry Entry
	err := r.db.GetContext(ctx, &entry, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get stock entry: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get stock entry: %w", err)
	}

	return &entry, nil
}

func (r *repository) Search(
	ctx context.Context,
	params SearchParams,
) ([]Entry, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.BloodGroup != "" {
		conditions = append(
			conditions,
			fmt.Sprintf("blood_group = $%d", argIdx),
		)
		args = append(args, params.BloodGroup)
		argIdx++
	}

	if params.Location != "" {
		conditions = append(
			conditions,
			fmt.Sprintf("location ILIKE $%d", argIdx),
		)
		args = append(args, "%"+core.EscapeLike(params.Location)+"%")
		argIdx++
	}

	if params.AvailableOnly {
		conditions = append(conditions, "units > 0")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT id, blood_group, units, location, last_updated
		FROM blood_stock
		%s
		ORDER BY blood_group ASC, location ASC`, whereClause)

	var entries []Entry
	if err := r.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, fmt.Errorf("search stock: %w", err)
	}

	return entries, nil
}
