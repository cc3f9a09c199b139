// AngelaMos | 2026
// repository.go

package report

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	Counts(ctx context.Context) (*Counts, error)
	RecentRequests(ctx context.Context, limit int) ([]RecentRequest, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Counts runs the aggregate queries in a single statement so the
// figures come from one snapshot.
func (r *repository) Counts(ctx context.Context) (*Counts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users)                                   AS total_users,
			(SELECT COUNT(*) FROM users WHERE is_donor)                    AS total_donors,
			(SELECT COALESCE(SUM(units), 0) FROM blood_stock)              AS total_units,
			(SELECT COUNT(DISTINCT location) FROM blood_stock)             AS stock_locations,
			(SELECT COUNT(*) FROM blood_requests)                          AS total_requests,
			(SELECT COUNT(*) FROM blood_requests WHERE status = 'Pending') AS pending_requests,
			(SELECT COUNT(DISTINCT user_id) FROM donations
			 WHERE donation_date = CURRENT_DATE)                           AS donors_today`

	var counts Counts
	if err := r.db.GetContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("report counts: %w", err)
	}

	return &counts, nil
}

func (r *repository) RecentRequests(
	ctx context.Context,
	limit int,
) ([]RecentRequest, error) {
	query := `
		SELECT r.id, r.blood_group, r.location, r.units, r.status,
		       r.request_date, u.name AS requester_name,
		       u.phone AS requester_phone
		FROM blood_requests r
		JOIN users u ON u.id = r.user_id
		ORDER BY r.request_date DESC, r.id DESC
		LIMIT $1`

	var requests []RecentRequest
	if err := r.db.SelectContext(ctx, &requests, query, limit); err != nil {
		return nil, fmt.Errorf("recent requests: %w", err)
	}

	return requests, nil
}
