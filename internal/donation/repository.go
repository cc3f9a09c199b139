// AngelaMos | 2026
// repository.go

package donation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/redconnect-dev/redconnect/internal/core"
)

type Repository interface {
	Create(ctx context.Context, donation *Donation) error
	ListByUser(ctx context.Context, userID int64) ([]Donation, error)
	LastDonationDate(ctx context.Context, userID int64) (*time.Time, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, donation *Donation) error {
	query := `
		INSERT INTO donations (
			user_id, blood_group, donation_type, donation_date, notes
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.db.GetContext(ctx, &donation.ID, query,
		donation.UserID,
		donation.BloodGroup,
		donation.DonationType,
		donation.DonationDate,
		donation.Notes,
	)
	if err != nil {
		return fmt.Errorf("create donation: %w", err)
	}

	return nil
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID int64,
) ([]Donation, error) {
	query := `
		SELECT id, user_id, blood_group, donation_type, donation_date, notes
		FROM donations
		WHERE user_id = $1
		ORDER BY donation_date DESC, id DESC`

	var donations []Donation
	if err := r.db.SelectContext(ctx, &donations, query, userID); err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}

	return donations, nil
}

func (r *repository) LastDonationDate(
	ctx context.Context,
	userID int64,
) (*time.Time, error) {
	query := `
		SELECT MAX(donation_date)
		FROM donations
		WHERE user_id = $1`

	var last sql.NullTime
	err := r.db.GetContext(ctx, &last, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("last donation date: %w", err)
	}

	if !last.Valid {
		return nil, nil
	}

	return &last.Time, nil
}
