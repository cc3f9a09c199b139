// AngelaMos | 2026
// repository.go

package request

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/redconnect-dev/redconnect/internal/core"
	"github.com/redconnect-dev/redconnect/internal/notification"
)

type Repository interface {
	Create(ctx context.Context, request *BloodRequest) error
	GetByID(ctx context.Context, id int64) (*BloodRequest, error)
	ListByUser(ctx context.Context, userID int64) ([]BloodRequest, error)
	ListAll(ctx context.Context) ([]BloodRequest, error)
	// ApplyTransition moves the request to a terminal status and, when
	// notif is non-nil, writes the notification in the same transaction.
	ApplyTransition(
		ctx context.Context,
		id int64,
		to Status,
		notif *notification.Notification,
	) (*BloodRequest, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, request *BloodRequest) error {
	query := `
		INSERT INTO blood_requests (
			user_id, blood_group, location, units, message, status
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, status, request_date`

	err := r.db.QueryRowxContext(ctx, query,
		request.UserID,
		request.BloodGroup,
		request.Location,
		request.Units,
		request.Message,
		StatusPending,
	).Scan(&request.ID, &request.Status, &request.RequestDate)
	if err != nil {
		return fmt.Errorf("create blood request: %w", err)
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id int64,
) (*BloodRequest, error) {
	query := `
		SELECT id, user_id, blood_group, location, units, message, status,
		       request_date
		FROM blood_requests
		WHERE id = $1`

	var request BloodRequest
	err := r.db.GetContext(ctx, &request, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get blood request: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get blood request: %w", err)
	}

	return &request, nil
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID int64,
) ([]BloodRequest, error) {
	query := `
		SELECT id, user_id, blood_group, location, units, message, status,
		       request_date
		FROM blood_requests
		WHERE user_id = $1
		ORDER BY request_date DESC, id DESC`

	var requests []BloodRequest
	if err := r.db.SelectContext(ctx, &requests, query, userID); err != nil {
		return nil, fmt.Errorf("list blood requests: %w", err)
	}

	return requests, nil
}

func (r *repository) ListAll(ctx context.Context) ([]BloodRequest, error) {
	query := `
		SELECT id, user_id, blood_group, location, units, message, status,
		       request_date
		FROM blood_requests
		ORDER BY request_date DESC, id DESC`

	var requests []BloodRequest
	if err := r.db.SelectContext(ctx, &requests, query); err != nil {
		return nil, fmt.Errorf("list blood requests: %w", err)
	}

	return requests, nil
}

func (r *repository) ApplyTransition(
	ctx context.Context,
	id int64,
	to Status,
	notif *notification.Notification,
) (*BloodRequest, error) {
	var request BloodRequest

	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			SELECT id, user_id, blood_group, location, units, message,
			       status, request_date
			FROM blood_requests
			WHERE id = $1
			FOR UPDATE`

		err := tx.GetContext(ctx, &request, query, id)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("transition request: %w", core.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("transition request: %w", err)
		}

		if err := request.CanTransition(to); err != nil {
			return err
		}

		update := `
			UPDATE blood_requests
			SET status = $2
			WHERE id = $1`

		if _, err := tx.ExecContext(ctx, update, id, to); err != nil {
			return fmt.Errorf("transition request: %w", err)
		}
		request.Status = to

		if notif != nil {
			if err := notification.NewRepository(tx).Create(ctx, notif); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &request, nil
}
