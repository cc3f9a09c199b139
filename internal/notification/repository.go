// AngelaMos | 2026
// repository.go

package notification

import (
	"context"
	"fmt"

	"github.com/redconnect-dev/redconnect/internal/core"
)

type Repository interface {
	Create(ctx context.Context, notification *Notification) error
	ListByUser(ctx context.Context, userID int64) ([]Notification, error)
}

type repository struct {
	db core.DBTX
}

// NewRepository accepts any query executor so notification inserts can run
// inside a caller's transaction.
func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	notification *Notification,
) error {
	query := `
		INSERT INTO notifications (
			user_id, title, message, type, admin_name, admin_phone
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := r.db.QueryRowxContext(ctx, query,
		notification.UserID,
		notification.Title,
		notification.Message,
		notification.Type,
		notification.AdminName,
		notification.AdminPhone,
	).Scan(&notification.ID, &notification.CreatedAt)
	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}

	return nil
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID int64,
) ([]Notification, error) {
	query := `
		SELECT id, user_id, title, message, type, admin_name, admin_phone,
		       created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`

	var notifications []Notification
	err := r.db.SelectContext(ctx, &notifications, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	return notifications, nil
}
