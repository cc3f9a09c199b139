// AngelaMos | 2026
// entity.go

package notification

import (
	"time"
)

// Notification is written once as a side effect of a request transition
// and read-only afterward.
type Notification struct {
	ID         int64     `db:"id"`
	UserID     int64     `db:"user_id"`
	Title      string    `db:"title"`
	Message    string    `db:"message"`
	Type       string    `db:"type"`
	AdminName  string    `db:"admin_name"`
	AdminPhone string    `db:"admin_phone"`
	CreatedAt  time.Time `db:"created_at"`
}

const (
	TypeInfo     = "info"
	TypeApproved = "approved"
	TypeRejected = "rejected"
)
