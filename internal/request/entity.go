// AngelaMos | 2026
// entity.go

package request

import (
	"fmt"
	"time"

	"github.com/redconnect-dev/redconnect/internal/core"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transition is defined from s.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

type BloodRequest struct {
	ID          int64     `db:"id"`
	UserID      int64     `db:"user_id"`
	BloodGroup  string    `db:"blood_group"`
	Location    string    `db:"location"`
	Units       int       `db:"units"`
	Message     *string   `db:"message"`
	Status      Status    `db:"status"`
	RequestDate time.Time `db:"request_date"`
}

// CanTransition enforces the request state machine: only Pending requests
// may move, and only to a terminal decision.
func (r *BloodRequest) CanTransition(to Status) error {
	if r.Status.Terminal() {
		return fmt.Errorf(
			"request %d is already %s: %w",
			r.ID,
			r.Status,
			core.ErrInvalidTransition,
		)
	}

	if !to.Terminal() {
		return fmt.Errorf(
			"cannot transition request %d to %s: %w",
			r.ID,
			to,
			core.ErrInvalidTransition,
		)
	}

	return nil
}
