// AngelaMos | 2026
// entity_test.go

package request

import (
	"errors"
	"testing"

	"github.com/redconnect-dev/redconnect/internal/core"
)

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusApproved, StatusRejected} {
		if !s.Valid() {
			t.Errorf("Status(%q).Valid() = false, want true", s)
		}
	}

	for _, s := range []Status{"", "pending", "Cancelled"} {
		if s.Valid() {
			t.Errorf("Status(%q).Valid() = true, want false", s)
		}
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		wantErr bool
	}{
		{name: "pending to approved", from: StatusPending, to: StatusApproved},
		{name: "pending to rejected", from: StatusPending, to: StatusRejected},
		{
			name:    "approved is terminal",
			from:    StatusApproved,
			to:      StatusRejected,
			wantErr: true,
		},
		{
			name:    "rejected is terminal",
			from:    StatusRejected,
			to:      StatusApproved,
			wantErr: true,
		},
		{
			name:    "cannot move back to pending",
			from:    StatusPending,
			to:      StatusPending,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &BloodRequest{ID: 1, Status: tt.from}

			err := r.CanTransition(tt.to)
			if tt.wantErr {
				if !errors.Is(err, core.ErrInvalidTransition) {
					t.Errorf(
						"CanTransition(%s) error = %v, want ErrInvalidTransition",
						tt.to, err,
					)
				}
				return
			}
			if err != nil {
				t.Errorf("CanTransition(%s) error = %v, want nil", tt.to, err)
			}
		})
	}
}
