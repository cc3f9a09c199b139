// AngelaMos | 2026
// service.go

package donation

import (
	"context"
	"fmt"
	"time"

	"github.com/redconnect-dev/redconnect/internal/core"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Record stores a completed donation for the acting user. The donation
// date must be a well-formed calendar date; a malformed one fails
// validation rather than being dropped.
func (s *Service) Record(
	ctx context.Context,
	userID int64,
	req RecordDonationRequest,
) (*Donation, error) {
	if userID == 0 {
		return nil, fmt.Errorf("record donation: %w", core.ErrUnauthorized)
	}

	donationDate, err := ParseDate(req.DonationDate)
	if err != nil {
		return nil, err
	}

	donation := &Donation{
		UserID:       userID,
		BloodGroup:   req.BloodGroup,
		DonationType: req.DonationType,
		DonationDate: donationDate,
		Notes:        req.Notes,
	}

	if err := s.repo.Create(ctx, donation); err != nil {
		return nil, err
	}

	return donation, nil
}

func (s *Service) ListMine(
	ctx context.Context,
	userID int64,
) ([]Donation, error) {
	if userID == 0 {
		return nil, fmt.Errorf("list donations: %w", core.ErrUnauthorized)
	}

	return s.repo.ListByUser(ctx, userID)
}

// Eligibility reports whether the user may donate again, based on their
// most recent recorded donation.
func (s *Service) Eligibility(
	ctx context.Context,
	userID int64,
) (Verdict, error) {
	if userID == 0 {
		return Verdict{}, fmt.Errorf("eligibility: %w", core.ErrUnauthorized)
	}

	last, err := s.repo.LastDonationDate(ctx, userID)
	if err != nil {
		return Verdict{}, err
	}

	return CalculateEligibility(last, s.now()), nil
}
