// AngelaMos | 2026
// service.go

package stock

import (
	"context"
	"fmt"

	"github.com/redconnect-dev/redconnect/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add merges a positive unit delta into the ledger. Adding and overwriting
// are distinct operations: Add accumulates, SetUnits replaces.
func (s *Service) Add(
	ctx context.Context,
	bloodGroup string,
	units int,
	location string,
) (*Entry, error) {
	if units <= 0 {
		return nil, fmt.Errorf(
			"add stock: units must be positive, got %d: %w",
			units,
			core.ErrInvalidInput,
		)
	}

	return s.repo.Upsert(ctx, bloodGroup, units, location)
}

func (s *Service) SetUnits(
	ctx context.Context,
	id int64,
	units int,
) (*Entry, error) {
	if units < 0 {
		return nil, fmt.Errorf(
			"set stock units: units must be non-negative, got %d: %w",
			units,
			core.ErrInvalidInput,
		)
	}

	return s.repo.SetUnits(ctx, id, units)
}

func (s *Service) Search(
	ctx context.Context,
	params SearchParams,
) ([]Entry, error) {
	return s.repo.Search(ctx, params)
}

// Availability is the public stock search: it requires a blood group and
// only reports rows with units on hand.
func (s *Service) Availability(
	ctx context.Context,
	bloodGroup, location string,
) ([]Entry, error) {
	if bloodGroup == "" {
		return nil, fmt.Errorf(
			"availability: blood group is required: %w",
			core.ErrInvalidInput,
		)
	}

	return s.repo.Search(ctx, SearchParams{
		BloodGroup:    bloodGroup,
		Location:      location,
		AvailableOnly: true,
	})
}
