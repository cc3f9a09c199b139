// AngelaMos | 2026
// service.go

package report

import (
	"context"
)

const recentRequestLimit = 10

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Stats(ctx context.Context) (*Counts, error) {
	return s.repo.Counts(ctx)
}

func (s *Service) Dashboard(ctx context.Context) (*Counts, []RecentRequest, error) {
	counts, err := s.repo.Counts(ctx)
	if err != nil {
		return nil, nil, err
	}

	recent, err := s.repo.RecentRequests(ctx, recentRequestLimit)
	if err != nil {
		return nil, nil, err
	}

	return counts, recent, nil
}
