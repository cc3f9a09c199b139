// AngelaMos | 2026
// service_test.go

package report

import (
	"context"
	"testing"
	"time"
)

type fakeRepo struct {
	counts Counts
	recent []RecentRequest
}

func (f *fakeRepo) Counts(_ context.Context) (*Counts, error) {
	copied := f.counts
	return &copied, nil
}

func (f *fakeRepo) RecentRequests(
	_ context.Context,
	limit int,
) ([]RecentRequest, error) {
	if len(f.recent) > limit {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

func TestStatsEmptyPortal(t *testing.T) {
	svc := NewService(&fakeRepo{})

	counts, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}

	if *counts != (Counts{}) {
		t.Errorf("Stats() = %+v, want all zeros", *counts)
	}
}

func TestDashboard(t *testing.T) {
	repo := &fakeRepo{
		counts: Counts{
			TotalUsers:      12,
			TotalDonors:     4,
			TotalUnits:      30,
			StockLocations:  2,
			TotalRequests:   5,
			PendingRequests: 3,
			DonorsToday:     1,
		},
		recent: []RecentRequest{
			{
				ID:             9,
				BloodGroup:     "O+",
				Location:       "Dhaka",
				Units:          2,
				Status:         "Pending",
				RequestDate:    time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
				RequesterName:  "Rahim",
				RequesterPhone: "555-0100",
			},
		},
	}
	svc := NewService(repo)

	counts, recent, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard() error = %v", err)
	}
	if counts.PendingRequests != 3 {
		t.Errorf("PendingRequests = %d, want 3", counts.PendingRequests)
	}
	if len(recent) != 1 {
		t.Fatalf("recent = %d, want 1", len(recent))
	}

	responses := ToRecentRequestResponses(recent)
	if responses[0].RequestDate != "2026-06-01" {
		t.Errorf("RequestDate = %q, want 2026-06-01", responses[0].RequestDate)
	}
}
