// AngelaMos | 2026
// service_test.go

package donation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redconnect-dev/redconnect/internal/core"
)

type fakeRepo struct {
	donations []Donation
	nextID    int64
}

func (f *fakeRepo) Create(_ context.Context, d *Donation) error {
	f.nextID++
	d.ID = f.nextID
	f.donations = append(f.donations, *d)
	return nil
}

func (f *fakeRepo) ListByUser(
	_ context.Context,
	userID int64,
) ([]Donation, error) {
	var out []Donation
	for _, d := range f.donations {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeRepo) LastDonationDate(
	_ context.Context,
	userID int64,
) (*time.Time, error) {
	var last *time.Time
	for i := range f.donations {
		d := &f.donations[i]
		if d.UserID != userID {
			continue
		}
		if last == nil || d.DonationDate.After(*last) {
			last = &d.DonationDate
		}
	}
	return last, nil
}

func newTestService(repo *fakeRepo, now time.Time) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return now }
	return svc
}

func TestRecordParsesDate(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, time.Now())

	d, err := svc.Record(context.Background(), 7, RecordDonationRequest{
		BloodGroup:   "O+",
		DonationType: TypeWholeBlood,
		DonationDate: "2026-03-03",
	})
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	want := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	if !d.DonationDate.Equal(want) {
		t.Errorf("DonationDate = %v, want %v", d.DonationDate, want)
	}
}

func TestRecordRejectsMalformedDate(t *testing.T) {
	svc := newTestService(&fakeRepo{}, time.Now())

	_, err := svc.Record(context.Background(), 7, RecordDonationRequest{
		BloodGroup:   "O+",
		DonationType: TypeWholeBlood,
		DonationDate: "03-03-2026",
	})
	if !errors.Is(err, core.ErrInvalidInput) {
		t.Errorf("Record() error = %v, want ErrInvalidInput", err)
	}
}

func TestEligibilityNeverDonated(t *testing.T) {
	svc := newTestService(&fakeRepo{}, time.Now())

	verdict, err := svc.Eligibility(context.Background(), 7)
	if err != nil {
		t.Fatalf("Eligibility() error = %v", err)
	}
	if !verdict.Eligible || verdict.Message != "Available" {
		t.Errorf("verdict = %+v, want eligible/Available", verdict)
	}
}

func TestEligibilityUsesLatestDonation(t *testing.T) {
	repo := &fakeRepo{}
	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	svc := newTestService(repo, now)

	for _, date := range []string{"2025-12-01", "2026-05-20"} {
		if _, err := svc.Record(context.Background(), 7, RecordDonationRequest{
			BloodGroup:   "O+",
			DonationType: TypeWholeBlood,
			DonationDate: date,
		}); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	verdict, err := svc.Eligibility(context.Background(), 7)
	if err != nil {
		t.Fatalf("Eligibility() error = %v", err)
	}
	if verdict.Eligible {
		t.Errorf("verdict = %+v, want ineligible after recent donation", verdict)
	}
}

func TestEligibilityRequiresPrincipal(t *testing.T) {
	svc := newTestService(&fakeRepo{}, time.Now())

	if _, err := svc.Eligibility(context.Background(), 0); !errors.Is(err, core.ErrUnauthorized) {
		t.Errorf("Eligibility() error = %v, want ErrUnauthorized", err)
	}
}
