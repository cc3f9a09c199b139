// AngelaMos | 2026
// service_test.go

package stock

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/redconnect-dev/redconnect/internal/core"
)

type fakeRepo struct {
	entries map[int64]*Entry
	nextID  int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{entries: make(map[int64]*Entry), nextID: 1}
}

func (f *fakeRepo) Upsert(
	_ context.Context,
	bloodGroup string,
	units int,
	location string,
) (*Entry, error) {
	for _, e := range f.entries {
		if e.BloodGroup == bloodGroup && e.Location == location {
			e.Units += units
			e.LastUpdated = time.Now()
			copied := *e
			return &copied, nil
		}
	}

	entry := &Entry{
		ID:          f.nextID,
		BloodGroup:  bloodGroup,
		Units:       units,
		Location:    location,
		LastUpdated: time.Now(),
	}
	f.nextID++
	f.entries[entry.ID] = entry
	copied := *entry
	return &copied, nil
}

func (f *fakeRepo) SetUnits(
	_ context.Context,
	id int64,
	units int,
) (*Entry, error) {
	e, ok := f.entries[id]
	if !ok {
		return nil, fmt.Errorf("set stock units: %w", core.ErrNotFound)
	}
	e.Units = units
	copied := *e
	return &copied, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*Entry, error) {
	e, ok := f.entries[id]
	if !ok {
		return nil, fmt.Errorf("get stock entry: %w", core.ErrNotFound)
	}
	copied := *e
	return &copied, nil
}

func (f *fakeRepo) Search(
	_ context.Context,
	params SearchParams,
) ([]Entry, error) {
	var out []Entry
	for _, e := range f.entries {
		if params.BloodGroup != "" && e.BloodGroup != params.BloodGroup {
			continue
		}
		if params.AvailableOnly && e.Units == 0 {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

func TestAddAccumulates(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	first, err := svc.Add(ctx, "A+", 5, "Dhaka")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if first.Units != 5 {
		t.Errorf("Units = %d, want 5", first.Units)
	}

	second, err := svc.Add(ctx, "A+", 3, "Dhaka")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if second.Units != 8 {
		t.Errorf("Units = %d, want 8 (accumulated)", second.Units)
	}
	if second.ID != first.ID {
		t.Errorf("ID = %d, want %d (same ledger row)", second.ID, first.ID)
	}
}

func TestAddSeparatesLocations(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	a, _ := svc.Add(ctx, "A+", 5, "Dhaka")
	b, err := svc.Add(ctx, "A+", 5, "Chittagong")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if a.ID == b.ID {
		t.Error("same blood group at different locations should be distinct rows")
	}
}

func TestAddRejectsNonPositiveUnits(t *testing.T) {
	svc := NewService(newFakeRepo())

	for _, units := range []int{0, -1} {
		_, err := svc.Add(context.Background(), "A+", units, "Dhaka")
		if !errors.Is(err, core.ErrInvalidInput) {
			t.Errorf("Add(units=%d) error = %v, want ErrInvalidInput", units, err)
		}
	}
}

func TestSetUnitsReplaces(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	entry, _ := svc.Add(ctx, "B-", 5, "Dhaka")

	updated, err := svc.SetUnits(ctx, entry.ID, 2)
	if err != nil {
		t.Fatalf("SetUnits() error = %v", err)
	}
	if updated.Units != 2 {
		t.Errorf("Units = %d, want 2 (replaced, not accumulated)", updated.Units)
	}
}

func TestSetUnitsRejectsNegative(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.SetUnits(context.Background(), 1, -1)
	if !errors.Is(err, core.ErrInvalidInput) {
		t.Errorf("SetUnits() error = %v, want ErrInvalidInput", err)
	}
}

func TestSetUnitsMissingEntry(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.SetUnits(context.Background(), 42, 1)
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("SetUnits() error = %v, want ErrNotFound", err)
	}
}

func TestAvailabilityRequiresBloodGroup(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Availability(context.Background(), "", "Dhaka")
	if !errors.Is(err, core.ErrInvalidInput) {
		t.Errorf("Availability() error = %v, want ErrInvalidInput", err)
	}
}

func TestAvailabilitySkipsEmptyRows(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	entry, _ := svc.Add(ctx, "O-", 4, "Dhaka")
	if _, err := svc.SetUnits(ctx, entry.ID, 0); err != nil {
		t.Fatalf("SetUnits() error = %v", err)
	}

	entries, err := svc.Availability(ctx, "O-", "")
	if err != nil {
		t.Fatalf("Availability() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("entries = %d, want 0 (zero units hidden)", len(entries))
	}
}
