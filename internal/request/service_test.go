// AngelaMos | 2026
// service_test.go

package request

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/redconnect-dev/redconnect/internal/core"
	"github.com/redconnect-dev/redconnect/internal/notification"
)

type fakeRepo struct {
	requests      map[int64]*BloodRequest
	nextID        int64
	notifications []*notification.Notification
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{requests: make(map[int64]*BloodRequest), nextID: 1}
}

func (f *fakeRepo) Create(_ context.Context, r *BloodRequest) error {
	r.ID = f.nextID
	f.nextID++
	r.Status = StatusPending
	r.RequestDate = time.Now()
	stored := *r
	f.requests[r.ID] = &stored
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*BloodRequest, error) {
	r, ok := f.requests[id]
	if !ok {
		return nil, fmt.Errorf("get blood request: %w", core.ErrNotFound)
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRepo) ListByUser(
	_ context.Context,
	userID int64,
) ([]BloodRequest, error) {
	var out []BloodRequest
	for _, r := range f.requests {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAll(_ context.Context) ([]BloodRequest, error) {
	var out []BloodRequest
	for _, r := range f.requests {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeRepo) ApplyTransition(
	_ context.Context,
	id int64,
	to Status,
	notif *notification.Notification,
) (*BloodRequest, error) {
	r, ok := f.requests[id]
	if !ok {
		return nil, fmt.Errorf("transition request: %w", core.ErrNotFound)
	}
	if err := r.CanTransition(to); err != nil {
		return nil, err
	}
	r.Status = to
	if notif != nil {
		f.notifications = append(f.notifications, notif)
	}
	copied := *r
	return &copied, nil
}

type fakeAdminLookup struct {
	name  string
	phone string
	err   error
}

func (f *fakeAdminLookup) AdminContact(
	_ context.Context,
	_ int64,
) (string, string, error) {
	return f.name, f.phone, f.err
}

func newTestService(repo *fakeRepo) *Service {
	return NewService(
		repo,
		&fakeAdminLookup{name: "Admin", phone: "555-0100"},
		"012345678910",
	)
}

func submitPending(t *testing.T, svc *Service) *BloodRequest {
	t.Helper()

	r, err := svc.Submit(context.Background(), 7, &SubmitRequest{
		BloodGroup: "O+",
		Location:   "Dhaka",
		Units:      2,
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	return r
}

func TestSubmitStartsPending(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	r := submitPending(t, svc)

	if r.Status != StatusPending {
		t.Errorf("Status = %s, want %s", r.Status, StatusPending)
	}
	if r.UserID != 7 {
		t.Errorf("UserID = %d, want 7", r.UserID)
	}
}

func TestSubmitRejectsUnknownBloodGroup(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	_, err := svc.Submit(context.Background(), 7, &SubmitRequest{
		BloodGroup: "C+",
		Location:   "Dhaka",
		Units:      1,
	})
	if !errors.Is(err, core.ErrInvalidInput) {
		t.Errorf("Submit() error = %v, want ErrInvalidInput", err)
	}
}

func TestApproveNotifiesRequester(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	r := submitPending(t, svc)

	approved, err := svc.Approve(context.Background(), 1, r.ID)
	if err != nil {
		t.Fatalf("Approve() error = %v", err)
	}

	if approved.Status != StatusApproved {
		t.Errorf("Status = %s, want %s", approved.Status, StatusApproved)
	}
	if len(repo.notifications) != 1 {
		t.Fatalf("notifications = %d, want 1", len(repo.notifications))
	}

	notif := repo.notifications[0]
	if notif.UserID != r.UserID {
		t.Errorf("notification UserID = %d, want %d", notif.UserID, r.UserID)
	}
	if notif.Type != notification.TypeApproved {
		t.Errorf("notification Type = %q, want %q", notif.Type, notification.TypeApproved)
	}
	want := "Your request for 2 unit(s) of O+ blood has been approved."
	if notif.Message != want {
		t.Errorf("notification Message = %q, want %q", notif.Message, want)
	}
	if notif.AdminName != "Admin" || notif.AdminPhone != "555-0100" {
		t.Errorf(
			"notification contact = %q/%q, want Admin/555-0100",
			notif.AdminName, notif.AdminPhone,
		)
	}
}

func TestRejectNotifiesRequester(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	r := submitPending(t, svc)

	rejected, err := svc.Reject(context.Background(), 1, r.ID)
	if err != nil {
		t.Fatalf("Reject() error = %v", err)
	}

	if rejected.Status != StatusRejected {
		t.Errorf("Status = %s, want %s", rejected.Status, StatusRejected)
	}
	if len(repo.notifications) != 1 {
		t.Fatalf("notifications = %d, want 1", len(repo.notifications))
	}

	notif := repo.notifications[0]
	if notif.Type != notification.TypeRejected {
		t.Errorf("notification Type = %q, want %q", notif.Type, notification.TypeRejected)
	}
	want := "Your request for 2 unit(s) of O+ blood has been rejected."
	if notif.Message != want {
		t.Errorf("notification Message = %q, want %q", notif.Message, want)
	}
}

func TestApproveMissingRequest(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	_, err := svc.Approve(context.Background(), 1, 999)
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Approve() error = %v, want ErrNotFound", err)
	}
	if len(repo.notifications) != 0 {
		t.Errorf("notifications = %d, want 0", len(repo.notifications))
	}
}

func TestApproveTerminalRequest(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	r := submitPending(t, svc)

	if _, err := svc.Approve(context.Background(), 1, r.ID); err != nil {
		t.Fatalf("Approve() error = %v", err)
	}

	_, err := svc.Reject(context.Background(), 1, r.ID)
	if !errors.Is(err, core.ErrInvalidTransition) {
		t.Errorf("Reject() error = %v, want ErrInvalidTransition", err)
	}
	if len(repo.notifications) != 1 {
		t.Errorf("notifications = %d, want 1 (no side effect on failure)", len(repo.notifications))
	}
}

func TestDecisionFallsBackToPortalPhone(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(
		repo,
		&fakeAdminLookup{err: core.ErrNotFound},
		"012345678910",
	)
	r := submitPending(t, svc)

	if _, err := svc.Approve(context.Background(), 1, r.ID); err != nil {
		t.Fatalf("Approve() error = %v", err)
	}

	if got := repo.notifications[0].AdminPhone; got != "012345678910" {
		t.Errorf("AdminPhone = %q, want fallback", got)
	}
}
