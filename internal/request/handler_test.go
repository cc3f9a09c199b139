// AngelaMos | 2026
// handler_test.go

package request

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/redconnect-dev/redconnect/internal/middleware"
)

type listEnvelope struct {
	Success bool              `json:"success"`
	Data    []RequestResponse `json:"data"`
}

func asUser(r *http.Request, userID int64) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.UserIDKey, userID)
	return r.WithContext(ctx)
}

func TestListMineReturnsOwnRequests(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	h := NewHandler(svc)

	submitted := submitPending(t, svc)
	if _, err := svc.Submit(context.Background(), 99, &SubmitRequest{
		BloodGroup: "A-",
		Location:   "Chittagong",
		Units:      1,
	}); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	req := asUser(httptest.NewRequest(http.MethodGet, "/requests", nil), submitted.UserID)
	rec := httptest.NewRecorder()
	h.ListMine(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body listEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Success {
		t.Fatal("expected success envelope")
	}
	if len(body.Data) != 1 {
		t.Fatalf("len(data) = %d, want 1", len(body.Data))
	}
	if body.Data[0].ID != submitted.ID || body.Data[0].Status != StatusPending {
		t.Fatalf("unexpected row: %+v", body.Data[0])
	}
}

func TestListAllReturnsEveryRequest(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	h := NewHandler(svc)

	submitPending(t, svc)
	if _, err := svc.Submit(context.Background(), 99, &SubmitRequest{
		BloodGroup: "A-",
		Location:   "Chittagong",
		Units:      1,
	}); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	req := asUser(httptest.NewRequest(http.MethodGet, "/admin/requests", nil), 1)
	rec := httptest.NewRecorder()
	h.ListAll(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body listEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Data) != 2 {
		t.Fatalf("len(data) = %d, want 2", len(body.Data))
	}
}
