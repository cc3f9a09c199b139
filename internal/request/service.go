// AngelaMos | 2026
// service.go

package request

import (
	"context"
	"fmt"

	"github.com/redconnect-dev/redconnect/internal/core"
	"github.com/redconnect-dev/redconnect/internal/notification"
	"github.com/redconnect-dev/redconnect/internal/user"
)

// AdminLookup resolves the contact details attached to decision
// notifications. Implemented by the user service.
type AdminLookup interface {
	AdminContact(ctx context.Context, adminID int64) (name, phone string, err error)
}

type Service struct {
	repo          Repository
	admins        AdminLookup
	fallbackPhone string
}

func NewService(repo Repository, admins AdminLookup, fallbackPhone string) *Service {
	return &Service{
		repo:          repo,
		admins:        admins,
		fallbackPhone: fallbackPhone,
	}
}

func (s *Service) Submit(
	ctx context.Context,
	userID int64,
	req *SubmitRequest,
) (*BloodRequest, error) {
	if !user.IsValidBloodGroup(req.BloodGroup) {
		return nil, core.ValidationError("invalid blood group")
	}

	request := &BloodRequest{
		UserID:     userID,
		BloodGroup: req.BloodGroup,
		Location:   req.Location,
		Units:      req.Units,
		Message:    req.Message,
	}

	if err := s.repo.Create(ctx, request); err != nil {
		return nil, err
	}

	return request, nil
}

func (s *Service) ListMine(ctx context.Context, userID int64) ([]BloodRequest, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) ListAll(ctx context.Context) ([]BloodRequest, error) {
	return s.repo.ListAll(ctx)
}

// Approve moves a pending request to approved and notifies the requester.
func (s *Service) Approve(
	ctx context.Context,
	adminID int64,
	requestID int64,
) (*BloodRequest, error) {
	return s.decide(ctx, adminID, requestID, StatusApproved)
}

// Reject moves a pending request to rejected and notifies the requester.
func (s *Service) Reject(
	ctx context.Context,
	adminID int64,
	requestID int64,
) (*BloodRequest, error) {
	return s.decide(ctx, adminID, requestID, StatusRejected)
}

func (s *Service) decide(
	ctx context.Context,
	adminID int64,
	requestID int64,
	to Status,
) (*BloodRequest, error) {
	current, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if err := current.CanTransition(to); err != nil {
		return nil, err
	}

	notif := s.buildNotification(ctx, adminID, current, to)

	return s.repo.ApplyTransition(ctx, requestID, to, notif)
}

func (s *Service) buildNotification(
	ctx context.Context,
	adminID int64,
	request *BloodRequest,
	to Status,
) *notification.Notification {
	adminName, adminPhone, err := s.admins.AdminContact(ctx, adminID)
	if err != nil || adminPhone == "" {
		adminPhone = s.fallbackPhone
	}

	notif := &notification.Notification{
		UserID:     request.UserID,
		AdminName:  adminName,
		AdminPhone: adminPhone,
	}

	switch to {
	case StatusApproved:
		notif.Title = "Blood Request Approved"
		notif.Type = notification.TypeApproved
		notif.Message = fmt.Sprintf(
			"Your request for %d unit(s) of %s blood has been approved.",
			request.Units, request.BloodGroup,
		)
	case StatusRejected:
		notif.Title = "Blood Request Rejected"
		notif.Type = notification.TypeRejected
		notif.Message = fmt.Sprintf(
			"Your request for %d unit(s) of %s blood has been rejected.",
			request.Units, request.BloodGroup,
		)
	}

	return notif
}
