// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/redconnect-dev/redconnect/internal/auth"
	"github.com/redconnect-dev/redconnect/internal/core"
)

type Service struct {
	repo        Repository
	searchLimit int
}

func NewService(repo Repository, searchLimit int) *Service {
	if searchLimit <= 0 {
		searchLimit = 10
	}
	return &Service{repo: repo, searchLimit: searchLimit}
}

func (s *Service) GetByID(
	ctx context.Context,
	id int64,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) Create(
	ctx context.Context,
	params auth.CreateUserParams,
) (*auth.UserInfo, error) {
	if !IsValidBloodGroup(params.BloodGroup) {
		return nil, fmt.Errorf(
			"create user: invalid blood group %q: %w",
			params.BloodGroup,
			core.ErrInvalidInput,
		)
	}

	user := &User{
		Name:         params.Name,
		Email:        strings.ToLower(params.Email),
		PasswordHash: params.PasswordHash,
		BloodGroup:   params.BloodGroup,
		Location:     params.Location,
		Phone:        params.Phone,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) IncrementTokenVersion(
	ctx context.Context,
	userID int64,
) error {
	return s.repo.IncrementTokenVersion(ctx, userID)
}

func (s *Service) UpdatePassword(
	ctx context.Context,
	userID int64,
	passwordHash string,
) error {
	return s.repo.UpdatePassword(ctx, userID, passwordHash)
}

func (s *Service) GetUser(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetMe(ctx context.Context, userID int64) (*User, error) {
	if userID == 0 {
		return nil, fmt.Errorf("get me: %w", core.ErrUnauthorized)
	}

	return s.repo.GetByID(ctx, userID)
}

func (s *Service) UpdateProfile(
	ctx context.Context,
	userID int64,
	req UpdateProfileRequest,
) (*User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = strings.ToLower(*req.Email)
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.BloodGroup != nil {
		user.BloodGroup = *req.BloodGroup
	}
	if req.Location != nil {
		user.Location = *req.Location
	}

	if err := s.repo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) SetDonorStatus(
	ctx context.Context,
	userID int64,
	isDonor bool,
) error {
	if userID == 0 {
		return fmt.Errorf("set donor status: %w", core.ErrUnauthorized)
	}

	return s.repo.SetDonorStatus(ctx, userID, isDonor)
}

// ToggleAdmin flips the target's admin flag. Admins cannot change their
// own role.
func (s *Service) ToggleAdmin(
	ctx context.Context,
	requesterID, targetID int64,
) (*User, error) {
	if requesterID == targetID {
		return nil, fmt.Errorf(
			"toggle admin: cannot change own role: %w",
			core.ErrForbidden,
		)
	}

	user, err := s.repo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetAdminStatus(ctx, targetID, !user.IsAdmin); err != nil {
		return nil, err
	}

	user.IsAdmin = !user.IsAdmin
	return user, nil
}

// DeleteUser removes the target user and all their requests, donations and
// notifications in one transaction. Admins cannot delete their own account.
func (s *Service) DeleteUser(
	ctx context.Context,
	requesterID, targetID int64,
) error {
	if requesterID == targetID {
		return fmt.Errorf(
			"delete user: cannot delete own account: %w",
			core.ErrForbidden,
		)
	}

	return s.repo.Delete(ctx, targetID)
}

func (s *Service) Search(
	ctx context.Context,
	params SearchParams,
) ([]DonorRow, error) {
	if params.BloodGroup != "" && !IsValidBloodGroup(params.BloodGroup) {
		return nil, fmt.Errorf(
			"search users: invalid blood group %q: %w",
			params.BloodGroup,
			core.ErrInvalidInput,
		)
	}

	params.Normalize(s.searchLimit)

	return s.repo.Search(ctx, params)
}

func (s *Service) EmailExists(
	ctx context.Context,
	email string,
) (bool, error) {
	return s.repo.ExistsByEmail(ctx, strings.ToLower(email))
}

// AdminContact resolves the display name and contact phone attached to
// notifications sent on behalf of an administrator.
func (s *Service) AdminContact(
	ctx context.Context,
	adminID int64,
) (name, phone string, err error) {
	admin, err := s.repo.GetByID(ctx, adminID)
	if err != nil {
		return "", "", err
	}

	return admin.Name, admin.Phone, nil
}

func toUserInfo(u *User) *auth.UserInfo {
	return &auth.UserInfo{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Role:         u.Role(),
		TokenVersion: u.TokenVersion,
		CreatedAt:    u.CreatedAt,
	}
}

var _ auth.UserProvider = (*Service)(nil)
