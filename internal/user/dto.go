// AngelaMos | 2026
// dto.go

package user

import (
	"time"

	"github.com/redconnect-dev/redconnect/internal/donation"
)

type UpdateProfileRequest struct {
	Name       *string `json:"name,omitempty"        validate:"omitempty,min=1,max=100"`
	Email      *string `json:"email,omitempty"       validate:"omitempty,email,max=255"`
	Phone      *string `json:"phone,omitempty"       validate:"omitempty,min=5,max=20"`
	BloodGroup *string `json:"blood_group,omitempty" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Location   *string `json:"location,omitempty"    validate:"omitempty,min=1,max=100"`
}

type SetDonorStatusRequest struct {
	IsDonor *bool `json:"is_donor" validate:"required"`
}

type UserResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	BloodGroup string    `json:"blood_group"`
	Location   string    `json:"location"`
	Phone      string    `json:"phone"`
	IsAdmin    bool      `json:"is_admin"`
	IsDonor    bool      `json:"is_donor"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		BloodGroup: u.BloodGroup,
		Location:   u.Location,
		Phone:      u.Phone,
		IsAdmin:    u.IsAdmin,
		IsDonor:    u.IsDonor,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

// SearchParams filters the admin donor directory. An empty blood group or
// location leaves that dimension unfiltered.
type SearchParams struct {
	BloodGroup string
	Location   string
	Limit      int
}

func (p *SearchParams) Normalize(defaultLimit int) {
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
}

// DonorRow is one admin search result: the user joined with their most
// recent donation date, if any.
type DonorRow struct {
	ID           int64      `db:"id"`
	Name         string     `db:"name"`
	Phone        string     `db:"phone"`
	BloodGroup   string     `db:"blood_group"`
	Location     string     `db:"location"`
	IsAdmin      bool       `db:"is_admin"`
	IsDonor      bool       `db:"is_donor"`
	LastDonation *time.Time `db:"last_donation"`
}

type DonorResponse struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	Phone        string           `json:"phone"`
	BloodGroup   string           `json:"blood_group"`
	Location     string           `json:"location"`
	IsAdmin      bool             `json:"is_admin"`
	IsDonor      bool             `json:"is_donor"`
	LastDonation *string          `json:"last_donation"`
	Eligibility  donation.Verdict `json:"eligibility"`
}

func ToDonorResponse(row DonorRow, now time.Time) DonorResponse {
	resp := DonorResponse{
		ID:          row.ID,
		Name:        row.Name,
		Phone:       row.Phone,
		BloodGroup:  row.BloodGroup,
		Location:    row.Location,
		IsAdmin:     row.IsAdmin,
		IsDonor:     row.IsDonor,
		Eligibility: donation.CalculateEligibility(row.LastDonation, now),
	}

	if row.LastDonation != nil {
		formatted := row.LastDonation.Format(donation.DateLayout)
		resp.LastDonation = &formatted
	}

	return resp
}
