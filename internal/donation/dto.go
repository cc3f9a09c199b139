// AngelaMos | 2026
// dto.go

package donation

type RecordDonationRequest struct {
	BloodGroup   string  `json:"blood_group"   validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	DonationType string  `json:"donation_type" validate:"required,min=1,max=50"`
	DonationDate string  `json:"donation_date" validate:"required"`
	Notes        *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

type DonationResponse struct {
	ID           int64   `json:"id"`
	BloodGroup   string  `json:"blood_group"`
	DonationType string  `json:"donation_type"`
	DonationDate string  `json:"donation_date"`
	Notes        *string `json:"notes,omitempty"`
}

func ToDonationResponse(d *Donation) DonationResponse {
	return DonationResponse{
		ID:           d.ID,
		BloodGroup:   d.BloodGroup,
		DonationType: d.DonationType,
		DonationDate: d.DonationDate.Format(DateLayout),
		Notes:        d.Notes,
	}
}

func ToDonationResponseList(donations []Donation) []DonationResponse {
	responses := make([]DonationResponse, 0, len(donations))
	for _, d := range donations {
		responses = append(responses, ToDonationResponse(&d))
	}
	return responses
}
