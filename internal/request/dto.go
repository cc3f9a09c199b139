// AngelaMos | 2026
// dto.go

package request

import (
	"time"
)

type SubmitRequest struct {
	BloodGroup string  `json:"blood_group" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Location   string  `json:"location"    validate:"required,min=1,max=100"`
	Units      int     `json:"units"       validate:"required,gt=0"`
	Message    *string `json:"message,omitempty" validate:"omitempty,max=500"`
}

type RequestResponse struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
	BloodGroup  string  `json:"blood_group"`
	Location    string  `json:"location"`
	Units       int     `json:"units"`
	Message     *string `json:"message,omitempty"`
	Status      Status  `json:"status"`
	RequestDate string  `json:"request_date"`
}

func ToRequestResponse(r *BloodRequest) RequestResponse {
	return RequestResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		BloodGroup:  r.BloodGroup,
		Location:    r.Location,
		Units:       r.Units,
		Message:     r.Message,
		Status:      r.Status,
		RequestDate: r.RequestDate.Format(time.DateOnly),
	}
}

func ToRequestResponseList(requests []BloodRequest) []RequestResponse {
	responses := make([]RequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, ToRequestResponse(&r))
	}
	return responses
}
