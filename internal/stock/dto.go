// AngelaMos | 2026
// dto.go

package stock

import (
	"time"
)

type AddStockRequest struct {
	BloodGroup string `json:"blood_group" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Units      int    `json:"units"       validate:"required,gt=0"`
	Location   string `json:"location"    validate:"required,min=1,max=100"`
}

type SetUnitsRequest struct {
	Units *int `json:"units" validate:"required,gte=0"`
}

type SearchParams struct {
	BloodGroup    string
	Location      string
	AvailableOnly bool
}

type EntryResponse struct {
	ID          int64  `json:"id"`
	BloodGroup  string `json:"blood_group"`
	Units       int    `json:"units"`
	Location    string `json:"location"`
	LastUpdated string `json:"last_updated"`
}

func ToEntryResponse(e *Entry) EntryResponse {
	return EntryResponse{
		ID:          e.ID,
		BloodGroup:  e.BloodGroup,
		Units:       e.Units,
		Location:    e.Location,
		LastUpdated: e.LastUpdated.Format(time.DateOnly),
	}
}

func ToEntryResponseList(entries []Entry) []EntryResponse {
	responses := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, ToEntryResponse(&e))
	}
	return responses
}
