// AngelaMos | 2026
// dto.go

package report

import (
	"time"
)

// StatsResponse is the public aggregate view.
type StatsResponse struct {
	TotalUsers      int64 `json:"total_users"`
	TotalDonors     int64 `json:"total_donors"`
	TotalUnits      int64 `json:"total_units"`
	StockLocations  int64 `json:"stock_locations"`
	TotalRequests   int64 `json:"total_requests"`
	PendingRequests int64 `json:"pending_requests"`
	DonorsToday     int64 `json:"donors_today"`
}

type RecentRequestResponse struct {
	ID             int64  `json:"id"`
	BloodGroup     string `json:"blood_group"`
	Location       string `json:"location"`
	Units          int    `json:"units"`
	Status         string `json:"status"`
	RequestDate    string `json:"request_date"`
	RequesterName  string `json:"requester_name"`
	RequesterPhone string `json:"requester_phone"`
}

// DashboardResponse combines the aggregates with the recent request feed.
type DashboardResponse struct {
	Stats          StatsResponse           `json:"stats"`
	RecentRequests []RecentRequestResponse `json:"recent_requests"`
}

func ToStatsResponse(counts *Counts) StatsResponse {
	return StatsResponse{
		TotalUsers:      counts.TotalUsers,
		TotalDonors:     counts.TotalDonors,
		TotalUnits:      counts.TotalUnits,
		StockLocations:  counts.StockLocations,
		TotalRequests:   counts.TotalRequests,
		PendingRequests: counts.PendingRequests,
		DonorsToday:     counts.DonorsToday,
	}
}

func ToRecentRequestResponses(requests []RecentRequest) []RecentRequestResponse {
	responses := make([]RecentRequestResponse, 0, len(requests))
	for i := range requests {
		r := &requests[i]
		responses = append(responses, RecentRequestResponse{
			ID:             r.ID,
			BloodGroup:     r.BloodGroup,
			Location:       r.Location,
			Units:          r.Units,
			Status:         r.Status,
			RequestDate:    r.RequestDate.Format(time.DateOnly),
			RequesterName:  r.RequesterName,
			RequesterPhone: r.RequesterPhone,
		})
	}
	return responses
}
