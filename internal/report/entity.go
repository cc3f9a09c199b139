// AngelaMos | 2026
// entity.go

package report

import (
	"time"
)

// Counts holds the portal-wide aggregates shown on the landing page
// and the admin dashboard.
type Counts struct {
	TotalUsers      int64 `db:"total_users"`
	TotalDonors     int64 `db:"total_donors"`
	TotalUnits      int64 `db:"total_units"`
	StockLocations  int64 `db:"stock_locations"`
	TotalRequests   int64 `db:"total_requests"`
	PendingRequests int64 `db:"pending_requests"`
	DonorsToday     int64 `db:"donors_today"`
}

// RecentRequest is a blood request joined with its requester's contact
// details, for the admin dashboard feed.
type RecentRequest struct {
	ID             int64     `db:"id"`
	BloodGroup     string    `db:"blood_group"`
	Location       string    `db:"location"`
	Units          int       `db:"units"`
	Status         string    `db:"status"`
	RequestDate    time.Time `db:"request_date"`
	RequesterName  string    `db:"requester_name"`
	RequesterPhone string    `db:"requester_phone"`
}
