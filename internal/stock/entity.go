// AngelaMos | 2026
// entity.go

package stock

import (
	"time"
)

// Entry is the stock ledger row for one (blood group, location) pair.
// The pair is the natural key: additions merge into the existing row
// rather than creating a second one.
type Entry struct {
	ID          int64     `db:"id"`
	BloodGroup  string    `db:"blood_group"`
	Units       int       `db:"units"`
	Location    string    `db:"location"`
	LastUpdated time.Time `db:"last_updated"`
}
