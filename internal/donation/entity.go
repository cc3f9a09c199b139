// AngelaMos | 2026
// entity.go

package donation

import (
	"time"
)

// Donation is immutable once recorded; it is only removed when the owning
// user is deleted.
type Donation struct {
	ID           int64     `db:"id"`
	UserID       int64     `db:"user_id"`
	BloodGroup   string    `db:"blood_group"`
	DonationType string    `db:"donation_type"`
	DonationDate time.Time `db:"donation_date"`
	Notes        *string   `db:"notes"`
}

const (
	TypeWholeBlood = "Whole Blood"
	TypePlasma     = "Plasma"
	TypePlatelets  = "Platelets"
)
