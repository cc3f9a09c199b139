// AngelaMos | 2026
// entity.go

package user

import (
	"time"
)

type User struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	BloodGroup   string    `db:"blood_group"`
	Location     string    `db:"location"`
	Phone        string    `db:"phone"`
	IsAdmin      bool      `db:"is_admin"`
	IsDonor      bool      `db:"is_donor"`
	TokenVersion int       `db:"token_version"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Role maps the persisted admin flag onto the role claim carried by
// access tokens.
func (u *User) Role() string {
	if u.IsAdmin {
		return RoleAdmin
	}
	return RoleUser
}

var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

func IsValidBloodGroup(bg string) bool {
	for _, g := range BloodGroups {
		if g == bg {
			return true
		}
	}
	return false
}
