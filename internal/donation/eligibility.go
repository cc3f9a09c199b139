// AngelaMos | 2026
// eligibility.go

package donation

import (
	"fmt"
	"time"

	"github.com/redconnect-dev/redconnect/internal/core"
)

// DateLayout is the ISO calendar-date format used for donation dates
// everywhere in the portal.
const DateLayout = "2006-01-02"

// EligibilityWindowDays is the minimum number of whole days a donor must
// wait between donations.
const EligibilityWindowDays = 90

type Verdict struct {
	Eligible bool   `json:"eligible"`
	Message  string `json:"message"`
}

// CalculateEligibility decides whether a donor may donate again. A donor
// with no prior donation is always eligible. The day difference is the
// calendar-day distance between now and the last donation, not elapsed
// 24-hour periods.
func CalculateEligibility(lastDonation *time.Time, now time.Time) Verdict {
	if lastDonation == nil {
		return Verdict{Eligible: true, Message: "Available"}
	}

	daysPassed := calendarDaysBetween(*lastDonation, now)

	if daysPassed >= EligibilityWindowDays {
		return Verdict{Eligible: true, Message: "Available"}
	}

	return Verdict{
		Eligible: false,
		Message: fmt.Sprintf(
			"Next donation in %d days",
			EligibilityWindowDays-daysPassed,
		),
	}
}

// ParseDate parses an ISO calendar date. A malformed date is a validation
// failure, never silently treated as "no donation".
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf(
			"parse donation date %q: %w",
			value,
			core.ErrInvalidInput,
		)
	}

	return parsed, nil
}

func calendarDaysBetween(from, to time.Time) int {
	fromDay := time.Date(
		from.Year(), from.Month(), from.Day(),
		0, 0, 0, 0, time.UTC,
	)
	toDay := time.Date(
		to.Year(), to.Month(), to.Day(),
		0, 0, 0, 0, time.UTC,
	)

	return int(toDay.Sub(fromDay).Hours() / 24)
}
