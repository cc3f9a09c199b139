// AngelaMos | 2026
// eligibility_test.go

package donation

import (
	"errors"
	"testing"
	"time"

	"github.com/redconnect-dev/redconnect/internal/core"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestCalculateEligibility(t *testing.T) {
	now := date(2026, time.June, 1)

	tests := []struct {
		name         string
		lastDonation *time.Time
		wantEligible bool
		wantMessage  string
	}{
		{
			name:         "never donated",
			lastDonation: nil,
			wantEligible: true,
			wantMessage:  "Available",
		},
		{
			name:         "exactly ninety days ago",
			lastDonation: ptr(date(2026, time.March, 3)),
			wantEligible: true,
			wantMessage:  "Available",
		},
		{
			name:         "eighty nine days ago",
			lastDonation: ptr(date(2026, time.March, 4)),
			wantEligible: false,
			wantMessage:  "Next donation in 1 days",
		},
		{
			name:         "donated yesterday",
			lastDonation: ptr(date(2026, time.May, 31)),
			wantEligible: false,
			wantMessage:  "Next donation in 89 days",
		},
		{
			name:         "donated today",
			lastDonation: ptr(date(2026, time.June, 1)),
			wantEligible: false,
			wantMessage:  "Next donation in 90 days",
		},
		{
			name:         "well past the window",
			lastDonation: ptr(date(2025, time.January, 1)),
			wantEligible: true,
			wantMessage:  "Available",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := CalculateEligibility(tt.lastDonation, now)

			if verdict.Eligible != tt.wantEligible {
				t.Errorf(
					"Eligible = %v, want %v",
					verdict.Eligible,
					tt.wantEligible,
				)
			}
			if verdict.Message != tt.wantMessage {
				t.Errorf(
					"Message = %q, want %q",
					verdict.Message,
					tt.wantMessage,
				)
			}
		})
	}
}

func TestCalculateEligibilityIgnoresTimeOfDay(t *testing.T) {
	// A donation late in the evening 90 days ago is still 90 calendar days
	// back even when "now" is early morning.
	last := time.Date(2026, time.March, 3, 23, 55, 0, 0, time.UTC)
	now := time.Date(2026, time.June, 1, 0, 5, 0, 0, time.UTC)

	verdict := CalculateEligibility(&last, now)
	if !verdict.Eligible {
		t.Errorf("Eligible = false, want true (message %q)", verdict.Message)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-03-03")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if want := date(2026, time.March, 3); !got.Equal(want) {
		t.Errorf("ParseDate() = %v, want %v", got, want)
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, input := range []string{"", "03/03/2026", "2026-13-40", "yesterday"} {
		if _, err := ParseDate(input); !errors.Is(err, core.ErrInvalidInput) {
			t.Errorf("ParseDate(%q) error = %v, want ErrInvalidInput", input, err)
		}
	}
}

func ptr(t time.Time) *time.Time {
	return &t
}
