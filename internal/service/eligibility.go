package service

import (
	"strings"
	"time"
)

// DonationCooldownDays is the standard inter-donation interval.
const DonationCooldownDays = 56

const millisPerDay = 24 * 60 * 60 * 1000

// Eligible reports whether a donor may donate at the given instant. A donor
// with no recorded last donation is eligible. Ambiguity favors inclusion: in
// an emergency a missed eligible donor costs more than a spurious contact.
// The clock is an explicit argument; the rule never reads time.Now itself.
func Eligible(lastDonation *time.Time, now time.Time) bool {
	if lastDonation == nil || lastDonation.IsZero() {
		return true
	}
	days := now.Sub(*lastDonation).Milliseconds() / millisPerDay
	return days >= DonationCooldownDays
}

// EligibleOn applies the cooldown rule to a date still in wire form. Empty,
// "null" and the zero-date sentinel count as no recorded donation; a value
// that fails to parse also passes (fail open).
func EligibleOn(raw string, now time.Time) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "null") || raw == "0000-00-00" {
		return true
	}
	parsed, err := parseDonationDate(raw)
	if err != nil {
		return true
	}
	return Eligible(&parsed, now)
}

func parseDonationDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
