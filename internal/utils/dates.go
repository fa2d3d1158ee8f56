package utils

import "time"

// DateLayout is the wire format for check-in/check-out dates.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date in DateLayout, anchored at UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Nights returns the whole number of nights between check-in and check-out.
// Both are expected to be calendar dates at midnight.
func Nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn) / (24 * time.Hour))
}

// SameDay reports whether a and b fall on the same calendar day in UTC.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
