package utils

import (
	"time"

	"roozberooz/internal/constants"
)

// DateOf reduces a timestamp to its device-local calendar date string
// (YYYY-MM-DD).
func DateOf(t time.Time) string {
	return t.Local().Format(constants.DateFormat)
}

// SameDay reports whether two timestamps fall on the same device-local
// calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// StartOfDay returns midnight of t's device-local calendar date.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// DaysBetween returns the number of whole calendar days from a's
// device-local date to b's. Negative when b is earlier. The dates are
// re-anchored at UTC midnight before subtracting so every day counts as
// exactly 24 hours regardless of DST transitions in the local zone.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	ua := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	ub := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// ParseDate parses a YYYY-MM-DD date string in the device-local timezone.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
}

// ValidateTimeFormat checks if the string matches the standard HH:MM format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := time.Parse(constants.TimeFormat, timeStr)
	return err == nil
}
