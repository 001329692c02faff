package utils

import (
	"fmt"
	"time"
)

// ClinicLocation returns the clinic's local timezone. Falls back to UTC if
// the tzdata is unavailable.
func ClinicLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Jerusalem")
	if err != nil {
		return time.UTC
	}
	return loc
}

// ToClinicTime converts a time to the clinic's local timezone
func ToClinicTime(t time.Time) time.Time {
	return t.In(ClinicLocation())
}

// ParseClock parses an "HH:MM" 24h wall-clock string into minutes since
// midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseDate parses a "YYYY-MM-DD" date in the clinic's timezone.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, ClinicLocation())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// DayBounds returns the start and end of the calendar day containing t, in
// the clinic's timezone.
func DayBounds(t time.Time) (time.Time, time.Time) {
	local := ToClinicTime(t)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, ClinicLocation())
	return start, start.AddDate(0, 0, 1)
}
