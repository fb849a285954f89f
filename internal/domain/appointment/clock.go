package appointment

import (
	"fmt"
	"time"
)

const (
	// SlotInterval is the booking granularity in minutes.
	SlotInterval = 15

	minutesPerDay = 24 * 60
)

// ParseClock converts "HH:MM" or "HH:MM:SS" into minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		t, err = time.Parse("15:04", s)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes since midnight as "HH:MM:SS".
func FormatClock(min int) string {
	return fmt.Sprintf("%02d:%02d:00", min/60, min%60)
}

// DayOfWeek maps a date to Monday=0 .. Sunday=6.
func DayOfWeek(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}
