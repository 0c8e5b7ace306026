package domain

import (
	"fmt"
	"time"
)

// FormatClock renders an offset from midnight as a zero-padded 12-hour time
// with an AM/PM suffix, e.g. "09:00AM" or "01:30PM".
func FormatClock(sinceMidnight time.Duration) string {
	totalMinutes := int64(sinceMidnight / time.Minute)
	hourOfDay := (totalMinutes / 60) % 24
	minute := totalMinutes % 60

	suffix := "AM"
	if hourOfDay >= 12 {
		suffix = "PM"
	}

	hour := hourOfDay % 12
	if hour == 0 {
		hour = 12
	}

	return fmt.Sprintf("%02d:%02d%s", hour, minute, suffix)
}

// ParseClock is the inverse of the "15:04" layout, returned as an offset from midnight.
func ParseClock(raw string) (time.Duration, error) {
	parsed, err := time.Parse("15:04", raw)
	if err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", raw, err)
	}

	return time.Duration(parsed.Hour())*time.Hour + time.Duration(parsed.Minute())*time.Minute, nil
}
