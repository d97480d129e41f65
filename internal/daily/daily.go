package daily

import (
	"fmt"
	"time"
)

// DateLayout is the format used for epoch dates in configuration
const DateLayout = "2006-01-02"

// Epoch is the calendar day of puzzle 0.
var Epoch = time.Date(2021, time.June, 19, 0, 0, 0, 0, time.Local)

// Index returns the number of whole calendar days between epoch and now,
// ignoring time of day. Dates before the epoch count backwards.
func Index(now, epoch time.Time) int {
	days := civil(now).Sub(civil(epoch)).Hours() / 24
	if days < 0 {
		days = -days
	}
	return int(days + 0.5)
}

// Today is Index(time.Now(), Epoch).
func Today() int {
	return Index(time.Now(), Epoch)
}

// ParseEpoch reads a YYYY-MM-DD date in local time.
func ParseEpoch(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid epoch %q: %w", s, err)
	}
	return t, nil
}

// civil drops the time of day and zone so DST shifts don't skew day counts.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
