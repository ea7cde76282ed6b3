package util

import (
	"time"
)

// AddTimeToDate returns the calendar day of date at the clock time of sourceTime,
// in the location of date.
func AddTimeToDate(date time.Time, sourceTime time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), sourceTime.Hour(), sourceTime.Minute(), sourceTime.Second(), sourceTime.Nanosecond(), date.Location())
}
