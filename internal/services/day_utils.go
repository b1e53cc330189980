package services

import (
	"fmt"
	"time"
)

// DisplayLocation builds the fixed-offset location every date comparison runs
// in. Streaks and calendar cells must agree across devices, so the client's
// local timezone is never consulted.
func DisplayLocation(offsetHours int) *time.Location {
	name := fmt.Sprintf("UTC%+d", offsetHours)
	return time.FixedZone(name, offsetHours*3600)
}

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

func SameDay(a time.Time, b time.Time, location *time.Location) bool {
	return DateAtLocation(a, location).Equal(DateAtLocation(b, location))
}
