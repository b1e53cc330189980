package services

import "time"

const dayKeyLayout = "2006-01-02"

// CurrentStreak walks backward from today (or yesterday, when today has no
// check-in yet) counting consecutive days with a check-in. Input dates may be
// in any order and may contain duplicates; comparison is by calendar day in
// the given location, never by instant.
func CurrentStreak(dates []time.Time, today time.Time, location *time.Location) int {
	if len(dates) == 0 {
		return 0
	}

	present := make(map[string]struct{}, len(dates))
	for _, date := range dates {
		present[DateAtLocation(date, location).Format(dayKeyLayout)] = struct{}{}
	}

	anchor := DateAtLocation(today, location)
	if _, ok := present[anchor.Format(dayKeyLayout)]; !ok {
		anchor = anchor.AddDate(0, 0, -1)
		if _, ok := present[anchor.Format(dayKeyLayout)]; !ok {
			return 0
		}
	}

	streak := 0
	for day := anchor; ; day = day.AddDate(0, 0, -1) {
		if _, ok := present[day.Format(dayKeyLayout)]; !ok {
			break
		}
		streak++
	}
	return streak
}
