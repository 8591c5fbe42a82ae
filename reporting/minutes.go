package reporting

import (
	"time"
)

// BusinessMinutes returns the number of minutes of [startUTC, endUTC) that
// fall within the schedule's business hours, as exact elapsed seconds / 60.
// Rounding happens only at presentation time, never here.
//
// The range is walked one local calendar day at a time. Day boundaries use
// local midnight semantics, so a DST-shifted day that is not exactly 24 real
// hours is still one day of the walk.
func BusinessMinutes(startUTC, endUTC time.Time, schedule Schedule) float64 {
	if !startUTC.Before(endUTC) {
		return 0
	}

	localStart := startUTC.In(schedule.Location)
	localEnd := endUTC.In(schedule.Location)

	total := 0.0
	for current := localStart; current.Before(localEnd); {
		year, month, day := current.Date()
		nextMidnight := time.Date(year, month, day+1, 0, 0, 0, 0, schedule.Location)

		if window, ok := schedule.Days[localDayOfWeek(current)]; ok {
			open := atTimeOfDay(year, month, day, window.Open, schedule.Location)
			close := atTimeOfDay(year, month, day, window.Close, schedule.Location)

			from := maxTime(open, current)
			to := minTime(close, minTime(localEnd, nextMidnight))
			if from.Before(to) {
				total += to.Sub(from).Minutes()
			}
		}
		current = nextMidnight
	}
	return total
}

// Day of week with 0 = Monday ... 6 = Sunday
func localDayOfWeek(t time.Time) int {
	return (int(t.Weekday()) + 6) % daysPerWeek
}

func atTimeOfDay(year int, month time.Month, day int, tod TimeOfDay, loc *time.Location) time.Time {
	return time.Date(year, month, day, tod.Hour, tod.Minute, tod.Second, 0, loc)
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
