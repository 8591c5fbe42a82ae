package reporting

import (
	"fmt"
	"store-monitor/database"
	"store-monitor/utils"
	"time"

	"github.com/pkg/errors"
)

// Timezone applied to stores without an assignment
const DefaultTimezone = "America/Chicago"

const daysPerWeek = 7

// Local wall-clock time within a day
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var t TimeOfDay
	n, err := fmt.Sscanf(s, "%d:%d:%d", &t.Hour, &t.Minute, &t.Second)
	if err != nil && n == 2 {
		// HH:MM without seconds
		err = nil
	}
	if err != nil || n < 2 {
		return TimeOfDay{}, errors.Errorf("invalid time of day %q", s)
	}
	if t.Hour < 0 || t.Hour > 23 || t.Minute < 0 || t.Minute > 59 || t.Second < 0 || t.Second > 59 {
		return TimeOfDay{}, errors.Errorf("time of day %q out of range", s)
	}
	return t, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Open and close time of one local calendar day. Never spans midnight.
type DayWindow struct {
	Open  TimeOfDay
	Close TimeOfDay
}

// Effective schedule of a store: resolved timezone plus a per-day-of-week
// business hours mask, 0 = Monday ... 6 = Sunday. Days without an entry are
// closed. Derived from the stored rows at aggregation time, never persisted.
type Schedule struct {
	Location *time.Location
	Days     map[int]DayWindow
}

// Resolve the effective schedule of a store from its business hour rows and
// optional timezone assignment. An absent or invalid timezone falls back to
// the default. No rows at all means open every day 00:00-23:59 (documented
// approximation of "always open"); otherwise exactly the supplied days are
// open and partial weekly coverage is valid.
func ResolveSchedule(rules []database.BusinessHour, tz *database.StoreTimezone) (Schedule, error) {
	schedule := Schedule{
		Location: resolveLocation(tz),
		Days:     make(map[int]DayWindow, daysPerWeek),
	}

	if len(rules) == 0 {
		for day := 0; day < daysPerWeek; day++ {
			schedule.Days[day] = DayWindow{
				Open:  TimeOfDay{0, 0, 0},
				Close: TimeOfDay{23, 59, 0},
			}
		}
		return schedule, nil
	}

	ruleByDay := utils.ArrayToMap(rules, func(h database.BusinessHour) int { return h.DayOfWeek })
	for day, rule := range ruleByDay {
		open, err := ParseTimeOfDay(rule.StartTimeLocal)
		if err != nil {
			return Schedule{}, errors.Wrapf(err, "business hours of store %s, day %d", rule.StoreID, day)
		}
		close, err := ParseTimeOfDay(rule.EndTimeLocal)
		if err != nil {
			return Schedule{}, errors.Wrapf(err, "business hours of store %s, day %d", rule.StoreID, day)
		}
		schedule.Days[day] = DayWindow{Open: open, Close: close}
	}
	return schedule, nil
}

func resolveLocation(tz *database.StoreTimezone) *time.Location {
	if tz != nil {
		if loc, err := time.LoadLocation(tz.TimezoneName); err == nil {
			return loc
		}
	}
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
