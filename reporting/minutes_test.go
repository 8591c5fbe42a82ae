package reporting

import (
	"store-monitor/database"
	"store-monitor/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func utcSchedule(t *testing.T, days map[int]DayWindow) Schedule {
	t.Helper()
	return Schedule{Location: time.UTC, Days: days}
}

func weekdays9To17(t *testing.T) Schedule {
	days := make(map[int]DayWindow)
	for day := 0; day < 5; day++ {
		days[day] = DayWindow{Open: TimeOfDay{9, 0, 0}, Close: TimeOfDay{17, 0, 0}}
	}
	return utcSchedule(t, days)
}

func fullWeek(t *testing.T) Schedule {
	schedule, err := ResolveSchedule(nil, &database.StoreTimezone{TimezoneName: "UTC"})
	require.NoError(t, err)
	return schedule
}

func TestBusinessMinutesEmptyRange(t *testing.T) {
	schedule := fullWeek(t)
	at := utils.ParseTime("2023-01-25T12:00:00Z")

	require.Zero(t, BusinessMinutes(at, at, schedule))
	require.Zero(t, BusinessMinutes(at.Add(time.Hour), at, schedule))
}

func TestBusinessMinutesFullDayDefault(t *testing.T) {
	schedule := fullWeek(t)

	start := utils.ParseTime("2023-01-01T00:00:00Z")
	end := utils.ParseTime("2023-01-02T00:00:00Z")

	// The documented default closes at 23:59, not 24:00
	require.InDelta(t, 1439, BusinessMinutes(start, end, schedule), 1e-9)
}

func TestBusinessMinutesWithinOneDay(t *testing.T) {
	schedule := weekdays9To17(t)

	// 2023-01-23 is a Monday
	tests := []struct {
		name     string
		start    string
		end      string
		expected float64
	}{
		{"inside business hours", "2023-01-23T10:00:00Z", "2023-01-23T12:30:00Z", 150},
		{"clamped at open", "2023-01-23T07:00:00Z", "2023-01-23T10:00:00Z", 60},
		{"clamped at close", "2023-01-23T16:00:00Z", "2023-01-23T20:00:00Z", 60},
		{"fully outside", "2023-01-23T18:00:00Z", "2023-01-23T23:00:00Z", 0},
		{"closed day", "2023-01-28T10:00:00Z", "2023-01-28T12:00:00Z", 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			minutes := BusinessMinutes(utils.ParseTime(test.start), utils.ParseTime(test.end), schedule)
			require.InDelta(t, test.expected, minutes, 1e-9)
		})
	}
}

func TestBusinessMinutesMultiDaySpan(t *testing.T) {
	schedule := weekdays9To17(t)

	// Monday 12:00 to Thursday 10:30: 5h + 8h + 8h + 1.5h of business time
	start := utils.ParseTime("2023-01-23T12:00:00Z")
	end := utils.ParseTime("2023-01-26T10:30:00Z")
	require.InDelta(t, (5+8+8+1.5)*60, BusinessMinutes(start, end, schedule), 1e-9)

	// Friday noon to Monday noon only touches business hours on the weekdays
	start = utils.ParseTime("2023-01-27T12:00:00Z")
	end = utils.ParseTime("2023-01-30T12:00:00Z")
	require.InDelta(t, (5+3)*60, BusinessMinutes(start, end, schedule), 1e-9)
}

func TestBusinessMinutesBounded(t *testing.T) {
	full := fullWeek(t)
	partial := weekdays9To17(t)

	start := utils.ParseTime("2023-03-01T07:13:00Z")
	for _, span := range []time.Duration{time.Minute, time.Hour, 26 * time.Hour, 7 * 24 * time.Hour} {
		end := start.Add(span)
		for _, schedule := range []Schedule{full, partial} {
			minutes := BusinessMinutes(start, end, schedule)
			require.GreaterOrEqual(t, minutes, 0.0)
			require.LessOrEqual(t, minutes, end.Sub(start).Minutes())
		}
	}
}

func TestBusinessMinutesLocalTimezone(t *testing.T) {
	loc, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)

	schedule := Schedule{
		Location: loc,
		Days: map[int]DayWindow{
			// Monday 09:00-17:00 local
			0: {Open: TimeOfDay{9, 0, 0}, Close: TimeOfDay{17, 0, 0}},
		},
	}

	// 2023-01-23 (Monday) 09:00 local is 15:00 UTC (CST, UTC-6)
	start := utils.ParseTime("2023-01-23T15:00:00Z")
	end := utils.ParseTime("2023-01-23T17:00:00Z")
	require.InDelta(t, 120, BusinessMinutes(start, end, schedule), 1e-9)

	// Before local open
	require.Zero(t, BusinessMinutes(utils.ParseTime("2023-01-23T10:00:00Z"), utils.ParseTime("2023-01-23T14:00:00Z"), schedule))
}

func TestBusinessMinutesAcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)

	days := make(map[int]DayWindow)
	for day := 0; day < daysPerWeek; day++ {
		days[day] = DayWindow{Open: TimeOfDay{0, 0, 0}, Close: TimeOfDay{23, 59, 0}}
	}
	schedule := Schedule{Location: loc, Days: days}

	// 2023-03-12: spring forward, the local day is 23 real hours long.
	// Local midnight boundaries still apply, so the mask drops the usual
	// single 23:59-24:00 minute from an otherwise fully covered day.
	start := utils.ParseTime("2023-03-12T06:00:00Z") // local midnight
	end := start.Add(23 * time.Hour)                 // next local midnight
	require.InDelta(t, 23*60-1, BusinessMinutes(start, end, schedule), 1e-9)
}
