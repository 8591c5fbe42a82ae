package reporting

import (
	"store-monitor/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func poll(t *testing.T, timestamp string, active bool) Poll {
	t.Helper()
	return Poll{Timestamp: utils.ParseTime(timestamp), Active: active}
}

// Intervals must be contiguous, ordered, disjoint and cover exactly the period
func requireCoversPeriod(t *testing.T, intervals []Interval, start, end time.Time) {
	t.Helper()
	require.NotEmpty(t, intervals)
	require.True(t, intervals[0].Start.Equal(start))
	require.True(t, intervals[len(intervals)-1].End.Equal(end))
	for i, interval := range intervals {
		require.True(t, interval.Start.Before(interval.End), "interval %d is empty or reversed", i)
		if i > 0 {
			require.True(t, intervals[i-1].End.Equal(interval.Start), "gap before interval %d", i)
		}
	}
}

func TestPartitionEmptyPolls(t *testing.T) {
	start := utils.ParseTime("2023-01-23T08:00:00Z")
	end := utils.ParseTime("2023-01-23T18:00:00Z")

	intervals := Partition(start, end, nil)
	requireCoversPeriod(t, intervals, start, end)
	require.Len(t, intervals, 1)
	require.False(t, intervals[0].Active)
}

func TestPartitionEmptyPeriod(t *testing.T) {
	at := utils.ParseTime("2023-01-23T08:00:00Z")
	require.Empty(t, Partition(at, at, nil))
	require.Empty(t, Partition(at.Add(time.Hour), at, []Poll{poll(t, "2023-01-23T07:00:00Z", true)}))
}

func TestPartitionForwardFill(t *testing.T) {
	start := utils.ParseTime("2023-01-23T08:00:00Z")
	end := utils.ParseTime("2023-01-23T18:00:00Z")
	polls := []Poll{
		poll(t, "2023-01-23T09:00:00Z", true),
		poll(t, "2023-01-23T12:00:00Z", false),
		poll(t, "2023-01-23T15:00:00Z", true),
	}

	intervals := Partition(start, end, polls)
	requireCoversPeriod(t, intervals, start, end)

	// Status before the first poll inherits that poll's status
	expected := []Interval{
		{utils.ParseTime("2023-01-23T08:00:00Z"), utils.ParseTime("2023-01-23T09:00:00Z"), true},
		{utils.ParseTime("2023-01-23T09:00:00Z"), utils.ParseTime("2023-01-23T12:00:00Z"), true},
		{utils.ParseTime("2023-01-23T12:00:00Z"), utils.ParseTime("2023-01-23T15:00:00Z"), false},
		{utils.ParseTime("2023-01-23T15:00:00Z"), utils.ParseTime("2023-01-23T18:00:00Z"), true},
	}
	require.Equal(t, expected, intervals)
}

func TestPartitionPriorPollDeterminesInitialStatus(t *testing.T) {
	start := utils.ParseTime("2023-01-23T08:00:00Z")
	end := utils.ParseTime("2023-01-23T10:00:00Z")
	polls := []Poll{
		poll(t, "2023-01-23T06:00:00Z", false),
		poll(t, "2023-01-23T09:00:00Z", true),
	}

	intervals := Partition(start, end, polls)
	requireCoversPeriod(t, intervals, start, end)
	require.Equal(t, []Interval{
		{start, utils.ParseTime("2023-01-23T09:00:00Z"), false},
		{utils.ParseTime("2023-01-23T09:00:00Z"), end, true},
	}, intervals)
}

func TestPartitionPollExactlyAtPeriodStart(t *testing.T) {
	start := utils.ParseTime("2023-01-23T08:00:00Z")
	end := utils.ParseTime("2023-01-23T10:00:00Z")
	polls := []Poll{
		poll(t, "2023-01-23T06:00:00Z", true),
		// The boundary poll is authoritative; no zero-length leading interval
		poll(t, "2023-01-23T08:00:00Z", false),
	}

	intervals := Partition(start, end, polls)
	requireCoversPeriod(t, intervals, start, end)
	require.Equal(t, []Interval{{start, end, false}}, intervals)
}

func TestPartitionPollAtPeriodEnd(t *testing.T) {
	start := utils.ParseTime("2023-01-23T08:00:00Z")
	end := utils.ParseTime("2023-01-23T10:00:00Z")
	polls := []Poll{
		poll(t, "2023-01-23T08:30:00Z", true),
		poll(t, "2023-01-23T10:00:00Z", false),
	}

	intervals := Partition(start, end, polls)
	requireCoversPeriod(t, intervals, start, end)
	// The in-period poll splits at 08:30; the poll at the boundary closes the
	// final interval, it opens nothing
	require.Equal(t, []Interval{
		{start, utils.ParseTime("2023-01-23T08:30:00Z"), true},
		{utils.ParseTime("2023-01-23T08:30:00Z"), end, true},
	}, intervals)
}

func TestPartitionIgnoresPollsOutsidePeriod(t *testing.T) {
	start := utils.ParseTime("2023-01-23T08:00:00Z")
	end := utils.ParseTime("2023-01-23T10:00:00Z")
	polls := []Poll{
		poll(t, "2023-01-22T08:00:00Z", true),
		poll(t, "2023-01-23T09:00:00Z", false),
		poll(t, "2023-01-23T11:00:00Z", true),
	}

	intervals := Partition(start, end, polls)
	requireCoversPeriod(t, intervals, start, end)
	require.Equal(t, []Interval{
		{start, utils.ParseTime("2023-01-23T09:00:00Z"), true},
		{utils.ParseTime("2023-01-23T09:00:00Z"), end, false},
	}, intervals)
}

func TestPartitionDuplicateTimestamps(t *testing.T) {
	start := utils.ParseTime("2023-01-23T08:00:00Z")
	end := utils.ParseTime("2023-01-23T10:00:00Z")
	polls := []Poll{
		poll(t, "2023-01-23T09:00:00Z", true),
		poll(t, "2023-01-23T09:00:00Z", false),
	}

	intervals := Partition(start, end, polls)
	requireCoversPeriod(t, intervals, start, end)
	// No zero-length interval; the later poll wins from 09:00 on
	require.Equal(t, []Interval{
		{start, utils.ParseTime("2023-01-23T09:00:00Z"), true},
		{utils.ParseTime("2023-01-23T09:00:00Z"), end, false},
	}, intervals)
}
