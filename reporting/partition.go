package reporting

import (
	"time"
)

// One poll observation, already in UTC
type Poll struct {
	Timestamp time.Time
	Active    bool
}

// Status-homogeneous sub-interval of a reporting window
type Interval struct {
	Start  time.Time
	End    time.Time
	Active bool
}

// Partition splits [periodStart, periodEnd] into status-homogeneous
// intervals by forward-filling the sparse polls. Polls must be in
// non-decreasing timestamp order.
//
// The status at periodStart is that of the last poll at or before it; a poll
// exactly at periodStart is authoritative. When every poll is later than
// periodStart, the earliest poll's status is assumed to have held
// retroactively. With no polls at all the whole period counts as inactive
// (documented convention; arguably "unknown").
//
// The returned intervals are disjoint, ordered and cover exactly
// [periodStart, periodEnd].
func Partition(periodStart, periodEnd time.Time, polls []Poll) []Interval {
	if !periodStart.Before(periodEnd) {
		return nil
	}
	if len(polls) == 0 {
		return []Interval{{Start: periodStart, End: periodEnd, Active: false}}
	}

	status := polls[0].Active
	for _, poll := range polls {
		if poll.Timestamp.After(periodStart) {
			break
		}
		status = poll.Active
	}

	var intervals []Interval
	current := periodStart
	for _, poll := range polls {
		if !poll.Timestamp.After(periodStart) {
			continue
		}
		if poll.Timestamp.After(periodEnd) {
			break
		}
		if poll.Timestamp.After(current) {
			intervals = append(intervals, Interval{Start: current, End: poll.Timestamp, Active: status})
			current = poll.Timestamp
		}
		status = poll.Active
	}
	if current.Before(periodEnd) {
		intervals = append(intervals, Interval{Start: current, End: periodEnd, Active: status})
	}
	return intervals
}
