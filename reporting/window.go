package reporting

import (
	"encoding/json"
	"fmt"
	"math"
	"store-monitor/cache"
	"store-monitor/logger"
	"strconv"
	"time"
)

// Trailing reporting windows, all ending at "now"
var windows = struct {
	hour, day, week time.Duration
}{
	hour: time.Hour,
	day:  24 * time.Hour,
	week: 7 * 24 * time.Hour,
}

// Fixed column schema of the report. The hour window is reported in minutes,
// the day and week windows in hours; the inconsistency is part of the
// published contract and preserved for compatibility.
var ReportHeader = []string{
	"store_id",
	"uptime_last_hour",
	"uptime_last_day",
	"uptime_last_week",
	"downtime_last_hour",
	"downtime_last_day",
	"downtime_last_week",
}

type ReportRow struct {
	StoreID          string `json:"store_id"`
	UptimeLastHour   int64  `json:"uptime_last_hour"`   // minutes
	UptimeLastDay    int64  `json:"uptime_last_day"`    // hours
	UptimeLastWeek   int64  `json:"uptime_last_week"`   // hours
	DowntimeLastHour int64  `json:"downtime_last_hour"` // minutes
	DowntimeLastDay  int64  `json:"downtime_last_day"`  // hours
	DowntimeLastWeek int64  `json:"downtime_last_week"` // hours
}

// CSV cells in the fixed column order
func (r *ReportRow) Record() []string {
	return []string{
		r.StoreID,
		strconv.FormatInt(r.UptimeLastHour, 10),
		strconv.FormatInt(r.UptimeLastDay, 10),
		strconv.FormatInt(r.UptimeLastWeek, 10),
		strconv.FormatInt(r.DowntimeLastHour, 10),
		strconv.FormatInt(r.DowntimeLastDay, 10),
		strconv.FormatInt(r.DowntimeLastWeek, 10),
	}
}

// Aggregator computes per-store window reports with memoization. The cache
// is a pure performance optimization: a nil cache disables it and every call
// recomputes from the polls.
type Aggregator struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewAggregator(c cache.Cache, ttl time.Duration) *Aggregator {
	return &Aggregator{cache: c, ttl: ttl}
}

// WindowReport computes uptime and downtime business minutes of the store
// for the three trailing windows ending at now. Results are cached under
// (storeID, now); now is the data snapshot instant and is trusted as a proxy
// for the poll data version, so a cache hit returns the stored row without
// looking at polls.
func (a *Aggregator) WindowReport(storeID string, now time.Time, polls []Poll, schedule Schedule) ReportRow {
	key := storeReportKey(storeID, now)
	if a.cache != nil {
		if cached, ok := a.cache.Get(key); ok {
			var row ReportRow
			if err := json.Unmarshal([]byte(cached), &row); err == nil {
				return row
			}
			logger.Warn("discarding unreadable cache entry %s", key)
		}
	}

	upHour, downHour := a.windowMinutes(now.Add(-windows.hour), now, polls, schedule)
	upDay, downDay := a.windowMinutes(now.Add(-windows.day), now, polls, schedule)
	upWeek, downWeek := a.windowMinutes(now.Add(-windows.week), now, polls, schedule)

	row := ReportRow{
		StoreID:          storeID,
		UptimeLastHour:   roundMinutes(upHour),
		UptimeLastDay:    roundHours(upDay),
		UptimeLastWeek:   roundHours(upWeek),
		DowntimeLastHour: roundMinutes(downHour),
		DowntimeLastDay:  roundHours(downDay),
		DowntimeLastWeek: roundHours(downWeek),
	}

	if a.cache != nil {
		if data, err := json.Marshal(row); err == nil {
			a.cache.Set(key, string(data), a.ttl)
		}
	}
	return row
}

func (a *Aggregator) windowMinutes(start, end time.Time, polls []Poll, schedule Schedule) (uptime, downtime float64) {
	for _, interval := range Partition(start, end, polls) {
		minutes := BusinessMinutes(interval.Start, interval.End, schedule)
		if interval.Active {
			uptime += minutes
		} else {
			downtime += minutes
		}
	}
	return uptime, downtime
}

func storeReportKey(storeID string, now time.Time) string {
	return fmt.Sprintf("store_report:%s:%s", storeID, now.UTC().Format(time.RFC3339Nano))
}

func roundMinutes(minutes float64) int64 {
	return int64(math.Round(minutes))
}

func roundHours(minutes float64) int64 {
	return int64(math.Round(minutes / 60))
}
