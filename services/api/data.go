package api

import (
	"store-monitor/database"
	"time"
)

type ApiStoreStatus struct {
	StoreID      string                  `json:"store_id"`
	TimestampUTC time.Time               `json:"timestamp_utc"`
	Status       database.ActivityStatus `json:"status"`
}

type ApiBusinessHour struct {
	StoreID        string `json:"store_id"`
	DayOfWeek      int    `json:"day_of_week"`
	StartTimeLocal string `json:"start_time_local"`
	EndTimeLocal   string `json:"end_time_local"`
}

type ApiStoreTimezone struct {
	StoreID      string `json:"store_id"`
	TimezoneName string `json:"timezone_str"`
}

func NewApiStoreStatus(s *database.StoreStatus) ApiStoreStatus {
	return ApiStoreStatus{
		StoreID:      s.StoreID,
		TimestampUTC: s.TimestampUTC,
		Status:       s.Status,
	}
}

func NewApiBusinessHour(h *database.BusinessHour) ApiBusinessHour {
	return ApiBusinessHour{
		StoreID:        h.StoreID,
		DayOfWeek:      h.DayOfWeek,
		StartTimeLocal: h.StartTimeLocal,
		EndTimeLocal:   h.EndTimeLocal,
	}
}

func NewApiStoreTimezone(tz *database.StoreTimezone) ApiStoreTimezone {
	return ApiStoreTimezone{
		StoreID:      tz.StoreID,
		TimezoneName: tz.TimezoneName,
	}
}

type ImportResponse struct {
	// One message per imported file
	Messages []string `json:"messages"`
}
