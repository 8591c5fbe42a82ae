package database

import (
	"time"
)

// Abstract entity, all other entities should be derived from it
type BaseEntity struct {
	ID uint64 `gorm:"primaryKey"`
}

// One poll observation: the store was seen active or inactive at the given
// UTC instant. Immutable once recorded.
type StoreStatus struct {
	BaseEntity
	StoreID      string         `gorm:"type:varchar(50);index:idx_store_timestamp"`
	TimestampUTC time.Time      `gorm:"index:idx_store_timestamp"`
	Status       ActivityStatus `gorm:"type:varchar(10)"`
}

// Business hours of a store on one day of the week, local wall-clock times.
// Day numbering: 0 = Monday ... 6 = Sunday. Times never span midnight.
type BusinessHour struct {
	BaseEntity
	StoreID        string `gorm:"type:varchar(50);index"`
	DayOfWeek      int
	StartTimeLocal string `gorm:"type:varchar(8)"` // HH:MM:SS
	EndTimeLocal   string `gorm:"type:varchar(8)"` // HH:MM:SS
}

// Timezone of a store. Stores without a row default to America/Chicago.
type StoreTimezone struct {
	BaseEntity
	StoreID      string `gorm:"type:varchar(50);index"`
	TimezoneName string `gorm:"type:varchar(50)"`
}

// A requested or finished uptime report. Content holds the CSV body once the
// report is completed.
type Report struct {
	BaseEntity
	ReportID string       `gorm:"type:varchar(36);uniqueIndex"`
	Status   ReportStatus `gorm:"type:varchar(20);index"`
	Content  string       `gorm:"type:longtext"`
	Created  time.Time
	Updated  time.Time
}
