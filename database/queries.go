package database

import (
	"time"

	"gorm.io/gorm"
)

const createBatchSize = 1000

// Store status queries
/////////////////////////////////////////////////////////////////////////////////////////

func CreateStoreStatuses(db *gorm.DB, statuses []*StoreStatus) error {
	if len(statuses) == 0 {
		return nil
	}
	return db.CreateInBatches(statuses, createBatchSize).Error
}

// Fetch all polls for a store in non-decreasing timestamp order
func FetchStoreStatuses(db *gorm.DB, storeID string) ([]StoreStatus, error) {
	var statuses []StoreStatus
	err := db.Where(&StoreStatus{StoreID: storeID}).
		Order("timestamp_utc asc").
		Find(&statuses).Error
	return statuses, err
}

// Fetch the most recent poll across all stores. Returns nil when there are
// no observations at all.
func FetchLatestStoreStatus(db *gorm.DB) (*StoreStatus, error) {
	var status StoreStatus
	err := db.Order("timestamp_utc desc").First(&status).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func FetchDistinctStoreIDs(db *gorm.DB) ([]string, error) {
	var ids []string
	err := db.Model(&StoreStatus{}).
		Distinct().
		Order("store_id asc").
		Pluck("store_id", &ids).Error
	return ids, err
}

// Schedule queries
/////////////////////////////////////////////////////////////////////////////////////////

func CreateBusinessHours(db *gorm.DB, hours []*BusinessHour) error {
	if len(hours) == 0 {
		return nil
	}
	return db.CreateInBatches(hours, createBatchSize).Error
}

func FetchBusinessHours(db *gorm.DB, storeID string) ([]BusinessHour, error) {
	var hours []BusinessHour
	err := db.Where(&BusinessHour{StoreID: storeID}).Find(&hours).Error
	return hours, err
}

func CreateStoreTimezones(db *gorm.DB, timezones []*StoreTimezone) error {
	if len(timezones) == 0 {
		return nil
	}
	return db.CreateInBatches(timezones, createBatchSize).Error
}

// Fetch the timezone assignment of a store. Returns nil when the store has
// no assignment (callers apply the documented default).
func FetchStoreTimezone(db *gorm.DB, storeID string) (*StoreTimezone, error) {
	var tz StoreTimezone
	err := db.Where(&StoreTimezone{StoreID: storeID}).First(&tz).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tz, nil
}

// Report queries
/////////////////////////////////////////////////////////////////////////////////////////

func CreateReport(db *gorm.DB, report *Report) error {
	return db.Create(report).Error
}

func UpdateReport(db *gorm.DB, report *Report) error {
	return db.Save(report).Error
}

// Fetch a report by its identifier. Returns nil when no such report exists.
func FetchReport(db *gorm.DB, reportID string) (*Report, error) {
	var report Report
	err := db.Where(&Report{ReportID: reportID}).First(&report).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func FetchReportsByStatus(db *gorm.DB, status ReportStatus) ([]Report, error) {
	var reports []Report
	err := db.Where("status = ?", status).Order("created asc").Find(&reports).Error
	return reports, err
}

// Move reports stuck in RUNNING back to PENDING, e.g. after a crashed build
func RequeueRunningReports(db *gorm.DB) error {
	return db.Model(&Report{}).
		Where("status = ?", ReportStatusRunning).
		Updates(map[string]interface{}{"status": ReportStatusPending, "updated": time.Now()}).
		Error
}

// Browsing queries
/////////////////////////////////////////////////////////////////////////////////////////

func ListStoreStatuses(db *gorm.DB, offset, limit int) ([]StoreStatus, error) {
	var statuses []StoreStatus
	err := db.Order("id asc").Offset(offset).Limit(limit).Find(&statuses).Error
	return statuses, err
}

func ListBusinessHours(db *gorm.DB, offset, limit int) ([]BusinessHour, error) {
	var hours []BusinessHour
	err := db.Order("id asc").Offset(offset).Limit(limit).Find(&hours).Error
	return hours, err
}

func ListStoreTimezones(db *gorm.DB, offset, limit int) ([]StoreTimezone, error) {
	var timezones []StoreTimezone
	err := db.Order("id asc").Offset(offset).Limit(limit).Find(&timezones).Error
	return timezones, err
}

// Delete all imported source data. Reports are kept.
func DeleteAllSourceData(db *gorm.DB) error {
	return DoInTransaction(db,
		func(tx *gorm.DB) error {
			return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&StoreStatus{}).Error
		},
		func(tx *gorm.DB) error {
			return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&BusinessHour{}).Error
		},
		func(tx *gorm.DB) error {
			return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&StoreTimezone{}).Error
		},
	)
}
