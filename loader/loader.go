package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"store-monitor/database"
	"store-monitor/logger"
	"store-monitor/reporting"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	storeStatusFile  = "store_status.csv"
	businessHourFile = "menu_hours.csv"
	timezoneFile     = "timezones.csv"
)

// Source exports use this layout; some rows omit the fractional part
var timestampLayouts = []string{
	"2006-01-02 15:04:05.999999 MST",
	time.RFC3339,
}

// LoadAll imports the csv source files from dir. Each file is imported
// completely or not at all: a malformed row aborts its file, the other files
// are still processed. One message per file describes the outcome.
func LoadAll(db *gorm.DB, dir string) ([]string, error) {
	messages := make([]string, 0, 3)

	count, err := loadFile(db, dir, storeStatusFile, loadStoreStatuses)
	messages = append(messages, fileMessage(storeStatusFile, count, err))

	count, err = loadFile(db, dir, businessHourFile, loadBusinessHours)
	messages = append(messages, fileMessage(businessHourFile, count, err))

	count, err = loadFile(db, dir, timezoneFile, loadTimezones)
	messages = append(messages, fileMessage(timezoneFile, count, err))

	return messages, nil
}

func fileMessage(name string, count int, err error) string {
	if err != nil {
		logger.Error("error importing %s: %v", name, err)
		return fmt.Sprintf("%s: %v", name, err)
	}
	return fmt.Sprintf("%s: imported %d rows", name, count)
}

func loadFile(db *gorm.DB, dir string, name string, load func(*gorm.DB, *csvReader) (int, error)) (int, error) {
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return 0, err
	}
	defer f.Close()

	reader, err := newCsvReader(f)
	if err != nil {
		return 0, err
	}
	return load(db, reader)
}

func loadStoreStatuses(db *gorm.DB, reader *csvReader) (int, error) {
	var statuses []*database.StoreStatus
	for {
		row, err := reader.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
		timestamp, err := parseTimestamp(row.get("timestamp_utc"))
		if err != nil {
			return 0, errors.Wrap(err, fmt.Sprintf("row %d", row.number))
		}
		status, err := parseActivityStatus(row.get("status"))
		if err != nil {
			return 0, errors.Wrap(err, fmt.Sprintf("row %d", row.number))
		}
		statuses = append(statuses, &database.StoreStatus{
			StoreID:      row.get("store_id"),
			TimestampUTC: timestamp,
			Status:       status,
		})
	}
	return len(statuses), database.CreateStoreStatuses(db, statuses)
}

func loadBusinessHours(db *gorm.DB, reader *csvReader) (int, error) {
	var hours []*database.BusinessHour
	for {
		row, err := reader.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
		day, err := strconv.Atoi(row.get("dayOfWeek"))
		if err != nil || day < 0 || day >= 7 {
			return 0, fmt.Errorf("row %d: invalid day of week %q", row.number, row.get("dayOfWeek"))
		}
		start, err := reporting.ParseTimeOfDay(row.get("start_time_local"))
		if err != nil {
			return 0, errors.Wrap(err, fmt.Sprintf("row %d", row.number))
		}
		end, err := reporting.ParseTimeOfDay(row.get("end_time_local"))
		if err != nil {
			return 0, errors.Wrap(err, fmt.Sprintf("row %d", row.number))
		}
		hours = append(hours, &database.BusinessHour{
			StoreID:        row.get("store_id"),
			DayOfWeek:      day,
			StartTimeLocal: start.String(),
			EndTimeLocal:   end.String(),
		})
	}
	return len(hours), database.CreateBusinessHours(db, hours)
}

func loadTimezones(db *gorm.DB, reader *csvReader) (int, error) {
	var timezones []*database.StoreTimezone
	for {
		row, err := reader.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
		name := row.get("timezone_str")
		if _, err := time.LoadLocation(name); err != nil {
			return 0, fmt.Errorf("row %d: unknown timezone %q", row.number, name)
		}
		timezones = append(timezones, &database.StoreTimezone{
			StoreID:      row.get("store_id"),
			TimezoneName: name,
		})
	}
	return len(timezones), database.CreateStoreTimezones(db, timezones)
}

func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", value)
}

func parseActivityStatus(value string) (database.ActivityStatus, error) {
	switch database.ActivityStatus(value) {
	case database.ActivityStatusActive:
		return database.ActivityStatusActive, nil
	case database.ActivityStatusInactive:
		return database.ActivityStatusInactive, nil
	}
	return "", fmt.Errorf("invalid status %q", value)
}

// Csv reader that addresses columns by header name
type csvReader struct {
	reader  *csv.Reader
	columns map[string]int
	number  int
}

type csvRow struct {
	values  []string
	columns map[string]int
	number  int
}

func newCsvReader(r io.Reader) (*csvReader, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "error reading header")
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	return &csvReader{reader: reader, columns: columns, number: 1}, nil
}

func (r *csvReader) next() (*csvRow, error) {
	values, err := r.reader.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	r.number++
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("row %d", r.number))
	}
	return &csvRow{values: values, columns: r.columns, number: r.number}, nil
}

func (r *csvRow) get(column string) string {
	i, ok := r.columns[column]
	if !ok || i >= len(r.values) {
		return ""
	}
	return r.values[i]
}
