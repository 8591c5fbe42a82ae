package cronjob

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"store-monitor/cache"
	"store-monitor/database"
	"store-monitor/logger"
	"store-monitor/monitor/config"
	monitorctx "store-monitor/monitor/context"
	"store-monitor/monitor/shared"
	"store-monitor/reporting"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Builds pending uptime reports. Each report aggregates every store's
// observations over the hour, day and week windows preceding the latest
// observation and stores the result as CSV on the report row.
type reportsCronjob struct {
	config config.ReportsConfig
	db     *gorm.DB

	cache      cache.Cache
	cacheTTL   time.Duration
	aggregator *reporting.Aggregator
	metrics    *shared.ReportMetrics
}

func NewReportsCronjob(ctx monitorctx.MonitorContext) Cronjob {
	return newReportsCronjob(ctx, shared.NewReportMetrics())
}

func newReportsCronjob(ctx monitorctx.MonitorContext, metrics *shared.ReportMetrics) *reportsCronjob {
	ttl := ctx.Config().Cache.TTL()
	return &reportsCronjob{
		config:     ctx.Config().Reports,
		db:         ctx.DB(),
		cache:      ctx.Cache(),
		cacheTTL:   ttl,
		aggregator: reporting.NewAggregator(ctx.Cache(), ttl),
		metrics:    metrics,
	}
}

func (c *reportsCronjob) Name() string {
	return "reports"
}

func (c *reportsCronjob) Timeout() time.Duration {
	return c.config.Timeout()
}

func (c *reportsCronjob) Enabled() bool {
	return c.config.Enabled
}

// Reports left in the running state belong to a previous run that did not
// finish. Requeue them so they are rebuilt.
func (c *reportsCronjob) OnStart() error {
	return database.RequeueRunningReports(c.db)
}

func (c *reportsCronjob) Call() error {
	reports, err := database.FetchReportsByStatus(c.db, database.ReportStatusPending)
	if err != nil {
		return err
	}

	for i := range reports {
		report := &reports[i]
		err := c.buildReport(report)
		if err != nil {
			logger.Error("failed building report %s: %v", report.ReportID, err)
			c.metrics.Failed()
			report.SetStatus(database.ReportStatusFailed)
			if dbErr := database.UpdateReport(c.db, report); dbErr != nil {
				return dbErr
			}
		}
	}
	return nil
}

func reportCacheKey(reportID string) string {
	return fmt.Sprintf("report:%s", reportID)
}

func (c *reportsCronjob) buildReport(report *database.Report) error {
	buildStart := time.Now()

	report.SetStatus(database.ReportStatusRunning)
	err := database.UpdateReport(c.db, report)
	if err != nil {
		return err
	}

	if c.cache != nil {
		if content, ok := c.cache.Get(reportCacheKey(report.ReportID)); ok {
			report.Finish(content)
			return database.UpdateReport(c.db, report)
		}
	}

	latest, err := database.FetchLatestStoreStatus(c.db)
	if err != nil {
		return err
	}
	if latest == nil {
		report.Content = "No data"
		report.SetStatus(database.ReportStatusNoData)
		return database.UpdateReport(c.db, report)
	}
	now := latest.TimestampUTC

	storeIDs, err := database.FetchDistinctStoreIDs(c.db)
	if err != nil {
		return err
	}

	rows := make([]reporting.ReportRow, len(storeIDs))
	workers := c.config.Workers
	if workers <= 0 {
		workers = 1
	}
	eg := errgroup.Group{}
	eg.SetLimit(workers)
	for i, storeID := range storeIDs {
		i, storeID := i, storeID
		eg.Go(func() error {
			row, err := c.storeRow(storeID, now)
			if err != nil {
				return errors.Wrap(err, fmt.Sprintf("store %s", storeID))
			}
			rows[i] = row
			return nil
		})
	}
	err = eg.Wait()
	if err != nil {
		return err
	}

	content, err := renderCSV(rows)
	if err != nil {
		return err
	}

	if c.cache != nil {
		c.cache.Set(reportCacheKey(report.ReportID), content, c.cacheTTL)
	}
	report.Finish(content)
	err = database.UpdateReport(c.db, report)
	if err != nil {
		return err
	}
	c.metrics.Built(len(storeIDs), time.Since(buildStart))
	return nil
}

func (c *reportsCronjob) storeRow(storeID string, now time.Time) (reporting.ReportRow, error) {
	rules, err := database.FetchBusinessHours(c.db, storeID)
	if err != nil {
		return reporting.ReportRow{}, err
	}
	tz, err := database.FetchStoreTimezone(c.db, storeID)
	if err != nil {
		return reporting.ReportRow{}, err
	}
	schedule, err := reporting.ResolveSchedule(rules, tz)
	if err != nil {
		return reporting.ReportRow{}, err
	}

	statuses, err := database.FetchStoreStatuses(c.db, storeID)
	if err != nil {
		return reporting.ReportRow{}, err
	}
	polls := make([]reporting.Poll, len(statuses))
	for i, s := range statuses {
		polls[i] = reporting.Poll{
			Timestamp: s.TimestampUTC,
			Active:    s.Active(),
		}
	}
	return c.aggregator.WindowReport(storeID, now, polls, schedule), nil
}

func renderCSV(rows []reporting.ReportRow) (string, error) {
	buf := bytes.Buffer{}
	w := csv.NewWriter(&buf)
	err := w.Write(reporting.ReportHeader)
	if err != nil {
		return "", err
	}
	for _, row := range rows {
		err = w.Write(row.Record())
		if err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
