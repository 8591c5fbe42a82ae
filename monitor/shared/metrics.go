package shared

import (
	"net/http"
	"store-monitor/logger"
	"store-monitor/monitor/config"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func InitMetricsServer(cfg *config.MetricsConfig) {
	if cfg.PrometheusAddress == "" {
		return
	}

	r := mux.NewRouter()
	r.Path("/metrics").Handler(promhttp.Handler())

	srv := &http.Server{
		Addr:    cfg.PrometheusAddress,
		Handler: r,
	}
	go func() {
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server error %v", err)
		}
	}()
}

// Counters and gauges describing report builder progress. Nil receiver
// disables updates, which keeps tests free of duplicate registrations.
type ReportMetrics struct {
	reportsBuilt  prometheus.Counter
	reportsFailed prometheus.Counter
	lastStores    prometheus.Gauge
	lastDuration  prometheus.Gauge
}

func NewReportMetrics() *ReportMetrics {
	return &ReportMetrics{
		reportsBuilt: promauto.NewCounter(prometheus.CounterOpts{
			Name: "monitor_reports_built_total",
			Help: "Number of uptime reports built successfully",
		}),
		reportsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "monitor_reports_failed_total",
			Help: "Number of uptime report builds that failed",
		}),
		lastStores: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "monitor_report_last_stores",
			Help: "Number of stores included in the most recent report",
		}),
		lastDuration: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "monitor_report_build_seconds",
			Help: "Duration of the most recent report build",
		}),
	}
}

func (m *ReportMetrics) Built(stores int, duration time.Duration) {
	if m == nil {
		return
	}
	m.reportsBuilt.Inc()
	m.lastStores.Set(float64(stores))
	m.lastDuration.Set(duration.Seconds())
}

func (m *ReportMetrics) Failed() {
	if m == nil {
		return
	}
	m.reportsFailed.Inc()
}
