package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	ReportBuilds = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "dashboard_report_builds_total", Help: "Total admin dashboard reports built"},
	)
	ReportFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "dashboard_report_failures_total", Help: "Total dashboard report builds that failed"},
	)
	ReportDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "dashboard_report_duration_seconds", Help: "Wall time spent building one dashboard report"},
	)

	ProcessedEvents = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "search_sync_processed_total", Help: "Total processed outbox events"},
	)
	FailedEvents = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "search_sync_failed_total", Help: "Total failed outbox events"},
	)
	DLQEvents = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "search_sync_dlq_total", Help: "Total events inserted into DLQ"},
	)
)

func Register() {
	prometheus.MustRegister(ReportBuilds, ReportFailures, ReportDuration, ProcessedEvents, FailedEvents, DLQEvents)
}
