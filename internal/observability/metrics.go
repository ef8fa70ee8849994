package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// incident engine.
type Metrics struct {
	ReportsSubmitted   prometheus.Counter
	ValidationErrors   prometheus.Counter
	SubmissionDuration prometheus.Histogram
	BusyState          prometheus.Gauge

	// Domain store metrics.
	RegionResolutions prometheus.Counter
	ZonesDerived      prometheus.Counter
	ZonesRemoved      prometheus.Counter

	// Notification and reconciliation metrics.
	NotificationsShown *prometheus.CounterVec // labels: kind={info,success,error}
	ReconcilePasses    *prometheus.CounterVec // labels: class={reports,resources,zones}
	VisiblePrimitives  *prometheus.GaugeVec   // labels: class={reports,resources,zones}
	CameraMoves        prometheus.Counter

	// External collaborator metrics.
	DispatchAttempts *prometheus.CounterVec // labels: outcome={success,error}
	PositionRequests *prometheus.CounterVec // labels: outcome={success,error}
	AIRequests       *prometheus.CounterVec // labels: outcome={success,error,fallback}
}

// NewMetrics creates and registers all engine metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.ReportsSubmitted,
		m.ValidationErrors,
		m.SubmissionDuration,
		m.BusyState,
		m.RegionResolutions,
		m.ZonesDerived,
		m.ZonesRemoved,
		m.NotificationsShown,
		m.ReconcilePasses,
		m.VisiblePrimitives,
		m.CameraMoves,
		m.DispatchAttempts,
		m.PositionRequests,
		m.AIRequests,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ReportsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "alertnet",
			Name:      "reports_submitted_total",
			Help:      "Total reports committed by the submission pipeline.",
		}),
		ValidationErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "alertnet",
			Name:      "validation_errors_total",
			Help:      "Total submissions rejected before the pipeline started.",
		}),
		SubmissionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "alertnet",
			Name:      "submission_duration_seconds",
			Help:      "Duration of a complete submit-delay-commit-dispatch cycle.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 15, 30},
		}),
		BusyState: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "alertnet",
			Name:      "busy_state",
			Help:      "1 when a long-running operation is in flight, 0 otherwise.",
		}),
		RegionResolutions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "alertnet",
			Name:      "region_resolutions_total",
			Help:      "Total coordinates resolved from a location label.",
		}),
		ZonesDerived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "alertnet",
			Name:      "zones_derived_total",
			Help:      "Total hazard zones derived from submitted reports.",
		}),
		ZonesRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "alertnet",
			Name:      "zones_removed_total",
			Help:      "Total derived zones removed by duplicate status updates.",
		}),
		NotificationsShown: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "alertnet",
			Name:      "notifications_shown_total",
			Help:      "Notifications shown by kind.",
		}, []string{"kind"}),
		ReconcilePasses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "alertnet",
			Name:      "reconcile_passes_total",
			Help:      "Reconciliation passes by entity class.",
		}, []string{"class"}),
		VisiblePrimitives: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "alertnet",
			Name:      "visible_primitives",
			Help:      "Live visual primitives bound on the surface by entity class.",
		}, []string{"class"}),
		CameraMoves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "alertnet",
			Name:      "camera_moves_total",
			Help:      "Total camera fly-to animations issued to the surface.",
		}),
		DispatchAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "alertnet",
			Name:      "dispatch_attempts_total",
			Help:      "Alert dispatch attempts by outcome.",
		}, []string{"outcome"}),
		PositionRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "alertnet",
			Name:      "position_requests_total",
			Help:      "Geo-position requests by outcome.",
		}, []string{"outcome"}),
		AIRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "alertnet",
			Name:      "ai_requests_total",
			Help:      "AI suggestion requests by outcome.",
		}, []string{"outcome"}),
	}
}
