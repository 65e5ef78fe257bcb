package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	runsTotal     *prometheus.CounterVec
	verdictsTotal *prometheus.CounterVec
	failuresTotal *prometheus.CounterVec
	runDuration   *prometheus.HistogramVec
	watchlistSize prometheus.Gauge
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		runsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gemscout_analysis_runs_total",
				Help: "Total number of analysis runs started",
			},
			[]string{"mode"},
		),
		verdictsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gemscout_verdicts_total",
				Help: "Total number of analysis verdicts by category",
			},
			[]string{"verdict"},
		),
		failuresTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gemscout_run_failures_total",
				Help: "Total number of failed analysis runs by kind",
			},
			[]string{"kind"},
		),
		runDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gemscout_run_duration_seconds",
				Help:    "Duration of analysis runs in seconds",
				Buckets: []float64{1, 2.5, 5, 10, 20, 30, 60, 120},
			},
			[]string{"mode"},
		),
		watchlistSize: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "gemscout_watchlist_size",
				Help: "Current number of watchlist entries",
			},
		),
	}
}

// RecordRun records an analysis run start for a mode (single or comparison).
func (r *Recorder) RecordRun(mode string) {
	r.runsTotal.WithLabelValues(mode).Inc()
}

// RecordVerdict records a verdict outcome.
func (r *Recorder) RecordVerdict(verdict string) {
	r.verdictsTotal.WithLabelValues(verdict).Inc()
}

// RecordFailure records a failed run by kind.
func (r *Recorder) RecordFailure(kind string) {
	r.failuresTotal.WithLabelValues(kind).Inc()
}

// RecordRunDuration records run latency in seconds.
func (r *Recorder) RecordRunDuration(mode string, seconds float64) {
	r.runDuration.WithLabelValues(mode).Observe(seconds)
}

// RecordWatchlistSize records the current watchlist size.
func (r *Recorder) RecordWatchlistSize(n int) {
	r.watchlistSize.Set(float64(n))
}
