package reactive

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder observes runtime events without participating in them: every
// method is called synchronously, on the goroutine that triggered the
// event, and none of them may alter scheduling. That constraint keeps
// metrics collection from turning into the async scheduler the runtime
// deliberately does not have.
type Recorder interface {
	// ObserveEffectRun is called after an effect's callback returns (or
	// panics), with the wall-clock duration of that single run.
	ObserveEffectRun(d time.Duration)
	// ObserveSignalWrite is called once per Set/Update call, after
	// subscribers have finished re-running.
	ObserveSignalWrite()
	// ObserveScopeDispose is called once per disposed scope, after that
	// scope's own teardown (not its children's) completes. A repeated
	// Dispose call on an already-disposed scope records nothing.
	ObserveScopeDispose()
	// ObservePanicCaught is called when an OnError handler absorbs a
	// panic that would otherwise have propagated.
	ObservePanicCaught()
}

// PrometheusRecorder is a Recorder backed by client_golang collectors. A
// single instance is meant to be shared across every scope in a root via
// WithMetrics; child scopes inherit their parent's Recorder automatically.
type PrometheusRecorder struct {
	effectRuns     prometheus.Histogram
	signalWrites   prometheus.Counter
	scopeDisposals prometheus.Counter
	panicsCaught   prometheus.Counter
}

// NewPrometheusRecorder builds a PrometheusRecorder and registers its
// collectors against reg. Passing prometheus.NewRegistry() keeps it
// isolated from the global default registry, which matters for tests that
// construct more than one root in the same process.
func NewPrometheusRecorder(reg prometheus.Registerer) *PrometheusRecorder {
	r := &PrometheusRecorder{
		effectRuns: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "reactive",
			Name:      "effect_run_duration_seconds",
			Help:      "Duration of a single effect callback execution.",
			Buckets:   prometheus.DefBuckets,
		}),
		signalWrites: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "reactive",
			Name:      "signal_writes_total",
			Help:      "Number of Signal.Set/Update calls.",
		}),
		scopeDisposals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "reactive",
			Name:      "scope_disposals_total",
			Help:      "Number of scopes disposed.",
		}),
		panicsCaught: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "reactive",
			Name:      "panics_caught_total",
			Help:      "Number of panics absorbed by an OnError handler.",
		}),
	}
	reg.MustRegister(r.effectRuns, r.signalWrites, r.scopeDisposals, r.panicsCaught)
	return r
}

func (r *PrometheusRecorder) ObserveEffectRun(d time.Duration) { r.effectRuns.Observe(d.Seconds()) }
func (r *PrometheusRecorder) ObserveSignalWrite()              { r.signalWrites.Inc() }
func (r *PrometheusRecorder) ObserveScopeDispose()             { r.scopeDisposals.Inc() }
func (r *PrometheusRecorder) ObservePanicCaught()               { r.panicsCaught.Inc() }
