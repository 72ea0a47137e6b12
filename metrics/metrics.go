// Package metrics provides an optional Prometheus instrumentation hook for
// the validator. The core (dnssec.Verify) never imports this package;
// callers that want visibility wrap it themselves with Observe.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder is the instrumentation seam callers inject around dnssec.Verify.
// A Noop implementation is the zero-cost default.
type Recorder interface {
	VerifyAttempted()
	VerifySucceeded(duration time.Duration, rrCount int)
	VerifyFailed(kind string, duration time.Duration)
	ProofBytes(n int)
}

// Noop discards every observation; it's the default when a caller doesn't
// wire a Recorder in.
type Noop struct{}

func (Noop) VerifyAttempted()                  {}
func (Noop) VerifySucceeded(time.Duration, int) {}
func (Noop) VerifyFailed(string, time.Duration) {}
func (Noop) ProofBytes(int)                     {}

// Prometheus is a Recorder backed by client_golang collectors.
type Prometheus struct {
	attempts  prometheus.Counter
	successes prometheus.Counter
	failures  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	rrCount   prometheus.Histogram
	proofSize prometheus.Histogram
}

// New creates a Prometheus recorder registered against the default registry.
func New() *Prometheus {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates a Prometheus recorder registered against registerer.
func NewWithRegistry(registerer prometheus.Registerer) *Prometheus {
	p := &Prometheus{
		attempts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dnssec_verify_attempts_total",
			Help: "Total number of dnssec.Verify calls.",
		}),
		successes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dnssec_verify_success_total",
			Help: "Total number of dnssec.Verify calls that authenticated an RRset.",
		}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dnssec_verify_failures_total",
			Help: "Total number of dnssec.Verify calls that failed, by ErrorKind.",
		}, []string{"kind"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dnssec_verify_duration_seconds",
			Help:    "dnssec.Verify wall-clock duration.",
			Buckets: prometheus.DefBuckets,
		}, []string{"outcome"}),
		rrCount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dnssec_verify_authenticated_rrs",
			Help:    "Number of RRs authenticated by a successful dnssec.Verify call.",
			Buckets: []float64{1, 2, 4, 8, 16, 32, 64, 128},
		}),
		proofSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dnssec_proof_bytes",
			Help:    "Size in bytes of proofs passed to dnssec.Verify.",
			Buckets: prometheus.ExponentialBuckets(128, 2, 12),
		}),
	}
	registerer.MustRegister(p.attempts, p.successes, p.failures, p.duration, p.rrCount, p.proofSize)
	return p
}

func (p *Prometheus) VerifyAttempted() { p.attempts.Inc() }

func (p *Prometheus) VerifySucceeded(duration time.Duration, rrCount int) {
	p.successes.Inc()
	p.duration.WithLabelValues("success").Observe(duration.Seconds())
	p.rrCount.Observe(float64(rrCount))
}

func (p *Prometheus) VerifyFailed(kind string, duration time.Duration) {
	p.failures.WithLabelValues(kind).Inc()
	p.duration.WithLabelValues("failure").Observe(duration.Seconds())
}

func (p *Prometheus) ProofBytes(n int) { p.proofSize.Observe(float64(n)) }

// Observe wraps a dnssec.Verify-shaped call with Recorder instrumentation.
// verify is any function returning (rrCount, error); callers pass a closure
// over the actual dnssec.Verify call and its ErrorKind extraction.
func Observe(r Recorder, proofBytes int, verify func() (rrCount int, errKind string, err error)) error {
	r.VerifyAttempted()
	r.ProofBytes(proofBytes)
	start := time.Now()
	rrCount, errKind, err := verify()
	if err != nil {
		r.VerifyFailed(errKind, time.Since(start))
		return err
	}
	r.VerifySucceeded(time.Since(start), rrCount)
	return nil
}
