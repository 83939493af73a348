// Package bigmetrics exposes optional github.com/prometheus/client_golang
// counters for the dispatch decisions the multiply and divide layers
// make. A library value type should never require a metrics backend, so
// nothing here runs unless a caller opts in with Enable.
package bigmetrics

import "github.com/prometheus/client_golang/prometheus"

// Collector groups the counters dispatch sites increment.
type Collector struct {
	MulDispatch *prometheus.CounterVec
	DivDispatch *prometheus.CounterVec
}

// NewCollector builds a Collector without registering it anywhere.
func NewCollector() *Collector {
	return &Collector{
		MulDispatch: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bigint",
			Name:      "mul_dispatch_total",
			Help:      "Multiplication calls by chosen algorithm.",
		}, []string{"algorithm"}),
		DivDispatch: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bigint",
			Name:      "div_dispatch_total",
			Help:      "Division calls by chosen algorithm.",
		}, []string{"algorithm"}),
	}
}

// Register installs the collector's metrics into r. Callers that don't
// want Prometheus instrumentation simply never call this.
func (c *Collector) Register(r prometheus.Registerer) error {
	if err := r.Register(c.MulDispatch); err != nil {
		return err
	}
	return r.Register(c.DivDispatch)
}

// global is nil until a caller opts in via Enable; every increment
// helper below no-ops when it is nil.
var global *Collector

// Enable installs collector as the package-wide target for the
// increment helpers the bigint package's dispatch sites call, and
// registers it against r.
func Enable(r prometheus.Registerer) (*Collector, error) {
	c := NewCollector()
	if err := c.Register(r); err != nil {
		return nil, err
	}
	global = c
	return c, nil
}

// ObserveMul records which multiplication algorithm a dispatch chose.
// algorithm is one of "schoolbook" or "fft".
func ObserveMul(algorithm string) {
	if global == nil {
		return
	}
	global.MulDispatch.WithLabelValues(algorithm).Inc()
}

// ObserveDiv records which division algorithm a dispatch chose.
// algorithm is one of "basic", "plain", "alg_a", "alg_b".
func ObserveDiv(algorithm string) {
	if global == nil {
		return
	}
	global.DivDispatch.WithLabelValues(algorithm).Inc()
}
