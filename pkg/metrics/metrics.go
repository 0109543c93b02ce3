// Package metrics provides optional Prometheus instrumentation for
// the component runtime: scope lookups, wait polling, and wait
// outcomes.
//
// A nil *Collector is valid and records nothing, so instrumentation
// is strictly opt-in.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Config configures a Collector.
type Config struct {
	// Namespace is the metrics namespace (default: "strut").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for wait duration.
	// Default: prometheus.DefBuckets.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// Option configures a Collector.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) { c.Namespace = namespace }
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) { c.ConstLabels = labels }
}

// WithBuckets sets the wait duration histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) { c.Buckets = buckets }
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) { c.Registry = registry }
}

// defaultConfig returns the default Collector configuration.
func defaultConfig() Config {
	return Config{
		Namespace: "strut",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Collector records runtime metrics. The nil Collector is a no-op.
type Collector struct {
	scopeLookups *prometheus.CounterVec
	waitPolls    prometheus.Counter
	waitTimeouts prometheus.Counter
	waitDuration prometheus.Histogram
}

// New creates a Collector and registers its metrics.
func New(opts ...Option) *Collector {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	factory := promauto.With(cfg.Registry)

	return &Collector{
		scopeLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "scope_lookups_total",
			Help:        "Scope lookups performed, by outcome.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"outcome"}),
		waitPolls: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "wait_polls_total",
			Help:        "Individual wait condition polls.",
			ConstLabels: cfg.ConstLabels,
		}),
		waitTimeouts: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "wait_timeouts_total",
			Help:        "Waits that ran out of budget.",
			ConstLabels: cfg.ConstLabels,
		}),
		waitDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Name:        "wait_duration_seconds",
			Help:        "Wall-clock duration of wait operations.",
			Buckets:     cfg.Buckets,
			ConstLabels: cfg.ConstLabels,
		}),
	}
}

// Scope lookup outcomes.
const (
	OutcomeFound   = "found"
	OutcomeMissing = "missing"
	OutcomeError   = "error"
)

// ScopeLookup records one scope lookup with its outcome.
func (c *Collector) ScopeLookup(outcome string) {
	if c == nil {
		return
	}
	c.scopeLookups.WithLabelValues(outcome).Inc()
}

// WaitPoll records one wait condition poll.
func (c *Collector) WaitPoll() {
	if c == nil {
		return
	}
	c.waitPolls.Inc()
}

// WaitTimeout records one wait that ran out of budget.
func (c *Collector) WaitTimeout() {
	if c == nil {
		return
	}
	c.waitTimeouts.Inc()
}

// WaitDuration records the wall-clock duration of one wait.
func (c *Collector) WaitDuration(d time.Duration) {
	if c == nil {
		return
	}
	c.waitDuration.Observe(d.Seconds())
}
