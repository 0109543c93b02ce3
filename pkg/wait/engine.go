package wait

import (
	"context"
	"fmt"
	"time"

	"github.com/strut-dev/strut/pkg/component"
	"github.com/strut-dev/strut/pkg/logging"
	"github.com/strut-dev/strut/pkg/metadata"
	"github.com/strut-dev/strut/pkg/metrics"
	"github.com/strut-dev/strut/pkg/scope"
)

// Engine defaults, used when neither the spec nor the component's
// wait-settings metadata say otherwise.
const (
	DefaultTimeout  = 5 * time.Second
	DefaultInterval = 100 * time.Millisecond
)

// Engine expands wait specs into units and drives them to completion.
type Engine struct {
	defaults Options
	sink     *logging.Sink
	metrics  *metrics.Collector
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithDefaultTimeout sets the engine's default timeout.
func WithDefaultTimeout(d time.Duration) EngineOption {
	return func(e *Engine) { e.defaults.Timeout = d }
}

// WithDefaultInterval sets the engine's default polling interval.
func WithDefaultInterval(d time.Duration) EngineOption {
	return func(e *Engine) { e.defaults.Interval = d }
}

// WithSink sets the logging sink notified of wait sections.
func WithSink(s *logging.Sink) EngineOption {
	return func(e *Engine) { e.sink = s }
}

// WithMetrics sets the collector recording polls and timeouts.
func WithMetrics(c *metrics.Collector) EngineOption {
	return func(e *Engine) { e.metrics = c }
}

// NewEngine creates an Engine.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		defaults: Options{Timeout: DefaultTimeout, Interval: DefaultInterval},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = NewEngine()

// For waits on the default engine with a background context.
func For(c component.Component, s Spec) (bool, error) {
	return defaultEngine.Wait(context.Background(), c, s)
}

// Wait expands the spec and drives every unit in order. It returns
// true when all units were satisfied. A unit that fails unsafely
// returns its error and skips the remaining units; a safe timeout
// returns false without error, also skipping the rest.
func (e *Engine) Wait(ctx context.Context, c component.Component, s Spec) (bool, error) {
	n := c.Node()
	start := time.Now()
	defer func() {
		e.metrics.WaitDuration(time.Since(start))
	}()

	for _, u := range e.expand(n, s) {
		unitCtx, end := e.sink.Section(ctx, "wait",
			fmt.Sprintf("%s: until %s", n.Path(), u.Condition))
		ok, err := e.waitUnit(unitCtx, n, u)
		end(err)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// expand resolves options against the engine defaults and the
// component's wait-settings metadata, then produces one unit per
// condition in spec order.
func (e *Engine) expand(n *component.Node, s Spec) []Unit {
	opts := e.defaults

	if m := n.Metadata(); m != nil {
		if a, ok := m.Get(metadata.KindWaitSettings, metadata.Filter{}); ok {
			ws := a.(metadata.WaitSettingsAttribute)
			if ws.Timeout > 0 {
				opts.Timeout = ws.Timeout
			}
			if ws.Interval > 0 {
				opts.Interval = ws.Interval
			}
		}
	}

	if s.opts.Timeout > 0 {
		opts.Timeout = s.opts.Timeout
	}
	if s.opts.Interval > 0 {
		opts.Interval = s.opts.Interval
	}
	if s.opts.Safely {
		opts.Safely = true
	}

	units := make([]Unit, len(s.conditions))
	for i, c := range s.conditions {
		units[i] = Unit{Condition: c, Options: opts}
	}
	return units
}

// waitUnit polls one unit until it is satisfied or its budget runs
// out. Stale-resource errors are swallowed and count as "not yet";
// any other error is fatal to the wait.
func (e *Engine) waitUnit(ctx context.Context, n *component.Node, u Unit) (bool, error) {
	deadline := time.Now().Add(u.Options.Timeout)
	for {
		ok, err := e.evaluate(n, u.Condition)
		e.metrics.WaitPoll()
		if err != nil && !scope.IsStale(err) {
			return false, err
		}
		if err == nil && ok {
			return true, nil
		}

		if time.Now().After(deadline) {
			e.metrics.WaitTimeout()
			if u.Options.Safely {
				return false, nil
			}
			return false, &scope.TimeoutError{
				Path:      n.Path(),
				Condition: u.Condition.String(),
				Elapsed:   u.Options.Timeout,
			}
		}
		time.Sleep(u.Options.Interval)
	}
}

// evaluate performs one poll of a condition through the node's
// trigger-wrapped scope accessor.
func (e *Engine) evaluate(n *component.Node, c Condition) (bool, error) {
	switch c {
	case Present:
		h, err := n.Scope(scope.SafelyOnce())
		if err != nil {
			return false, err
		}
		return h != nil, nil

	case Absent:
		loc := n.Locator()
		if loc == nil {
			return true, nil
		}
		return loc.IsMissing(scope.SafelyOnce())

	case Visible:
		h, err := n.Scope(scope.SafelyOnce())
		if err != nil || h == nil {
			return false, err
		}
		return h.Visible()

	case Hidden:
		h, err := n.Scope(scope.SafelyOnce())
		if err != nil {
			return false, err
		}
		if h == nil {
			return true, nil
		}
		visible, err := h.Visible()
		if err != nil {
			return false, err
		}
		return !visible, nil

	default:
		return false, fmt.Errorf("wait: unknown condition %d", uint8(c))
	}
}
