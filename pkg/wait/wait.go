// Package wait drives declarative wait conditions against component
// nodes.
//
// A wait request is a Spec: one or more conditions plus option
// overrides. The engine expands the spec into ordered units, one per
// condition, and polls each unit in sequence until it is satisfied or
// its budget runs out. A composite spec is a logical AND: all units
// must pass, and the first failing unit aborts the rest.
//
//	ok, err := wait.For(loginButton, wait.Until(wait.Visible).And(wait.Present))
//
// Transient staleness of the underlying resource is swallowed during
// polling and treated as "not yet satisfied". A unit that times out
// fails with a scope.TimeoutError naming the component and condition,
// unless the spec is marked Safely, in which case the wait degrades
// to a false result.
//
// Waits are synchronous and block the caller for their duration,
// bounded by the timeout. They are not cancellable mid-flight; the
// context passed to Engine.Wait only carries log and trace metadata.
package wait

import (
	"time"
)

// Condition is one atomic wait predicate.
type Condition uint8

const (
	// Present waits for the live resource to exist.
	Present Condition = iota + 1

	// Absent waits for the live resource to be definitely gone.
	Absent

	// Visible waits for the live resource to exist and be displayed.
	Visible

	// Hidden waits for the live resource to be absent or not
	// displayed.
	Hidden
)

// String returns a human-readable name for the condition.
func (c Condition) String() string {
	switch c {
	case Present:
		return "present"
	case Absent:
		return "absent"
	case Visible:
		return "visible"
	case Hidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// Options are the knobs of one wait. Zero durations defer to the
// engine defaults, which a component's wait-settings metadata may
// override in turn.
type Options struct {
	// Timeout bounds the whole unit.
	Timeout time.Duration

	// Interval is the polling interval.
	Interval time.Duration

	// Safely degrades a timeout to a false result instead of a
	// TimeoutError.
	Safely bool
}

// Option overrides one wait option on a Spec.
type Option func(*Options)

// WithTimeout overrides the wait timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) { o.Timeout = d }
}

// WithInterval overrides the polling interval.
func WithInterval(d time.Duration) Option {
	return func(o *Options) { o.Interval = d }
}

// Safely makes a timeout degrade to a false result instead of an
// error.
func Safely() Option {
	return func(o *Options) { o.Safely = true }
}

// Spec is one wait request: an ordered set of conditions evaluated in
// sequence, plus option overrides shared by all of them.
type Spec struct {
	conditions []Condition
	opts       Options
}

// Until builds a single-condition spec.
func Until(c Condition, opts ...Option) Spec {
	s := Spec{conditions: []Condition{c}}
	for _, opt := range opts {
		opt(&s.opts)
	}
	return s
}

// And appends another condition, evaluated after the existing ones.
func (s Spec) And(c Condition) Spec {
	s.conditions = append(s.conditions[:len(s.conditions):len(s.conditions)], c)
	return s
}

// Conditions returns the spec's conditions in evaluation order.
func (s Spec) Conditions() []Condition {
	out := make([]Condition, len(s.conditions))
	copy(out, s.conditions)
	return out
}

// Unit is one expanded wait condition with fully resolved options.
// Units are ephemeral: the engine produces and consumes them per
// wait.
type Unit struct {
	Condition Condition
	Options   Options
}
