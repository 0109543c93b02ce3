package scope

import (
	"errors"
	"fmt"
	"time"
)

// ErrStale indicates a Handle was invalidated between acquisition and
// use, typically because the underlying resource was detached and
// reattached. Staleness is transient: pollers swallow it and retry.
// Drivers should wrap this sentinel so IsStale recognizes their errors.
var ErrStale = errors.New("scope: stale resource handle")

// IsStale reports whether err is, or wraps, a staleness error.
func IsStale(err error) bool {
	return errors.Is(err, ErrStale)
}

// NotFoundError is returned when an operation required the live
// resource but the locator could not find it. It carries the full
// hierarchical component path for diagnosis.
type NotFoundError struct {
	// Path is the fully qualified component path, root first.
	Path string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("scope: %s not found", e.Path)
}

// TimeoutError is returned when a wait condition never became true
// within its budget. It names the component, the condition that was
// not met, and the elapsed budget.
type TimeoutError struct {
	// Path is the fully qualified component path, root first.
	Path string

	// Condition describes the condition that was not met.
	Condition string

	// Elapsed is the budget that ran out.
	Elapsed time.Duration
}

// Error implements the error interface.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("scope: timed out after %s waiting for %s on %s",
		e.Elapsed, e.Condition, e.Path)
}
