// Package scopetest provides a controllable in-memory driver for
// exercising the component runtime without a real rendered surface.
//
// The fake Locator is mutated directly between operations:
//
//	loc := &scopetest.Locator{Present: true, Text: "Sign in"}
//	loc.Present = false // simulate the element disappearing
package scopetest

import (
	"github.com/strut-dev/strut/pkg/scope"
)

// Handle is a fake live resource backed by plain fields.
type Handle struct {
	VisibleVal bool
	TextVal    string

	// StaleReads fails that many method calls with scope.ErrStale
	// before succeeding, simulating detach/reattach churn.
	StaleReads int
}

// Visible implements scope.Handle.
func (h *Handle) Visible() (bool, error) {
	if h.StaleReads > 0 {
		h.StaleReads--
		return false, scope.ErrStale
	}
	return h.VisibleVal, nil
}

// Text implements scope.Handle.
func (h *Handle) Text() (string, error) {
	if h.StaleReads > 0 {
		h.StaleReads--
		return "", scope.ErrStale
	}
	return h.TextVal, nil
}

// Locator is a fake scope.Locator whose behavior is driven by fields.
type Locator struct {
	// Present controls whether Find yields a handle.
	Present bool

	// Visible and Text populate the handle Find returns.
	Visible bool
	Text    string

	// StaleFinds fails that many Find calls with scope.ErrStale
	// before behaving normally.
	StaleFinds int

	// FindErr, when set, is returned from every Find call.
	FindErr error

	// FindCalls and MissingCalls count lookups, for memoization and
	// polling assertions.
	FindCalls    int
	MissingCalls int
}

// Find implements scope.Locator.
func (l *Locator) Find(opts scope.Options) (scope.Handle, error) {
	l.FindCalls++
	if l.FindErr != nil {
		return nil, l.FindErr
	}
	if l.StaleFinds > 0 {
		l.StaleFinds--
		return nil, scope.ErrStale
	}
	if !l.Present {
		return nil, nil
	}
	if opts.Visible && !l.Visible {
		return nil, nil
	}
	return &Handle{VisibleVal: l.Visible, TextVal: l.Text}, nil
}

// IsMissing implements scope.Locator.
func (l *Locator) IsMissing(opts scope.Options) (bool, error) {
	l.MissingCalls++
	if l.FindErr != nil {
		return false, l.FindErr
	}
	if l.StaleFinds > 0 {
		l.StaleFinds--
		return false, scope.ErrStale
	}
	return !l.Present, nil
}

var (
	_ scope.Handle  = (*Handle)(nil)
	_ scope.Locator = (*Locator)(nil)
)
