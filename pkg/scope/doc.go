// Package scope defines the boundary between the component runtime and
// the driver that owns the live rendered surface.
//
// The runtime never talks to a browser or toolkit directly. It depends
// on two narrow contracts: Locator, which resolves a component to its
// live Handle, and ContentSource, an optional strategy for extracting
// textual content from a Handle. Any driver that can answer "find this
// element" and "is this element definitely gone" can back the runtime.
//
// # Search Options
//
// Every lookup carries Options describing how to search:
//
//	h, err := locator.Find(scope.Options{Safely: true, Immediate: true})
//
// A safe search reports absence as a nil Handle instead of an error.
// An immediate search makes a single attempt instead of letting the
// driver retry internally.
//
// # Error Taxonomy
//
// The package also owns the error vocabulary shared across the runtime:
// NotFoundError for required-but-absent resources, TimeoutError for
// wait budgets that ran out, and ErrStale for handles invalidated
// between acquisition and use. Staleness is always transient; callers
// classify it with IsStale and retry rather than failing.
package scope
