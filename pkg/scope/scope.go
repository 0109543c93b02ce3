package scope

// Options describes how a single scope lookup should behave.
// The zero value is an unsafe, awaiting search: absence is an error
// and the driver may retry internally until its own deadline.
type Options struct {
	// Safely reports absence as a nil Handle instead of an error.
	Safely bool

	// Immediate makes a single locate attempt instead of allowing
	// the driver to await the resource.
	Immediate bool

	// Visible restricts the search to visible resources.
	Visible bool
}

// SafelyOnce returns the options used for cached state probes:
// safe, single attempt, visibility not required.
func SafelyOnce() Options {
	return Options{Safely: true, Immediate: true}
}

// Handle is the live resource a component currently resolves to.
// Handles may go stale at any time; methods report that as an error
// satisfying IsStale.
type Handle interface {
	// Visible reports whether the resource is currently displayed.
	Visible() (bool, error)

	// Text returns the resource's default textual representation.
	Text() (string, error)
}

// Locator resolves a component to its live Handle. Implementations
// belong to the driver layer; the runtime only consumes this contract.
type Locator interface {
	// Find locates the resource. A nil Handle with a nil error means
	// the resource is absent and the search allowed absence.
	Find(opts Options) (Handle, error)

	// IsMissing reports whether the resource is definitely absent.
	// Used by absence waits, where a failed Find is not proof.
	IsMissing(opts Options) (bool, error)
}

// ContentSource extracts textual content from a live Handle.
// Components may carry one to override the default Handle.Text read.
type ContentSource func(h Handle) (string, error)
