package metadata

import "slices"

// Predicate is one boolean test applied to candidate attributes.
type Predicate func(Attribute) bool

// Filter narrows an attribute query. The zero value matches every
// attribute of the requested kind at every level.
type Filter struct {
	// Levels restricts which levels are consulted; nil means all.
	// Canonical level order is kept regardless of the order given
	// here.
	Levels []Level

	// Predicates are applied in sequence; all must pass.
	Predicates []Predicate

	// TargetAttribute is the secondary-target hint used when
	// resolving settings kinds that configure other attribute kinds.
	TargetAttribute string
}

// At returns a filter restricted to the given levels.
func At(levels ...Level) Filter {
	return Filter{Levels: levels}
}

// Where returns a copy of the filter with an extra predicate.
func (f Filter) Where(p Predicate) Filter {
	f.Predicates = append(slices.Clip(f.Predicates), p)
	return f
}

// ForAttribute returns a copy of the filter carrying a
// secondary-target hint.
func (f Filter) ForAttribute(kind string) Filter {
	f.TargetAttribute = kind
	return f
}

// levels returns the levels to consult in canonical order.
func (f Filter) levels() []Level {
	if f.Levels == nil {
		return Levels()
	}
	var out []Level
	for _, l := range Levels() {
		if slices.Contains(f.Levels, l) {
			out = append(out, l)
		}
	}
	return out
}

// passes reports whether the attribute satisfies every predicate.
func (f Filter) passes(a Attribute) bool {
	for _, p := range f.Predicates {
		if !p(a) {
			return false
		}
	}
	return true
}
