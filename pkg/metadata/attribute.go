package metadata

import "slices"

// Attribute is one declarative configuration fact. Implementations are
// immutable value types identified by a kind string.
type Attribute interface {
	// Kind identifies the fact kind, e.g. "format" or "culture".
	Kind() string
}

// Targeted is implemented by attribute kinds that support target
// specifications. An empty TargetSpec means the attribute is
// untargeted and applies in place.
type Targeted interface {
	Attribute

	// Target returns the attribute's target specification.
	Target() TargetSpec
}

// AttributeTargeted is implemented by settings kinds that configure
// other attributes. TargetAttributes names the attribute kinds the
// settings apply to; an empty list applies to all kinds.
type AttributeTargeted interface {
	Targeted

	TargetAttributes() []string
}

// Targeting is embedded by attribute types to implement Targeted.
type Targeting struct {
	TargetSpec TargetSpec
}

// Target implements the Targeted interface.
func (t Targeting) Target() TargetSpec { return t.TargetSpec }

// Context is the component identity attributes are ranked against.
type Context struct {
	// TypeLineage is the component's type chain, most derived type
	// first, e.g. ["PasswordInput", "Input", "Control"].
	TypeLineage []string

	// Name is the component's declared name.
	Name string

	// Ancestors holds the types of enclosing components, nearest
	// first.
	Ancestors []string
}

// Type returns the component's most derived type name.
func (c Context) Type() string {
	if len(c.TypeLineage) == 0 {
		return ""
	}
	return c.TypeLineage[0]
}

// TargetSpec restricts which components an attribute applies to.
// The zero value is empty and places no restriction; an attribute
// carrying an empty spec is treated as untargeted.
type TargetSpec struct {
	// Types lists component types the attribute applies to. A type
	// matches anywhere in the component's lineage; the more derived
	// the match, the higher the rank.
	Types []string

	// ExcludeTypes lists component types the attribute never applies
	// to, matched against the full lineage.
	ExcludeTypes []string

	// ParentTypes lists enclosing component types required for the
	// attribute to apply; nearer ancestors rank higher.
	ParentTypes []string

	// Names lists declared component names the attribute applies to.
	Names []string
}

// IsEmpty reports whether the spec places no restriction at all.
func (t TargetSpec) IsEmpty() bool {
	return len(t.Types) == 0 && len(t.ExcludeTypes) == 0 &&
		len(t.ParentTypes) == 0 && len(t.Names) == 0
}

// Rank weights. A more derived type match outranks a base type match,
// and a nearer ancestor outranks a distant one.
const (
	rankTypeBase   = 100
	rankTypeStep   = 10
	rankParentBase = 50
	rankParentStep = 5
	rankName       = 50
)

// Rank scores how specifically this spec matches the given context.
// The second result is false when the spec does not apply at all, in
// which case the attribute must be dropped from resolution.
func (t TargetSpec) Rank(ctx Context) (int, bool) {
	for _, ex := range t.ExcludeTypes {
		if slices.Contains(ctx.TypeLineage, ex) {
			return 0, false
		}
	}

	rank := 0

	if len(t.Types) > 0 {
		best := -1
		for _, typ := range t.Types {
			depth := slices.Index(ctx.TypeLineage, typ)
			if depth < 0 {
				continue
			}
			if score := stepped(rankTypeBase, rankTypeStep, depth); score > best {
				best = score
			}
		}
		if best < 0 {
			return 0, false
		}
		rank += best
	}

	if len(t.Names) > 0 {
		if !slices.Contains(t.Names, ctx.Name) {
			return 0, false
		}
		rank += rankName
	}

	if len(t.ParentTypes) > 0 {
		best := -1
		for i, anc := range ctx.Ancestors {
			if !slices.Contains(t.ParentTypes, anc) {
				continue
			}
			if score := stepped(rankParentBase, rankParentStep, i); score > best {
				best = score
			}
			break
		}
		if best < 0 {
			return 0, false
		}
		rank += best
	}

	return rank, true
}

// stepped computes base minus depth*step, floored at step so a distant
// match still outranks no constraint at all.
func stepped(base, step, depth int) int {
	score := base - depth*step
	if score < step {
		return step
	}
	return score
}
