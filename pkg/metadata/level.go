package metadata

// Level identifies one of the five precedence tiers an attribute can
// be attached at. Lower values take precedence during resolution.
type Level uint8

const (
	// LevelDeclared holds attributes from the component's own
	// declaration site. Highest precedence.
	LevelDeclared Level = iota

	// LevelParentComponent holds attributes inherited contextually
	// from the enclosing component's declaration.
	LevelParentComponent

	// LevelAssembly holds attributes declared assembly-wide.
	LevelAssembly

	// LevelGlobal holds process-wide attributes.
	LevelGlobal

	// LevelComponent holds attributes intrinsic to the component's
	// type. Lowest precedence.
	LevelComponent

	levelCount = int(LevelComponent) + 1
)

// Levels returns all levels in canonical resolution order.
func Levels() []Level {
	return []Level{
		LevelDeclared,
		LevelParentComponent,
		LevelAssembly,
		LevelGlobal,
		LevelComponent,
	}
}

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelDeclared:
		return "Declared"
	case LevelParentComponent:
		return "ParentComponent"
	case LevelAssembly:
		return "Assembly"
	case LevelGlobal:
		return "Global"
	case LevelComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// acceptsTargeted reports whether attributes carrying a target spec
// apply at this level. In-place declarations and intrinsic component
// attributes always apply to their own component, so a target makes
// no sense there; everything inherited from the parent's declaration
// applies only through a target.
func (l Level) acceptsTargeted() bool {
	return l != LevelDeclared && l != LevelComponent
}

// acceptsUntargeted reports whether attributes without a target spec
// apply at this level.
func (l Level) acceptsUntargeted() bool {
	return l != LevelParentComponent
}
