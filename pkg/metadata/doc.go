// Package metadata resolves declarative configuration facts for
// components.
//
// A component's configuration is assembled from attributes attached at
// five precedence levels: Declared (the component's own declaration
// site), ParentComponent (inherited from the enclosing component),
// Assembly, Global (process-wide), and Component (intrinsic to the
// component type). Iteration always runs Declared first and Component
// last unless a query narrows the level set.
//
// # Targeting
//
// An attribute may carry a TargetSpec restricting which components it
// applies to. Levels differ in what they accept: an in-place
// declaration always applies untargeted, attributes inherited from the
// parent's declaration apply only through a target, and assembly and
// global attributes may do either. Matching targets are ranked by
// specificity; the most specific match wins.
//
// # Querying
//
// ComponentMetadata is the per-component facade:
//
//	m := metadata.New(metadata.Context{
//	    TypeLineage: []string{"PasswordInput", "Input", "Control"},
//	    Name:        "Password",
//	})
//	m.Add(metadata.LevelGlobal, metadata.CultureAttribute{Tag: language.German})
//
//	culture := m.Culture() // de, falling back to DefaultCulture
//
// Absence of an attribute is a normal outcome, never an error.
package metadata
