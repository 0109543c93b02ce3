// Package strut provides the public API for the strut component
// runtime.
//
// This is the recommended import for most test suites:
//
//	import "github.com/strut-dev/strut"
//
// Usage:
//
//	submit := strut.NewNode(strut.Config{
//	    Name:        "Submit",
//	    TypeLineage: []string{"Button", "Control"},
//	    Locator:     loc,
//	})
//	ok, err := strut.WaitFor(submit, strut.Until(strut.Visible))
package strut

import (
	"github.com/strut-dev/strut/pkg/component"
	"github.com/strut-dev/strut/pkg/metadata"
	"github.com/strut-dev/strut/pkg/scope"
	"github.com/strut-dev/strut/pkg/wait"
)

// =============================================================================
// Component tree (re-export from pkg/component)
// =============================================================================

// Node is one element of the component tree.
type Node = component.Node

// Config configures a new Node.
type Config = component.Config

// Component is anything wrapping a Node.
type Component = component.Component

// NewNode creates a detached component node.
var NewNode = component.New

// Trigger events.
type Event = component.Event

const (
	EventInit         = component.EventInit
	EventBeforeAccess = component.EventBeforeAccess
	EventAfterAccess  = component.EventAfterAccess
	EventCleanup      = component.EventCleanup
)

// =============================================================================
// Metadata (re-export from pkg/metadata)
// =============================================================================

// Attribute is one declarative configuration fact.
type Attribute = metadata.Attribute

// Filter narrows an attribute query.
type Filter = metadata.Filter

// Level identifies one of the five attribute precedence tiers.
type Level = metadata.Level

const (
	LevelDeclared        = metadata.LevelDeclared
	LevelParentComponent = metadata.LevelParentComponent
	LevelAssembly        = metadata.LevelAssembly
	LevelGlobal          = metadata.LevelGlobal
	LevelComponent       = metadata.LevelComponent
)

// =============================================================================
// Scope collaborators (re-export from pkg/scope)
// =============================================================================

// Locator resolves a component to its live resource.
type Locator = scope.Locator

// Handle is the live resource a component resolves to.
type Handle = scope.Handle

// ContentSource extracts textual content from a live Handle.
type ContentSource = scope.ContentSource

// NotFoundError reports a required-but-absent resource.
type NotFoundError = scope.NotFoundError

// TimeoutError reports a wait budget that ran out.
type TimeoutError = scope.TimeoutError

// =============================================================================
// Waiting (re-export from pkg/wait)
// =============================================================================

// WaitSpec is one wait request.
type WaitSpec = wait.Spec

// Wait conditions.
const (
	Present = wait.Present
	Absent  = wait.Absent
	Visible = wait.Visible
	Hidden  = wait.Hidden
)

// Until builds a single-condition wait spec.
var Until = wait.Until

// WaitFor waits on the default engine.
var WaitFor = wait.For

// Wait option overrides.
var (
	WithTimeout  = wait.WithTimeout
	WithInterval = wait.WithInterval
	Safely       = wait.Safely
)
