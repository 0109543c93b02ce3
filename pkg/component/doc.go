// Package component implements the component tree: typed nodes for
// pages and controls, lazily computed state, and the access protocol
// around the live rendered resource.
//
// # The Tree
//
// Nodes form a tree mirroring the UI. A parent exclusively owns its
// children and tears them down transitively on CleanUp; the parent
// link is a plain back-reference, so no cycles are owned. Typed
// components wrap a Node by embedding it:
//
//	type LoginPage struct {
//	    *component.Node
//	}
//
//	page := &LoginPage{Node: component.New(component.Config{
//	    TypeLineage: []string{"LoginPage", "Page"},
//	    Locator:     loc,
//	})}
//	page.SetOwner(page)
//
// # Scope Access
//
// Every access to the live resource runs the same protocol: fire
// BeforeAccess triggers, locate through the node's scope.Locator,
// fail with the component's full path if presence was required, then
// fire AfterAccess triggers. A failure short-circuits the remaining
// trigger executions for that call.
//
// # Providers
//
// Derived state (presence, visibility, content) routes through
// named Providers: one cache slot per (node, name), computed on first
// read and never invalidated automatically. Freshness is expressed by
// querying under a different name, not by expiring caches.
//
// # Concurrency
//
// A tree is single-threaded by design: one tree per execution
// context, all traversal, trigger execution, and provider computation
// on the goroutine driving that execution. Nothing here locks.
package component
