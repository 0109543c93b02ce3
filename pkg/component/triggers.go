package component

import "strings"

// Event identifies component lifecycle points triggers can attach to.
// Events are bit flags; a handler's mask may combine several.
type Event uint8

const (
	// EventInit fires during the component's init pass.
	EventInit Event = 1 << iota

	// EventBeforeAccess fires before the live resource is located.
	EventBeforeAccess

	// EventAfterAccess fires after a scope access completes,
	// whether or not the resource was found.
	EventAfterAccess

	// EventCleanup fires at the start of the component's cleanup
	// pass.
	EventCleanup
)

// String returns a human-readable name for the event mask.
func (e Event) String() string {
	var parts []string
	if e&EventInit != 0 {
		parts = append(parts, "Init")
	}
	if e&EventBeforeAccess != 0 {
		parts = append(parts, "BeforeAccess")
	}
	if e&EventAfterAccess != 0 {
		parts = append(parts, "AfterAccess")
	}
	if e&EventCleanup != 0 {
		parts = append(parts, "Cleanup")
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, "|")
}

// Handler is a trigger callback. A non-nil error aborts the current
// operation and skips the remaining handlers for that firing.
type Handler func(n *Node, e Event) error

// TriggerID identifies a registered handler for removal.
type TriggerID uint64

type trigger struct {
	id   TriggerID
	mask Event
	fn   Handler
	once bool
}

// TriggerSet is an ordered collection of event-masked handlers bound
// to one node. Handlers fire in insertion order, filtered by mask
// intersection. The set may be mutated at any point in the node's
// lifetime.
type TriggerSet struct {
	nextID   TriggerID
	triggers []trigger
}

// On registers a handler for every event in mask and returns its ID.
func (ts *TriggerSet) On(mask Event, fn Handler) TriggerID {
	return ts.add(mask, fn, false)
}

// Once registers a handler that removes itself after its first
// firing.
func (ts *TriggerSet) Once(mask Event, fn Handler) TriggerID {
	return ts.add(mask, fn, true)
}

func (ts *TriggerSet) add(mask Event, fn Handler, once bool) TriggerID {
	ts.nextID++
	ts.triggers = append(ts.triggers, trigger{
		id:   ts.nextID,
		mask: mask,
		fn:   fn,
		once: once,
	})
	return ts.nextID
}

// Remove deregisters the handler with the given ID. It reports
// whether a handler was removed.
func (ts *TriggerSet) Remove(id TriggerID) bool {
	for i, t := range ts.triggers {
		if t.id == id {
			ts.triggers = append(ts.triggers[:i], ts.triggers[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of registered handlers.
func (ts *TriggerSet) Len() int {
	return len(ts.triggers)
}

// Fire runs every handler whose mask includes e, in insertion order.
// The first handler error aborts the firing and is returned; later
// handlers do not run.
func (ts *TriggerSet) Fire(n *Node, e Event) error {
	// Snapshot so handlers may add or remove triggers mid-fire.
	matched := make([]trigger, 0, len(ts.triggers))
	for _, t := range ts.triggers {
		if t.mask&e != 0 {
			matched = append(matched, t)
		}
	}

	for _, t := range matched {
		if t.once {
			ts.Remove(t.id)
		}
		if err := t.fn(n, e); err != nil {
			return err
		}
	}
	return nil
}
