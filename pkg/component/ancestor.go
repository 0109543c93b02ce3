package component

// Ancestor walks the parent chain from start, exclusive of start
// itself, and returns the nearest component whose type is T. The
// second result is false when the root is reached without a match.
// O(depth).
func Ancestor[T Component](start Component) (T, bool) {
	var zero T
	if start == nil {
		return zero, false
	}
	for n := start.Node().Parent(); n != nil; n = n.Parent() {
		if t, ok := n.Owner().(T); ok {
			return t, true
		}
	}
	return zero, false
}

// AncestorOrSelf is Ancestor inclusive of start itself.
func AncestorOrSelf[T Component](start Component) (T, bool) {
	var zero T
	if start == nil {
		return zero, false
	}
	if t, ok := start.Node().Owner().(T); ok {
		return t, true
	}
	return Ancestor[T](start)
}
