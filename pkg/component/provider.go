package component

// Provider is a named, lazily evaluated, cached accessor bound to one
// node. It starts uncomputed, computes on first read, and never
// re-evaluates automatically: callers needing freshness register a
// provider under a different name instead of invalidating this one.
type Provider[T any] struct {
	name    string
	compute func() (T, error)
	done    bool
	value   T
}

// Name returns the provider's name, unique within its node.
func (p *Provider[T]) Name() string { return p.name }

// Computed reports whether the value has been computed.
func (p *Provider[T]) Computed() bool { return p.done }

// Value returns the cached value, computing it on first read. A
// computation error is returned without caching, so a later read
// retries.
func (p *Provider[T]) Value() (T, error) {
	if p.done {
		return p.value, nil
	}
	v, err := p.compute()
	if err != nil {
		var zero T
		return zero, err
	}
	p.value = v
	p.done = true
	return v, nil
}

// ProviderFor returns the node's provider registered under name,
// creating it with the given computation on first use. The
// computation is captured once; later calls with a different function
// keep the original. Registering a different value type under an
// existing name panics.
func ProviderFor[T any](n *Node, name string, compute func() (T, error)) *Provider[T] {
	if existing, ok := n.providers[name]; ok {
		p, ok := existing.(*Provider[T])
		if !ok {
			panic("component: provider type mismatch for " + name)
		}
		return p
	}
	if n.providers == nil {
		n.providers = make(map[string]any)
	}
	p := &Provider[T]{name: name, compute: compute}
	n.providers[name] = p
	return p
}
