package metadata

import "sort"

// Resolver answers attribute queries over a store set, applying level
// ordering, target filtering, and specificity ranking.
type Resolver struct {
	stores *StoreSet
	ctx    Context
}

// NewResolver creates a resolver over the given stores, ranking
// targets against ctx.
func NewResolver(stores *StoreSet, ctx Context) *Resolver {
	return &Resolver{stores: stores, ctx: ctx}
}

// Get returns the first attribute of the given kind matching the
// filter. Absence is reported as false, never as an error.
func (r *Resolver) Get(kind string, f Filter) (Attribute, bool) {
	for _, lvl := range f.levels() {
		if group := r.resolveLevel(lvl, kind, f); len(group) > 0 {
			return group[0], true
		}
	}
	return nil, false
}

// All returns every attribute of the given kind matching the filter,
// level groups concatenated in canonical order. The result is
// deterministic: the same stores and context always yield the same
// sequence.
func (r *Resolver) All(kind string, f Filter) []Attribute {
	var out []Attribute
	for _, lvl := range f.levels() {
		out = append(out, r.resolveLevel(lvl, kind, f)...)
	}
	return out
}

// rankedAttr pairs a candidate with its computed specificity ranks.
// Untargeted attributes rank zero, so a matching target always sorts
// ahead of them and ties keep source order.
type rankedAttr struct {
	attr     Attribute
	rank     int
	attrRank int
}

// resolveLevel produces the ordered, filtered attribute group for one
// level.
func (r *Resolver) resolveLevel(lvl Level, kind string, f Filter) []Attribute {
	store := r.stores.At(lvl)

	var ranked []rankedAttr
	for _, a := range store.ofKind(kind) {
		t, aware := a.(Targeted)
		if !aware {
			// Kind without target support: source order, no
			// acceptance partition.
			ranked = append(ranked, rankedAttr{attr: a})
			continue
		}

		targeted := !t.Target().IsEmpty()
		if targeted && !lvl.acceptsTargeted() {
			continue
		}
		if !targeted && !lvl.acceptsUntargeted() {
			continue
		}

		ra := rankedAttr{attr: a}
		if targeted {
			rank, ok := t.Target().Rank(r.ctx)
			if !ok {
				// Target does not apply to this component.
				continue
			}
			ra.rank = rank
		}

		if f.TargetAttribute != "" {
			if at, ok := a.(AttributeTargeted); ok {
				attrRank, ok := attributeTargetRank(at, f.TargetAttribute)
				if !ok {
					continue
				}
				ra.attrRank = attrRank
			}
		}

		ranked = append(ranked, ra)
	}

	// Highest specificity first; the sort must be stable so target
	// rank ties keep source order.
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].rank != ranked[j].rank {
			return ranked[i].rank > ranked[j].rank
		}
		return ranked[i].attrRank > ranked[j].attrRank
	})

	var out []Attribute
	for _, ra := range ranked {
		if f.passes(ra.attr) {
			out = append(out, ra.attr)
		}
	}
	return out
}

// attributeTargetRank scores a settings attribute against the
// secondary-target hint. An explicit kind match outranks a wildcard;
// a non-matching explicit list does not apply.
func attributeTargetRank(at AttributeTargeted, kind string) (int, bool) {
	kinds := at.TargetAttributes()
	if len(kinds) == 0 {
		return 0, true
	}
	for _, k := range kinds {
		if k == kind {
			return 1, true
		}
	}
	return 0, false
}
