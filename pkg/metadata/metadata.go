package metadata

import "golang.org/x/text/language"

// DefaultCulture is the ambient culture used when no culture attribute
// resolves for a component.
var DefaultCulture = language.English

// ComponentMetadata is the per-component metadata facade: one store
// per level plus the resolver that queries them. It is owned by
// exactly one component node and populated during that node's init
// pass.
type ComponentMetadata struct {
	ctx    Context
	stores *StoreSet
	res    *Resolver
}

// New creates empty metadata for the component identified by ctx.
func New(ctx Context) *ComponentMetadata {
	stores := NewStoreSet()
	return &ComponentMetadata{
		ctx:    ctx,
		stores: stores,
		res:    NewResolver(stores, ctx),
	}
}

// Context returns the component identity targets are ranked against.
func (m *ComponentMetadata) Context() Context { return m.ctx }

// Add attaches attributes at the given level in declared order.
func (m *ComponentMetadata) Add(level Level, attrs ...Attribute) {
	m.stores.At(level).Add(attrs...)
}

// Push injects attributes into the Declared level ahead of originally
// declared ones. Collaborators use this to expand shorthand
// declarations into concrete attributes that must win over later
// declarations; attributes from earlier Push calls stay ahead.
//
// Push is intended for the initialization window. Mutating metadata
// after the component tree is in active use is unsupported.
func (m *ComponentMetadata) Push(attrs ...Attribute) {
	m.stores.At(LevelDeclared).Push(attrs...)
}

// Get returns the first attribute of the given kind matching the
// filter.
func (m *ComponentMetadata) Get(kind string, f Filter) (Attribute, bool) {
	return m.res.Get(kind, f)
}

// All returns every attribute of the given kind matching the filter.
func (m *ComponentMetadata) All(kind string, f Filter) []Attribute {
	return m.res.All(kind, f)
}

// Culture resolves the component's culture, falling back to
// DefaultCulture when no culture attribute is attached.
func (m *ComponentMetadata) Culture() language.Tag {
	a, ok := m.Get(KindCulture, Filter{})
	if !ok {
		return DefaultCulture
	}
	return a.(CultureAttribute).Tag
}

// Format resolves the component's format string. The second result is
// false when no format attribute is attached.
func (m *ComponentMetadata) Format() (string, bool) {
	a, ok := m.Get(KindFormat, Filter{})
	if !ok {
		return "", false
	}
	return a.(FormatAttribute).Value, true
}
