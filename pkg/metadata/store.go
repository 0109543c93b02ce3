package metadata

// Store is the ordered collection of attributes attached at one level.
// Declared order is preserved within a store.
type Store struct {
	level Level
	attrs []Attribute

	// pushed counts attributes inserted via Push. Pushed attributes
	// sit ahead of originally declared ones but behind earlier
	// pushes.
	pushed int
}

// NewStore creates an empty store for the given level.
func NewStore(level Level) *Store {
	return &Store{level: level}
}

// Level returns the level this store holds attributes for.
func (s *Store) Level() Level { return s.level }

// Len returns the number of stored attributes.
func (s *Store) Len() int { return len(s.attrs) }

// Add appends attributes in declared order.
func (s *Store) Add(attrs ...Attribute) {
	s.attrs = append(s.attrs, attrs...)
}

// Push inserts attributes ahead of originally declared ones while
// keeping them behind attributes from earlier Push calls.
func (s *Store) Push(attrs ...Attribute) {
	out := make([]Attribute, 0, len(s.attrs)+len(attrs))
	out = append(out, s.attrs[:s.pushed]...)
	out = append(out, attrs...)
	out = append(out, s.attrs[s.pushed:]...)
	s.attrs = out
	s.pushed += len(attrs)
}

// All returns a copy of the stored attributes in order.
func (s *Store) All() []Attribute {
	out := make([]Attribute, len(s.attrs))
	copy(out, s.attrs)
	return out
}

// ofKind returns the stored attributes of the given kind in order.
func (s *Store) ofKind(kind string) []Attribute {
	var out []Attribute
	for _, a := range s.attrs {
		if a.Kind() == kind {
			out = append(out, a)
		}
	}
	return out
}

// StoreSet holds exactly one store per level.
type StoreSet struct {
	stores [levelCount]*Store
}

// NewStoreSet creates a store set with one empty store per level.
func NewStoreSet() *StoreSet {
	ss := &StoreSet{}
	for _, l := range Levels() {
		ss.stores[l] = NewStore(l)
	}
	return ss
}

// At returns the store for the given level.
func (ss *StoreSet) At(l Level) *Store {
	return ss.stores[l]
}
