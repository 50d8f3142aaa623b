package toolbar

// Lookup reports which buttons the host page offers.
type Lookup interface {
	Has(id string) bool
}

// LookupFunc adapts a function to Lookup.
type LookupFunc func(id string) bool

// Has implements Lookup.
func (f LookupFunc) Has(id string) bool {
	return f(id)
}

// AllButtons is a Lookup for hosts that draw every button themselves.
var AllButtons Lookup = LookupFunc(func(string) bool { return true })

// ButtonSet is a fixed set of button ids.
type ButtonSet map[string]struct{}

// NewButtonSet creates a set holding ids.
func NewButtonSet(ids ...string) ButtonSet {
	s := make(ButtonSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has implements Lookup.
func (s ButtonSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}
