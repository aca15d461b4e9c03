// SPDX-License-Identifier: MPL-2.0

package launchspec

type (
	// Pair is a single name→value binding entry.
	Pair struct {
		Name  string
		Value string
	}

	// Binding is the finalized, ordered name→value mapping for one
	// subsystem launch. A binding produced by resolving a schema is total
	// over the schema's names and contains nothing outside the schema;
	// iteration order is the schema's declaration order, which keeps
	// resolution deterministic and testable.
	Binding struct {
		pairs []Pair
		index map[string]int
	}
)

// NewBinding builds a binding from ordered pairs. A duplicate name is a
// DuplicateParameterError; bindings carry exactly one value per parameter.
func NewBinding(pairs ...Pair) (*Binding, error) {
	b := &Binding{
		pairs: make([]Pair, 0, len(pairs)),
		index: make(map[string]int, len(pairs)),
	}
	for _, p := range pairs {
		if _, exists := b.index[p.Name]; exists {
			return nil, &DuplicateParameterError{Name: p.Name}
		}
		b.index[p.Name] = len(b.pairs)
		b.pairs = append(b.pairs, p)
	}
	return b, nil
}

// Len returns the number of entries in the binding.
func (b *Binding) Len() int {
	return len(b.pairs)
}

// Get returns the effective value for name and whether it is bound.
func (b *Binding) Get(name string) (string, bool) {
	i, ok := b.index[name]
	if !ok {
		return "", false
	}
	return b.pairs[i].Value, true
}

// Names returns the bound parameter names in binding order.
func (b *Binding) Names() []string {
	names := make([]string, len(b.pairs))
	for i, p := range b.pairs {
		names[i] = p.Name
	}
	return names
}

// Pairs returns a copy of the binding entries in binding order.
func (b *Binding) Pairs() []Pair {
	out := make([]Pair, len(b.pairs))
	copy(out, b.pairs)
	return out
}

// Equal reports whether two bindings have identical entries in identical
// order.
func (b *Binding) Equal(other *Binding) bool {
	if other == nil || len(b.pairs) != len(other.pairs) {
		return false
	}
	for i, p := range b.pairs {
		if other.pairs[i] != p {
			return false
		}
	}
	return true
}
