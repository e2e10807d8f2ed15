package jsonld

// TermValue is the value of a term definition: either a StringTerm or a
// StructuredTerm.
type TermValue interface {
	isTermValue()
}

// StringTerm aliases a term to an expansion URI or label.
type StringTerm string

func (StringTerm) isTermValue() {}

// StructuredTerm is the term definition of an enum valued member:
// {"@id": ID, "@type": "@vocab"}. The @id entry is omitted when ID is empty.
type StructuredTerm struct {
	ID string
}

func (StructuredTerm) isTermValue() {}

// Terms is an insertion ordered term mapping.
type Terms struct {
	keys   []string
	values map[string]TermValue
}

// NewTerms creates an empty term mapping.
func NewTerms() *Terms {
	return &Terms{values: make(map[string]TermValue)}
}

// Set stores value under name. An existing name keeps its position.
func (t *Terms) Set(name string, value TermValue) {
	if _, ok := t.values[name]; !ok {
		t.keys = append(t.keys, name)
	}

	t.values[name] = value
}

// SetIfAbsent stores value under name unless name is already defined and
// reports whether it stored it.
func (t *Terms) SetIfAbsent(name string, value TermValue) bool {
	if t.Has(name) {
		return false
	}

	t.Set(name, value)

	return true
}

// Get returns the value stored under name.
func (t *Terms) Get(name string) (TermValue, bool) {
	if t == nil {
		return nil, false
	}

	v, ok := t.values[name]

	return v, ok
}

// Has reports whether name is defined.
func (t *Terms) Has(name string) bool {
	_, ok := t.Get(name)
	return ok
}

// Len returns the number of terms.
func (t *Terms) Len() int {
	if t == nil {
		return 0
	}

	return len(t.keys)
}

// Keys returns the term names in insertion order.
func (t *Terms) Keys() []string {
	if t == nil {
		return nil
	}

	return append([]string(nil), t.keys...)
}

// Each calls fn for every term in insertion order.
func (t *Terms) Each(fn func(name string, value TermValue)) {
	if t == nil {
		return
	}

	for _, k := range t.keys {
		fn(k, t.values[k])
	}
}

// Merge copies all terms of other into t, overwriting existing names.
func (t *Terms) Merge(other *Terms) {
	other.Each(t.Set)
}

// Clone returns an independent copy of t.
func (t *Terms) Clone() *Terms {
	c := NewTerms()
	c.Merge(t)

	return c
}
