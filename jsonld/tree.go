package jsonld

import (
	"errors"
)

// Member is one name/value pair of an Object.
type Member struct {
	Name  string
	Value any
}

// Object is an ordered JSON object built by TreeWriter. Values are string,
// bool, int64, uint64, float64, nil, *Object or []any.
type Object struct {
	Members []Member
}

// Get returns the value of the first member called name.
func (o *Object) Get(name string) (any, bool) {
	if o == nil {
		return nil, false
	}

	for _, m := range o.Members {
		if m.Name == name {
			return m.Value, true
		}
	}

	return nil, false
}

// Object returns the member called name if it is an object, nil otherwise.
func (o *Object) Object(name string) *Object {
	v, _ := o.Get(name)
	obj, _ := v.(*Object)

	return obj
}

// Names returns the member names in order.
func (o *Object) Names() []string {
	names := make([]string, 0, len(o.Members))
	for _, m := range o.Members {
		names = append(names, m.Name)
	}

	return names
}

var errTreeState = errors.New("jsonld: unbalanced tree events")

// TreeWriter builds an in-memory document from output events.
type TreeWriter struct {
	root    any
	hasRoot bool
	open    []any // *Object or *[]any
	name    *string
}

// NewTreeWriter creates an empty TreeWriter.
func NewTreeWriter() *TreeWriter {
	return &TreeWriter{}
}

// Root returns the completed top-level value.
func (t *TreeWriter) Root() any {
	return t.root
}

// Depth returns the number of containers still open.
func (t *TreeWriter) Depth() int {
	return len(t.open)
}

func (t *TreeWriter) add(v any) error {
	if len(t.open) == 0 {
		if t.hasRoot {
			return errTreeState
		}

		t.root, t.hasRoot = v, true

		return nil
	}

	switch c := t.open[len(t.open)-1].(type) {
	case *Object:
		if t.name == nil {
			return errTreeState
		}

		c.Members = append(c.Members, Member{Name: *t.name, Value: v})
		t.name = nil
	case *[]any:
		*c = append(*c, v)
	}

	return nil
}

func (t *TreeWriter) StartObject() error {
	obj := &Object{}
	if err := t.add(obj); err != nil {
		return err
	}

	t.open = append(t.open, obj)

	return nil
}

func (t *TreeWriter) EndObject() error {
	if len(t.open) == 0 || t.name != nil {
		return errTreeState
	}

	if _, ok := t.open[len(t.open)-1].(*Object); !ok {
		return errTreeState
	}

	t.open = t.open[:len(t.open)-1]

	return nil
}

func (t *TreeWriter) StartArray() error {
	arr := &[]any{}
	if err := t.add(arr); err != nil {
		return err
	}

	t.open = append(t.open, arr)

	return nil
}

func (t *TreeWriter) EndArray() error {
	if len(t.open) == 0 {
		return errTreeState
	}

	arr, ok := t.open[len(t.open)-1].(*[]any)
	if !ok {
		return errTreeState
	}

	t.open = t.open[:len(t.open)-1]

	// arrays are stored by pointer while open; swap in the final slice
	return t.replace(arr, *arr)
}

func (t *TreeWriter) replace(ptr *[]any, final []any) error {
	if final == nil {
		final = []any{}
	}

	if len(t.open) == 0 {
		if p, ok := t.root.(*[]any); ok && p == ptr {
			t.root = final
		}

		return nil
	}

	switch c := t.open[len(t.open)-1].(type) {
	case *Object:
		last := &c.Members[len(c.Members)-1]
		if p, ok := last.Value.(*[]any); ok && p == ptr {
			last.Value = final
		}
	case *[]any:
		last := &(*c)[len(*c)-1]
		if p, ok := (*last).(*[]any); ok && p == ptr {
			*last = final
		}
	}

	return nil
}

func (t *TreeWriter) Name(name string) error {
	if len(t.open) == 0 || t.name != nil {
		return errTreeState
	}

	if _, ok := t.open[len(t.open)-1].(*Object); !ok {
		return errTreeState
	}

	t.name = &name

	return nil
}

func (t *TreeWriter) String(s string) error { return t.add(s) }
func (t *TreeWriter) Bool(b bool) error     { return t.add(b) }
func (t *TreeWriter) Int(i int64) error     { return t.add(i) }
func (t *TreeWriter) Uint(u uint64) error   { return t.add(u) }
func (t *TreeWriter) Float(f float64) error { return t.add(f) }
func (t *TreeWriter) Null() error           { return t.add(nil) }
