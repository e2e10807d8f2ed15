package jsonld

// Node is a value that serializes as a JSON-LD node object.
type Node interface {
	// LDType returns the static descriptor of the node's type.
	LDType() *TypeDescriptor
	// LDFields returns the node's exposed members in declaration order.
	LDFields() []Field
}

// Enum is implemented by enum constants. EnumName is the constant's string
// form (e.g. "PRE_ORDER"), EnumLabel its exposed label or "".
type Enum interface {
	EnumName() string
	EnumLabel() string
}

// Field is one exposed member of a node.
type Field struct {
	// Name is the output key and the term name of the member.
	Name string
	// Label is the member's exposed label, "" when none is declared.
	Label string
	// Value is the member value. Nil, Node, Enum, []any, []Node and values whose
	// underlying type is a string, bool or number are supported. Nil pointers are
	// written as null.
	Value any
	// Enum marks enum typed members, so that a nil enum is recognized.
	Enum bool
	// Inline merges a Node value into the parent object instead of nesting it.
	Inline bool
	// OmitEmpty skips nil and empty values when writing.
	OmitEmpty bool
}

// Deref returns the value p points to, or an untyped nil.
func Deref[T any](p *T) any {
	if p == nil {
		return nil
	}

	return *p
}

// Pointers converts a slice of pointers to []any of the pointed values; nil
// elements become untyped nils.
func Pointers[T any](s []*T) any {
	if s == nil {
		return nil
	}

	out := make([]any, len(s))
	for i, p := range s {
		if p != nil {
			out[i] = *p
		}
	}

	return out
}

// Slice converts a typed slice to []any; nil stays nil.
func Slice[S ~[]E, E any](s S) any {
	if s == nil {
		return nil
	}

	out := make([]any, len(s))
	for i := range s {
		out[i] = s[i]
	}

	return out
}

// Inline is a convenience constructor for an inlined node field.
func Inline(name string, n Node) Field {
	return Field{Name: name, Value: n, Inline: true}
}
