package jsonld

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CollectTerms returns the complete term mapping of a node: its declared terms
// followed by the terms derived from its fields.
func (r *Resolver) CollectTerms(n Node) (*Terms, error) {
	meta, err := r.Resolve(n)
	if err != nil {
		return nil, err
	}

	return collectMemberTerms(meta.Terms, n.LDFields(), r.memberOverride), nil
}

// collectMemberTerms merges field derived terms into a copy of declared.
//
// Enum fields contribute {"@id": label, "@type": "@vocab"} under the field name
// and a value label entry for the current constant; nil enum fields contribute
// nothing. Other fields contribute name -> label when they expose a label.
func collectMemberTerms(declared *Terms, fields []Field, override bool) *Terms {
	terms := declared.Clone()

	put := func(name string, value TermValue) {
		if !override && declared.Has(name) {
			return
		}

		terms.Set(name, value)
	}

	for _, f := range fields {
		if e, ok := f.Value.(Enum); ok && !isNil(f.Value) {
			put(f.Name, StructuredTerm{ID: f.Label})
			put(e.EnumName(), StringTerm(enumValueLabel(e)))

			continue
		}

		if f.Enum {
			// nil enum
			continue
		}

		if f.Label != "" {
			put(f.Name, StringTerm(f.Label))
		}
	}

	return terms
}

func enumValueLabel(e Enum) string {
	if label := e.EnumLabel(); label != "" {
		return label
	}

	return UpperToCamel(e.EnumName())
}

// UpperToCamel turns an upper snake case constant name into camel case:
// PRE_ORDER becomes PreOrder. Every word is lowercased except its first letter.
func UpperToCamel(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, word := range strings.Split(s, "_") {
		if word == "" {
			continue
		}

		r, size := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToTitle(r))
		b.WriteString(strings.ToLower(word[size:]))
	}

	return b.String()
}
