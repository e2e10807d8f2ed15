package mixin

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"hydra-jsonld/jsonld"
)

// File is the root of a mixin file.
type File struct {
	Version string  `yaml:"version"`
	Mixins  []Mixin `yaml:"mixins"`
}

// Mixin overrides the metadata of one type.
type Mixin struct {
	// Type is the type reference: "import/path.Name", "pkg.Name" or "Name".
	Type   string    `yaml:"type"`
	Vocab  string    `yaml:"vocab,omitempty"`
	Expose string    `yaml:"expose,omitempty"`
	Term   *TermSpec `yaml:"term,omitempty"`
	Terms  TermList  `yaml:"terms,omitempty"`
}

// Annotations converts the mixin to its runtime form.
func (m *Mixin) Annotations() *jsonld.Annotations {
	a := &jsonld.Annotations{
		Vocab:  m.Vocab,
		Expose: m.Expose,
	}

	if m.Term != nil {
		decl := jsonld.TermDecl(*m.Term)
		a.Term = &decl
	}

	for _, t := range m.Terms {
		a.Terms = append(a.Terms, jsonld.TermDecl(t))
	}

	return a
}

// IsEmpty reports whether the mixin overrides nothing.
func (m *Mixin) IsEmpty() bool {
	return m.Vocab == "" && m.Expose == "" && m.Term == nil && len(m.Terms) == 0
}

// TermSpec is one term declaration.
type TermSpec struct {
	Define string `yaml:"define"`
	As     string `yaml:"as"`
}

// UnmarshalYAML accepts either "define=as" or a {define, as} mapping.
func (t *TermSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		define, as, ok := strings.Cut(node.Value, "=")
		define, as = strings.TrimSpace(define), strings.TrimSpace(as)

		if !ok || define == "" || as == "" {
			return fmt.Errorf("line %d: term %q is not of the form define=as", node.Line, node.Value)
		}

		*t = TermSpec{Define: define, As: as}

		return nil

	case yaml.MappingNode:
		type plain TermSpec

		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}

		if p.Define == "" || p.As == "" {
			return fmt.Errorf("line %d: term needs both define and as", node.Line)
		}

		*t = TermSpec(p)

		return nil

	default:
		return fmt.Errorf("line %d: expected term string or mapping, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML writes the short "define=as" form.
func (t TermSpec) MarshalYAML() (any, error) {
	return t.Define + "=" + t.As, nil
}

// TermList is an ordered list of term declarations.
type TermList []TermSpec

// UnmarshalYAML accepts a sequence of terms or a define: as mapping. Mapping
// order is kept and repeated keys are kept too, so that they are reported as
// duplicate terms.
func (l *TermList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var specs []TermSpec
		if err := node.Decode(&specs); err != nil {
			return err
		}

		*l = specs

		return nil

	case yaml.MappingNode:
		specs := make(TermList, 0, len(node.Content)/2)

		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: terms mapping must map names to URIs", key.Line)
			}

			specs = append(specs, TermSpec{Define: key.Value, As: value.Value})
		}

		*l = specs

		return nil

	default:
		return fmt.Errorf("line %d: expected terms list or mapping, got %v", node.Line, node.Kind)
	}
}
