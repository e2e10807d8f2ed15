package mixin

import (
	"fmt"

	"hydra-jsonld/internal/analyze"
	"hydra-jsonld/jsonld"
)

// Set holds the mixins of a file by type. It implements jsonld.MixinSource
// and is safe for concurrent reads.
type Set struct {
	byType map[jsonld.TypeID]*jsonld.Annotations
}

var _ jsonld.MixinSource = (*Set)(nil)

// Open loads a mixin file whose types are fully qualified and returns its
// Set, ready for jsonld.WithMixins.
func Open(path string) (*Set, error) {
	f, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	if f.Version != CurrentVersion {
		return nil, fmt.Errorf("mixin file %s: unsupported version %q", path, f.Version)
	}

	return NewSet(f)
}

// NewSet builds a Set from fully qualified type references. Use Resolve to
// accept short references against a loaded type graph.
func NewSet(f *File) (*Set, error) {
	return build(f, func(ref string) (jsonld.TypeID, error) {
		id, ok := typeIDOf(ref)
		if !ok {
			return jsonld.TypeID{}, fmt.Errorf("type %q is not of the form import/path.Name", ref)
		}

		return id, nil
	})
}

// Resolve builds a Set, resolving type references against graph.
func Resolve(f *File, graph *analyze.TypeGraph) (*Set, error) {
	return build(f, func(ref string) (jsonld.TypeID, error) {
		info := ResolveTypeID(ref, graph)
		if info == nil {
			return jsonld.TypeID{}, fmt.Errorf("type %q not found", ref)
		}

		return info.ID, nil
	})
}

func build(f *File, resolve func(string) (jsonld.TypeID, error)) (*Set, error) {
	s := &Set{byType: make(map[jsonld.TypeID]*jsonld.Annotations, len(f.Mixins))}

	for i := range f.Mixins {
		m := &f.Mixins[i]

		id, err := resolve(m.Type)
		if err != nil {
			return nil, fmt.Errorf("mixin %d: %w", i, err)
		}

		if _, dup := s.byType[id]; dup {
			return nil, fmt.Errorf("mixin %d: type %s already has a mixin", i, id)
		}

		s.byType[id] = m.Annotations()
	}

	return s, nil
}

// MixinFor implements jsonld.MixinSource.
func (s *Set) MixinFor(id jsonld.TypeID) *jsonld.Annotations {
	if s == nil {
		return nil
	}

	return s.byType[id]
}

// Len returns the number of mixins.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	return len(s.byType)
}
