package jsonld

import (
	"fmt"
	"strings"
	"sync"
)

// Metadata is the declarative part of a node's envelope. It depends on the
// node's type only and is shared between nodes: treat it as read-only.
type Metadata struct {
	Vocab string
	Type  string
	// Terms holds package, type and mixin terms merged in that order.
	Terms *Terms
}

// ResolverConfig holds configuration for metadata resolution.
type ResolverConfig struct {
	// Mixins supplies override metadata; may be nil.
	Mixins MixinSource
	// DefaultVocab is used when no scope declares a vocabulary. Empty selects SchemaOrg.
	DefaultVocab string
	// MemberTermsOverride lets terms derived from fields overwrite declared
	// terms of the same name. By default they only fill gaps.
	MemberTermsOverride bool
}

// Resolver computes the effective vocabulary, type label and terms of nodes.
// Declarative results are cached per descriptor; a Resolver is safe for
// concurrent use.
type Resolver struct {
	mixins         MixinSource
	defaultVocab   string
	memberOverride bool
	cache          sync.Map // *TypeDescriptor -> resolution
}

type resolution struct {
	meta *Metadata
	err  error
}

// NewResolver creates a Resolver.
func NewResolver(cfg ResolverConfig) *Resolver {
	if cfg.DefaultVocab == "" {
		cfg.DefaultVocab = SchemaOrg
	}

	return &Resolver{
		mixins:         cfg.Mixins,
		defaultVocab:   cfg.DefaultVocab,
		memberOverride: cfg.MemberTermsOverride,
	}
}

// ResolveVocabulary returns the node's vocabulary: mixin, then type, then
// package, then the default vocabulary.
func (r *Resolver) ResolveVocabulary(n Node) string {
	td := n.LDType()

	return r.vocabulary(td, r.mixinFor(td))
}

// ResolveType returns the node's @type label: mixin expose, then type expose,
// then the unqualified type name.
func (r *Resolver) ResolveType(n Node) string {
	td := n.LDType()

	return typeLabel(n, td, r.mixinFor(td))
}

// Resolve returns the cached metadata of the node's type. The error is a
// *ConfigError when a scope's term declarations are invalid. Descriptors with
// an empty ID.Name are resolved on every call, since their label comes from
// the Go type of n.
func (r *Resolver) Resolve(n Node) (*Metadata, error) {
	td := n.LDType()
	if td == nil {
		// descriptor-less values get defaults only; nothing to cache by
		return &Metadata{Vocab: r.defaultVocab, Type: typeLabel(n, nil, nil), Terms: NewTerms()}, nil
	}

	if td.ID.Name == "" {
		return r.resolve(n, td)
	}

	if cached, ok := r.cache.Load(td); ok {
		res := cached.(resolution)
		return res.meta, res.err
	}

	meta, err := r.resolve(n, td)
	actual, _ := r.cache.LoadOrStore(td, resolution{meta: meta, err: err})
	res := actual.(resolution)

	return res.meta, res.err
}

func (r *Resolver) resolve(n Node, td *TypeDescriptor) (*Metadata, error) {
	mixin := r.mixinFor(td)

	terms := NewTerms()

	if td.Package != nil {
		pkgTerms, err := scopeTerms(td.Package.Path, &td.Package.Annotations)
		if err != nil {
			return nil, err
		}

		terms.Merge(pkgTerms)
	}

	typeTerms, err := scopeTerms(td.ID.String(), &td.Annotations)
	if err != nil {
		return nil, err
	}

	// type terms override package terms
	terms.Merge(typeTerms)

	mixinTerms, err := scopeTerms("mixin of "+td.ID.String(), mixin)
	if err != nil {
		return nil, err
	}

	// mixin terms override type terms
	terms.Merge(mixinTerms)

	return &Metadata{
		Vocab: r.vocabulary(td, mixin),
		Type:  typeLabel(n, td, mixin),
		Terms: terms,
	}, nil
}

func (r *Resolver) mixinFor(td *TypeDescriptor) *Annotations {
	if r.mixins == nil || td == nil {
		return nil
	}

	return r.mixins.MixinFor(td.ID)
}

func (r *Resolver) vocabulary(td *TypeDescriptor, mixin *Annotations) string {
	switch {
	case mixin != nil && mixin.Vocab != "":
		return mixin.Vocab
	case td != nil && td.Vocab != "":
		return td.Vocab
	case td != nil && td.Package != nil && td.Package.Vocab != "":
		return td.Package.Vocab
	default:
		return r.defaultVocab
	}
}

func typeLabel(n Node, td *TypeDescriptor, mixin *Annotations) string {
	switch {
	case mixin != nil && mixin.Expose != "":
		return mixin.Expose
	case td != nil && td.Expose != "":
		return td.Expose
	case td != nil && td.ID.Name != "":
		return td.ID.Name
	default:
		return simpleName(n)
	}
}

// simpleName is the fallback for nodes without a named descriptor.
func simpleName(n Node) string {
	name := strings.TrimLeft(fmt.Sprintf("%T", n), "*")
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}

	return name
}

// scopeTerms returns the terms declared by one scope. A nil scope declares
// nothing.
func scopeTerms(scope string, a *Annotations) (*Terms, error) {
	terms := NewTerms()
	if a == nil {
		return terms, nil
	}

	if a.Term != nil && len(a.Terms) > 0 {
		return nil, &ConfigError{Code: ErrCodeConflictingTermDecl, Scope: scope}
	}

	for _, decl := range a.Terms {
		if terms.Has(decl.Define) {
			return nil, &ConfigError{Code: ErrCodeDuplicateTerm, Scope: scope, Term: decl.Define}
		}

		terms.Set(decl.Define, StringTerm(decl.As))
	}

	if a.Term != nil {
		terms.Set(a.Term.Define, StringTerm(a.Term.As))
	}

	return terms, nil
}

// ValidateAnnotations checks the term declarations of a scope without
// resolving anything.
func ValidateAnnotations(scope string, a *Annotations) error {
	_, err := scopeTerms(scope, a)
	return err
}
