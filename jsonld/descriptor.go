package jsonld

// Keywords and defaults used in produced documents.
const (
	AtContext = "@context"
	AtVocab   = "@vocab"
	AtType    = "@type"
	AtID      = "@id"

	// SchemaOrg is the vocabulary of nodes that do not declare one.
	SchemaOrg = "http://schema.org/"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "hydra-jsonld/examples/store"
	Name    string // e.g., "Product"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TermDecl declares a term: Define is the short name, As its expansion.
type TermDecl struct {
	Define string
	As     string
}

// Annotations is the linked-data metadata declared on one scope: a package, a
// type or a mixin. Zero values mean "not declared".
type Annotations struct {
	// Vocab is the vocabulary URI.
	Vocab string
	// Expose is the exposed @type label. Ignored on packages.
	Expose string
	// Term is a single term declaration.
	Term *TermDecl
	// Terms is a multi term declaration. Declaring both Term and Terms is a
	// configuration error.
	Terms []TermDecl
}

// HasTerms reports whether the scope declares any term.
func (a *Annotations) HasTerms() bool {
	return a != nil && (a.Term != nil || len(a.Terms) > 0)
}

// PackageDescriptor holds the metadata declared for a Go package.
type PackageDescriptor struct {
	Path string
	Annotations
}

// TypeDescriptor holds the metadata declared for a Go type. Descriptors are
// static tables: they are built once (usually by generated code) and shared by
// every value of the type.
type TypeDescriptor struct {
	ID      TypeID
	Package *PackageDescriptor
	Annotations
}

// MixinSource supplies override metadata for types at serialization
// configuration time. MixinFor returns nil when the type has no mixin.
type MixinSource interface {
	MixinFor(id TypeID) *Annotations
}

// Mixins is a map based MixinSource.
type Mixins map[TypeID]*Annotations

// MixinFor implements MixinSource.
func (m Mixins) MixinFor(id TypeID) *Annotations {
	return m[id]
}
