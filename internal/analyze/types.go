package analyze

import (
	"go/types"
	"reflect"
	"strings"

	"hydra-jsonld/internal/diagnostic"
	"hydra-jsonld/jsonld"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID = jsonld.TypeID

// TypeKind represents the kind of an analyzed type.
type TypeKind int

const (
	TypeKindUnknown TypeKind = iota
	TypeKindStruct           // struct type, serialized as a node
	TypeKindEnum             // named string or integer type with constants
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindStruct:
		return "struct"
	case TypeKindEnum:
		return "enum"
	default:
		return "unknown"
	}
}

//go:generate go tool stringer -type=FieldKind -trimprefix=FieldKind -output=fieldkind_string.go

// FieldKind tells the generator how to hand a field value to the serializer.
type FieldKind int

const (
	FieldKindUnsupported FieldKind = iota // maps, channels, funcs, arrays: skipped
	FieldKindValue                        // passed as is
	FieldKindPointer                      // dereferenced with jsonld.Deref
	FieldKindSlice                        // wrapped with jsonld.Slice
	FieldKindEnum                         // enum value, marked Enum
	FieldKindEnumPointer                  // nullable enum, dereferenced and marked Enum
	FieldKindPointerSlice                 // slice of pointers, wrapped with jsonld.Pointers
)

// IsEnum reports whether the field holds an enum value.
func (k FieldKind) IsEnum() bool {
	return k == FieldKindEnum || k == FieldKindEnumPointer
}

// Declarations are the //jsonld: directives attached to one scope.
type Declarations struct {
	Vocab  string
	Expose string
	Term   *jsonld.TermDecl
	Terms  []jsonld.TermDecl
}

// IsZero reports whether nothing is declared.
func (d Declarations) IsZero() bool {
	return d.Vocab == "" && d.Expose == "" && d.Term == nil && len(d.Terms) == 0
}

// Annotations converts the declarations to their runtime form.
func (d Declarations) Annotations() jsonld.Annotations {
	return jsonld.Annotations{
		Vocab:  d.Vocab,
		Expose: d.Expose,
		Term:   d.Term,
		Terms:  d.Terms,
	}
}

// TypeInfo describes an analyzed struct or enum.
type TypeInfo struct {
	ID   TypeID       // Unique identifier
	Kind TypeKind     // Kind of type
	Decl Declarations // Doc comment directives
	Pos  string       // Declaration position

	// For structs, the exported fields in declaration order.
	Fields []FieldInfo

	// For enums, the constants in declaration order, one per distinct value.
	Constants []ConstInfo
	// StringBased is true for enums whose underlying type is a string.
	StringBased bool

	GoType types.Type // The original go/types.Type
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Go field name
	Type     string            // Field type, qualified relative to its package
	Kind     FieldKind         // How the value is handed over
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
	Pos      string            // Declaration position

	// Elem is the named type behind pointers and slices, zero for unnamed types.
	Elem   TypeID
	// Opaque is true when Elem is a struct without Node methods that the
	// serializer has no other writer for.
	Opaque bool
}

// JSONName returns the JSON tag name if present, otherwise the field name.
func (f *FieldInfo) JSONName() string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}

	return name
}

// Ignored reports whether the json tag hides the field.
func (f *FieldInfo) Ignored() bool {
	return f.Tag.Get("json") == "-" && !f.Inline()
}

// OmitEmpty reports whether the json tag carries omitempty.
func (f *FieldInfo) OmitEmpty() bool {
	_, opts, _ := strings.Cut(f.Tag.Get("json"), ",")
	return hasOption(opts, "omitempty")
}

// Label returns the exposed label from the jsonld tag.
func (f *FieldInfo) Label() string {
	label, _, _ := strings.Cut(f.Tag.Get("jsonld"), ",")
	return label
}

// Inline reports whether the field is merged into its parent: tagged with
// jsonld:",inline" or embedded.
func (f *FieldInfo) Inline() bool {
	_, opts, _ := strings.Cut(f.Tag.Get("jsonld"), ",")
	return f.Embedded || hasOption(opts, "inline")
}

func hasOption(opts, want string) bool {
	for opt := range strings.SplitSeq(opts, ",") {
		if opt == want {
			return true
		}
	}

	return false
}

// ConstInfo describes an enum constant.
type ConstInfo struct {
	Name   string // Go identifier
	Value  string // string form: the value of string enums, else the identifier
	Expose string // exposed label, "" when none
	Pos    string // declaration position
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string       // Import path
	Name  string       // Package name
	Dir   string       // Directory of the package sources
	Decl  Declarations // Package clause directives
	Types []TypeID     // Structs and enums, in source order
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all structs and enums.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
	// Diagnostics collects directive problems found while loading.
	Diagnostics *diagnostic.Diagnostics
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:       make(map[TypeID]*TypeInfo),
		Packages:    make(map[string]*PackageInfo),
		Diagnostics: &diagnostic.Diagnostics{},
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// PackageTypes returns the analyzed types of one package in source order.
func (g *TypeGraph) PackageTypes(pkgPath string) []*TypeInfo {
	pkg := g.Packages[pkgPath]
	if pkg == nil {
		return nil
	}

	out := make([]*TypeInfo, 0, len(pkg.Types))
	for _, id := range pkg.Types {
		out = append(out, g.Types[id])
	}

	return out
}
