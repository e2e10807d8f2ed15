package analyze

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	graph   *TypeGraph
	logger  zerolog.Logger
	dir     string
	ignored string
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(logger zerolog.Logger) *Analyzer {
	return &Analyzer{
		graph:  NewTypeGraph(),
		logger: logger,
	}
}

// WithDir sets the directory package patterns are resolved from.
func (a *Analyzer) WithDir(dir string) *Analyzer {
	a.dir = dir
	return a
}

// IgnoreErrorsIn skips load errors located in files with the given base name,
// so that a stale generated file does not block its regeneration.
func (a *Analyzer) IgnoreErrorsIn(filename string) *Analyzer {
	a.ignored = filename
	return a
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./store", "hydra-jsonld/examples/store").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			if a.ignored != "" && filepath.Base(errorFile(e.Pos)) == a.ignored {
				a.logger.Debug().Str("package", pkg.PkgPath).Msg(e.Msg)
				continue
			}

			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	// Types first: field kinds depend on which types are enums, possibly in
	// another loaded package.
	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	for _, pkg := range pkgs {
		a.processFields(pkg)
	}

	return a.graph, nil
}

// errorFile strips the line and column from a "file:line:col" position.
func errorFile(pos string) string {
	for range 2 {
		if i := strings.LastIndexByte(pos, ':'); i >= 0 {
			pos = pos[:i]
		}
	}

	return pos
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// docs holds the doc comments of a package's declarations by name.
type docs struct {
	types  map[string]*ast.CommentGroup
	consts map[string]*ast.CommentGroup
}

func collectDocs(files []*ast.File) docs {
	d := docs{
		types:  make(map[string]*ast.CommentGroup),
		consts: make(map[string]*ast.CommentGroup),
	}

	for _, f := range files {
		for _, decl := range f.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}

			for _, spec := range gd.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					d.types[s.Name.Name] = specDoc(s.Doc, gd)
				case *ast.ValueSpec:
					if gd.Tok != token.CONST {
						continue
					}

					for _, name := range s.Names {
						d.consts[name.Name] = specDoc(s.Doc, gd)
					}
				}
			}
		}
	}

	return d
}

// specDoc returns the doc of a spec; a lone spec documents itself through its
// declaration ("type T struct" without parentheses).
func specDoc(doc *ast.CommentGroup, gd *ast.GenDecl) *ast.CommentGroup {
	if doc == nil && len(gd.Specs) == 1 {
		return gd.Doc
	}

	return doc
}

func (a *Analyzer) parser(pkg *packages.Package) *directiveParser {
	return &directiveParser{
		diags: a.graph.Diagnostics,
		pos: func(c *ast.Comment) string {
			return pkg.Fset.Position(c.Pos()).String()
		},
	}
}

// processPackage extracts structs, enums and directives from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	if len(pkg.GoFiles) > 0 {
		pkgInfo.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	p := a.parser(pkg)

	for _, f := range pkg.Syntax {
		decl := p.parse(f.Doc, pkg.PkgPath, directiveVocab, directiveTerm, directiveTerms)
		mergeDeclarations(&pkgInfo.Decl, decl)
	}

	d := collectDocs(pkg.Syntax)
	scope := pkg.Types.Scope()

	var found []*TypeInfo

	declPos := make(map[*TypeInfo]token.Pos)

	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		// methods cannot be generated for uninstantiated generic types
		if named, ok := typeName.Type().(*types.Named); ok && named.TypeParams().Len() > 0 {
			continue
		}

		info := &TypeInfo{
			ID:     TypeID{PkgPath: pkg.PkgPath, Name: name},
			GoType: typeName.Type(),
			Pos:    pkg.Fset.Position(typeName.Pos()).String(),
		}

		switch ut := typeName.Type().Underlying().(type) {
		case *types.Struct:
			info.Kind = TypeKindStruct
			info.Decl = p.parse(d.types[name], info.ID.String(),
				directiveVocab, directiveExpose, directiveTerm, directiveTerms)
		case *types.Basic:
			if ut.Info()&(types.IsString|types.IsInteger) == 0 {
				continue
			}

			// enum candidate, confirmed by its constants
			info.StringBased = ut.Info()&types.IsString != 0
		default:
			continue
		}

		found = append(found, info)
		declPos[info] = typeName.Pos()
	}

	a.collectConstants(pkg, scope, d, p, found)

	sort.SliceStable(found, func(i, j int) bool {
		return declPos[found[i]] < declPos[found[j]]
	})

	for _, info := range found {
		if info.Kind == TypeKindUnknown {
			if len(info.Constants) == 0 {
				continue
			}

			info.Kind = TypeKindEnum
		}

		a.graph.Types[info.ID] = info
		pkgInfo.Types = append(pkgInfo.Types, info.ID)
	}

	a.logger.Debug().
		Str("package", pkg.PkgPath).
		Int("types", len(pkgInfo.Types)).
		Msg("analyzed package")

	a.graph.Packages[pkg.PkgPath] = pkgInfo
}

// collectConstants attaches exported constants to the enum candidates of their
// type, one constant per distinct value, in source order.
func (a *Analyzer) collectConstants(pkg *packages.Package, scope *types.Scope, d docs, p *directiveParser, found []*TypeInfo) {
	byName := make(map[string]*TypeInfo, len(found))
	for _, info := range found {
		if info.Kind == TypeKindUnknown {
			byName[info.ID.Name] = info
		}
	}

	var consts []*types.Const

	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok || !c.Exported() {
			continue
		}

		named, ok := c.Type().(*types.Named)
		if !ok || named.Obj().Pkg() != pkg.Types || byName[named.Obj().Name()] == nil {
			continue
		}

		consts = append(consts, c)
	}

	sort.Slice(consts, func(i, j int) bool { return consts[i].Pos() < consts[j].Pos() })

	seen := make(map[*TypeInfo]map[string]bool)

	for _, c := range consts {
		info := byName[c.Type().(*types.Named).Obj().Name()]

		if seen[info] == nil {
			seen[info] = make(map[string]bool)
		}

		key := c.Val().ExactString()
		if seen[info][key] {
			continue
		}

		seen[info][key] = true

		ci := ConstInfo{
			Name: c.Name(),
			Pos:  pkg.Fset.Position(c.Pos()).String(),
		}

		if info.StringBased {
			ci.Value = constant.StringVal(c.Val())
		} else {
			ci.Value = c.Name()
		}

		decl := p.parse(d.consts[c.Name()], info.ID.String()+"."+c.Name(), directiveExpose)
		ci.Expose = decl.Expose

		info.Constants = append(info.Constants, ci)
	}
}

// processFields classifies the exported fields of every struct of pkg.
func (a *Analyzer) processFields(pkg *packages.Package) {
	for _, id := range a.graph.Packages[pkg.PkgPath].Types {
		info := a.graph.Types[id]
		if info.Kind != TypeKindStruct {
			continue
		}

		st := info.GoType.Underlying().(*types.Struct)

		for i := 0; i < st.NumFields(); i++ {
			field := st.Field(i)
			if !field.Exported() {
				continue
			}

			fi := FieldInfo{
				Name:     field.Name(),
				Type:     types.TypeString(field.Type(), types.RelativeTo(pkg.Types)),
				Kind:     a.fieldKind(field.Type()),
				Tag:      reflect.StructTag(st.Tag(i)),
				Embedded: field.Embedded(),
				Index:    i,
				Pos:      pkg.Fset.Position(field.Pos()).String(),
				Elem:     elemID(field.Type()),
				Opaque:   opaqueStruct(field.Type()),
			}

			if fi.Ignored() {
				continue
			}

			if fi.Kind == FieldKindUnsupported {
				a.graph.Diagnostics.AddWarning("unsupported_field",
					fmt.Sprintf("field type %s cannot be serialized, field skipped", fi.Type),
					id.String(), fi.Name).At(fi.Pos)
			}

			info.Fields = append(info.Fields, fi)
		}
	}
}

func (a *Analyzer) fieldKind(t types.Type) FieldKind {
	switch tt := t.(type) {
	case *types.Pointer:
		if a.isEnum(tt.Elem()) {
			return FieldKindEnumPointer
		}

		return FieldKindPointer
	case *types.Named:
		if a.isEnum(tt) {
			return FieldKindEnum
		}
	}

	switch ut := t.Underlying().(type) {
	case *types.Slice:
		switch elem := ut.Elem().(type) {
		case *types.Basic:
			if elem.Kind() == types.Byte {
				return FieldKindUnsupported
			}
		case *types.Pointer:
			return FieldKindPointerSlice
		}

		return FieldKindSlice
	case *types.Map, *types.Chan, *types.Signature, *types.Array:
		return FieldKindUnsupported
	case *types.Pointer:
		return FieldKindPointer
	default:
		return FieldKindValue
	}
}

// elemID names the type a field refers to through pointers and slices.
func elemID(t types.Type) TypeID {
	for {
		switch tt := t.(type) {
		case *types.Pointer:
			t = tt.Elem()
		case *types.Slice:
			t = tt.Elem()
		case *types.Named:
			if tt.Obj().Pkg() == nil {
				return TypeID{}
			}

			return TypeID{PkgPath: tt.Obj().Pkg().Path(), Name: tt.Obj().Name()}
		default:
			return TypeID{}
		}
	}
}

// opaqueStruct reports whether the element type of t is a struct that is not
// a node. time.Time and types with a String method are written as strings.
func opaqueStruct(t types.Type) bool {
	for {
		if p, ok := t.(*types.Pointer); ok {
			t = p.Elem()
			continue
		}

		if s, ok := t.(*types.Slice); ok {
			t = s.Elem()
			continue
		}

		break
	}

	if _, ok := t.Underlying().(*types.Struct); !ok {
		return false
	}

	if named, ok := t.(*types.Named); ok {
		obj := named.Obj()
		if obj.Pkg() != nil && obj.Pkg().Path() == "time" && obj.Name() == "Time" {
			return false
		}
	}

	methods := types.NewMethodSet(t)
	has := func(name string) bool { return methods.Lookup(nil, name) != nil }

	if has("String") {
		return false
	}

	return !has("LDType") || !has("LDFields")
}

func (a *Analyzer) isEnum(t types.Type) bool {
	named, ok := t.(*types.Named)
	if !ok || named.Obj().Pkg() == nil {
		return false
	}

	info := a.graph.GetType(TypeID{PkgPath: named.Obj().Pkg().Path(), Name: named.Obj().Name()})

	return info != nil && info.Kind == TypeKindEnum
}

// mergeDeclarations adds the package directives of one file to dst.
func mergeDeclarations(dst *Declarations, src Declarations) {
	if src.Vocab != "" {
		dst.Vocab = src.Vocab
	}

	if src.Term != nil {
		dst.Term = src.Term
	}

	dst.Terms = append(dst.Terms, src.Terms...)
}

// GetStruct returns the TypeInfo for a named struct.
func (a *Analyzer) GetStruct(pkgPath, typeName string) (*TypeInfo, error) {
	id := TypeID{PkgPath: pkgPath, Name: typeName}
	info := a.graph.GetType(id)
	if info == nil {
		return nil, fmt.Errorf("type %s not found", id)
	}
	if info.Kind != TypeKindStruct {
		return nil, fmt.Errorf("type %s is not a struct (kind: %s)", id, info.Kind)
	}
	return info, nil
}
