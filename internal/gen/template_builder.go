package gen

import (
	"fmt"
	"strconv"
	"strings"

	"hydra-jsonld/internal/analyze"
	"hydra-jsonld/jsonld"
)

const jsonldImport = "hydra-jsonld/jsonld"

// fileData holds all data needed for the descriptor template.
type fileData struct {
	PackageName string
	PkgPath     string
	// StdImports are standard library imports, grouped before Imports.
	StdImports  []string
	Imports     []string
	// Annotations is the package annotations literal, "" when none.
	Annotations string
	Nodes       []nodeData
	Enums       []enumData
}

// nodeData describes one struct type.
type nodeData struct {
	Name        string
	Var         string
	Annotations string
	// Fields are rendered jsonld.Field literals.
	Fields []string
}

// enumData describes one enum type.
type enumData struct {
	Name        string
	StringBased bool
	Names       []enumCase
	Labels      []enumCase
}

type enumCase struct {
	Const string
	Value string
}

// buildFileData constructs the template data of a package.
func (g *Generator) buildFileData(pkg *analyze.PackageInfo) *fileData {
	data := &fileData{
		PackageName: pkg.Name,
		PkgPath:     pkg.Path,
		Imports:     []string{jsonldImport},
		Annotations: annotationsLiteral(pkg.Decl.Annotations()),
	}

	needStrconv := false

	for _, info := range g.graph.PackageTypes(pkg.Path) {
		switch info.Kind {
		case analyze.TypeKindStruct:
			data.Nodes = append(data.Nodes, g.buildNodeData(info))
		case analyze.TypeKindEnum:
			e := buildEnumData(info)
			if !e.StringBased {
				needStrconv = true
			}

			data.Enums = append(data.Enums, e)
		}
	}

	if needStrconv {
		data.StdImports = append(data.StdImports, "strconv")
	}

	return data
}

func (g *Generator) buildNodeData(info *analyze.TypeInfo) nodeData {
	n := nodeData{
		Name:        info.ID.Name,
		Var:         descriptorVar(info.ID.Name),
		Annotations: annotationsLiteral(info.Decl.Annotations()),
	}

	for i := range info.Fields {
		f := &info.Fields[i]
		if f.Kind == analyze.FieldKindUnsupported {
			continue
		}

		n.Fields = append(n.Fields, g.fieldLiteral(info, f))
	}

	return n
}

// fieldLiteral renders the jsonld.Field of one struct field.
func (g *Generator) fieldLiteral(owner *analyze.TypeInfo, f *analyze.FieldInfo) string {
	parts := []string{
		"Name: " + strconv.Quote(f.JSONName()),
	}

	if label := f.Label(); label != "" {
		parts = append(parts, "Label: "+strconv.Quote(label))
	}

	parts = append(parts, "Value: "+valueExpr(f))

	if f.Kind.IsEnum() {
		parts = append(parts, "Enum: true")
	}

	if f.Inline() {
		if g.inlinable(f) {
			parts = append(parts, "Inline: true")
		} else if !f.Embedded {
			g.graph.Diagnostics.AddWarning("inline_non_node",
				fmt.Sprintf("field type %s is not a struct of a loaded package, written as a member", f.Type),
				owner.ID.String(), f.Name).At(f.Pos)
		}
	}

	if f.OmitEmpty() {
		parts = append(parts, "OmitEmpty: true")
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

// inlinable reports whether the field holds a single struct the generator
// describes.
func (g *Generator) inlinable(f *analyze.FieldInfo) bool {
	if f.Kind != analyze.FieldKindValue && f.Kind != analyze.FieldKindPointer {
		return false
	}

	target := g.graph.GetType(f.Elem)

	return target != nil && target.Kind == analyze.TypeKindStruct
}

func valueExpr(f *analyze.FieldInfo) string {
	ref := "v." + f.Name

	switch f.Kind {
	case analyze.FieldKindPointer, analyze.FieldKindEnumPointer:
		return "jsonld.Deref(" + ref + ")"
	case analyze.FieldKindSlice:
		return "jsonld.Slice(" + ref + ")"
	case analyze.FieldKindPointerSlice:
		return "jsonld.Pointers(" + ref + ")"
	default:
		return ref
	}
}

func buildEnumData(info *analyze.TypeInfo) enumData {
	e := enumData{
		Name:        info.ID.Name,
		StringBased: info.StringBased,
	}

	for _, c := range info.Constants {
		e.Names = append(e.Names, enumCase{Const: c.Name, Value: c.Value})

		if c.Expose != "" {
			e.Labels = append(e.Labels, enumCase{Const: c.Name, Value: c.Expose})
		}
	}

	return e
}

// descriptorVar names the descriptor variable of a type: Product -> ldProductType.
func descriptorVar(name string) string {
	return "ld" + name + "Type"
}

// annotationsLiteral renders a as a jsonld.Annotations composite literal, or ""
// when nothing is declared.
func annotationsLiteral(a jsonld.Annotations) string {
	var parts []string

	if a.Vocab != "" {
		parts = append(parts, "Vocab: "+strconv.Quote(a.Vocab))
	}

	if a.Expose != "" {
		parts = append(parts, "Expose: "+strconv.Quote(a.Expose))
	}

	if a.Term != nil {
		parts = append(parts, "Term: &"+termLiteral(*a.Term))
	}

	if len(a.Terms) > 0 {
		terms := make([]string, len(a.Terms))
		for i, t := range a.Terms {
			terms[i] = "\t\t\t" + termFields(t) + ",\n"
		}

		parts = append(parts, "Terms: []jsonld.TermDecl{\n"+strings.Join(terms, "")+"\t\t}")
	}

	if len(parts) == 0 {
		return ""
	}

	return "jsonld.Annotations{\n\t\t" + strings.Join(parts, ",\n\t\t") + ",\n\t}"
}

func termLiteral(t jsonld.TermDecl) string {
	return "jsonld.TermDecl" + termFields(t)
}

// termFields renders the braces of a TermDecl literal, the element form used
// inside a []jsonld.TermDecl.
func termFields(t jsonld.TermDecl) string {
	return fmt.Sprintf("{Define: %q, As: %q}", t.Define, t.As)
}
