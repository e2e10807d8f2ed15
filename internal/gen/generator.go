package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"text/template"

	"hydra-jsonld/internal/analyze"
)

// DefaultFilename is the name of the file written next to each package.
const DefaultFilename = "jsonld_gen.go"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Filename is the name of the generated file in each package.
	Filename string
	// DebugUnformatted writes the raw template output next to the package when
	// formatting fails.
	DebugUnformatted bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Filename:         DefaultFilename,
		DebugUnformatted: true,
	}
}

// Generator turns analyzed packages into static descriptor tables.
type Generator struct {
	config GeneratorConfig
	graph  *analyze.TypeGraph
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.Filename == "" {
		config.Filename = DefaultFilename
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// PkgPath is the import path of the package the file belongs to.
	PkgPath string
	// Dir is the directory of the package sources.
	Dir string
	// Filename is the name of the file (e.g., "jsonld_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate generates one file per loaded package that declares structs or
// enums, ordered by package path.
func (g *Generator) Generate(graph *analyze.TypeGraph) ([]GeneratedFile, error) {
	g.graph = graph

	paths := make([]string, 0, len(graph.Packages))
	for path := range graph.Packages {
		paths = append(paths, path)
	}

	sort.Strings(paths)

	var files []GeneratedFile

	for _, path := range paths {
		file, err := g.GeneratePackage(path)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", path, err)
		}

		if file != nil {
			files = append(files, *file)
		}
	}

	return files, nil
}

// GeneratePackage generates the descriptor file of one package. It returns nil
// when the package has nothing to describe.
func (g *Generator) GeneratePackage(pkgPath string) (*GeneratedFile, error) {
	pkg := g.graph.Packages[pkgPath]
	if pkg == nil {
		return nil, fmt.Errorf("package %s not loaded", pkgPath)
	}

	data := g.buildFileData(pkg)
	if len(data.Nodes) == 0 && len(data.Enums) == 0 {
		return nil, nil
	}

	return g.render(pkg, fileTemplate, data)
}

func (g *Generator) render(pkg *analyze.PackageInfo, tmpl *template.Template, data *fileData) (*GeneratedFile, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	file := &GeneratedFile{
		PkgPath:  pkg.Path,
		Dir:      pkg.Dir,
		Filename: g.config.Filename,
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: keep the raw output around to debug the template.
		if g.config.DebugUnformatted {
			_ = writeDebugUnformatted(pkg.Dir, file.Filename, buf.Bytes())
		}

		file.Content = buf.Bytes()

		return file, fmt.Errorf("formatting code: %w", err)
	}

	file.Content = formatted

	return file, nil
}

var fileTemplate = template.Must(template.New("jsonld").Parse(`// Code generated by hydra-gen. DO NOT EDIT.

package {{.PackageName}}

import (
{{- range .StdImports}}
	"{{.}}"
{{- end}}
{{- if .StdImports}}
{{end}}
{{- range .Imports}}
	"{{.}}"
{{- end}}
)

var ldPackage = &jsonld.PackageDescriptor{
	Path: {{printf "%q" .PkgPath}},
{{- if .Annotations}}
	Annotations: {{.Annotations}},
{{- end}}
}
{{range .Nodes}}
var {{.Var}} = &jsonld.TypeDescriptor{
	ID:      jsonld.TypeID{PkgPath: {{printf "%q" $.PkgPath}}, Name: {{printf "%q" .Name}}},
	Package: ldPackage,
{{- if .Annotations}}
	Annotations: {{.Annotations}},
{{- end}}
}
{{end}}
{{- range .Nodes}}
// LDType implements jsonld.Node.
func (v {{.Name}}) LDType() *jsonld.TypeDescriptor {
	return {{.Var}}
}

// LDFields implements jsonld.Node.
func (v {{.Name}}) LDFields() []jsonld.Field {
{{- if .Fields}}
	return []jsonld.Field{
{{- range .Fields}}
		{{.}},
{{- end}}
	}
{{- else}}
	return nil
{{- end}}
}
{{end}}
{{- range .Enums}}
// EnumName implements jsonld.Enum.
func (v {{.Name}}) EnumName() string {
{{- if .StringBased}}
	return string(v)
{{- else}}
	switch v {
{{- range .Names}}
	case {{.Const}}:
		return {{printf "%q" .Value}}
{{- end}}
	}

	return strconv.FormatInt(int64(v), 10)
{{- end}}
}

// EnumLabel implements jsonld.Enum.
func (v {{.Name}}) EnumLabel() string {
{{- if .Labels}}
	switch v {
{{- range .Labels}}
	case {{.Const}}:
		return {{printf "%q" .Value}}
{{- end}}
	}
{{end}}
	return ""
}
{{end}}`))
