package analyze

import (
	"errors"
	"fmt"
	"sort"

	"hydra-jsonld/internal/diagnostic"
	"hydra-jsonld/jsonld"
)

// Validate checks the declarations of every loaded package and struct, adding
// problems to the graph diagnostics, which it returns.
//
// Term declaration errors are the ones the serializer would fail on at run
// time; member problems are reported as warnings.
func Validate(graph *TypeGraph) *diagnostic.Diagnostics {
	diags := graph.Diagnostics

	paths := make([]string, 0, len(graph.Packages))
	for path := range graph.Packages {
		paths = append(paths, path)
	}

	sort.Strings(paths)

	for _, path := range paths {
		pkg := graph.Packages[path]

		ann := pkg.Decl.Annotations()
		addConfigError(diags, jsonld.ValidateAnnotations(pkg.Path, &ann), pkg.Path, "")

		for _, info := range graph.PackageTypes(path) {
			if info.Kind != TypeKindStruct {
				continue
			}

			ann := info.Decl.Annotations()
			addConfigError(diags, jsonld.ValidateAnnotations(info.ID.String(), &ann), info.ID.String(), info.Pos)

			validateMembers(diags, graph, info)
		}
	}

	return diags
}

func addConfigError(diags *diagnostic.Diagnostics, err error, scope, pos string) {
	if err == nil {
		return
	}

	var ce *jsonld.ConfigError
	if !errors.As(err, &ce) {
		diags.AddError("invalid_declaration", err.Error(), scope, "").At(pos)
		return
	}

	diags.AddError(string(ce.Code), ce.Error(), scope, ce.Term).At(pos)
}

func validateMembers(diags *diagnostic.Diagnostics, graph *TypeGraph, info *TypeInfo) {
	seen := make(map[string]string)

	for _, f := range info.Fields {
		if f.Kind == FieldKindUnsupported {
			continue
		}

		// structs of loaded packages get their methods from the generator
		if f.Opaque {
			if target := graph.GetType(f.Elem); target == nil || target.Kind != TypeKindStruct {
				diags.AddWarning("not_a_node",
					fmt.Sprintf("field type %s does not implement jsonld.Node, generate its package too", f.Type),
					info.ID.String(), f.Name).At(f.Pos)
			}
		}

		if f.Inline() {
			if f.Label() != "" {
				diags.AddWarning("label_ignored", "inline members have no label of their own",
					info.ID.String(), f.Name).At(f.Pos)
			}

			continue
		}

		name := f.JSONName()
		if other, ok := seen[name]; ok {
			diags.AddWarning("duplicate_member",
				fmt.Sprintf("member %q is also written by field %s", name, other),
				info.ID.String(), f.Name).At(f.Pos)

			continue
		}

		seen[name] = f.Name
	}
}
