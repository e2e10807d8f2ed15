package mixin

import (
	"errors"
	"fmt"
	"path"
	"sort"

	"hydra-jsonld/internal/analyze"
	"hydra-jsonld/internal/diagnostic"
	"hydra-jsonld/internal/match"
	"hydra-jsonld/jsonld"
)

// Validate checks a mixin file against the given type graph.
func Validate(f *File, graph *analyze.TypeGraph) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("mixin_is_nil", "mixin file is nil", "", "")
		return res
	}

	if graph == nil {
		res.AddError("graph_is_nil", "type graph is nil", "", "")
		return res
	}

	if f.Version != CurrentVersion {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported mixin file version %q", f.Version), "", "")
	}

	seen := make(map[jsonld.TypeID]string)

	for i := range f.Mixins {
		m := &f.Mixins[i]
		scope := fmt.Sprintf("mixins[%d]", i)

		if m.Type == "" {
			res.AddError("missing_type", "mixin has no type", scope, "")
			continue
		}

		scope = "mixin of " + m.Type

		info := ResolveTypeID(m.Type, graph)
		if info == nil {
			res.AddError("type_not_found",
				fmt.Sprintf("type %q not found or ambiguous%s", m.Type, match.Hint(m.Type, structRefs(graph))), scope, "")
			continue
		}

		if info.Kind != analyze.TypeKindStruct {
			res.AddError("not_a_struct", fmt.Sprintf("type %s is a %s, mixins apply to structs", info.ID, info.Kind), scope, "")
			continue
		}

		if prev, ok := seen[info.ID]; ok {
			res.AddError("duplicate_mixin", fmt.Sprintf("type %s already has a mixin (%s)", info.ID, prev), scope, "")
			continue
		}

		seen[info.ID] = m.Type

		if m.IsEmpty() {
			res.AddWarning("empty_mixin", "mixin overrides nothing", scope, "")
			continue
		}

		err := jsonld.ValidateAnnotations(scope, m.Annotations())

		var ce *jsonld.ConfigError
		if errors.As(err, &ce) {
			res.AddError(string(ce.Code), ce.Error(), scope, ce.Term)
		}
	}

	return res
}

// structRefs lists the short references of the loaded structs.
func structRefs(graph *analyze.TypeGraph) []string {
	var refs []string

	for id, info := range graph.Types {
		if info.Kind == analyze.TypeKindStruct {
			refs = append(refs, path.Base(id.PkgPath)+"."+id.Name)
		}
	}

	sort.Strings(refs)

	return refs
}
