package mixin

import (
	"strings"

	"hydra-jsonld/internal/analyze"
)

// ResolveTypeID resolves a type reference like:
//   - "hydra-jsonld/examples/store.Offer" (full)
//   - "store.Offer" (short, matched on the import path suffix)
//   - "Offer" (name only).
//
// Short and name-only references must match exactly one loaded type.
func ResolveTypeID(ref string, graph *analyze.TypeGraph) *analyze.TypeInfo {
	if graph == nil || ref == "" {
		return nil
	}

	pkgStr, name := splitTypeRef(ref)
	if name == "" {
		return nil
	}

	if pkgStr != "" {
		if t := graph.GetType(analyze.TypeID{PkgPath: pkgStr, Name: name}); t != nil {
			return t
		}
	}

	var found *analyze.TypeInfo

	for id, t := range graph.Types {
		if id.Name != name {
			continue
		}

		if pkgStr != "" && id.PkgPath != pkgStr && !strings.HasSuffix(id.PkgPath, "/"+pkgStr) {
			continue
		}

		if found != nil {
			// ambiguous
			return nil
		}

		found = t
	}

	return found
}

// splitTypeRef splits "path/pkg.Name" at its last dot.
func splitTypeRef(ref string) (pkgPath, name string) {
	lastDot := strings.LastIndex(ref, ".")
	if lastDot < 0 {
		return "", ref
	}

	return ref[:lastDot], ref[lastDot+1:]
}

// typeIDOf parses a fully qualified reference without a type graph.
func typeIDOf(ref string) (analyze.TypeID, bool) {
	pkgPath, name := splitTypeRef(ref)
	if pkgPath == "" || name == "" {
		return analyze.TypeID{}, false
	}

	return analyze.TypeID{PkgPath: pkgPath, Name: name}, true
}
