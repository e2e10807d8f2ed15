// Package gen writes the static descriptor tables that let values of a Go
// package serialize as JSON-LD without reflection.
//
// For every analyzed package it emits one file holding:
//   - a jsonld.PackageDescriptor with the package directives
//   - a jsonld.TypeDescriptor per struct, with LDType and LDFields methods
//   - EnumName and EnumLabel methods for every enum type
//
// Generation uses text/template + go/format, so the output is deterministic and
// gofmt clean.
package gen
