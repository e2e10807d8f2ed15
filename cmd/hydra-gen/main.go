// Package main provides the CLI entrypoint for hydra-gen.
//
// hydra-gen reads the //jsonld: directives of Go packages and:
//   - generates static descriptor tables (LDType, LDFields, EnumName, EnumLabel)
//   - checks declarations and mixin files for configuration errors
package main

func main() {
	Execute()
}
