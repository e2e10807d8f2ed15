// Package jsonld derives a JSON-LD envelope around a Go object graph while it is
// serialized.
//
// For every node of the graph the serializer decides which vocabulary the node
// belongs to, which terms must be declared, what its @type is, and whether a
// @context block has to be written at that position or whether the enclosing
// context already covers it.
//
// Nodes describe themselves through static descriptor tables instead of runtime
// reflection: a value implements [Node] by returning its [TypeDescriptor] and its
// ordered [Field] values. The hydra-gen command generates these methods from
// //jsonld: directives, but they can also be written by hand.
//
// # Precedence
//
// Vocabulary: mixin > type > package > http://schema.org/.
//
// Type label: mixin expose > type expose > Go type name.
//
// Terms: package, then type, then mixin terms (later scopes overwrite earlier
// ones), then terms derived from the node's fields. Field derived terms only
// fill gaps unless options.FeatureMemberTermsOverride is set.
//
// # Context emission
//
// A vocabulary stack is allocated per top-level Serialize call. On entering a
// node its vocabulary is pushed; a @context is written when the vocabulary
// differs from the enclosing one (with @vocab) or when the node declares terms
// (terms only, @vocab is not repeated). Leaving a node pops the stack, also when
// writing the node failed.
package jsonld
