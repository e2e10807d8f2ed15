// Package diagnostic collects problems found while checking linked-data
// declarations: malformed //jsonld: directives, conflicting term declarations,
// mixins for unknown types and unsupported member types.
//
// Diagnostics are grouped by severity; errors make generation fail, warnings
// are reported and skipped.
package diagnostic
