// Package analyze provides package loading and declaration extraction.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to find type
// declarations marked with a //mockgen:generate directive and to describe
// them as model.Declaration values:
//   - structs become records, with `mock:"..."` tag overrides and New<Type>
//     constructors
//   - named basic types become const enums whose cases are their constants
//   - interfaces become sealed enums whose cases are the implementing structs
//   - anything else, generic types included, is not applicable
//
// ParseType classifies type expressions written as text, for declarations
// read from configuration.
package analyze
