// Package synth turns resolved declarations into Go value-construction
// expressions.
//
// The Engine walks a model.TypeDescriptor and produces an Expr for it:
// catalog leaves come from package primitive, composites are decomposed
// recursively and named types are delegated to peer declarations through
// the Peers capability. Synthesizer wraps the engine with validation,
// resolution and replication:
//
//   - records produce one instance for the single artifact and N
//     independent instances for the batch
//   - enumerations pick a random case for the single artifact and cycle
//     through their cases in declaration order for the batch
//
// Expressions are rendered with Render and carry the imports and helper
// functions they need.
package synth
