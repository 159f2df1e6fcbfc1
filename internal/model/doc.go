// Package model holds the data model shared by every stage of mock synthesis.
//
// Key types:
//   - TypeDescriptor: canonical, immutable description of a field's type
//   - LiteralOverride: a caller-supplied literal pinned to one field
//   - Declaration: a record or enumeration shape with members, constructors and cases
//   - FieldSpec: one resolved field, ready for synthesis
//   - Strategy, Request: the top-level synthesis request
package model
