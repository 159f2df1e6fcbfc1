// Package match provides identifier normalization and edit distance used to
// suggest field names for misspelled overrides.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known names against an unknown one
package match
