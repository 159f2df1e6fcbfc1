// Package diagnostic provides structured errors, warnings and infos
// reported while mocks are synthesized.
//
// Diagnostics are plain data. A diagnostic may carry a corrective Edit
// describing source text a user could insert to fix the problem; nothing
// in this module applies edits.
package diagnostic
