// Package report renders the outcome of a run: per-declaration diagnostics
// and, on request, the synthesized values.
//
// Text output is styled with lipgloss when the writer is a terminal; JSON
// output is encoded with goccy/go-json.
package report
