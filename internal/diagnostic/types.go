package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"mock-generator/internal/common"
)

// Diagnostics holds all diagnostic information from one synthesis request.
type Diagnostics struct {
	Errors   []Diagnostic `json:"errors,omitempty"`
	Warnings []Diagnostic `json:"warnings,omitempty"`
	Infos    []Diagnostic `json:"infos,omitempty"`
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity `json:"severity"`
	// Code is a unique identifier for this type of diagnostic.
	Code string `json:"code"`
	// Message is the human-readable description.
	Message string `json:"message"`
	// TypeName identifies the declaration this relates to (if any).
	TypeName string `json:"type,omitempty"`
	// FieldPath identifies which field this relates to (if any).
	FieldPath string `json:"field,omitempty"`
	// Suggestions are potential fixes or alternatives.
	Suggestions []string `json:"suggestions,omitempty"`
	// Edit is a corrective source edit (if any).
	Edit *Edit `json:"edit,omitempty"`
}

// Edit describes source text that would fix a diagnostic.
type Edit struct {
	// Description is a short imperative summary, e.g. "add a placeholder case".
	Description string `json:"description"`
	// After is the position the text goes after, "file:line" when known.
	After string `json:"after,omitempty"`
	// Insert is the text to insert.
	Insert string `json:"insert"`
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// MarshalText encodes the severity by name.
func (s DiagnosticSeverity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity name.
func (s *DiagnosticSeverity) UnmarshalText(text []byte) error {
	for _, sev := range []DiagnosticSeverity{DiagnosticInfo, DiagnosticWarning, DiagnosticError} {
		if sev.String() == string(text) {
			*s = sev
			return nil
		}
	}

	return fmt.Errorf("unknown severity %q", text)
}

// Add appends a diagnostic to the list matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, typeName, fieldPath string) {
	d.Add(Diagnostic{
		Severity:  DiagnosticError,
		Code:      code,
		Message:   message,
		TypeName:  typeName,
		FieldPath: fieldPath,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, typeName, fieldPath string) {
	d.Add(Diagnostic{
		Severity:  DiagnosticWarning,
		Code:      code,
		Message:   message,
		TypeName:  typeName,
		FieldPath: fieldPath,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, typeName, fieldPath string) {
	d.Add(Diagnostic{
		Severity:  DiagnosticInfo,
		Code:      code,
		Message:   message,
		TypeName:  typeName,
		FieldPath: fieldPath,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// HasCode reports whether any diagnostic carries the given code.
func (d Diagnostics) HasCode(code string) bool {
	for _, diag := range d.All() {
		if diag.Code == code {
			return true
		}
	}

	return false
}

// Count returns the number of diagnostics of all severities.
func (d Diagnostics) Count() int {
	return len(d.Errors) + len(d.Warnings) + len(d.Infos)
}

// All returns every diagnostic, errors first.
func (d Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, d.Count())
	out = append(out, d.Errors...)
	out = append(out, d.Warnings...)

	return append(out, d.Infos...)
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.TypeName != "" {
		prefix = append(prefix, "["+d.TypeName+"]")
	}

	if d.FieldPath != "" {
		prefix = append(prefix, d.FieldPath)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
