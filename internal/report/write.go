package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	json "github.com/goccy/go-json"

	"mock-generator/internal/diagnostic"
)

// Options control text output.
type Options struct {
	// Verbose includes info diagnostics.
	Verbose bool
	// Values prints the synthesized expressions.
	Values bool
}

// Write renders the report in the given format.
func Write(w io.Writer, r *Report, format Format, opts Options) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, r)
	case FormatText, "":
		return WriteText(w, r, opts)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	return nil
}

type styles struct {
	success, failure, label lipgloss.Style
	severity                map[diagnostic.DiagnosticSeverity]lipgloss.Style
}

func newStyles(w io.Writer) styles {
	re := lipgloss.NewRenderer(w)

	return styles{
		success: re.NewStyle().Foreground(lipgloss.Color("#27ca3f")),
		failure: re.NewStyle().Foreground(lipgloss.Color("#ff5f56")),
		label:   re.NewStyle().Foreground(lipgloss.Color("#bababa")),
		severity: map[diagnostic.DiagnosticSeverity]lipgloss.Style{
			diagnostic.DiagnosticError:   re.NewStyle().Foreground(lipgloss.Color("#ff5f56")).Bold(true),
			diagnostic.DiagnosticWarning: re.NewStyle().Foreground(lipgloss.Color("#f9ca24")),
			diagnostic.DiagnosticInfo:    re.NewStyle().Foreground(lipgloss.Color("#bababa")),
		},
	}
}

// WriteText writes a styled, human readable report.
func WriteText(w io.Writer, r *Report, opts Options) error {
	st := newStyles(w)

	var sb strings.Builder

	for _, t := range r.Types {
		mark := st.success.Render("✓")
		if !t.OK {
			mark = st.failure.Render("✗")
		}

		sb.WriteString(mark + " " + t.Type)

		if t.Position != "" {
			sb.WriteString(" " + st.label.Render("("+t.Position+")"))
		}

		sb.WriteByte('\n')

		for _, d := range t.Diagnostics {
			if d.Severity == diagnostic.DiagnosticInfo && !opts.Verbose {
				continue
			}

			writeDiagnostic(&sb, st, d)
		}

		if opts.Values && t.OK {
			sb.WriteString("    " + st.label.Render("single:") + " " + t.Single + "\n")

			for i, v := range t.Batch {
				fmt.Fprintf(&sb, "    %s %s\n", st.label.Render(fmt.Sprintf("batch[%d]:", i)), v)
			}
		}
	}

	for _, f := range r.Files {
		sb.WriteString(st.success.Render("wrote") + " " + f + "\n")
	}

	s := r.Summary
	fmt.Fprintf(&sb, "%s, %d generated, %s, %s\n",
		plural(s.Types, "type"), s.Generated, plural(s.Errors, "error"), plural(s.Warnings, "warning"))

	_, err := io.WriteString(w, sb.String())

	return err
}

func writeDiagnostic(sb *strings.Builder, st styles, d diagnostic.Diagnostic) {
	sev := st.severity[d.Severity].Render(fmt.Sprintf("%-7s", d.Severity))
	sb.WriteString("    " + sev + " " + st.label.Render(d.Code))

	if d.FieldPath != "" {
		sb.WriteString(" " + d.FieldPath)
	}

	sb.WriteString(": " + d.Message + "\n")

	if len(d.Suggestions) > 0 {
		sb.WriteString("            did you mean " + strings.Join(d.Suggestions, ", ") + "?\n")
	}

	if d.Edit != nil {
		sb.WriteString("            fix: " + d.Edit.Description)

		if d.Edit.After != "" {
			sb.WriteString(" after " + d.Edit.After)
		}

		sb.WriteByte('\n')

		for _, line := range strings.Split(strings.TrimRight(d.Edit.Insert, "\n"), "\n") {
			sb.WriteString("              " + line + "\n")
		}
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}

	return fmt.Sprintf("%d %ss", n, word)
}
