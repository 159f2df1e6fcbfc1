package report

import (
	"fmt"
	"strings"

	"mock-generator/internal/diagnostic"
	"mock-generator/internal/synth"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat parses a format name; empty means FormatText.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text or json)", s)
	}
}

// Report is the outcome of a run.
type Report struct {
	Types   []TypeReport `json:"types"`
	Files   []string     `json:"files,omitempty"`
	Summary Summary      `json:"summary"`
}

// TypeReport is the outcome of one declaration.
type TypeReport struct {
	Type     string `json:"type"`
	Position string `json:"position,omitempty"`
	OK       bool   `json:"ok"`
	// Single and Batch are the rendered artifacts.
	Single      string                  `json:"single,omitempty"`
	Batch       []string                `json:"batch,omitempty"`
	Diagnostics []diagnostic.Diagnostic `json:"diagnostics,omitempty"`
}

// Summary counts declarations and diagnostics.
type Summary struct {
	Types     int `json:"types"`
	Generated int `json:"generated"`
	Errors    int `json:"errors"`
	Warnings  int `json:"warnings"`
	Infos     int `json:"infos"`
}

// New builds a report from synthesis results and the written file paths.
func New(results []*synth.Result, files []string) *Report {
	r := &Report{Files: files, Types: make([]TypeReport, 0, len(results))}

	for _, res := range results {
		tr := TypeReport{
			Type:        typeName(res),
			Position:    res.Decl.Position,
			OK:          res.OK(),
			Diagnostics: res.Diagnostics.All(),
		}

		if res.OK() {
			tr.Single = synth.Render(res.Single)
			for _, e := range res.Batch {
				tr.Batch = append(tr.Batch, synth.Render(e))
			}

			r.Summary.Generated++
		}

		r.Summary.Errors += len(res.Diagnostics.Errors)
		r.Summary.Warnings += len(res.Diagnostics.Warnings)
		r.Summary.Infos += len(res.Diagnostics.Infos)
		r.Types = append(r.Types, tr)
	}

	r.Summary.Types = len(results)

	return r
}

// HasErrors reports whether any declaration produced an error diagnostic.
func (r *Report) HasErrors() bool {
	return r.Summary.Errors > 0
}

func typeName(res *synth.Result) string {
	if res.Decl.PkgName == "" {
		return res.Decl.Name
	}

	return res.Decl.PkgName + "." + res.Decl.Name
}
