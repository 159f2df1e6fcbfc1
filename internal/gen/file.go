package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"maps"
	"path"
	"slices"
	"text/template"

	"mock-generator/internal/analyze"
	"mock-generator/internal/synth"
)

// fileData holds all data needed for the mock file template.
type fileData struct {
	PackageName string
	Imports     []importSpec
	Mocks       []mockData
	Helpers     []string
}

type importSpec struct {
	Alias string
	Path  string
}

// mockData is the pair of entry points of one declaration.
type mockData struct {
	Type     string
	Position string
	Single   string
	Batch    string
	Value    string
	Values   []string
}

func (g *Generator) generatePackage(pkg *analyze.PackageInfo, results []*synth.Result) (*GeneratedFile, error) {
	data := &fileData{PackageName: pkg.Name}

	imports := make(map[string]string)
	helpers := make(map[string]struct{})

	for _, r := range results {
		single, batch := synth.EntryPoints(r.Decl.Name)

		m := mockData{
			Type:     r.Decl.Name,
			Position: r.Decl.Position,
			Single:   single,
			Batch:    batch,
			Value:    synth.Render(r.Single),
		}

		for _, e := range r.Batch {
			m.Values = append(m.Values, synth.Render(e))
		}

		data.Mocks = append(data.Mocks, m)

		for p, name := range r.Imports {
			if p != pkg.Path {
				imports[p] = name
			}
		}

		for _, h := range r.Helpers {
			helpers[h] = struct{}{}
		}
	}

	for _, name := range slices.Sorted(maps.Keys(helpers)) {
		h, ok := synth.LookupHelper(name)
		if !ok {
			return nil, fmt.Errorf("unknown helper %q", name)
		}

		for _, p := range h.Imports {
			if _, seen := imports[p]; !seen {
				imports[p] = path.Base(p)
			}
		}

		data.Helpers = append(data.Helpers, h.Source)
	}

	for _, p := range slices.Sorted(maps.Keys(imports)) {
		spec := importSpec{Path: p}
		if name := imports[p]; name != path.Base(p) {
			spec.Alias = name
		}

		data.Imports = append(data.Imports, spec)
	}

	var buf bytes.Buffer
	if err := mockTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	file := &GeneratedFile{Dir: pkg.Dir, PkgPath: pkg.Path, Filename: g.config.Filename}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if err := writeDebugUnformatted(pkg.Dir, file.Filename, buf.Bytes()); err != nil {
			g.logger.Warn("writing unformatted sidecar failed", "error", err)
		}

		return nil, fmt.Errorf("formatting code: %w", err)
	}

	file.Content = formatted

	return file, nil
}

var mockTemplate = template.Must(template.New("mocks").Parse(`// Code generated by mock-generator. DO NOT EDIT.

package {{.PackageName}}
{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}
{{range .Mocks}}
// {{.Single}} returns a mock {{.Type}}{{if .Position}} ({{.Position}}){{end}}.
func {{.Single}}() {{.Type}} {
	return {{.Value}}
}

// {{.Batch}} returns {{len .Values}} mock {{.Type}} values.
func {{.Batch}}() []{{.Type}} {
	return []{{.Type}}{
{{range .Values}}		{{.}},
{{end}}	}
}
{{end}}
{{range .Helpers}}
{{.}}
{{end}}`))
