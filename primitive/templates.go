package primitive

import (
	"text/template"
)

// HelperURL is the generated helper that parses a locator and panics on error.
const HelperURL = "mockURL"

type leaf struct {
	code string
	// addressable marks composite literals whose pointer form is "&" + code.
	addressable bool
	// ptr renders the pointer form of leaves that are not addressable.
	ptr     string
	imports []string
	helper  string
}

var (
	leaves    map[KindEnum]leaf
	templates map[KindEnum]*template.Template
	ptrs      map[KindEnum]*template.Template
)

func init() {
	leaves = map[KindEnum]leaf{
		KindDecimal: {
			code:    "*big.NewFloat({{.value}})",
			ptr:     "big.NewFloat({{.value}})",
			imports: []string{"math/big"},
		},
		KindBytes: {code: "[]byte({{.value}})"},
		KindTime: {
			code:    "time.Unix({{.value}}, 0).UTC()",
			imports: []string{"time"},
		},
		KindUUID: {
			code:    "uuid.MustParse({{.value}})",
			imports: []string{"github.com/google/uuid"},
		},
		KindIdentity: {
			code:    "unique.Make({{.value}})",
			imports: []string{"unique"},
		},
		KindPoint: {
			code:        "image.Point{ {{- if not .zero}}X: {{.x}}, Y: {{.y}}{{end -}} }",
			addressable: true,
			imports:     []string{"image"},
		},
		KindRectangle: {
			code:        "image.Rectangle{ {{- if not .zero}}Min: image.Pt({{.x0}}, {{.y0}}), Max: image.Pt({{.x1}}, {{.y1}}){{end -}} }",
			addressable: true,
			imports:     []string{"image"},
		},
		KindVec2: {
			code:        "f64.Vec2{ {{- .elems -}} }",
			addressable: true,
			imports:     []string{"golang.org/x/image/math/f64"},
		},
		KindVec3: {
			code:        "f64.Vec3{ {{- .elems -}} }",
			addressable: true,
			imports:     []string{"golang.org/x/image/math/f64"},
		},
		KindColor: {
			code:        "color.RGBA{R: {{.r}}, G: {{.g}}, B: {{.b}}, A: {{.a}}}",
			addressable: true,
			imports:     []string{"image/color"},
		},
		KindURL: {
			code:   "*" + HelperURL + "({{.value}})",
			ptr:    HelperURL + "({{.value}})",
			helper: HelperURL,
		},
	}

	// numbers, text, booleans and durations are plain literals
	for kind := KindEnum(1); int(kind) < KindTotal; kind++ {
		if _, ok := leaves[kind]; !ok {
			leaves[kind] = leaf{code: "{{.value}}"}
		}
	}

	templates = make(map[KindEnum]*template.Template, len(leaves))
	ptrs = make(map[KindEnum]*template.Template)

	for kind, l := range leaves {
		templates[kind] = template.Must(template.New(kind.String()).Parse(l.code))

		if l.ptr != "" {
			ptrs[kind] = template.Must(template.New(kind.String() + "Ptr").Parse(l.ptr))
		}
	}
}
