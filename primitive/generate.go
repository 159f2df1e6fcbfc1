package primitive

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
	"text/template"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"mock-generator/internal/model"
)

// Value is the rendered expression of one catalog leaf.
type Value struct {
	// Code is an expression of the leaf type.
	Code string
	// PtrCode is an expression of the pointer type, "" when the leaf has no
	// natural pointer form.
	PtrCode string
	// Imports are the import paths Code and PtrCode refer to.
	Imports []string
	// Helper names a generated helper function the code calls, if any.
	Helper string
}

// Default renders the fixed value of a leaf. The counter numbers identity tokens.
func Default(kind KindEnum, counter *model.Counter) Value {
	data := map[string]any{"value": "0", "zero": true}

	switch kind {
	case KindBool:
		data["value"] = "false"
	case KindString, KindBytes:
		data["value"] = strconv.Quote(DefaultString)
	case KindRune:
		data["value"] = "'a'"
	case KindUUID:
		data["value"] = strconv.Quote(DefaultUUID)
	case KindIdentity:
		data["value"] = strconv.Quote("mock-" + strconv.Itoa(counter.Next()))
	case KindVec2:
		data["elems"] = ""
	case KindVec3:
		data["elems"] = ""
	case KindColor:
		setColor(data, color.RGBA{A: 255})
	case KindURL:
		data["value"] = strconv.Quote(DefaultURL)
	}

	return render(kind, data)
}

// Random renders a value drawn from rnd within the documented bounds of the leaf.
func Random(kind KindEnum, rnd RandomSource) Value {
	data := map[string]any{"zero": false}

	switch {
	case kind.IsInteger():
		lo, hi := kind.IntRange()
		data["value"] = strconv.FormatInt(lo+rnd.Int64N(hi-lo+1), 10)

	case kind.IsFloat():
		data["value"] = randomFloat(kind, rnd)

	default:
		switch kind {
		case KindBool:
			data["value"] = strconv.FormatBool(rnd.IntN(2) == 1)
		case KindString, KindBytes, KindIdentity:
			data["value"] = strconv.Quote(pick(rnd, Strings))
		case KindRune:
			const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
			data["value"] = strconv.QuoteRune(rune(letters[rnd.IntN(len(letters))]))
		case KindTime:
			data["value"] = strconv.FormatInt(rnd.Int64N(2_000_000_001), 10)
		case KindDuration:
			ms := rnd.Int64N(RandomCeiling + 1)
			data["value"] = strconv.FormatInt(int64(time.Duration(ms)*time.Millisecond), 10)
		case KindUUID:
			id, err := uuid.NewRandomFromReader(NewReader(rnd))
			if err != nil {
				id = uuid.MustParse(DefaultUUID)
			}
			data["value"] = strconv.Quote(id.String())
		case KindPoint:
			data["x"], data["y"] = rnd.IntN(1001), rnd.IntN(1001)
		case KindRectangle:
			x0, y0 := rnd.IntN(500), rnd.IntN(500)
			data["x0"], data["y0"] = x0, y0
			data["x1"], data["y1"] = x0+1+rnd.IntN(500), y0+1+rnd.IntN(500)
		case KindVec2:
			data["elems"] = randomElems(rnd, 2)
		case KindVec3:
			data["elems"] = randomElems(rnd, 3)
		case KindColor:
			setColor(data, pick(rnd, Colors).RGBA)
		case KindURL:
			data["value"] = strconv.Quote(pick(rnd, URLs))
		}
	}

	return render(kind, data)
}

// Override renders an override accepted by Check for the leaf.
func Override(kind KindEnum, lit *model.LiteralOverride) Value {
	data := map[string]any{"value": lit.Text, "zero": false}

	if lit.Kind == model.LiteralString {
		switch kind {
		case KindRune:
			r, _ := utf8.DecodeRuneInString(lit.Text)
			data["value"] = strconv.QuoteRune(r)
		case KindDuration:
			d, _ := time.ParseDuration(lit.Text)
			data["value"] = strconv.FormatInt(int64(d), 10)
		case KindColor:
			c, _ := colorByName(lit.Text)
			setColor(data, c)
		default:
			data["value"] = strconv.Quote(lit.Text)
		}
	}

	return render(kind, data)
}

func render(kind KindEnum, data map[string]any) Value {
	l, ok := leaves[kind]
	if !ok {
		panic("not a catalog leaf: " + kind.String())
	}

	v := Value{
		Code:    execute(templates[kind], data),
		Imports: l.imports,
		Helper:  l.helper,
	}

	switch {
	case l.addressable:
		v.PtrCode = "&" + v.Code
	case ptrs[kind] != nil:
		v.PtrCode = execute(ptrs[kind], data)
	}

	return v
}

func execute(tmpl *template.Template, data map[string]any) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(err)
	}

	return buf.String()
}

func randomFloat(kind KindEnum, rnd RandomSource) string {
	lo, hi := kind.FloatRange()
	v := lo + rnd.Float64()*(hi-lo)

	if kind == KindFloat32 {
		f := max(float32(v), math.SmallestNonzeroFloat32)
		return strconv.FormatFloat(float64(f), 'g', -1, 32)
	}

	return strconv.FormatFloat(max(v, lo), 'g', -1, 64)
}

func randomElems(rnd RandomSource, n int) string {
	elems := make([]string, n)
	for i := range elems {
		elems[i] = strconv.FormatFloat(math.Round(rnd.Float64()*100000)/100, 'f', -1, 64)
	}

	return strings.Join(elems, ", ")
}

func setColor(data map[string]any, c color.RGBA) {
	data["r"], data["g"], data["b"], data["a"] = c.R, c.G, c.B, c.A
}

func pick[T any](rnd RandomSource, pool []T) T {
	return pool[rnd.IntN(len(pool))]
}

// String returns the value in a form used by tests and debug dumps.
func (v Value) String() string {
	return fmt.Sprintf("%s (ptr=%q, imports=%v)", v.Code, v.PtrCode, v.Imports)
}
