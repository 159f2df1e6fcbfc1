package synth

import (
	"strings"
)

// Expr is a value-construction expression. The set of implementations is closed.
type Expr interface {
	expr()
}

// Lit is a literal or leaf expression rendered verbatim.
type Lit struct {
	Code string
	// PtrCode is the pointer form of Code, "" when there is none.
	PtrCode string
}

// Ident references a named value, e.g. an enum constant.
type Ident struct {
	Name string
}

// Nil is the absence sentinel.
type Nil struct{}

// Call invokes a function: a peer entry point, constructor or helper.
type Call struct {
	Func     string
	TypeArgs []string
	Args     []Expr
	// Deref dereferences the result, for constructors returning *T.
	Deref bool
}

// Field is one keyed element of a Struct.
type Field struct {
	Name  string
	Value Expr
}

// Struct is a keyed composite literal of a struct type.
type Struct struct {
	Type   string
	Fields []Field
}

// Slice is a composite literal of a slice or array type.
type Slice struct {
	Type  string
	Elems []Expr
}

// Entry is one key/value pair of a Map.
type Entry struct {
	Key, Value Expr
}

// Map is a composite literal of a map type.
type Map struct {
	Type    string
	Entries []Entry
}

// Func is a no-op function literal with ignored parameters.
type Func struct {
	// Signature is the parameter and result list, parameters named "_".
	Signature string
	// Results are the result types; the body returns their zero values.
	Results []string
}

// Addr takes the address of a composite literal.
type Addr struct {
	X Expr
}

func (Lit) expr()    {}
func (Ident) expr()  {}
func (Nil) expr()    {}
func (Call) expr()   {}
func (Struct) expr() {}
func (Slice) expr()  {}
func (Map) expr()    {}
func (Func) expr()   {}
func (Addr) expr()   {}

// Render returns the Go source of an expression on a single line.
func Render(e Expr) string {
	var sb strings.Builder
	render(&sb, e)

	return sb.String()
}

func render(sb *strings.Builder, e Expr) {
	switch x := e.(type) {
	case Lit:
		sb.WriteString(x.Code)

	case Ident:
		sb.WriteString(x.Name)

	case Nil:
		sb.WriteString("nil")

	case Call:
		if x.Deref {
			sb.WriteString("*")
		}

		sb.WriteString(x.Func)

		if len(x.TypeArgs) > 0 {
			sb.WriteString("[" + strings.Join(x.TypeArgs, ", ") + "]")
		}

		sb.WriteString("(")
		renderList(sb, x.Args)
		sb.WriteString(")")

	case Struct:
		sb.WriteString(x.Type + "{")

		for i, f := range x.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}

			sb.WriteString(f.Name + ": ")
			render(sb, f.Value)
		}

		sb.WriteString("}")

	case Slice:
		sb.WriteString(x.Type + "{")
		renderList(sb, x.Elems)
		sb.WriteString("}")

	case Map:
		sb.WriteString(x.Type + "{")

		for i, en := range x.Entries {
			if i > 0 {
				sb.WriteString(", ")
			}

			render(sb, en.Key)
			sb.WriteString(": ")
			render(sb, en.Value)
		}

		sb.WriteString("}")

	case Func:
		sb.WriteString("func" + x.Signature + " {")

		if len(x.Results) > 0 {
			zeros := make([]string, len(x.Results))
			for i, r := range x.Results {
				zeros[i] = "*new(" + r + ")"
			}

			sb.WriteString(" return " + strings.Join(zeros, ", ") + " ")
		}

		sb.WriteString("}")

	case Addr:
		sb.WriteString("&")
		render(sb, x.X)

	case nil:
		sb.WriteString("<nil>")
	}
}

func renderList(sb *strings.Builder, list []Expr) {
	for i, e := range list {
		if i > 0 {
			sb.WriteString(", ")
		}

		render(sb, e)
	}
}

// addressOf returns the pointer form of an expression, or false when it has
// none and must be wrapped by the pointer helper.
func addressOf(e Expr) (Expr, bool) {
	switch x := e.(type) {
	case Nil:
		return x, true
	case Lit:
		if x.PtrCode != "" {
			return Lit{Code: x.PtrCode}, true
		}
	case Struct, Slice, Map:
		return Addr{X: x}, true
	case Call:
		if x.Deref {
			x.Deref = false
			return x, true
		}
	}

	return nil, false
}
