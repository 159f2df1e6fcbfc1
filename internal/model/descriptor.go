package model

import (
	"strconv"
	"strings"

	"mock-generator/internal/common"
)

// Kind is the active variant of a TypeDescriptor.
type Kind int

const (
	KindInvalid    Kind = iota
	KindScalar          // predeclared basic type: int, string, bool, ...
	KindArray           // []T or [N]T
	KindDictionary      // map[K]V
	KindSet             // map[T]struct{}
	KindOptional        // *T
	KindTuple           // struct{...} literal type
	KindFunction        // func(...) ...
	KindNamed           // any other type name, including channels and generic instantiations
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindArray:
		return "array"
	case KindDictionary:
		return "dictionary"
	case KindSet:
		return "set"
	case KindOptional:
		return "optional"
	case KindTuple:
		return "tuple"
	case KindFunction:
		return "function"
	case KindNamed:
		return "named"
	default:
		return common.UnknownStr
	}
}

// Reserved Named type names for channel types.
const (
	ChanBidirectional = "chan"
	ChanReceiveOnly   = "<-chan"
	ChanSendOnly      = "chan<-"
)

// TypeDescriptor is a tagged union describing a field type.
// Exactly one variant is active, selected by Kind. Descriptors are built by the
// constructor functions below and never mutated afterwards.
type TypeDescriptor struct {
	Kind Kind

	// Name is the type name for Scalar and Named, as spelled in source
	// (qualified as "pkg.Type" for imported types).
	Name string
	// PkgPath is the import path declaring a Named type, when known.
	PkgPath string
	// Args are generic type arguments of a Named type, or the element of a channel.
	Args []TypeDescriptor

	// Elem is the element of Array and Set and the wrapped type of Optional.
	Elem *TypeDescriptor
	// Len is the length expression of a fixed size array; empty for slices.
	Len string

	// Key and Value describe a Dictionary.
	Key   *TypeDescriptor
	Value *TypeDescriptor

	// Elems and Labels describe a Tuple, in declaration order.
	Elems  []TypeDescriptor
	Labels []string

	// Params and Results describe a Function.
	Params   []TypeDescriptor
	Results  []TypeDescriptor
	Variadic bool
}

// Scalar returns a descriptor for a predeclared basic type.
func Scalar(name string) TypeDescriptor {
	return TypeDescriptor{Kind: KindScalar, Name: name}
}

// Array returns a slice descriptor.
func Array(elem TypeDescriptor) TypeDescriptor {
	return TypeDescriptor{Kind: KindArray, Elem: &elem}
}

// FixedArray returns a fixed size array descriptor.
func FixedArray(length string, elem TypeDescriptor) TypeDescriptor {
	return TypeDescriptor{Kind: KindArray, Elem: &elem, Len: length}
}

// Dictionary returns a map descriptor.
func Dictionary(key, value TypeDescriptor) TypeDescriptor {
	return TypeDescriptor{Kind: KindDictionary, Key: &key, Value: &value}
}

// Set returns a set descriptor.
func Set(elem TypeDescriptor) TypeDescriptor {
	return TypeDescriptor{Kind: KindSet, Elem: &elem}
}

// Optional returns a descriptor wrapping another one.
func Optional(wrapped TypeDescriptor) TypeDescriptor {
	return TypeDescriptor{Kind: KindOptional, Elem: &wrapped}
}

// Tuple returns a tuple descriptor. Labels may be nil or shorter than elems;
// missing labels are generated as F0, F1, ...
func Tuple(labels []string, elems ...TypeDescriptor) TypeDescriptor {
	out := TypeDescriptor{Kind: KindTuple, Elems: elems, Labels: make([]string, len(elems))}
	for i := range elems {
		if i < len(labels) && labels[i] != "" {
			out.Labels[i] = labels[i]
		} else {
			out.Labels[i] = "F" + strconv.Itoa(i)
		}
	}

	return out
}

// Function returns a function descriptor.
func Function(params, results []TypeDescriptor, variadic bool) TypeDescriptor {
	return TypeDescriptor{Kind: KindFunction, Params: params, Results: results, Variadic: variadic}
}

// Named returns a descriptor for a named type declared in pkgPath.
func Named(name, pkgPath string, args ...TypeDescriptor) TypeDescriptor {
	return TypeDescriptor{Kind: KindNamed, Name: name, PkgPath: pkgPath, Args: args}
}

// Chan returns a channel descriptor; dir is one of the Chan* constants.
func Chan(dir string, elem TypeDescriptor) TypeDescriptor {
	return TypeDescriptor{Kind: KindNamed, Name: dir, Args: []TypeDescriptor{elem}}
}

// ParamCount is the number of parameters of a Function descriptor.
func (t TypeDescriptor) ParamCount() int {
	return len(t.Params)
}

// Wrapped returns the type wrapped by an Optional, or the descriptor itself.
func (t TypeDescriptor) Wrapped() TypeDescriptor {
	if t.Kind == KindOptional && t.Elem != nil {
		return *t.Elem
	}

	return t
}

// IsScalar reports whether the descriptor is a predeclared basic type.
func (t TypeDescriptor) IsScalar() bool { return t.Kind == KindScalar }

// IsNamed reports whether the descriptor is a Named type.
func (t TypeDescriptor) IsNamed() bool { return t.Kind == KindNamed }

// IsChan reports whether the descriptor is one of the channel forms.
func (t TypeDescriptor) IsChan() bool {
	if t.Kind != KindNamed || len(t.Args) != 1 {
		return false
	}

	switch t.Name {
	case ChanBidirectional, ChanReceiveOnly, ChanSendOnly:
		return true
	default:
		return false
	}
}

// IsComposite reports whether synthesis decomposes the descriptor further.
func (t TypeDescriptor) IsComposite() bool {
	switch t.Kind {
	case KindArray, KindDictionary, KindSet, KindOptional, KindTuple, KindFunction:
		return true
	default:
		return false
	}
}

// IsFixed reports whether the descriptor is a fixed size array.
func (t TypeDescriptor) IsFixed() bool {
	return t.Kind == KindArray && t.Len != ""
}

// FixedLen returns the literal length of a fixed size array.
// It returns false when the length is not an integer literal.
func (t TypeDescriptor) FixedLen() (int, bool) {
	if !t.IsFixed() {
		return 0, false
	}

	n, err := strconv.Atoi(t.Len)
	if err != nil || n < 0 {
		return 0, false
	}

	return n, true
}

// LocalName returns the unqualified name of a Named type ("Order" for "store.Order").
func (t TypeDescriptor) LocalName() string {
	if i := strings.LastIndexByte(t.Name, '.'); i >= 0 {
		return t.Name[i+1:]
	}

	return t.Name
}

// Qualifier returns the package qualifier of a Named type ("store" for "store.Order").
func (t TypeDescriptor) Qualifier() string {
	if i := strings.LastIndexByte(t.Name, '.'); i >= 0 {
		return t.Name[:i]
	}

	return ""
}

// Depth returns the tuple nesting depth: 0 for non-tuples, 1 for a flat tuple.
func (t TypeDescriptor) Depth() int {
	if t.Kind != KindTuple {
		return 0
	}

	deepest := 0
	for _, e := range t.Elems {
		deepest = max(deepest, e.Depth())
	}

	return deepest + 1
}

// Walk calls fn for the descriptor and every descriptor nested in it.
func (t TypeDescriptor) Walk(fn func(TypeDescriptor)) {
	fn(t)

	for _, a := range t.Args {
		a.Walk(fn)
	}

	for _, p := range []*TypeDescriptor{t.Elem, t.Key, t.Value} {
		if p != nil {
			p.Walk(fn)
		}
	}

	for _, group := range [][]TypeDescriptor{t.Elems, t.Params, t.Results} {
		for _, d := range group {
			d.Walk(fn)
		}
	}
}

// String returns the Go spelling of the type.
func (t TypeDescriptor) String() string {
	var sb strings.Builder
	t.write(&sb)

	return sb.String()
}

func (t TypeDescriptor) write(sb *strings.Builder) {
	switch t.Kind {
	case KindScalar:
		sb.WriteString(t.Name)

	case KindNamed:
		if t.IsChan() {
			sb.WriteString(t.Name)
			sb.WriteString(" ")
			t.Args[0].write(sb)

			return
		}

		sb.WriteString(t.Name)

		if len(t.Args) > 0 {
			sb.WriteString("[")

			for i, a := range t.Args {
				if i > 0 {
					sb.WriteString(", ")
				}

				a.write(sb)
			}

			sb.WriteString("]")
		}

	case KindArray:
		sb.WriteString("[" + t.Len + "]")
		t.Elem.write(sb)

	case KindDictionary:
		sb.WriteString("map[")
		t.Key.write(sb)
		sb.WriteString("]")
		t.Value.write(sb)

	case KindSet:
		sb.WriteString("map[")
		t.Elem.write(sb)
		sb.WriteString("]struct{}")

	case KindOptional:
		sb.WriteString("*")
		t.Elem.write(sb)

	case KindTuple:
		sb.WriteString("struct{")

		for i, e := range t.Elems {
			if i > 0 {
				sb.WriteString("; ")
			}

			sb.WriteString(t.Labels[i])
			sb.WriteString(" ")
			e.write(sb)
		}

		sb.WriteString("}")

	case KindFunction:
		sb.WriteString("func")
		writeSignature(sb, t.Params, t.Results, t.Variadic, false)

	default:
		sb.WriteString(common.UnknownStr)
	}
}

// Signature returns the parameter and result lists of a Function descriptor.
// When blank is true every parameter is named "_".
func (t TypeDescriptor) Signature(blank bool) string {
	var sb strings.Builder
	writeSignature(&sb, t.Params, t.Results, t.Variadic, blank)

	return sb.String()
}

func writeSignature(sb *strings.Builder, params, results []TypeDescriptor, variadic, blank bool) {
	sb.WriteString("(")

	for i, p := range params {
		if i > 0 {
			sb.WriteString(", ")
		}

		if blank {
			sb.WriteString("_ ")
		}

		if variadic && i == len(params)-1 && p.Kind == KindArray {
			sb.WriteString("...")
			p.Elem.write(sb)

			continue
		}

		p.write(sb)
	}

	sb.WriteString(")")

	switch len(results) {
	case 0:
	case 1:
		sb.WriteString(" ")
		results[0].write(sb)
	default:
		sb.WriteString(" (")

		for i, r := range results {
			if i > 0 {
				sb.WriteString(", ")
			}

			r.write(sb)
		}

		sb.WriteString(")")
	}
}
