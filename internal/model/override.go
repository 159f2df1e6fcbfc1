package model

import (
	"errors"
	"fmt"
	"go/token"
	"strconv"
	"strings"
)

// ErrInvalidLiteral is returned when override text is not a literal.
var ErrInvalidLiteral = errors.New("invalid override literal")

// NoneSentinel is the source spelling of the "no value" override.
const NoneSentinel = "nil"

// LiteralKind is the active variant of a LiteralOverride.
type LiteralKind int

const (
	LiteralInt LiteralKind = iota
	LiteralFloat
	LiteralString
	LiteralBool
	LiteralNone
	// LiteralIdent names a constant or package-level value, e.g. an enum case.
	LiteralIdent
)

// String returns the literal kind name.
func (k LiteralKind) String() string {
	switch k {
	case LiteralInt:
		return "int"
	case LiteralFloat:
		return "float"
	case LiteralString:
		return "string"
	case LiteralBool:
		return "bool"
	case LiteralNone:
		return "none"
	case LiteralIdent:
		return "identifier"
	default:
		return "invalid"
	}
}

// LiteralOverride is a caller-supplied literal pinned to one field.
type LiteralOverride struct {
	Kind LiteralKind
	// Text holds the canonical payload: digits for numbers, the unquoted
	// value for strings, "true"/"false" for bools, the name for identifiers.
	Text string
	// Rejected is set by the resolver when the field's leaf kind does not
	// accept overrides.
	Rejected bool
}

// IntLiteral returns an integer override.
func IntLiteral(v int64) *LiteralOverride {
	return &LiteralOverride{Kind: LiteralInt, Text: strconv.FormatInt(v, 10)}
}

// FloatLiteral returns a floating point override.
func FloatLiteral(v float64) *LiteralOverride {
	return &LiteralOverride{Kind: LiteralFloat, Text: strconv.FormatFloat(v, 'g', -1, 64)}
}

// StringLiteral returns a string override.
func StringLiteral(v string) *LiteralOverride {
	return &LiteralOverride{Kind: LiteralString, Text: v}
}

// BoolLiteral returns a boolean override.
func BoolLiteral(v bool) *LiteralOverride {
	return &LiteralOverride{Kind: LiteralBool, Text: strconv.FormatBool(v)}
}

// None returns the "no value" override.
func None() *LiteralOverride {
	return &LiteralOverride{Kind: LiteralNone, Text: NoneSentinel}
}

// IdentLiteral returns an identifier override such as "StatusPaid" or "store.StatusPaid".
func IdentLiteral(name string) *LiteralOverride {
	return &LiteralOverride{Kind: LiteralIdent, Text: name}
}

// IsNone reports whether the override is the "no value" sentinel.
func (o *LiteralOverride) IsNone() bool {
	return o != nil && o.Kind == LiteralNone
}

// Usable reports whether the override is present and was not rejected.
func (o *LiteralOverride) Usable() bool {
	return o != nil && !o.Rejected
}

// Code renders the override as Go source.
func (o *LiteralOverride) Code() string {
	switch o.Kind {
	case LiteralString:
		return strconv.Quote(o.Text)
	case LiteralNone:
		return NoneSentinel
	default:
		return o.Text
	}
}

// String returns a readable form used in diagnostics.
func (o *LiteralOverride) String() string {
	if o == nil {
		return "<none>"
	}

	return o.Kind.String() + "(" + o.Code() + ")"
}

// ParseLiteral parses override text written in Go literal syntax.
//
// Accepted forms: integer and float literals with an optional sign, quoted
// strings (double quotes or backquotes), rune literals (as strings),
// true/false, nil, and identifiers or qualified identifiers. Anything else
// fails with ErrInvalidLiteral.
func ParseLiteral(text string) (*LiteralOverride, error) {
	src := strings.TrimSpace(text)
	if src == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidLiteral)
	}

	switch src {
	case NoneSentinel:
		return None(), nil
	case "true", "false":
		return &LiteralOverride{Kind: LiteralBool, Text: src}, nil
	}

	switch src[0] {
	case '"', '`':
		s, err := strconv.Unquote(src)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidLiteral, src)
		}

		return StringLiteral(s), nil

	case '\'':
		r, _, tail, err := strconv.UnquoteChar(strings.TrimSuffix(src[1:], "'"), '\'')
		if err != nil || tail != "" || !strings.HasSuffix(src, "'") {
			return nil, fmt.Errorf("%w: %s", ErrInvalidLiteral, src)
		}

		return StringLiteral(string(r)), nil
	}

	if lit, ok := parseNumber(src); ok {
		return lit, nil
	}

	if isQualifiedIdent(src) {
		return IdentLiteral(src), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrInvalidLiteral, src)
}

func parseNumber(src string) (*LiteralOverride, bool) {
	body := strings.TrimLeft(src, "+-")
	if body == "" || len(src)-len(body) > 1 {
		return nil, false
	}

	// ParseFloat also accepts "Inf" and "NaN", which are not Go literals.
	if c := body[0]; c != '.' && (c < '0' || c > '9') {
		return nil, false
	}

	clean := strings.ReplaceAll(src, "_", "")

	if _, err := strconv.ParseInt(clean, 0, 64); err == nil {
		return &LiteralOverride{Kind: LiteralInt, Text: src}, true
	}

	if _, err := strconv.ParseUint(clean, 0, 64); err == nil {
		return &LiteralOverride{Kind: LiteralInt, Text: src}, true
	}

	if _, err := strconv.ParseFloat(clean, 64); err == nil {
		return &LiteralOverride{Kind: LiteralFloat, Text: src}, true
	}

	return nil, false
}

func isQualifiedIdent(src string) bool {
	parts := strings.Split(src, ".")
	if len(parts) > 2 {
		return false
	}

	for _, p := range parts {
		if !token.IsIdentifier(p) {
			return false
		}
	}

	return true
}
