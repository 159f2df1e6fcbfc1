package primitive

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"mock-generator/internal/model"
	"mock-generator/utils"
)

// CategoryEnum is a set of literal override kinds a leaf accepts.
type CategoryEnum int

const (
	CategoryInteger CategoryEnum = 1 << iota // 42, -7, 0x2a
	CategoryFloat                            // 1.5, 2e3
	CategoryText                             // "abc"
	CategoryBool                             // true, false
	CategoryIdent                            // MaxItems, store.StatusPaid

	CategoryAll  CategoryEnum = (1 << iota) - 1 // all categories combined
	CategoryNone CategoryEnum = 0               // no categories selected
)

var accepted map[KindEnum]CategoryEnum

func init() {
	accepted = make(map[KindEnum]CategoryEnum, KindTotal)

	for kind := KindEnum(1); int(kind) < KindTotal; kind++ {
		switch {
		case !kind.IsOverridable():
			accepted[kind] = CategoryNone
		case kind.IsInteger():
			accepted[kind] = CategoryInteger | CategoryIdent
		case kind.IsFloat():
			accepted[kind] = CategoryInteger | CategoryFloat | CategoryIdent
		}
	}

	// identifiers written into text leaves are taken as the text itself
	accepted[KindString] = CategoryText | CategoryIdent
	accepted[KindBytes] = CategoryText | CategoryIdent
	accepted[KindRune] = CategoryText | CategoryInteger | CategoryIdent
	accepted[KindBool] = CategoryBool | CategoryIdent
	accepted[KindDuration] = CategoryInteger | CategoryText | CategoryIdent
	accepted[KindUUID] = CategoryText
	accepted[KindColor] = CategoryText
	accepted[KindURL] = CategoryText
}

// Accepts returns the literal categories a leaf accepts.
func (k KindEnum) Accepts() CategoryEnum {
	return accepted[k]
}

// CategoryOf returns the category of a literal override.
func CategoryOf(lit *model.LiteralOverride) CategoryEnum {
	switch lit.Kind {
	case model.LiteralInt:
		return CategoryInteger
	case model.LiteralFloat:
		return CategoryFloat
	case model.LiteralString:
		return CategoryText
	case model.LiteralBool:
		return CategoryBool
	case model.LiteralIdent:
		return CategoryIdent
	default:
		return CategoryNone
	}
}

// Verdict is the outcome of checking an override against a leaf kind.
type Verdict int

const (
	// VerdictAccept means the override replaces the generated value.
	VerdictAccept Verdict = iota
	// VerdictReject means the leaf kind never accepts overrides.
	VerdictReject
	// VerdictInvalid means the literal does not fit the leaf kind.
	VerdictInvalid
)

// String returns the verdict name.
func (v Verdict) String() string {
	switch v {
	case VerdictAccept:
		return "accept"
	case VerdictReject:
		return "reject"
	case VerdictInvalid:
		return "invalid"
	default:
		return "Verdict(" + strconv.Itoa(int(v)) + ")"
	}
}

// Check validates an override against a leaf kind. On VerdictAccept it returns
// the literal coerced to the form the leaf renders: identifiers in text leaves
// become strings, integers in float leaves become floats.
func Check(kind KindEnum, lit *model.LiteralOverride) (*model.LiteralOverride, Verdict) {
	if !kind.IsOverridable() {
		return lit, VerdictReject
	}

	if kind.Accepts()&CategoryOf(lit) == 0 {
		return lit, VerdictInvalid
	}

	switch {
	case lit.Kind == model.LiteralIdent && (kind == KindString || kind == KindBytes):
		return model.StringLiteral(lit.Text), VerdictAccept

	case lit.Kind == model.LiteralInt && kind.IsFloat():
		return &model.LiteralOverride{Kind: model.LiteralFloat, Text: lit.Text}, VerdictAccept

	case lit.Kind == model.LiteralInt && (kind.IsInteger() || kind == KindRune):
		if !fitsInteger(kind, lit.Text) {
			return lit, VerdictInvalid
		}

	case lit.Kind == model.LiteralString:
		if !validText(kind, lit.Text) {
			return lit, VerdictInvalid
		}
	}

	return lit, VerdictAccept
}

func fitsInteger(kind KindEnum, text string) bool {
	clean := strings.ReplaceAll(text, "_", "")
	lo, hi := kind.IntLimits()

	if v, err := strconv.ParseInt(clean, 0, 64); err == nil {
		if v < 0 {
			return utils.IsInRange(lo, v, 0)
		}

		return utils.IsInRange(0, uint64(v), hi)
	}

	v, err := strconv.ParseUint(clean, 0, 64)

	return err == nil && utils.IsInRange(0, v, hi)
}

func validText(kind KindEnum, text string) bool {
	switch kind {
	case KindRune:
		return utf8.RuneCountInString(text) == 1
	case KindUUID:
		_, err := uuid.Parse(text)
		return err == nil
	case KindURL:
		return isAbsoluteURL(text)
	case KindColor:
		_, ok := colorByName(text)
		return ok
	case KindDuration:
		_, err := time.ParseDuration(text)
		return err == nil
	default:
		return true
	}
}
