package primitive

import (
	"math"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as "not a catalog leaf"

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUintptr
	KindFloat32
	KindFloat64
	KindDecimal // math/big.Float
	KindBool
	KindString
	KindRune  // single character
	KindBytes // []byte
	KindTime
	KindDuration
	KindUUID
	KindIdentity // unique.Handle[string]
	KindPoint
	KindRectangle
	KindVec2
	KindVec3
	KindColor
	KindURL

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsValid reports whether k is a catalog leaf.
func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

func (k KindEnum) IsNumber() bool {
	return k.IsInteger() || k.IsFloat()
}

func (k KindEnum) IsInteger() bool {
	return k.IsSigned() || k.IsUnsigned()
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64, KindDecimal:
		return true
	}
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64, KindUintptr:
		return true
	}
}

// IsOverridable reports whether a literal override can replace the generated value.
// Time, identity and geometry leaves have no literal syntax and reject overrides.
func (k KindEnum) IsOverridable() bool {
	switch k {
	case KindTime, KindIdentity, KindPoint, KindRectangle, KindVec2, KindVec3:
		return false
	default:
		return k.IsValid()
	}
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only numeric kinds has meaningful bits amount, but requested for: " + k.String())
	case KindInt, KindUint, KindUintptr:
		power := 0
		for n := uint(math.MaxUint); n > 0; n >>= 1 {
			power++
		}
		return power
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindRune:
		return 32
	case KindInt64, KindUint64:
		return 64
	case KindFloat32:
		return 32
	case KindFloat64, KindDecimal:
		return 64
	}
}

// RandomCeiling caps random draws for wide numeric types.
const RandomCeiling = 100000

// IntRange returns the inclusive bounds random integers of kind k are drawn from:
// [0, typeMax] for narrow widths, [0, RandomCeiling] otherwise.
func (k KindEnum) IntRange() (lo, hi int64) {
	if !k.IsInteger() {
		panic("integer range requested for: " + k.String())
	}

	switch k.Bits() {
	case 8:
		if k.IsSigned() {
			return 0, math.MaxInt8
		}
		return 0, math.MaxUint8
	case 16:
		if k.IsSigned() {
			return 0, math.MaxInt16
		}
		return 0, math.MaxUint16
	default:
		return 0, RandomCeiling
	}
}

// FloatRange returns the inclusive bounds random floats of kind k are drawn from.
func (k KindEnum) FloatRange() (lo, hi float64) {
	switch k {
	case KindFloat32:
		return math.SmallestNonzeroFloat32, RandomCeiling
	case KindFloat64, KindDecimal:
		return math.SmallestNonzeroFloat64, RandomCeiling
	default:
		panic("float range requested for: " + k.String())
	}
}

// IntLimits returns the full value range of an integer kind, used to
// validate integer overrides.
func (k KindEnum) IntLimits() (lo int64, hi uint64) {
	if k.IsSigned() {
		b := k.Bits()
		return -1 << (b - 1), 1<<(b-1) - 1
	}

	if k == KindRune {
		return math.MinInt32, math.MaxInt32
	}

	return 0, 1<<k.Bits() - 1
}
