package primitive

import (
	"mock-generator/internal/model"
)

type typeKey struct {
	pkgPath, name string
}

var (
	byType map[typeKey]KindEnum
	// typeOf is the inverse of byType for rendering.
	typeOf map[KindEnum]typeKey

	// knownQualifiers resolve catalog packages when only the written
	// qualifier is known (declarations read from YAML shapes).
	knownQualifiers = map[string]string{
		"big":    "math/big",
		"time":   "time",
		"uuid":   "github.com/google/uuid",
		"unique": "unique",
		"image":  "image",
		"f64":    "golang.org/x/image/math/f64",
		"color":  "image/color",
		"url":    "net/url",
	}
)

func init() {
	byType = map[typeKey]KindEnum{
		{"", "int"}:     KindInt,
		{"", "int8"}:    KindInt8,
		{"", "int16"}:   KindInt16,
		{"", "int32"}:   KindInt32,
		{"", "int64"}:   KindInt64,
		{"", "uint"}:    KindUint,
		{"", "uint8"}:   KindUint8,
		{"", "byte"}:    KindUint8,
		{"", "uint16"}:  KindUint16,
		{"", "uint32"}:  KindUint32,
		{"", "uint64"}:  KindUint64,
		{"", "uintptr"}: KindUintptr,
		{"", "float32"}: KindFloat32,
		{"", "float64"}: KindFloat64,
		{"", "bool"}:    KindBool,
		{"", "string"}:  KindString,
		{"", "rune"}:    KindRune,

		{"math/big", "Float"}:                    KindDecimal,
		{"time", "Time"}:                         KindTime,
		{"time", "Duration"}:                     KindDuration,
		{"github.com/google/uuid", "UUID"}:       KindUUID,
		{"unique", "Handle"}:                     KindIdentity,
		{"image", "Point"}:                       KindPoint,
		{"image", "Rectangle"}:                   KindRectangle,
		{"golang.org/x/image/math/f64", "Vec2"}: KindVec2,
		{"golang.org/x/image/math/f64", "Vec3"}: KindVec3,
		{"image/color", "RGBA"}:                  KindColor,
		{"net/url", "URL"}:                       KindURL,
	}

	typeOf = make(map[KindEnum]typeKey, len(byType))
	for key, kind := range byType {
		if key.name == "byte" {
			continue
		}

		typeOf[kind] = key
	}

	typeOf[KindBytes] = typeKey{"", "[]byte"}
}

// Lookup returns the catalog kind of a descriptor, or 0 when the descriptor
// is not a catalog leaf and must be synthesized structurally.
func Lookup(desc model.TypeDescriptor) KindEnum {
	switch desc.Kind {
	case model.KindScalar:
		return byType[typeKey{"", desc.Name}]

	case model.KindArray:
		if desc.IsFixed() || desc.Elem == nil || desc.Elem.Kind != model.KindScalar {
			return 0
		}

		if k := byType[typeKey{"", desc.Elem.Name}]; k == KindUint8 {
			return KindBytes
		}

		return 0

	case model.KindNamed:
		if desc.IsChan() {
			return 0
		}

		pkgPath := desc.PkgPath
		if pkgPath == "" {
			pkgPath = knownQualifiers[desc.Qualifier()]
		}

		if pkgPath == "" {
			return 0
		}

		kind := byType[typeKey{pkgPath, desc.LocalName()}]

		switch {
		case kind == KindIdentity:
			// only unique.Handle[string] is an identity token
			if len(desc.Args) != 1 || desc.Args[0].Kind != model.KindScalar || desc.Args[0].Name != "string" {
				return 0
			}
		case len(desc.Args) > 0:
			return 0
		}

		return kind

	default:
		return 0
	}
}

// TypeName returns the Go spelling of a catalog kind as written in generated
// code, e.g. "time.Time" or "unique.Handle[string]".
func TypeName(kind KindEnum) string {
	key, ok := typeOf[kind]
	if !ok {
		return ""
	}

	if key.pkgPath == "" {
		return key.name
	}

	name := qualifierOf(key.pkgPath) + "." + key.name
	if kind == KindIdentity {
		name += "[string]"
	}

	return name
}

// PkgPath returns the import path declaring a catalog kind, "" for predeclared types.
func PkgPath(kind KindEnum) string {
	return typeOf[kind].pkgPath
}

func qualifierOf(pkgPath string) string {
	for q, p := range knownQualifiers {
		if p == pkgPath {
			return q
		}
	}

	return pkgPath
}

// QualifierPath returns the import path of a catalog package from the
// qualifier it is usually imported under, "" when unknown.
func QualifierPath(qualifier string) string {
	return knownQualifiers[qualifier]
}
