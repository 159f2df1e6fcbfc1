package model

import (
	"fmt"
	"strings"

	"mock-generator/internal/common"
	"mock-generator/internal/diagnostic"
)

// DefaultItemCount is the batch size used when a declaration does not set one.
const DefaultItemCount = 3

// DeclKind classifies a declaration.
type DeclKind int

const (
	DeclOther DeclKind = iota
	DeclRecord
	DeclEnum
)

// String returns the declaration kind name.
func (k DeclKind) String() string {
	switch k {
	case DeclRecord:
		return "record"
	case DeclEnum:
		return "enum"
	case DeclOther:
		return "other"
	default:
		return common.UnknownStr
	}
}

// ParseDeclKind parses a declaration kind name.
func ParseDeclKind(s string) (DeclKind, error) {
	switch strings.ToLower(s) {
	case "record", "struct":
		return DeclRecord, nil
	case "enum":
		return DeclEnum, nil
	case "other", "":
		return DeclOther, nil
	default:
		return DeclOther, fmt.Errorf("unknown declaration kind %q", s)
	}
}

// Accessor describes how a member's value is produced.
type Accessor int

const (
	AccessorNone Accessor = iota
	// AccessorObserver marks stored members with change observers.
	AccessorObserver
	// AccessorComputed marks members whose value is computed, never stored.
	AccessorComputed
)

// String returns the accessor name.
func (a Accessor) String() string {
	switch a {
	case AccessorNone:
		return "none"
	case AccessorObserver:
		return "observer"
	case AccessorComputed:
		return "computed"
	default:
		return common.UnknownStr
	}
}

// ParseAccessor parses an accessor name; empty means AccessorNone.
func ParseAccessor(s string) (Accessor, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return AccessorNone, nil
	case "observer":
		return AccessorObserver, nil
	case "computed":
		return AccessorComputed, nil
	default:
		return AccessorNone, fmt.Errorf("unknown accessor %q", s)
	}
}

// Member is one member of a record or enum case.
type Member struct {
	// Names holds every binding introduced by the member declaration.
	Names []string
	// Type is nil when the member has no resolvable type annotation.
	Type     *TypeDescriptor
	Accessor Accessor
	Override *LiteralOverride
}

// Name returns the first binding, or "" when there is none.
func (m Member) Name() string {
	if len(m.Names) == 0 {
		return ""
	}

	return m.Names[0]
}

// IsStored reports whether the member holds state: a single binding and no computed accessor.
func (m Member) IsStored() bool {
	return len(m.Names) <= 1 && m.Accessor != AccessorComputed
}

// Param is one constructor parameter.
type Param struct {
	Name     string
	Type     *TypeDescriptor
	Variadic bool
}

// Constructor is an explicit constructor declared for a record.
type Constructor struct {
	Name   string
	Params []Param
	// Pointer is set when the constructor returns *T.
	Pointer bool
}

// CaseForm selects how an enum case is written.
type CaseForm int

const (
	// CaseValue is a bare constant: StatusPaid.
	CaseValue CaseForm = iota
	// CaseStruct is a struct literal with keyed fields: Circle{Radius: 1}.
	CaseStruct
	// CaseCall is a call with positional arguments: Shape.circle(1).
	CaseCall
)

// EnumCase is one declared case of an enumeration.
type EnumCase struct {
	Name string
	Form CaseForm
	// Members are the associated values of the case.
	Members []Member
	// Pointer is set when the case implements the enum through a pointer receiver.
	Pointer bool
}

// Options carries per-declaration generation settings.
type Options struct {
	ItemCount int
	Strategy  Strategy
	// Overrides are external overrides keyed by field name. They win over
	// overrides attached to members.
	Overrides map[string]*LiteralOverride
}

// Declaration is a record or enumeration shape ready for synthesis.
type Declaration struct {
	Name    string
	PkgPath string
	// PkgName is the package name used to qualify references from other packages.
	PkgName string
	Kind    DeclKind

	Members      []Member
	Constructors []Constructor
	Cases        []EnumCase

	// Underlying is the basic type of a const enum.
	Underlying string
	// Methods are the method signatures a sealed enum case must implement.
	Methods []string
	// Position is the source position of the declaration, "file:line".
	Position string

	Options Options

	// Diagnostics collects problems found while the declaration was built,
	// such as malformed override text.
	Diagnostics diagnostic.Diagnostics
}

// Key identifies a declaration across packages.
func (d *Declaration) Key() string {
	return TypeKey(d.PkgPath, d.Name)
}

// Exported reports whether the declared type is exported.
func (d *Declaration) Exported() bool {
	return common.IsExported(d.Name)
}

// TypeKey builds the registry key of a type declared in pkgPath.
func TypeKey(pkgPath, name string) string {
	if pkgPath == "" {
		return name
	}

	return pkgPath + "." + name
}

// FieldSpec is one resolved field, ready for synthesis.
type FieldSpec struct {
	// Name is empty for unnamed positional parameters.
	Name     string
	Type     TypeDescriptor
	Override *LiteralOverride
	// Variadic parameters count towards arity but are never synthesized.
	Variadic bool
}
