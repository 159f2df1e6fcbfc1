package plan

import (
	"mock-generator/internal/diagnostic"
	"mock-generator/internal/model"
)

// Path is the way a record is constructed.
type Path int

const (
	// PathMemberwise builds a keyed composite literal from stored members.
	PathMemberwise Path = iota
	// PathConstructor calls the richest explicit constructor.
	PathConstructor
)

// String returns the path name.
func (p Path) String() string {
	switch p {
	case PathMemberwise:
		return "memberwise"
	case PathConstructor:
		return "constructor"
	default:
		return "invalid"
	}
}

// Plan is the resolved field list of one record or enum case.
type Plan struct {
	Path Path
	// Constructor is set on the constructor path.
	Constructor *model.Constructor
	// Fields are in declaration order, variadic parameters included.
	Fields []model.FieldSpec
}

// Arity is the number of parameters of the chosen constructor, or the
// number of resolved fields on the memberwise path.
func (p *Plan) Arity() int {
	if p.Constructor != nil {
		return len(p.Constructor.Params)
	}

	return len(p.Fields)
}

// CasePlan is the resolved field list of one enum case.
type CasePlan struct {
	Case model.EnumCase
	Plan Plan
}

// Resolution is the output of resolving one declaration.
type Resolution struct {
	Decl *model.Declaration
	// Record is set for records.
	Record *Plan
	// Cases are set for enums, in declaration order.
	Cases []CasePlan
	// Diagnostics contains all warnings and infos from resolution.
	Diagnostics diagnostic.Diagnostics
}
