package synth

import (
	"fmt"
	"strings"

	"mock-generator/internal/common"
	"mock-generator/internal/diagnostic"
	"mock-generator/internal/model"
)

// State is a step of request validation.
type State int

const (
	StateStart State = iota
	StateValidate
	// StateAbort means no artifacts are produced for the declaration.
	StateAbort
	StateProceed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateValidate:
		return "validate"
	case StateAbort:
		return "abort"
	case StateProceed:
		return "proceed"
	default:
		return common.UnknownStr
	}
}

// Validation is the outcome of validating one request.
type Validation struct {
	State       State
	Diagnostics diagnostic.Diagnostics
}

// Validate checks a request before synthesis and stops at the first failure.
// Errors already attached to the declaration abort without a new diagnostic.
func Validate(decl *model.Declaration, itemCount int) Validation {
	v := Validation{State: StateValidate}

	switch {
	case decl.Diagnostics.HasErrors():
		v.State = StateAbort

	case decl.Kind == model.DeclOther:
		v.Diagnostics.AddWarning(diagnostic.CodeNotApplicable,
			"type is neither a struct nor an enumeration; nothing generated", decl.Name, "")

		v.State = StateAbort

	case itemCount <= 0:
		v.Diagnostics.AddError(diagnostic.CodeInvalidCount,
			fmt.Sprintf("item count must be positive, got %d", itemCount), decl.Name, "")

		v.State = StateAbort

	case decl.Kind == model.DeclEnum && len(decl.Cases) == 0:
		v.Diagnostics.Add(diagnostic.Diagnostic{
			Severity: diagnostic.DiagnosticError,
			Code:     diagnostic.CodeEmptyEnum,
			Message:  "enumeration declares no cases",
			TypeName: decl.Name,
			Edit:     placeholderEdit(decl),
		})

		v.State = StateAbort

	default:
		v.State = StateProceed
	}

	return v
}

// placeholderEdit describes the case that makes an empty enumeration valid.
func placeholderEdit(decl *model.Declaration) *diagnostic.Edit {
	name := decl.Name + "Placeholder"

	var insert string

	switch {
	case decl.Underlying != "":
		insert = fmt.Sprintf("const %s %s = %s", name, decl.Name, zeroLiteral(decl.Underlying))

	case len(decl.Methods) > 0:
		var sb strings.Builder

		sb.WriteString("type " + name + " struct{}\n")

		for _, m := range decl.Methods {
			sb.WriteString("\nfunc (" + name + ") " + m + " {\n\tpanic(\"placeholder\")\n}\n")
		}

		insert = sb.String()

	default:
		insert = "cases:\n  - name: Placeholder\n"
	}

	return &diagnostic.Edit{
		Description: "add a placeholder case",
		After:       decl.Position,
		Insert:      insert,
	}
}

func zeroLiteral(basic string) string {
	switch basic {
	case "string":
		return `""`
	case "bool":
		return "false"
	default:
		return "0"
	}
}
