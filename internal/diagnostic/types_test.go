package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddInfo(CodeNotApplicable, "skipped", "Pair", "")
	d.AddWarning(CodeUnknownOverrideField, "no such field", "Order", "Stat")
	d.AddError(CodeInvalidCount, "count must be positive", "Order", "")

	assert.Equal(t, 3, d.Count())
	assert.True(t, d.HasErrors())
	assert.True(t, d.HasCode(CodeNotApplicable))
	assert.False(t, d.HasCode(CodeRecursiveReference))

	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, DiagnosticError, all[0].Severity)
	assert.Equal(t, DiagnosticInfo, all[2].Severity)

	require.Error(t, d.Error())
	assert.Equal(t, "[Order]: [invalid_count] count must be positive", d.Error().Error())

	var merged Diagnostics
	merged.Merge(d)
	merged.Merge(d)
	assert.Len(t, merged.Errors, 2)
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{
		Code:        CodeUnknownOverrideField,
		Message:     "no such field",
		TypeName:    "Order",
		FieldPath:   "Stat",
		Suggestions: []string{"Status"},
	}

	assert.Equal(t, "[Order] Stat: [unknown_override_field] no such field (did you mean Status?)", d.String())
	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
}

func TestSeverity_MarshalText(t *testing.T) {
	text, err := DiagnosticWarning.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "warning", string(text))
	assert.Equal(t, "error", DiagnosticError.String())
}

func TestSeverity_UnmarshalText(t *testing.T) {
	var s DiagnosticSeverity
	require.NoError(t, s.UnmarshalText([]byte("error")))
	assert.Equal(t, DiagnosticError, s)

	require.Error(t, s.UnmarshalText([]byte("fatal")))
}

func TestDiagnostics_ReadFromReturnedValue(t *testing.T) {
	collect := func() Diagnostics {
		var d Diagnostics
		d.AddWarning(CodeUnresolvedField, "no expression", "Order", "Meta")

		return d
	}

	assert.Equal(t, 1, collect().Count())
	assert.Len(t, collect().All(), 1)
	assert.False(t, collect().HasErrors())
	assert.True(t, collect().HasCode(CodeUnresolvedField))
	assert.True(t, collect().IsValid())
	assert.NoError(t, collect().Error())
}
