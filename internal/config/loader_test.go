package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mock-generator/internal/model"
)

const sample = `
version: "1"
strict: true
seed: 42
max_array_len: 4
packages: ./store
types:
  - name: store.Order
    count: 7
    strategy: random
    overrides:
      Status: StatusPaid
      Note: nil
      Empty:
      Code: "42"
      Total: 42
      Rate: 0.5
      Active: false
      Label: plain text
shapes:
  - name: Person
    kind: record
    members:
      - name: name
        type: string
      - name: [x, y]
        type: int
      - name: tag
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	assert.True(t, f.Strict)
	assert.Equal(t, uint64(42), f.Seed)
	assert.Equal(t, 4, f.MaxArrayLen)
	assert.Zero(t, f.MaxDepth)
	assert.Equal(t, DefaultOutput, f.Output)
	assert.Equal(t, StringOrArray{"./store"}, f.Packages)

	require.Len(t, f.Types, 1)
	tc := f.Types[0]
	assert.Equal(t, "store.Order", tc.Name)
	require.NotNil(t, tc.Count)
	assert.Equal(t, 7, *tc.Count)
	assert.Equal(t, "random", tc.Strategy)

	assert.Equal(t, model.IdentLiteral("StatusPaid"), tc.Overrides["Status"].Override())
	assert.True(t, tc.Overrides["Note"].Override().IsNone())
	assert.True(t, tc.Overrides["Empty"].Override().IsNone(), "empty value means nil")
	assert.Equal(t, model.StringLiteral("42"), tc.Overrides["Code"].Override(), "quoted values stay strings")
	assert.Equal(t, model.IntLiteral(42), tc.Overrides["Total"].Override())
	assert.Equal(t, model.FloatLiteral(0.5), tc.Overrides["Rate"].Override())
	assert.Equal(t, model.BoolLiteral(false), tc.Overrides["Active"].Override())
	assert.Equal(t, model.StringLiteral("plain text"), tc.Overrides["Label"].Override(), "non-literal text falls back to a string")

	require.Len(t, f.Shapes, 1)
	assert.Equal(t, StringOrArray{"x", "y"}, f.Shapes[0].Members[1].Name)
}

func TestParse_Defaults(t *testing.T) {
	f, err := Parse([]byte("types: []"))
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, f.Version)
	assert.Equal(t, DefaultOutput, f.Output)
	assert.Equal(t, &File{Version: CurrentVersion, Output: DefaultOutput}, Default())
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte(`version: "2"`))
	require.ErrorIs(t, err, ErrUnsupportedVersion)

	_, err = Parse([]byte("types: {"))
	require.Error(t, err)

	_, err = Parse([]byte(`
types:
  - name: store.Order
    overrides:
      Status: [a, b]
`))
	require.Error(t, err, "overrides must be scalars")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mockgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, f.Types, 1)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestWriteFile_RoundTrip(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, WriteFile(f, path))

	back, err := LoadFile(path)
	require.NoError(t, err)

	for name, lit := range f.Types[0].Overrides {
		assert.Equal(t, lit.Override(), back.Types[0].Overrides[name].Override(), name)
	}

	assert.Equal(t, f.Shapes, back.Shapes)
}

func TestIncludes(t *testing.T) {
	f := &File{Types: []TypeConfig{{Name: "store.Order"}, {Name: "warehouse.Product"}}}
	assert.Equal(t, []string{"store.Order", "warehouse.Product"}, f.Includes())
}
