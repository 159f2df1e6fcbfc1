package config

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mock-generator/internal/model"
)

func ExampleFile_Declarations() {
	f, err := Parse([]byte(`
shapes:
  - name: Person
    kind: record
    count: 2
    members:
      - name: name
        type: string
      - name: age
        type: int
`))
	if err != nil {
		panic(err)
	}

	decls, err := f.Declarations()
	if err != nil {
		panic(err)
	}

	for _, m := range decls[0].Members {
		fmt.Println(m.Name(), m.Type)
	}

	fmt.Println(decls[0].Kind, decls[0].Options.ItemCount, decls[0].Position)
	// Output:
	// name string
	// age int
	// record 2 shapes[0]
}

func TestFile_Apply(t *testing.T) {
	order := &model.Declaration{Name: "Order", PkgName: "store", Kind: model.DeclRecord, Options: model.Options{ItemCount: 2}}
	item := &model.Declaration{Name: "OrderItem", PkgName: "store", Kind: model.DeclRecord, Options: model.Options{ItemCount: 3}}

	count := 9
	f := &File{Types: []TypeConfig{{
		Name:      "store.Order",
		Count:     &count,
		Strategy:  "random",
		Overrides: map[string]Literal{"Status": {model.IdentLiteral("StatusPaid")}},
	}}}

	require.NoError(t, f.Apply([]*model.Declaration{order, item}))

	assert.Equal(t, 9, order.Options.ItemCount)
	assert.Equal(t, model.StrategyRandom, order.Options.Strategy)
	assert.Equal(t, model.IdentLiteral("StatusPaid"), order.Options.Overrides["Status"])
	assert.Equal(t, 3, item.Options.ItemCount, "entries without a count keep the declaration's count")
}

func TestFile_Apply_UnknownType(t *testing.T) {
	order := &model.Declaration{Name: "Order", PkgName: "store"}
	f := &File{Types: []TypeConfig{{Name: "store.Ordr"}, {Name: "store.Order", Strategy: "chaos"}}}

	err := f.Apply([]*model.Declaration{order})
	require.ErrorIs(t, err, ErrUnknownType)
	assert.Contains(t, err.Error(), "did you mean store.Order?")
	assert.Contains(t, err.Error(), "type store.Order: unknown strategy")
}

func TestShape_Declaration(t *testing.T) {
	shape := Shape{
		Name: "Shape",
		Kind: "enum",
		Cases: []ShapeCase{
			{Name: "Circle", Form: "struct", Members: []ShapeMember{{Name: StringOrArray{"Radius"}, Type: "float64"}}},
			{Name: "Square", Form: "call", Pointer: true},
			{Name: "Dot"},
		},
	}

	decl, err := shape.Declaration()
	require.NoError(t, err)

	assert.Equal(t, model.DeclEnum, decl.Kind)
	assert.Equal(t, model.DefaultItemCount, decl.Options.ItemCount)
	require.Len(t, decl.Cases, 3)
	assert.Equal(t, model.CaseStruct, decl.Cases[0].Form)
	assert.Equal(t, model.Scalar("float64"), *decl.Cases[0].Members[0].Type)
	assert.Equal(t, model.CaseCall, decl.Cases[1].Form)
	assert.True(t, decl.Cases[1].Pointer)
	assert.Equal(t, model.CaseValue, decl.Cases[2].Form)
}

func TestShape_Members(t *testing.T) {
	shape := Shape{
		Name: "Widget",
		Kind: "record",
		Members: []ShapeMember{
			{Name: StringOrArray{"a", "b"}, Type: "int"},
			{Name: StringOrArray{"untyped"}},
			{Name: StringOrArray{"area"}, Type: "float64", Accessor: "computed"},
			{Name: StringOrArray{"ratio"}, Type: "[]float64", Override: &Literal{model.None()}},
		},
		Constructors: []ShapeConstructor{{
			Name:   "NewWidget",
			Params: []ShapeParam{{Name: "id", Type: "int"}, {Name: "tags", Type: "[]string", Variadic: true}},
		}},
	}

	decl, err := shape.Declaration()
	require.NoError(t, err)

	assert.False(t, decl.Members[0].IsStored())
	assert.Nil(t, decl.Members[1].Type)
	assert.Equal(t, model.AccessorComputed, decl.Members[2].Accessor)
	assert.True(t, decl.Members[3].Override.IsNone())

	require.Len(t, decl.Constructors, 1)
	assert.True(t, decl.Constructors[0].Params[1].Variadic)
	assert.Equal(t, model.Array(model.Scalar("string")), *decl.Constructors[0].Params[1].Type)
}

func TestShape_Errors(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
	}{
		{"kind", Shape{Name: "X", Kind: "class"}},
		{"strategy", Shape{Name: "X", Kind: "record", Strategy: "chaos"}},
		{"member type", Shape{Name: "X", Kind: "record", Members: []ShapeMember{{Name: StringOrArray{"a"}, Type: "map["}}}},
		{"accessor", Shape{Name: "X", Kind: "record", Members: []ShapeMember{{Name: StringOrArray{"a"}, Type: "int", Accessor: "lazy"}}}},
		{"param type", Shape{Name: "X", Kind: "record", Constructors: []ShapeConstructor{{Name: "NewX", Params: []ShapeParam{{Name: "a", Type: "interface{ M() }"}}}}}},
		{"case form", Shape{Name: "X", Kind: "enum", Cases: []ShapeCase{{Name: "A", Form: "tuple"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.shape.Declaration()
			require.Error(t, err)
		})
	}
}

func TestFile_Declarations_Error(t *testing.T) {
	f := &File{Shapes: []Shape{{Name: "Good", Kind: "record"}, {Name: "Bad", Kind: "class"}}}

	_, err := f.Declarations()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shapes[1] Bad")
}

func TestValidate(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.True(t, Validate(nil).HasCode("config_is_nil"))
	})

	t.Run("valid", func(t *testing.T) {
		f, err := Parse([]byte(sample))
		require.NoError(t, err)
		assert.False(t, Validate(f).HasErrors())
	})

	t.Run("count is not checked here", func(t *testing.T) {
		zero := 0
		f := &File{Types: []TypeConfig{{Name: "store.Order", Count: &zero}}}
		assert.False(t, Validate(f).HasErrors())
	})

	tests := []struct {
		name string
		file *File
		code string
	}{
		{"negative array len", &File{MaxArrayLen: -1}, "invalid_limit"},
		{"negative depth", &File{MaxDepth: -1}, "invalid_limit"},
		{"unqualified type", &File{Types: []TypeConfig{{Name: "Order"}}}, "invalid_type_name"},
		{"duplicate type", &File{Types: []TypeConfig{{Name: "store.Order"}, {Name: "store.Order"}}}, "duplicate_type"},
		{"strategy", &File{Types: []TypeConfig{{Name: "store.Order", Strategy: "chaos"}}}, "invalid_strategy"},
		{"unnamed shape", &File{Shapes: []Shape{{Kind: "record"}}}, "invalid_shape"},
		{"duplicate shape", &File{Shapes: []Shape{{Name: "A", Kind: "record"}, {Name: "A", Kind: "record"}}}, "duplicate_shape"},
		{"bad shape", &File{Shapes: []Shape{{Name: "A", Kind: "class"}}}, "invalid_shape"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := Validate(tt.file)
			assert.True(t, diags.HasCode(tt.code), diags.Error())
		})
	}
}
