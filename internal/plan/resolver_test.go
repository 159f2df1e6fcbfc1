package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mock-generator/internal/diagnostic"
	"mock-generator/internal/model"
	"mock-generator/internal/plan"
)

func typ(d model.TypeDescriptor) *model.TypeDescriptor { return &d }

func member(name string, d model.TypeDescriptor) model.Member {
	return model.Member{Names: []string{name}, Type: typ(d)}
}

func fieldNames(fields []model.FieldSpec) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}

	return names
}

func TestResolveMemberwise(t *testing.T) {
	t.Parallel()

	decl := &model.Declaration{
		Name: "Person",
		Kind: model.DeclRecord,
		Members: []model.Member{
			member("name", model.Scalar("string")),
			member("age", model.Scalar("int")),
			{Names: []string{"x", "y"}, Type: typ(model.Scalar("int"))},
			{Names: []string{"summary"}, Type: typ(model.Scalar("string")), Accessor: model.AccessorComputed},
			{Names: []string{"watched"}, Type: typ(model.Scalar("bool")), Accessor: model.AccessorObserver},
			{Names: []string{"untyped"}},
		},
	}

	res := plan.NewResolver(nil).Resolve(decl)

	require.NotNil(t, res.Record)
	assert.Equal(t, plan.PathMemberwise, res.Record.Path)
	assert.Equal(t, []string{"name", "age", "watched"}, fieldNames(res.Record.Fields))
	assert.Equal(t, 3, res.Record.Arity())

	require.Len(t, res.Diagnostics.Infos, 1)
	assert.Equal(t, diagnostic.CodeUntypedMember, res.Diagnostics.Infos[0].Code)
	assert.Equal(t, "Person.untyped", res.Diagnostics.Infos[0].FieldPath)
	assert.False(t, res.Diagnostics.HasErrors())
}

func TestResolveRichestConstructor(t *testing.T) {
	t.Parallel()

	str := typ(model.Scalar("string"))
	decl := &model.Declaration{
		Name: "Order",
		Kind: model.DeclRecord,
		Members: []model.Member{
			{Names: []string{"id"}, Type: str, Override: model.StringLiteral("order-1")},
		},
		Constructors: []model.Constructor{
			{Name: "NewOrder", Params: []model.Param{{Name: "id", Type: str}}},
			{Name: "NewOrderWithNote", Params: []model.Param{{Name: "id", Type: str}, {Name: "note", Type: str}}},
			{Name: "NewOrderFrom", Params: []model.Param{{Name: "id", Type: str}, {Name: "src", Type: str}}},
			{Name: "NewOrderTagged", Params: []model.Param{
				{Name: "id", Type: str},
				{Name: "tags", Type: typ(model.Array(model.Scalar("string"))), Variadic: true},
			}},
		},
	}

	res := plan.NewResolver(nil).Resolve(decl)

	require.NotNil(t, res.Record)
	assert.Equal(t, plan.PathConstructor, res.Record.Path)
	assert.Equal(t, "NewOrderWithNote", res.Record.Constructor.Name, "first of the two-parameter constructors wins")
	assert.Equal(t, []string{"id", "note"}, fieldNames(res.Record.Fields))
	assert.Equal(t, model.StringLiteral("order-1"), res.Record.Fields[0].Override)
	assert.Nil(t, res.Record.Fields[1].Override)
}

func TestResolveVariadicCountsTowardsArity(t *testing.T) {
	t.Parallel()

	str := typ(model.Scalar("string"))
	decl := &model.Declaration{
		Name: "Tagged",
		Kind: model.DeclRecord,
		Constructors: []model.Constructor{
			{Name: "NewTagged", Params: []model.Param{{Name: "id", Type: str}}},
			{Name: "NewTaggedWith", Params: []model.Param{
				{Name: "id", Type: str},
				{Name: "tags", Type: typ(model.Array(model.Scalar("string"))), Variadic: true},
			}},
		},
	}

	res := plan.NewResolver(nil).Resolve(decl)

	assert.Equal(t, "NewTaggedWith", res.Record.Constructor.Name)
	assert.Equal(t, 2, res.Record.Arity())
	assert.True(t, res.Record.Fields[1].Variadic)
}

func TestResolveOverrideNamesAreCaseSensitive(t *testing.T) {
	t.Parallel()

	decl := &model.Declaration{
		Name: "User",
		Kind: model.DeclRecord,
		Members: []model.Member{
			{Names: []string{"Name"}, Type: typ(model.Scalar("string")), Override: model.StringLiteral("Ada")},
		},
		Constructors: []model.Constructor{
			{Name: "NewUser", Params: []model.Param{{Name: "name", Type: typ(model.Scalar("string"))}}},
		},
	}

	res := plan.NewResolver(nil).Resolve(decl)

	assert.Nil(t, res.Record.Fields[0].Override)
}

func TestResolveExternalOverrides(t *testing.T) {
	t.Parallel()

	decl := &model.Declaration{
		Name: "Order",
		Kind: model.DeclRecord,
		Members: []model.Member{
			{Names: []string{"Status"}, Type: typ(model.Named("Status", "")), Override: model.IdentLiteral("StatusNew")},
			member("Note", model.Optional(model.Scalar("string"))),
		},
		Options: model.Options{Overrides: map[string]*model.LiteralOverride{
			"Status": model.IdentLiteral("StatusPaid"),
			"Note":   model.None(),
			"Staus":  model.IdentLiteral("StatusPaid"),
		}},
	}

	res := plan.NewResolver(nil).Resolve(decl)

	assert.Equal(t, model.IdentLiteral("StatusPaid"), res.Record.Fields[0].Override)
	assert.True(t, res.Record.Fields[1].Override.IsNone())

	require.Len(t, res.Diagnostics.Warnings, 1)
	w := res.Diagnostics.Warnings[0]
	assert.Equal(t, diagnostic.CodeUnknownOverrideField, w.Code)
	assert.Equal(t, []string{"Status"}, w.Suggestions)
}

func TestResolveRejectedOverride(t *testing.T) {
	t.Parallel()

	decl := &model.Declaration{
		Name: "Event",
		Kind: model.DeclRecord,
		Members: []model.Member{
			{Names: []string{"At"}, Type: typ(model.Named("time.Time", "time")), Override: model.StringLiteral("2024-01-01")},
		},
	}

	res := plan.NewResolver(nil).Resolve(decl)

	require.Len(t, res.Diagnostics.Warnings, 1)
	assert.Equal(t, diagnostic.CodeOverrideRejected, res.Diagnostics.Warnings[0].Code)
	assert.Contains(t, res.Diagnostics.Warnings[0].Message, "time.Time")
	assert.True(t, res.Record.Fields[0].Override.Rejected)
	assert.False(t, decl.Members[0].Override.Rejected, "member override is not mutated")
}

func TestResolveInvalidOverrideIsDropped(t *testing.T) {
	t.Parallel()

	decl := &model.Declaration{
		Name: "Item",
		Kind: model.DeclRecord,
		Members: []model.Member{
			{Names: []string{"Qty"}, Type: typ(model.Scalar("uint8")), Override: model.IntLiteral(300)},
			{Names: []string{"Price"}, Type: typ(model.Scalar("float64")), Override: model.IntLiteral(3)},
		},
	}

	res := plan.NewResolver(nil).Resolve(decl)

	require.Len(t, res.Diagnostics.Warnings, 1)
	assert.Equal(t, diagnostic.CodeOverrideInvalid, res.Diagnostics.Warnings[0].Code)
	assert.Nil(t, res.Record.Fields[0].Override)
	assert.Equal(t, model.LiteralFloat, res.Record.Fields[1].Override.Kind)
}

func TestResolveEnumCases(t *testing.T) {
	t.Parallel()

	decl := &model.Declaration{
		Name: "Shape",
		Kind: model.DeclEnum,
		Cases: []model.EnumCase{
			{Name: "Circle", Form: model.CaseStruct, Members: []model.Member{member("Radius", model.Scalar("float64"))}},
			{Name: "Square", Form: model.CaseStruct, Members: []model.Member{member("Side", model.Scalar("float64"))}},
			{Name: "Dot", Form: model.CaseStruct},
		},
		Options: model.Options{Overrides: map[string]*model.LiteralOverride{
			"Square.Side": model.FloatLiteral(2.5),
		}},
	}

	res := plan.NewResolver(nil).Resolve(decl)

	require.Len(t, res.Cases, 3)
	assert.Nil(t, res.Record)
	assert.Equal(t, []string{"Radius"}, fieldNames(res.Cases[0].Plan.Fields))
	assert.Equal(t, model.FloatLiteral(2.5), res.Cases[1].Plan.Fields[0].Override)
	assert.Empty(t, res.Cases[2].Plan.Fields)
	assert.Zero(t, res.Diagnostics.Count())
}

func TestCheckOverride(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		desc    model.TypeDescriptor
		lit     *model.LiteralOverride
		verdict string
	}{
		{"nil pointer", model.Optional(model.Scalar("int")), model.None(), "accept"},
		{"value behind pointer", model.Optional(model.Scalar("int")), model.IntLiteral(4), "accept"},
		{"string behind pointer to int", model.Optional(model.Scalar("int")), model.StringLiteral("x"), "invalid"},
		{"pointer to time", model.Optional(model.Named("time.Time", "time")), model.IntLiteral(0), "reject"},
		{"double pointer", model.Optional(model.Optional(model.Scalar("int"))), model.IntLiteral(1), "invalid"},
		{"nil slice", model.Array(model.Scalar("int")), model.None(), "accept"},
		{"nil fixed array", model.FixedArray("3", model.Scalar("int")), model.None(), "invalid"},
		{"ident map", model.Dictionary(model.Scalar("string"), model.Scalar("int")), model.IdentLiteral("defaultPrices"), "accept"},
		{"int into slice", model.Array(model.Scalar("int")), model.IntLiteral(1), "invalid"},
		{"tuple ident", model.Tuple(nil, model.Scalar("int")), model.IdentLiteral("origin"), "accept"},
		{"named anything", model.Named("Status", ""), model.StringLiteral("paid"), "accept"},
		{"chan string", model.Chan(model.ChanBidirectional, model.Scalar("int")), model.StringLiteral("x"), "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, verdict, _ := plan.CheckOverride(tt.desc, tt.lit)
			assert.Equal(t, tt.verdict, verdict.String())
		})
	}
}
