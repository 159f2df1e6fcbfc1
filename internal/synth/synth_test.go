package synth_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mock-generator/internal/diagnostic"
	"mock-generator/internal/model"
	"mock-generator/internal/synth"
)

func member(name string, d model.TypeDescriptor) model.Member {
	return model.Member{Names: []string{name}, Type: typ(d)}
}

func person() *model.Declaration {
	return &model.Declaration{
		Name:    "Person",
		PkgPath: storePkg,
		Kind:    model.DeclRecord,
		Members: []model.Member{
			member("name", model.Scalar("string")),
			member("age", model.Scalar("int")),
		},
	}
}

func renderAll(xs []synth.Expr) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = synth.Render(x)
	}

	return out
}

func ExampleSynthesizer_SynthesizeBatch() {
	s := synth.New(nil, nil, synth.Options{})

	batch, diags := s.SynthesizeBatch(person(), 2, model.StrategyDefault)
	for _, x := range batch {
		fmt.Println(synth.Render(x))
	}

	fmt.Println(diags.Count())

	// Output:
	// Person{name: "Hello World", age: 0}
	// Person{name: "Hello World", age: 0}
	// 0
}

func TestSynthesizeRecordDefault(t *testing.T) {
	t.Parallel()

	s := synth.New(nil, nil, synth.Options{})

	single, diags := s.SynthesizeSingle(person(), model.StrategyDefault)
	require.NotNil(t, single)
	assert.Equal(t, `Person{name: "Hello World", age: 0}`, synth.Render(single))
	assert.Zero(t, diags.Count())

	again, _ := s.SynthesizeSingle(person(), model.StrategyDefault)
	assert.Equal(t, synth.Render(single), synth.Render(again))
}

func TestSynthesizeBatchCount(t *testing.T) {
	t.Parallel()

	s := synth.New(nil, rand.New(rand.NewPCG(5, 5)), synth.Options{})

	for _, n := range []int{1, 3, 10} {
		batch, diags := s.SynthesizeBatch(person(), n, model.StrategyRandom)
		assert.Len(t, batch, n)
		assert.False(t, diags.HasErrors())
	}

	for _, n := range []int{0, -2} {
		batch, diags := s.SynthesizeBatch(person(), n, model.StrategyDefault)
		assert.Empty(t, batch)
		require.Len(t, diags.Errors, 1)
		assert.Equal(t, diagnostic.CodeInvalidCount, diags.Errors[0].Code)
		assert.Zero(t, len(diags.Warnings)+len(diags.Infos))
	}
}

func TestSynthesizeEnumRoundRobin(t *testing.T) {
	t.Parallel()

	decl := &model.Declaration{
		Name:       "Vehicle",
		PkgPath:    storePkg,
		Kind:       model.DeclEnum,
		Underlying: "string",
		Cases: []model.EnumCase{
			{Name: "VehicleCar"},
			{Name: "VehicleBus"},
			{Name: "VehicleMotorcycle"},
		},
	}

	s := synth.New(nil, nil, synth.Options{})

	batch, diags := s.SynthesizeBatch(decl, 7, model.StrategyRandom)
	assert.Zero(t, diags.Count())
	assert.Equal(t, []string{
		"VehicleCar", "VehicleBus", "VehicleMotorcycle",
		"VehicleCar", "VehicleBus", "VehicleMotorcycle",
		"VehicleCar",
	}, renderAll(batch))
}

func TestSynthesizeEnumSingleIsRandomCase(t *testing.T) {
	t.Parallel()

	decl := &model.Declaration{
		Name: "Status",
		Kind: model.DeclEnum,
		Cases: []model.EnumCase{
			{Name: "StatusNew"}, {Name: "StatusPaid"}, {Name: "StatusShipped"},
		},
	}

	s := synth.New(nil, rand.New(rand.NewPCG(9, 9)), synth.Options{})
	seen := make(map[string]bool)

	for range 100 {
		single, _ := s.SynthesizeSingle(decl, model.StrategyDefault)
		seen[synth.Render(single)] = true
	}

	assert.Len(t, seen, 3)
}

func TestSynthesizeSealedEnum(t *testing.T) {
	t.Parallel()

	decl := &model.Declaration{
		Name:    "Shape",
		PkgPath: storePkg,
		Kind:    model.DeclEnum,
		Methods: []string{"Area() float64"},
		Cases: []model.EnumCase{
			{Name: "Circle", Form: model.CaseStruct, Members: []model.Member{member("Radius", model.Scalar("float64"))}},
			{Name: "Square", Form: model.CaseStruct, Pointer: true, Members: []model.Member{member("Side", model.Scalar("float64"))}},
			{Name: "Dot", Form: model.CaseStruct},
		},
		Options: model.Options{Overrides: map[string]*model.LiteralOverride{
			"Square.Side": model.FloatLiteral(2.5),
		}},
	}

	s := synth.New(nil, nil, synth.Options{})

	batch, diags := s.SynthesizeBatch(decl, 4, model.StrategyDefault)
	assert.Zero(t, diags.Count())
	assert.Equal(t, []string{
		"Circle{Radius: 0}",
		"&Square{Side: 2.5}",
		"Dot{}",
		"Circle{Radius: 0}",
	}, renderAll(batch))
}

func TestSynthesizeCallCases(t *testing.T) {
	t.Parallel()

	decl := &model.Declaration{
		Name: "Event",
		Kind: model.DeclEnum,
		Cases: []model.EnumCase{
			{Name: "NewClick", Form: model.CaseCall, Members: []model.Member{
				member("x", model.Scalar("int")),
				member("target", model.Named("Widget", "")),
			}},
		},
	}

	batch, diags := synth.New(nil, nil, synth.Options{}).SynthesizeBatch(decl, 1, model.StrategyDefault)
	assert.Equal(t, []string{"NewClick(0, *new(Widget))"}, renderAll(batch))
	assert.True(t, diags.HasCode(diagnostic.CodeUnresolvedField))
}

func TestSynthesizeConstructor(t *testing.T) {
	t.Parallel()

	str := typ(model.Scalar("string"))
	decl := &model.Declaration{
		Name:    "Order",
		PkgPath: storePkg,
		Kind:    model.DeclRecord,
		Members: []model.Member{
			{Names: []string{"id"}, Type: str, Override: model.StringLiteral("order-1")},
		},
		Constructors: []model.Constructor{{
			Name:    "NewOrder",
			Pointer: true,
			Params: []model.Param{
				{Name: "id", Type: str},
				{Name: "customer", Type: typ(model.Named("Customer", ""))},
				{Name: "tags", Type: typ(model.Array(model.Scalar("string"))), Variadic: true},
			},
		}},
	}

	single, diags := synth.New(nil, nil, synth.Options{}).SynthesizeSingle(decl, model.StrategyDefault)
	require.NotNil(t, single)
	assert.Equal(t, `*NewOrder("order-1", *new(Customer))`, synth.Render(single))

	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, diagnostic.CodeUnresolvedField, diags.Warnings[0].Code)
	assert.Equal(t, "Order.customer", diags.Warnings[0].FieldPath)
}

func TestSynthesizeStrictDropsArtifacts(t *testing.T) {
	t.Parallel()

	decl := person()
	decl.Members = append(decl.Members, member("employer", model.Named("Company", "")))

	lenient := synth.New(nil, nil, synth.Options{}).Synthesize(decl, model.NewRequest(2, model.StrategyDefault))
	require.True(t, lenient.OK())
	assert.Equal(t, `Person{name: "Hello World", age: 0}`, synth.Render(lenient.Single))
	assert.Len(t, lenient.Batch, 2)
	assert.Len(t, lenient.Diagnostics.Warnings, 1)

	strict := synth.New(nil, nil, synth.Options{Strict: true}).Synthesize(decl, model.NewRequest(2, model.StrategyDefault))
	assert.False(t, strict.OK())
	assert.Empty(t, strict.Batch)
	require.Len(t, strict.Diagnostics.Errors, 1)
	assert.Equal(t, "Person.employer", strict.Diagnostics.Errors[0].FieldPath)
}

func TestSynthesizeRejectedOverride(t *testing.T) {
	t.Parallel()

	decl := &model.Declaration{
		Name: "Event",
		Kind: model.DeclRecord,
		Members: []model.Member{
			{Names: []string{"At"}, Type: typ(model.Named("time.Time", "time")), Override: model.StringLiteral("2024-01-01")},
		},
	}

	single, diags := synth.New(nil, nil, synth.Options{}).SynthesizeSingle(decl, model.StrategyDefault)
	assert.Equal(t, "Event{At: time.Unix(0, 0).UTC()}", synth.Render(single))

	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, diagnostic.CodeOverrideRejected, diags.Warnings[0].Code)
	assert.Contains(t, diags.Warnings[0].Message, "time.Time")
	assert.Zero(t, len(diags.Errors)+len(diags.Infos))
}

func TestSynthesizeIdentityCounterIsPerRequest(t *testing.T) {
	t.Parallel()

	decl := &model.Declaration{
		Name: "Session",
		Kind: model.DeclRecord,
		Members: []model.Member{
			member("ID", model.Named("unique.Handle", "unique", model.Scalar("string"))),
		},
	}

	s := synth.New(nil, nil, synth.Options{})

	for range 2 {
		res := s.Synthesize(decl, model.NewRequest(2, model.StrategyDefault))
		assert.Equal(t, `Session{ID: unique.Make("mock-1")}`, synth.Render(res.Single))
		assert.Equal(t, []string{
			`Session{ID: unique.Make("mock-2")}`,
			`Session{ID: unique.Make("mock-3")}`,
		}, renderAll(res.Batch))
		assert.Equal(t, map[string]string{"unique": "unique"}, res.Imports)
	}
}

func TestSynthesizeMalformedDeclarationAborts(t *testing.T) {
	t.Parallel()

	decl := person()
	decl.Diagnostics.AddError(diagnostic.CodeOverrideMalformed, "bad tag", "Person", "Person.age")

	res := synth.New(nil, nil, synth.Options{}).Synthesize(decl, model.NewRequest(3, model.StrategyDefault))
	assert.False(t, res.OK())
	require.Len(t, res.Diagnostics.Errors, 1)
	assert.Equal(t, diagnostic.CodeOverrideMalformed, res.Diagnostics.Errors[0].Code)
}
