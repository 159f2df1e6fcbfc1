package gen

import (
	"context"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mock-generator/internal/analyze"
	"mock-generator/internal/diagnostic"
	"mock-generator/internal/model"
	"mock-generator/internal/synth"
)

const testPkg = "example.com/p"

func record(name string, fields ...model.Member) *model.Declaration {
	return &model.Declaration{
		Name:    name,
		PkgPath: testPkg,
		PkgName: "p",
		Kind:    model.DeclRecord,
		Members: fields,
		Options: model.Options{ItemCount: 2},
	}
}

func field(name string, desc model.TypeDescriptor) model.Member {
	return model.Member{Names: []string{name}, Type: &desc}
}

func byName(results []*synth.Result) map[string]*synth.Result {
	out := make(map[string]*synth.Result, len(results))
	for _, r := range results {
		out[r.Decl.Name] = r
	}

	return out
}

func TestGenerator_Synthesize_Peers(t *testing.T) {
	decls := []*model.Declaration{
		record("Item", field("X", model.Scalar("int"))),
		record("Cart", field("Items", model.Array(model.Named("Item", testPkg))), field("Main", model.Named("Item", testPkg))),
	}

	results, err := NewGenerator(DefaultConfig()).Synthesize(context.Background(), decls)
	require.NoError(t, err)

	cart := byName(results)["Cart"]
	require.True(t, cart.OK())
	assert.Equal(t, "Cart{Items: MockItemBatch(), Main: MockItem()}", synth.Render(cart.Single))
	assert.Equal(t, []string{testPkg + ".Item"}, cart.Refs)
	assert.Len(t, cart.Batch, 2)
}

func TestGenerator_Synthesize_Cycle(t *testing.T) {
	decls := []*model.Declaration{
		record("A", field("B", model.Named("B", testPkg))),
		record("B", field("A", model.Named("A", testPkg))),
		record("C", field("A", model.Named("A", testPkg))),
		record("D", field("X", model.Scalar("int"))),
	}

	results, err := NewGenerator(DefaultConfig()).Synthesize(context.Background(), decls)
	require.NoError(t, err)

	got := byName(results)

	for _, name := range []string{"A", "B"} {
		r := got[name]
		assert.False(t, r.OK(), name)
		require.True(t, r.Diagnostics.HasCode(diagnostic.CodeRecursiveReference), name)
		assert.Contains(t, r.Diagnostics.Errors[0].Message, testPkg+".A, "+testPkg+".B")
	}

	assert.False(t, got["C"].OK())
	assert.True(t, got["C"].Diagnostics.HasCode(diagnostic.CodePeerFailed))
	assert.False(t, got["C"].Diagnostics.HasCode(diagnostic.CodeRecursiveReference))

	assert.True(t, got["D"].OK())
	assert.False(t, got["D"].Diagnostics.HasErrors())
}

func TestGenerator_Synthesize_FailureTravels(t *testing.T) {
	decls := []*model.Declaration{
		record("Top", field("Mid", model.Named("Mid", testPkg))),
		record("Mid", field("Empty", model.Named("Empty", testPkg))),
		{Name: "Empty", PkgPath: testPkg, PkgName: "p", Kind: model.DeclEnum, Underlying: "int", Options: model.Options{ItemCount: 1}},
	}

	results, err := NewGenerator(DefaultConfig()).Synthesize(context.Background(), decls)
	require.NoError(t, err)

	got := byName(results)
	assert.True(t, got["Empty"].Diagnostics.HasCode(diagnostic.CodeEmptyEnum))
	assert.True(t, got["Mid"].Diagnostics.HasCode(diagnostic.CodePeerFailed))
	assert.True(t, got["Top"].Diagnostics.HasCode(diagnostic.CodePeerFailed))

	for _, r := range results {
		assert.False(t, r.OK(), r.Decl.Name)
	}
}

func TestGenerator_Synthesize_Deterministic(t *testing.T) {
	decls := func() []*model.Declaration {
		d := record("Sample",
			field("N", model.Scalar("int32")),
			field("S", model.Scalar("string")),
			field("L", model.Array(model.Scalar("float64"))))
		d.Options.Strategy = model.StrategyRandom
		d.Options.ItemCount = 4

		return []*model.Declaration{d, record("Other", field("B", model.Scalar("bool")))}
	}

	cfg := DefaultConfig()
	cfg.Seed = 99

	render := func() []string {
		results, err := NewGenerator(cfg).Synthesize(context.Background(), decls())
		require.NoError(t, err)

		var out []string
		for _, r := range results {
			for _, e := range r.Batch {
				out = append(out, synth.Render(e))
			}
		}

		return out
	}

	assert.Equal(t, render(), render())
}

func TestGenerator_Synthesize_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGenerator(DefaultConfig()).Synthesize(ctx, []*model.Declaration{record("X")})
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerator_Generate(t *testing.T) {
	ptr := record("Box", field("P", model.Optional(model.Scalar("int8"))), field("When", model.Named("time.Time", "time")))
	broken := record("Broken", field("X", model.Scalar("int")))
	broken.Options.ItemCount = 0

	pkg := &analyze.PackageInfo{Path: testPkg, Name: "p", Declarations: []*model.Declaration{ptr, broken}}

	g := NewGenerator(DefaultConfig())

	p, err := g.Plan(context.Background(), []*analyze.PackageInfo{pkg})
	require.NoError(t, err)

	diags := p.Diagnostics()
	assert.True(t, diags.HasCode(diagnostic.CodeInvalidCount))

	files, err := g.Generate(p)
	require.NoError(t, err)
	require.Len(t, files, 1)

	file := files[0]
	assert.Equal(t, "mock_gen.go", file.Filename)
	assert.Equal(t, testPkg, file.PkgPath)

	content := string(file.Content)
	assert.True(t, strings.HasPrefix(content, "// Code generated by mock-generator. DO NOT EDIT.\n"))
	assert.Contains(t, content, "package p\n")
	assert.Contains(t, content, "\"time\"")
	assert.Contains(t, content, "func MockBox() Box {")
	assert.Contains(t, content, "func MockBoxBatch() []Box {")
	assert.Contains(t, content, "mockPtr[int8](0)")
	assert.Contains(t, content, "func mockPtr[T any](v T) *T {")
	assert.NotContains(t, content, "MockBroken")

	_, err = parser.ParseFile(token.NewFileSet(), file.Filename, file.Content, parser.AllErrors)
	require.NoError(t, err)
}

func TestGenerator_Generate_SkipsEmptyPackages(t *testing.T) {
	empty := &model.Declaration{Name: "Empty", PkgPath: testPkg, PkgName: "p", Kind: model.DeclEnum, Options: model.Options{ItemCount: 1}}
	pkg := &analyze.PackageInfo{Path: testPkg, Name: "p", Declarations: []*model.Declaration{empty}}

	g := NewGenerator(DefaultConfig())

	p, err := g.Plan(context.Background(), []*analyze.PackageInfo{pkg})
	require.NoError(t, err)

	files, err := g.Generate(p)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestGenerator_Fixtures(t *testing.T) {
	analyzer := analyze.NewAnalyzer(nil, "")
	_, err := analyzer.LoadPackages(context.Background(), "mock-generator/store", "mock-generator/warehouse")
	require.NoError(t, err)

	g := NewGenerator(DefaultConfig())

	p, err := g.Plan(context.Background(), analyzer.Packages())
	require.NoError(t, err)

	diags := p.Diagnostics()
	require.False(t, diags.HasErrors(), diags.Error())
	assert.True(t, diags.HasCode(diagnostic.CodeNotApplicable), "generic Pair is skipped")

	files, err := g.Generate(p)
	require.NoError(t, err)
	require.Len(t, files, 2)

	store, warehouse := string(files[0].Content), string(files[1].Content)

	assert.Contains(t, store, "package store\n")
	assert.Contains(t, store, "\"github.com/google/uuid\"")
	assert.NotContains(t, store, "\"mock-generator/store\"")
	assert.Contains(t, store, "func MockOrder() Order {")
	assert.Contains(t, store, "Status: StatusPaid")
	assert.Contains(t, store, "Items: MockOrderItemBatch()")
	assert.Contains(t, store, "Discount: MockDiscount()")
	assert.Contains(t, store, "*NewOrderItem(")
	assert.Contains(t, store, "func MockOrderStatusBatch() []OrderStatus {")
	assert.NotContains(t, store, "MockPair")

	assert.Contains(t, warehouse, "package warehouse\n")
	assert.Contains(t, warehouse, "\"mock-generator/store\"")
	assert.Contains(t, warehouse, "store.MockOrderStatus()")
	assert.Contains(t, warehouse, "store.MockDiscount()")
	assert.Contains(t, warehouse, "Currency: \"USD\"")
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	files := []GeneratedFile{
		{Dir: filepath.Join(dir, "a"), Filename: "mock_gen.go", Content: []byte("package a\n")},
		{Dir: filepath.Join(dir, "b"), Filename: "mock_gen.go", Content: []byte("package b\n")},
	}

	require.NoError(t, WriteFiles(files, ""))

	got, err := os.ReadFile(filepath.Join(dir, "b", "mock_gen.go"))
	require.NoError(t, err)
	assert.Equal(t, "package b\n", string(got))

	out := filepath.Join(dir, "out")
	require.NoError(t, WriteFiles(files[:1], out))
	assert.FileExists(t, filepath.Join(out, "mock_gen.go"))
}

func TestWriteDebugUnformatted(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, writeDebugUnformatted(dir, "mock_gen.go", []byte("package x\nfunc {")))
	assert.FileExists(t, filepath.Join(dir, "mock_gen.unformatted.go"))

	require.NoError(t, writeDebugUnformatted("", "mock_gen.go", nil))
}
