package gen

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"math/rand/v2"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"mock-generator/internal/analyze"
	"mock-generator/internal/diagnostic"
	"mock-generator/internal/model"
	"mock-generator/internal/synth"
)

// Config holds configuration for mock generation.
type Config struct {
	// Filename is the name of the generated file in each package directory.
	Filename string
	// Seed derives the random source of every declaration.
	Seed uint64
	// Strict, MaxArrayLen and MaxDepth tune the synthesis engine.
	Strict      bool
	MaxArrayLen int
	MaxDepth    int
	// Logger receives progress; nil discards it.
	Logger *slog.Logger
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		Filename:    "mock_gen.go",
		Seed:        1,
		MaxArrayLen: synth.DefaultMaxArrayLen,
		MaxDepth:    synth.DefaultMaxDepth,
	}
}

// Generator synthesizes declarations and renders mock files.
type Generator struct {
	config Config
	logger *slog.Logger
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	if config.Filename == "" {
		config.Filename = DefaultConfig().Filename
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Generator{config: config, logger: logger}
}

// Plan is the synthesized state of a run: the analyzed packages and one
// result per declaration, in package order.
type Plan struct {
	Packages []*analyze.PackageInfo
	Results  []*synth.Result
}

// Diagnostics returns the diagnostics of every result.
func (p *Plan) Diagnostics() diagnostic.Diagnostics {
	var out diagnostic.Diagnostics
	for _, r := range p.Results {
		out.Merge(r.Diagnostics)
	}

	return out
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the package directory the file belongs in.
	Dir     string
	PkgPath string
	// Filename is the name of the file (e.g., "mock_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Plan synthesizes every declaration of the packages.
func (g *Generator) Plan(ctx context.Context, pkgs []*analyze.PackageInfo) (*Plan, error) {
	var decls []*model.Declaration
	for _, p := range pkgs {
		decls = append(decls, p.Declarations...)
	}

	results, err := g.Synthesize(ctx, decls)
	if err != nil {
		return nil, err
	}

	return &Plan{Packages: pkgs, Results: results}, nil
}

// Synthesize runs the engine on every declaration concurrently. All
// declarations are peers of each other. Results are returned in input order
// and are the same for a fixed seed regardless of scheduling.
func (g *Generator) Synthesize(ctx context.Context, decls []*model.Declaration) ([]*synth.Result, error) {
	registry := synth.NewRegistry()
	for _, d := range decls {
		registry.Register(d)
	}

	opts := synth.Options{
		Strict:      g.config.Strict,
		MaxArrayLen: g.config.MaxArrayLen,
		MaxDepth:    g.config.MaxDepth,
		Logger:      g.logger,
	}

	results := make([]*synth.Result, len(decls))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for i, decl := range decls {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			rnd := rand.New(rand.NewPCG(g.config.Seed, seedFor(decl.Key())))
			req := model.NewRequest(decl.Options.ItemCount, decl.Options.Strategy)

			results[i] = synth.New(registry, rnd, opts).Synthesize(decl, req)

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("synthesizing: %w", err)
	}

	if err := checkPeers(results); err != nil {
		return nil, err
	}

	for _, r := range results {
		g.logger.Debug("declaration done",
			slog.String("type", r.Decl.Key()),
			slog.Bool("ok", r.OK()),
			slog.Int("errors", len(r.Diagnostics.Errors)),
			slog.Int("warnings", len(r.Diagnostics.Warnings)))
	}

	return results, nil
}

// seedFor derives the per-declaration stream from its key.
func seedFor(key string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))

	return h.Sum64()
}

// checkPeers reports declarations whose entry points call each other in a
// cycle, and drops the artifacts of every declaration calling a peer that
// produced none.
func checkPeers(results []*synth.Result) error {
	index := make(map[string]int, len(results))
	for i, r := range results {
		index[r.Decl.Key()] = i
	}

	deps := func(i int) []int {
		var out []int

		for _, ref := range results[i].Refs {
			if j, ok := index[ref]; ok && j != i {
				out = append(out, j)
			}
		}

		return out
	}

	order, blocked, err := topoSort(len(results), deps)
	if err != nil {
		return fmt.Errorf("ordering peers: %w", err)
	}

	allowed := make(map[int]bool, len(blocked))
	for _, i := range blocked {
		allowed[i] = true
	}

	var cycle []string

	for _, i := range blocked {
		if onCycle(i, deps, allowed) {
			cycle = append(cycle, results[i].Decl.Key())
		}
	}

	for _, i := range blocked {
		r := results[i]
		if !slices.Contains(cycle, r.Decl.Key()) {
			continue
		}

		r.Diagnostics.AddError(diagnostic.CodeRecursiveReference,
			"mock entry points call each other in a cycle: "+strings.Join(cycle, ", "),
			r.Decl.Name, "")
		r.Drop()
	}

	// Failures travel along refs until nothing changes.
	for changed := true; changed; {
		changed = false

		for _, i := range slices.Concat(order, blocked) {
			r := results[i]
			if !r.OK() {
				continue
			}

			for _, j := range deps(i) {
				if results[j].OK() {
					continue
				}

				r.Diagnostics.AddError(diagnostic.CodePeerFailed,
					fmt.Sprintf("calls the mocks of %s, which produced none", results[j].Decl.Key()),
					r.Decl.Name, "")
				r.Drop()

				changed = true

				break
			}
		}
	}

	return nil
}

// Generate renders one file per package holding at least one declaration
// with artifacts.
func (g *Generator) Generate(p *Plan) ([]GeneratedFile, error) {
	byPkg := make(map[string][]*synth.Result)
	for _, r := range p.Results {
		if r.OK() {
			byPkg[r.Decl.PkgPath] = append(byPkg[r.Decl.PkgPath], r)
		}
	}

	var files []GeneratedFile

	for _, pkg := range p.Packages {
		results := byPkg[pkg.Path]
		if len(results) == 0 {
			continue
		}

		file, err := g.generatePackage(pkg, results)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", pkg.Path, err)
		}

		g.logger.Info("generated mocks",
			slog.String("package", pkg.Path),
			slog.String("file", file.Filename),
			slog.Int("types", len(results)))

		files = append(files, *file)
	}

	return files, nil
}
