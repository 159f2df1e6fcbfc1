package synth

import (
	"log/slog"
	"math/rand/v2"

	"mock-generator/internal/diagnostic"
	"mock-generator/internal/model"
	"mock-generator/internal/plan"
	"mock-generator/primitive"
)

// Result holds the artifacts of one declaration.
type Result struct {
	Decl   *model.Declaration
	Single Expr
	Batch  []Expr

	// Imports maps import paths to package names.
	Imports map[string]string
	Helpers []string
	// Refs are the keys of peers the artifacts call.
	Refs []string

	Diagnostics diagnostic.Diagnostics
}

// OK reports whether artifacts were produced.
func (r *Result) OK() bool {
	return r.Single != nil
}

// Drop discards the artifacts, e.g. when a peer they depend on failed.
func (r *Result) Drop() {
	r.Single = nil
	r.Batch = nil
	r.Refs = nil
}

// Synthesizer validates, resolves and synthesizes declarations.
type Synthesizer struct {
	peers    Peers
	rnd      primitive.RandomSource
	opts     Options
	resolver *plan.Resolver
}

// New creates a Synthesizer. A nil rnd uses a fixed seed.
func New(peers Peers, rnd primitive.RandomSource, opts Options) *Synthesizer {
	opts = opts.withDefaults()

	if rnd == nil {
		rnd = rand.New(rand.NewPCG(1, 2))
	}

	return &Synthesizer{
		peers:    peers,
		rnd:      rnd,
		opts:     opts,
		resolver: plan.NewResolver(opts.Logger),
	}
}

// SynthesizeSingle returns the representative instance of a declaration.
func (s *Synthesizer) SynthesizeSingle(decl *model.Declaration, strategy model.Strategy) (Expr, diagnostic.Diagnostics) {
	res := s.run(decl, model.NewRequest(1, strategy), true, false)

	return res.Single, res.Diagnostics
}

// SynthesizeBatch returns itemCount independent instances of a declaration.
func (s *Synthesizer) SynthesizeBatch(decl *model.Declaration, itemCount int, strategy model.Strategy) ([]Expr, diagnostic.Diagnostics) {
	res := s.run(decl, model.NewRequest(itemCount, strategy), false, true)

	return res.Batch, res.Diagnostics
}

// Synthesize produces both artifacts of a declaration.
func (s *Synthesizer) Synthesize(decl *model.Declaration, req model.Request) *Result {
	return s.run(decl, req, true, true)
}

func (s *Synthesizer) run(decl *model.Declaration, req model.Request, single, batch bool) *Result {
	res := &Result{Decl: decl}
	res.Diagnostics.Merge(decl.Diagnostics)

	v := Validate(decl, req.ItemCount)
	res.Diagnostics.Merge(v.Diagnostics)

	if v.State == StateAbort {
		s.opts.Logger.Debug("synthesis aborted", slog.String("type", decl.Key()))
		return res
	}

	resolution := s.resolver.Resolve(decl)
	res.Diagnostics.Merge(resolution.Diagnostics)

	e := NewEngine(s.peers, s.rnd, s.opts, decl)
	if req.Counter != nil {
		e.counter = req.Counter
	}

	if single {
		res.Single = e.single(resolution, req.Strategy)
	}

	if batch {
		res.Batch = e.batch(resolution, req.ItemCount, req.Strategy)
	}

	res.Diagnostics.Merge(e.Diagnostics())
	res.Imports = e.Imports()
	res.Helpers = e.Helpers()
	res.Refs = e.Refs()

	if res.Diagnostics.HasErrors() {
		res.Drop()
	}

	s.opts.Logger.Debug("synthesized",
		slog.String("type", decl.Key()),
		slog.Int("batch", len(res.Batch)),
		slog.Int("diagnostics", res.Diagnostics.Count()))

	return res
}
