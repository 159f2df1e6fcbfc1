package synth

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"

	"mock-generator/internal/common"
	"mock-generator/internal/diagnostic"
	"mock-generator/internal/model"
	"mock-generator/primitive"
)

// Engine limits.
const (
	DefaultMaxArrayLen = 5
	DefaultMaxDepth    = 32
)

// Options configures synthesis.
type Options struct {
	// Strict turns unresolvable fields into errors that drop every artifact
	// of the declaration. Otherwise they are warnings and the field is omitted.
	Strict bool
	// MaxArrayLen is the upper bound of random array lengths.
	MaxArrayLen int
	// MaxDepth bounds structural recursion.
	MaxDepth int
	Logger   *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.MaxArrayLen <= 0 {
		o.MaxArrayLen = DefaultMaxArrayLen
	}

	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}

	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}

	return o
}

// Engine synthesizes expressions for type descriptors on behalf of one
// declaration. It is not safe for concurrent use.
type Engine struct {
	peers   Peers
	rnd     primitive.RandomSource
	counter *model.Counter
	opts    Options

	// self is the key of the declaration being synthesized.
	self     string
	pkgPath  string
	typeName string

	// imports maps import paths to the names they are referenced by.
	imports map[string]string
	helpers map[string]struct{}
	refs    map[string]struct{}

	diags diagnostic.Diagnostics
	seen  map[string]struct{}
	depth int
}

// NewEngine creates an Engine. decl scopes self references and package
// qualification and may be nil. A nil rnd uses a fixed seed.
func NewEngine(peers Peers, rnd primitive.RandomSource, opts Options, decl *model.Declaration) *Engine {
	if peers == nil {
		peers = NewRegistry()
	}

	if rnd == nil {
		rnd = rand.New(rand.NewPCG(1, 2))
	}

	e := &Engine{
		peers:   peers,
		rnd:     rnd,
		counter: &model.Counter{},
		opts:    opts.withDefaults(),
		imports: make(map[string]string),
		helpers: make(map[string]struct{}),
		refs:    make(map[string]struct{}),
		seen:    make(map[string]struct{}),
	}

	if decl != nil {
		e.self = decl.Key()
		e.pkgPath = decl.PkgPath
		e.typeName = decl.Name
	}

	return e
}

// Synthesize builds an expression of type desc. It returns false when no
// expression could be produced; the reason is recorded in Diagnostics.
func (e *Engine) Synthesize(desc model.TypeDescriptor, lit *model.LiteralOverride, strategy model.Strategy) (Expr, bool) {
	root := e.typeName
	if root == "" {
		root = desc.String()
	}

	return e.synth(desc, lit, strategy, model.NewTypePath(root))
}

// Diagnostics returns everything reported so far.
func (e *Engine) Diagnostics() diagnostic.Diagnostics {
	return e.diags
}

// Imports returns the import paths referenced by synthesized expressions,
// mapped to their package names.
func (e *Engine) Imports() map[string]string {
	out := make(map[string]string, len(e.imports))
	for path, name := range e.imports {
		out[path] = name
	}

	return out
}

// Helpers returns the sorted names of generated helpers the expressions call.
func (e *Engine) Helpers() []string {
	return sortedKeys(e.helpers)
}

// Refs returns the sorted keys of peers the expressions call.
func (e *Engine) Refs() []string {
	return sortedKeys(e.refs)
}

func (e *Engine) synth(desc model.TypeDescriptor, lit *model.LiteralOverride, strategy model.Strategy, path *model.TypePath) (Expr, bool) {
	// Tuples nest without limit: an anonymous struct cannot contain itself.
	if desc.Kind != model.KindTuple {
		if e.depth >= e.opts.MaxDepth {
			e.report(diagnostic.DiagnosticError, diagnostic.CodeDepthExceeded,
				fmt.Sprintf("type nesting exceeds %d levels", e.opts.MaxDepth), path)

			return nil, false
		}

		e.depth++
		defer func() { e.depth-- }()
	}

	if !lit.Usable() {
		lit = nil
	}

	if kind := primitive.Lookup(desc); kind.IsValid() {
		return e.leaf(kind, lit, strategy), true
	}

	switch desc.Kind {
	case model.KindScalar:
		if lit != nil {
			return e.literal(lit), true
		}
	case model.KindArray:
		return e.array(desc, lit, strategy, path), true
	case model.KindDictionary:
		return e.dictionary(desc, lit, strategy, path), true
	case model.KindSet:
		return e.set(desc, lit), true
	case model.KindOptional:
		return e.optional(desc, lit, strategy, path)
	case model.KindTuple:
		return e.tuple(desc, lit, strategy, path), true
	case model.KindFunction:
		return e.function(desc, lit), true
	case model.KindNamed:
		return e.named(desc, lit, strategy, path)
	}

	e.unresolved(desc, path)

	return nil, false
}

func (e *Engine) leaf(kind primitive.KindEnum, lit *model.LiteralOverride, strategy model.Strategy) Expr {
	var (
		v       primitive.Value
		coerced *model.LiteralOverride
		verdict = primitive.VerdictInvalid
	)

	if lit != nil {
		coerced, verdict = primitive.Check(kind, lit)
	}

	switch {
	case verdict == primitive.VerdictAccept:
		v = primitive.Override(kind, coerced)
	case strategy == model.StrategyRandom:
		v = primitive.Random(kind, e.rnd)
	default:
		v = primitive.Default(kind, e.counter)
	}

	for _, p := range v.Imports {
		e.addImport(p, "")
	}

	if v.Helper != "" {
		e.useHelper(v.Helper)
	}

	return Lit{Code: v.Code, PtrCode: v.PtrCode}
}

func (e *Engine) literal(lit *model.LiteralOverride) Expr {
	switch lit.Kind {
	case model.LiteralNone:
		return Nil{}
	case model.LiteralIdent:
		return Ident{Name: lit.Text}
	default:
		return Lit{Code: lit.Code()}
	}
}

func (e *Engine) array(desc model.TypeDescriptor, lit *model.LiteralOverride, strategy model.Strategy, path *model.TypePath) Expr {
	if lit != nil {
		return e.literal(lit)
	}

	elem := *desc.Elem
	typ := e.typeString(desc)

	if e.isSelf(elem) {
		e.report(diagnostic.DiagnosticInfo, diagnostic.CodeRecursiveReference,
			"self-referencing slice left empty", path)

		return Slice{Type: typ}
	}

	if !desc.IsFixed() && elem.IsNamed() && primitive.Lookup(elem) == 0 {
		if peer, ok := e.peers.Lookup(elem, e.pkgPath); ok {
			return Call{Func: e.entry(peer, peer.Batch)}
		}
	}

	n := e.arrayLen(strategy)
	if desc.IsFixed() {
		l, _ := desc.FixedLen()
		n = min(n, l)
	}

	elems := make([]Expr, 0, n)

	for range n {
		x, ok := e.synth(elem, nil, strategy, path.Slice())
		if !ok {
			return Slice{Type: typ}
		}

		elems = append(elems, x)
	}

	return Slice{Type: typ, Elems: elems}
}

func (e *Engine) arrayLen(strategy model.Strategy) int {
	if strategy != model.StrategyRandom {
		return 1
	}

	hi := max(e.opts.MaxArrayLen, 2)

	return 2 + e.rnd.IntN(hi-1)
}

func (e *Engine) dictionary(desc model.TypeDescriptor, lit *model.LiteralOverride, strategy model.Strategy, path *model.TypePath) Expr {
	if lit != nil {
		return e.literal(lit)
	}

	typ := e.typeString(desc)

	k, ok := e.synth(*desc.Key, nil, strategy, path.MapKey())
	if !ok {
		return Map{Type: typ}
	}

	v, ok := e.synth(*desc.Value, nil, strategy, path.MapValue())
	if !ok {
		return Map{Type: typ}
	}

	return Map{Type: typ, Entries: []Entry{{Key: k, Value: v}}}
}

func (e *Engine) set(desc model.TypeDescriptor, lit *model.LiteralOverride) Expr {
	if lit != nil {
		return e.literal(lit)
	}

	return Map{Type: e.typeString(desc)}
}

func (e *Engine) optional(desc model.TypeDescriptor, lit *model.LiteralOverride, strategy model.Strategy, path *model.TypePath) (Expr, bool) {
	if lit.IsNone() {
		return Nil{}, true
	}

	elem := *desc.Elem
	if elem.Kind == model.KindOptional || e.isSelf(elem) {
		return Nil{}, true
	}

	x, ok := e.synth(elem, lit, strategy, path.Pointer())
	if !ok {
		return nil, false
	}

	if p, ok := addressOf(x); ok {
		return p, true
	}

	e.useHelper(HelperPtr)

	return Call{Func: HelperPtr, TypeArgs: []string{e.typeString(elem)}, Args: []Expr{x}}, true
}

func (e *Engine) tuple(desc model.TypeDescriptor, lit *model.LiteralOverride, strategy model.Strategy, path *model.TypePath) Expr {
	if lit != nil {
		return e.literal(lit)
	}

	fields := make([]Field, 0, len(desc.Elems))

	for i, el := range desc.Elems {
		label := fmt.Sprintf("F%d", i)
		if i < len(desc.Labels) && desc.Labels[i] != "" {
			label = desc.Labels[i]
		}

		x, ok := e.synth(el, nil, strategy, path.Field(label))
		if !ok {
			continue
		}

		fields = append(fields, Field{Name: label, Value: x})
	}

	return Struct{Type: e.typeString(desc), Fields: fields}
}

func (e *Engine) function(desc model.TypeDescriptor, lit *model.LiteralOverride) Expr {
	if lit != nil {
		return e.literal(lit)
	}

	e.noteType(desc)

	results := make([]string, len(desc.Results))
	for i, r := range desc.Results {
		results[i] = r.String()
	}

	return Func{Signature: desc.Signature(true), Results: results}
}

func (e *Engine) named(desc model.TypeDescriptor, lit *model.LiteralOverride, strategy model.Strategy, path *model.TypePath) (Expr, bool) {
	if desc.IsChan() {
		return e.channel(desc, lit, strategy, path), true
	}

	// an override wins over the peer entry point
	if lit != nil {
		return e.literal(lit), true
	}

	if desc.Name == "error" || desc.Name == "any" {
		return Nil{}, true
	}

	if e.isSelf(desc) {
		e.report(diagnostic.DiagnosticInfo, diagnostic.CodeRecursiveReference,
			"self reference left at its zero value", path)

		return nil, false
	}

	if peer, ok := e.peers.Lookup(desc, e.pkgPath); ok {
		return Call{Func: e.entry(peer, peer.Single)}, true
	}

	e.unresolved(desc, path)

	return nil, false
}

func (e *Engine) channel(desc model.TypeDescriptor, lit *model.LiteralOverride, strategy model.Strategy, path *model.TypePath) Expr {
	if lit != nil {
		return e.literal(lit)
	}

	elem := desc.Args[0]
	typ := e.typeString(elem)
	bare := Call{Func: "make", Args: []Expr{Lit{Code: "chan " + typ}}}

	if desc.Name != model.ChanReceiveOnly {
		return bare
	}

	x, ok := e.synth(elem, nil, strategy, path.Field("<-"))
	if !ok {
		return bare
	}

	e.useHelper(HelperSeeded)

	return Call{Func: HelperSeeded, TypeArgs: []string{typ}, Args: []Expr{x}}
}

// zero returns the zero value of a type as "*new(T)".
func (e *Engine) zero(desc model.TypeDescriptor) Expr {
	return Call{Func: "new", Args: []Expr{Lit{Code: e.typeString(desc)}}, Deref: true}
}

func (e *Engine) entry(peer Peer, name string) string {
	e.refs[peer.Key] = struct{}{}

	if peer.PkgPath == "" || peer.PkgPath == e.pkgPath {
		return name
	}

	e.addImport(peer.PkgPath, peer.PkgName)

	return peer.PkgName + "." + name
}

func (e *Engine) isSelf(desc model.TypeDescriptor) bool {
	if e.self == "" || !desc.IsNamed() || len(desc.Args) > 0 {
		return false
	}

	pkgPath := desc.PkgPath
	if pkgPath == "" {
		if desc.Qualifier() != "" {
			return false
		}

		pkgPath = e.pkgPath
	}

	return model.TypeKey(pkgPath, desc.LocalName()) == e.self
}

// typeString spells a type and records the imports it needs.
func (e *Engine) typeString(desc model.TypeDescriptor) string {
	e.noteType(desc)

	return desc.String()
}

func (e *Engine) noteType(desc model.TypeDescriptor) {
	desc.Walk(func(d model.TypeDescriptor) {
		if !d.IsNamed() || d.IsChan() || d.Qualifier() == "" {
			return
		}

		pkgPath := d.PkgPath
		if pkgPath == "" {
			pkgPath = primitive.QualifierPath(d.Qualifier())
		}

		e.addImport(pkgPath, d.Qualifier())
	})
}

func (e *Engine) addImport(pkgPath, name string) {
	if pkgPath == "" || pkgPath == e.pkgPath {
		return
	}

	if name == "" {
		name = common.PkgAlias(pkgPath)
	}

	e.imports[pkgPath] = name
}

func (e *Engine) useHelper(name string) {
	h, ok := LookupHelper(name)
	if !ok {
		return
	}

	e.helpers[name] = struct{}{}

	for _, p := range h.Imports {
		e.addImport(p, "")
	}
}

func (e *Engine) unresolved(desc model.TypeDescriptor, path *model.TypePath) {
	if e.opts.Strict {
		e.report(diagnostic.DiagnosticError, diagnostic.CodeUnresolvedField,
			fmt.Sprintf("no mock source for %s", desc), path)

		return
	}

	e.report(diagnostic.DiagnosticWarning, diagnostic.CodeUnresolvedField,
		fmt.Sprintf("no mock source for %s; left at its zero value", desc), path)
}

// report records a diagnostic once per code and path.
func (e *Engine) report(severity diagnostic.DiagnosticSeverity, code, message string, path *model.TypePath) {
	key := code + "\x00" + path.String()
	if _, ok := e.seen[key]; ok {
		return
	}

	e.seen[key] = struct{}{}

	e.opts.Logger.Debug("synthesis diagnostic",
		slog.String("code", code),
		slog.String("path", path.String()))

	e.diags.Add(diagnostic.Diagnostic{
		Severity:  severity,
		Code:      code,
		Message:   message,
		TypeName:  e.typeName,
		FieldPath: path.String(),
	})
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	slices.Sort(out)

	return out
}
