package synth

import (
	"mock-generator/internal/model"
	"mock-generator/internal/plan"
)

// single builds the representative instance of a resolved declaration.
// Enums pick a case uniformly at random, whatever the strategy.
func (e *Engine) single(res *plan.Resolution, strategy model.Strategy) Expr {
	if res.Record != nil {
		return e.record(res.Decl, res.Record, strategy)
	}

	if len(res.Cases) == 0 {
		return nil
	}

	return e.enumCase(res.Decl, res.Cases[e.rnd.IntN(len(res.Cases))], strategy)
}

// batch builds n independent instances. Enum cases are cycled in
// declaration order: slot i holds case i mod k.
func (e *Engine) batch(res *plan.Resolution, n int, strategy model.Strategy) []Expr {
	out := make([]Expr, 0, n)

	for i := range n {
		switch {
		case res.Record != nil:
			out = append(out, e.record(res.Decl, res.Record, strategy))
		case len(res.Cases) > 0:
			out = append(out, e.enumCase(res.Decl, res.Cases[i%len(res.Cases)], strategy))
		}
	}

	return out
}

func (e *Engine) record(decl *model.Declaration, p *plan.Plan, strategy model.Strategy) Expr {
	root := model.NewTypePath(decl.Name)

	if p.Path == plan.PathConstructor {
		return Call{
			Func:  p.Constructor.Name,
			Args:  e.positional(p.Fields, strategy, root),
			Deref: p.Constructor.Pointer,
		}
	}

	return Struct{Type: decl.Name, Fields: e.keyed(p.Fields, strategy, root)}
}

func (e *Engine) enumCase(decl *model.Declaration, cp plan.CasePlan, strategy model.Strategy) Expr {
	c := cp.Case
	path := model.NewTypePath(decl.Name).Field(c.Name)

	switch c.Form {
	case model.CaseStruct:
		s := Struct{Type: c.Name, Fields: e.keyed(cp.Plan.Fields, strategy, path)}
		if c.Pointer {
			return Addr{X: s}
		}

		return s

	case model.CaseCall:
		return Call{Func: c.Name, Args: e.positional(cp.Plan.Fields, strategy, path)}

	default:
		return Ident{Name: c.Name}
	}
}

// keyed synthesizes fields of a composite literal, omitting those without
// an expression.
func (e *Engine) keyed(fields []model.FieldSpec, strategy model.Strategy, path *model.TypePath) []Field {
	out := make([]Field, 0, len(fields))

	for _, f := range fields {
		x, ok := e.synth(f.Type, f.Override, strategy, path.Field(f.Name))
		if !ok {
			continue
		}

		out = append(out, Field{Name: f.Name, Value: x})
	}

	return out
}

// positional synthesizes call arguments. Arguments without an expression are
// zero-filled so the call keeps its arity; variadic parameters are left out.
func (e *Engine) positional(fields []model.FieldSpec, strategy model.Strategy, path *model.TypePath) []Expr {
	out := make([]Expr, 0, len(fields))

	for _, f := range fields {
		if f.Variadic {
			continue
		}

		x, ok := e.synth(f.Type, f.Override, strategy, path.Field(f.Name))
		if !ok {
			x = e.zero(f.Type)
		}

		out = append(out, x)
	}

	return out
}
