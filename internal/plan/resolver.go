package plan

import (
	"fmt"
	"log/slog"
	"slices"

	"mock-generator/internal/diagnostic"
	"mock-generator/internal/match"
	"mock-generator/internal/model"
	"mock-generator/primitive"
)

// Resolver performs the resolution pipeline.
type Resolver struct {
	logger *slog.Logger
}

// NewResolver creates a new Resolver. A nil logger discards output.
func NewResolver(logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Resolver{logger: logger}
}

// Resolve produces the field lists of a declaration. It never fails: fields
// that cannot be resolved are dropped and reported.
func (r *Resolver) Resolve(decl *model.Declaration) *Resolution {
	res := &Resolution{Decl: decl}
	root := model.NewTypePath(decl.Name)

	switch decl.Kind {
	case model.DeclRecord:
		p := r.resolveRecord(decl, root, &res.Diagnostics)
		res.Record = &p

		r.applyExternal(decl, root, decl.Options.Overrides, []*Plan{res.Record}, &res.Diagnostics)

		r.logger.Debug("resolved record",
			slog.String("type", decl.Key()),
			slog.String("path", p.Path.String()),
			slog.Int("fields", len(p.Fields)))

	case model.DeclEnum:
		plans := make([]*Plan, 0, len(decl.Cases))

		for _, c := range decl.Cases {
			fields := r.memberwise(decl.Name, root.Field(c.Name), c.Members, &res.Diagnostics)
			res.Cases = append(res.Cases, CasePlan{Case: c, Plan: Plan{Path: PathMemberwise, Fields: fields}})
		}

		for i := range res.Cases {
			plans = append(plans, &res.Cases[i].Plan)
		}

		r.applyExternal(decl, root, decl.Options.Overrides, plans, &res.Diagnostics)

		r.logger.Debug("resolved enum",
			slog.String("type", decl.Key()),
			slog.Int("cases", len(res.Cases)))

	case model.DeclOther:
	}

	r.checkOverrides(decl, root, res, &res.Diagnostics)

	return res
}

func (r *Resolver) resolveRecord(decl *model.Declaration, root *model.TypePath, diags *diagnostic.Diagnostics) Plan {
	if len(decl.Constructors) == 0 {
		return Plan{Path: PathMemberwise, Fields: r.memberwise(decl.Name, root, decl.Members, diags)}
	}

	ctor := richest(decl.Constructors)

	// constructor parameters pick up overrides from members with the same name
	overrides := make(map[string]*model.LiteralOverride)
	for _, m := range decl.Members {
		if m.IsStored() && m.Override != nil {
			overrides[m.Name()] = m.Override
		}
	}

	fields := make([]model.FieldSpec, 0, len(ctor.Params))

	for _, p := range ctor.Params {
		if p.Type == nil {
			diags.AddInfo(diagnostic.CodeUntypedMember,
				fmt.Sprintf("parameter %q of %s has no type and is skipped", p.Name, ctor.Name),
				decl.Name, root.Field(p.Name).String())

			continue
		}

		fields = append(fields, model.FieldSpec{
			Name:     p.Name,
			Type:     *p.Type,
			Override: overrides[p.Name],
			Variadic: p.Variadic,
		})
	}

	return Plan{Path: PathConstructor, Constructor: &ctor, Fields: fields}
}

// richest returns the constructor with the most parameters, the first on ties.
func richest(ctors []model.Constructor) model.Constructor {
	best := ctors[0]

	for _, c := range ctors[1:] {
		if len(c.Params) > len(best.Params) {
			best = c
		}
	}

	return best
}

func (r *Resolver) memberwise(
	typeName string,
	path *model.TypePath,
	members []model.Member,
	diags *diagnostic.Diagnostics,
) []model.FieldSpec {
	fields := make([]model.FieldSpec, 0, len(members))

	for _, m := range members {
		if !m.IsStored() {
			continue
		}

		if m.Type == nil {
			diags.AddInfo(diagnostic.CodeUntypedMember,
				fmt.Sprintf("member %q has no type annotation and is skipped", m.Name()),
				typeName, path.Field(m.Name()).String())

			continue
		}

		fields = append(fields, model.FieldSpec{
			Name:     m.Name(),
			Type:     *m.Type,
			Override: m.Override,
		})
	}

	return fields
}

// applyExternal attaches overrides keyed by field name. Enum overrides are
// keyed "Case.Field". Unknown names are reported with suggestions.
func (r *Resolver) applyExternal(
	decl *model.Declaration,
	root *model.TypePath,
	overrides map[string]*model.LiteralOverride,
	plans []*Plan,
	diags *diagnostic.Diagnostics,
) {
	if len(overrides) == 0 {
		return
	}

	index := make(map[string]*model.FieldSpec)

	for pi, p := range plans {
		for i := range p.Fields {
			key := p.Fields[i].Name
			if decl.Kind == model.DeclEnum {
				key = decl.Cases[pi].Name + "." + key
			}

			if key != "" {
				index[key] = &p.Fields[i]
			}
		}
	}

	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}

	slices.Sort(names)

	known := make([]string, 0, len(index))
	for k := range index {
		known = append(known, k)
	}

	slices.Sort(known)

	for _, name := range names {
		field, ok := index[name]
		if !ok {
			diags.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.DiagnosticWarning,
				Code:        diagnostic.CodeUnknownOverrideField,
				Message:     fmt.Sprintf("override names unknown field %q", name),
				TypeName:    decl.Name,
				FieldPath:   root.Field(name).String(),
				Suggestions: match.Suggest(name, known),
			})

			continue
		}

		field.Override = overrides[name]
	}
}

// checkOverrides validates every attached override against its field type.
func (r *Resolver) checkOverrides(decl *model.Declaration, root *model.TypePath, res *Resolution, diags *diagnostic.Diagnostics) {
	check := func(path *model.TypePath, fields []model.FieldSpec) {
		for i := range fields {
			f := &fields[i]
			if f.Override == nil {
				continue
			}

			out, verdict, kind := CheckOverride(f.Type, f.Override)
			fieldPath := path.Field(f.Name).String()

			switch verdict {
			case primitive.VerdictAccept:
				f.Override = out

			case primitive.VerdictReject:
				rejected := *f.Override
				rejected.Rejected = true
				f.Override = &rejected

				diags.AddWarning(diagnostic.CodeOverrideRejected,
					fmt.Sprintf("%s does not accept overrides; using the generated value", primitive.TypeName(kind)),
					decl.Name, fieldPath)

			case primitive.VerdictInvalid:
				diags.AddWarning(diagnostic.CodeOverrideInvalid,
					fmt.Sprintf("override %s does not fit %s; using the generated value", f.Override, f.Type),
					decl.Name, fieldPath)

				f.Override = nil
			}
		}
	}

	if res.Record != nil {
		check(root, res.Record.Fields)
	}

	for i := range res.Cases {
		check(root.Field(res.Cases[i].Case.Name), res.Cases[i].Plan.Fields)
	}
}

// CheckOverride validates a literal against a field type. For catalog leaves
// (also behind a pointer) it defers to the catalog; composite fields accept
// nil and identifiers; other named types accept any literal.
func CheckOverride(desc model.TypeDescriptor, lit *model.LiteralOverride) (*model.LiteralOverride, primitive.Verdict, primitive.KindEnum) {
	if kind := primitive.Lookup(desc); kind.IsValid() {
		out, verdict := primitive.Check(kind, lit)
		return out, verdict, kind
	}

	accept := func() (*model.LiteralOverride, primitive.Verdict, primitive.KindEnum) {
		return lit, primitive.VerdictAccept, 0
	}
	invalid := func() (*model.LiteralOverride, primitive.Verdict, primitive.KindEnum) {
		return lit, primitive.VerdictInvalid, 0
	}

	switch desc.Kind {
	case model.KindOptional:
		if lit.IsNone() {
			return accept()
		}

		if desc.Elem.Kind == model.KindOptional {
			return invalid()
		}

		return CheckOverride(*desc.Elem, lit)

	case model.KindArray, model.KindDictionary, model.KindSet, model.KindFunction:
		if lit.Kind == model.LiteralIdent || (lit.IsNone() && !desc.IsFixed()) {
			return accept()
		}

		return invalid()

	case model.KindTuple:
		if lit.Kind == model.LiteralIdent {
			return accept()
		}

		return invalid()

	case model.KindNamed:
		if desc.IsChan() && lit.Kind != model.LiteralIdent && !lit.IsNone() {
			return invalid()
		}

		return accept()

	default:
		return accept()
	}
}
