package config

import (
	"errors"
	"fmt"
	"strings"

	"mock-generator/internal/analyze"
	"mock-generator/internal/match"
	"mock-generator/internal/model"
)

// ErrUnknownType is returned when a types entry names no loaded declaration.
var ErrUnknownType = errors.New("unknown type")

// Includes returns the "pkg.Type" names listed under types.
func (f *File) Includes() []string {
	out := make([]string, 0, len(f.Types))
	for _, tc := range f.Types {
		out = append(out, tc.Name)
	}

	return out
}

// Apply pins the settings of the types entries onto the matching
// declarations. Entries naming no declaration are reported together.
func (f *File) Apply(decls []*model.Declaration) error {
	byKey := make(map[string]*model.Declaration, len(decls))
	keys := make([]string, 0, len(decls))

	for _, d := range decls {
		k := analyze.Key(d)
		byKey[k] = d
		keys = append(keys, k)
	}

	var errs []error

	for _, tc := range f.Types {
		decl, ok := byKey[tc.Name]
		if !ok {
			err := fmt.Errorf("%w %q", ErrUnknownType, tc.Name)
			if s := match.Suggest(tc.Name, keys); len(s) > 0 {
				err = fmt.Errorf("%w (did you mean %s?)", err, strings.Join(s, ", "))
			}

			errs = append(errs, err)

			continue
		}

		if err := tc.apply(&decl.Options); err != nil {
			errs = append(errs, fmt.Errorf("type %s: %w", tc.Name, err))
		}
	}

	return errors.Join(errs...)
}

func (tc TypeConfig) apply(opts *model.Options) error {
	if tc.Count != nil {
		opts.ItemCount = *tc.Count
	}

	if tc.Strategy != "" {
		s, err := model.ParseStrategy(tc.Strategy)
		if err != nil {
			return err
		}

		opts.Strategy = s
	}

	if len(tc.Overrides) > 0 && opts.Overrides == nil {
		opts.Overrides = make(map[string]*model.LiteralOverride, len(tc.Overrides))
	}

	for field, lit := range tc.Overrides {
		opts.Overrides[field] = lit.Override()
	}

	return nil
}

// Declarations converts the shapes to declarations, in file order.
func (f *File) Declarations() ([]*model.Declaration, error) {
	out := make([]*model.Declaration, 0, len(f.Shapes))

	var errs []error

	for i, s := range f.Shapes {
		decl, err := s.Declaration()
		if err != nil {
			errs = append(errs, fmt.Errorf("shapes[%d] %s: %w", i, s.Name, err))
			continue
		}

		decl.Position = fmt.Sprintf("shapes[%d]", i)
		out = append(out, decl)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return out, nil
}

// Declaration converts one shape.
func (s Shape) Declaration() (*model.Declaration, error) {
	kind, err := model.ParseDeclKind(s.Kind)
	if err != nil {
		return nil, err
	}

	strategy, err := model.ParseStrategy(s.Strategy)
	if err != nil {
		return nil, err
	}

	decl := &model.Declaration{
		Name:       s.Name,
		Kind:       kind,
		Underlying: s.Underlying,
		Methods:    s.Methods,
		Options:    model.Options{ItemCount: model.DefaultItemCount, Strategy: strategy},
	}

	if s.Count != nil {
		decl.Options.ItemCount = *s.Count
	}

	if decl.Members, err = convertMembers(s.Members); err != nil {
		return nil, err
	}

	for _, c := range s.Constructors {
		ctor := model.Constructor{Name: c.Name, Pointer: c.Pointer}

		for _, p := range c.Params {
			desc, err := analyze.ParseType(p.Type)
			if err != nil {
				return nil, fmt.Errorf("constructor %s: %w", c.Name, err)
			}

			ctor.Params = append(ctor.Params, model.Param{Name: p.Name, Type: &desc, Variadic: p.Variadic})
		}

		decl.Constructors = append(decl.Constructors, ctor)
	}

	for _, c := range s.Cases {
		ec := model.EnumCase{Name: c.Name, Pointer: c.Pointer}

		if ec.Form, err = parseCaseForm(c.Form); err != nil {
			return nil, fmt.Errorf("case %s: %w", c.Name, err)
		}

		if ec.Members, err = convertMembers(c.Members); err != nil {
			return nil, fmt.Errorf("case %s: %w", c.Name, err)
		}

		decl.Cases = append(decl.Cases, ec)
	}

	return decl, nil
}

func convertMembers(in []ShapeMember) ([]model.Member, error) {
	out := make([]model.Member, 0, len(in))

	for _, sm := range in {
		m := model.Member{Names: sm.Name}

		if sm.Type != "" {
			desc, err := analyze.ParseType(sm.Type)
			if err != nil {
				return nil, fmt.Errorf("member %s: %w", sm.Name.First(), err)
			}

			m.Type = &desc
		}

		accessor, err := model.ParseAccessor(sm.Accessor)
		if err != nil {
			return nil, fmt.Errorf("member %s: %w", sm.Name.First(), err)
		}

		m.Accessor = accessor

		if sm.Override != nil {
			m.Override = sm.Override.Override()
		}

		out = append(out, m)
	}

	return out, nil
}

func parseCaseForm(s string) (model.CaseForm, error) {
	switch strings.ToLower(s) {
	case "", "value":
		return model.CaseValue, nil
	case "struct":
		return model.CaseStruct, nil
	case "call":
		return model.CaseCall, nil
	default:
		return model.CaseValue, fmt.Errorf("unknown case form %q", s)
	}
}
