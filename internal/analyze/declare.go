package analyze

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/tools/go/packages"

	"mock-generator/internal/diagnostic"
	"mock-generator/internal/model"
)

// scanner builds declarations from one type-checked package.
type scanner struct {
	pkg *packages.Package
}

func (s *scanner) declaration(ts *ast.TypeSpec) *model.Declaration {
	decl := &model.Declaration{
		Name:     ts.Name.Name,
		PkgPath:  s.pkg.PkgPath,
		PkgName:  s.pkg.Name,
		Position: s.position(ts.Pos()),
		Options:  model.Options{ItemCount: model.DefaultItemCount},
	}

	obj, ok := s.pkg.TypesInfo.Defs[ts.Name].(*types.TypeName)
	if !ok || ts.TypeParams != nil || ts.Assign.IsValid() {
		return decl
	}

	named, ok := obj.Type().(*types.Named)
	if !ok {
		return decl
	}

	root := model.NewTypePath(decl.Name)

	switch u := named.Underlying().(type) {
	case *types.Struct:
		decl.Kind = model.DeclRecord
		decl.Members = s.members(decl, u, root)
		decl.Constructors = s.constructors(named)

	case *types.Basic:
		decl.Kind = model.DeclEnum
		decl.Underlying = u.Name()
		decl.Cases = s.constCases(named)

	case *types.Interface:
		if u.NumMethods() == 0 {
			return decl
		}

		decl.Kind = model.DeclEnum
		decl.Methods = s.methods(u)
		decl.Cases = s.sealedCases(decl, named, u, root)
	}

	return decl
}

// members lists the fields of a struct. Fields tagged `mock:"-"` are
// skipped; malformed tag values are reported on the declaration.
func (s *scanner) members(decl *model.Declaration, st *types.Struct, path *model.TypePath) []model.Member {
	var out []model.Member

	for i := range st.NumFields() {
		f := st.Field(i)
		if f.Name() == "_" {
			continue
		}

		raw, tagged := reflect.StructTag(st.Tag(i)).Lookup(TagName)
		if tagged && raw == TagSkip {
			continue
		}

		desc := describe(f.Type(), s.pkg.Types)
		m := model.Member{Names: []string{f.Name()}, Type: &desc}

		if tagged {
			lit, err := model.ParseLiteral(raw)
			if err != nil {
				decl.Diagnostics.AddError(diagnostic.CodeOverrideMalformed,
					fmt.Sprintf("%s tag: %v", TagName, err), decl.Name, path.Field(f.Name()).String())
			} else {
				m.Override = lit
			}
		}

		out = append(out, m)
	}

	return out
}

// constructors finds package functions New<Type>[Suffix] returning the type
// or a pointer to it, in source order.
func (s *scanner) constructors(named *types.Named) []model.Constructor {
	prefix := "New" + named.Obj().Name()

	var out []model.Constructor

	for _, fn := range s.objects(func(o types.Object) bool {
		suffix, ok := strings.CutPrefix(o.Name(), prefix)
		if !ok {
			return false
		}

		if r, _ := utf8.DecodeRuneInString(suffix); suffix != "" && unicode.IsLower(r) {
			return false
		}

		_, isFunc := o.(*types.Func)

		return isFunc
	}) {
		sig, _ := fn.Type().(*types.Signature)
		if sig == nil || sig.Recv() != nil || sig.TypeParams().Len() > 0 || sig.Results().Len() != 1 {
			continue
		}

		ctor := model.Constructor{Name: fn.Name()}

		switch res := sig.Results().At(0).Type(); {
		case types.Identical(res, named):
		case isPointerTo(res, named):
			ctor.Pointer = true
		default:
			continue
		}

		params := sig.Params()
		for i := range params.Len() {
			p := params.At(i)
			desc := describe(p.Type(), s.pkg.Types)

			ctor.Params = append(ctor.Params, model.Param{
				Name:     p.Name(),
				Type:     &desc,
				Variadic: sig.Variadic() && i == params.Len()-1,
			})
		}

		out = append(out, ctor)
	}

	return out
}

// constCases lists the constants of a named basic type in source order.
func (s *scanner) constCases(named *types.Named) []model.EnumCase {
	var out []model.EnumCase

	for _, c := range s.objects(func(o types.Object) bool {
		_, isConst := o.(*types.Const)
		return isConst && types.Identical(o.Type(), named)
	}) {
		out = append(out, model.EnumCase{Name: c.Name(), Form: model.CaseValue})
	}

	return out
}

// sealedCases lists the struct types of the package implementing an
// interface, in source order.
func (s *scanner) sealedCases(decl *model.Declaration, named *types.Named, iface *types.Interface, root *model.TypePath) []model.EnumCase {
	var out []model.EnumCase

	for _, obj := range s.objects(func(o types.Object) bool {
		tn, ok := o.(*types.TypeName)
		return ok && !tn.IsAlias() && tn != named.Obj()
	}) {
		impl, ok := obj.Type().(*types.Named)
		if !ok || impl.TypeParams().Len() > 0 {
			continue
		}

		st, ok := impl.Underlying().(*types.Struct)
		if !ok {
			continue
		}

		c := model.EnumCase{Name: obj.Name(), Form: model.CaseStruct}

		switch {
		case types.Implements(impl, iface):
		case types.Implements(types.NewPointer(impl), iface):
			c.Pointer = true
		default:
			continue
		}

		c.Members = s.members(decl, st, root.Field(c.Name))
		out = append(out, c)
	}

	return out
}

// methods renders the method set of an interface as "Name(params) results".
func (s *scanner) methods(iface *types.Interface) []string {
	qual := types.RelativeTo(s.pkg.Types)
	out := make([]string, 0, iface.NumMethods())

	for i := range iface.NumMethods() {
		m := iface.Method(i)
		sig := strings.TrimPrefix(types.TypeString(m.Type(), qual), "func")
		out = append(out, m.Name()+sig)
	}

	return out
}

// objects returns the package-level objects accepted by keep, in source order.
func (s *scanner) objects(keep func(types.Object) bool) []types.Object {
	scope := s.pkg.Types.Scope()

	var out []types.Object

	for _, name := range scope.Names() {
		if obj := scope.Lookup(name); keep(obj) {
			out = append(out, obj)
		}
	}

	slices.SortFunc(out, func(a, b types.Object) int {
		return int(a.Pos()) - int(b.Pos())
	})

	return out
}

func (s *scanner) position(pos token.Pos) string {
	p := s.pkg.Fset.Position(pos)

	return fmt.Sprintf("%s:%d", filepath.Base(p.Filename), p.Line)
}

func isPointerTo(t types.Type, named *types.Named) bool {
	ptr, ok := t.(*types.Pointer)

	return ok && types.Identical(ptr.Elem(), named)
}
