package analyze

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"

	"mock-generator/internal/model"
)

// ErrUnsupportedType is returned for type expressions with no descriptor variant.
var ErrUnsupportedType = errors.New("unsupported type expression")

// ParseType classifies a Go type expression written as text, as found in
// configuration shapes. Classification is syntactic: qualified names keep
// their qualifier and carry no import path.
func ParseType(src string) (model.TypeDescriptor, error) {
	expr, err := parser.ParseExpr(src)
	if err != nil {
		return model.TypeDescriptor{}, fmt.Errorf("parse type %q: %w", src, err)
	}

	desc, err := classifyExpr(expr)
	if err != nil {
		return model.TypeDescriptor{}, fmt.Errorf("type %q: %w", src, err)
	}

	return desc, nil
}

func classifyExpr(expr ast.Expr) (model.TypeDescriptor, error) {
	switch x := expr.(type) {
	case *ast.ParenExpr:
		return classifyExpr(x.X)

	case *ast.Ident:
		if tn, ok := types.Universe.Lookup(x.Name).(*types.TypeName); ok {
			if _, basic := tn.Type().(*types.Basic); basic {
				return model.Scalar(x.Name), nil
			}
		}

		return model.Named(x.Name, ""), nil

	case *ast.SelectorExpr:
		pkg, ok := x.X.(*ast.Ident)
		if !ok {
			return model.TypeDescriptor{}, ErrUnsupportedType
		}

		return model.Named(pkg.Name+"."+x.Sel.Name, ""), nil

	case *ast.StarExpr:
		elem, err := classifyExpr(x.X)
		if err != nil {
			return model.TypeDescriptor{}, err
		}

		return model.Optional(elem), nil

	case *ast.ArrayType:
		elem, err := classifyExpr(x.Elt)
		if err != nil {
			return model.TypeDescriptor{}, err
		}

		switch l := x.Len.(type) {
		case nil:
			return model.Array(elem), nil
		case *ast.BasicLit:
			if l.Kind != token.INT {
				return model.TypeDescriptor{}, ErrUnsupportedType
			}

			return model.FixedArray(l.Value, elem), nil
		case *ast.Ident:
			return model.FixedArray(l.Name, elem), nil
		default:
			return model.TypeDescriptor{}, ErrUnsupportedType
		}

	case *ast.MapType:
		key, err := classifyExpr(x.Key)
		if err != nil {
			return model.TypeDescriptor{}, err
		}

		if st, ok := x.Value.(*ast.StructType); ok && st.Fields.NumFields() == 0 {
			return model.Set(key), nil
		}

		value, err := classifyExpr(x.Value)
		if err != nil {
			return model.TypeDescriptor{}, err
		}

		return model.Dictionary(key, value), nil

	case *ast.StructType:
		var (
			labels []string
			elems  []model.TypeDescriptor
		)

		for _, f := range x.Fields.List {
			desc, err := classifyExpr(f.Type)
			if err != nil {
				return model.TypeDescriptor{}, err
			}

			if len(f.Names) == 0 {
				labels = append(labels, "")
				elems = append(elems, desc)

				continue
			}

			for _, n := range f.Names {
				labels = append(labels, n.Name)
				elems = append(elems, desc)
			}
		}

		return model.Tuple(labels, elems...), nil

	case *ast.FuncType:
		params, variadic, err := classifyFields(x.Params)
		if err != nil {
			return model.TypeDescriptor{}, err
		}

		results, _, err := classifyFields(x.Results)
		if err != nil {
			return model.TypeDescriptor{}, err
		}

		return model.Function(params, results, variadic), nil

	case *ast.ChanType:
		elem, err := classifyExpr(x.Value)
		if err != nil {
			return model.TypeDescriptor{}, err
		}

		switch x.Dir {
		case ast.SEND:
			return model.Chan(model.ChanSendOnly, elem), nil
		case ast.RECV:
			return model.Chan(model.ChanReceiveOnly, elem), nil
		default:
			return model.Chan(model.ChanBidirectional, elem), nil
		}

	case *ast.IndexExpr:
		return classifyGeneric(x.X, []ast.Expr{x.Index})

	case *ast.IndexListExpr:
		return classifyGeneric(x.X, x.Indices)

	case *ast.InterfaceType:
		if x.Methods.NumFields() == 0 {
			return model.Named("any", ""), nil
		}
	}

	return model.TypeDescriptor{}, ErrUnsupportedType
}

func classifyGeneric(base ast.Expr, indices []ast.Expr) (model.TypeDescriptor, error) {
	named, err := classifyExpr(base)
	if err != nil {
		return model.TypeDescriptor{}, err
	}

	if !named.IsNamed() {
		return model.TypeDescriptor{}, ErrUnsupportedType
	}

	args := make([]model.TypeDescriptor, len(indices))
	for i, idx := range indices {
		if args[i], err = classifyExpr(idx); err != nil {
			return model.TypeDescriptor{}, err
		}
	}

	return model.Named(named.Name, named.PkgPath, args...), nil
}

// classifyFields flattens a parameter or result list; "a, b int" yields two entries.
func classifyFields(list *ast.FieldList) ([]model.TypeDescriptor, bool, error) {
	if list == nil {
		return nil, false, nil
	}

	var (
		out      []model.TypeDescriptor
		variadic bool
	)

	for _, f := range list.List {
		typ := f.Type
		if ell, ok := typ.(*ast.Ellipsis); ok {
			variadic = true
			typ = &ast.ArrayType{Elt: ell.Elt}
		}

		desc, err := classifyExpr(typ)
		if err != nil {
			return nil, false, err
		}

		for range max(len(f.Names), 1) {
			out = append(out, desc)
		}
	}

	return out, variadic, nil
}
