package analyze

import (
	"go/types"
	"strconv"

	"mock-generator/internal/model"
)

// describe converts a checked type to a descriptor. Named types are spelled
// relative to pkg: unqualified when declared in pkg, "name.Type" otherwise.
// Types with no descriptor variant become opaque Named descriptors.
func describe(t types.Type, pkg *types.Package) model.TypeDescriptor {
	switch tt := t.(type) {
	case *types.Alias:
		if obj := tt.Obj(); obj.Pkg() == nil && obj.Name() == "any" {
			return model.Named("any", "")
		}

		return describe(types.Unalias(tt), pkg)

	case *types.Basic:
		return model.Scalar(tt.Name())

	case *types.Pointer:
		return model.Optional(describe(tt.Elem(), pkg))

	case *types.Slice:
		return model.Array(describe(tt.Elem(), pkg))

	case *types.Array:
		return model.FixedArray(strconv.FormatInt(tt.Len(), 10), describe(tt.Elem(), pkg))

	case *types.Map:
		if isEmptyStruct(tt.Elem()) {
			return model.Set(describe(tt.Key(), pkg))
		}

		return model.Dictionary(describe(tt.Key(), pkg), describe(tt.Elem(), pkg))

	case *types.Struct:
		labels := make([]string, tt.NumFields())
		elems := make([]model.TypeDescriptor, tt.NumFields())

		for i := range tt.NumFields() {
			labels[i] = tt.Field(i).Name()
			elems[i] = describe(tt.Field(i).Type(), pkg)
		}

		return model.Tuple(labels, elems...)

	case *types.Signature:
		return model.Function(describeTuple(tt.Params(), pkg), describeTuple(tt.Results(), pkg), tt.Variadic())

	case *types.Chan:
		dir := model.ChanBidirectional

		switch tt.Dir() {
		case types.SendOnly:
			dir = model.ChanSendOnly
		case types.RecvOnly:
			dir = model.ChanReceiveOnly
		case types.SendRecv:
		}

		return model.Chan(dir, describe(tt.Elem(), pkg))

	case *types.Named:
		obj := tt.Obj()
		if obj.Pkg() == nil {
			// predeclared: error, comparable
			return model.Named(obj.Name(), "")
		}

		name := obj.Name()
		if obj.Pkg() != pkg {
			name = obj.Pkg().Name() + "." + name
		}

		var args []model.TypeDescriptor
		for i := range tt.TypeArgs().Len() {
			args = append(args, describe(tt.TypeArgs().At(i), pkg))
		}

		return model.Named(name, obj.Pkg().Path(), args...)

	case *types.Interface:
		if tt.Empty() {
			return model.Named("any", "")
		}
	}

	return model.Named(types.TypeString(t, types.RelativeTo(pkg)), "")
}

func describeTuple(tuple *types.Tuple, pkg *types.Package) []model.TypeDescriptor {
	out := make([]model.TypeDescriptor, tuple.Len())
	for i := range tuple.Len() {
		out[i] = describe(tuple.At(i).Type(), pkg)
	}

	return out
}

func isEmptyStruct(t types.Type) bool {
	st, ok := t.Underlying().(*types.Struct)

	return ok && st.NumFields() == 0
}
