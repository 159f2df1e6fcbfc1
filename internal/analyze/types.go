package analyze

import (
	"mock-generator/internal/model"
)

// Annotation names recognized in source.
const (
	// Directive marks a type declaration for generation. Options follow as
	// key=value pairs: //mockgen:generate count=5 strategy=random
	Directive = "//mockgen:generate"
	// TagName is the struct tag carrying a field override: `mock:"StatusPaid"`.
	// The value "-" excludes the field.
	TagName = "mock"
	// TagSkip excludes a field from synthesis.
	TagSkip = "-"
)

// PackageInfo describes a loaded package.
type PackageInfo struct {
	Path string // e.g. "mock-generator/store"
	Name string // e.g. "store"
	// Dir is the directory holding the package sources.
	Dir string
	// Declarations are the declarations selected for generation, in source order.
	Declarations []*model.Declaration
}

// Key returns the lookup key of a declaration as written in configuration:
// the package name and the type name, e.g. "store.Order".
func Key(decl *model.Declaration) string {
	return decl.PkgName + "." + decl.Name
}
