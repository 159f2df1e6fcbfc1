package analyze

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"log/slog"
	"path/filepath"
	"slices"

	"golang.org/x/tools/go/packages"

	"mock-generator/internal/diagnostic"
	"mock-generator/internal/model"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and extracts the declarations to mock.
type Analyzer struct {
	dir    string
	logger *slog.Logger
	// include selects declarations without a directive, by "pkg.Type" key.
	include  map[string]bool
	// ignore holds base names of generated files hidden from type checking.
	ignore   []string
	packages []*PackageInfo
}

// NewAnalyzer creates a new Analyzer resolving patterns relative to dir
// ("" for the working directory). A nil logger discards output.
func NewAnalyzer(logger *slog.Logger, dir string) *Analyzer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Analyzer{
		dir:     dir,
		logger:  logger,
		include: make(map[string]bool),
	}
}

// Include selects declarations by "pkg.Type" key even when they carry no directive.
func (a *Analyzer) Include(keys ...string) {
	for _, k := range keys {
		a.include[k] = true
	}
}

// Ignore hides files with the given base names, such as previously generated
// mock files, from type checking.
func (a *Analyzer) Ignore(filenames ...string) {
	for _, f := range filenames {
		if f != "" {
			a.ignore = append(a.ignore, f)
		}
	}
}

// LoadPackages loads the specified packages and returns their selected declarations.
// Patterns are standard Go package patterns (e.g., "./store", "mock-generator/warehouse").
func (a *Analyzer) LoadPackages(ctx context.Context, patterns ...string) ([]*model.Declaration, error) {
	overlay, err := a.overlay(ctx, patterns)
	if err != nil {
		return nil, err
	}

	cfg := &packages.Config{
		Context: ctx,
		Mode:    LoadMode,
		Dir:     a.dir,
		Overlay: overlay,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	var decls []*model.Declaration

	for _, pkg := range pkgs {
		info := a.processPackage(pkg)
		a.packages = append(a.packages, info)
		decls = append(decls, info.Declarations...)

		a.logger.Debug("analyzed package",
			slog.String("package", pkg.PkgPath),
			slog.Int("declarations", len(info.Declarations)))
	}

	return decls, nil
}

// overlay lists the ignored files of the matched packages and replaces each
// with an empty file of the same package.
func (a *Analyzer) overlay(ctx context.Context, patterns []string) (map[string][]byte, error) {
	if len(a.ignore) == 0 {
		return nil, nil
	}

	cfg := &packages.Config{
		Context: ctx,
		Mode:    packages.NeedName | packages.NeedFiles,
		Dir:     a.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}

	overlay := make(map[string][]byte)

	for _, pkg := range pkgs {
		for _, file := range pkg.GoFiles {
			if !slices.Contains(a.ignore, filepath.Base(file)) {
				continue
			}

			overlay[file] = []byte("package " + pkg.Name + "\n")

			a.logger.Debug("ignoring generated file", slog.String("file", file))
		}
	}

	return overlay, nil
}

// Packages returns the packages loaded so far.
func (a *Analyzer) Packages() []*PackageInfo {
	return a.packages
}

// processPackage extracts the selected declarations of a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) *PackageInfo {
	info := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	if len(pkg.GoFiles) > 0 {
		info.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	s := &scanner{pkg: pkg}

	for _, file := range pkg.Syntax {
		for _, d := range file.Decls {
			gd, ok := d.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}

			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				doc := ts.Doc
				if doc == nil {
					doc = gd.Doc
				}

				args, marked := findDirective(doc)
				if !marked && !a.include[pkg.Name+"."+ts.Name.Name] {
					continue
				}

				decl := s.declaration(ts)
				if err := ParseDirective(args, &decl.Options); err != nil {
					decl.Diagnostics.AddError(diagnostic.CodeDirectiveMalformed, err.Error(), decl.Name, "")
				}

				info.Declarations = append(info.Declarations, decl)
			}
		}
	}

	return info
}
