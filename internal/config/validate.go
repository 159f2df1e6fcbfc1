package config

import (
	"fmt"
	"strings"

	"mock-generator/internal/diagnostic"
	"mock-generator/internal/model"
)

// Validate checks a configuration file for structural problems. It does not
// look at source code: type names are checked by Apply.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("config_is_nil", "config file is nil", "", "")
		return res
	}

	if f.MaxArrayLen < 0 {
		res.AddError("invalid_limit", fmt.Sprintf("max_array_len must not be negative, got %d", f.MaxArrayLen), "", "max_array_len")
	}

	if f.MaxDepth < 0 {
		res.AddError("invalid_limit", fmt.Sprintf("max_depth must not be negative, got %d", f.MaxDepth), "", "max_depth")
	}

	seenTypes := map[string]struct{}{}

	for i, tc := range f.Types {
		field := fmt.Sprintf("types[%d]", i)

		pkg, name, ok := strings.Cut(tc.Name, ".")
		if !ok || pkg == "" || name == "" {
			res.AddError("invalid_type_name", fmt.Sprintf("type name %q must be written pkg.Type", tc.Name), tc.Name, field)
			continue
		}

		if _, dup := seenTypes[tc.Name]; dup {
			res.AddError("duplicate_type", fmt.Sprintf("duplicate type %q", tc.Name), tc.Name, field)
			continue
		}

		seenTypes[tc.Name] = struct{}{}

		if _, err := model.ParseStrategy(tc.Strategy); err != nil {
			res.AddError("invalid_strategy", err.Error(), tc.Name, field+".strategy")
		}
	}

	seenShapes := map[string]struct{}{}

	for i, s := range f.Shapes {
		field := fmt.Sprintf("shapes[%d]", i)

		if s.Name == "" {
			res.AddError("invalid_shape", "shape has no name", "", field)
			continue
		}

		if _, dup := seenShapes[s.Name]; dup {
			res.AddError("duplicate_shape", fmt.Sprintf("duplicate shape %q", s.Name), s.Name, field)
			continue
		}

		seenShapes[s.Name] = struct{}{}

		if _, err := s.Declaration(); err != nil {
			res.AddError("invalid_shape", err.Error(), s.Name, field)
		}
	}

	return res
}
