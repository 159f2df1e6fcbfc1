package config

// CurrentVersion is the only configuration schema version understood.
const CurrentVersion = "1"

// DefaultOutput is the name of the generated file in each package directory.
const DefaultOutput = "mock_gen.go"

// File represents the root of a mock generation configuration file.
type File struct {
	// Version of the configuration schema.
	Version string `yaml:"version,omitempty"`

	// Strict turns unresolved fields into errors.
	Strict bool `yaml:"strict,omitempty"`

	// Seed of the random source; 0 picks a time based seed.
	Seed uint64 `yaml:"seed,omitempty"`

	// MaxArrayLen bounds random collection lengths.
	MaxArrayLen int `yaml:"max_array_len,omitempty"`

	// MaxDepth bounds descriptor nesting during synthesis.
	MaxDepth int `yaml:"max_depth,omitempty"`

	// Output is the generated file name.
	Output string `yaml:"output,omitempty"`

	// Packages are the package patterns to analyze.
	Packages StringOrArray `yaml:"packages,omitempty"`

	// Types pins settings for individual declarations.
	Types []TypeConfig `yaml:"types,omitempty"`

	// Shapes are declarations written out in the file itself.
	Shapes []Shape `yaml:"shapes,omitempty"`
}

// TypeConfig pins generation settings for one declaration, named "pkg.Type".
// Listing a type selects it even when its source has no directive.
type TypeConfig struct {
	Name      string             `yaml:"name"`
	Count     *int               `yaml:"count,omitempty"`
	Strategy  string             `yaml:"strategy,omitempty"`
	Overrides map[string]Literal `yaml:"overrides,omitempty"`
}

// Shape is a declaration described in configuration.
type Shape struct {
	Name string `yaml:"name"`
	// Kind is "record", "enum" or "other".
	Kind string `yaml:"kind"`
	// Underlying is the basic type of a value enum, e.g. "string".
	Underlying string `yaml:"underlying,omitempty"`
	// Methods are the method signatures of a sealed enum.
	Methods  []string `yaml:"methods,omitempty"`
	Count    *int     `yaml:"count,omitempty"`
	Strategy string   `yaml:"strategy,omitempty"`

	Members      []ShapeMember      `yaml:"members,omitempty"`
	Constructors []ShapeConstructor `yaml:"constructors,omitempty"`
	Cases        []ShapeCase        `yaml:"cases,omitempty"`
}

// ShapeMember is one member of a shape. A member with several names binds
// all of them and is never stored; a member without a type is untyped.
type ShapeMember struct {
	Name     StringOrArray `yaml:"name"`
	Type     string        `yaml:"type,omitempty"`
	Accessor string        `yaml:"accessor,omitempty"`
	Override *Literal      `yaml:"override,omitempty"`
}

// ShapeConstructor is an explicit constructor of a record shape.
type ShapeConstructor struct {
	Name    string       `yaml:"name"`
	Params  []ShapeParam `yaml:"params,omitempty"`
	Pointer bool         `yaml:"pointer,omitempty"`
}

// ShapeParam is one constructor parameter.
type ShapeParam struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Variadic bool   `yaml:"variadic,omitempty"`
}

// ShapeCase is one case of an enum shape. Form is "value" (the default),
// "struct" or "call".
type ShapeCase struct {
	Name    string        `yaml:"name"`
	Form    string        `yaml:"form,omitempty"`
	Pointer bool          `yaml:"pointer,omitempty"`
	Members []ShapeMember `yaml:"members,omitempty"`
}

// StringOrArray is a type that can be unmarshaled from either a string or an array of strings.
// This allows YAML like: `name: id` or `name: [x, y]`.
type StringOrArray []string

// First returns the first element or empty string if empty.
func (s StringOrArray) First() string {
	if len(s) == 0 {
		return ""
	}

	return s[0]
}
