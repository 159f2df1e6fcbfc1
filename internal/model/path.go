package model

import (
	"strings"
)

// TypePath builds a readable path to a field inside a declaration.
// Examples:
//   - "Order" for the declaration itself
//   - "Order.Items" for a field
//   - "Order.Items[]" for the elements of a slice field
//   - "Order.Prices[value]" for the values of a map field
//   - "Order.*Note" for the value behind a pointer field
//   - "Shape.Circle.Radius" for an associated value of an enum case
type TypePath struct {
	parts []string
}

// NewTypePath creates a new TypePath from a root type name.
func NewTypePath(root string) *TypePath {
	return &TypePath{
		parts: []string{root},
	}
}

// Field appends a field name to the path.
func (p *TypePath) Field(name string) *TypePath {
	return &TypePath{
		parts: append(append([]string{}, p.parts...), name),
	}
}

// Slice appends a slice indicator "[]" to the path.
func (p *TypePath) Slice() *TypePath {
	return p.decorateLast("", "[]")
}

// MapKey appends a "[key]" indicator to the path.
func (p *TypePath) MapKey() *TypePath {
	return p.decorateLast("", "[key]")
}

// MapValue appends a "[value]" indicator to the path.
func (p *TypePath) MapValue() *TypePath {
	return p.decorateLast("", "[value]")
}

// Pointer prefixes the last element with "*".
func (p *TypePath) Pointer() *TypePath {
	return p.decorateLast("*", "")
}

func (p *TypePath) decorateLast(prefix, suffix string) *TypePath {
	if len(p.parts) == 0 {
		return &TypePath{parts: []string{prefix + suffix}}
	}

	newParts := make([]string, len(p.parts))
	copy(newParts, p.parts)
	newParts[len(newParts)-1] = prefix + newParts[len(newParts)-1] + suffix

	return &TypePath{parts: newParts}
}

// Root returns the first element of the path.
func (p *TypePath) Root() string {
	if len(p.parts) == 0 {
		return ""
	}

	return p.parts[0]
}

// String returns the full path string.
func (p *TypePath) String() string {
	return strings.Join(p.parts, ".")
}
