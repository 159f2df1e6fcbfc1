package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"mock-generator/internal/model"
)

// --- StringOrArray YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
// Accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string
		if err := node.Decode(&str); err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string
		if err := node.Decode(&arr); err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected string or array, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for StringOrArray.
// Outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// --- Literal YAML methods ---

// Literal is an override value read from YAML.
type Literal struct {
	*model.LiteralOverride
}

// Override returns the parsed override. An empty YAML value means nil.
func (l Literal) Override() *model.LiteralOverride {
	if l.LiteralOverride == nil {
		return model.None()
	}

	return l.LiteralOverride
}

// UnmarshalYAML implements custom YAML unmarshaling for Literal.
// Quoted scalars are strings; plain scalars are parsed as Go literals and
// fall back to strings.
func (l *Literal) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: override must be a scalar", node.Line)
	}

	switch {
	case node.ShortTag() == "!!null":
		l.LiteralOverride = model.None()
	case node.Style&(yaml.DoubleQuotedStyle|yaml.SingleQuotedStyle|yaml.LiteralStyle|yaml.FoldedStyle) != 0:
		l.LiteralOverride = model.StringLiteral(node.Value)
	default:
		lit, err := model.ParseLiteral(node.Value)
		if err != nil {
			lit = model.StringLiteral(node.Value)
		}

		l.LiteralOverride = lit
	}

	return nil
}

// MarshalYAML implements custom YAML marshaling for Literal.
// Strings are always quoted so they read back as strings.
func (l Literal) MarshalYAML() (any, error) {
	lit := l.Override()
	node := &yaml.Node{Kind: yaml.ScalarNode, Value: lit.Text}

	if lit.Kind == model.LiteralString {
		node.Tag = "!!str"
		node.Style = yaml.DoubleQuotedStyle
	}

	return node, nil
}
