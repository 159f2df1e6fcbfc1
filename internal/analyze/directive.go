package analyze

import (
	"fmt"
	"go/ast"
	"strconv"
	"strings"

	"mock-generator/internal/model"
)

// findDirective returns the options text of the first generation directive
// in the comment groups.
func findDirective(groups ...*ast.CommentGroup) (string, bool) {
	for _, g := range groups {
		if g == nil {
			continue
		}

		for _, c := range g.List {
			rest, ok := strings.CutPrefix(c.Text, Directive)
			if !ok {
				continue
			}

			if rest == "" || rest[0] == ' ' || rest[0] == '\t' {
				return strings.TrimSpace(rest), true
			}
		}
	}

	return "", false
}

// ParseDirective applies directive options to opts. Options not named in
// the directive keep their value.
func ParseDirective(text string, opts *model.Options) error {
	for _, field := range strings.Fields(text) {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return fmt.Errorf("directive option %q: want key=value", field)
		}

		switch key {
		case "count":
			n, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("directive option count: %w", err)
			}

			opts.ItemCount = n

		case "strategy":
			s, err := model.ParseStrategy(value)
			if err != nil {
				return fmt.Errorf("directive option strategy: %w", err)
			}

			opts.Strategy = s

		default:
			return fmt.Errorf("unknown directive option %q", key)
		}
	}

	return nil
}
