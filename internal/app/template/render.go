package template

import (
	"fmt"
	"strings"

	"github.com/thatkingore/mathematical-modelling/internal/domain"
)

// RenderString replaces {{name}} placeholders with vars values.
// A malformed placeholder is KindInvalidArgument; an unknown name is KindNotFound.
func RenderString(input string, vars map[string]string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", &domain.OpError{
				Op:   "template.render",
				Kind: domain.KindInvalidArgument,
				Err:  fmt.Errorf("unclosed template expression: %w", domain.ErrInvalidArgument),
			}
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", &domain.OpError{
				Op:   "template.render",
				Kind: domain.KindInvalidArgument,
				Err:  fmt.Errorf("empty template expression: %w", domain.ErrInvalidArgument),
			}
		}

		value, ok := vars[key]
		if !ok {
			return "", &domain.OpError{
				Op:   "template.render",
				Kind: domain.KindNotFound,
				Err:  fmt.Errorf("unknown field %q: %w", key, domain.ErrNotFound),
			}
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}
