// Package measure pulls jug measurements out of arbitrary JSON documents using JSONPath.
package measure

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/thatkingore/mathematical-modelling/internal/domain"
)

// DefaultBands is used when no bands selector is given.
const DefaultBands = "$.bands"

// Rules maps jug fields to JSONPath expressions. Only Bands is required.
//
// The bands value may be a list of objects ({"circumference": c, "height": h})
// or a list of [c, h] pairs.
type Rules struct {
	Name     string
	Measured string
	Bands    string
}

// Extract builds a jug from body. Name and Measured are best effort: a rule that
// matches nothing leaves the field empty. Bands must resolve.
func Extract(body []byte, rules Rules) (domain.Jug, error) {
	doc, err := parseJSON(body)
	if err != nil {
		return domain.Jug{}, failure(domain.KindInvalidConfig, "document is not valid JSON: %v", err)
	}

	bandsExpr := strings.TrimSpace(rules.Bands)
	if bandsExpr == "" {
		bandsExpr = DefaultBands
	}

	raw, err := jsonpath.Get(bandsExpr, doc)
	if err != nil {
		return domain.Jug{}, failure(domain.KindInvalidArgument, "bands (%s): jsonpath error: %v", bandsExpr, err)
	}
	bands, err := toBands(raw)
	if err != nil {
		return domain.Jug{}, failure(domain.KindInvalidConfig, "bands (%s): %v", bandsExpr, err)
	}
	if len(bands) < 2 {
		return domain.Jug{}, failure(domain.KindInvalidConfig, "bands (%s): need at least 2 bands, got %d", bandsExpr, len(bands))
	}

	jug := domain.Jug{Bands: bands}

	if expr := strings.TrimSpace(rules.Name); expr != "" {
		if v, getErr := jsonpath.Get(expr, doc); getErr == nil && !isEmptyValue(v) {
			jug.Name = toString(v)
		}
	}
	if expr := strings.TrimSpace(rules.Measured); expr != "" {
		if v, getErr := jsonpath.Get(expr, doc); getErr == nil {
			if f, ok := toNumber(unwrapSingle(v)); ok {
				if !finite(f) || f < 0 {
					return domain.Jug{}, failure(domain.KindInvalidConfig, "measured volume (%s): %g is not a finite non-negative number", expr, f)
				}
				jug.MeasuredVolume = f
			}
		}
	}

	return jug, nil
}

func parseJSON(body []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func toBands(v any) ([]domain.Cylinder, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a list, got %T", v)
	}

	out := make([]domain.Cylinder, 0, len(arr))
	for i, item := range arr {
		c, err := toCylinder(item)
		if err != nil {
			return nil, fmt.Errorf("bands[%d]: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func toCylinder(v any) (domain.Cylinder, error) {
	switch t := v.(type) {
	case map[string]any:
		c, okC := toNumber(t["circumference"])
		h, okH := toNumber(t["height"])
		if !okC || !okH {
			return domain.Cylinder{}, fmt.Errorf("need numeric circumference and height")
		}
		return checked(c, h)
	case []any:
		if len(t) != 2 {
			return domain.Cylinder{}, fmt.Errorf("pair must have 2 numbers, got %d", len(t))
		}
		c, okC := toNumber(t[0])
		h, okH := toNumber(t[1])
		if !okC || !okH {
			return domain.Cylinder{}, fmt.Errorf("pair must have 2 numbers")
		}
		return checked(c, h)
	default:
		return domain.Cylinder{}, fmt.Errorf("unsupported band value %T", v)
	}
}

func checked(c, h float64) (domain.Cylinder, error) {
	if !finite(c) || !finite(h) {
		return domain.Cylinder{}, fmt.Errorf("non-finite measurement (%g, %g)", c, h)
	}
	if c < 0 || h < 0 {
		return domain.Cylinder{}, fmt.Errorf("negative measurement (%g, %g)", c, h)
	}
	return domain.Cylinder{Circumference: c, Height: h}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func toNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	default:
		return 0, false
	}
}

// jsonpath returns a slice for filter and wildcard expressions.
func unwrapSingle(v any) any {
	if arr, ok := v.([]any); ok && len(arr) == 1 {
		return arr[0]
	}
	return v
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

func toString(v any) string {
	v = unwrapSingle(v)
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func failure(kind domain.ErrorKind, format string, args ...any) error {
	sentinel := domain.ErrInvalidConfig
	if kind == domain.KindInvalidArgument {
		sentinel = domain.ErrInvalidArgument
	}
	return &domain.OpError{
		Op:   "measure.extract",
		Kind: kind,
		Err:  fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel),
	}
}
