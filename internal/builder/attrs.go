package builder

import (
	"fmt"

	"github.com/pcharbon70/unified-ui-sub001/internal/iur"
)

// Attribute extraction helpers. Entity attribute maps arrive loosely typed
// (JSON decoding yields float64 numbers, programmatic trees use ints), so
// every accessor tolerates both.

func attrString(attrs map[string]any, key string) string {
	if v, ok := attrs[key].(string); ok {
		return v
	}
	return ""
}

func attrBool(attrs map[string]any, key string) bool {
	return attrBoolValue(attrs[key])
}

func attrBoolValue(raw any) bool {
	v, _ := raw.(bool)
	return v
}

func attrInt(attrs map[string]any, key string) int {
	switch v := attrs[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

func attrFloat(attrs map[string]any, key string) float64 {
	switch v := attrs[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}

func attrFloats(attrs map[string]any, key string) []float64 {
	switch list := attrs[key].(type) {
	case []float64:
		out := make([]float64, len(list))
		copy(out, list)
		return out
	case []any:
		out := make([]float64, 0, len(list))
		for _, e := range list {
			switch n := e.(type) {
			case float64:
				out = append(out, n)
			case int:
				out = append(out, float64(n))
			case int64:
				out = append(out, float64(n))
			}
		}
		return out
	default:
		return nil
	}
}

// attrPoints decodes chart data: an ordered list of (label, value) pairs,
// accepted either as two-element lists or as {"label": ..., "value": ...}
// maps.
func attrPoints(attrs map[string]any, key string) ([]iur.Point, error) {
	raw, ok := attrs[key]
	if !ok {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("data must be a list, got %T", raw)
	}
	out := make([]iur.Point, 0, len(list))
	for _, e := range list {
		switch pair := e.(type) {
		case []any:
			if len(pair) != 2 {
				return nil, fmt.Errorf("data point must be a [label, value] pair, got %d elements", len(pair))
			}
			label, ok := pair[0].(string)
			if !ok {
				return nil, fmt.Errorf("data point label must be a string, got %T", pair[0])
			}
			value, ok := toFloat(pair[1])
			if !ok {
				return nil, fmt.Errorf("data point value must be numeric, got %T", pair[1])
			}
			out = append(out, iur.Point{Label: label, Value: value})
		case map[string]any:
			value, ok := toFloat(pair["value"])
			if !ok {
				return nil, fmt.Errorf("data point value must be numeric, got %T", pair["value"])
			}
			label, _ := pair["label"].(string)
			out = append(out, iur.Point{Label: label, Value: value})
		default:
			return nil, fmt.Errorf("data point must be a pair or map, got %T", e)
		}
	}
	return out, nil
}

func attrRows(attrs map[string]any, key string) []map[string]any {
	switch list := attrs[key].(type) {
	case []map[string]any:
		return list
	case []any:
		out := make([]map[string]any, 0, len(list))
		for _, e := range list {
			if row, ok := e.(map[string]any); ok {
				out = append(out, row)
			}
		}
		return out
	default:
		return nil
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
