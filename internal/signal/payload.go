package signal

import (
	"fmt"
	"unicode/utf8"
)

// Payload limits. These bound signal-payload-driven denial of service and
// are enforced before a signal is ever constructed from untrusted data.
const (
	// MaxPayloadSize is the maximum estimated payload size in bytes.
	MaxPayloadSize = 10000
	// MaxPayloadDepth is the maximum map-in-map nesting depth.
	MaxPayloadDepth = 10
	// MaxStringLength is the maximum character length of any string value.
	MaxStringLength = 1000
)

// Per-field cost estimates for the payload size calculation.
const (
	stringOverheadBytes = 10
	scalarCostBytes     = 20
)

// PayloadErrorKind classifies payload validation failures.
type PayloadErrorKind string

const (
	PayloadTooLarge      PayloadErrorKind = "payload_too_large"
	PayloadTooDeep       PayloadErrorKind = "payload_too_deep"
	PayloadStringTooLong PayloadErrorKind = "string_too_long"
	PayloadInvalidShape  PayloadErrorKind = "invalid_payload_shape"
)

// PayloadError is a recoverable payload validation failure: the signal is
// rejected, state stays unchanged, and the update cycle carries on.
type PayloadError struct {
	Kind   PayloadErrorKind
	Detail string
}

func (e *PayloadError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("invalid payload: %s (%s)", e.Kind, e.Detail)
	}
	return fmt.Sprintf("invalid payload: %s", e.Kind)
}

// ValidatePayload checks a payload against the size, depth, and string
// length limits, in that order; the first violation wins. A nil payload is
// valid.
func ValidatePayload(payload map[string]any) error {
	if payload == nil {
		return nil
	}

	size, err := estimateSize(payload)
	if err != nil {
		return err
	}
	if size > MaxPayloadSize {
		return &PayloadError{
			Kind:   PayloadTooLarge,
			Detail: fmt.Sprintf("estimated %d bytes, limit %d", size, MaxPayloadSize),
		}
	}

	if depth := mapDepth(payload); depth > MaxPayloadDepth {
		return &PayloadError{
			Kind:   PayloadTooDeep,
			Detail: fmt.Sprintf("depth %d, limit %d", depth, MaxPayloadDepth),
		}
	}

	if key, ok := findLongString(payload); ok {
		return &PayloadError{
			Kind:   PayloadStringTooLong,
			Detail: fmt.Sprintf("field %q exceeds %d characters", key, MaxStringLength),
		}
	}

	return nil
}

// estimateSize sums per-field byte costs: strings cost byte length plus a
// flat overhead, scalars a flat cost, maps and lists recurse.
func estimateSize(v any) (int, error) {
	switch val := v.(type) {
	case nil:
		return scalarCostBytes, nil
	case string:
		return len(val) + stringOverheadBytes, nil
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return scalarCostBytes, nil
	case map[string]any:
		total := 0
		for _, elem := range val {
			n, err := estimateSize(elem)
			if err != nil {
				return 0, err
			}
			total += n
		}
		return total, nil
	case []any:
		total := 0
		for _, elem := range val {
			n, err := estimateSize(elem)
			if err != nil {
				return 0, err
			}
			total += n
		}
		return total, nil
	default:
		return 0, &PayloadError{
			Kind:   PayloadInvalidShape,
			Detail: fmt.Sprintf("unsupported value type %T", v),
		}
	}
}

// mapDepth returns the maximum map-in-map nesting depth, counting the
// top-level map as depth 1. Maps nested inside lists count too.
func mapDepth(v any) int {
	switch val := v.(type) {
	case map[string]any:
		deepest := 0
		for _, elem := range val {
			if d := mapDepth(elem); d > deepest {
				deepest = d
			}
		}
		return deepest + 1
	case []any:
		deepest := 0
		for _, elem := range val {
			if d := mapDepth(elem); d > deepest {
				deepest = d
			}
		}
		return deepest
	default:
		return 0
	}
}

// findLongString walks the payload depth-first looking for a string value
// over the character limit, returning the offending field key.
func findLongString(v any) (string, bool) {
	switch val := v.(type) {
	case map[string]any:
		for key, elem := range val {
			if s, ok := elem.(string); ok {
				if utf8.RuneCountInString(s) > MaxStringLength {
					return key, true
				}
				continue
			}
			if key2, found := findLongString(elem); found {
				if key2 == "" {
					return key, true
				}
				return key2, true
			}
		}
		return "", false
	case []any:
		for _, elem := range val {
			if s, ok := elem.(string); ok {
				if utf8.RuneCountInString(s) > MaxStringLength {
					return "", true
				}
				continue
			}
			if key, found := findLongString(elem); found {
				return key, true
			}
		}
		return "", false
	default:
		return "", false
	}
}
