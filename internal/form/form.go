// Package form validates and collects form field values gathered from
// input widgets. Validation aggregates every failure instead of stopping at
// the first one, so a whole form's errors surface in a single pass.
package form

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pcharbon70/unified-ui-sub001/internal/signal"
)

// ErrorKind names one validation failure.
type ErrorKind string

const (
	ErrRequired      ErrorKind = "required"
	ErrMissing       ErrorKind = "missing"
	ErrInvalidType   ErrorKind = "invalid_type"
	ErrTooShort      ErrorKind = "too_short"
	ErrTooLong       ErrorKind = "too_long"
	ErrInvalidFormat ErrorKind = "invalid_format"
)

// Named format shortcuts accepted by Rule.Format.
const (
	FormatEmail  = "email"
	FormatNumber = "number"
	FormatTel    = "tel"
)

var namedFormats = map[string]*regexp.Regexp{
	FormatEmail:  regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`),
	FormatNumber: regexp.MustCompile(`^-?\d+(\.\d+)?$`),
	FormatTel:    regexp.MustCompile(`^\+?[\d\s\-()]{3,20}$`),
}

// Rule is the validation contract for one field. MinLen/MaxLen of zero mean
// unbounded; Format is either a named format or a custom pattern.
type Rule struct {
	Required bool
	MinLen   int
	MaxLen   int
	Format   string
	Pattern  *regexp.Regexp
}

// formatPattern resolves the rule's format to a compiled pattern, or nil
// when the rule carries none.
func (r Rule) formatPattern() (*regexp.Regexp, error) {
	if r.Pattern != nil {
		return r.Pattern, nil
	}
	if r.Format == "" {
		return nil, nil
	}
	if re, ok := namedFormats[strings.ToLower(r.Format)]; ok {
		return re, nil
	}
	re, err := regexp.Compile(r.Format)
	if err != nil {
		return nil, fmt.Errorf("invalid format pattern %q: %w", r.Format, err)
	}
	return re, nil
}

// ValidateFields checks every ruled field and returns the failures keyed by
// field name. It never short-circuits: every failing field appears in the
// result. An empty map means the form is valid.
func ValidateFields(values map[string]any, rules map[string]Rule) map[string]ErrorKind {
	failures := make(map[string]ErrorKind)

	for field, rule := range rules {
		raw, present := values[field]
		if !present {
			if rule.Required {
				failures[field] = ErrMissing
			}
			continue
		}

		text, ok := raw.(string)
		if !ok {
			failures[field] = ErrInvalidType
			continue
		}

		if rule.Required && strings.TrimSpace(text) == "" {
			failures[field] = ErrRequired
			continue
		}
		if text == "" {
			// Optional and empty: no further checks apply.
			continue
		}
		if rule.MinLen > 0 && len([]rune(text)) < rule.MinLen {
			failures[field] = ErrTooShort
			continue
		}
		if rule.MaxLen > 0 && len([]rune(text)) > rule.MaxLen {
			failures[field] = ErrTooLong
			continue
		}

		pattern, err := rule.formatPattern()
		if err != nil {
			failures[field] = ErrInvalidFormat
			continue
		}
		if pattern != nil && !pattern.MatchString(text) {
			failures[field] = ErrInvalidFormat
		}
	}

	return failures
}

// Collect flattens form values into strings safe to log or echo: values are
// sanitized and password-like fields are redacted by name. Non-string
// values stringify through fmt.
func Collect(values map[string]any) map[string]string {
	out := make(map[string]string, len(values))
	for field, raw := range values {
		if signal.ShouldRedact(field) {
			out[field] = signal.RedactionPlaceholder
			continue
		}
		text, ok := raw.(string)
		if !ok {
			text = fmt.Sprintf("%v", raw)
		}
		out[field] = signal.SanitizeString(text)
	}
	return out
}
