package style

import "fmt"

// Attribute keys accepted in style attribute maps (named styles and inline
// overrides alike).
const (
	KeyForeground = "foreground"
	KeyBackground = "background"
	KeyTextAttrs  = "text_attributes"
	KeyPadding    = "padding"
	KeyMargin     = "margin"
	KeyWidth      = "width"
	KeyHeight     = "height"
	KeyAlignment  = "alignment"
)

// InvalidAttrError reports a style attribute map entry that the model does
// not recognize or could not parse.
type InvalidAttrError struct {
	Key   string
	Cause error
}

func (e *InvalidAttrError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid style attribute %q: %v", e.Key, e.Cause)
	}
	return fmt.Sprintf("invalid style attribute %q", e.Key)
}

func (e *InvalidAttrError) Unwrap() error { return e.Cause }

// FromAttrs parses a loosely-typed attribute map into a Style. Unknown keys
// and unparseable values are rejected with *InvalidAttrError so that theme
// and inline-style typos surface at definition time.
func FromAttrs(attrs map[string]any) (Style, error) {
	var s Style
	for key, raw := range attrs {
		switch key {
		case KeyForeground:
			c, err := ParseColor(raw)
			if err != nil {
				return Style{}, &InvalidAttrError{Key: key, Cause: err}
			}
			s.Foreground = c
		case KeyBackground:
			c, err := ParseColor(raw)
			if err != nil {
				return Style{}, &InvalidAttrError{Key: key, Cause: err}
			}
			s.Background = c
		case KeyTextAttrs:
			attrs, err := parseAttrList(raw)
			if err != nil {
				return Style{}, &InvalidAttrError{Key: key, Cause: err}
			}
			s.Attrs = attrs
		case KeyPadding:
			n, err := parseInt(raw)
			if err != nil {
				return Style{}, &InvalidAttrError{Key: key, Cause: err}
			}
			s.Padding = &n
		case KeyMargin:
			n, err := parseInt(raw)
			if err != nil {
				return Style{}, &InvalidAttrError{Key: key, Cause: err}
			}
			s.Margin = &n
		case KeyWidth:
			d, err := ParseDimension(raw)
			if err != nil {
				return Style{}, &InvalidAttrError{Key: key, Cause: err}
			}
			s.Width = d
		case KeyHeight:
			d, err := ParseDimension(raw)
			if err != nil {
				return Style{}, &InvalidAttrError{Key: key, Cause: err}
			}
			s.Height = d
		case KeyAlignment:
			str, ok := raw.(string)
			if !ok {
				return Style{}, &InvalidAttrError{Key: key, Cause: fmt.Errorf("alignment must be a string, got %T", raw)}
			}
			a, err := ParseAlignment(str)
			if err != nil {
				return Style{}, &InvalidAttrError{Key: key, Cause: err}
			}
			s.Align = a
		default:
			return Style{}, &InvalidAttrError{Key: key}
		}
	}
	return s, nil
}

func parseAttrList(raw any) ([]TextAttribute, error) {
	switch list := raw.(type) {
	case nil:
		return nil, nil
	case []TextAttribute:
		out := make([]TextAttribute, 0, len(list))
		for _, a := range list {
			parsed, err := ParseAttr(string(a))
			if err != nil {
				return nil, err
			}
			out = append(out, parsed)
		}
		return unionAttrs(out, nil), nil
	case []string:
		out := make([]TextAttribute, 0, len(list))
		for _, name := range list {
			a, err := ParseAttr(name)
			if err != nil {
				return nil, err
			}
			out = append(out, a)
		}
		return unionAttrs(out, nil), nil
	case []any:
		out := make([]TextAttribute, 0, len(list))
		for _, e := range list {
			name, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("text attribute %v is not a string", e)
			}
			a, err := ParseAttr(name)
			if err != nil {
				return nil, err
			}
			out = append(out, a)
		}
		return unionAttrs(out, nil), nil
	default:
		return nil, fmt.Errorf("text_attributes must be a list, got %T", raw)
	}
}

func parseInt(raw any) (int, error) {
	switch n := raw.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("value %v is not an integer", n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("value %v (%T) is not an integer", raw, raw)
	}
}
