package style

import (
	"fmt"
	"strings"
)

// ColorKind discriminates the supported color representations.
type ColorKind int

const (
	ColorUnset ColorKind = iota
	ColorNamed           // named color, e.g. "red"
	ColorRGB             // 8-bit RGB triple
	ColorRGBA            // 8-bit RGBA quad
	ColorHex             // "#RRGGBB" or "#RGB"
)

// Color is a tagged color value. The zero Color is unset.
type Color struct {
	Kind       ColorKind
	Name       string // ColorNamed
	Hex        string // ColorHex, includes leading '#'
	R, G, B, A uint8  // ColorRGB / ColorRGBA
}

// IsSet reports whether the color carries a value.
func (c Color) IsSet() bool { return c.Kind != ColorUnset }

// Named returns a named color value.
func Named(name string) Color { return Color{Kind: ColorNamed, Name: name} }

// Hex returns a hex color value. The leading '#' is added if missing.
func Hex(s string) Color {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	return Color{Kind: ColorHex, Hex: s}
}

// RGB returns an RGB triple color value.
func RGB(r, g, b uint8) Color { return Color{Kind: ColorRGB, R: r, G: g, B: b} }

// RGBA returns an RGBA quad color value.
func RGBA(r, g, b, a uint8) Color { return Color{Kind: ColorRGBA, R: r, G: g, B: b, A: a} }

// ParseColor converts a loosely-typed attribute value into a Color.
// Accepted shapes: color name string, "#hex" string, and 3- or 4-element
// numeric slices.
func ParseColor(v any) (Color, error) {
	switch val := v.(type) {
	case nil:
		return Color{}, nil
	case Color:
		return val, nil
	case string:
		if val == "" {
			return Color{}, nil
		}
		if strings.HasPrefix(val, "#") {
			return Hex(val), nil
		}
		return Named(val), nil
	case []any:
		nums := make([]uint8, 0, 4)
		for _, e := range val {
			n, ok := toUint8(e)
			if !ok {
				return Color{}, fmt.Errorf("color component %v is not an 8-bit number", e)
			}
			nums = append(nums, n)
		}
		switch len(nums) {
		case 3:
			return RGB(nums[0], nums[1], nums[2]), nil
		case 4:
			return RGBA(nums[0], nums[1], nums[2], nums[3]), nil
		default:
			return Color{}, fmt.Errorf("color slice must have 3 or 4 components, got %d", len(nums))
		}
	default:
		return Color{}, fmt.Errorf("unsupported color value %v (%T)", v, v)
	}
}

func toUint8(v any) (uint8, bool) {
	switch n := v.(type) {
	case int:
		if n < 0 || n > 255 {
			return 0, false
		}
		return uint8(n), true
	case int64:
		if n < 0 || n > 255 {
			return 0, false
		}
		return uint8(n), true
	case float64:
		if n < 0 || n > 255 || n != float64(int(n)) {
			return 0, false
		}
		return uint8(n), true
	case uint8:
		return n, true
	default:
		return 0, false
	}
}

// CSS renders the color as a CSS color value. Unset colors render as "".
func (c Color) CSS() string {
	switch c.Kind {
	case ColorNamed:
		return c.Name
	case ColorHex:
		return c.Hex
	case ColorRGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	case ColorRGBA:
		return fmt.Sprintf("rgba(%d, %d, %d, %.3f)", c.R, c.G, c.B, float64(c.A)/255)
	default:
		return ""
	}
}

// TextAttribute is one typographic attribute flag.
type TextAttribute string

const (
	AttrBold          TextAttribute = "bold"
	AttrItalic        TextAttribute = "italic"
	AttrUnderline     TextAttribute = "underline"
	AttrStrikethrough TextAttribute = "strikethrough"
	AttrReverse       TextAttribute = "reverse"
	AttrDim           TextAttribute = "dim"
	AttrBlink         TextAttribute = "blink"
)

var knownAttrs = map[TextAttribute]bool{
	AttrBold: true, AttrItalic: true, AttrUnderline: true,
	AttrStrikethrough: true, AttrReverse: true, AttrDim: true, AttrBlink: true,
}

// ParseAttr validates a single text-attribute name.
func ParseAttr(s string) (TextAttribute, error) {
	a := TextAttribute(strings.ToLower(s))
	if !knownAttrs[a] {
		return "", fmt.Errorf("unknown text attribute %q", s)
	}
	return a, nil
}

// DimensionKind discriminates sizing modes.
type DimensionKind int

const (
	DimUnset DimensionKind = iota
	DimCells               // explicit size in cells/pixels
	DimAuto                // size to content
	DimFill                // fill available space
)

// Dimension is a width/height value. The zero Dimension is unset.
type Dimension struct {
	Kind  DimensionKind
	Cells int
}

// IsSet reports whether the dimension carries a value.
func (d Dimension) IsSet() bool { return d.Kind != DimUnset }

// Cells returns an explicit dimension.
func Cells(n int) Dimension { return Dimension{Kind: DimCells, Cells: n} }

// Auto is the size-to-content dimension.
var Auto = Dimension{Kind: DimAuto}

// Fill is the fill-available-space dimension.
var Fill = Dimension{Kind: DimFill}

// ParseDimension converts a loosely-typed attribute value into a Dimension.
func ParseDimension(v any) (Dimension, error) {
	switch val := v.(type) {
	case nil:
		return Dimension{}, nil
	case int:
		return Cells(val), nil
	case int64:
		return Cells(int(val)), nil
	case float64:
		return Cells(int(val)), nil
	case string:
		switch strings.ToLower(val) {
		case "auto":
			return Auto, nil
		case "fill":
			return Fill, nil
		case "":
			return Dimension{}, nil
		}
		return Dimension{}, fmt.Errorf("unknown dimension %q", val)
	default:
		return Dimension{}, fmt.Errorf("unsupported dimension value %v (%T)", v, v)
	}
}

// Alignment positions content within its box. Empty means unset.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// ParseAlignment validates an alignment name.
func ParseAlignment(s string) (Alignment, error) {
	switch a := Alignment(strings.ToLower(s)); a {
	case "", AlignLeft, AlignCenter, AlignRight:
		return a, nil
	default:
		return "", fmt.Errorf("unknown alignment %q", s)
	}
}

// Style is the immutable style value object. The zero Style carries no
// settings and is the identity value for Merge.
type Style struct {
	Foreground Color
	Background Color
	Attrs      []TextAttribute
	Padding    *int
	Margin     *int
	Width      Dimension
	Height     Dimension
	Align      Alignment
}

// IsZero reports whether the style carries no settings at all.
func (s Style) IsZero() bool {
	return !s.Foreground.IsSet() && !s.Background.IsSet() && len(s.Attrs) == 0 &&
		s.Padding == nil && s.Margin == nil &&
		!s.Width.IsSet() && !s.Height.IsSet() && s.Align == ""
}

// HasAttr reports whether the style carries the given text attribute.
func (s Style) HasAttr(a TextAttribute) bool {
	for _, have := range s.Attrs {
		if have == a {
			return true
		}
	}
	return false
}

// Merge combines two styles into a new one. Scalar fields follow
// override-wins-if-set; text attributes are the deduplicated union, keeping
// a's order first and appending b's new attributes in b's order.
func Merge(a, b Style) Style {
	out := a
	if b.Foreground.IsSet() {
		out.Foreground = b.Foreground
	}
	if b.Background.IsSet() {
		out.Background = b.Background
	}
	out.Attrs = unionAttrs(a.Attrs, b.Attrs)
	if b.Padding != nil {
		out.Padding = b.Padding
	}
	if b.Margin != nil {
		out.Margin = b.Margin
	}
	if b.Width.IsSet() {
		out.Width = b.Width
	}
	if b.Height.IsSet() {
		out.Height = b.Height
	}
	if b.Align != "" {
		out.Align = b.Align
	}
	return out
}

// MergeMany left-folds Merge over the given styles. An empty list yields the
// zero Style; zero entries are skipped.
func MergeMany(styles []Style) Style {
	var out Style
	for _, s := range styles {
		if s.IsZero() {
			continue
		}
		out = Merge(out, s)
	}
	return out
}

func unionAttrs(a, b []TextAttribute) []TextAttribute {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	seen := make(map[TextAttribute]bool, len(a)+len(b))
	out := make([]TextAttribute, 0, len(a)+len(b))
	for _, attr := range a {
		if !seen[attr] {
			seen[attr] = true
			out = append(out, attr)
		}
	}
	for _, attr := range b {
		if !seen[attr] {
			seen[attr] = true
			out = append(out, attr)
		}
	}
	return out
}

// IntPtr is a convenience for building padding/margin values.
func IntPtr(n int) *int { return &n }

// CSS renders the style as inline CSS declarations, semicolon-separated.
// Unset fields are omitted. Width/height in "auto" mode render as "auto";
// "fill" renders as "100%".
func (s Style) CSS() string {
	var decls []string
	if s.Foreground.IsSet() {
		decls = append(decls, "color: "+s.Foreground.CSS())
	}
	if s.Background.IsSet() {
		decls = append(decls, "background-color: "+s.Background.CSS())
	}
	for _, a := range s.Attrs {
		switch a {
		case AttrBold:
			decls = append(decls, "font-weight: bold")
		case AttrItalic:
			decls = append(decls, "font-style: italic")
		case AttrUnderline:
			decls = append(decls, "text-decoration: underline")
		case AttrStrikethrough:
			decls = append(decls, "text-decoration: line-through")
		case AttrDim:
			decls = append(decls, "opacity: 0.6")
		case AttrReverse:
			decls = append(decls, "filter: invert(1)")
		case AttrBlink:
			decls = append(decls, "text-decoration: blink")
		}
	}
	if s.Padding != nil {
		decls = append(decls, fmt.Sprintf("padding: %dpx", *s.Padding))
	}
	if s.Margin != nil {
		decls = append(decls, fmt.Sprintf("margin: %dpx", *s.Margin))
	}
	if css := dimCSS(s.Width); css != "" {
		decls = append(decls, "width: "+css)
	}
	if css := dimCSS(s.Height); css != "" {
		decls = append(decls, "height: "+css)
	}
	if s.Align != "" {
		decls = append(decls, "text-align: "+string(s.Align))
	}
	return strings.Join(decls, "; ")
}

func dimCSS(d Dimension) string {
	switch d.Kind {
	case DimCells:
		return fmt.Sprintf("%dpx", d.Cells)
	case DimAuto:
		return "auto"
	case DimFill:
		return "100%"
	default:
		return ""
	}
}
