package style

import (
	"errors"
	"testing"
)

func TestMergeOverrideWins(t *testing.T) {
	a := Style{
		Foreground: Named("red"),
		Background: Named("black"),
		Padding:    IntPtr(1),
		Align:      AlignLeft,
	}
	b := Style{
		Foreground: Hex("#7D56F4"),
		Width:      Fill,
	}

	got := Merge(a, b)

	if got.Foreground != Hex("#7D56F4") {
		t.Errorf("Merge().Foreground = %v, want override %v", got.Foreground, Hex("#7D56F4"))
	}
	if got.Background != Named("black") {
		t.Errorf("Merge().Background = %v, want base %v", got.Background, Named("black"))
	}
	if got.Padding == nil || *got.Padding != 1 {
		t.Errorf("Merge().Padding = %v, want 1", got.Padding)
	}
	if got.Width != Fill {
		t.Errorf("Merge().Width = %v, want Fill", got.Width)
	}
	if got.Align != AlignLeft {
		t.Errorf("Merge().Align = %v, want left", got.Align)
	}
}

func TestMergeZeroIsIdentity(t *testing.T) {
	s := Style{Foreground: Named("cyan"), Attrs: []TextAttribute{AttrBold}}

	if got := Merge(Style{}, s); !stylesEqual(got, s) {
		t.Errorf("Merge(zero, s) = %+v, want %+v", got, s)
	}
	if got := Merge(s, Style{}); !stylesEqual(got, s) {
		t.Errorf("Merge(s, zero) = %+v, want %+v", got, s)
	}
	if got := Merge(Style{}, Style{}); !got.IsZero() {
		t.Errorf("Merge(zero, zero) = %+v, want zero", got)
	}
}

func TestMergeAttrsUnion(t *testing.T) {
	a := Style{Attrs: []TextAttribute{AttrBold, AttrUnderline}}
	b := Style{Attrs: []TextAttribute{AttrUnderline, AttrItalic}}

	got := Merge(a, b).Attrs
	want := []TextAttribute{AttrBold, AttrUnderline, AttrItalic}

	if len(got) != len(want) {
		t.Fatalf("Merge().Attrs = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Merge().Attrs[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMergeAttrsIdempotent(t *testing.T) {
	s := Style{Attrs: []TextAttribute{AttrBold, AttrDim}}

	got := Merge(s, s).Attrs
	if len(got) != 2 || got[0] != AttrBold || got[1] != AttrDim {
		t.Errorf("Merge(s, s).Attrs = %v, want %v deduplicated", got, s.Attrs)
	}
}

func TestMergeRightBias(t *testing.T) {
	// For every scalar field set on the override, the override value must
	// come through regardless of the base.
	base := Style{
		Foreground: Named("white"),
		Background: Named("blue"),
		Padding:    IntPtr(4),
		Margin:     IntPtr(4),
		Width:      Cells(80),
		Height:     Cells(24),
		Align:      AlignLeft,
	}
	override := Style{
		Foreground: RGB(255, 0, 0),
		Background: RGBA(0, 0, 0, 128),
		Padding:    IntPtr(0),
		Margin:     IntPtr(2),
		Width:      Auto,
		Height:     Fill,
		Align:      AlignRight,
	}

	got := Merge(base, override)
	if !stylesEqual(Style{
		Foreground: override.Foreground,
		Background: override.Background,
		Padding:    override.Padding,
		Margin:     override.Margin,
		Width:      override.Width,
		Height:     override.Height,
		Align:      override.Align,
	}, got) {
		t.Errorf("Merge() = %+v, want every field from override %+v", got, override)
	}
}

func TestMergeMany(t *testing.T) {
	if got := MergeMany(nil); !got.IsZero() {
		t.Errorf("MergeMany(nil) = %+v, want zero style", got)
	}

	styles := []Style{
		{Foreground: Named("red")},
		{}, // zero entries are skipped
		{Foreground: Named("green"), Padding: IntPtr(2)},
	}
	got := MergeMany(styles)
	if got.Foreground != Named("green") {
		t.Errorf("MergeMany().Foreground = %v, want last write %v", got.Foreground, Named("green"))
	}
	if got.Padding == nil || *got.Padding != 2 {
		t.Errorf("MergeMany().Padding = %v, want 2", got.Padding)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name  string
		in    any
		want  Color
		isErr bool
	}{
		{"named", "red", Named("red"), false},
		{"hex", "#7D56F4", Hex("#7D56F4"), false},
		{"rgb slice", []any{255, 128, 0}, RGB(255, 128, 0), false},
		{"rgba slice", []any{255, 128, 0, 64}, RGBA(255, 128, 0, 64), false},
		{"empty string", "", Color{}, false},
		{"nil", nil, Color{}, false},
		{"bad slice len", []any{1, 2}, Color{}, true},
		{"out of range", []any{300, 0, 0}, Color{}, true},
		{"bad type", 42, Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.isErr {
				if err == nil {
					t.Fatalf("ParseColor(%v) expected error, got %v", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%v) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorCSS(t *testing.T) {
	if got := RGB(10, 20, 30).CSS(); got != "rgb(10, 20, 30)" {
		t.Errorf("RGB.CSS() = %q", got)
	}
	if got := Hex("7D56F4").CSS(); got != "#7D56F4" {
		t.Errorf("Hex.CSS() = %q", got)
	}
	if got := (Color{}).CSS(); got != "" {
		t.Errorf("unset Color.CSS() = %q, want empty", got)
	}
}

func TestStyleCSS(t *testing.T) {
	s := Style{
		Foreground: Named("white"),
		Background: Hex("#202020"),
		Attrs:      []TextAttribute{AttrBold},
		Padding:    IntPtr(8),
		Width:      Fill,
		Align:      AlignCenter,
	}
	got := s.CSS()
	want := "color: white; background-color: #202020; font-weight: bold; padding: 8px; width: 100%; text-align: center"
	if got != want {
		t.Errorf("Style.CSS() = %q, want %q", got, want)
	}
}

func TestFromAttrsUnknownKey(t *testing.T) {
	_, err := FromAttrs(map[string]any{"font_family": "monospace"})
	var attrErr *InvalidAttrError
	if !errors.As(err, &attrErr) {
		t.Fatalf("FromAttrs() error = %v, want *InvalidAttrError", err)
	}
	if attrErr.Key != "font_family" {
		t.Errorf("InvalidAttrError.Key = %q, want font_family", attrErr.Key)
	}
}

func TestFromAttrsFullHouse(t *testing.T) {
	s, err := FromAttrs(map[string]any{
		"foreground":      "#FFFFFF",
		"background":      []any{32, 32, 32},
		"text_attributes": []any{"bold", "underline", "bold"},
		"padding":         2,
		"margin":          1,
		"width":           "fill",
		"height":          24,
		"alignment":       "center",
	})
	if err != nil {
		t.Fatalf("FromAttrs() error = %v", err)
	}
	if s.Foreground != Hex("#FFFFFF") {
		t.Errorf("Foreground = %v", s.Foreground)
	}
	if s.Background != RGB(32, 32, 32) {
		t.Errorf("Background = %v", s.Background)
	}
	if len(s.Attrs) != 2 {
		t.Errorf("Attrs = %v, want deduplicated [bold underline]", s.Attrs)
	}
	if s.Width != Fill || s.Height != Cells(24) {
		t.Errorf("Width/Height = %v/%v", s.Width, s.Height)
	}
	if s.Align != AlignCenter {
		t.Errorf("Align = %v", s.Align)
	}
}

func stylesEqual(a, b Style) bool {
	if a.Foreground != b.Foreground || a.Background != b.Background ||
		a.Width != b.Width || a.Height != b.Height || a.Align != b.Align {
		return false
	}
	if (a.Padding == nil) != (b.Padding == nil) || (a.Padding != nil && *a.Padding != *b.Padding) {
		return false
	}
	if (a.Margin == nil) != (b.Margin == nil) || (a.Margin != nil && *a.Margin != *b.Margin) {
		return false
	}
	if len(a.Attrs) != len(b.Attrs) {
		return false
	}
	for i := range a.Attrs {
		if a.Attrs[i] != b.Attrs[i] {
			return false
		}
	}
	return true
}
