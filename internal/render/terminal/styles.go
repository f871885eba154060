package terminal

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/pcharbon70/unified-ui-sub001/internal/style"
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
)

// namedColors maps the portable color names to ANSI palette indices so that
// themes written with names degrade gracefully on 16-color terminals.
var namedColors = map[string]string{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",
	"gray":    "8",
	"grey":    "8",
}

// toLipglossColor converts a logical color to a lipgloss color term.
func toLipglossColor(c style.Color) lipgloss.Color {
	switch c.Kind {
	case style.ColorNamed:
		if ansi, ok := namedColors[c.Name]; ok {
			return lipgloss.Color(ansi)
		}
		return lipgloss.Color(c.Name)
	case style.ColorHex:
		return lipgloss.Color(c.Hex)
	case style.ColorRGB:
		return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B))
	case style.ColorRGBA:
		// Terminals have no alpha channel; drop it.
		return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B))
	default:
		return ""
	}
}

// toLipgloss converts a resolved logical style into a lipgloss style.
// Every backend supports foreground/background color and bold, underline,
// and italic; the remaining attributes are terminal extras.
func toLipgloss(s *style.Style) lipgloss.Style {
	ls := lipgloss.NewStyle()
	if s == nil {
		return ls
	}
	if s.Foreground.IsSet() {
		ls = ls.Foreground(toLipglossColor(s.Foreground))
	}
	if s.Background.IsSet() {
		ls = ls.Background(toLipglossColor(s.Background))
	}
	for _, attr := range s.Attrs {
		switch attr {
		case style.AttrBold:
			ls = ls.Bold(true)
		case style.AttrItalic:
			ls = ls.Italic(true)
		case style.AttrUnderline:
			ls = ls.Underline(true)
		case style.AttrStrikethrough:
			ls = ls.Strikethrough(true)
		case style.AttrReverse:
			ls = ls.Reverse(true)
		case style.AttrDim:
			ls = ls.Faint(true)
		case style.AttrBlink:
			ls = ls.Blink(true)
		}
	}
	if s.Padding != nil {
		ls = ls.Padding(0, *s.Padding)
	}
	if s.Margin != nil {
		ls = ls.Margin(0, *s.Margin)
	}
	if s.Width.Kind == style.DimCells {
		ls = ls.Width(s.Width.Cells)
	}
	if s.Height.Kind == style.DimCells {
		ls = ls.Height(s.Height.Cells)
	}
	switch s.Align {
	case style.AlignLeft:
		ls = ls.Align(lipgloss.Left)
	case style.AlignCenter:
		ls = ls.Align(lipgloss.Center)
	case style.AlignRight:
		ls = ls.Align(lipgloss.Right)
	}
	return ls
}

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// GetTerminalSize returns the current terminal width and height
func GetTerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth, 24 // Default fallback
	}
	return width, height
}
