package terminal

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pcharbon70/unified-ui-sub001/internal/signal"
)

// Terminal platform signal types, additive to the canonical set.
const (
	TypeKeyPressed    = "unified.key.pressed"
	TypeMousePressed  = "unified.mouse.pressed"
	TypeMouseReleased = "unified.mouse.released"
	TypeMouseMoved    = "unified.mouse.moved"
	TypeWindowResized = "unified.window.resized"
)

// CaptureEvent converts a Bubble Tea message into the canonical signal
// shape, tagging the terminal platform. Messages with no signal mapping
// yield nil.
func CaptureEvent(msg tea.Msg, source string) *signal.Signal {
	opts := signal.BuildOptions{Source: source}
	if opts.Source == "" {
		opts.Source = "terminal"
	}

	switch m := msg.(type) {
	case tea.KeyMsg:
		sig, err := signal.NewPlatform(TypeKeyPressed, map[string]any{
			"key":      m.String(),
			"platform": "terminal",
		}, opts)
		if err != nil {
			return nil
		}
		return sig
	case tea.MouseMsg:
		var signalType string
		switch m.Action {
		case tea.MouseActionPress:
			signalType = TypeMousePressed
		case tea.MouseActionRelease:
			signalType = TypeMouseReleased
		default:
			signalType = TypeMouseMoved
		}
		sig, err := signal.NewPlatform(signalType, map[string]any{
			"x":        m.X,
			"y":        m.Y,
			"button":   int(m.Button),
			"platform": "terminal",
		}, opts)
		if err != nil {
			return nil
		}
		return sig
	case tea.WindowSizeMsg:
		sig, err := signal.NewPlatform(TypeWindowResized, map[string]any{
			"width":    m.Width,
			"height":   m.Height,
			"platform": "terminal",
		}, opts)
		if err != nil {
			return nil
		}
		return sig
	default:
		return nil
	}
}
