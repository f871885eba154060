package render

import (
	"github.com/pcharbon70/unified-ui-sub001/internal/iur"
)

// Platform identifies a rendering backend.
type Platform string

const (
	PlatformTerminal Platform = "terminal"
	PlatformDesktop  Platform = "desktop"
	PlatformWeb      Platform = "web"
)

// Platforms lists every known platform in detection-preference order.
func Platforms() []Platform {
	return []Platform{PlatformWeb, PlatformDesktop, PlatformTerminal}
}

// Options carries per-render configuration shared by all backends.
type Options struct {
	// Source overrides the source path stamped on signals captured from
	// platform events.
	Source string
	// Width hints the available width in cells/pixels; 0 lets the backend
	// pick its own default.
	Width int
	// Config carries backend-specific settings.
	Config map[string]any
}

// State is the result of one render pass. It is exclusively owned by the
// renderer instance that produced it and must not be mutated by callers.
type State struct {
	Platform Platform
	// Root is the platform tree: a *terminal.Node, a *desktop.Widget, or an
	// HTML string depending on the backend.
	Root any
	// WidgetsByID indexes platform nodes by their IUR id for event routing.
	WidgetsByID map[string]any
	// Version increments monotonically across Update calls to support
	// future diffing.
	Version  int
	Config   Options
	Metadata map[string]any
}

// NewState returns a fresh version-1 state for a platform.
func NewState(platform Platform, opts Options) *State {
	return &State{
		Platform:    platform,
		WidgetsByID: make(map[string]any),
		Version:     1,
		Config:      opts,
		Metadata:    make(map[string]any),
	}
}

// Next returns the successor state for a full re-render: same platform and
// options, fresh widget index, version incremented.
func (s *State) Next(opts Options) *State {
	return &State{
		Platform:    s.Platform,
		WidgetsByID: make(map[string]any),
		Version:     s.Version + 1,
		Config:      opts,
		Metadata:    make(map[string]any),
	}
}

// Renderer converts IUR trees into platform trees and captures platform
// events back as signals.
type Renderer interface {
	// Platform identifies the backend.
	Platform() Platform
	// Render builds a fresh platform tree by depth-first conversion.
	Render(root iur.Node, opts Options) (*State, error)
	// Update re-renders against the previous state. The baseline contract
	// is a full re-render with Version incremented.
	Update(root iur.Node, prev *State, opts Options) (*State, error)
	// Destroy releases any resources held by a state. It must be safe to
	// call at most once per render cycle and must not panic.
	Destroy(state *State) error
}
