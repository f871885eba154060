package terminal

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pcharbon70/unified-ui-sub001/internal/component"
	"github.com/pcharbon70/unified-ui-sub001/internal/render"
	"github.com/pcharbon70/unified-ui-sub001/internal/signal"
)

// hostTimeout bounds each round trip into the component instance so a
// stuck component cannot freeze the terminal.
const hostTimeout = 2 * time.Second

// HostModel is a Bubble Tea model that drives one component instance
// through the full cycle: terminal events become signals, signals update
// state, and the new state re-renders through this backend.
type HostModel struct {
	instance *component.Instance
	renderer *Renderer
	state    *render.State
	opts     render.Options
	err      error
}

// NewHostModel wraps a component instance for interactive hosting.
func NewHostModel(instance *component.Instance, opts render.Options) HostModel {
	return HostModel{
		instance: instance,
		renderer: New(),
		opts:     opts,
	}
}

// Init implements tea.Model.
func (m HostModel) Init() tea.Cmd {
	return m.refresh
}

type refreshedMsg struct {
	state *render.State
	err   error
}

// refresh pulls the instance's current IUR and renders it.
func (m HostModel) refresh() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), hostTimeout)
	defer cancel()

	root, err := m.instance.IUR(ctx)
	if err != nil {
		return refreshedMsg{err: err}
	}
	var state *render.State
	if m.state == nil {
		state, err = m.renderer.Render(root, m.opts)
	} else {
		state, err = m.renderer.Update(root, m.state, m.opts)
	}
	return refreshedMsg{state: state, err: err}
}

// Update implements tea.Model.
func (m HostModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case refreshedMsg:
		if typed.err != nil {
			m.err = typed.err
			return m, tea.Quit
		}
		m.state = typed.state
		return m, nil
	case tea.KeyMsg:
		switch typed.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "enter", " ":
			// Activation keys map onto the canonical click signal; every
			// other key flows through as a terminal platform signal.
			return m, m.dispatch(m.clickSignal())
		}
	}

	if sig := CaptureEvent(msg, m.opts.Source); sig != nil {
		return m, m.dispatch(sig)
	}
	return m, nil
}

func (m HostModel) clickSignal() *signal.Signal {
	sig, err := signal.Build(signal.EventClick, map[string]any{"platform": "terminal"}, signal.BuildOptions{Source: m.opts.Source})
	if err != nil {
		return nil
	}
	return sig
}

func (m HostModel) dispatch(sig *signal.Signal) tea.Cmd {
	if sig == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), hostTimeout)
		defer cancel()
		if err := m.instance.Dispatch(ctx, sig); err != nil {
			return refreshedMsg{err: err}
		}
		return m.refresh()
	}
}

// View implements tea.Model.
func (m HostModel) View() string {
	if m.err != nil {
		return "error: " + m.err.Error() + "\n"
	}
	if m.state == nil {
		return "loading...\n"
	}
	return View(m.state) + "\n\n(q to quit, enter to click)\n"
}

// RunProgram hosts a component instance interactively until the user quits.
func RunProgram(instance *component.Instance, opts render.Options) error {
	p := tea.NewProgram(NewHostModel(instance, opts))
	_, err := p.Run()
	return err
}
