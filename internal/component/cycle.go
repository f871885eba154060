package component

import (
	"go.uber.org/zap"

	"github.com/pcharbon70/unified-ui-sub001/internal/builder"
	"github.com/pcharbon70/unified-ui-sub001/internal/iur"
	"github.com/pcharbon70/unified-ui-sub001/internal/logging"
	"github.com/pcharbon70/unified-ui-sub001/internal/signal"
)

// StateFunc transforms component state in response to a signal.
type StateFunc func(state map[string]any, sig *signal.Signal) map[string]any

// Definition declares a component: its optional initializer, its
// per-category update handlers, and its view. Every field except Name and
// View may be nil.
type Definition struct {
	Name string

	// Init produces the initial state from configuration. A nil Init, a
	// panicking Init, or one returning nil yields the empty state.
	Init func(config map[string]any) map[string]any

	// Per-category update handlers for the canonical signal categories.
	OnClick  StateFunc
	OnChange StateFunc
	OnSubmit StateFunc

	// View declares the entity tree for a given state.
	View func(state map[string]any) *builder.Entity
}

// Cycle is the pure update cycle for one component definition. All methods
// are pure with respect to their inputs; state maps are treated as
// immutable values and handlers are expected to return fresh maps.
type Cycle struct {
	def     Definition
	builder *builder.Builder
}

// NewCycle pairs a definition with the builder used by its view.
func NewCycle(def Definition, b *builder.Builder) *Cycle {
	if b == nil {
		b = builder.New(nil)
	}
	return &Cycle{def: def, builder: b}
}

// Name returns the component name.
func (c *Cycle) Name() string { return c.def.Name }

// Init produces the initial state. A missing or misbehaving initializer
// fails closed to the empty state; it never corrupts the cycle.
func (c *Cycle) Init(config map[string]any) map[string]any {
	if c.def.Init == nil {
		return map[string]any{}
	}
	state := c.callGuarded("init", func() map[string]any {
		return c.def.Init(config)
	}, nil)
	if state == nil {
		return map[string]any{}
	}
	return state
}

// Update dispatches a signal to the matching category handler and returns
// the new state. Unrecognized signal types, missing handlers, and handler
// panics all resolve to the unchanged state; the cycle never treats them as
// errors.
func (c *Cycle) Update(state map[string]any, sig *signal.Signal) map[string]any {
	if state == nil {
		state = map[string]any{}
	}
	if sig == nil {
		return state
	}

	var handler StateFunc
	switch {
	case signal.Match(sig, signal.EventClick):
		handler = c.def.OnClick
	case signal.Match(sig, signal.EventChange):
		handler = c.def.OnChange
	case signal.Match(sig, signal.EventSubmit):
		handler = c.def.OnSubmit
	}
	if handler == nil {
		// Terminal no-op transition, not an error.
		return state
	}

	next := c.callGuarded("update", func() map[string]any {
		return handler(state, sig)
	}, state)
	if next == nil {
		return state
	}
	return next
}

// View builds the IUR tree for a state. The result is never nil: a missing
// view, a build failure, a panicking view, or an empty tree all yield the
// canonical empty container so renderers always receive a valid root.
func (c *Cycle) View(state map[string]any) iur.Node {
	if c.def.View == nil {
		return iur.EmptyVBox()
	}

	entity := c.callEntityGuarded(state)
	if entity == nil {
		return iur.EmptyVBox()
	}

	node, err := c.builder.Build(entity)
	logging.LogBuild(c.def.Name, iur.Count(node), err)
	if err != nil || node == nil {
		return iur.EmptyVBox()
	}
	return node
}

// callGuarded invokes a state function, converting panics into the given
// fallback.
func (c *Cycle) callGuarded(phase string, fn func() map[string]any, fallback map[string]any) (result map[string]any) {
	defer func() {
		if r := recover(); r != nil {
			logging.Warn("Component callback panicked",
				zap.String("component", c.def.Name),
				zap.String("phase", phase),
				zap.Any("panic", r),
			)
			result = fallback
		}
	}()
	return fn()
}

func (c *Cycle) callEntityGuarded(state map[string]any) (result *builder.Entity) {
	defer func() {
		if r := recover(); r != nil {
			logging.Warn("Component callback panicked",
				zap.String("component", c.def.Name),
				zap.String("phase", "view"),
				zap.Any("panic", r),
			)
			result = nil
		}
	}()
	return c.def.View(state)
}
