package component

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/pcharbon70/unified-ui-sub001/internal/iur"
	"github.com/pcharbon70/unified-ui-sub001/internal/logging"
	"github.com/pcharbon70/unified-ui-sub001/internal/signal"
)

// request is one unit of work for the instance loop. Exactly one field is
// set.
type request struct {
	sig      *signal.Signal
	getState chan map[string]any
	getIUR   chan iur.Node
}

// Instance hosts one component behind a mailbox goroutine. Signals are
// applied serially in arrival order; reads go through the same loop so
// callers always observe a fully-applied state.
type Instance struct {
	id      string
	cycle   *Cycle
	mailbox chan request

	closeOnce sync.Once
	closed    chan struct{}
}

// mailboxDepth bounds how many signals may queue before Dispatch blocks.
const mailboxDepth = 64

// NewInstance initializes a component and starts its mailbox loop.
func NewInstance(cycle *Cycle, config map[string]any) *Instance {
	inst := &Instance{
		id:      uuid.NewString(),
		cycle:   cycle,
		mailbox: make(chan request, mailboxDepth),
		closed:  make(chan struct{}),
	}
	go inst.loop(cycle.Init(config))
	return inst
}

// ID returns the instance's unique id.
func (i *Instance) ID() string { return i.id }

// Name returns the component name.
func (i *Instance) Name() string { return i.cycle.Name() }

func (i *Instance) loop(state map[string]any) {
	for {
		select {
		case <-i.closed:
			return
		case req := <-i.mailbox:
			switch {
			case req.sig != nil:
				logging.LogSignal(req.sig.Type, req.sig.Source, req.sig.Subject)
				state = i.cycle.Update(state, req.sig)
			case req.getState != nil:
				req.getState <- copyState(state)
			case req.getIUR != nil:
				req.getIUR <- i.cycle.View(state)
			}
		}
	}
}

// Dispatch queues a signal for serial application. It blocks while the
// mailbox is full and fails once the context is done or the instance is
// closed.
func (i *Instance) Dispatch(ctx context.Context, sig *signal.Signal) error {
	if sig == nil {
		return nil
	}
	select {
	case i.mailbox <- request{sig: sig}:
		return nil
	case <-i.closed:
		return fmt.Errorf("component instance %s is closed", i.id)
	case <-ctx.Done():
		return ctx.Err()
	}
}

// State returns a copy of the current state, serialized behind any queued
// signals.
func (i *Instance) State(ctx context.Context) (map[string]any, error) {
	reply := make(chan map[string]any, 1)
	select {
	case i.mailbox <- request{getState: reply}:
	case <-i.closed:
		return nil, fmt.Errorf("component instance %s is closed", i.id)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case state := <-reply:
		return state, nil
	case <-i.closed:
		// The loop may have answered just before exiting; the buffered
		// reply survives, so check it before failing.
		select {
		case state := <-reply:
			return state, nil
		default:
			return nil, fmt.Errorf("component instance %s is closed", i.id)
		}
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// IUR builds and returns the component's current IUR tree, serialized
// behind any queued signals. The result is never nil.
func (i *Instance) IUR(ctx context.Context) (iur.Node, error) {
	reply := make(chan iur.Node, 1)
	select {
	case i.mailbox <- request{getIUR: reply}:
	case <-i.closed:
		return nil, fmt.Errorf("component instance %s is closed", i.id)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case node := <-reply:
		return node, nil
	case <-i.closed:
		select {
		case node := <-reply:
			return node, nil
		default:
			return nil, fmt.Errorf("component instance %s is closed", i.id)
		}
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close stops the mailbox loop. Safe to call more than once; queued but
// unprocessed signals are dropped.
func (i *Instance) Close() {
	i.closeOnce.Do(func() { close(i.closed) })
}

func copyState(state map[string]any) map[string]any {
	out := make(map[string]any, len(state))
	for k, v := range state {
		out[k] = v
	}
	return out
}
