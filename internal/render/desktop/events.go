package desktop

import (
	"github.com/pcharbon70/unified-ui-sub001/internal/signal"
)

// Event is a toolkit callback reduced to the neutral triple this backend
// understands. Action is one of the signal event names (click, change,
// submit, focus, blur, select).
type Event struct {
	WidgetID string
	Action   signal.EventType
	Value    any
}

// CaptureEvent converts a toolkit event into a canonical signal. Events with
// an unknown action, or whose value fails payload validation, yield nil.
func CaptureEvent(ev Event, source string) *signal.Signal {
	payload := map[string]any{
		"widget_id": ev.WidgetID,
		"platform":  "desktop",
	}
	if ev.Value != nil {
		payload["value"] = ev.Value
	}

	sig, err := signal.Build(ev.Action, payload, signal.BuildOptions{Source: source})
	if err != nil {
		return nil
	}
	return sig
}
