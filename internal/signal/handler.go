package signal

import "fmt"

// HandlerKind discriminates the three declarative handler forms.
type HandlerKind string

const (
	HandlerPlain       HandlerKind = "plain"        // bare action id
	HandlerWithPayload HandlerKind = "with_payload" // action id + static payload
	HandlerExternal    HandlerKind = "external"     // module/function reference + args
)

// CustomAction is the sentinel returned by Action for external handlers;
// the actual function is invoked by the external-call path, never resolved
// through the action table.
const CustomAction = "custom"

// Handler is the normalized form of a widget's declarative signal handler.
type Handler struct {
	Kind    HandlerKind
	Action  string
	Payload map[string]any

	// External-call form
	ModuleRef   string
	FunctionRef string
	Args        []any
}

// NormalizeHandler converts the raw handler shapes the DSL layer produces
// into a Handler:
//
//   - "action" -> plain
//   - ["action", payloadMap] -> with-payload
//   - ["module", "function", argsList] -> external
func NormalizeHandler(raw any) (*Handler, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case *Handler:
		return v, nil
	case string:
		if v == "" {
			return nil, fmt.Errorf("handler action must not be empty")
		}
		return &Handler{Kind: HandlerPlain, Action: v, Payload: map[string]any{}}, nil
	case []any:
		return normalizeList(v)
	default:
		return nil, fmt.Errorf("unsupported handler shape %v (%T)", raw, raw)
	}
}

func normalizeList(list []any) (*Handler, error) {
	switch len(list) {
	case 2:
		action, ok := list[0].(string)
		if !ok || action == "" {
			return nil, fmt.Errorf("handler action must be a non-empty string, got %v", list[0])
		}
		payload, ok := list[1].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("handler payload must be a map, got %T", list[1])
		}
		return &Handler{Kind: HandlerWithPayload, Action: action, Payload: payload}, nil
	case 3:
		moduleRef, ok := list[0].(string)
		if !ok || moduleRef == "" {
			return nil, fmt.Errorf("external handler module must be a non-empty string, got %v", list[0])
		}
		functionRef, ok := list[1].(string)
		if !ok || functionRef == "" {
			return nil, fmt.Errorf("external handler function must be a non-empty string, got %v", list[1])
		}
		args, ok := list[2].([]any)
		if !ok {
			return nil, fmt.Errorf("external handler args must be a list, got %T", list[2])
		}
		return &Handler{
			Kind:        HandlerExternal,
			Action:      CustomAction,
			Payload:     map[string]any{},
			ModuleRef:   moduleRef,
			FunctionRef: functionRef,
			Args:        args,
		}, nil
	default:
		return nil, fmt.Errorf("handler list must have 2 or 3 elements, got %d", len(list))
	}
}

// HandlerAction returns the action id for plain/with-payload handlers and
// the CustomAction sentinel for external handlers.
func (h *Handler) HandlerAction() string {
	if h.Kind == HandlerExternal {
		return CustomAction
	}
	return h.Action
}

// Valid reports whether the handler is well-formed for its kind.
func (h *Handler) Valid() bool {
	switch h.Kind {
	case HandlerPlain, HandlerWithPayload:
		return h.Action != ""
	case HandlerExternal:
		return h.ModuleRef != "" && h.FunctionRef != ""
	default:
		return false
	}
}

// BuildStateUpdate merges a handler's static payload with an incoming
// signal's data into the map that will be folded into component state.
//
// With no mergeKey, signal data wins on key conflicts. With a mergeKey, only
// that single key is extracted from the signal data, and only when present
// (non-nil); the handler's other static fields are untouched either way.
// A nil signal yields just the handler's static payload.
func BuildStateUpdate(h *Handler, sig *Signal, mergeKey ...string) map[string]any {
	out := make(map[string]any)
	if h != nil {
		for k, v := range h.Payload {
			out[k] = v
		}
	}
	if sig == nil {
		return out
	}

	if len(mergeKey) == 0 {
		for k, v := range sig.Data {
			out[k] = v
		}
		return out
	}

	key := mergeKey[0]
	if v, ok := sig.Data[key]; ok && v != nil {
		out[key] = v
	}
	return out
}
