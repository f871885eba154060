package signal

import (
	"fmt"

	"github.com/google/uuid"
)

// EventType is a short, renderer-facing event name that maps onto a
// canonical signal type string.
type EventType string

const (
	EventClick  EventType = "click"
	EventChange EventType = "change"
	EventSubmit EventType = "submit"
	EventFocus  EventType = "focus"
	EventBlur   EventType = "blur"
	EventSelect EventType = "select"
)

// Canonical signal type strings. The "<domain>.<entity>.<action>" format is
// a wire contract for external subscribers and must stay stable.
const (
	TypeButtonClicked = "unified.button.clicked"
	TypeInputChanged  = "unified.input.changed"
	TypeFormSubmitted = "unified.form.submitted"
	TypeWidgetFocused = "unified.widget.focused"
	TypeWidgetBlurred = "unified.widget.blurred"
	TypeItemSelected  = "unified.item.selected"
)

// DefaultSource is the source path attached to signals built without an
// explicit source override.
const DefaultSource = "unified.ui"

var canonicalTypes = map[EventType]string{
	EventClick:  TypeButtonClicked,
	EventChange: TypeInputChanged,
	EventSubmit: TypeFormSubmitted,
	EventFocus:  TypeWidgetFocused,
	EventBlur:   TypeWidgetBlurred,
	EventSelect: TypeItemSelected,
}

// Signal is the typed event envelope used for internal dispatch and for
// external event notification alike.
type Signal struct {
	Type    string
	Data    map[string]any
	Source  string
	Subject string
}

// BuildOptions tunes Build. The zero value validates the payload, uses
// DefaultSource, and attaches no subject.
type BuildOptions struct {
	// Source overrides the signal source path.
	Source string
	// Subject attaches an explicit subject.
	Subject string
	// GenerateSubject attaches a random UUID subject when Subject is empty.
	GenerateSubject bool
	// SkipValidation opts out of payload validation. Only for payloads the
	// caller constructed itself from trusted values.
	SkipValidation bool
}

// Build constructs a Signal from an event type and payload. The payload is
// validated by default; validation failures reject the signal before it is
// ever constructed.
func Build(event EventType, payload map[string]any, opts BuildOptions) (*Signal, error) {
	canonical, ok := canonicalTypes[event]
	if !ok {
		return nil, fmt.Errorf("unknown event type %q", event)
	}

	if !opts.SkipValidation {
		if err := ValidatePayload(payload); err != nil {
			return nil, err
		}
	}

	source := opts.Source
	if source == "" {
		source = DefaultSource
	}
	subject := opts.Subject
	if subject == "" && opts.GenerateSubject {
		subject = uuid.NewString()
	}
	if payload == nil {
		payload = map[string]any{}
	}

	return &Signal{
		Type:    canonical,
		Data:    payload,
		Source:  source,
		Subject: subject,
	}, nil
}

// NewPlatform constructs a platform-extension signal (unified.mouse.*,
// unified.window.*, unified.web.*) with the same validation guarantees as
// Build. The type string is taken as-is.
func NewPlatform(signalType string, payload map[string]any, opts BuildOptions) (*Signal, error) {
	if signalType == "" {
		return nil, fmt.Errorf("platform signal type must not be empty")
	}
	if !opts.SkipValidation {
		if err := ValidatePayload(payload); err != nil {
			return nil, err
		}
	}
	source := opts.Source
	if source == "" {
		source = DefaultSource
	}
	if payload == nil {
		payload = map[string]any{}
	}
	return &Signal{Type: signalType, Data: payload, Source: source, Subject: opts.Subject}, nil
}

// Match reports whether the signal's type is the canonical type for the
// given event. A nil signal never matches.
func Match(sig *Signal, event EventType) bool {
	if sig == nil {
		return false
	}
	canonical, ok := canonicalTypes[event]
	return ok && sig.Type == canonical
}

// CanonicalType returns the canonical type string for an event type.
func CanonicalType(event EventType) (string, bool) {
	t, ok := canonicalTypes[event]
	return t, ok
}
