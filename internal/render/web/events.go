package web

import (
	"github.com/tidwall/gjson"

	"github.com/pcharbon70/unified-ui-sub001/internal/signal"
)

// Web platform signal types, additive to the canonical set.
const (
	TypePageLoaded   = "unified.web.page_loaded"
	TypePageUnloaded = "unified.web.page_unloaded"
)

// CaptureEvent decodes a browser event JSON document into a canonical
// signal. The expected shape is {"event": "click", "widget_id": "...",
// "value": ..., "fields": {...}}; unknown events and invalid JSON yield
// nil, as do payloads that fail validation.
func CaptureEvent(data []byte, source string) *signal.Signal {
	if !gjson.ValidBytes(data) {
		return nil
	}
	doc := gjson.ParseBytes(data)

	event := signal.EventType(doc.Get("event").String())
	payload := map[string]any{"platform": "web"}
	if id := doc.Get("widget_id"); id.Exists() {
		payload["widget_id"] = id.String()
	}
	if value := doc.Get("value"); value.Exists() {
		payload["value"] = value.Value()
	}
	if fields := doc.Get("fields"); fields.IsObject() {
		payload["fields"] = fields.Value()
	}

	sig, err := signal.Build(event, payload, signal.BuildOptions{Source: source})
	if err != nil {
		return nil
	}
	return sig
}
