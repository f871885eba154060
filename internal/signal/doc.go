// Package signal implements the typed event envelope shared by the update
// cycle and every renderer, plus the validation that guards it.
//
// A Signal is a "<domain>.<entity>.<action>" type string, an open
// string-keyed data map, a source path, and an optional subject. Six
// canonical event types (click, change, submit, focus, blur, select) map to
// fixed type strings; renderers extend the space with platform-specific
// types (unified.mouse.*, unified.window.*, unified.web.*) additively.
//
// Payloads originating from handlers or platform events are untrusted and
// are validated before a signal is built: total estimated size, map nesting
// depth, and per-string length are all bounded so a hostile payload cannot
// grow component state without limit.
//
// The package also owns the string sanitization and field redaction rules
// used wherever user-entered values are echoed back in errors or logs.
package signal
