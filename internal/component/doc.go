// Package component implements the Elm-style update cycle that drives every
// UI component: init(config) -> state, update(state, signal) -> state',
// view(state) -> IUR.
//
// Component-authored callbacks are untrusted at the cycle boundary: a panic
// or malformed result inside Init, an update handler, or View degrades to
// "no state change" / empty view instead of crashing the hosting process.
//
// An Instance hosts one component behind a mailbox goroutine, giving each
// instance actor semantics: signals apply one at a time in arrival order,
// and state reads are answered by the same loop, so no caller ever observes
// a half-applied update. The Registry is the explicit id-to-instance map
// owned by whatever orchestrator constructs components; there is no ambient
// global.
package component
