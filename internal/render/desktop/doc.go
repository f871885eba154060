// Package desktop renders IUR trees into a toolkit-neutral widget tree: a
// typed widget node per IUR node, with resolved styles flattened into a
// property list the embedding toolkit can interpret. TextInput has no
// native widget here and is emitted as a tagged metadata wrapper around an
// entry slot.
//
// Event capture accepts toolkit callbacks already reduced to (widget id,
// action, value) triples and converts them to canonical signals.
package desktop
