// Package builder converts declarative entity descriptors into IUR trees.
//
// The entity descriptor is the sole input contract: each node is a kind
// string, a loosely-typed attribute map, and an optional child list. How
// descriptors were produced (macro expansion, JSON, programmatic
// construction) is outside this package's concern; ParseEntityJSON is
// provided for the JSON case.
//
// Building dispatches on the kind string to a per-kind constructor, resolves
// style references through the style registry, and recursively builds
// children in declaration order. Unknown kinds build to nil and are filtered
// out of child lists - intentionally a silent drop, not an error, so a
// definition written against a newer widget set degrades instead of
// failing. Style resolution errors, by contrast, abort the build: they are
// definition-time mistakes.
package builder
