// Package render defines the contract every platform backend implements:
// convert an IUR tree into a platform tree, re-render it against new state,
// and clean up. The three backends (terminal, desktop, web) live in
// subpackages and share the same traversal rules.
//
// The reference semantics are whole-tree re-render: Update produces the same
// output as a fresh Render, with the state's Version incremented. Backends
// may optimize internally but must preserve those semantics. Invisible nodes
// are pruned together with their subtree, emitting no placeholder.
package render
