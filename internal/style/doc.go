// Package style implements the platform-agnostic style model for unified-ui.
//
// A Style is an immutable value object covering colors, text attributes,
// spacing, sizing, and alignment. Styles combine through Merge, which is
// right-biased for scalar fields (the override wins when set) and takes the
// deduplicated union of text attributes. The zero Style is the identity for
// Merge.
//
// Named styles live in a Registry and may extend one another. Resolution
// walks the extends chain, merging ancestors first so that descendants and
// inline overrides always win. Chains are cycle-checked; a style that
// extends an undefined parent is a hard error, never a silent empty style.
//
// # Themes
//
// A Registry can be populated from a YAML theme document:
//
//	styles:
//	  base:
//	    attributes:
//	      foreground: white
//	  primary:
//	    extends: base
//	    attributes:
//	      foreground: "#7D56F4"
//	      text_attributes: [bold]
//
// Registry.Watch re-loads the document when the file changes, keeping the
// previous styles when the new document fails to parse.
package style
