// Package iur defines the Intermediate UI Representation: the
// platform-agnostic tree of typed widget and layout nodes that the builder
// produces and every renderer consumes.
//
// Node is a sealed interface; the closed set of implementations lives in
// this package so that renderer dispatch over node kinds is exhaustive by
// construction. Leaf widgets (Text, Button, Label, TextInput, Gauge,
// Sparkline, BarChart, LineChart, MenuItem, Tab, TreeNode, Column) carry no
// children. Container nodes (VBox, HBox, Menu, ContextMenu, Tabs, TreeView,
// Table) own an ordered child list; a child belongs to exactly one parent.
//
// Trees are rebuilt on every view pass and are immutable once built, which
// is what lets multiple renderers walk the same tree concurrently.
package iur
