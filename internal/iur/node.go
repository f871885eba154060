package iur

import (
	"github.com/pcharbon70/unified-ui-sub001/internal/signal"
	"github.com/pcharbon70/unified-ui-sub001/internal/style"
)

// Kind identifies the widget/layout type of a node.
type Kind string

const (
	KindText        Kind = "text"
	KindButton      Kind = "button"
	KindLabel       Kind = "label"
	KindTextInput   Kind = "text_input"
	KindGauge       Kind = "gauge"
	KindSparkline   Kind = "sparkline"
	KindBarChart    Kind = "bar_chart"
	KindLineChart   Kind = "line_chart"
	KindMenuItem    Kind = "menu_item"
	KindTab         Kind = "tab"
	KindTreeNode    Kind = "tree_node"
	KindColumn      Kind = "column"
	KindVBox        Kind = "vbox"
	KindHBox        Kind = "hbox"
	KindMenu        Kind = "menu"
	KindContextMenu Kind = "context_menu"
	KindTabs        Kind = "tabs"
	KindTreeView    Kind = "tree_view"
	KindTable       Kind = "table"
)

// Meta carries the fields every node has: an optional tree-unique id, an
// optional resolved style, and visibility (default true). Id uniqueness is
// enforced by Validate, not by the node itself.
type Meta struct {
	ID      string
	Style   *style.Style
	Visible bool
}

// NewMeta returns a Meta with the documented defaults.
func NewMeta() Meta { return Meta{Visible: true} }

// Node is the sealed IUR node interface. Children returns nil for leaf
// widgets and the ordered child list for containers.
type Node interface {
	isNode()
	Kind() Kind
	Meta() *Meta
	Children() []Node
}

// base is embedded by every node type.
type base struct {
	meta Meta
}

func (b *base) isNode()          {}
func (b *base) Meta() *Meta      { return &b.meta }
func (b *base) Children() []Node { return nil }

// SetMeta replaces the node's meta. Used by the builder during construction.
func (b *base) SetMeta(m Meta) { b.meta = m }

// container is embedded by every container node type.
type container struct {
	base
	Kids []Node
}

func (c *container) Children() []Node { return c.Kids }

// InputType enumerates the accepted TextInput types.
type InputType string

const (
	InputText     InputType = "text"
	InputPassword InputType = "password"
	InputEmail    InputType = "email"
	InputNumber   InputType = "number"
	InputTel      InputType = "tel"
)

// ValidInputType reports whether t is one of the accepted input types.
func ValidInputType(t InputType) bool {
	switch t {
	case InputText, InputPassword, InputEmail, InputNumber, InputTel:
		return true
	}
	return false
}

// Point is one (label, value) datum for bar and line charts.
type Point struct {
	Label string
	Value float64
}

// Text is a styled text run. Content is required.
type Text struct {
	base
	Content string
}

func (*Text) Kind() Kind { return KindText }

// Button is a clickable widget. Label is required.
type Button struct {
	base
	Label   string
	OnClick *signal.Handler
}

func (*Button) Kind() Kind { return KindButton }

// Label is a caption bound to an input via For. Both fields default to
// empty; presence is the DSL layer's responsibility, while dangling For
// references are caught by Validate.
type Label struct {
	base
	For  string
	Text string
}

func (*Label) Kind() Kind { return KindLabel }

// TextInput is a single-line input widget.
type TextInput struct {
	base
	InputType   InputType
	Name        string
	Value       string
	Placeholder string
	OnChange    *signal.Handler
}

func (*TextInput) Kind() Kind { return KindTextInput }

// Gauge shows a single ratio in [0, 1].
type Gauge struct {
	base
	Label string
	Value float64
}

func (*Gauge) Kind() Kind { return KindGauge }

// Sparkline is an inline trend of numeric values.
type Sparkline struct {
	base
	Values []float64
}

func (*Sparkline) Kind() Kind { return KindSparkline }

// BarChart plots ordered (label, value) pairs as bars.
type BarChart struct {
	base
	Title  string
	Points []Point
}

func (*BarChart) Kind() Kind { return KindBarChart }

// LineChart plots ordered (label, value) pairs as a line.
type LineChart struct {
	base
	Title  string
	Points []Point
}

func (*LineChart) Kind() Kind { return KindLineChart }

// MenuItem is one selectable entry of a Menu or ContextMenu.
type MenuItem struct {
	base
	Label    string
	OnSelect *signal.Handler
}

func (*MenuItem) Kind() Kind { return KindMenuItem }

// Tab is one tab header inside a Tabs container.
type Tab struct {
	base
	Title  string
	Active bool
}

func (*Tab) Kind() Kind { return KindTab }

// TreeNode is one entry of a TreeView.
type TreeNode struct {
	base
	Label    string
	Depth    int
	Expanded bool
	OnSelect *signal.Handler
}

func (*TreeNode) Kind() Kind { return KindTreeNode }

// VBox stacks its children vertically.
type VBox struct {
	container
	Spacing  int
	OnSubmit *signal.Handler
}

func (*VBox) Kind() Kind { return KindVBox }

// HBox stacks its children horizontally.
type HBox struct {
	container
	Spacing  int
	OnSubmit *signal.Handler
}

func (*HBox) Kind() Kind { return KindHBox }

// Menu is a titled list of MenuItem children.
type Menu struct {
	container
	Title string
}

func (*Menu) Kind() Kind { return KindMenu }

// ContextMenu is an untitled popup list of MenuItem children.
type ContextMenu struct {
	container
}

func (*ContextMenu) Kind() Kind { return KindContextMenu }

// Tabs owns an ordered list of Tab headers plus per-tab content panels.
type Tabs struct {
	container
	Active int
}

func (*Tabs) Kind() Kind { return KindTabs }

// TreeView owns an ordered list of TreeNode children.
type TreeView struct {
	container
}

func (*TreeView) Kind() Kind { return KindTreeView }

// EmptyVBox returns the canonical empty container substituted wherever a
// view produced no renderable content.
func EmptyVBox() *VBox {
	v := &VBox{}
	v.SetMeta(NewMeta())
	return v
}

// Walk visits the tree depth-first, left-to-right, parent before children.
// The visitor returns false to stop the whole walk; Walk reports whether the
// walk ran to completion.
func Walk(n Node, fn func(Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, child := range n.Children() {
		if !Walk(child, fn) {
			return false
		}
	}
	return true
}

// Count returns the number of nodes in the tree.
func Count(n Node) int {
	total := 0
	Walk(n, func(Node) bool {
		total++
		return true
	})
	return total
}
