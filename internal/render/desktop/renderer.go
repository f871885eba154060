package desktop

import (
	"fmt"

	"github.com/pcharbon70/unified-ui-sub001/internal/iur"
	"github.com/pcharbon70/unified-ui-sub001/internal/logging"
	"github.com/pcharbon70/unified-ui-sub001/internal/render"
	"github.com/pcharbon70/unified-ui-sub001/internal/style"
)

// Widget type names understood by the embedding toolkit.
const (
	TypeLabel         = "label"
	TypeButton        = "button"
	TypeEntry         = "entry"
	TypeEntryTagged   = "entry.tagged" // metadata wrapper, no native input widget
	TypeProgressBar   = "progressbar"
	TypeSparkline     = "sparkline"
	TypeBarChart      = "barchart"
	TypeLineChart     = "linechart"
	TypeBoxVertical   = "box.vertical"
	TypeBoxHorizontal = "box.horizontal"
	TypeMenu          = "menu"
	TypeMenuItem      = "menuitem"
	TypeContextMenu   = "contextmenu"
	TypeNotebook      = "notebook"
	TypeNotebookTab   = "notebook.tab"
	TypeTree          = "tree"
	TypeTreeRow       = "tree.row"
	TypeTable         = "table"
	TypeTableColumn   = "table.column"
)

// Prop is one (key, value) widget property. Props keep declaration order so
// toolkits that apply them sequentially stay deterministic.
type Prop struct {
	Key   string
	Value any
}

// Widget is one node of the desktop platform tree.
type Widget struct {
	Type     string
	ID       string
	Props    []Prop
	Children []*Widget
}

// Prop returns the value of the named property, or nil when absent.
func (w *Widget) Prop(key string) any {
	for _, p := range w.Props {
		if p.Key == key {
			return p.Value
		}
	}
	return nil
}

// Renderer is the toolkit-neutral desktop backend.
type Renderer struct{}

// New returns a desktop renderer.
func New() *Renderer { return &Renderer{} }

// Platform implements render.Renderer.
func (r *Renderer) Platform() render.Platform { return render.PlatformDesktop }

// Render implements render.Renderer.
func (r *Renderer) Render(root iur.Node, opts render.Options) (*render.State, error) {
	state := render.NewState(render.PlatformDesktop, opts)
	r.fill(state, root)
	return state, nil
}

// Update implements render.Renderer as a full re-render with an incremented
// version.
func (r *Renderer) Update(root iur.Node, prev *render.State, opts render.Options) (*render.State, error) {
	if prev == nil {
		return r.Render(root, opts)
	}
	state := prev.Next(opts)
	r.fill(state, root)
	return state, nil
}

// Destroy implements render.Renderer. The widget tree is plain data.
func (r *Renderer) Destroy(state *render.State) error { return nil }

func (r *Renderer) fill(state *render.State, root iur.Node) {
	widget := r.convert(root, state)
	if widget == nil {
		widget = &Widget{Type: TypeBoxVertical}
	}
	state.Root = widget
	logging.LogRender(string(render.PlatformDesktop), state.Version, len(state.WidgetsByID))
}

// convert maps one IUR node to a widget. Invisible nodes convert to nil and
// take their whole subtree with them.
func (r *Renderer) convert(n iur.Node, state *render.State) *Widget {
	if n == nil || !n.Meta().Visible {
		return nil
	}

	out := &Widget{ID: n.Meta().ID}
	out.Props = styleProps(n.Meta().Style)

	switch node := n.(type) {
	case *iur.Text:
		out.Type = TypeLabel
		out.add("text", node.Content)
	case *iur.Button:
		out.Type = TypeButton
		out.add("label", node.Label)
		if node.OnClick != nil {
			out.add("action", node.OnClick.HandlerAction())
		}
	case *iur.Label:
		out.Type = TypeLabel
		out.add("text", node.Text)
		out.add("for", node.For)
	case *iur.TextInput:
		out.Type = TypeEntryTagged
		out.add("input-type", string(node.InputType))
		out.add("name", node.Name)
		out.add("placeholder", node.Placeholder)
		if node.InputType == iur.InputPassword {
			out.add("masked", true)
		} else {
			out.add("value", node.Value)
		}
		out.Children = []*Widget{{Type: TypeEntry}}
	case *iur.Gauge:
		out.Type = TypeProgressBar
		out.add("label", node.Label)
		out.add("fraction", node.Value)
	case *iur.Sparkline:
		out.Type = TypeSparkline
		out.add("values", node.Values)
	case *iur.BarChart:
		out.Type = TypeBarChart
		out.add("title", node.Title)
		out.add("points", node.Points)
	case *iur.LineChart:
		out.Type = TypeLineChart
		out.add("title", node.Title)
		out.add("points", node.Points)
	case *iur.MenuItem:
		out.Type = TypeMenuItem
		out.add("label", node.Label)
		if node.OnSelect != nil {
			out.add("action", node.OnSelect.HandlerAction())
		}
	case *iur.Tab:
		out.Type = TypeNotebookTab
		out.add("title", node.Title)
		out.add("active", node.Active)
	case *iur.TreeNode:
		out.Type = TypeTreeRow
		out.add("label", node.Label)
		out.add("depth", node.Depth)
		out.add("expanded", node.Expanded)
	case *iur.Column:
		out.Type = TypeTableColumn
		out.add("key", node.Key)
		out.add("header", node.Header)
		out.add("sortable", node.Sortable)
	case *iur.Table:
		out.Type = TypeTable
		out.Children = r.convertChildren(node.Children(), state)
		rows := make([][]string, len(node.Rows))
		for i, record := range node.Rows {
			cells := make([]string, len(node.Columns))
			for j, col := range node.Columns {
				cells[j] = node.Cell(record, col)
			}
			rows[i] = cells
		}
		out.add("rows", rows)
	case *iur.VBox:
		out.Type = TypeBoxVertical
		out.add("spacing", node.Spacing)
		out.Children = r.convertChildren(node.Children(), state)
	case *iur.HBox:
		out.Type = TypeBoxHorizontal
		out.add("spacing", node.Spacing)
		out.Children = r.convertChildren(node.Children(), state)
	case *iur.Menu:
		out.Type = TypeMenu
		out.add("title", node.Title)
		out.Children = r.convertChildren(node.Children(), state)
	case *iur.ContextMenu:
		out.Type = TypeContextMenu
		out.Children = r.convertChildren(node.Children(), state)
	case *iur.Tabs:
		out.Type = TypeNotebook
		out.add("active", node.Active)
		out.Children = r.convertChildren(node.Children(), state)
	case *iur.TreeView:
		out.Type = TypeTree
		out.Children = r.convertChildren(node.Children(), state)
	default:
		return nil
	}

	if out.ID != "" {
		state.WidgetsByID[out.ID] = out
	}
	return out
}

func (r *Renderer) convertChildren(children []iur.Node, state *render.State) []*Widget {
	out := make([]*Widget, 0, len(children))
	for _, child := range children {
		if converted := r.convert(child, state); converted != nil {
			out = append(out, converted)
		}
	}
	return out
}

func (w *Widget) add(key string, value any) {
	w.Props = append(w.Props, Prop{Key: key, Value: value})
}

// styleProps flattens a resolved style into widget properties.
func styleProps(s *style.Style) []Prop {
	if s == nil || s.IsZero() {
		return nil
	}
	var props []Prop
	if s.Foreground.IsSet() {
		props = append(props, Prop{Key: "style.foreground", Value: s.Foreground.CSS()})
	}
	if s.Background.IsSet() {
		props = append(props, Prop{Key: "style.background", Value: s.Background.CSS()})
	}
	for _, a := range s.Attrs {
		props = append(props, Prop{Key: "style." + string(a), Value: true})
	}
	if s.Padding != nil {
		props = append(props, Prop{Key: "style.padding", Value: *s.Padding})
	}
	if s.Margin != nil {
		props = append(props, Prop{Key: "style.margin", Value: *s.Margin})
	}
	if s.Width.IsSet() {
		props = append(props, Prop{Key: "style.width", Value: dimProp(s.Width)})
	}
	if s.Height.IsSet() {
		props = append(props, Prop{Key: "style.height", Value: dimProp(s.Height)})
	}
	if s.Align != "" {
		props = append(props, Prop{Key: "style.align", Value: string(s.Align)})
	}
	return props
}

func dimProp(d style.Dimension) string {
	switch d.Kind {
	case style.DimCells:
		return fmt.Sprintf("%d", d.Cells)
	case style.DimAuto:
		return "auto"
	case style.DimFill:
		return "fill"
	default:
		return ""
	}
}
