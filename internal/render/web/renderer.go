package web

import (
	"fmt"
	"html"
	"strings"

	"github.com/pcharbon70/unified-ui-sub001/internal/iur"
	"github.com/pcharbon70/unified-ui-sub001/internal/logging"
	"github.com/pcharbon70/unified-ui-sub001/internal/render"
	"github.com/pcharbon70/unified-ui-sub001/internal/style"
)

// Renderer is the HTML backend. State.Root is the rendered HTML string for
// the whole tree.
type Renderer struct{}

// New returns a web renderer.
func New() *Renderer { return &Renderer{} }

// Platform implements render.Renderer.
func (r *Renderer) Platform() render.Platform { return render.PlatformWeb }

// Render implements render.Renderer.
func (r *Renderer) Render(root iur.Node, opts render.Options) (*render.State, error) {
	state := render.NewState(render.PlatformWeb, opts)
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

// Destroy implements render.Renderer. HTML strings hold no resources.
func (r *Renderer) Destroy(state *render.State) error { return nil }

func (r *Renderer) fill(state *render.State, root iur.Node) {
	markup := r.convert(root, state)
	if markup == "" {
		markup = `<div style="display: flex; flex-direction: column"></div>`
	}
	state.Root = markup
	logging.LogRender(string(render.PlatformWeb), state.Version, len(state.WidgetsByID))
}

// HTML returns the rendered markup of a web render state.
func HTML(state *render.State) string {
	if state == nil {
		return ""
	}
	markup, _ := state.Root.(string)
	return markup
}

// convert maps one IUR node to markup. Invisible nodes convert to the empty
// string and are pruned with their whole subtree.
func (r *Renderer) convert(n iur.Node, state *render.State) string {
	if n == nil || !n.Meta().Visible {
		return ""
	}

	var markup string
	common := commonAttrs(n.Meta())

	switch node := n.(type) {
	case *iur.Text:
		markup = fmt.Sprintf("<span%s>%s</span>", common, html.EscapeString(node.Content))
	case *iur.Button:
		action := ""
		if node.OnClick != nil {
			action = fmt.Sprintf(" ui-click=%q", node.OnClick.HandlerAction())
		}
		markup = fmt.Sprintf("<button%s%s>%s</button>", action, common, html.EscapeString(node.Label))
	case *iur.Label:
		markup = fmt.Sprintf("<label for=%q%s>%s</label>",
			node.For, common, html.EscapeString(node.Text))
	case *iur.TextInput:
		var b strings.Builder
		fmt.Fprintf(&b, "<input type=%q", string(node.InputType))
		if node.Name != "" {
			fmt.Fprintf(&b, " name=%q id=%q", node.Name, node.Name)
		}
		if node.OnChange != nil {
			fmt.Fprintf(&b, " ui-change=%q", node.OnChange.HandlerAction())
		}
		// Passwords are never echoed back into markup.
		if node.Value != "" && node.InputType != iur.InputPassword {
			fmt.Fprintf(&b, " value=%q", html.EscapeString(node.Value))
		}
		if node.Placeholder != "" {
			fmt.Fprintf(&b, " placeholder=%q", html.EscapeString(node.Placeholder))
		}
		b.WriteString(common + ">")
		markup = b.String()
	case *iur.Gauge:
		label := ""
		if node.Label != "" {
			label = "<span>" + html.EscapeString(node.Label) + "</span> "
		}
		markup = fmt.Sprintf(`%s<progress value="%g" max="1"%s></progress>`, label, node.Value, common)
	case *iur.Sparkline:
		markup = fmt.Sprintf(`<span class="sparkline"%s>%s</span>`, common, sparklinePoints(node.Values))
	case *iur.BarChart:
		markup = r.renderBarChart(node, common)
	case *iur.LineChart:
		markup = r.renderLineChart(node, common)
	case *iur.MenuItem:
		action := ""
		if node.OnSelect != nil {
			action = fmt.Sprintf(" ui-select=%q", node.OnSelect.HandlerAction())
		}
		markup = fmt.Sprintf("<li%s%s>%s</li>", action, common, html.EscapeString(node.Label))
	case *iur.Tab:
		class := "tab"
		if node.Active {
			class = "tab active"
		}
		markup = fmt.Sprintf("<button class=%q%s>%s</button>", class, common, html.EscapeString(node.Title))
	case *iur.TreeNode:
		marker := "&#9654;"
		if node.Expanded {
			marker = "&#9660;"
		}
		indent := attrsWithLayout(n.Meta(), fmt.Sprintf("margin-left: %dpx", node.Depth*16))
		markup = fmt.Sprintf("<li%s>%s %s</li>",
			indent, marker, html.EscapeString(node.Label))
	case *iur.Column:
		markup = fmt.Sprintf("<th%s>%s</th>", common, html.EscapeString(node.Header))
	case *iur.Table:
		markup = r.renderTable(node, common)
	case *iur.VBox:
		markup = r.renderBox(node.Children(), "column", node.Spacing, n.Meta(), state)
	case *iur.HBox:
		markup = r.renderBox(node.Children(), "row", node.Spacing, n.Meta(), state)
	case *iur.Menu:
		title := ""
		if node.Title != "" {
			title = "<strong>" + html.EscapeString(node.Title) + "</strong>"
		}
		markup = fmt.Sprintf("<nav%s>%s<ul>%s</ul></nav>",
			common, title, r.convertChildren(node.Children(), state))
	case *iur.ContextMenu:
		markup = fmt.Sprintf(`<ul class="context-menu"%s>%s</ul>`,
			common, r.convertChildren(node.Children(), state))
	case *iur.Tabs:
		markup = fmt.Sprintf(`<div role="tablist"%s>%s</div>`,
			common, r.convertChildren(node.Children(), state))
	case *iur.TreeView:
		markup = fmt.Sprintf(`<ul class="tree"%s>%s</ul>`,
			common, r.convertChildren(node.Children(), state))
	default:
		return ""
	}

	if id := n.Meta().ID; id != "" {
		state.WidgetsByID[id] = markup
	}
	return markup
}

func (r *Renderer) convertChildren(children []iur.Node, state *render.State) string {
	var b strings.Builder
	for _, child := range children {
		b.WriteString(r.convert(child, state))
	}
	return b.String()
}

func (r *Renderer) renderBox(children []iur.Node, direction string, spacing int, meta *iur.Meta, state *render.State) string {
	layout := fmt.Sprintf("display: flex; flex-direction: %s", direction)
	if spacing > 0 {
		layout += fmt.Sprintf("; gap: %dpx", spacing*4)
	}
	return fmt.Sprintf("<div%s>%s</div>", attrsWithLayout(meta, layout), r.convertChildren(children, state))
}

func (r *Renderer) renderBarChart(chart *iur.BarChart, common string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<div class="bar-chart"%s>`, common)
	if chart.Title != "" {
		b.WriteString("<strong>" + html.EscapeString(chart.Title) + "</strong>")
	}
	hi := 0.0
	for _, p := range chart.Points {
		if p.Value > hi {
			hi = p.Value
		}
	}
	for _, p := range chart.Points {
		pct := 0.0
		if hi > 0 {
			pct = p.Value / hi * 100
		}
		fmt.Fprintf(&b, `<div class="bar"><span>%s</span><div style="width: %.0f%%"></div></div>`,
			html.EscapeString(p.Label), pct)
	}
	b.WriteString("</div>")
	return b.String()
}

func (r *Renderer) renderLineChart(chart *iur.LineChart, common string) string {
	values := make([]float64, len(chart.Points))
	for i, p := range chart.Points {
		values[i] = p.Value
	}
	var b strings.Builder
	fmt.Fprintf(&b, `<div class="line-chart"%s>`, common)
	if chart.Title != "" {
		b.WriteString("<strong>" + html.EscapeString(chart.Title) + "</strong>")
	}
	fmt.Fprintf(&b, `<span class="sparkline">%s</span>`, sparklinePoints(values))
	b.WriteString("</div>")
	return b.String()
}

func (r *Renderer) renderTable(t *iur.Table, common string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<table%s><thead><tr>", common)
	for _, col := range t.Columns {
		header := html.EscapeString(col.Header)
		if col.Sortable {
			header += " &#8597;"
		}
		fmt.Fprintf(&b, "<th>%s</th>", header)
	}
	b.WriteString("</tr></thead><tbody>")
	for _, record := range t.Rows {
		b.WriteString("<tr>")
		for _, col := range t.Columns {
			align := ""
			if col.Align != "" {
				align = fmt.Sprintf(" style=\"text-align: %s\"", col.Align)
			}
			fmt.Fprintf(&b, "<td%s>%s</td>", align, html.EscapeString(t.Cell(record, col)))
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
	return b.String()
}

func sparklinePoints(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return html.EscapeString(strings.Join(parts, " "))
}

// commonAttrs renders the data-widget-id and inline style attributes shared
// by every element. The returned string is either empty or starts with a
// space so it splices directly after the tag name.
func commonAttrs(meta *iur.Meta) string {
	return attrsWithLayout(meta, "")
}

// attrsWithLayout merges backend layout declarations with the node's own
// resolved style into one style attribute. An element must carry at most
// one style attribute; parsers discard duplicates.
func attrsWithLayout(meta *iur.Meta, layout string) string {
	var b strings.Builder
	if meta.ID != "" {
		fmt.Fprintf(&b, " data-widget-id=%q", html.EscapeString(meta.ID))
	}
	css := layout
	if own := styleAttr(meta.Style); own != "" {
		if css != "" {
			css += "; " + own
		} else {
			css = own
		}
	}
	if css != "" {
		fmt.Fprintf(&b, " style=%q", css)
	}
	return b.String()
}

func styleAttr(s *style.Style) string {
	if s == nil {
		return ""
	}
	return s.CSS()
}
