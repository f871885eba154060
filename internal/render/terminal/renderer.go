package terminal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/pcharbon70/unified-ui-sub001/internal/iur"
	"github.com/pcharbon70/unified-ui-sub001/internal/logging"
	"github.com/pcharbon70/unified-ui-sub001/internal/render"
)

// Node is one node of the terminal platform tree. Content holds the fully
// rendered text for the node's subtree; Meta carries event-routing metadata
// such as click actions and label targets.
type Node struct {
	Kind     iur.Kind
	ID       string
	Content  string
	Meta     map[string]any
	Children []*Node
}

// Renderer is the text/ANSI backend.
type Renderer struct {
	gaugeWidth int
	barWidth   int
}

// New returns a terminal renderer.
func New() *Renderer {
	return &Renderer{gaugeWidth: 24, barWidth: 20}
}

// Platform implements render.Renderer.
func (r *Renderer) Platform() render.Platform { return render.PlatformTerminal }

// Render implements render.Renderer.
func (r *Renderer) Render(root iur.Node, opts render.Options) (*render.State, error) {
	state := render.NewState(render.PlatformTerminal, opts)
	if err := r.fill(state, root); err != nil {
		return nil, err
	}
	return state, nil
}

// Update implements render.Renderer. The terminal tree holds no external
// resources, so updating is a full re-render with the version bumped.
func (r *Renderer) Update(root iur.Node, prev *render.State, opts render.Options) (*render.State, error) {
	if prev == nil {
		return r.Render(root, opts)
	}
	state := prev.Next(opts)
	if err := r.fill(state, root); err != nil {
		return nil, err
	}
	return state, nil
}

// Destroy implements render.Renderer. Pure-data trees hold nothing to
// release.
func (r *Renderer) Destroy(state *render.State) error { return nil }

func (r *Renderer) fill(state *render.State, root iur.Node) error {
	node := r.convert(root, state)
	if node == nil {
		node = &Node{Kind: iur.KindVBox}
	}
	state.Root = node
	logging.LogRender(string(render.PlatformTerminal), state.Version, len(state.WidgetsByID))
	return nil
}

// View returns the flattened text of a terminal render state.
func View(state *render.State) string {
	if state == nil {
		return ""
	}
	node, ok := state.Root.(*Node)
	if !ok || node == nil {
		return ""
	}
	return node.Content
}

// convert maps one IUR node to a terminal node. Invisible nodes convert to
// nil and are pruned with their whole subtree.
func (r *Renderer) convert(n iur.Node, state *render.State) *Node {
	if n == nil || !n.Meta().Visible {
		return nil
	}

	out := &Node{Kind: n.Kind(), ID: n.Meta().ID}
	ls := toLipgloss(n.Meta().Style)

	switch node := n.(type) {
	case *iur.Text:
		out.Content = ls.Render(node.Content)
	case *iur.Button:
		out.Content = ls.Render("[ " + node.Label + " ]")
		out.Meta = map[string]any{"click": true}
		if node.OnClick != nil {
			out.Meta["action"] = node.OnClick.HandlerAction()
		}
	case *iur.Label:
		out.Content = ls.Render(node.Text)
		out.Meta = map[string]any{"for": node.For}
	case *iur.TextInput:
		out.Content = ls.Render(r.renderInput(node))
		out.Meta = map[string]any{"input": true, "name": node.Name, "type": string(node.InputType)}
	case *iur.Gauge:
		out.Content = ls.Render(r.renderGauge(node))
	case *iur.Sparkline:
		out.Content = ls.Render(renderSparkline(node.Values))
	case *iur.BarChart:
		out.Content = ls.Render(r.renderBarChart(node))
	case *iur.LineChart:
		out.Content = ls.Render(r.renderLineChart(node))
	case *iur.MenuItem:
		out.Content = ls.Render("• " + node.Label)
		if node.OnSelect != nil {
			out.Meta = map[string]any{"action": node.OnSelect.HandlerAction()}
		}
	case *iur.Tab:
		title := " " + node.Title + " "
		if node.Active {
			title = lipgloss.NewStyle().Bold(true).Underline(true).Render(title)
		}
		out.Content = ls.Render(title)
	case *iur.TreeNode:
		marker := "▶"
		if node.Expanded {
			marker = "▼"
		}
		out.Content = ls.Render(strings.Repeat("  ", node.Depth) + marker + " " + node.Label)
	case *iur.Column:
		out.Content = ls.Render(node.Header)
	case *iur.Table:
		out.Content = ls.Render(r.renderTable(node))
	case *iur.VBox:
		out.Children = r.convertChildren(node.Children(), state)
		out.Content = ls.Render(joinVertical(out.Children, node.Spacing))
	case *iur.HBox:
		out.Children = r.convertChildren(node.Children(), state)
		out.Content = ls.Render(joinHorizontal(out.Children, node.Spacing))
	case *iur.Menu:
		out.Children = r.convertChildren(node.Children(), state)
		body := joinVertical(out.Children, 0)
		if node.Title != "" {
			body = lipgloss.JoinVertical(lipgloss.Left, lipgloss.NewStyle().Bold(true).Render(node.Title), body)
		}
		out.Content = ls.Render(body)
	case *iur.ContextMenu:
		out.Children = r.convertChildren(node.Children(), state)
		out.Content = ls.Render(lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			Render(joinVertical(out.Children, 0)))
	case *iur.Tabs:
		out.Children = r.convertChildren(node.Children(), state)
		out.Content = ls.Render(joinHorizontal(out.Children, 1))
	case *iur.TreeView:
		out.Children = r.convertChildren(node.Children(), state)
		out.Content = ls.Render(joinVertical(out.Children, 0))
	default:
		return nil
	}

	if out.ID != "" {
		state.WidgetsByID[out.ID] = out
	}
	return out
}

func (r *Renderer) convertChildren(children []iur.Node, state *render.State) []*Node {
	out := make([]*Node, 0, len(children))
	for _, child := range children {
		if converted := r.convert(child, state); converted != nil {
			out = append(out, converted)
		}
	}
	return out
}

func joinVertical(children []*Node, spacing int) string {
	if len(children) == 0 {
		return ""
	}
	parts := make([]string, 0, len(children)*(spacing+1))
	for i, child := range children {
		if i > 0 {
			for s := 0; s < spacing; s++ {
				parts = append(parts, "")
			}
		}
		parts = append(parts, child.Content)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func joinHorizontal(children []*Node, spacing int) string {
	if len(children) == 0 {
		return ""
	}
	gap := strings.Repeat(" ", spacing)
	parts := make([]string, 0, len(children)*2)
	for i, child := range children {
		if i > 0 && gap != "" {
			parts = append(parts, gap)
		}
		parts = append(parts, child.Content)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// renderInput shows a type-indicator prefix plus the value or, when empty,
// the placeholder. Password values are masked, never echoed.
func (r *Renderer) renderInput(input *iur.TextInput) string {
	value := input.Value
	if input.InputType == iur.InputPassword && value != "" {
		value = strings.Repeat("*", len(value))
	}
	if value == "" {
		value = input.Placeholder
	}
	return fmt.Sprintf("(%s) %s", input.InputType, value)
}

func (r *Renderer) renderGauge(g *iur.Gauge) string {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = r.gaugeWidth
	view := bar.ViewAs(clamp01(g.Value))
	if g.Label == "" {
		return view
	}
	return g.Label + " " + view
}

var sparklineLevels = []rune("▁▂▃▄▅▆▇█")

func renderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	var b strings.Builder
	for _, v := range values {
		idx := 0
		if span > 0 {
			idx = int((v - lo) / span * float64(len(sparklineLevels)-1))
		}
		b.WriteRune(sparklineLevels[idx])
	}
	return b.String()
}

func (r *Renderer) renderBarChart(chart *iur.BarChart) string {
	lines := make([]string, 0, len(chart.Points)+1)
	if chart.Title != "" {
		lines = append(lines, lipgloss.NewStyle().Bold(true).Render(chart.Title))
	}
	labelWidth := 0
	hi := 0.0
	for _, p := range chart.Points {
		if len(p.Label) > labelWidth {
			labelWidth = len(p.Label)
		}
		if p.Value > hi {
			hi = p.Value
		}
	}
	for _, p := range chart.Points {
		barLen := 0
		if hi > 0 && p.Value > 0 {
			barLen = int(p.Value / hi * float64(r.barWidth))
			if barLen == 0 {
				barLen = 1
			}
		}
		lines = append(lines, fmt.Sprintf("%-*s %s %v",
			labelWidth, p.Label, strings.Repeat("█", barLen), p.Value))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderLineChart(chart *iur.LineChart) string {
	values := make([]float64, len(chart.Points))
	labels := make([]string, len(chart.Points))
	for i, p := range chart.Points {
		values[i] = p.Value
		labels[i] = p.Label
	}
	lines := make([]string, 0, 3)
	if chart.Title != "" {
		lines = append(lines, lipgloss.NewStyle().Bold(true).Render(chart.Title))
	}
	lines = append(lines, renderSparkline(values))
	lines = append(lines, strings.Join(labels, " "))
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderTable(t *iur.Table) string {
	columns := make([]table.Column, len(t.Columns))
	for i, col := range t.Columns {
		width := col.Width
		if width == 0 {
			width = len(col.Header)
			for _, row := range t.Rows {
				if w := len(t.Cell(row, col)); w > width {
					width = w
				}
			}
		}
		title := col.Header
		if col.Sortable {
			title += " ↕"
			width += 2
		}
		columns[i] = table.Column{Title: title, Width: width}
	}

	rows := make([]table.Row, len(t.Rows))
	for i, record := range t.Rows {
		cells := make(table.Row, len(t.Columns))
		for j, col := range t.Columns {
			cells[j] = t.Cell(record, col)
		}
		rows[i] = cells
	}

	model := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)
	return model.View()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
