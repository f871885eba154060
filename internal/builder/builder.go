package builder

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/pcharbon70/unified-ui-sub001/internal/iur"
	"github.com/pcharbon70/unified-ui-sub001/internal/logging"
	"github.com/pcharbon70/unified-ui-sub001/internal/signal"
	"github.com/pcharbon70/unified-ui-sub001/internal/style"
)

// Entity kind strings recognized by the builder.
const (
	KindText        = "text"
	KindButton      = "button"
	KindLabel       = "label"
	KindTextInput   = "text_input"
	KindGauge       = "gauge"
	KindSparkline   = "sparkline"
	KindBarChart    = "bar_chart"
	KindLineChart   = "line_chart"
	KindMenuItem    = "menu_item"
	KindTab         = "tab"
	KindTreeNode    = "tree_node"
	KindColumn      = "column"
	KindVBox        = "vbox"
	KindHBox        = "hbox"
	KindMenu        = "menu"
	KindContextMenu = "context_menu"
	KindTabs        = "tabs"
	KindTreeView    = "tree_view"
	KindTable       = "table"
)

// Builder converts entity descriptor trees into IUR trees, resolving style
// references against its registry. A Builder is stateless across Build
// calls and safe for concurrent use as long as the registry is not being
// redefined mid-build.
type Builder struct {
	styles *style.Registry
}

// New returns a builder over the given style registry. A nil registry is
// replaced with an empty one, so purely inline-styled trees still build.
func New(styles *style.Registry) *Builder {
	if styles == nil {
		styles = style.NewRegistry()
	}
	return &Builder{styles: styles}
}

// Build converts an entity tree into an IUR tree. A nil tree, or a tree
// whose top-level entity has no renderable mapping, yields (nil, nil);
// callers substitute an empty container rather than propagating the nil.
func (b *Builder) Build(root *Entity) (iur.Node, error) {
	if root == nil {
		return nil, nil
	}
	return b.buildEntity(root)
}

// buildEntity dispatches on the entity kind. Unknown kinds yield (nil, nil)
// and are filtered from child lists by buildChildren.
func (b *Builder) buildEntity(entity *Entity) (iur.Node, error) {
	switch entity.Kind {
	case KindText:
		return b.buildText(entity)
	case KindButton:
		return b.buildButton(entity)
	case KindLabel:
		return b.buildLabel(entity)
	case KindTextInput:
		return b.buildTextInput(entity)
	case KindGauge:
		return b.buildGauge(entity)
	case KindSparkline:
		return b.buildSparkline(entity)
	case KindBarChart:
		return b.buildBarChart(entity)
	case KindLineChart:
		return b.buildLineChart(entity)
	case KindMenuItem:
		return b.buildMenuItem(entity)
	case KindTab:
		return b.buildTab(entity)
	case KindTreeNode:
		return b.buildTreeNode(entity)
	case KindColumn:
		return b.buildColumn(entity)
	case KindVBox:
		return b.buildVBox(entity)
	case KindHBox:
		return b.buildHBox(entity)
	case KindMenu:
		return b.buildMenu(entity)
	case KindContextMenu:
		return b.buildContextMenu(entity)
	case KindTabs:
		return b.buildTabs(entity)
	case KindTreeView:
		return b.buildTreeView(entity)
	case KindTable:
		return b.buildTable(entity)
	default:
		logging.Debug("Dropping unknown entity kind", zap.String("kind", entity.Kind))
		return nil, nil
	}
}

// buildChildren builds a parent's child entities in declaration order,
// filtering out entities that built to nil. The result never contains nil
// entries; a nil or empty child list yields an empty slice.
func (b *Builder) buildChildren(parent *Entity) ([]iur.Node, error) {
	out := make([]iur.Node, 0, len(parent.Children))
	for _, child := range parent.Children {
		node, err := b.buildEntity(child)
		if err != nil {
			return nil, err
		}
		if node == nil {
			continue
		}
		out = append(out, node)
	}
	return out, nil
}

func (b *Builder) buildMeta(entity *Entity) (iur.Meta, error) {
	meta := iur.NewMeta()
	meta.ID = attrString(entity.Attrs, "id")
	if raw, ok := entity.Attrs["visible"]; ok {
		meta.Visible = attrBoolValue(raw)
	}
	resolved, err := b.styles.ResolveRef(entity.Attrs["style"])
	if err != nil {
		return iur.Meta{}, fmt.Errorf("entity %q: %w", entity.Kind, err)
	}
	meta.Style = resolved
	return meta, nil
}

func (b *Builder) buildHandler(entity *Entity, attr string) (*signal.Handler, error) {
	raw, ok := entity.Attrs[attr]
	if !ok {
		return nil, nil
	}
	h, err := signal.NormalizeHandler(raw)
	if err != nil {
		return nil, fmt.Errorf("entity %q %s: %w", entity.Kind, attr, err)
	}
	return h, nil
}

func (b *Builder) buildText(entity *Entity) (iur.Node, error) {
	meta, err := b.buildMeta(entity)
	if err != nil {
		return nil, err
	}
	node := &iur.Text{Content: attrString(entity.Attrs, "content")}
	node.SetMeta(meta)
	return node, nil
}

func (b *Builder) buildButton(entity *Entity) (iur.Node, error) {
	meta, err := b.buildMeta(entity)
	if err != nil {
		return nil, err
	}
	onClick, err := b.buildHandler(entity, "onClick")
	if err != nil {
		return nil, err
	}
	node := &iur.Button{Label: attrString(entity.Attrs, "label"), OnClick: onClick}
	node.SetMeta(meta)
	return node, nil
}

func (b *Builder) buildLabel(entity *Entity) (iur.Node, error) {
	meta, err := b.buildMeta(entity)
	if err != nil {
		return nil, err
	}
	node := &iur.Label{
		For:  attrString(entity.Attrs, "for"),
		Text: attrString(entity.Attrs, "text"),
	}
	node.SetMeta(meta)
	return node, nil
}

func (b *Builder) buildTextInput(entity *Entity) (iur.Node, error) {
	meta, err := b.buildMeta(entity)
	if err != nil {
		return nil, err
	}
	onChange, err := b.buildHandler(entity, "onChange")
	if err != nil {
		return nil, err
	}
	inputType := iur.InputType(attrString(entity.Attrs, "type"))
	if inputType == "" {
		inputType = iur.InputText
	}
	node := &iur.TextInput{
		InputType:   inputType,
		Name:        attrString(entity.Attrs, "name"),
		Value:       attrString(entity.Attrs, "value"),
		Placeholder: attrString(entity.Attrs, "placeholder"),
		OnChange:    onChange,
	}
	node.SetMeta(meta)
	return node, nil
}

func (b *Builder) buildGauge(entity *Entity) (iur.Node, error) {
	meta, err := b.buildMeta(entity)
	if err != nil {
		return nil, err
	}
	node := &iur.Gauge{
		Label: attrString(entity.Attrs, "label"),
		Value: attrFloat(entity.Attrs, "value"),
	}
	node.SetMeta(meta)
	return node, nil
}

func (b *Builder) buildSparkline(entity *Entity) (iur.Node, error) {
	meta, err := b.buildMeta(entity)
	if err != nil {
		return nil, err
	}
	node := &iur.Sparkline{Values: attrFloats(entity.Attrs, "values")}
	node.SetMeta(meta)
	return node, nil
}

func (b *Builder) buildBarChart(entity *Entity) (iur.Node, error) {
	meta, err := b.buildMeta(entity)
	if err != nil {
		return nil, err
	}
	points, err := attrPoints(entity.Attrs, "data")
	if err != nil {
		return nil, fmt.Errorf("bar_chart: %w", err)
	}
	node := &iur.BarChart{Title: attrString(entity.Attrs, "title"), Points: points}
	node.SetMeta(meta)
	return node, nil
}

func (b *Builder) buildLineChart(entity *Entity) (iur.Node, error) {
	meta, err := b.buildMeta(entity)
	if err != nil {
		return nil, err
	}
	points, err := attrPoints(entity.Attrs, "data")
	if err != nil {
		return nil, fmt.Errorf("line_chart: %w", err)
	}
	node := &iur.LineChart{Title: attrString(entity.Attrs, "title"), Points: points}
	node.SetMeta(meta)
	return node, nil
}

func (b *Builder) buildMenuItem(entity *Entity) (iur.Node, error) {
	meta, err := b.buildMeta(entity)
	if err != nil {
		return nil, err
	}
	onSelect, err := b.buildHandler(entity, "onSelect")
	if err != nil {
		return nil, err
	}
	node := &iur.MenuItem{Label: attrString(entity.Attrs, "label"), OnSelect: onSelect}
	node.SetMeta(meta)
	return node, nil
}

func (b *Builder) buildTab(entity *Entity) (iur.Node, error) {
	meta, err := b.buildMeta(entity)
	if err != nil {
		return nil, err
	}
	node := &iur.Tab{
		Title:  attrString(entity.Attrs, "title"),
		Active: attrBool(entity.Attrs, "active"),
	}
	node.SetMeta(meta)
	return node, nil
}

func (b *Builder) buildTreeNode(entity *Entity) (iur.Node, error) {
	meta, err := b.buildMeta(entity)
	if err != nil {
		return nil, err
	}
	onSelect, err := b.buildHandler(entity, "onSelect")
	if err != nil {
		return nil, err
	}
	node := &iur.TreeNode{
		Label:    attrString(entity.Attrs, "label"),
		Depth:    attrInt(entity.Attrs, "depth"),
		Expanded: attrBool(entity.Attrs, "expanded"),
		OnSelect: onSelect,
	}
	node.SetMeta(meta)
	return node, nil
}

func (b *Builder) buildColumn(entity *Entity) (iur.Node, error) {
	meta, err := b.buildMeta(entity)
	if err != nil {
		return nil, err
	}
	node := &iur.Column{
		Key:       attrString(entity.Attrs, "key"),
		Header:    attrString(entity.Attrs, "header"),
		Sortable:  attrBool(entity.Attrs, "sortable"),
		Formatter: attrString(entity.Attrs, "formatter"),
		Width:     attrInt(entity.Attrs, "width"),
		Align:     style.Alignment(attrString(entity.Attrs, "align")),
	}
	node.SetMeta(meta)
	node.CompileFormatter()
	return node, nil
}

func (b *Builder) buildVBox(entity *Entity) (iur.Node, error) {
	meta, err := b.buildMeta(entity)
	if err != nil {
		return nil, err
	}
	onSubmit, err := b.buildHandler(entity, "onSubmit")
	if err != nil {
		return nil, err
	}
	children, err := b.buildChildren(entity)
	if err != nil {
		return nil, err
	}
	node := &iur.VBox{Spacing: attrInt(entity.Attrs, "spacing"), OnSubmit: onSubmit}
	node.SetMeta(meta)
	node.Kids = children
	return node, nil
}

func (b *Builder) buildHBox(entity *Entity) (iur.Node, error) {
	meta, err := b.buildMeta(entity)
	if err != nil {
		return nil, err
	}
	onSubmit, err := b.buildHandler(entity, "onSubmit")
	if err != nil {
		return nil, err
	}
	children, err := b.buildChildren(entity)
	if err != nil {
		return nil, err
	}
	node := &iur.HBox{Spacing: attrInt(entity.Attrs, "spacing"), OnSubmit: onSubmit}
	node.SetMeta(meta)
	node.Kids = children
	return node, nil
}

func (b *Builder) buildMenu(entity *Entity) (iur.Node, error) {
	meta, err := b.buildMeta(entity)
	if err != nil {
		return nil, err
	}
	children, err := b.buildChildren(entity)
	if err != nil {
		return nil, err
	}
	node := &iur.Menu{Title: attrString(entity.Attrs, "title")}
	node.SetMeta(meta)
	node.Kids = children
	return node, nil
}

func (b *Builder) buildContextMenu(entity *Entity) (iur.Node, error) {
	meta, err := b.buildMeta(entity)
	if err != nil {
		return nil, err
	}
	children, err := b.buildChildren(entity)
	if err != nil {
		return nil, err
	}
	node := &iur.ContextMenu{}
	node.SetMeta(meta)
	node.Kids = children
	return node, nil
}

func (b *Builder) buildTabs(entity *Entity) (iur.Node, error) {
	meta, err := b.buildMeta(entity)
	if err != nil {
		return nil, err
	}
	children, err := b.buildChildren(entity)
	if err != nil {
		return nil, err
	}
	node := &iur.Tabs{Active: attrInt(entity.Attrs, "active")}
	node.SetMeta(meta)
	node.Kids = children
	return node, nil
}

func (b *Builder) buildTreeView(entity *Entity) (iur.Node, error) {
	meta, err := b.buildMeta(entity)
	if err != nil {
		return nil, err
	}
	children, err := b.buildChildren(entity)
	if err != nil {
		return nil, err
	}
	node := &iur.TreeView{}
	node.SetMeta(meta)
	node.Kids = children
	return node, nil
}

func (b *Builder) buildTable(entity *Entity) (iur.Node, error) {
	meta, err := b.buildMeta(entity)
	if err != nil {
		return nil, err
	}
	children, err := b.buildChildren(entity)
	if err != nil {
		return nil, err
	}
	node := &iur.Table{}
	node.SetMeta(meta)
	for _, child := range children {
		if col, ok := child.(*iur.Column); ok {
			node.Columns = append(node.Columns, col)
		}
	}
	node.Rows = attrRows(entity.Attrs, "rows")
	return node, nil
}
