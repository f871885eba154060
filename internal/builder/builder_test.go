package builder

import (
	"testing"

	"github.com/pcharbon70/unified-ui-sub001/internal/iur"
	"github.com/pcharbon70/unified-ui-sub001/internal/signal"
	"github.com/pcharbon70/unified-ui-sub001/internal/style"
)

func TestBuildNestedLayoutRoundTrip(t *testing.T) {
	tree := NewEntity("vbox", nil,
		NewEntity("hbox", nil,
			NewEntity("button", map[string]any{"label": "OK"}),
			NewEntity("button", map[string]any{"label": "Cancel"}),
		),
	)

	root, err := New(nil).Build(tree)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	vbox, ok := root.(*iur.VBox)
	if !ok {
		t.Fatalf("Build() root = %T, want *iur.VBox", root)
	}
	if len(vbox.Children()) != 1 {
		t.Fatalf("vbox children = %d, want 1", len(vbox.Children()))
	}
	hbox, ok := vbox.Children()[0].(*iur.HBox)
	if !ok {
		t.Fatalf("child = %T, want *iur.HBox", vbox.Children()[0])
	}
	if len(hbox.Children()) != 2 {
		t.Fatalf("hbox children = %d, want 2", len(hbox.Children()))
	}
	labels := []string{"OK", "Cancel"}
	for i, child := range hbox.Children() {
		button, ok := child.(*iur.Button)
		if !ok {
			t.Fatalf("hbox child %d = %T, want *iur.Button", i, child)
		}
		if button.Label != labels[i] {
			t.Errorf("button %d label = %q, want %q", i, button.Label, labels[i])
		}
	}
}

func TestBuildChildrenFiltersUnknownKinds(t *testing.T) {
	tree := NewEntity("vbox", nil,
		NewEntity("text", map[string]any{"content": "a"}),
		NewEntity("hologram", nil), // unknown kind, silently dropped
		NewEntity("text", map[string]any{"content": "b"}),
	)

	root, err := New(nil).Build(tree)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	children := root.Children()
	if len(children) != 2 {
		t.Fatalf("children = %d, want 2 (unknown kind absent, no placeholder)", len(children))
	}
	for i, child := range children {
		if child == nil {
			t.Fatalf("children[%d] is nil; child lists must never contain nil", i)
		}
	}
}

func TestBuildUnknownRoot(t *testing.T) {
	root, err := New(nil).Build(NewEntity("hologram", nil))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if root != nil {
		t.Errorf("Build(unknown root) = %v, want nil", root)
	}
}

func TestBuildNilTree(t *testing.T) {
	root, err := New(nil).Build(nil)
	if err != nil || root != nil {
		t.Errorf("Build(nil) = %v, %v, want nil, nil", root, err)
	}
}

func TestBuildResolvesStyles(t *testing.T) {
	registry := style.NewRegistry()
	if err := registry.Define(style.NamedStyle{
		Name:  "accent",
		Attrs: map[string]any{"foreground": "cyan", "padding": 2},
	}); err != nil {
		t.Fatal(err)
	}

	tree := NewEntity("text", map[string]any{
		"content": "hello",
		"style":   []any{"accent", map[string]any{"foreground": "magenta"}},
	})

	root, err := New(registry).Build(tree)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	st := root.Meta().Style
	if st == nil {
		t.Fatal("Meta().Style = nil, want resolved style")
	}
	if st.Foreground != style.Named("magenta") {
		t.Errorf("Foreground = %v, want inline override magenta", st.Foreground)
	}
	if st.Padding == nil || *st.Padding != 2 {
		t.Errorf("Padding = %v, want inherited 2", st.Padding)
	}
}

func TestBuildUndefinedStyleFailsBuild(t *testing.T) {
	tree := NewEntity("text", map[string]any{"content": "x", "style": "ghost"})

	if _, err := New(nil).Build(tree); err == nil {
		t.Error("Build() with undefined style reference expected error")
	}
}

func TestBuildButtonHandler(t *testing.T) {
	tree := NewEntity("button", map[string]any{
		"label":   "Save",
		"onClick": []any{"save", map[string]any{"formId": "login"}},
	})

	root, err := New(nil).Build(tree)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	button := root.(*iur.Button)
	if button.OnClick == nil {
		t.Fatal("OnClick = nil, want normalized handler")
	}
	if button.OnClick.Kind != signal.HandlerWithPayload || button.OnClick.Action != "save" {
		t.Errorf("OnClick = %+v", button.OnClick)
	}
}

func TestBuildMalformedHandlerFails(t *testing.T) {
	tree := NewEntity("button", map[string]any{
		"label":   "Save",
		"onClick": []any{"save"},
	})

	if _, err := New(nil).Build(tree); err == nil {
		t.Error("Build() with malformed handler expected error")
	}
}

func TestBuildVisibility(t *testing.T) {
	shown, err := New(nil).Build(NewEntity("text", map[string]any{"content": "x"}))
	if err != nil {
		t.Fatal(err)
	}
	if !shown.Meta().Visible {
		t.Error("Visible should default to true")
	}

	hidden, err := New(nil).Build(NewEntity("text", map[string]any{"content": "x", "visible": false}))
	if err != nil {
		t.Fatal(err)
	}
	if hidden.Meta().Visible {
		t.Error("visible: false should build an invisible node")
	}
}

func TestBuildTextInputDefaults(t *testing.T) {
	root, err := New(nil).Build(NewEntity("text_input", map[string]any{"name": "email"}))
	if err != nil {
		t.Fatal(err)
	}
	input := root.(*iur.TextInput)
	if input.InputType != iur.InputText {
		t.Errorf("InputType = %q, want default text", input.InputType)
	}
}

func TestBuildTable(t *testing.T) {
	tree := NewEntity("table", map[string]any{
		"rows": []any{
			map[string]any{"name": "alpha", "count": 3},
			map[string]any{"name": "beta", "count": 7},
		},
	},
		NewEntity("column", map[string]any{"key": "name", "header": "Name", "sortable": true}),
		NewEntity("column", map[string]any{"key": "count", "header": "Count", "align": "right"}),
	)

	root, err := New(nil).Build(tree)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	table := root.(*iur.Table)
	if len(table.Columns) != 2 {
		t.Fatalf("columns = %d, want 2", len(table.Columns))
	}
	if len(table.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(table.Rows))
	}
	if got := table.Cell(table.Rows[0], table.Columns[0]); got != "alpha" {
		t.Errorf("Cell(0,0) = %q, want alpha", got)
	}
	if len(table.Children()) != 2 {
		t.Errorf("table children = %d, want the 2 columns", len(table.Children()))
	}
}

func TestBuildCharts(t *testing.T) {
	tree := NewEntity("vbox", nil,
		NewEntity("bar_chart", map[string]any{
			"title": "Load",
			"data":  []any{[]any{"mon", 3}, []any{"tue", 5.5}},
		}),
		NewEntity("sparkline", map[string]any{"values": []any{1, 2, 3.5}}),
		NewEntity("gauge", map[string]any{"label": "CPU", "value": 0.42}),
	)

	root, err := New(nil).Build(tree)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	bar := root.Children()[0].(*iur.BarChart)
	if len(bar.Points) != 2 || bar.Points[1].Value != 5.5 {
		t.Errorf("bar chart points = %v", bar.Points)
	}
	spark := root.Children()[1].(*iur.Sparkline)
	if len(spark.Values) != 3 {
		t.Errorf("sparkline values = %v", spark.Values)
	}
	gauge := root.Children()[2].(*iur.Gauge)
	if gauge.Value != 0.42 || gauge.Label != "CPU" {
		t.Errorf("gauge = %+v", gauge)
	}
}

func TestBuildChartBadData(t *testing.T) {
	tree := NewEntity("bar_chart", map[string]any{"data": []any{[]any{"only-label"}}})
	if _, err := New(nil).Build(tree); err == nil {
		t.Error("Build() with malformed chart data expected error")
	}
}
