package iur

import "testing"

func TestColumnFormatPlain(t *testing.T) {
	col := &Column{Key: "count", Header: "Count"}

	if got := col.Format(42, nil); got != "42" {
		t.Errorf("Format(42) = %q, want 42", got)
	}
	if got := col.Format("x", nil); got != "x" {
		t.Errorf("Format(x) = %q, want x", got)
	}
	if got := col.Format(nil, nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
}

func TestColumnFormatterExpression(t *testing.T) {
	col := &Column{Key: "count", Formatter: `value > 100 ? "high" : "low"`}
	col.CompileFormatter()

	if got := col.Format(150, nil); got != "high" {
		t.Errorf("Format(150) = %q, want high", got)
	}
	if got := col.Format(7, nil); got != "low" {
		t.Errorf("Format(7) = %q, want low", got)
	}
}

func TestColumnFormatterRowAccess(t *testing.T) {
	col := &Column{Key: "name", Formatter: `row.prefix + string(value)`}
	col.CompileFormatter()

	got := col.Format("beta", map[string]any{"prefix": ">> ", "name": "beta"})
	if got != ">> beta" {
		t.Errorf("Format() = %q, want \">> beta\"", got)
	}
}

func TestColumnFormatterBadExpressionFallsBack(t *testing.T) {
	col := &Column{Key: "count", Formatter: `value +`}
	col.CompileFormatter()

	if got := col.Format(3, nil); got != "3" {
		t.Errorf("Format() = %q, want plain fallback 3", got)
	}
}

func TestColumnFormatterRuntimeErrorFallsBack(t *testing.T) {
	col := &Column{Key: "count", Formatter: `row.missing.deeper`}
	col.CompileFormatter()

	if got := col.Format(9, map[string]any{}); got != "9" {
		t.Errorf("Format() = %q, want plain fallback 9", got)
	}
}

func TestTableCell(t *testing.T) {
	col := &Column{Key: "name"}
	table := &Table{
		Columns: []*Column{col},
		Rows:    []map[string]any{{"name": "alpha"}},
	}

	if got := table.Cell(table.Rows[0], col); got != "alpha" {
		t.Errorf("Cell() = %q, want alpha", got)
	}
}
