package iur

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"go.uber.org/zap"

	"github.com/pcharbon70/unified-ui-sub001/internal/logging"
	"github.com/pcharbon70/unified-ui-sub001/internal/style"
)

// Column declares one table column. Formatter, when non-empty, is an
// expression evaluated per cell with `value` (the cell) and `row` (the full
// record) in scope, e.g. `upper(string(value))` or
// `value > 100 ? "high" : "low"`.
type Column struct {
	base
	Key       string
	Header    string
	Sortable  bool
	Formatter string
	Width     int
	Align     style.Alignment

	program *vm.Program
}

func (*Column) Kind() Kind { return KindColumn }

// CompileFormatter compiles the column's formatter expression. Called once
// at build time; a column whose formatter fails to compile falls back to
// plain fmt.Sprint formatting rather than failing the build.
func (c *Column) CompileFormatter() {
	if c.Formatter == "" {
		return
	}
	program, err := expr.Compile(c.Formatter)
	if err != nil {
		logging.Warn("Column formatter failed to compile, falling back to plain formatting",
			zap.String("column", c.Key),
			zap.String("formatter", c.Formatter),
			zap.Error(err),
		)
		return
	}
	c.program = program
}

// Format renders one cell value. Safe for concurrent use once the column is
// built; the compiled program is read-only here.
func (c *Column) Format(value any, row map[string]any) string {
	if c.program == nil {
		return plainFormat(value)
	}
	out, err := expr.Run(c.program, map[string]any{
		"value": value,
		"row":   row,
	})
	if err != nil {
		return plainFormat(value)
	}
	return plainFormat(out)
}

func plainFormat(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Table owns ordered Column children and opaque map-like row records.
type Table struct {
	base
	Columns []*Column
	Rows    []map[string]any
}

func (*Table) Kind() Kind { return KindTable }

// Children returns the columns, which are the table's child nodes.
func (t *Table) Children() []Node {
	out := make([]Node, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = c
	}
	return out
}

// Cell returns the formatted cell text for a row and column.
func (t *Table) Cell(row map[string]any, col *Column) string {
	return col.Format(row[col.Key], row)
}
