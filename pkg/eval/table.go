// Package eval builds truth tables over a term, renders them, and
// derives the density/operator-number statistics spec.md §4.3.4
// describes, plus a best-effort Quine–McCluskey minimiser.
package eval

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/gitrdm/logicsimplify/pkg/term"
)

// Row is one assignment of the table's variables and the formula's
// result under that assignment.
type Row struct {
	Values []bool
	Result bool
}

// Table is the full truth table of a closed formula: every one of the
// 2^n assignments of its free names (lexicographically ordered, per
// spec.md §4.3.4), most-significant variable varying slowest.
type Table struct {
	Term      *term.Term
	Variables []string
	Rows      []Row
}

// BuildTable enumerates every assignment of t's free names and evaluates
// t under each. It fails if t contains a NamedPredicate with no
// registered meaning, since Evaluate cannot proceed without one.
func BuildTable(t *term.Term) (*Table, error) {
	names := term.FreeNames(t)
	vars := make([]string, len(names))
	for i, n := range names {
		vars[i] = n.Name()
	}

	width := len(vars)
	rowCount := 1 << uint(width)
	tbl := &Table{Term: t, Variables: vars, Rows: make([]Row, 0, rowCount)}

	for i := 0; i < rowCount; i++ {
		interp := term.NewInterpretation()
		values := make([]bool, width)
		for b := 0; b < width; b++ {
			v := (i>>uint(width-1-b))&1 == 1
			values[b] = v
			interp.Set(vars[b], v)
		}
		result, err := term.Evaluate(t, interp)
		if err != nil {
			return nil, fmt.Errorf("eval: building truth table: %w", err)
		}
		tbl.Rows = append(tbl.Rows, Row{Values: values, Result: result})
	}
	return tbl, nil
}

// TruthDensity is the fraction of rows whose result is true.
func (t *Table) TruthDensity() float64 {
	if len(t.Rows) == 0 {
		return 0
	}
	count := 0
	for _, row := range t.Rows {
		if row.Result {
			count++
		}
	}
	return float64(count) / float64(len(t.Rows))
}

// OperatorNumber is the integer whose bit i equals the table's i-th row
// result, in table row order.
func (t *Table) OperatorNumber() uint64 {
	var n uint64
	for i, row := range t.Rows {
		if row.Result {
			n |= 1 << uint(i)
		}
	}
	return n
}

func boolCell(b bool) string {
	if b {
		return "T"
	}
	return "F"
}

// Render writes the table as a bordered grid via tablewriter, one
// column per variable plus a trailing Result column.
func (t *Table) Render(w io.Writer) {
	tw := tablewriter.NewWriter(w)
	header := append(append([]string{}, t.Variables...), "Result")
	tw.SetHeader(header)
	for _, row := range t.Rows {
		cells := make([]string, 0, len(row.Values)+1)
		for _, v := range row.Values {
			cells = append(cells, boolCell(v))
		}
		cells = append(cells, boolCell(row.Result))
		tw.Append(cells)
	}
	tw.Render()
}
