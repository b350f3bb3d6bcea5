package tui

import (
	"fmt"
	"io"
	"strings"
)

// Table is a small fixed-column table used for pick-lists: block devices,
// filesystems, and the like.  Each row carries an opaque object that Menu
// hands back when the operator picks that row.
type Table struct {
	headers []string
	widths  []int
	rows    [][]string
	objects []interface{}
}

func NewTable(headers ...string) Table {
	t := Table{
		headers: headers,
		widths:  make([]int, len(headers)),
	}
	for i, h := range headers {
		t.widths[i] = len(h)
	}
	return t
}

func (t *Table) Row(object interface{}, cells ...string) {
	if len(cells) > len(t.headers) {
		cells = cells[:len(t.headers)]
	}
	row := make([]string, len(t.headers))
	for i, cell := range cells {
		row[i] = cell
		if t.widths[i] < len(cell) {
			t.widths[i] = len(cell)
		}
	}
	t.rows = append(t.rows, row)
	t.objects = append(t.objects, object)
}

func (t *Table) Rows() int {
	return len(t.rows)
}

func (t *Table) Object(i int) interface{} {
	if i < 0 || i >= len(t.objects) {
		return nil
	}
	return t.objects[i]
}

func (t *Table) OutputWithIndices(out io.Writer) {
	index := len(fmt.Sprintf("%d", len(t.rows)))

	fmt.Fprintf(out, "  %s  ", strings.Repeat(" ", index))
	for i, h := range t.headers {
		fmt.Fprintf(out, "%-*s  ", t.widths[i], h)
	}
	fmt.Fprintf(out, "\n")

	fmt.Fprintf(out, "  %s  ", strings.Repeat(" ", index))
	for i := range t.headers {
		fmt.Fprintf(out, "%s  ", strings.Repeat("=", t.widths[i]))
	}
	fmt.Fprintf(out, "\n")

	for n, row := range t.rows {
		fmt.Fprintf(out, "  %*d) ", index, n+1)
		for i, cell := range row {
			fmt.Fprintf(out, "%-*s  ", t.widths[i], cell)
		}
		fmt.Fprintf(out, "\n")
	}
}
