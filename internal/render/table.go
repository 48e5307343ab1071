package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table accumulates rows and renders them with a header row, a dash
// separator line and left-aligned columns padded to the widest cell.
// Cell widths are display widths, so wide runes line up too.
type Table struct {
	headers []string
	rows    [][]string
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// AddRow appends one row. Missing cells render empty, extra cells are ignored.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Render writes the formatted table to w.
func (t *Table) Render(w io.Writer) error {
	widths := t.columnWidths()

	if err := writeCells(w, t.headers, widths); err != nil {
		return err
	}

	if err := writeSeparator(w, widths); err != nil {
		return err
	}

	for _, row := range t.rows {
		if err := writeCells(w, row, widths); err != nil {
			return err
		}
	}

	return nil
}

// columnWidths computes the display width of the widest cell per column.
func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.headers))
	for i, header := range t.headers {
		widths[i] = runewidth.StringWidth(header)
	}

	for _, row := range t.rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}

			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	return widths
}

// writeCells writes one line with single-space cell padding and | joints.
func writeCells(w io.Writer, cells []string, widths []int) error {
	parts := make([]string, len(widths))

	for i, width := range widths {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}

		padding := strings.Repeat(" ", width-runewidth.StringWidth(cell))
		parts[i] = " " + cell + padding + " "
	}

	_, err := fmt.Fprintln(w, strings.Join(parts, "|"))

	return err
}

// writeSeparator writes the dash line between the header and the rows.
func writeSeparator(w io.Writer, widths []int) error {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = strings.Repeat("-", width+2)
	}

	_, err := fmt.Fprintln(w, strings.Join(parts, "+"))

	return err
}
