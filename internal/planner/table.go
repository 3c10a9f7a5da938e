package planner

import "github.com/mattn/go-runewidth"

// Cell is one table cell.
type Cell struct {
	Text        string
	Highlighted bool
	// Empty marks a placeholder cell with no task behind it.
	Empty bool
}

// Table is the projection produced by Manager.Render. Rows[i][j] is the task
// at position i of category Columns[j].
type Table struct {
	Columns     []string
	Rows        [][]Cell
	Placeholder string
}

// RowCount returns the number of task rows, the length of the longest
// category.
func (t Table) RowCount() int {
	return len(t.Rows)
}

// Widths returns the display width of each column: the widest of the header
// and every cell, clamped to [min, max]. A max of zero or less means no upper
// bound.
func (t Table) Widths(min, max int) []int {
	widths := make([]int, len(t.Columns))
	for j, name := range t.Columns {
		widths[j] = runewidth.StringWidth(name)
	}
	for _, row := range t.Rows {
		for j, cell := range row {
			if j >= len(widths) {
				break
			}
			if w := runewidth.StringWidth(cell.Text); w > widths[j] {
				widths[j] = w
			}
		}
	}
	for j := range widths {
		if widths[j] < min {
			widths[j] = min
		}
		if max > 0 && widths[j] > max {
			widths[j] = max
		}
	}
	return widths
}
