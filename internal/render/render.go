// Package render draws a planner table for a terminal.
//
// Two layouts are available. The classic layout uses fixed-width,
// right-aligned columns under a "CATEGORIES" title. The grid layout draws a
// bordered table with lipgloss/table. Both truncate cells that do not fit.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/nibzard/planner-go/internal/planner"
)

// Layout names.
const (
	LayoutClassic = "classic"
	LayoutGrid    = "grid"
)

const (
	gutterWidth = 12
	title       = "CATEGORIES"
	gutterLabel = "item #"
	ellipsis    = "…"
)

// Options controls how a table is drawn.
type Options struct {
	Layout         string
	ColumnWidth    int
	Color          bool
	BaseColor      string
	HighlightColor string
}

// DefaultOptions returns the classic blue and red layout with 46-column cells.
func DefaultOptions() Options {
	return Options{
		Layout:         LayoutClassic,
		ColumnWidth:    46,
		Color:          true,
		BaseColor:      "12",
		HighlightColor: "9",
	}
}

// Renderer turns planner tables into strings.
type Renderer struct {
	opts      Options
	base      lipgloss.Style
	highlight lipgloss.Style
	header    lipgloss.Style
}

// New returns a Renderer for opts. Colors are emitted as ANSI sequences only
// when opts.Color is set, independent of the terminal the result ends up on.
func New(opts Options) *Renderer {
	if opts.ColumnWidth < 1 {
		opts.ColumnWidth = DefaultOptions().ColumnWidth
	}
	if opts.Layout == "" {
		opts.Layout = LayoutClassic
	}

	profile := termenv.Ascii
	if opts.Color {
		profile = termenv.ANSI256
	}
	lr := lipgloss.NewRenderer(io.Discard)
	lr.SetColorProfile(profile)

	r := &Renderer{opts: opts}
	r.base = lr.NewStyle()
	r.highlight = lr.NewStyle()
	r.header = lr.NewStyle().Bold(opts.Color)
	if opts.Color {
		r.base = r.base.Foreground(lipgloss.Color(opts.BaseColor))
		r.highlight = r.highlight.Foreground(lipgloss.Color(opts.HighlightColor))
		r.header = r.header.Foreground(lipgloss.Color(opts.BaseColor))
	}
	return r
}

// Options returns the options the renderer was built with.
func (r *Renderer) Options() Options {
	return r.opts
}

// Render draws t in the configured layout. The result ends with a newline.
func (r *Renderer) Render(t planner.Table) string {
	switch r.opts.Layout {
	case LayoutGrid:
		return r.grid(t)
	default:
		return r.classic(t)
	}
}

func (r *Renderer) paint(s lipgloss.Style, text string) string {
	if !r.opts.Color {
		return text
	}
	return s.Render(text)
}

// classic draws fixed-width columns:
//
//	            CATEGORIES
//	            ----------------------
//	      item #|  personal|    family|
//	            ----------------------
//	           1|  Buy milk|       N/A|
func (r *Renderer) classic(t planner.Table) string {
	w := r.opts.ColumnWidth
	var b strings.Builder

	pad := strings.Repeat(" ", gutterWidth)
	rule := pad + strings.Repeat("-", (w+1)*len(t.Columns))

	b.WriteString(r.paint(r.header, pad+title))
	b.WriteByte('\n')
	b.WriteString(r.paint(r.base, rule))
	b.WriteByte('\n')

	line := fmt.Sprintf("%*s|", gutterWidth, gutterLabel)
	for _, name := range t.Columns {
		line += fit(name, w) + "|"
	}
	b.WriteString(r.paint(r.header, line))
	b.WriteByte('\n')
	b.WriteString(r.paint(r.base, rule))
	b.WriteByte('\n')

	for i, row := range t.Rows {
		b.WriteString(r.paint(r.base, fmt.Sprintf("%*d|", gutterWidth, i+1)))
		for _, cell := range row {
			text := fit(cell.Text, w)
			if cell.Highlighted {
				b.WriteString(r.paint(r.highlight, text))
			} else {
				b.WriteString(r.paint(r.base, text))
			}
			b.WriteString(r.paint(r.base, "|"))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// grid draws a bordered table sized to its content, each column capped at the
// configured width.
func (r *Renderer) grid(t planner.Table) string {
	widths := t.Widths(1, r.opts.ColumnWidth)

	headers := make([]string, 0, len(t.Columns)+1)
	headers = append(headers, "#")
	for j, name := range t.Columns {
		headers = append(headers, Truncate(name, widths[j]))
	}

	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([]string, 0, len(row)+1)
		cells = append(cells, fmt.Sprintf("%d", i+1))
		for j, cell := range row {
			cells = append(cells, Truncate(cell.Text, widths[j]))
		}
		rows[i] = cells
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.base).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return r.header.Padding(0, 1)
			case col == 0:
				return r.base.Padding(0, 1).Align(lipgloss.Right)
			case row < len(t.Rows) && col-1 < len(t.Rows[row]) && t.Rows[row][col-1].Highlighted:
				return r.highlight.Padding(0, 1)
			default:
				return r.base.Padding(0, 1)
			}
		})

	return tbl.Render() + "\n"
}

// Truncate shortens s to at most width display cells, marking the cut with
// an ellipsis.
func Truncate(s string, width int) string {
	if width < 1 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, ellipsis)
}

// fit truncates s to width and right-aligns it.
func fit(s string, width int) string {
	return runewidth.FillLeft(Truncate(s, width), width)
}
