package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Alignment specifies how text should be aligned within a column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Column defines a table column. Width 0 sizes the column to its widest
// cell; a positive width is fixed and truncates longer values.
type Column struct {
	Header string
	Width  int
	Align  Alignment
}

// Table renders tabular data with consistent formatting. Cells may carry
// lipgloss styling; widths are measured on the printed text, not the raw
// bytes.
type Table struct {
	columns []Column
	rows    [][]string
	indent  int
}

// NewTable creates a new table with default settings.
func NewTable() *Table {
	return &Table{indent: 2}
}

// Indent sets the left indentation for the table.
func (t *Table) Indent(spaces int) *Table {
	t.indent = spaces
	return t
}

// AddColumn adds a column to the table.
func (t *Table) AddColumn(header string, width int, align Alignment) *Table {
	t.columns = append(t.columns, Column{
		Header: header,
		Width:  width,
		Align:  align,
	})
	return t
}

// AddRow adds a row of values to the table.
func (t *Table) AddRow(values ...string) *Table {
	t.rows = append(t.rows, values)
	return t
}

// widthFor resolves a column's render width, auto-sizing when unset.
func (t *Table) widthFor(index int) int {
	col := t.columns[index]
	if col.Width > 0 {
		return col.Width
	}

	width := lipgloss.Width(col.Header)
	for _, row := range t.rows {
		if index >= len(row) {
			continue
		}
		if w := lipgloss.Width(row[index]); w > width {
			width = w
		}
	}
	return width
}

// formatCell fits value into width cells. Plain values longer than the
// column are cut with an ellipsis. Styled values are left whole, since
// cutting bytes would tear the escape sequences.
func formatCell(value string, width int, align Alignment) string {
	printed := lipgloss.Width(value)
	if printed > width && !strings.Contains(value, "\x1b") {
		runes := []rune(value)
		if width <= 3 {
			value = string(runes[:width])
		} else {
			value = string(runes[:width-3]) + "..."
		}
		printed = lipgloss.Width(value)
	}

	pad := width - printed
	if pad <= 0 {
		return value
	}
	if align == AlignRight {
		return strings.Repeat(" ", pad) + value
	}
	return value + strings.Repeat(" ", pad)
}

// writeLine renders one table line into b, styling each cell when style
// is non-nil. Rows shorter than the column set render empty cells.
func (t *Table) writeLine(b *strings.Builder, widths []int, cells []string, style func(string) string) {
	b.WriteString(strings.Repeat(" ", t.indent))
	for i, col := range t.columns {
		if i > 0 {
			b.WriteString("  ")
		}
		value := ""
		if i < len(cells) {
			value = cells[i]
		}
		cell := formatCell(value, widths[i], col.Align)
		if style != nil {
			cell = style(cell)
		}
		b.WriteString(cell)
	}
	b.WriteString("\n")
}

// Render returns the formatted table as a string.
func (t *Table) Render() string {
	if len(t.columns) == 0 {
		return ""
	}

	widths := make([]int, len(t.columns))
	headers := make([]string, len(t.columns))
	for i, col := range t.columns {
		widths[i] = t.widthFor(i)
		headers[i] = col.Header
	}

	var b strings.Builder
	t.writeLine(&b, widths, headers, Header)
	for _, row := range t.rows {
		t.writeLine(&b, widths, row, nil)
	}
	return b.String()
}

// String implements the Stringer interface.
func (t *Table) String() string {
	return t.Render()
}
