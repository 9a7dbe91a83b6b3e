package align

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// rowIndent is the leading whitespace of each rendered tuple line.
const rowIndent = "    "

// Render re-emits one statement with its tuples aligned. The header
// is kept verbatim, VALUES goes on its own line, and every tuple gets
// its own indented line. Rows end with a comma except the last, which
// takes the statement terminator when the original had one.
func Render(stmt *Statement) string {
	cols := Columns(stmt.Rows)

	var b strings.Builder
	b.WriteString(stmt.Header)
	b.WriteString("\nVALUES\n")

	for i, row := range stmt.Rows {
		b.WriteString(rowIndent)
		b.WriteByte('(')
		for j, v := range row.Values {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(pad(v.Display(), cols[j], j == len(row.Values)-1))
		}
		b.WriteByte(')')
		switch {
		case i < len(stmt.Rows)-1:
			b.WriteString(",\n")
		case stmt.Terminated:
			b.WriteByte(';')
		}
	}

	return b.String()
}

// pad fits a value to its column width. Right-aligned columns get
// leading spaces; left-aligned columns get trailing spaces, except
// the column closing the row, which is never padded so no line ends
// in a space run before its parenthesis.
func pad(display string, col Column, last bool) string {
	gap := col.Width - runewidth.StringWidth(display)
	if gap <= 0 {
		return display
	}
	fill := strings.Repeat(" ", gap)
	if col.Align == AlignRight {
		return fill + display
	}
	if last {
		return display
	}
	return display + fill
}
