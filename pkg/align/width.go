package align

import "github.com/mattn/go-runewidth"

// Columns reduces a statement's rows to one descriptor per column
// index. Width is the maximum display width at that index across all
// rows; alignment is right only when every value in the column is
// numeric. Widths are terminal cell counts, not byte counts, so
// multi-byte literals still line up.
func Columns(rows []Tuple) []Column {
	if len(rows) == 0 {
		return nil
	}

	cols := make([]Column, rows[0].Arity())
	for i := range cols {
		cols[i] = Column{Index: i, Align: AlignRight}
	}

	for _, row := range rows {
		for i, v := range row.Values {
			if i >= len(cols) {
				break
			}
			if w := runewidth.StringWidth(v.Display()); w > cols[i].Width {
				cols[i].Width = w
			}
			if v.Kind != KindNumeric {
				cols[i].Align = AlignLeft
			}
		}
	}

	return cols
}
