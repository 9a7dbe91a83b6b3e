package align

import "strings"

// Format rewrites every INSERT ... VALUES statement in src with its
// tuples aligned and returns the new text. A statement whose values
// clause fails to parse is spliced back verbatim and reported as one
// Error; every byte outside a recognized statement is copied
// unchanged. The transform is idempotent: formatting its own output
// yields identical text.
func Format(src string) (string, []*Error) {
	regions := locateStatements(src)
	if len(regions) == 0 {
		return src, nil
	}

	var (
		b    strings.Builder
		errs []*Error
		last int
	)
	b.Grow(len(src))

	for _, reg := range regions {
		b.WriteString(src[last:reg.start])

		valuesEnd := reg.end
		if reg.terminated {
			valuesEnd-- // exclude the semicolon
		}

		rows, perr := parseValues(src[reg.valuesStart:valuesEnd])
		if perr != nil {
			perr.Pos = positionAt(src, reg.valuesStart+perr.Pos.Offset)
			errs = append(errs, perr)
			b.WriteString(src[reg.start:reg.end])
		} else {
			stmt := &Statement{
				Header:     strings.TrimRight(src[reg.start:reg.headerEnd], " \t\r\n"),
				Rows:       rows,
				Terminated: reg.terminated,
				Pos:        positionAt(src, reg.start),
			}
			b.WriteString(Render(stmt))
		}

		last = reg.end
	}
	b.WriteString(src[last:])

	return b.String(), errs
}
