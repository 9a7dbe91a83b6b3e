package align

// readTuple consumes one balanced (...) group; the scanner sits on
// the opening parenthesis. Returns the interior text, exclusive of
// the outer parentheses.
func (s *scanner) readTuple() (string, *Error) {
	open := s.pos
	depth := 0

	for s.ch != 0 {
		switch {
		case isQuote(s.ch):
			qstart := s.pos
			if !s.readQuoted() {
				e := tokenizeErr("unterminated quoted literal")
				e.Pos = Position{Offset: qstart}
				return "", e
			}
		case s.ch == '-' && s.peekChar() == '-':
			s.skipLineComment()
		case s.ch == '/' && s.peekChar() == '*':
			s.skipBlockComment()
		case s.ch == '(':
			depth++
			s.readChar()
		case s.ch == ')':
			depth--
			s.readChar()
			if depth == 0 {
				return s.input[open+1 : s.pos-1], nil
			}
		default:
			s.readChar()
		}
	}

	e := structureErr("unbalanced parentheses in values clause")
	e.Pos = Position{Offset: open}
	return "", e
}

// parseValues parses one statement's values region (the text after
// VALUES, before the terminating semicolon) into rows of classified
// values. Error positions are byte offsets relative to the region;
// callers translate them into source positions.
func parseValues(region string) ([]Tuple, *Error) {
	s := newScanner(region)
	var rows []Tuple

	for {
		s.skipWhitespaceAndComments()
		if s.ch == 0 || s.ch == ';' {
			break
		}
		if s.ch != '(' {
			e := structureErr("expected ( to open a tuple, found %q", string(s.ch))
			e.Pos = Position{Offset: s.pos}
			return nil, e
		}

		open := s.pos
		interior, perr := s.readTuple()
		if perr != nil {
			return nil, perr
		}

		raws, err := SplitValues(interior)
		if err != nil {
			e := err.(*Error)
			e.Pos = Position{Offset: open + 1 + e.Pos.Offset}
			return nil, e
		}

		row := Tuple{Values: make([]Value, 0, len(raws))}
		for _, raw := range raws {
			row.Values = append(row.Values, Value{Raw: raw, Kind: Classify(raw)})
		}
		rows = append(rows, row)

		s.skipWhitespaceAndComments()
		if s.ch == ',' {
			s.readChar()
		}
	}

	if len(rows) == 0 {
		return nil, structureErr("no tuples found after VALUES")
	}

	arity := rows[0].Arity()
	for i, row := range rows[1:] {
		if row.Arity() != arity {
			return nil, structureErr("tuple %d has %d values, expected %d", i+2, row.Arity(), arity)
		}
	}

	return rows, nil
}

// ParseValues parses a values region into classified rows. It is the
// standalone entry point for the tuple parser; Format drives the same
// code path per located statement.
func ParseValues(region string) ([]Tuple, error) {
	rows, perr := parseValues(region)
	if perr != nil {
		perr.Pos = positionAt(region, perr.Pos.Offset)
		return nil, perr
	}
	return rows, nil
}
