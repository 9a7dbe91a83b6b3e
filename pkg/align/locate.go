package align

import "strings"

// stmtRegion records the byte extents of one recognized
// INSERT INTO ... VALUES statement within the source text.
type stmtRegion struct {
	start       int  // offset of the INSERT keyword
	headerEnd   int  // offset of the VALUES keyword
	valuesStart int  // offset just past the VALUES keyword
	end         int  // offset just past the statement
	terminated  bool // statement carried a trailing semicolon
}

// locateStatements finds every INSERT INTO ... VALUES region in the
// source. Quoted runs and comments are skipped, so keywords inside
// string literals never match. Statements the scan cannot complete
// (no INTO, no top-level VALUES before the semicolon, e.g.
// INSERT ... SELECT) are left alone for pass-through.
func locateStatements(src string) []stmtRegion {
	s := newScanner(src)
	var regions []stmtRegion

	for s.ch != 0 {
		switch {
		case isQuote(s.ch):
			if !s.readQuoted() {
				// Unterminated run swallows the rest of the file.
				return regions
			}
		case s.ch == '-' && s.peekChar() == '-':
			s.skipLineComment()
		case s.ch == '/' && s.peekChar() == '*':
			s.skipBlockComment()
		case isWordStart(s.ch):
			start := s.pos
			if strings.EqualFold(s.readWord(), "insert") {
				if reg, ok := s.matchInsert(start); ok {
					regions = append(regions, reg)
				}
			}
		default:
			s.readChar()
		}
	}

	return regions
}

// matchInsert is called with the scanner just past an INSERT keyword.
// It confirms INTO, scans the header for the VALUES keyword at paren
// depth zero, then extends the region to the statement-terminating
// semicolon. A missing semicolon ends the region at EOF and the
// statement later renders without a terminator.
func (s *scanner) matchInsert(start int) (stmtRegion, bool) {
	s.skipWhitespaceAndComments()
	if !isWordStart(s.ch) || !strings.EqualFold(s.readWord(), "into") {
		return stmtRegion{}, false
	}

	depth := 0
	headerEnd := -1
header:
	for s.ch != 0 {
		switch {
		case isQuote(s.ch):
			if !s.readQuoted() {
				return stmtRegion{}, false
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
		case s.ch == ';':
			s.readChar()
			return stmtRegion{}, false
		case isWordStart(s.ch):
			wstart := s.pos
			if strings.EqualFold(s.readWord(), "values") && depth == 0 {
				headerEnd = wstart
				break header
			}
		default:
			s.readChar()
		}
	}
	if headerEnd < 0 {
		return stmtRegion{}, false
	}

	reg := stmtRegion{
		start:       start,
		headerEnd:   headerEnd,
		valuesStart: s.pos,
	}

	depth = 0
	for s.ch != 0 {
		switch {
		case isQuote(s.ch):
			if !s.readQuoted() {
				// Leave the unterminated literal to the tuple
				// parser, which reports it as a tokenize error.
				reg.end = len(s.input)
				return reg, true
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
		case s.ch == ';' && depth <= 0:
			s.readChar()
			reg.end = s.pos
			reg.terminated = true
			return reg, true
		default:
			s.readChar()
		}
	}

	reg.end = len(s.input)
	return reg, true
}
