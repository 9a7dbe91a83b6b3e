package align

import "strings"

// scanner is a byte-level walker over a fragment of SQL text. The
// tuple tokenizer, the tuple parser, and the statement locator all
// share it because all three need the same quote- and comment-opacity
// rules.
type scanner struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
}

// newScanner creates a scanner positioned on the first character.
func newScanner(input string) *scanner {
	s := &scanner{input: input}
	s.readChar()
	return s
}

// readChar advances to the next character.
func (s *scanner) readChar() {
	if s.readPos >= len(s.input) {
		s.ch = 0 // ASCII NUL = EOF
	} else {
		s.ch = s.input[s.readPos]
	}
	s.pos = s.readPos
	s.readPos++
}

// peekChar returns the next character without advancing.
func (s *scanner) peekChar() byte {
	if s.readPos >= len(s.input) {
		return 0
	}
	return s.input[s.readPos]
}

// skipWhitespaceAndComments skips whitespace and comments.
func (s *scanner) skipWhitespaceAndComments() {
	for {
		for s.ch == ' ' || s.ch == '\t' || s.ch == '\n' || s.ch == '\r' {
			s.readChar()
		}

		if s.ch == '-' && s.peekChar() == '-' {
			s.skipLineComment()
			continue
		}

		if s.ch == '/' && s.peekChar() == '*' {
			s.skipBlockComment()
			continue
		}

		break
	}
}

// skipLineComment skips a line comment.
func (s *scanner) skipLineComment() {
	for s.ch != '\n' && s.ch != 0 {
		s.readChar()
	}
}

// skipBlockComment skips a block comment.
func (s *scanner) skipBlockComment() {
	s.readChar() // skip '/'
	s.readChar() // skip '*'

	for {
		if s.ch == 0 {
			return // Unterminated block comment
		}
		if s.ch == '*' && s.peekChar() == '/' {
			s.readChar() // skip '*'
			s.readChar() // skip '/'
			return
		}
		s.readChar()
	}
}

// readQuoted consumes a full quoted run, delimiters included. The
// scanner sits on the opening delimiter. A doubled delimiter inside
// the run is an escape and does not terminate it. Returns false when
// the run reaches EOF without a closing delimiter.
func (s *scanner) readQuoted() bool {
	delim := s.ch
	s.readChar() // skip opening delimiter

	for {
		if s.ch == 0 {
			return false
		}
		if s.ch == delim {
			if s.peekChar() == delim {
				// Doubled delimiter escape
				s.readChar()
				s.readChar()
				continue
			}
			s.readChar() // skip closing delimiter
			return true
		}
		s.readChar()
	}
}

// readWord reads an unquoted identifier or keyword.
func (s *scanner) readWord() string {
	start := s.pos
	for isWordChar(s.ch) {
		s.readChar()
	}
	return s.input[start:s.pos]
}

// isQuote returns true for the quote delimiters treated as opaque:
// string literals, quoted identifiers, and backtick identifiers.
func isQuote(ch byte) bool {
	return ch == '\'' || ch == '"' || ch == '`'
}

// isWordStart returns true if ch can begin an identifier or keyword.
func isWordStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// isWordChar returns true if ch can continue an identifier or keyword.
func isWordChar(ch byte) bool {
	return isWordStart(ch) || (ch >= '0' && ch <= '9')
}

// SplitValues splits the interior of one parenthesized tuple into its
// raw value tokens, splitting on top-level commas. Quoted runs are
// opaque to the split and stay part of the token; whitespace around a
// token does not. Parentheses inside a value (function calls and the
// like) are ordinary token text, not nesting. Fails when a quoted
// literal is left unterminated at the end of the interior.
func SplitValues(interior string) ([]string, error) {
	s := newScanner(interior)

	var (
		tokens []string
		buf    strings.Builder
		depth  int
	)
	flush := func(keepEmpty bool) {
		tok := strings.TrimSpace(buf.String())
		if keepEmpty || tok != "" {
			tokens = append(tokens, tok)
		}
		buf.Reset()
	}

	for s.ch != 0 {
		switch {
		case isQuote(s.ch):
			start := s.pos
			if !s.readQuoted() {
				e := tokenizeErr("unterminated %c-quoted literal", interior[start])
				e.Pos = positionAt(interior, start)
				return nil, e
			}
			buf.WriteString(interior[start:s.pos])
		case s.ch == '-' && s.peekChar() == '-':
			s.skipLineComment()
		case s.ch == '/' && s.peekChar() == '*':
			s.skipBlockComment()
		case s.ch == '(':
			depth++
			buf.WriteByte(s.ch)
			s.readChar()
		case s.ch == ')':
			depth--
			buf.WriteByte(s.ch)
			s.readChar()
		case s.ch == ',' && depth <= 0:
			flush(true)
			s.readChar()
		default:
			buf.WriteByte(s.ch)
			s.readChar()
		}
	}
	flush(false)

	return tokens, nil
}
