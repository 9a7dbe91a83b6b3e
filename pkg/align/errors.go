package align

import "fmt"

// ErrorKind distinguishes the two failure classes of the values
// pipeline.
type ErrorKind int

const (
	// ErrTokenize is an unterminated quoted literal inside a tuple.
	ErrTokenize ErrorKind = iota
	// ErrStructure is unbalanced parentheses, zero tuples, or an
	// arity mismatch across a statement's tuples.
	ErrStructure
)

// String returns a human-readable representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrTokenize:
		return "tokenize"
	case ErrStructure:
		return "structure"
	default:
		return fmt.Sprintf("ERROR(%d)", k)
	}
}

// Error is a diagnostic scoped to a single statement. A statement
// that produces an Error is emitted verbatim; processing of the rest
// of the input continues.
type Error struct {
	Kind ErrorKind
	Pos  Position
	Msg  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s error: %s", e.Pos.Line, e.Pos.Column, e.Kind, e.Msg)
}

func tokenizeErr(format string, args ...any) *Error {
	return &Error{Kind: ErrTokenize, Msg: fmt.Sprintf(format, args...)}
}

func structureErr(format string, args ...any) *Error {
	return &Error{Kind: ErrStructure, Msg: fmt.Sprintf(format, args...)}
}

// positionAt computes the 1-based line and column of a byte offset.
func positionAt(src string, offset int) Position {
	if offset > len(src) {
		offset = len(src)
	}
	pos := Position{Line: 1, Column: 1, Offset: offset}
	for i := 0; i < offset; i++ {
		if src[i] == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return pos
}
