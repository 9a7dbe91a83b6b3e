package align

import "fmt"

// ValueKind classifies a single scalar literal inside a tuple.
type ValueKind int

const (
	// KindNumeric is an unquoted integer or decimal, optionally signed.
	KindNumeric ValueKind = iota
	// KindString is a single-quoted string literal.
	KindString
	// KindNull is the NULL keyword (case-insensitive).
	KindNull
	// KindOther covers everything else: function calls, bare
	// identifiers, expressions.
	KindOther
)

// kindNames maps value kinds to their string representations.
var kindNames = map[ValueKind]string{
	KindNumeric: "NUMERIC",
	KindString:  "STRING",
	KindNull:    "NULL",
	KindOther:   "OTHER",
}

// String returns a human-readable representation of the kind.
func (k ValueKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KIND(%d)", k)
}

// Position represents a location in the source text.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset
}

// Value is one scalar literal as it appeared in the source, quotes
// included.
type Value struct {
	Raw  string
	Kind ValueKind
}

// Display returns the text to render for the value. It currently
// equals Raw; kept as a method so normalization can hook in later.
func (v Value) Display() string {
	return v.Raw
}

// Tuple is one parenthesized value list, corresponding to one row.
type Tuple struct {
	Values []Value
}

// Arity returns the number of values in the tuple.
func (t Tuple) Arity() int {
	return len(t.Values)
}

// Statement is one INSERT statement recognized in the source text.
// Header holds the verbatim text from INSERT up to (not including)
// the VALUES keyword, right-trimmed. Terminated records whether the
// original statement carried a trailing semicolon.
type Statement struct {
	Header     string
	Rows       []Tuple
	Terminated bool
	Pos        Position
}

// Alignment is the render direction of a column.
type Alignment int

const (
	// AlignLeft pads with trailing spaces.
	AlignLeft Alignment = iota
	// AlignRight pads with leading spaces.
	AlignRight
)

// String returns a human-readable representation of the alignment.
func (a Alignment) String() string {
	if a == AlignRight {
		return "right"
	}
	return "left"
}

// Column describes the render width and alignment of one column
// index across all rows of a statement.
type Column struct {
	Index int
	Width int
	Align Alignment
}
