package align

import (
	"regexp"
	"strings"
)

// numericRe recognizes the numeral grammar: integers and decimals,
// optionally signed, at most one decimal point. Exponents and hex are
// deliberately outside the grammar; such tokens classify as Other and
// keep their column left-aligned.
var numericRe = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// Classify assigns a ValueKind to one raw token. Rules are checked in
// order: the NULL keyword, the numeral grammar, a single-quoted
// string, then everything else. Only Numeric affects alignment; Null
// and Other pad like strings.
func Classify(raw string) ValueKind {
	tok := strings.TrimSpace(raw)
	switch {
	case strings.EqualFold(tok, "NULL"):
		return KindNull
	case numericRe.MatchString(tok):
		return KindNumeric
	case len(tok) >= 2 && tok[0] == '\'' && tok[len(tok)-1] == '\'':
		return KindString
	default:
		return KindOther
	}
}
