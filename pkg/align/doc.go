// Package align rewrites the VALUES clause of SQL INSERT statements so
// that every column of literal values lines up vertically: numeric
// columns right-aligned, everything else left-aligned.
//
// The package is a pure text transform. It never touches the file
// system and never parses SQL beyond locating INSERT ... VALUES ...;
// regions; all other statements pass through byte for byte.
//
// # Basic Usage
//
//	formatted, errs := align.Format(src)
//	for _, e := range errs {
//	    fmt.Printf("%s: statement left unchanged\n", e)
//	}
//
// A statement whose values clause fails to parse is emitted verbatim
// and reported; the rest of the input is still formatted.
package align
