// Package textnorm folds text for accent- and case-insensitive matching.
// Source text and query text go through the same fold so that "Dřevo",
// "drevo", and "DŘEVO" all compare equal.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, removes combining marks, and recomposes.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize returns s with diacritics removed and letters lowercased.
// Total over any input: if the transform fails on malformed UTF-8 the
// input is folded as-is, so Normalize never reports an error.
func Normalize(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}
