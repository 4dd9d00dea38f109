// Package ranking provides scoring and ordering for search-box suggestions.
package ranking

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, removes combining marks, and recomposes.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// germanFolds handles the characters that do not fold through decomposition
// alone. Umlauts are listed too so folding does not depend on the transform
// having seen a decomposable form.
var germanFolds = strings.NewReplacer(
	"ä", "a",
	"ö", "o",
	"ü", "u",
	"ß", "ss",
)

// Fold normalizes text for comparison: lowercase, strip diacritics, and map
// German umlauts and eszett to their base forms. Fold is idempotent, so
// already-folded text passes through unchanged.
func Fold(s string) string {
	s = strings.ToLower(s)
	s = germanFolds.Replace(s)
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		// Malformed input degrades to the lowercased form rather than failing.
		return s
	}
	return folded
}

// EscapePattern escapes regex metacharacters so folded candidate text can be
// embedded safely in a generated matching pattern.
func EscapePattern(s string) string {
	return regexp.QuoteMeta(s)
}
