package ranking

import (
	"regexp"
	"strings"
)

// The three match predicates are ordered by strictness: every exact match is
// also a boundary match, and every boundary match is also a containment match.
// Callers check them in that order and take the first hit.

// IsExactMatch reports whether candidate and query are equal after folding.
func IsExactMatch(candidate, query string) bool {
	return Fold(candidate) == Fold(query)
}

// IsWordBoundaryMatch reports whether the folded query occurs in the folded
// candidate starting at a word boundary ("konz" matches "open-air konzert"
// but not "rekonzeption").
func IsWordBoundaryMatch(candidate, query string) bool {
	folded := Fold(query)
	if folded == "" {
		return false
	}
	pattern, err := regexp.Compile(`\b` + EscapePattern(folded))
	if err != nil {
		return false
	}
	return pattern.MatchString(Fold(candidate))
}

// ContainsMatch reports whether the folded candidate contains the folded
// query anywhere, with no boundary requirement.
func ContainsMatch(candidate, query string) bool {
	folded := Fold(query)
	if folded == "" {
		return false
	}
	return strings.Contains(Fold(candidate), folded)
}
