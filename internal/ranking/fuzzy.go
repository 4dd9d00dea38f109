package ranking

import (
	"strings"
	"unicode"
)

// IsFuzzyBoundaryMatch reports whether the folded query matches a word prefix
// of the folded candidate within maxDistance single-character edits. Folding
// rewrites umlauts, so a near-miss like "muni" still lines up with "München"
// ("munc" after folding is one substitution away).
func IsFuzzyBoundaryMatch(candidate, query string, maxDistance int) bool {
	if maxDistance <= 0 {
		return false
	}
	folded := []rune(Fold(query))
	if len(folded) == 0 {
		return false
	}
	for _, word := range foldedWords(candidate) {
		runes := []rune(word)
		for n := len(folded) - maxDistance; n <= len(folded)+maxDistance; n++ {
			if n < 1 || n > len(runes) {
				continue
			}
			if editDistance(folded, runes[:n]) <= maxDistance {
				return true
			}
		}
	}
	return false
}

// foldedWords splits the folded candidate on anything that is not a letter or
// digit, mirroring the word boundaries the strict matcher sees.
func foldedWords(s string) []string {
	return strings.FieldsFunc(Fold(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// editDistance is the Levenshtein distance between two rune slices. Only two
// rolling rows of the distance matrix are kept.
func editDistance(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
