// Package match finds the known name closest to a misspelled one, for the
// "did you mean" hints of diagnostics.
package match

import (
	"strings"
	"unicode"
)

// Normalize folds an identifier for fuzzy comparison: lower case, without
// '_', '-' or ' ' separators. "Item_Availability" and "itemAvailability"
// normalize to the same string.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if r == '_' || r == '-' || r == ' ' {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// Distance computes the Levenshtein distance between a and b, counted in
// runes: the minimum number of insertions, deletions or substitutions that
// turn one into the other.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		return len(rb)
	}

	// two rows over the shorter string
	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Similarity scores two identifiers between 0 and 1 after normalizing them;
// 1 means equal.
func Similarity(a, b string) float64 {
	na, nb := []rune(Normalize(a)), []rune(Normalize(b))

	longest := max(len(na), len(nb))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Distance(string(na), string(nb)))/float64(longest)
}

// Closest returns the candidate most similar to name when its similarity is
// at least minScore. Ties go to the earliest candidate.
func Closest(name string, candidates []string, minScore float64) (string, bool) {
	best, bestScore := "", -1.0

	for _, c := range candidates {
		if score := Similarity(name, c); score > bestScore {
			best, bestScore = c, score
		}
	}

	if bestScore < minScore {
		return "", false
	}

	return best, true
}

// Hint formats a " (did you mean X?)" suffix, or "" when nothing is close.
func Hint(name string, candidates []string) string {
	if c, ok := Closest(name, candidates, DefaultMinScore); ok && c != name {
		return " (did you mean " + c + "?)"
	}

	return ""
}

// DefaultMinScore is the similarity Hint requires.
const DefaultMinScore = 0.6
