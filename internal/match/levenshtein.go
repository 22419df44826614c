package match

// Levenshtein returns the edit distance between a and b counted in runes, so
// unit suffixes like "µm" cost one edit per character.
func Levenshtein(a, b string) int {
	return distance([]rune(a), []rune(b))
}

// distance keeps a single row of the edit matrix, a is the shorter side.
func distance(a, b []rune) int {
	if len(a) > len(b) {
		a, b = b, a
	}

	if len(a) == 0 {
		return len(b)
	}

	row := make([]int, len(a)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(b); j++ {
		diag := row[0]
		row[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			diag, row[i] = row[i], min(
				row[i]+1,   // deletion
				row[i-1]+1, // insertion
				diag+cost,  // substitution
			)
		}
	}

	return row[len(a)]
}

// LevenshteinNormalized maps the edit distance to a similarity in [0, 1],
// 1 for identical strings.
func LevenshteinNormalized(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)

	longest := max(len(ra), len(rb))
	if longest == 0 {
		return 1.0
	}

	return 1.0 - float64(distance(ra, rb))/float64(longest)
}

// IdentSimilarity compares two property names after NormalizeIdent.
func IdentSimilarity(a, b string) float64 {
	return LevenshteinNormalized(NormalizeIdent(a), NormalizeIdent(b))
}
