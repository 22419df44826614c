package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds a property name for fuzzy matching: lower case with
// separators dropped, so "voxel_size", "VoxelSize" and "voxel-size" agree.
func NormalizeIdent(s string) string {
	return strings.Map(func(r rune) rune {
		if isSeparator(r) {
			return -1
		}

		return unicode.ToLower(r)
	}, s)
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}
