package utils

import "cmp"

// IsInRange reports whether lo <= v <= hi. NaN is never in range.
func IsInRange[T cmp.Ordered](lo, v, hi T) bool {
	return lo <= v && v <= hi
}
