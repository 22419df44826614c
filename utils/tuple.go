package utils

// Unpack2 returns the first two elements of s, missing ones are zero.
func Unpack2[S ~[]T, T any](s S) (first, second T) {
	switch len(s) {
	case 0:
	case 1:
		first = s[0]
	default:
		first, second = s[0], s[1]
	}

	return first, second
}
