package collections

import "golang.org/x/exp/constraints"

// Min returns the smaller of two ordered values. Used by the word-file
// loader to clamp a truncated line length against its declared bound.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}
