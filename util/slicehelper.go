package util

import (
	"golang.org/x/exp/constraints"
)

// IsStrictlyIncreasing returns true if every element is greater than the one before it.
// Empty and single element slices are increasing.
func IsStrictlyIncreasing[T constraints.Ordered](s []T) bool {
	for i := 1; i < len(s); i++ {
		if !(s[i] > s[i-1]) {
			return false
		}
	}
	return true
}

// FirstDuplicate returns the index of the first element equal to its predecessor.
// Input is expected to be sorted.
func FirstDuplicate[T constraints.Ordered](sorted []T) (int, bool) {
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return i, true
		}
	}
	return -1, false
}

// Gather builds a new slice holding s[indices[0]], s[indices[1]], ...
func Gather[T any](s []T, indices []int) []T {
	res := make([]T, len(indices))
	for i, idx := range indices {
		res[i] = s[idx]
	}
	return res
}
