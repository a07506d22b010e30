package util

import (
	"math"

	"golang.org/x/exp/constraints"
)

func AbsDiff[T constraints.Float](a T, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

// AlmostEqual reports whether a and b differ by no more than tolerance.
// NaN never compares equal to anything.
func AlmostEqual[T constraints.Float](a T, b T, tolerance T) bool {
	if isNan(a) || isNan(b) {
		return false
	}
	if a == b {
		return true
	}
	return AbsDiff(a, b) <= tolerance
}

// DecimalTolerance converts a "decimal places" precision into the absolute
// tolerance 1.5 * 10^-decimal, the same threshold numpy's assert_almost_equal uses.
func DecimalTolerance(decimal int) float64 {
	return 1.5 * math.Pow10(-decimal)
}

func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func isNan[T comparable](arg T) bool {
	return arg != arg
}
