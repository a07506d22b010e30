package util

import (
	"io"
	"math"

	"golang.org/x/exp/constraints"
)

// RangeIterator walks start, start+step, ... up to and including end.
// Each value is computed as start + i*step so long ranges do not accumulate
// rounding error. Returns io.EOF once the range is exhausted.
// COULD try out the Go 1.23 iter package, but to keep backwards compatibility will
// just use something basic and simple.
func RangeIterator[T constraints.Float](start T, end T, step T) func() (T, error) {
	count := RangeCount(start, end, step)
	i := 0
	return func() (T, error) {
		if i >= count {
			return 0, io.EOF
		}
		v := start + T(i)*step
		i++
		return v, nil
	}
}

// RangeCount is the number of values RangeIterator yields. An end that falls
// within a millionth of a step past the last sample still counts as included.
// A range whose step count does not fit in an int yields nothing.
func RangeCount[T constraints.Float](start T, end T, step T) int {
	if step <= 0 || end < start {
		return 0
	}
	n := float64((end - start) / step)
	if math.IsNaN(n) || n+1e-6 >= math.MaxInt64 {
		return 0
	}
	return int(n+1e-6) + 1
}
