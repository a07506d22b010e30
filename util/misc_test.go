package util

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIfThenElse(t *testing.T) {
	if IfThenElse(true, 1, 2) != 1 {
		t.Error("IfThenElse(true, 1, 2) should be 1")
	}
	if IfThenElse(false, 1, 2) != 2 {
		t.Error("IfThenElse(false, 1, 2) should be 2")
	}
	if IfThenElse(true, "a", "b") != "a" {
		t.Error("IfThenElse(true, 'a', 'b') should be 'a'")
	}
}

func TestIsStrictlyIncreasing(t *testing.T) {
	assert.True(t, IsStrictlyIncreasing([]float64{}))
	assert.True(t, IsStrictlyIncreasing([]float64{560}))
	assert.True(t, IsStrictlyIncreasing([]float64{300, 310, 320}))
	assert.False(t, IsStrictlyIncreasing([]float64{300, 310, 310}))
	assert.False(t, IsStrictlyIncreasing([]float64{310, 300}))
	assert.True(t, IsStrictlyIncreasing([]int{1, 2, 3}))
}

func TestFirstDuplicate(t *testing.T) {
	idx, found := FirstDuplicate([]float64{300, 310, 310, 320, 320})
	assert.True(t, found)
	assert.Equal(t, 2, idx)

	idx, found = FirstDuplicate([]float64{300, 310})
	assert.False(t, found)
	assert.Equal(t, -1, idx)
}

func TestGather(t *testing.T) {
	res := Gather([]string{"a", "b", "c"}, []int{2, 0, 1})
	assert.Equal(t, []string{"c", "a", "b"}, res)
}

func TestRangeIterator(t *testing.T) {
	next := RangeIterator(360.0, 380.0, 5.0)
	var got []float64
	for {
		v, err := next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []float64{360, 365, 370, 375, 380}, got)

	// stays exhausted
	_, err := next()
	assert.Equal(t, io.EOF, err)
}

func TestRangeIteratorNoDrift(t *testing.T) {
	next := RangeIterator(0.0, 1.0, 0.1)
	var last float64
	count := 0
	for {
		v, err := next()
		if err != nil {
			break
		}
		last = v
		count++
	}
	assert.Equal(t, 11, count)
	assert.InDelta(t, 1.0, last, 1e-12)
}

func TestRangeCount(t *testing.T) {
	for _, tc := range []struct {
		name     string
		start    float64
		end      float64
		step     float64
		expected int
	}{
		{name: "illuminant A grid", start: 360, end: 825, step: 5, expected: 94},
		{name: "daylight grid", start: 300, end: 830, step: 10, expected: 54},
		{name: "single", start: 560, end: 560, step: 1, expected: 1},
		{name: "end not on grid", start: 360, end: 364, step: 5, expected: 1},
		{name: "zero step", start: 360, end: 830, step: 0, expected: 0},
		{name: "reversed", start: 830, end: 360, step: 5, expected: 0},
		{name: "count overflows", start: 0, end: 1e300, step: 1e-300, expected: 0},
		{name: "count beyond int", start: 0, end: 1e20, step: 1, expected: 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, RangeCount(tc.start, tc.end, tc.step))
		})
	}
}
