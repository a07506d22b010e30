package main

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kpfaulkner/illuminant-go/color"
	"github.com/kpfaulkner/illuminant-go/spectral"
)

func TestLayoutPacked(t *testing.T) {
	var buf bytes.Buffer
	padding := layout(&buf, reflect.TypeOf(spectral.SpectralShape{}))
	assert.Zero(t, padding)

	out := buf.String()
	assert.Contains(t, out, "spectral.SpectralShape")
	for _, name := range []string{"Start", "End", "Interval"} {
		assert.Contains(t, out, name)
	}
}

func TestLayoutPadded(t *testing.T) {
	type padded struct {
		A bool
		B int64
		C bool
	}
	rt := reflect.TypeOf(padded{})

	var buf bytes.Buffer
	padding := layout(&buf, rt)
	assert.Equal(t, rt.Size()-10, padding)
	assert.Contains(t, buf.String(), "total padding")
}

func TestLayoutNonStruct(t *testing.T) {
	var buf bytes.Buffer
	assert.Zero(t, layout(&buf, reflect.TypeOf(color.WP_D65)))
	assert.NotEmpty(t, buf.String())
}
