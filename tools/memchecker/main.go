package main

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"text/tabwriter"

	"github.com/kpfaulkner/illuminant-go/color"
	"github.com/kpfaulkner/illuminant-go/illuminant"
	"github.com/kpfaulkner/illuminant-go/options"
	"github.com/kpfaulkner/illuminant-go/spectral"
)

// layout writes one row per field of a struct type, including the padding
// inserted before it, and returns the total padding in bytes.
func layout(w io.Writer, t reflect.Type) uintptr {
	fmt.Fprintf(w, "%s\t%d bytes\talign %d\n", t, t.Size(), t.Align())
	if t.Kind() != reflect.Struct {
		return 0
	}

	var padding, next uintptr
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		gap := f.Offset - next
		padding += gap
		fmt.Fprintf(w, "  %s\t%s\toffset %d\tsize %d\tpad %d\n", f.Name, f.Type, f.Offset, f.Type.Size(), gap)
		next = f.Offset + f.Type.Size()
	}
	tail := t.Size() - next
	padding += tail
	fmt.Fprintf(w, "  total padding\t%d bytes (%d trailing)\n\n", padding, tail)
	return padding
}

func main() {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, t := range []reflect.Type{
		reflect.TypeOf(spectral.SPD{}),
		reflect.TypeOf(spectral.SpectralShape{}),
		reflect.TypeOf(spectral.Item{}),
		reflect.TypeOf(illuminant.DaylightBasis{}),
		reflect.TypeOf(illuminant.DaylightComputer{}),
		reflect.TypeOf(options.IlluminantOptions{}),
		reflect.TypeOf(color.CIEXY{}),
	} {
		layout(tw, t)
	}
	tw.Flush()
}
