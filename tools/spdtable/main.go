package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/kpfaulkner/illuminant-go/color"
	"github.com/kpfaulkner/illuminant-go/illuminant"
	"github.com/kpfaulkner/illuminant-go/options"
	"github.com/kpfaulkner/illuminant-go/spectral"
	"github.com/kpfaulkner/illuminant-go/util"
)

type sample struct {
	Wavelength float64 `yaml:"wavelength"`
	Value      float64 `yaml:"value"`
}

type table struct {
	Name         string    `yaml:"name"`
	Chromaticity []float64 `yaml:"chromaticity,omitempty,flow"`
	WhiteXYZ     []float64 `yaml:"white_xyz,omitempty,flow"`
	Samples      []sample  `yaml:"samples"`
}

func main() {
	kind := flag.String("illuminant", "d", "illuminant to generate: d (daylight) or a")
	named := flag.String("named", "", "named daylight white point, e.g. D65 (overrides -x/-y)")
	x := flag.Float64("x", 0.3127, "chromaticity x for daylight")
	y := flag.Float64("y", 0.3290, "chromaticity y for daylight")
	cct := flag.Float64("cct", 0, "correlated colour temperature for daylight (overrides -x/-y)")
	start := flag.Float64("start", 360, "first wavelength for illuminant A")
	end := flag.Float64("end", 830, "last wavelength for illuminant A")
	interval := flag.Float64("interval", 5, "wavelength interval for illuminant A")
	format := flag.String("format", "text", "output format: text or yaml")
	debug := flag.Bool("debug", false, "debug logging")
	prof := flag.Bool("profile", false, "write a CPU profile to the current directory")
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}
	var p interface{ Stop() }
	if *prof {
		p = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	}

	err := run(os.Stdout, *kind, *named, *x, *y, *cct, *start, *end, *interval, *format, *debug)
	if p != nil {
		p.Stop()
	}
	if err != nil {
		log.Errorf("Error generating table: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, kind string, named string, x float64, y float64, cct float64, start float64, end float64, interval float64, format string, debug bool) error {
	var t *table
	var err error
	switch strings.ToLower(kind) {
	case "d":
		t, err = daylightTable(named, x, y, cct, debug)
	case "a":
		t, err = illuminantATable(spectral.SpectralShape{Start: start, End: end, Interval: interval})
	default:
		err = fmt.Errorf("unknown illuminant %q", kind)
	}
	if err != nil {
		return err
	}
	return writeTable(w, t, format)
}

func daylightTable(named string, x float64, y float64, cct float64, debug bool) (*table, error) {
	xy := color.CIEXY{X: x, Y: y}
	name := illuminant.DaylightSeriesName

	if named != "" {
		wp, err := color.WhitePointByName(strings.ToUpper(named))
		if err != nil {
			return nil, err
		}
		if !color.IsDaylight(wp) {
			return nil, fmt.Errorf("%s is not a daylight illuminant", named)
		}
		nxy, err := color.GetWhitePoint(wp)
		if err != nil {
			return nil, err
		}
		xy = *nxy
		name = fmt.Sprintf("CIE Illuminant %s", color.WhitePointName(wp))
	} else if cct > 0 {
		lxy, err := illuminant.DaylightLocus(cct)
		if err != nil {
			return nil, err
		}
		xy = lxy
		name = fmt.Sprintf("%s %vK", illuminant.DaylightSeriesName, cct)
	}

	dc, err := illuminant.NewDaylightComputer(illuminant.WithOptions(&options.IlluminantOptions{Debug: debug}))
	if err != nil {
		return nil, err
	}
	spd, err := dc.RelativeSPD(xy)
	if err != nil {
		return nil, err
	}

	t := tableFromSPD(name, spd)
	t.Chromaticity = []float64{xy.X, xy.Y}
	// only informational, chromaticities outside the unit square have no XYZ
	if xyz, err := color.GetXYZ(xy); err == nil {
		t.WhiteXYZ = xyz
	}
	return t, nil
}

func illuminantATable(shape spectral.SpectralShape) (*table, error) {
	spd, err := illuminant.IlluminantASPD(shape)
	if err != nil {
		return nil, err
	}
	t := tableFromSPD(spd.Name(), spd)
	t.Chromaticity = []float64{color.CM_WP_A.X, color.CM_WP_A.Y}
	return t, nil
}

func tableFromSPD(name string, spd *spectral.SPD) *table {
	t := &table{Name: name}
	for _, item := range spd.Items() {
		t.Samples = append(t.Samples, sample{Wavelength: item.Wavelength, Value: item.Value})
	}
	return t
}

func writeTable(w io.Writer, t *table, format string) error {
	switch strings.ToLower(format) {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		fmt.Fprintf(w, "# %s\n", t.Name)
		if len(t.Chromaticity) == 2 {
			fmt.Fprintf(w, "# xy %v\n", t.Chromaticity)
		}
		for _, s := range t.Samples {
			fmt.Fprintf(w, "%g\t%.15f\n", s.Wavelength, s.Value)
		}
		fmt.Fprintf(w, "# %d %s\n", len(t.Samples), util.IfThenElse(len(t.Samples) == 1, "sample", "samples"))
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
