package illuminant

import (
	"fmt"
	"sort"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/illuminant-go/spectral"
	"github.com/kpfaulkner/illuminant-go/util"
)

// BasisTable supplies the S0, S1 and S2 daylight components over a single
// strictly increasing wavelength grid.
type BasisTable interface {
	Len() int
	Wavelengths() []float64
	Components(index int) (s0 float64, s1 float64, s2 float64)
}

// DaylightBasis is an immutable table of the three CIE daylight basis functions.
type DaylightBasis struct {
	wavelengths []float64
	s0          []float64
	s1          []float64
	s2          []float64
}

var (
	cieBasis     *DaylightBasis
	cieBasisOnce sync.Once
)

// CIE 15 daylight components: wavelength (nm), S0, S1, S2.
var cieDaylightComponents = [][4]float64{
	{300, 0.04, 0.02, 0.00},
	{310, 6.00, 4.50, 2.00},
	{320, 29.60, 22.40, 4.00},
	{330, 55.30, 42.00, 8.50},
	{340, 57.30, 40.60, 7.80},
	{350, 61.80, 41.60, 6.70},
	{360, 61.50, 38.00, 5.30},
	{370, 68.80, 43.40, 6.10},
	{380, 63.40, 38.50, 3.00},
	{390, 65.80, 35.00, 1.20},
	{400, 94.80, 43.40, -1.10},
	{410, 104.80, 46.30, -0.50},
	{420, 105.90, 43.90, -0.70},
	{430, 96.80, 37.10, -1.20},
	{440, 113.90, 36.70, -2.60},
	{450, 125.60, 35.90, -2.90},
	{460, 125.50, 32.60, -2.80},
	{470, 121.30, 27.90, -2.60},
	{480, 121.30, 24.30, -2.60},
	{490, 113.50, 20.10, -1.80},
	{500, 113.10, 16.20, -1.50},
	{510, 110.80, 13.20, -1.30},
	{520, 106.50, 8.60, -1.20},
	{530, 108.80, 6.10, -1.00},
	{540, 105.30, 4.20, -0.50},
	{550, 104.40, 1.90, -0.30},
	{560, 100.00, 0.00, 0.00},
	{570, 96.00, -1.60, 0.20},
	{580, 95.10, -3.50, 0.50},
	{590, 89.10, -3.50, 2.10},
	{600, 90.50, -5.80, 3.20},
	{610, 90.30, -7.20, 4.10},
	{620, 88.40, -8.60, 4.70},
	{630, 84.00, -9.50, 5.10},
	{640, 85.10, -10.90, 6.70},
	{650, 81.90, -10.70, 7.30},
	{660, 82.60, -12.00, 8.60},
	{670, 84.90, -14.00, 9.80},
	{680, 81.30, -13.60, 10.20},
	{690, 71.90, -12.00, 8.30},
	{700, 74.30, -13.30, 9.60},
	{710, 76.40, -12.90, 8.50},
	{720, 63.30, -10.60, 7.00},
	{730, 71.70, -11.60, 7.60},
	{740, 77.00, -12.20, 8.00},
	{750, 65.20, -10.20, 6.70},
	{760, 47.70, -7.80, 5.20},
	{770, 68.60, -11.20, 7.40},
	{780, 65.00, -10.40, 6.80},
	{790, 66.00, -10.60, 7.00},
	{800, 61.00, -9.70, 6.40},
	{810, 53.30, -8.30, 5.50},
	{820, 58.90, -9.30, 6.10},
	{830, 61.90, -9.80, 6.50},
}

// CIEDaylightBasis returns the CIE daylight basis functions, 300-830 nm at 10 nm.
// The table is built on first use and shared read-only afterwards.
func CIEDaylightBasis() *DaylightBasis {
	cieBasisOnce.Do(func() {
		n := len(cieDaylightComponents)
		b := &DaylightBasis{
			wavelengths: make([]float64, n),
			s0:          make([]float64, n),
			s1:          make([]float64, n),
			s2:          make([]float64, n),
		}
		for i, row := range cieDaylightComponents {
			b.wavelengths[i] = row[0]
			b.s0[i] = row[1]
			b.s1[i] = row[2]
			b.s2[i] = row[3]
		}
		cieBasis = b
		log.WithFields(log.Fields{
			"samples": n,
			"start":   b.wavelengths[0],
			"end":     b.wavelengths[n-1],
		}).Debug("initialised CIE daylight basis")
	})
	return cieBasis
}

// NewDaylightBasis builds a basis table from parallel slices. The slices are copied.
func NewDaylightBasis(wavelengths []float64, s0 []float64, s1 []float64, s2 []float64) (*DaylightBasis, error) {
	n := len(wavelengths)
	if len(s0) != n || len(s1) != n || len(s2) != n {
		return nil, &spectral.InvalidDomainError{
			Reason: fmt.Sprintf("basis components have lengths %d, %d, %d for %d wavelengths", len(s0), len(s1), len(s2), n),
			Index:  -1,
		}
	}
	if n == 0 {
		return nil, &spectral.InvalidDomainError{Reason: "basis table is empty", Index: -1}
	}
	for i, wl := range wavelengths {
		if !util.IsFinite(wl) {
			return nil, &spectral.InvalidDomainError{Reason: "wavelength is not a finite number", Wavelength: wl, Index: i}
		}
	}
	if !util.IsStrictlyIncreasing(wavelengths) {
		return nil, &spectral.InvalidDomainError{Reason: "basis wavelengths must be strictly increasing", Index: -1}
	}

	b := &DaylightBasis{}
	b.wavelengths = append([]float64(nil), wavelengths...)
	b.s0 = append([]float64(nil), s0...)
	b.s1 = append([]float64(nil), s1...)
	b.s2 = append([]float64(nil), s2...)
	return b, nil
}

func (b *DaylightBasis) Len() int {
	return len(b.wavelengths)
}

// Wavelengths returns a copy of the table's wavelength grid.
func (b *DaylightBasis) Wavelengths() []float64 {
	return append([]float64(nil), b.wavelengths...)
}

func (b *DaylightBasis) Components(index int) (float64, float64, float64) {
	return b.s0[index], b.s1[index], b.s2[index]
}

// At returns the components at an arbitrary wavelength, linearly interpolating
// between tabulated samples. Tabulated wavelengths are returned exactly.
func (b *DaylightBasis) At(wavelength float64) (float64, float64, float64, error) {
	n := len(b.wavelengths)
	if !util.IsFinite(wavelength) || wavelength < b.wavelengths[0] || wavelength > b.wavelengths[n-1] {
		return 0, 0, 0, &InvalidWavelengthError{
			Wavelength: wavelength,
			Index:      -1,
			Reason:     fmt.Sprintf("outside basis range [%v, %v]", b.wavelengths[0], b.wavelengths[n-1]),
		}
	}

	i := sort.SearchFloat64s(b.wavelengths, wavelength)
	if b.wavelengths[i] == wavelength {
		return b.s0[i], b.s1[i], b.s2[i], nil
	}

	lo, hi := i-1, i
	t := (wavelength - b.wavelengths[lo]) / (b.wavelengths[hi] - b.wavelengths[lo])
	lerp := func(s []float64) float64 {
		return s[lo] + t*(s[hi]-s[lo])
	}
	return lerp(b.s0), lerp(b.s1), lerp(b.s2), nil
}

// Resample builds a new basis table on the given grid by linear interpolation.
// The grid must lie within this table's wavelength range.
func (b *DaylightBasis) Resample(shape spectral.SpectralShape) (*DaylightBasis, error) {
	wavelengths, err := shape.Wavelengths()
	if err != nil {
		return nil, err
	}

	s0 := make([]float64, len(wavelengths))
	s1 := make([]float64, len(wavelengths))
	s2 := make([]float64, len(wavelengths))
	for i, wl := range wavelengths {
		if s0[i], s1[i], s2[i], err = b.At(wl); err != nil {
			return nil, err
		}
	}
	return NewDaylightBasis(wavelengths, s0, s1, s2)
}
