package illuminant

import (
	"errors"
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/illuminant-go/color"
	"github.com/kpfaulkner/illuminant-go/options"
	"github.com/kpfaulkner/illuminant-go/spectral"
	"github.com/kpfaulkner/illuminant-go/util"
)

const (
	DaylightSeriesName = "CIE Illuminant D Series"

	MinDaylightCCT = 4000.0
	MaxDaylightCCT = 25000.0
)

type DaylightOption func(dc *DaylightComputer) error

// WithBasisTable replaces the CIE basis functions with a caller supplied table.
func WithBasisTable(basis BasisTable) DaylightOption {
	return func(dc *DaylightComputer) error {
		if basis == nil || basis.Len() == 0 {
			return errors.New("basis table must contain at least one sample")
		}
		if !util.IsStrictlyIncreasing(basis.Wavelengths()) {
			return &spectral.InvalidDomainError{Reason: "basis wavelengths must be strictly increasing", Index: -1}
		}
		dc.basis = basis
		return nil
	}
}

func WithOptions(opts *options.IlluminantOptions) DaylightOption {
	return func(dc *DaylightComputer) error {
		dc.opts = options.NewIlluminantOptions(opts)
		return nil
	}
}

// DaylightComputer produces CIE D series relative spectral power distributions
// from chromaticity coordinates. It holds no mutable state and is safe for
// concurrent use. The zero value uses the CIE basis and default options.
type DaylightComputer struct {
	basis BasisTable
	opts  *options.IlluminantOptions
	log   *log.Entry
}

var defaultComputer = &DaylightComputer{
	opts: options.NewIlluminantOptions(nil),
	log:  log.NewEntry(log.StandardLogger()),
}

func NewDaylightComputer(opts ...DaylightOption) (*DaylightComputer, error) {
	dc := &DaylightComputer{}
	dc.opts = options.NewIlluminantOptions(nil)

	for _, opt := range opts {
		if err := opt(dc); err != nil {
			return nil, err
		}
	}

	logger := log.StandardLogger()
	if dc.opts.Debug {
		logger = log.New()
		logger.SetOutput(log.StandardLogger().Out)
		logger.SetFormatter(log.StandardLogger().Formatter)
		logger.SetLevel(log.DebugLevel)
	}
	dc.log = log.NewEntry(logger)
	return dc, nil
}

func (dc *DaylightComputer) settings() *options.IlluminantOptions {
	if dc.opts == nil {
		return defaultComputer.opts
	}
	return dc.opts
}

func (dc *DaylightComputer) logger() *log.Entry {
	if dc.log == nil {
		return defaultComputer.log
	}
	return dc.log
}

func (dc *DaylightComputer) basisTable() BasisTable {
	if dc.basis == nil {
		return CIEDaylightBasis()
	}
	return dc.basis
}

// Coefficients returns the mixing coefficients M1 and M2 for the S1 and S2
// basis functions.
func (dc *DaylightComputer) Coefficients(xy color.CIEXY) (float64, float64, error) {
	x, y := xy.X, xy.Y

	m := 0.0241 + 0.2562*x - 0.7341*y
	if math.IsNaN(m) || math.IsInf(m, 0) || math.Abs(m) <= dc.settings().DegenerateTolerance {
		return 0, 0, &DegenerateChromaticityError{X: x, Y: y, Denominator: m}
	}

	m1 := (-1.3515 - 1.7703*x + 5.9114*y) / m
	m2 := (0.0300 - 31.4424*x + 30.0717*y) / m

	dc.logger().WithFields(log.Fields{
		"x":  x,
		"y":  y,
		"m1": m1,
		"m2": m2,
	}).Debug("daylight coefficients")
	return m1, m2, nil
}

// RelativeSPD computes S0 + M1*S1 + M2*S2 at every wavelength of the basis
// table. The returned domain is exactly the basis table's grid.
func (dc *DaylightComputer) RelativeSPD(xy color.CIEXY) (*spectral.SPD, error) {
	m1, m2, err := dc.Coefficients(xy)
	if err != nil {
		return nil, err
	}

	basis := dc.basisTable()
	values := make([]float64, basis.Len())
	for i := range values {
		s0, s1, s2 := basis.Components(i)
		values[i] = s0 + m1*s1 + m2*s2
	}

	return spectral.NewSPD(basis.Wavelengths(), values, spectral.WithName(DaylightSeriesName))
}

// DIlluminantRelativeSPD computes the relative SPD of the CIE daylight
// illuminant with chromaticity (x, y) over the CIE basis grid.
func DIlluminantRelativeSPD(x float64, y float64) (*spectral.SPD, error) {
	return defaultComputer.RelativeSPD(color.CIEXY{X: x, Y: y})
}

// DaylightLocus returns the chromaticity on the CIE daylight locus for a
// correlated colour temperature in kelvin, valid from 4000K to 25000K.
func DaylightLocus(cct float64) (color.CIEXY, error) {
	if math.IsNaN(cct) || cct < MinDaylightCCT || cct > MaxDaylightCCT {
		return color.CIEXY{}, &InvalidTemperatureError{CCT: cct}
	}

	t := cct
	var x float64
	if t <= 7000 {
		x = -4.607e9/(t*t*t) + 2.9678e6/(t*t) + 0.09911e3/t + 0.244063
	} else {
		x = -2.0064e9/(t*t*t) + 1.9018e6/(t*t) + 0.24748e3/t + 0.23704
	}
	y := -3*x*x + 2.87*x - 0.275

	return color.CIEXY{X: x, Y: y}, nil
}

// DIlluminantFromCCT computes the daylight illuminant at a correlated colour temperature.
func DIlluminantFromCCT(cct float64) (*spectral.SPD, error) {
	xy, err := DaylightLocus(cct)
	if err != nil {
		return nil, err
	}
	return defaultComputer.RelativeSPD(xy)
}

// NamedDaylight computes one of the standard D series illuminants, e.g. color.WP_D65.
func NamedDaylight(whitePoint int32) (*spectral.SPD, error) {
	if !color.IsDaylight(whitePoint) {
		return nil, fmt.Errorf("white point %d is not a CIE daylight illuminant", whitePoint)
	}
	xy, err := color.GetWhitePoint(whitePoint)
	if err != nil {
		return nil, err
	}
	return defaultComputer.RelativeSPD(*xy)
}
