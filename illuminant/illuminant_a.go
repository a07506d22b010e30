package illuminant

import (
	"math"

	"github.com/kpfaulkner/illuminant-go/spectral"
	"github.com/kpfaulkner/illuminant-go/util"
)

const (
	IlluminantAName = "CIE Standard Illuminant A"

	// Historical CIE constants: c2 in nm.K and the colour temperature on that
	// c2 scale (2856K on the current one). Changing either moves the published table.
	illuminantAC2          = 1.435e7
	illuminantATemperature = 2848.0

	// relative power is 100 here
	illuminantAReference = 560.0
)

var illuminantAReferenceTerm = math.Exp(illuminantAC2/(illuminantATemperature*illuminantAReference)) - 1

func illuminantA(wavelength float64) float64 {
	return 100 * math.Pow(illuminantAReference/wavelength, 5) *
		(illuminantAReferenceTerm / (math.Exp(illuminantAC2/(illuminantATemperature*wavelength)) - 1))
}

func validateWavelength(wavelength float64, index int) error {
	if !util.IsFinite(wavelength) {
		return &InvalidWavelengthError{Wavelength: wavelength, Index: index, Reason: "not a finite number"}
	}
	if wavelength <= 0 {
		return &InvalidWavelengthError{Wavelength: wavelength, Index: index, Reason: "must be positive"}
	}
	return nil
}

// IlluminantAValue evaluates CIE Standard Illuminant A at a single wavelength (nm).
func IlluminantAValue(wavelength float64) (float64, error) {
	if err := validateWavelength(wavelength, -1); err != nil {
		return 0, err
	}
	return illuminantA(wavelength), nil
}

// IlluminantA evaluates CIE Standard Illuminant A independently at each
// wavelength, returning values in the same order. Non-positive or non-finite
// wavelengths are rejected before anything is computed.
func IlluminantA(wavelengths []float64) ([]float64, error) {
	for i, wl := range wavelengths {
		if err := validateWavelength(wl, i); err != nil {
			return nil, err
		}
	}

	values := make([]float64, len(wavelengths))
	for i, wl := range wavelengths {
		values[i] = illuminantA(wl)
	}
	return values, nil
}

// IlluminantASPD samples Illuminant A over shape and wraps the result as a distribution.
func IlluminantASPD(shape spectral.SpectralShape) (*spectral.SPD, error) {
	wavelengths, err := shape.Wavelengths()
	if err != nil {
		return nil, err
	}
	values, err := IlluminantA(wavelengths)
	if err != nil {
		return nil, err
	}
	return spectral.NewSPD(wavelengths, values, spectral.WithName(IlluminantAName))
}
