package illuminant

import (
	"fmt"
)

// DegenerateChromaticityError is returned when a chromaticity drives the
// daylight coefficient denominator 0.0241 + 0.2562x - 0.7341y to zero.
type DegenerateChromaticityError struct {
	X           float64
	Y           float64
	Denominator float64
}

func (e *DegenerateChromaticityError) Error() string {
	return fmt.Sprintf("degenerate chromaticity (%v, %v): daylight coefficient denominator is %v", e.X, e.Y, e.Denominator)
}

// InvalidWavelengthError is returned for wavelengths that are not positive
// finite numbers, or that fall outside a tabulated range.
type InvalidWavelengthError struct {
	Wavelength float64
	Index      int
	Reason     string
}

func (e *InvalidWavelengthError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid wavelength %v: %s", e.Wavelength, e.Reason)
	}
	return fmt.Sprintf("invalid wavelength %v at index %d: %s", e.Wavelength, e.Index, e.Reason)
}

// InvalidTemperatureError is returned when a correlated colour temperature
// lies outside the range the CIE daylight locus is defined for.
type InvalidTemperatureError struct {
	CCT float64
}

func (e *InvalidTemperatureError) Error() string {
	return fmt.Sprintf("correlated colour temperature %vK outside daylight locus range [%v, %v]", e.CCT, MinDaylightCCT, MaxDaylightCCT)
}
