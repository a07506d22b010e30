package spectral

import (
	"fmt"
	"io"

	"github.com/kpfaulkner/illuminant-go/util"
)

// MaxShapeSamples bounds the number of wavelengths a shape may generate.
const MaxShapeSamples = 10_000_000

// SpectralShape describes a uniformly sampled wavelength grid, end inclusive.
type SpectralShape struct {
	Start    float64
	End      float64
	Interval float64
}

func NewSpectralShape(start float64, end float64, interval float64) (SpectralShape, error) {
	s := SpectralShape{Start: start, End: end, Interval: interval}
	if err := s.Validate(); err != nil {
		return SpectralShape{}, err
	}
	return s, nil
}

func (s SpectralShape) Validate() error {
	if !util.IsFinite(s.Start) || !util.IsFinite(s.End) || !util.IsFinite(s.Interval) {
		return newDomainError(fmt.Sprintf("shape %v has non-finite bounds", s))
	}
	if s.Interval <= 0 {
		return newDomainError(fmt.Sprintf("shape interval %v must be positive", s.Interval))
	}
	if s.End < s.Start {
		return newDomainError(fmt.Sprintf("shape end %v before start %v", s.End, s.Start))
	}
	if n := (s.End - s.Start) / s.Interval; !util.IsFinite(n) || n >= MaxShapeSamples {
		return newDomainError(fmt.Sprintf("shape %v has too many samples", s))
	}
	return nil
}

func (s SpectralShape) Len() int {
	return util.RangeCount(s.Start, s.End, s.Interval)
}

// Wavelengths generates the sampled grid Start, Start+Interval, ... End.
func (s SpectralShape) Wavelengths() ([]float64, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	wavelengths := make([]float64, 0, s.Len())
	next := util.RangeIterator(s.Start, s.End, s.Interval)
	for {
		wl, err := next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		wavelengths = append(wavelengths, wl)
	}
	return wavelengths, nil
}

func (s SpectralShape) String() string {
	return fmt.Sprintf("(%v, %v, %v)", s.Start, s.End, s.Interval)
}
