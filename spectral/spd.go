package spectral

import (
	"fmt"
	"slices"
	"sort"

	"github.com/kpfaulkner/illuminant-go/util"
)

type SPDOption func(spd *SPD)

func WithName(name string) SPDOption {
	return func(spd *SPD) {
		spd.name = name
	}
}

// SPD is a spectral power distribution: values sampled at strictly increasing
// wavelengths (nm). Once constructed it is never modified.
type SPD struct {
	name string

	// sorted ascending, no duplicates
	domain []float64

	// values[i] is the sample at domain[i]
	values []float64
}

// Item is a single wavelength/value sample.
type Item struct {
	Wavelength float64
	Value      float64
}

// NewSPD builds a distribution from parallel wavelength and value slices.
// Samples are reordered by ascending wavelength. The input slices are not retained.
func NewSPD(domain []float64, values []float64, opts ...SPDOption) (*SPD, error) {
	if len(domain) != len(values) {
		return nil, newDomainError(fmt.Sprintf("domain has %d wavelengths but %d values supplied", len(domain), len(values)))
	}

	for i, wl := range domain {
		if !util.IsFinite(wl) {
			return nil, &InvalidDomainError{Reason: "wavelength is not a finite number", Wavelength: wl, Index: i}
		}
	}

	order := make([]int, len(domain))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return domain[order[a]] < domain[order[b]]
	})

	spd := &SPD{}
	spd.domain = util.Gather(domain, order)
	spd.values = util.Gather(values, order)

	if idx, found := util.FirstDuplicate(spd.domain); found {
		return nil, &InvalidDomainError{Reason: "duplicate wavelength", Wavelength: spd.domain[idx], Index: order[idx]}
	}

	for _, opt := range opts {
		opt(spd)
	}
	return spd, nil
}

// NewSPDFromMap builds a distribution from a wavelength -> value mapping.
func NewSPDFromMap(data map[float64]float64, opts ...SPDOption) (*SPD, error) {
	domain := make([]float64, 0, len(data))
	values := make([]float64, 0, len(data))
	for wl, v := range data {
		domain = append(domain, wl)
		values = append(values, v)
	}
	return NewSPD(domain, values, opts...)
}

func (spd *SPD) Name() string {
	return spd.name
}

func (spd *SPD) Len() int {
	return len(spd.domain)
}

// Domain returns a copy of the wavelengths in ascending order.
func (spd *SPD) Domain() []float64 {
	return slices.Clone(spd.domain)
}

// Values returns a copy of the samples, ordered to match Domain.
func (spd *SPD) Values() []float64 {
	return slices.Clone(spd.values)
}

// Value looks up the sample at exactly the given wavelength.
func (spd *SPD) Value(wavelength float64) (float64, bool) {
	idx, found := slices.BinarySearch(spd.domain, wavelength)
	if !found {
		return 0, false
	}
	return spd.values[idx], true
}

func (spd *SPD) Items() []Item {
	items := make([]Item, len(spd.domain))
	for i := range spd.domain {
		items[i] = Item{Wavelength: spd.domain[i], Value: spd.values[i]}
	}
	return items
}

// Shape reports the sampling grid if the domain is uniformly spaced.
// Distributions with fewer than two samples have no interval and return false.
func (spd *SPD) Shape() (SpectralShape, bool) {
	if len(spd.domain) < 2 {
		return SpectralShape{}, false
	}

	start := spd.domain[0]
	end := spd.domain[len(spd.domain)-1]
	interval := (end - start) / float64(len(spd.domain)-1)
	tolerance := interval * 1e-9
	for i, wl := range spd.domain {
		if !util.AlmostEqual(wl, start+float64(i)*interval, tolerance) {
			return SpectralShape{}, false
		}
	}
	return SpectralShape{Start: start, End: end, Interval: interval}, true
}

func (spd *SPD) sameDomain(other *SPD) bool {
	if other == nil {
		return false
	}
	return slices.Equal(spd.domain, other.domain)
}

// Equals requires identical domains and identical values.
func (spd *SPD) Equals(other *SPD) bool {
	return spd.sameDomain(other) && slices.Equal(spd.values, other.values)
}

// EqualsWithin requires identical domains and values that differ by at most
// tolerance at every wavelength.
func (spd *SPD) EqualsWithin(other *SPD, tolerance float64) bool {
	if !spd.sameDomain(other) {
		return false
	}
	for i := range spd.values {
		if !util.AlmostEqual(spd.values[i], other.values[i], tolerance) {
			return false
		}
	}
	return true
}

// AlmostEquals compares values to the given number of decimal places, i.e.
// |a - b| < 1.5 * 10^-decimal, after requiring identical domains.
func (spd *SPD) AlmostEquals(other *SPD, decimal int) bool {
	if !spd.sameDomain(other) {
		return false
	}
	tolerance := util.DecimalTolerance(decimal)
	for i := range spd.values {
		a, b := spd.values[i], other.values[i]
		if a == b {
			continue
		}
		if !(util.AbsDiff(a, b) < tolerance) {
			return false
		}
	}
	return true
}

func (spd *SPD) String() string {
	if spd.name != "" {
		return fmt.Sprintf("SPD %q, %d samples", spd.name, len(spd.domain))
	}
	return fmt.Sprintf("SPD, %d samples", len(spd.domain))
}
