package spectral

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpfaulkner/illuminant-go/testcommon"
)

func TestNewSPD(t *testing.T) {

	for _, tc := range []struct {
		name           string
		domain         []float64
		values         []float64
		expectedDomain []float64
		expectedValues []float64
		expectErr      bool
	}{
		{
			name:           "already sorted",
			domain:         []float64{500, 510, 520},
			values:         []float64{1, 2, 3},
			expectedDomain: []float64{500, 510, 520},
			expectedValues: []float64{1, 2, 3},
		},
		{
			name:           "unsorted input reordered",
			domain:         []float64{520, 500, 510},
			values:         []float64{3, 1, 2},
			expectedDomain: []float64{500, 510, 520},
			expectedValues: []float64{1, 2, 3},
		},
		{
			name:           "empty",
			domain:         []float64{},
			values:         []float64{},
			expectedDomain: []float64{},
			expectedValues: []float64{},
		},
		{
			name:      "mismatched lengths",
			domain:    []float64{500, 510},
			values:    []float64{1},
			expectErr: true,
		},
		{
			name:      "duplicate wavelength",
			domain:    []float64{500, 510, 500},
			values:    []float64{1, 2, 3},
			expectErr: true,
		},
		{
			name:      "NaN wavelength",
			domain:    []float64{500, math.NaN()},
			values:    []float64{1, 2},
			expectErr: true,
		},
		{
			name:      "infinite wavelength",
			domain:    []float64{math.Inf(1), 500},
			values:    []float64{1, 2},
			expectErr: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {

			spd, err := NewSPD(tc.domain, tc.values)
			if tc.expectErr {
				require.Error(t, err)
				var domainErr *InvalidDomainError
				assert.True(t, errors.As(err, &domainErr))
				assert.Nil(t, spd)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedDomain, spd.Domain())
			assert.Equal(t, tc.expectedValues, spd.Values())
		})
	}
}

func TestNewSPDDuplicateReportsWavelength(t *testing.T) {
	_, err := NewSPD([]float64{560, 500, 560}, []float64{1, 2, 3})

	var domainErr *InvalidDomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, 560.0, domainErr.Wavelength)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestNewSPDDoesNotRetainInput(t *testing.T) {
	domain := []float64{500, 510}
	values := []float64{1, 2}
	spd, err := NewSPD(domain, values)
	require.NoError(t, err)

	values[0] = 99
	domain[0] = 400
	assert.Equal(t, []float64{1, 2}, spd.Values())
	assert.Equal(t, []float64{500, 510}, spd.Domain())
}

func TestAccessorsReturnCopies(t *testing.T) {
	spd, err := NewSPD([]float64{500, 510}, []float64{1, 2})
	require.NoError(t, err)

	v := spd.Values()
	v[0] = 42
	d := spd.Domain()
	d[1] = 42
	assert.Equal(t, []float64{1, 2}, spd.Values())
	assert.Equal(t, []float64{500, 510}, spd.Domain())
}

func TestNewSPDFromMap(t *testing.T) {
	spd, err := NewSPDFromMap(testcommon.D60Reference, WithName("D60"))
	require.NoError(t, err)

	assert.Equal(t, "D60", spd.Name())
	assert.Equal(t, 54, spd.Len())

	domain := spd.Domain()
	assert.Equal(t, 300.0, domain[0])
	assert.Equal(t, 830.0, domain[len(domain)-1])

	v, ok := spd.Value(560)
	assert.True(t, ok)
	assert.Equal(t, 100.0, v)

	_, ok = spd.Value(565)
	assert.False(t, ok)
}

func TestItems(t *testing.T) {
	spd, err := NewSPDFromMap(map[float64]float64{510: 2, 500: 1})
	require.NoError(t, err)

	expected := []Item{{Wavelength: 500, Value: 1}, {Wavelength: 510, Value: 2}}
	if diff := cmp.Diff(expected, spd.Items()); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestShape(t *testing.T) {

	for _, tc := range []struct {
		name          string
		domain        []float64
		expectedShape SpectralShape
		expectUniform bool
	}{
		{
			name:          "uniform",
			domain:        []float64{300, 310, 320, 330},
			expectedShape: SpectralShape{Start: 300, End: 330, Interval: 10},
			expectUniform: true,
		},
		{
			name:          "irregular",
			domain:        []float64{300, 310, 325},
			expectUniform: false,
		},
		{
			name:          "single sample",
			domain:        []float64{560},
			expectUniform: false,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			spd, err := NewSPD(tc.domain, make([]float64, len(tc.domain)))
			require.NoError(t, err)

			shape, uniform := spd.Shape()
			assert.Equal(t, tc.expectUniform, uniform)
			if tc.expectUniform {
				assert.Equal(t, tc.expectedShape, shape)
			}
		})
	}
}

func TestEquality(t *testing.T) {
	base, err := NewSPD([]float64{500, 510, 520}, []float64{1, 2, 3})
	require.NoError(t, err)
	same, err := NewSPD([]float64{520, 510, 500}, []float64{3, 2, 1})
	require.NoError(t, err)
	near, err := NewSPD([]float64{500, 510, 520}, []float64{1.00000001, 2, 3})
	require.NoError(t, err)
	far, err := NewSPD([]float64{500, 510, 520}, []float64{1.001, 2, 3})
	require.NoError(t, err)
	shifted, err := NewSPD([]float64{500, 510, 530}, []float64{1, 2, 3})
	require.NoError(t, err)

	assert.True(t, base.Equals(same))
	assert.False(t, base.Equals(near))
	assert.False(t, base.Equals(nil))

	assert.True(t, base.AlmostEquals(near, 7))
	assert.False(t, base.AlmostEquals(far, 7))
	assert.True(t, base.AlmostEquals(far, 2))
	assert.False(t, base.AlmostEquals(shifted, 0))

	assert.True(t, base.EqualsWithin(far, 0.01))
	assert.False(t, base.EqualsWithin(far, 0.0001))
	assert.False(t, base.EqualsWithin(shifted, 100))
}

func TestAlmostEqualsAgainstCmp(t *testing.T) {
	a, err := NewSPDFromMap(testcommon.D60Reference)
	require.NoError(t, err)

	perturbed := a.Values()
	for i := range perturbed {
		perturbed[i] += 1e-8
	}
	b, err := NewSPD(a.Domain(), perturbed)
	require.NoError(t, err)

	assert.True(t, a.AlmostEquals(b, 7))
	if diff := cmp.Diff(a.Values(), b.Values(), cmpopts.EquateApprox(0, 1.5e-7)); diff != "" {
		t.Errorf("values differ beyond 7 decimals (-want +got):\n%s", diff)
	}
}

func TestString(t *testing.T) {
	spd, err := NewSPD([]float64{500}, []float64{1}, WithName("test"))
	require.NoError(t, err)
	assert.Equal(t, `SPD "test", 1 samples`, spd.String())
}
