// SPDX-License-Identifier: MIT

package contour_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cauchy/contour"
)

// TestCircle_Errors verifies that invalid radius, point count, center and
// tangent mode are rejected with the matching sentinel.
func TestCircle_Errors(t *testing.T) {
	cases := []struct {
		name   string
		center complex128
		radius float64
		n      int
		opts   []contour.Option
		err    error
	}{
		{"ZeroRadius", 0, 0, 20, nil, contour.ErrBadRadius},
		{"NegativeRadius", 0, -1, 20, nil, contour.ErrBadRadius},
		{"NaNRadius", 0, math.NaN(), 20, nil, contour.ErrBadRadius},
		{"InfRadius", 0, math.Inf(1), 20, nil, contour.ErrBadRadius},
		{"OnePoint", 0, 1, 1, nil, contour.ErrTooFewPoints},
		{"ZeroPoints", 0, 1, 0, nil, contour.ErrTooFewPoints},
		{"NaNCenter", complex(math.NaN(), 0), 1, 20, nil, contour.ErrNaNInf},
		{"InfCenter", complex(0, math.Inf(-1)), 1, 20, nil, contour.ErrNaNInf},
		{"BadMode", 0, 1, 20, []contour.Option{contour.WithTangentMode(contour.TangentMode(42))}, contour.ErrUnknownTangentMode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := contour.Circle(tc.center, tc.radius, tc.n, tc.opts...)
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, c)
		})
	}
}

// TestCircle_LengthAndClosure checks that every valid parameter set yields
// exactly n samples, tangents and params, and that the path is closed.
func TestCircle_LengthAndClosure(t *testing.T) {
	centers := []complex128{0, complex(3, 0), complex(-5, 5), complex(1.3, -2.7)}
	radii := []float64{0.1, 1, 2.5, 5}
	counts := []int{2, 3, 20, 199, 200, 500}

	for _, center := range centers {
		for _, r := range radii {
			for _, n := range counts {
				c, err := contour.Circle(center, r, n)
				require.NoError(t, err)
				assert.Equal(t, n, c.Len())
				assert.Len(t, c.Tangents, n)
				assert.Len(t, c.Params, n)
				assert.Equal(t, c.Samples[0], c.Samples[n-1], "center=%v r=%v n=%d", center, r, n)
				assert.True(t, c.Closed())
			}
		}
	}
}

// TestCircle_SamplesOnCircle ensures every sample sits at distance radius
// from the center and the parameters are uniformly spaced over [0, 2π].
func TestCircle_SamplesOnCircle(t *testing.T) {
	center := complex(-1.5, 0.5)
	c, err := contour.Circle(center, 2, 50)
	require.NoError(t, err)

	for i, z := range c.Samples {
		assert.InDelta(t, 2.0, cmplx.Abs(z-center), 1e-12, "sample %d", i)
	}

	want := make([]float64, 50)
	for i := range want {
		want[i] = 2 * math.Pi * float64(i) / 49
	}
	if d := cmp.Diff(want, c.Params, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Errorf("params mismatch (-want +got):\n%s", d)
	}
	assert.InDelta(t, 2*math.Pi/49, c.Step(), 1e-15)
}

// TestCircle_GradientTelescopes verifies that the half-weighted gradient
// increments of a closed path sum to zero.
func TestCircle_GradientTelescopes(t *testing.T) {
	c, err := contour.Circle(complex(0.4, -0.2), 3, 137)
	require.NoError(t, err)

	var sum complex128
	for _, dz := range c.Tangents {
		sum += dz
	}
	assert.InDelta(t, 0, cmplx.Abs(sum), 1e-12)
}

// TestCircle_RawGradientEnds checks that RawGradient differs from Gradient
// only at the two ends, by a factor of two.
func TestCircle_RawGradientEnds(t *testing.T) {
	g, err := contour.Circle(1i, 1, 40)
	require.NoError(t, err)
	r, err := contour.Circle(1i, 1, 40, contour.WithTangentMode(contour.RawGradient))
	require.NoError(t, err)

	assert.Equal(t, contour.RawGradient, r.Mode)
	assert.Equal(t, g.Tangents[0]*2, r.Tangents[0])
	assert.Equal(t, g.Tangents[39]*2, r.Tangents[39])
	assert.Equal(t, g.Tangents[1:39], r.Tangents[1:39])
}

// TestCircle_AnalyticMatchesGradient compares the analytic tangents with the
// finite-difference ones: O(Δt³) inside, O(Δt²) at the ends.
func TestCircle_AnalyticMatchesGradient(t *testing.T) {
	const n = 200
	g, err := contour.Circle(0, 1, n)
	require.NoError(t, err)
	a, err := contour.Circle(0, 1, n, contour.WithTangentMode(contour.Analytic))
	require.NoError(t, err)

	for i := 1; i < n-1; i++ {
		assert.InDelta(t, 0, cmplx.Abs(a.Tangents[i]-g.Tangents[i]), 1e-5, "index %d", i)
	}
	assert.InDelta(t, 0, cmplx.Abs(a.Tangents[0]-g.Tangents[0]), 1e-3)
	assert.InDelta(t, 0, cmplx.Abs(a.Tangents[n-1]-g.Tangents[n-1]), 1e-3)
}

// TestCircle_TwoPoints covers the degenerate n=2 path: both samples are the
// same point, so every increment vanishes.
func TestCircle_TwoPoints(t *testing.T) {
	c, err := contour.Circle(2, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []complex128{3, 3}, c.Samples)
	assert.Equal(t, []complex128{0, 0}, c.Tangents)
}

// TestContour_BoundsContains checks the bounding box and the strict interior test.
func TestContour_BoundsContains(t *testing.T) {
	c, err := contour.Circle(complex(1, 2), 0.5, 20)
	require.NoError(t, err)

	lo, hi := c.Bounds()
	assert.Equal(t, complex(0.5, 1.5), lo)
	assert.Equal(t, complex(1.5, 2.5), hi)

	assert.True(t, c.Contains(complex(1, 2)))
	assert.False(t, c.Contains(complex(1.5, 2)), "boundary is not inside")
	assert.False(t, c.Contains(0))
}

func TestTangentMode_String(t *testing.T) {
	assert.Equal(t, "gradient", contour.Gradient.String())
	assert.Equal(t, "raw-gradient", contour.RawGradient.String())
	assert.Equal(t, "analytic", contour.Analytic.String())
	assert.Equal(t, "unknown", contour.TangentMode(-1).String())
}
