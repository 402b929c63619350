// SPDX-License-Identifier: MIT

package contour

// MinPoints is the smallest sample count that still describes a closed path.
const MinPoints = 2

// TangentMode selects how Contour.Tangents is computed.
type TangentMode int

const (
	// Gradient uses central differences of the samples at interior indices
	// and one-sided differences at both ends. The two end increments are
	// halved: the seam point appears twice, once at each end.
	Gradient TangentMode = iota

	// RawGradient uses the same differences as Gradient without halving the
	// ends. The seam point is then counted with a full extra weight.
	RawGradient

	// Analytic uses the exact derivative i·radius·e^{it} scaled by the
	// parameter step, with the same ½ end weights as Gradient.
	Analytic
)

// String returns the mode name.
func (m TangentMode) String() string {
	switch m {
	case Gradient:
		return "gradient"
	case RawGradient:
		return "raw-gradient"
	case Analytic:
		return "analytic"
	default:
		return "unknown"
	}
}

// Contour is an immutable discretized circle.
//
// Samples, Tangents and Params have the same length n ≥ 2 and are ordered by
// the parameter t_i = 2π·i/(n−1). Samples[0] == Samples[n−1].
type Contour struct {
	Center complex128
	Radius float64

	Samples  []complex128
	Tangents []complex128
	Params   []float64

	Mode TangentMode
}

// Option configures Circle.
type Option func(*options)

type options struct {
	mode TangentMode
}

func defaultOptions() options {
	return options{mode: Gradient}
}

// WithTangentMode selects the tangent scheme. Default: Gradient.
func WithTangentMode(m TangentMode) Option {
	return func(o *options) { o.mode = m }
}
