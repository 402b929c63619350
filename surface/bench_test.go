// SPDX-License-Identifier: MIT

package surface_test

import (
	"testing"

	"github.com/katalvlaran/cauchy/analytic"
	"github.com/katalvlaran/cauchy/surface"
)

// BenchmarkSample_Sine100 samples sin(z) on the full 100×100 grid.
func BenchmarkSample_Sine100(b *testing.B) {
	f := analytic.Function{Kind: analytic.Sine}
	for i := 0; i < b.N; i++ {
		if _, err := surface.Sample(f, complex(1, 1), 2, nil); err != nil {
			b.Fatalf("Sample failed: %v", err)
		}
	}
}
