//go:build fastmath

package fourier

import (
	"math"

	"github.com/meko-christian/algo-approx"
)

// mathLog computes the natural logarithm using a fast approximation.
// Non-positive inputs fall back to math.Log so the scaling window keeps its
// NaN/-Inf clamping semantics.
func mathLog(x float64) float64 {
	if x <= 0 {
		return math.Log(x)
	}
	return approx.FastLog(x)
}
