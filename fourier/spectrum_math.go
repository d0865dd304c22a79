//go:build !fastmath

package fourier

import "math"

// mathLog computes the natural logarithm with full precision.
func mathLog(x float64) float64 {
	return math.Log(x)
}
