package fastmath

import "math"

const tableSize = 4096

// sinTable holds one full period of sine with a duplicated wrap-around entry
// so interpolation never reads past the end.
var sinTable [tableSize + 1]float64

func init() {
	for i := range sinTable {
		sinTable[i] = math.Sin(2 * math.Pi * float64(i) / tableSize)
	}
}

// Sin returns an approximation of sin(x) using table lookup with linear
// interpolation. Absolute error is below 2e-6 for all finite x.
func Sin(x float64) float64 {
	t := math.Mod(x*(tableSize/(2*math.Pi)), tableSize)
	if t < 0 {
		t += tableSize
	}
	i := int(t)
	if i >= tableSize {
		// Rounding in the negative-wrap branch can land exactly on tableSize.
		return sinTable[0]
	}
	f := t - float64(i)
	return sinTable[i] + f*(sinTable[i+1]-sinTable[i])
}

// Cos returns an approximation of cos(x). See Sin for accuracy.
func Cos(x float64) float64 {
	return Sin(x + math.Pi/2)
}
