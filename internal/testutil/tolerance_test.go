package testutil

import "testing"

func TestRequireSliceNearlyEqual(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2, 3}, []float64{1, 2, 3.0000001}, 1e-6)
}

func TestRequireInUnitRange(t *testing.T) {
	RequireInUnitRange(t, []float64{0, 0.5, 1})
}

func TestMaxAbsDiff(t *testing.T) {
	d := MaxAbsDiff(t, []float64{1, 2, 3}, []float64{1, 4, 3})
	if d != 2 {
		t.Fatalf("MaxAbsDiff = %v, want 2", d)
	}
}
