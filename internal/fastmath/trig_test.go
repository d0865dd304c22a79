package fastmath

import (
	"math"
	"testing"
)

const trigEps = 2e-6

func TestSinAgainstStdlib(t *testing.T) {
	for x := -50.0; x <= 50.0; x += 0.00973 {
		got := Sin(x)
		want := math.Sin(x)
		if math.Abs(got-want) > trigEps {
			t.Fatalf("Sin(%v) = %v, want %v (diff %v)", x, got, want, math.Abs(got-want))
		}
	}
}

func TestCosAgainstStdlib(t *testing.T) {
	for x := -50.0; x <= 50.0; x += 0.00973 {
		got := Cos(x)
		want := math.Cos(x)
		if math.Abs(got-want) > trigEps {
			t.Fatalf("Cos(%v) = %v, want %v (diff %v)", x, got, want, math.Abs(got-want))
		}
	}
}

func TestSinSpecialPoints(t *testing.T) {
	cases := []struct {
		x, want float64
	}{
		{0, 0},
		{math.Pi / 2, 1},
		{math.Pi, 0},
		{3 * math.Pi / 2, -1},
		{2 * math.Pi, 0},
		{-math.Pi / 2, -1},
	}
	for _, c := range cases {
		if got := Sin(c.x); math.Abs(got-c.want) > trigEps {
			t.Fatalf("Sin(%v) = %v, want %v", c.x, got, c.want)
		}
	}
}

func TestSinNegativeWrapBoundary(t *testing.T) {
	// A tiny negative argument wraps to the top of the table and must not
	// read out of range.
	for _, x := range []float64{-1e-18, -1e-15, -1e-12} {
		got := Sin(x)
		if math.Abs(got) > trigEps {
			t.Fatalf("Sin(%v) = %v, want ~0", x, got)
		}
	}
}

func BenchmarkSin(b *testing.B) {
	x := 0.0
	for i := 0; i < b.N; i++ {
		_ = Sin(x)
		x += 0.1
	}
}

func BenchmarkStdlibSin(b *testing.B) {
	x := 0.0
	for i := 0; i < b.N; i++ {
		_ = math.Sin(x)
		x += 0.1
	}
}
