package fourier

import (
	"fmt"
	"math"

	"github.com/rturcotte861/fairSIM/internal/fastmath"
	"github.com/rturcotte861/fairSIM/internal/parallel"
	"github.com/rturcotte861/fairSIM/vec"
)

// phaseFactors returns (cos phi, sin phi), using the table-based
// approximation when fast is set.
func phaseFactors(phi float64, fast bool) (co, si float64) {
	if fast {
		return fastmath.Cos(phi), fastmath.Sin(phi)
	}
	return math.Cos(phi), math.Sin(phi)
}

// ShiftVector returns an n x n vector of Fourier-shift-theorem phases for a
// shift to (kx, ky): element (x, y) holds exp(i*2*pi*(kx*x+ky*y)/n). The
// fast flag substitutes the lower-precision table-based sin/cos. Rows are
// computed in parallel.
func ShiftVector(n int, kx, ky float64, fast bool) *vec.Complex2D {
	shft := vec.NewComplex2D(n, n)
	data := shft.Data()

	parallel.For(0, n, func(y int) {
		for x := 0; x < n; x++ {
			phi := 2 * math.Pi * (kx*float64(x) + ky*float64(y)) / float64(n)
			co, si := phaseFactors(phi, fast)
			i := 2 * (y*n + x)
			data[i] = co
			data[i+1] = si
		}
	})

	return shft
}

// TimesShiftVector multiplies v in place by the phase ramp that ShiftVector
// would produce for (kx, ky), translating the corresponding spatial-domain
// image by that shift. The vector must be square. Rows are computed in
// parallel.
func TimesShiftVector(v *vec.Complex2D, kx, ky float64, fast bool) error {
	n := v.Width()
	if v.Height() != n {
		return fmt.Errorf("%w: %dx%d", ErrNonSquare, v.Width(), v.Height())
	}

	data := v.Data()
	parallel.For(0, n, func(y int) {
		for x := 0; x < n; x++ {
			phi := 2 * math.Pi * (kx*float64(x) + ky*float64(y)) / float64(n)
			co, si := phaseFactors(phi, fast)

			i := 2 * (y*n + x)
			re := data[i]
			im := data[i+1]
			data[i] = re*co - im*si
			data[i+1] = re*si + im*co
		}
	})

	return nil
}
