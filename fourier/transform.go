package fourier

import (
	"fmt"

	"github.com/rturcotte861/fairSIM/vec"
)

// FFT2D transforms a 2-D complex vector in place. inverse selects the
// transform direction. The first call for a new shape constructs and caches
// the matching engine.
func (r *Registry) FFT2D(v *vec.Complex2D, inverse bool) error {
	e, err := r.Resolve(Shape2D(v.Width(), v.Height()))
	if err != nil {
		return err
	}
	return e.Transform(v.Data(), inverse)
}

// FFT1D transforms a 1-D complex vector in place.
func (r *Registry) FFT1D(v *vec.Complex1D, inverse bool) error {
	e, err := r.Resolve(Shape1D(v.Len()))
	if err != nil {
		return err
	}
	return e.Transform(v.Data(), inverse)
}

// FFT1DData transforms a raw packed float slice in place, assuming standard
// packing (data[2*i] = re, data[2*i+1] = im). The transform length is
// len(data)/2.
func (r *Registry) FFT1DData(data []float64, inverse bool) error {
	if len(data)%2 != 0 {
		return fmt.Errorf("%w: packed length %d is odd", ErrLengthMismatch, len(data))
	}
	e, err := r.Resolve(Shape1D(len(data) / 2))
	if err != nil {
		return err
	}
	return e.Transform(data, inverse)
}

// PowerOf2 reports whether n is a power of two usable as a transform length.
// Lengths below 2 are not considered valid.
func PowerOf2(n int) bool {
	return n >= 2 && n&(n-1) == 0
}
