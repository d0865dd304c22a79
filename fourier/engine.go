package fourier

import (
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Engine performs in-place complex-to-complex transforms for one fixed
// shape. It wraps an FFT plan bound to that shape together with the staging
// buffers used to bridge packed floats and the plan's complex layout.
//
// Engines are shared process-wide through a [Registry], so each transform
// takes a per-engine lock to guard the shared staging buffers; transforms on
// distinct shapes run concurrently. The shape binding never changes after
// construction.
type Engine struct {
	key ShapeKey

	mu     sync.Mutex
	plan   *algofft.Plan[complex128]
	plan2d *algofft.Plan2D[complex128]
	src    []complex128
	dst    []complex128
}

func newEngine(key ShapeKey) (*Engine, error) {
	e := &Engine{key: key}

	switch key.Dim {
	case 1:
		if key.Width <= 0 {
			return nil, fmt.Errorf("%w: 1-D length %d", ErrUnsupportedShape, key.Width)
		}
		plan, err := algofft.NewPlan64(key.Width)
		if err != nil {
			return nil, fmt.Errorf("%w: 1-D length %d: %w", ErrUnsupportedShape, key.Width, err)
		}
		e.plan = plan
	case 2:
		if key.Width <= 0 || key.Height <= 0 {
			return nil, fmt.Errorf("%w: 2-D extents %dx%d", ErrUnsupportedShape, key.Width, key.Height)
		}
		plan, err := algofft.NewPlan2D64(key.Height, key.Width)
		if err != nil {
			return nil, fmt.Errorf("%w: 2-D extents %dx%d: %w", ErrUnsupportedShape, key.Width, key.Height, err)
		}
		e.plan2d = plan
	default:
		return nil, fmt.Errorf("%w: dimension %d", ErrUnsupportedShape, key.Dim)
	}

	n := key.Width
	if key.Dim == 2 {
		n = key.Width * key.Height
	}
	e.src = make([]complex128, n)
	e.dst = make([]complex128, n)
	return e, nil
}

// Key returns the shape this engine is bound to.
func (e *Engine) Key() ShapeKey {
	return e.key
}

// Transform runs a forward (inverse=false) or inverse (inverse=true)
// complex-to-complex transform in place on a packed buffer. The buffer
// length must be exactly twice the bound shape's element count.
//
// The inverse transform is normalized by 1/N; forward followed by inverse
// reproduces the input with scale factor 1.
func (e *Engine) Transform(data []float64, inverse bool) error {
	n := len(e.src)
	if len(data) != 2*n {
		return fmt.Errorf("%w: shape %v needs %d packed floats, got %d", ErrLengthMismatch, e.key, 2*n, len(data))
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for i := 0; i < n; i++ {
		e.src[i] = complex(data[2*i], data[2*i+1])
	}

	var err error
	switch {
	case e.plan != nil && !inverse:
		err = e.plan.Forward(e.dst, e.src)
	case e.plan != nil:
		err = e.plan.Inverse(e.dst, e.src)
	case !inverse:
		err = e.plan2d.Forward(e.dst, e.src)
	default:
		err = e.plan2d.Inverse(e.dst, e.src)
	}
	if err != nil {
		return fmt.Errorf("fourier: transform %v failed: %w", e.key, err)
	}

	for i := 0; i < n; i++ {
		data[2*i] = real(e.dst[i])
		data[2*i+1] = imag(e.dst[i])
	}
	return nil
}
