package fourier

import "errors"

// Errors returned by transform and spectral operations.
var (
	// ErrUnsupportedShape is returned when the registry is asked for an
	// engine with a dimensionality other than 1 or 2, or with extents the
	// underlying FFT plan rejects.
	ErrUnsupportedShape = errors.New("fourier: unsupported transform shape")

	// ErrSizeMismatch is returned when an output vector's dimensions do not
	// match the input's.
	ErrSizeMismatch = errors.New("fourier: vector size mismatch")

	// ErrNonSquare is returned when a shift multiply is invoked on a vector
	// whose width and height differ.
	ErrNonSquare = errors.New("fourier: vector is not square")

	// ErrLengthMismatch is returned when a packed buffer's length does not
	// match the engine's bound shape.
	ErrLengthMismatch = errors.New("fourier: packed buffer length mismatch")
)
