// Package fourier provides the frequency-domain primitives of the
// reconstruction pipeline: cached forward/inverse FFTs over packed complex
// vectors, power-spectrum rendering for display, and Fourier-shift-theorem
// phase ramps.
//
// # Transform dispatch
//
// FFT plans are expensive to build and bound to one shape, so a [Registry]
// memoizes one [Engine] per distinct shape and hands transforms to it:
//
//	reg := fourier.NewRegistry()
//	err := reg.FFT2D(img, false) // forward, in place
//	err = reg.FFT2D(img, true)   // inverse, in place
//
// The registry is safe for concurrent use; resolving the same shape from
// many goroutines constructs exactly one engine. The inverse transform is
// normalized by 1/N, so a forward/inverse round trip reproduces the input
// with scale factor 1.
//
// # Spectral display
//
// [PowerSpectrum] converts a complex spectrum into a log-scaled magnitude
// image clipped to a 30 natural-log-unit window, optionally quadrant-swapped
// so the zero-frequency component sits at the image center.
//
// # Shift theorem
//
// [ShiftVector] and [TimesShiftVector] build and apply linear phase ramps
// that translate the corresponding spatial-domain image by (kx, ky). Both
// parallelize over image rows.
package fourier
