// Package fastmath provides fast trigonometric approximations for
// phase-ramp generation in frequency-domain shift operations.
//
// These approximations trade a small amount of accuracy for throughput,
// which matters when a phase is evaluated once per pixel of a large image.
//
// # Accuracy Characteristics
//
// Sin, Cos: full-period lookup table with linear interpolation,
// absolute error < 2e-6 over all finite arguments.
//
// For applications requiring IEEE 754 precision, use the standard library
// math package instead; the shift operators expose that choice through
// their fast parameter.
package fastmath
