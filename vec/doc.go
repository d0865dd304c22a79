// Package vec provides packed vector containers for frequency-domain image data.
//
// Complex vectors store interleaved real/imaginary float64 pairs in a single
// flat slice (data[2*i] = re, data[2*i+1] = im). This packing matches what the
// transform engine consumes, so transforms and spectral kernels can operate on
// the backing slice directly via Data() without copying.
//
// Containers are plain data: they carry no synchronization. Callers that share
// a vector across goroutines must guarantee exclusive access for the duration
// of any mutating call.
package vec
