package vec

import "fmt"

// Complex1D is a one-dimensional packed complex vector.
type Complex1D struct {
	length int
	data   []float64
}

// NewComplex1D returns a zero-filled complex vector with n elements.
func NewComplex1D(n int) *Complex1D {
	if n < 0 {
		n = 0
	}
	return &Complex1D{length: n, data: make([]float64, 2*n)}
}

// Complex1DFromSlice wraps an existing packed slice without copying.
// The slice length must be even; each complex element occupies two floats.
func Complex1DFromSlice(s []float64) *Complex1D {
	if len(s)%2 != 0 {
		panic(fmt.Sprintf("vec: packed slice length must be even, got %d", len(s)))
	}
	return &Complex1D{length: len(s) / 2, data: s}
}

// Len returns the number of complex elements.
func (v *Complex1D) Len() int {
	return v.length
}

// Data returns the packed backing slice (re, im interleaved).
func (v *Complex1D) Data() []float64 {
	return v.data
}

// At returns the complex element at index i.
func (v *Complex1D) At(i int) complex128 {
	if i < 0 || i >= v.length {
		panic(fmt.Sprintf("vec: index %d out of range [0,%d)", i, v.length))
	}
	return complex(v.data[2*i], v.data[2*i+1])
}

// Set stores c at index i.
func (v *Complex1D) Set(i int, c complex128) {
	if i < 0 || i >= v.length {
		panic(fmt.Sprintf("vec: index %d out of range [0,%d)", i, v.length))
	}
	v.data[2*i] = real(c)
	v.data[2*i+1] = imag(c)
}

// Copy returns a deep copy of the vector.
func (v *Complex1D) Copy() *Complex1D {
	s := make([]float64, len(v.data))
	copy(s, v.data)
	return &Complex1D{length: v.length, data: s}
}

// Complex2D is a two-dimensional packed complex vector in row-major layout.
// Element (x, y) lives at packed offset 2*(y*width+x).
type Complex2D struct {
	width  int
	height int
	data   []float64
}

// NewComplex2D returns a zero-filled w x h complex vector.
func NewComplex2D(w, h int) *Complex2D {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Complex2D{width: w, height: h, data: make([]float64, 2*w*h)}
}

// Width returns the number of columns.
func (v *Complex2D) Width() int {
	return v.width
}

// Height returns the number of rows.
func (v *Complex2D) Height() int {
	return v.height
}

// Data returns the packed backing slice (re, im interleaved, row-major).
func (v *Complex2D) Data() []float64 {
	return v.data
}

// At returns the complex element at (x, y).
func (v *Complex2D) At(x, y int) complex128 {
	v.check(x, y)
	i := 2 * (y*v.width + x)
	return complex(v.data[i], v.data[i+1])
}

// Set stores c at (x, y).
func (v *Complex2D) Set(x, y int, c complex128) {
	v.check(x, y)
	i := 2 * (y*v.width + x)
	v.data[i] = real(c)
	v.data[i+1] = imag(c)
}

// Copy returns a deep copy of the vector.
func (v *Complex2D) Copy() *Complex2D {
	s := make([]float64, len(v.data))
	copy(s, v.data)
	return &Complex2D{width: v.width, height: v.height, data: s}
}

func (v *Complex2D) check(x, y int) {
	if x < 0 || x >= v.width || y < 0 || y >= v.height {
		panic(fmt.Sprintf("vec: position (%d,%d) out of range %dx%d", x, y, v.width, v.height))
	}
}

// Real2D is a two-dimensional real-valued vector in row-major layout.
type Real2D struct {
	width  int
	height int
	data   []float64
}

// NewReal2D returns a zero-filled w x h real vector.
func NewReal2D(w, h int) *Real2D {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Real2D{width: w, height: h, data: make([]float64, w*h)}
}

// Width returns the number of columns.
func (v *Real2D) Width() int {
	return v.width
}

// Height returns the number of rows.
func (v *Real2D) Height() int {
	return v.height
}

// Data returns the backing slice (row-major).
func (v *Real2D) Data() []float64 {
	return v.data
}

// At returns the element at (x, y).
func (v *Real2D) At(x, y int) float64 {
	v.check(x, y)
	return v.data[y*v.width+x]
}

// Set stores val at (x, y).
func (v *Real2D) Set(x, y int, val float64) {
	v.check(x, y)
	v.data[y*v.width+x] = val
}

// Copy returns a deep copy of the vector.
func (v *Real2D) Copy() *Real2D {
	s := make([]float64, len(v.data))
	copy(s, v.data)
	return &Real2D{width: v.width, height: v.height, data: s}
}

func (v *Real2D) check(x, y int) {
	if x < 0 || x >= v.width || y < 0 || y >= v.height {
		panic(fmt.Sprintf("vec: position (%d,%d) out of range %dx%d", x, y, v.width, v.height))
	}
}
