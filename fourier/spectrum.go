package fourier

import (
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/rturcotte861/fairSIM/vec"
)

// logRange bounds the displayed dynamic range of a power spectrum to 30
// natural-log units (roughly 13 decades), so that near-zero coefficients do
// not wash out the scale.
const logRange = 30

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im, mag []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 3 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n : 2*n], buf.data[2*n : need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// PowerSpectrum renders a complex spectrum into a log-scaled magnitude image
// for display. Pixel magnitudes are log-scaled against a window clipped to
// 30 natural-log units; pixels whose scaled magnitude is NaN or negative are
// clamped to 0, so degenerate inputs (zeros, negative coefficients) never
// propagate NaN into the output.
//
// With swapQuadrants set, each output position is quadrant-swapped so the
// zero-frequency component lands at the image center.
//
// The scaling window is computed over the raw interleaved re/im values of
// the input, not over magnitudes. This matches the original fairSIM
// implementation and biases the window toward the raw coefficient range.
//
// The input is never mutated; the output is fully overwritten on success and
// untouched when the dimensions mismatch.
func PowerSpectrum(in *vec.Complex2D, out *vec.Real2D, swapQuadrants bool) error {
	w := in.Width()
	h := in.Height()
	if out.Width() != w || out.Height() != h {
		return fmt.Errorf("%w: input %dx%d, output %dx%d",
			ErrSizeMismatch, w, h, out.Width(), out.Height())
	}

	src := in.Data()
	dst := out.Data()

	min := math.Inf(1)
	max := math.Inf(-1)
	for _, v := range src {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	max = mathLog(max)
	min = mathLog(min)
	if math.IsNaN(min) || max-min > logRange {
		min = max - logRange
	}
	span := max - min

	n := w * h
	re, im, mags, buf := getScratch(n)
	defer putScratch(buf)

	for i := 0; i < n; i++ {
		re[i] = src[2*i]
		im[i] = src[2*i+1]
	}
	vecmath.Magnitude(mags, re, im)

	// TODO: parallelize this pass by row like the shift operators.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r := (mathLog(mags[y*w+x]) - min) / span
			if math.IsNaN(r) || r < 0 {
				r = 0
			}

			xo, yo := x, y
			if swapQuadrants {
				if x < w/2 {
					xo = x + w/2
				} else {
					xo = x - w/2
				}
				if y < h/2 {
					yo = y + h/2
				} else {
					yo = y - h/2
				}
			}
			dst[yo*w+xo] = r
		}
	}

	return nil
}

// PowerSpectrumDisplay renders the conventional zero-frequency-centered
// power spectrum; shorthand for PowerSpectrum with swapQuadrants set.
func PowerSpectrumDisplay(in *vec.Complex2D, out *vec.Real2D) error {
	return PowerSpectrum(in, out, true)
}

// SwapQuadrants exchanges the four quadrants of a complex vector in place,
// pairing top-left with bottom-right and top-right with bottom-left. With
// odd extents only the leading 2*(n/2) rows and columns take part; the last
// row/column stays in place (integer truncation, inherited behavior).
// Applying the swap twice restores the original.
func SwapQuadrants(v *vec.Complex2D) {
	w := v.Width()
	h := v.Height()
	for y := 0; y < h/2; y++ {
		for x := 0; x < w/2; x++ {
			// quadrant 1 <-> 3
			tmp := v.At(x, y)
			v.Set(x, y, v.At(x+w/2, y+h/2))
			v.Set(x+w/2, y+h/2, tmp)
			// quadrant 2 <-> 4
			tmp = v.At(x, y+h/2)
			v.Set(x, y+h/2, v.At(x+w/2, y))
			v.Set(x+w/2, y, tmp)
		}
	}
}

// SwapQuadrantsReal is SwapQuadrants for real-valued vectors.
func SwapQuadrantsReal(v *vec.Real2D) {
	w := v.Width()
	h := v.Height()
	for y := 0; y < h/2; y++ {
		for x := 0; x < w/2; x++ {
			tmp := v.At(x, y)
			v.Set(x, y, v.At(x+w/2, y+h/2))
			v.Set(x+w/2, y+h/2, tmp)

			tmp = v.At(x, y+h/2)
			v.Set(x, y+h/2, v.At(x+w/2, y))
			v.Set(x+w/2, y, tmp)
		}
	}
}
