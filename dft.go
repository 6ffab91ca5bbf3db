package algodct

import (
	"github.com/cwbudde/algo-dct/internal/fft"
	m "github.com/cwbudde/algo-dct/internal/math"
)

// The periodic comparison path. These plans are deliberately unexported:
// the package's transform API is the cosine pair, and the Fourier path
// exists only so Blur can demonstrate (and tests can measure) the
// wrap-around artefact the cosine path avoids.

// dftPlan computes the 1D complex Fourier transform for a fixed size.
// Forward is unnormalized; inverse applies the 1/N factor, so the pair
// round-trips with no caller-side scaling.
type dftPlan struct {
	n       int
	radix2  bool
	twiddle []complex128
	bitrev  []int
	scratch []complex128
}

func newDFTPlan(n int) *dftPlan {
	p := &dftPlan{
		n:       n,
		radix2:  m.IsPowerOf2(n),
		twiddle: fft.ComputeTwiddleFactors(n),
	}

	if p.radix2 {
		p.bitrev = m.ComputeBitReversalIndices(n)
	} else {
		p.scratch = make([]complex128, n)
	}

	return p
}

// transform runs the forward or inverse kernel on data in place.
func (p *dftPlan) transform(data []complex128, inverse bool) {
	if p.radix2 {
		fft.Radix2(data, p.twiddle, p.bitrev, inverse)
	} else {
		fft.NaiveDFT(p.scratch, data, p.twiddle, inverse)
		copy(data, p.scratch)
	}

	if inverse {
		scale := complex(1/float64(p.n), 0)
		for i := range data {
			data[i] *= scale
		}
	}
}

// dftPlan2D applies the 1D plan along both axes of a flat h x w complex
// grid, sequentially; the comparison baseline is not parallelized.
type dftPlan2D struct {
	h, w int
	row  *dftPlan
	col  *dftPlan
	buf  []complex128
}

func newDFTPlan2D(h, w int) *dftPlan2D {
	return &dftPlan2D{
		h:   h,
		w:   w,
		row: newDFTPlan(w),
		col: newDFTPlan(h),
		buf: make([]complex128, h),
	}
}

func (p *dftPlan2D) transform(data []complex128, inverse bool) {
	for y := 0; y < p.h; y++ {
		p.row.transform(data[y*p.w:(y+1)*p.w], inverse)
	}

	for x := 0; x < p.w; x++ {
		for y := 0; y < p.h; y++ {
			p.buf[y] = data[y*p.w+x]
		}

		p.col.transform(p.buf, inverse)

		for y := 0; y < p.h; y++ {
			data[y*p.w+x] = p.buf[y]
		}
	}
}

// blurPeriodic blurs g through the Fourier path: forward transform,
// multiply by the real mask, inverse transform, take the real part.
func blurPeriodic(g, mask *Grid, plan *dftPlan2D) *Grid {
	data := make([]complex128, len(g.data))
	for i, v := range g.data {
		data[i] = complex(v, 0)
	}

	plan.transform(data, false)

	for i, mv := range mask.data {
		data[i] *= complex(mv, 0)
	}

	plan.transform(data, true)

	out := &Grid{h: g.h, w: g.w, data: make([]float64, len(g.data))}
	for i, v := range data {
		out.data[i] = real(v)
	}

	return out
}
