package algodct

import (
	"math"

	"github.com/cwbudde/algo-dct/internal/dct"
	m "github.com/cwbudde/algo-dct/internal/math"
	"gonum.org/v1/gonum/floats"
)

// Plan computes the orthonormal 1D cosine transform pair for a fixed size:
// Forward is the DCT-II and Inverse the DCT-III, scaled so that
// Inverse(Forward(x)) == x up to rounding with no caller-side factor.
// Coefficient 0 is the input mean scaled by sqrt(N).
//
// The kernel is resolved when the plan is built: power-of-two sizes use the
// O(N log N) Lee split, all other sizes a precomputed cosine table. A Plan
// carries scratch storage and must not be shared between goroutines.
type Plan struct {
	n       int
	radix2  bool
	table   []float64 // nil on the radix-2 path
	scratch []float64

	scale0 float64 // sqrt(1/N), applied to the DC coefficient
	scaleK float64 // sqrt(2/N), applied to all other coefficients
}

// NewPlan creates a transform plan for sequences of length n.
// n must be at least 1; a size-1 transform is the identity.
func NewPlan(n int) (*Plan, error) {
	if n < 1 {
		return nil, ErrInvalidLength
	}

	p := &Plan{
		n:       n,
		radix2:  n > 1 && m.IsPowerOf2(n),
		scratch: make([]float64, n),
		scale0:  math.Sqrt(1 / float64(n)),
		scaleK:  math.Sqrt(2 / float64(n)),
	}

	if !p.radix2 {
		p.table = dct.CosineTable(n)
	}

	return p, nil
}

// Len returns the transform size.
func (p *Plan) Len() int {
	return p.n
}

// Forward computes the orthonormal DCT-II of src into dst.
// dst and src must both have length Len; they may alias.
func (p *Plan) Forward(dst, src []float64) error {
	if err := p.check(dst, src); err != nil {
		return err
	}

	p.forward(dst, src)

	return nil
}

// Inverse computes the orthonormal DCT-III of src into dst, undoing Forward.
// dst and src must both have length Len; they may alias.
func (p *Plan) Inverse(dst, src []float64) error {
	if err := p.check(dst, src); err != nil {
		return err
	}

	p.inverse(dst, src)

	return nil
}

func (p *Plan) check(dst, src []float64) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if len(dst) != p.n || len(src) != p.n {
		return ErrLengthMismatch
	}

	return nil
}

// forward is the unvalidated kernel behind Forward, shared with Plan2D.
func (p *Plan) forward(dst, src []float64) {
	if p.radix2 {
		copy(dst, src)
		dct.TransformRadix2(dst, p.scratch)
	} else {
		dct.TransformDirect(p.scratch, src, p.table)
		copy(dst, p.scratch)
	}

	dst[0] *= p.scale0
	floats.Scale(p.scaleK, dst[1:])
}

// inverse is the unvalidated kernel behind Inverse, shared with Plan2D.
func (p *Plan) inverse(dst, src []float64) {
	if p.radix2 {
		// Pre-scale into the raw convention; the kernel halves the DC term.
		dst[0] = src[0] * 2 * p.scale0
		for i := 1; i < p.n; i++ {
			dst[i] = src[i] * p.scaleK
		}

		dct.InverseRadix2(dst, p.scratch)

		return
	}

	p.scratch[0] = src[0] * 2 * p.scale0
	for i := 1; i < p.n; i++ {
		p.scratch[i] = src[i] * p.scaleK
	}

	dct.InverseDirect(dst, p.scratch, p.table)
}

// clone returns a plan sharing the read-only cosine table but owning fresh
// scratch, for use by a different goroutine.
func (p *Plan) clone() *Plan {
	c := *p
	c.scratch = make([]float64, p.n)

	return &c
}
