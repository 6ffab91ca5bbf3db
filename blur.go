package algodct

import "gonum.org/v1/gonum/floats"

// TransformKind selects the transform family used by Blur.
type TransformKind int

const (
	// KindDCT blurs through the cosine transform. The cosine basis assumes
	// mirror symmetry at the grid edges, so the blur is a true symmetric
	// convolution with no wrap-around artefact and no padding.
	KindDCT TransformKind = iota

	// KindDFT blurs through the Fourier transform, whose periodic boundary
	// assumption leaks intensity across opposite edges. Kept as a
	// comparison baseline; combine with MirrorPad to suppress the artefact
	// at 4x the memory and compute.
	KindDFT
)

// String returns the kind's name.
func (k TransformKind) String() string {
	switch k {
	case KindDCT:
		return "DCT"
	case KindDFT:
		return "DFT"
	default:
		return "unknown"
	}
}

// Parameters configures a blur operation.
type Parameters struct {
	// Amount is the blur strength: the standard deviation, in samples, of
	// the equivalent spatial Gaussian. Must be positive and finite.
	Amount float64

	// Kind selects the transform family. The zero value is KindDCT.
	Kind TransformKind

	// MirrorPad reflects the grid to 2H x 2W before a KindDFT blur and
	// crops afterwards. Invalid with KindDCT, whose boundaries are already
	// reflective.
	MirrorPad bool

	// Workers is the per-pass goroutine count for the cosine path.
	// 0 means sequential; negative selects GOMAXPROCS.
	Workers int
}

// Blurrer holds the plans and mask for repeated same-shape blurs.
// Construct with NewBlurrer; a Blurrer must not be used concurrently.
type Blurrer struct {
	h, w   int
	params Parameters
	mask   *Grid

	cosine   *Plan2D    // KindDCT
	periodic *dftPlan2D // KindDFT; sized 2h x 2w when MirrorPad is set
}

// NewBlurrer builds the transform plans and Gaussian mask for h x w grids.
func NewBlurrer(h, w int, p Parameters) (*Blurrer, error) {
	if h < 1 || w < 1 {
		return nil, ErrInvalidDimension
	}

	if err := checkAmount(p.Amount); err != nil {
		return nil, err
	}

	b := &Blurrer{h: h, w: w, params: p}

	switch p.Kind {
	case KindDCT:
		if p.MirrorPad {
			return nil, ErrInvalidPadding
		}

		workers := 1
		if p.Workers != 0 {
			workers = p.Workers
		}

		plan, err := NewPlan2D(h, w, WithWorkers(workers))
		if err != nil {
			return nil, err
		}

		mask, err := GaussianMaskDCT(h, w, p.Amount)
		if err != nil {
			return nil, err
		}

		b.cosine = plan
		b.mask = mask

	case KindDFT:
		ph, pw := h, w
		if p.MirrorPad {
			ph, pw = 2*h, 2*w
		}

		mask, err := GaussianMaskDFT(ph, pw, p.Amount)
		if err != nil {
			return nil, err
		}

		b.periodic = newDFTPlan2D(ph, pw)
		b.mask = mask

	default:
		return nil, ErrInvalidKind
	}

	return b, nil
}

// Blur returns the blurred copy of g. The input grid is never mutated.
func (b *Blurrer) Blur(g *Grid) (*Grid, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	if g.h != b.h || g.w != b.w {
		return nil, ErrShapeMismatch
	}

	if b.params.Kind == KindDCT {
		return b.blurCosine(g)
	}

	return b.blurPeriodic(g)
}

func (b *Blurrer) blurCosine(g *Grid) (*Grid, error) {
	out := g.Clone()

	if err := b.cosine.Forward(out, out); err != nil {
		return nil, err
	}

	for y := range b.h {
		floats.Mul(out.Row(y), b.mask.Row(y))
	}

	if err := b.cosine.Inverse(out, out); err != nil {
		return nil, err
	}

	return out, nil
}

func (b *Blurrer) blurPeriodic(g *Grid) (*Grid, error) {
	if !b.params.MirrorPad {
		return blurPeriodic(g, b.mask, b.periodic), nil
	}

	padded, err := Mirror(g)
	if err != nil {
		return nil, err
	}

	blurred := blurPeriodic(padded, b.mask, b.periodic)

	return CropTopLeft(blurred, b.h, b.w)
}

// Blur is the one-shot form: it builds a Blurrer for g's shape and applies
// it. Callers blurring many same-shape grids should hold a Blurrer instead.
func Blur(g *Grid, p Parameters) (*Grid, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	b, err := NewBlurrer(g.h, g.w, p)
	if err != nil {
		return nil, err
	}

	return b.Blur(g)
}
