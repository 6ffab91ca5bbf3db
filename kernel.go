package algodct

import "math"

// Frequency-domain Gaussian masks. Multiplying a grid's transform
// coefficients by the matching mask and inverting is equivalent to
// convolving the grid with a spatial Gaussian whose standard deviation in
// samples equals amount. The DC term is always exactly 1, so the grid mean
// passes through unattenuated.

// GaussianMaskDCT builds the mask for the cosine path. Cosine coefficients
// index frequency from a fixed origin with no wrap, so the mask is a single
// monotonic decay:
//
//	mask[i][j] = exp(-i^2/(2*sh^2)) * exp(-j^2/(2*sw^2))
//
// with sh = h/(pi*amount) and sw = w/(pi*amount).
func GaussianMaskDCT(h, w int, amount float64) (*Grid, error) {
	if h < 1 || w < 1 {
		return nil, ErrInvalidDimension
	}

	if err := checkAmount(amount); err != nil {
		return nil, err
	}

	rows := gaussianDecay(h, float64(h)/(math.Pi*amount))
	cols := gaussianDecay(w, float64(w)/(math.Pi*amount))

	return outerProduct(rows, cols), nil
}

// GaussianMaskDFT builds the mask for the periodic path. Fourier bins near
// both ends of each axis represent low spatial frequencies, so the decay is
// built on the lower half of each axis with sh = h/(2*pi*amount),
// sw = w/(2*pi*amount) and mirrored into the upper half, aligned to the
// period: mask[p] = exp(-d^2/(2*s^2)) with d = min(p, n-p). The alignment
// keeps the mask exactly even in frequency, which is what makes the
// mirror-padded periodic blur agree with the cosine path.
func GaussianMaskDFT(h, w int, amount float64) (*Grid, error) {
	if h < 1 || w < 1 {
		return nil, ErrInvalidDimension
	}

	if err := checkAmount(amount); err != nil {
		return nil, err
	}

	rows := periodicDecay(h, float64(h)/(2*math.Pi*amount))
	cols := periodicDecay(w, float64(w)/(2*math.Pi*amount))

	return outerProduct(rows, cols), nil
}

func checkAmount(amount float64) error {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ErrInvalidAmount
	}

	return nil
}

// gaussianDecay returns exp(-i^2/(2*sigma^2)) for i = 0..n-1.
func gaussianDecay(n int, sigma float64) []float64 {
	factor := -0.5 / (sigma * sigma)

	decay := make([]float64, n)
	for i := range decay {
		x := float64(i)
		decay[i] = math.Exp(factor * x * x)
	}

	return decay
}

// periodicDecay returns the even-in-frequency Gaussian profile for a size-n
// periodic axis: decay at the distance to the nearer end of the period.
func periodicDecay(n int, sigma float64) []float64 {
	factor := -0.5 / (sigma * sigma)

	decay := make([]float64, n)
	for p := 0; p <= n/2; p++ {
		x := float64(p)
		decay[p] = math.Exp(factor * x * x)
	}

	for p := n/2 + 1; p < n; p++ {
		decay[p] = decay[n-p]
	}

	return decay
}

// outerProduct builds the separable 2D mask from per-axis factors.
func outerProduct(rows, cols []float64) *Grid {
	g := &Grid{h: len(rows), w: len(cols), data: make([]float64, len(rows)*len(cols))}

	for y, ry := range rows {
		out := g.Row(y)
		for x, cx := range cols {
			out[x] = ry * cx
		}
	}

	return g
}
