package algodct

import "math"

// Blur returns raw float64 samples and never rescales them; mapping back to
// an integer sample range is an explicit, separate step.

// Clamp returns a copy of g with every sample limited to [lo, hi].
// NaN samples are left unchanged.
func Clamp(g *Grid, lo, hi float64) (*Grid, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	if lo > hi || math.IsNaN(lo) || math.IsNaN(hi) {
		return nil, ErrInvalidRange
	}

	out := g.Clone()
	for i, v := range out.data {
		switch {
		case v < lo:
			out.data[i] = lo
		case v > hi:
			out.data[i] = hi
		}
	}

	return out, nil
}

// Quantize8 rounds every sample to the nearest integer and clamps it to
// [0, 255], returning the row-major 8-bit result.
func Quantize8(g *Grid) ([]uint8, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	out := make([]uint8, len(g.data))
	for i, v := range g.data {
		r := math.Round(v)

		switch {
		case r < 0 || math.IsNaN(r):
			out[i] = 0
		case r > 255:
			out[i] = 255
		default:
			out[i] = uint8(r)
		}
	}

	return out, nil
}
