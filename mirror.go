package algodct

// Mirror reflects g across both of its far edges, returning a 2H x 2W grid:
// the top-left quadrant is g, the top-right is g flipped along columns, the
// bottom-left is g flipped along rows, and the bottom-right is flipped along
// both. The result is seamlessly symmetric at the original edges, so the
// periodic extension a Fourier transform implies coincides with a true
// reflection instead of a discontinuity.
func Mirror(g *Grid) (*Grid, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	h, w := g.h, g.w
	out := &Grid{h: 2 * h, w: 2 * w, data: make([]float64, 4*h*w)}

	for y := range h {
		src := g.Row(y)
		top := out.Row(y)
		bottom := out.Row(2*h - 1 - y)

		for x, v := range src {
			top[x] = v
			top[2*w-1-x] = v
			bottom[x] = v
			bottom[2*w-1-x] = v
		}
	}

	return out, nil
}

// CropTopLeft returns the top-left h x w quadrant of g, undoing Mirror
// after processing.
func CropTopLeft(g *Grid, h, w int) (*Grid, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	if h < 1 || w < 1 {
		return nil, ErrInvalidDimension
	}

	if h > g.h || w > g.w {
		return nil, ErrShapeMismatch
	}

	out := &Grid{h: h, w: w, data: make([]float64, h*w)}
	for y := range h {
		copy(out.Row(y), g.Row(y)[:w])
	}

	return out, nil
}
