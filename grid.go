package algodct

// Grid is a rectangular buffer of real-valued samples, stored row-major.
// The zero value is not usable; construct grids with NewGrid or
// GridFromRows.
type Grid struct {
	h    int
	w    int
	data []float64
}

// NewGrid creates an h x w grid initialized to zero.
func NewGrid(h, w int) (*Grid, error) {
	if h < 1 || w < 1 {
		return nil, ErrInvalidDimension
	}

	return &Grid{h: h, w: w, data: make([]float64, h*w)}, nil
}

// GridFromRows creates a grid from nested row slices. All rows must have the
// same positive length; the data is copied.
func GridFromRows(rows [][]float64) (*Grid, error) {
	if len(rows) < 1 || len(rows[0]) < 1 {
		return nil, ErrInvalidDimension
	}

	h, w := len(rows), len(rows[0])

	g, err := NewGrid(h, w)
	if err != nil {
		return nil, err
	}

	for y, row := range rows {
		if len(row) != w {
			return nil, ErrLengthMismatch
		}

		copy(g.data[y*w:(y+1)*w], row)
	}

	return g, nil
}

// H returns the number of rows.
func (g *Grid) H() int {
	return g.h
}

// W returns the number of columns.
func (g *Grid) W() int {
	return g.w
}

// At returns the sample at row y, column x.
func (g *Grid) At(y, x int) float64 {
	return g.data[y*g.w+x]
}

// Set stores v at row y, column x.
func (g *Grid) Set(y, x int, v float64) {
	g.data[y*g.w+x] = v
}

// Row returns row y as a slice aliasing the grid's storage.
func (g *Grid) Row(y int) []float64 {
	return g.data[y*g.w : (y+1)*g.w]
}

// Data returns the grid's flat row-major storage.
func (g *Grid) Data() []float64 {
	return g.data
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	data := make([]float64, len(g.data))
	copy(data, g.data)

	return &Grid{h: g.h, w: g.w, data: data}
}

// sameShape reports whether g and o have identical dimensions.
func (g *Grid) sameShape(o *Grid) bool {
	return g.h == o.h && g.w == o.w
}
