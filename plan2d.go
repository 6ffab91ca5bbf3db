package algodct

import (
	"runtime"
	"sync"
)

// Plan2D computes the separable 2D cosine transform of a fixed-shape grid:
// the 1D plan applied along every row, then along every column. Because the
// basis is separable the two pass orders agree; Forward runs rows first and
// Inverse undoes the passes in the opposite order.
//
// Rows within a pass are independent, so a plan built WithWorkers splits
// each pass across goroutines with a barrier between the row and column
// passes. A Plan2D must not be used from multiple goroutines at once.
type Plan2D struct {
	h, w    int
	workers int

	// One 1D plan (and column buffer) per worker; plans share tables but
	// own their scratch.
	row []*Plan
	col []*Plan
	buf [][]float64
}

// Plan2DOption configures a Plan2D at construction.
type Plan2DOption func(*Plan2D)

// WithWorkers sets the number of goroutines used per transform pass.
// n < 1 selects GOMAXPROCS. The default is 1 (sequential).
func WithWorkers(n int) Plan2DOption {
	return func(p *Plan2D) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}

		p.workers = n
	}
}

// NewPlan2D creates a 2D transform plan for h x w grids.
func NewPlan2D(h, w int, opts ...Plan2DOption) (*Plan2D, error) {
	if h < 1 || w < 1 {
		return nil, ErrInvalidDimension
	}

	p := &Plan2D{h: h, w: w, workers: 1}
	for _, opt := range opts {
		opt(p)
	}

	if p.workers > h && p.workers > w {
		p.workers = max(h, w)
	}

	rowPlan, err := NewPlan(w)
	if err != nil {
		return nil, err
	}

	colPlan, err := NewPlan(h)
	if err != nil {
		return nil, err
	}

	p.row = make([]*Plan, p.workers)
	p.col = make([]*Plan, p.workers)
	p.buf = make([][]float64, p.workers)
	p.row[0], p.col[0] = rowPlan, colPlan
	p.buf[0] = make([]float64, h)

	for i := 1; i < p.workers; i++ {
		p.row[i] = rowPlan.clone()
		p.col[i] = colPlan.clone()
		p.buf[i] = make([]float64, h)
	}

	return p, nil
}

// H returns the plan's row count.
func (p *Plan2D) H() int {
	return p.h
}

// W returns the plan's column count.
func (p *Plan2D) W() int {
	return p.w
}

// Forward computes the orthonormal 2D DCT-II of src into dst.
// Both grids must be h x w; dst and src may be the same grid.
func (p *Plan2D) Forward(dst, src *Grid) error {
	if err := p.check(dst, src); err != nil {
		return err
	}

	if dst != src {
		copy(dst.data, src.data)
	}

	p.rowPass(dst, true)
	p.colPass(dst, true)

	return nil
}

// Inverse computes the orthonormal 2D DCT-III of src into dst, undoing
// Forward. Both grids must be h x w; dst and src may be the same grid.
func (p *Plan2D) Inverse(dst, src *Grid) error {
	if err := p.check(dst, src); err != nil {
		return err
	}

	if dst != src {
		copy(dst.data, src.data)
	}

	p.colPass(dst, false)
	p.rowPass(dst, false)

	return nil
}

func (p *Plan2D) check(dst, src *Grid) error {
	if dst == nil || src == nil {
		return ErrNilGrid
	}

	if dst.h != p.h || dst.w != p.w || src.h != p.h || src.w != p.w {
		return ErrShapeMismatch
	}

	return nil
}

// rowPass transforms every row of g in place.
func (p *Plan2D) rowPass(g *Grid, forward bool) {
	p.parallel(p.h, func(worker, lo, hi int) {
		plan := p.row[worker]
		for y := lo; y < hi; y++ {
			row := g.Row(y)
			if forward {
				plan.forward(row, row)
			} else {
				plan.inverse(row, row)
			}
		}
	})
}

// colPass transforms every column of g in place, gathering each column into
// a worker-local buffer.
func (p *Plan2D) colPass(g *Grid, forward bool) {
	p.parallel(p.w, func(worker, lo, hi int) {
		plan := p.col[worker]
		buf := p.buf[worker]

		for x := lo; x < hi; x++ {
			for y := 0; y < p.h; y++ {
				buf[y] = g.data[y*p.w+x]
			}

			if forward {
				plan.forward(buf, buf)
			} else {
				plan.inverse(buf, buf)
			}

			for y := 0; y < p.h; y++ {
				g.data[y*p.w+x] = buf[y]
			}
		}
	})
}

// parallel splits [0, n) into contiguous chunks, one per worker, and waits
// for all of them.
func (p *Plan2D) parallel(n int, fn func(worker, lo, hi int)) {
	if p.workers == 1 || n == 1 {
		fn(0, 0, n)
		return
	}

	workers := min(p.workers, n)
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for i := range workers {
		lo := i * chunk
		hi := min(lo+chunk, n)

		if lo >= hi {
			break
		}

		wg.Add(1)

		go func(worker, lo, hi int) {
			defer wg.Done()
			fn(worker, lo, hi)
		}(i, lo, hi)
	}

	wg.Wait()
}
