package algodct

import (
	"math"
	"math/rand"
	"testing"
)

// Shared test helper functions used across multiple test files.

func assertApproxTolf(t *testing.T, got, want, tol float64, format string, args ...any) {
	t.Helper()

	if math.Abs(got-want) > tol {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, math.Abs(got-want))...)
	}
}

func assertSliceClose(t *testing.T, got, want []float64, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}

	for i := range want {
		assertApproxTolf(t, got[i], want[i], tol, "element %d", i)
	}
}

func assertGridClose(t *testing.T, got, want *Grid, tol float64) {
	t.Helper()

	if got.H() != want.H() || got.W() != want.W() {
		t.Fatalf("shape mismatch: got %dx%d want %dx%d", got.H(), got.W(), want.H(), want.W())
	}

	assertSliceClose(t, got.Data(), want.Data(), tol)
}

func randomSlice(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))

	s := make([]float64, n)
	for i := range s {
		s[i] = rng.Float64()*512 - 256
	}

	return s
}

func randomGrid(t *testing.T, h, w int, seed int64) *Grid {
	t.Helper()

	rng := rand.New(rand.NewSource(seed))

	g, err := NewGrid(h, w)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d) returned error: %v", h, w, err)
	}

	for i, data := 0, g.Data(); i < len(data); i++ {
		data[i] = rng.Float64() * 255
	}

	return g
}

func constantGrid(t *testing.T, h, w int, value float64) *Grid {
	t.Helper()

	g, err := NewGrid(h, w)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d) returned error: %v", h, w, err)
	}

	for i, data := 0, g.Data(); i < len(data); i++ {
		data[i] = value
	}

	return g
}

// naiveForward1D is the textbook orthonormal DCT-II, the reference the plan
// kernels are checked against.
func naiveForward1D(x []float64) []float64 {
	n := len(x)
	out := make([]float64, n)
	scale0 := math.Sqrt(1 / float64(n))
	scaleK := math.Sqrt(2 / float64(n))

	for k := range n {
		sum := 0.0
		for i, v := range x {
			sum += v * math.Cos(math.Pi*float64(k)*float64(2*i+1)/(2*float64(n)))
		}

		scale := scaleK
		if k == 0 {
			scale = scale0
		}

		out[k] = scale * sum
	}

	return out
}

// naiveInverse1D is the textbook orthonormal DCT-III.
func naiveInverse1D(c []float64) []float64 {
	n := len(c)
	out := make([]float64, n)
	scale0 := math.Sqrt(1 / float64(n))
	scaleK := math.Sqrt(2 / float64(n))

	for i := range n {
		sum := scale0 * c[0]
		for k := 1; k < n; k++ {
			sum += scaleK * c[k] * math.Cos(math.Pi*float64(k)*float64(2*i+1)/(2*float64(n)))
		}

		out[i] = sum
	}

	return out
}
