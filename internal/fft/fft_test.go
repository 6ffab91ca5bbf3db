package fft

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	m "github.com/cwbudde/algo-dct/internal/math"
)

func randomComplex(n int, seed int64) []complex128 {
	rng := rand.New(rand.NewSource(seed))

	v := make([]complex128, n)
	for i := range v {
		v[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}

	return v
}

func assertClose(t *testing.T, got, want []complex128, tol float64) {
	t.Helper()

	for i := range want {
		if cmplx.Abs(got[i]-want[i]) > tol {
			t.Fatalf("element %d: got %v want %v", i, got[i], want[i])
		}
	}
}

// definition computes dst[k] = sum src[n] exp(-2*pi*i*n*k/N) directly from
// math functions, independent of the twiddle table.
func definition(src []complex128) []complex128 {
	n := len(src)

	out := make([]complex128, n)
	for k := range n {
		sum := complex(0, 0)
		for i, v := range src {
			angle := -2 * math.Pi * float64(i) * float64(k) / float64(n)
			sum += v * cmplx.Exp(complex(0, angle))
		}

		out[k] = sum
	}

	return out
}

func TestNaiveDFTMatchesDefinition(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 3, 5, 7, 12} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			src := randomComplex(n, int64(n))
			dst := make([]complex128, n)

			NaiveDFT(dst, src, ComputeTwiddleFactors(n), false)
			assertClose(t, dst, definition(src), 1e-10)
		})
	}
}

func TestRadix2MatchesNaive(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 4, 8, 32, 128} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			src := randomComplex(n, int64(n))
			twiddle := ComputeTwiddleFactors(n)

			want := make([]complex128, n)
			NaiveDFT(want, src, twiddle, false)

			got := make([]complex128, n)
			copy(got, src)
			Radix2(got, twiddle, m.ComputeBitReversalIndices(n), false)

			assertClose(t, got, want, 1e-10)
		})
	}
}

func TestRadix2RoundTrip(t *testing.T) {
	t.Parallel()

	n := 64
	src := randomComplex(n, 8)
	twiddle := ComputeTwiddleFactors(n)
	bitrev := m.ComputeBitReversalIndices(n)

	data := make([]complex128, n)
	copy(data, src)

	Radix2(data, twiddle, bitrev, false)
	Radix2(data, twiddle, bitrev, true)

	// The kernels are unnormalized: the round trip scales by N.
	for i := range data {
		data[i] *= complex(1/float64(n), 0)
	}

	assertClose(t, data, src, 1e-12)
}
