// Package fft provides the complex-valued Fourier kernels backing the
// periodic-transform comparison path. The forward kernels are unnormalized;
// the inverse kernels are unnormalized too, and the plan layer applies the
// 1/N factor exactly once per axis.
package fft

import "math"

// ComputeTwiddleFactors returns the precomputed twiddle factors (roots of
// unity) for a size-n transform: W_n^k = exp(-2*pi*i*k/n) for k = 0..n-1.
func ComputeTwiddleFactors(n int) []complex128 {
	if n <= 0 {
		return nil
	}

	twiddle := make([]complex128, n)
	for k := range n {
		angle := -2.0 * math.Pi * float64(k) / float64(n)
		twiddle[k] = complex(math.Cos(angle), math.Sin(angle))
	}

	return twiddle
}

// Radix2 computes the in-place decimation-in-time transform of data.
// len(data) must be a power of two matching len(twiddle) and len(bitrev).
// With inverse set, the conjugated twiddles are used; no scaling is applied.
func Radix2(data, twiddle []complex128, bitrev []int, inverse bool) {
	n := len(data)

	for i, j := range bitrev {
		if i < j {
			data[i], data[j] = data[j], data[i]
		}
	}

	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		step := n / size

		for start := 0; start < n; start += size {
			for k := range half {
				w := twiddle[k*step]
				if inverse {
					w = complex(real(w), -imag(w))
				}

				a := data[start+k]
				b := data[start+k+half] * w
				data[start+k] = a + b
				data[start+k+half] = a - b
			}
		}
	}
}

// NaiveDFT computes the unnormalized discrete Fourier transform of src into
// dst by direct summation: dst[k] = sum src[n] * W_N^(n*k). dst and src must
// not alias. Used for sizes without a radix-2 factorization.
func NaiveDFT(dst, src, twiddle []complex128, inverse bool) {
	n := len(src)
	for k := range n {
		sum := complex(0, 0)

		for i, v := range src {
			w := twiddle[(i*k)%n]
			if inverse {
				w = complex(real(w), -imag(w))
			}

			sum += v * w
		}

		dst[k] = sum
	}
}
