// Package dct provides the low-level 1D cosine-transform kernels used by the
// public plan types. All kernels operate on the unnormalized transform pair
//
//	forward:  X[k] = sum_{i=0}^{N-1} x[i] * cos(pi*k*(2i+1)/(2N))
//	inverse:  x[i] = X[0]/2 + sum_{k=1}^{N-1} X[k] * cos(pi*k*(2i+1)/(2N))
//
// so that inverse(forward(x)) == (N/2)*x. Normalization to the orthonormal
// convention is applied once, by the plan layer, never here.
package dct

import "math"

// CosineTable returns the n x n cosine basis table for a size-n transform,
// laid out row-major: table[k*n+i] = cos(pi*k*(2i+1)/(2n)).
func CosineTable(n int) []float64 {
	if n <= 0 {
		return nil
	}

	table := make([]float64, n*n)
	for k := range n {
		for i := range n {
			table[k*n+i] = math.Cos(math.Pi * float64(k) * float64(2*i+1) / (2 * float64(n)))
		}
	}

	return table
}

// TransformDirect computes the unnormalized forward transform of src into dst
// using a precomputed cosine table. dst and src must not alias.
func TransformDirect(dst, src, table []float64) {
	n := len(src)
	for k := range n {
		row := table[k*n : (k+1)*n]
		sum := 0.0

		for i, v := range src {
			sum += v * row[i]
		}

		dst[k] = sum
	}
}

// InverseDirect computes the unnormalized inverse transform of src into dst
// using a precomputed cosine table. dst and src must not alias.
func InverseDirect(dst, src, table []float64) {
	n := len(src)
	dc := src[0] / 2

	for i := range n {
		sum := dc
		for k := 1; k < n; k++ {
			sum += src[k] * table[k*n+i]
		}

		dst[i] = sum
	}
}

// TransformRadix2 computes the unnormalized forward transform of vec in place
// using the Lee power-of-two split. len(vec) must be a power of two and
// scratch must be at least as long as vec.
func TransformRadix2(vec, scratch []float64) {
	n := len(vec)
	if n == 1 {
		return
	}

	half := n / 2
	for i := range half {
		x, y := vec[i], vec[n-1-i]
		scratch[i] = x + y
		scratch[i+half] = (x - y) / (2 * math.Cos((float64(i)+0.5)*math.Pi/float64(n)))
	}

	TransformRadix2(scratch[:half], vec)
	TransformRadix2(scratch[half:n], vec)

	for i := range half - 1 {
		vec[2*i] = scratch[i]
		vec[2*i+1] = scratch[i+half] + scratch[i+half+1]
	}

	vec[n-2] = scratch[half-1]
	vec[n-1] = scratch[n-1]
}

// InverseRadix2 computes the unnormalized inverse transform of vec in place
// using the Lee power-of-two split. len(vec) must be a power of two and
// scratch must be at least as long as vec.
func InverseRadix2(vec, scratch []float64) {
	vec[0] /= 2
	inverseRadix2(vec, scratch)
}

func inverseRadix2(vec, scratch []float64) {
	n := len(vec)
	if n == 1 {
		return
	}

	half := n / 2
	scratch[0] = vec[0]
	scratch[half] = vec[1]

	for i := 1; i < half; i++ {
		scratch[i] = vec[2*i]
		scratch[i+half] = vec[2*i-1] + vec[2*i+1]
	}

	inverseRadix2(scratch[:half], vec)
	inverseRadix2(scratch[half:n], vec)

	for i := range half {
		x := scratch[i]
		y := scratch[i+half] / (2 * math.Cos((float64(i)+0.5)*math.Pi/float64(n)))
		vec[i] = x + y
		vec[n-1-i] = x - y
	}
}
