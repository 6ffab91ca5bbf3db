// Package algodct implements edge-artefact-free Gaussian blurring of 2D
// grids through the discrete cosine transform.
//
// Frequency-domain convolution under the Fourier transform assumes the
// signal is periodic, so blurring an image whose opposite edges differ
// leaks intensity across the boundary. The cosine basis instead assumes
// even (mirror) symmetry at the boundaries, which is exactly the extension
// a symmetric convolution wants. Blur with TransformKind KindDCT performs
// that symmetric convolution directly, with no padding; KindDFT is kept as
// a comparison baseline, optionally combined with explicit mirror padding
// at 4x the memory and compute.
//
// # Normalization
//
// Every cosine transform in this package uses the orthonormal ("ortho")
// convention: Plan.Inverse(Plan.Forward(x)) == x up to rounding, with no
// caller-side scaling, and coefficient 0 carries the mean scaled by
// sqrt(N). This is the only convention in the package; no other scale
// factor appears anywhere in the blur pipeline.
package algodct
