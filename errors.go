package algodct

import "errors"

// Sentinel errors returned by transform and blur operations.
var (
	// ErrInvalidLength is returned when a 1D transform size is not positive.
	ErrInvalidLength = errors.New("algodct: invalid transform length")

	// ErrInvalidDimension is returned when a grid dimension is not positive.
	ErrInvalidDimension = errors.New("algodct: invalid grid dimension")

	// ErrInvalidAmount is returned when a blur amount is not a positive,
	// finite value.
	ErrInvalidAmount = errors.New("algodct: invalid blur amount")

	// ErrInvalidKind is returned when an unsupported TransformKind is
	// requested.
	ErrInvalidKind = errors.New("algodct: invalid transform kind")

	// ErrInvalidPadding is returned when mirror padding is requested on the
	// cosine path, whose boundaries are already reflective.
	ErrInvalidPadding = errors.New("algodct: mirror padding requires the DFT path")

	// ErrInvalidRange is returned when a clamp range has its bounds out of
	// order or non-finite.
	ErrInvalidRange = errors.New("algodct: invalid clamp range")

	// ErrNilSlice is returned when a nil slice is passed to a transform
	// method.
	ErrNilSlice = errors.New("algodct: nil slice")

	// ErrNilGrid is returned when a nil grid is passed to an operation.
	ErrNilGrid = errors.New("algodct: nil grid")

	// ErrLengthMismatch is returned when input/output slice sizes don't
	// match the plan's expected dimensions.
	ErrLengthMismatch = errors.New("algodct: slice length mismatch")

	// ErrShapeMismatch is returned when a grid's shape does not match the
	// plan, mask, or crop it is used with.
	ErrShapeMismatch = errors.New("algodct: grid shape mismatch")
)
