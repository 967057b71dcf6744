package matrix

import "errors"

// Sentinel errors returned by the matrix package. Callers match them with
// errors.Is; wrapped context never hides the sentinel.
var (
	// ErrShape is returned when requested dimensions are invalid:
	// more than 3 axes or a negative size.
	ErrShape = errors.New("matrix: invalid shape")

	// ErrShapeMismatch is returned when seed data disagrees with the declared
	// dimensions, or when same-rank operands differ in some axis.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrDimensionality is returned when an operation combines operands of
	// incompatible ranks. No broadcasting rule is defined.
	ErrDimensionality = errors.New("matrix: incompatible dimensionality")

	// ErrIndexOutOfRange is returned by element and row accessors when an
	// index falls outside the valid bounds.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrDivisionByZero is returned by Div when any divisor element is the
	// zero value of T. The policy applies uniformly to integer and float
	// element kinds; Div never produces Inf or NaN.
	ErrDivisionByZero = errors.New("matrix: division by zero")

	// ErrEmptyMatrix is returned by First on a matrix with zero elements,
	// including the default uninitialized matrix.
	ErrEmptyMatrix = errors.New("matrix: empty matrix")
)
