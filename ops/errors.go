package ops

import "errors"

var (
	// ErrNonSquare is returned when a square matrix is required.
	ErrNonSquare = errors.New("ops: matrix is not square")

	// ErrSingular is returned when a zero pivot is encountered during
	// inversion.
	ErrSingular = errors.New("ops: matrix is singular")

	// ErrNotSymmetric is returned when the eigensolver input is not
	// symmetric within tolerance.
	ErrNotSymmetric = errors.New("ops: matrix is not symmetric")

	// ErrNoConvergence is returned when the eigensolver does not converge
	// within the sweep budget.
	ErrNoConvergence = errors.New("ops: eigen decomposition did not converge")

	// ErrKernelSize is returned when a convolution kernel is larger than its
	// input in some axis.
	ErrKernelSize = errors.New("ops: kernel larger than input")
)
