package device

import (
	"context"
	"fmt"

	"github.com/artie-nazarov/CULgebra/matrix"
)

// Device arithmetic. Operands must be live matrices on the same device
// (ErrResidencyMismatch otherwise); results are allocated on that device and
// must be freed by the caller. Shape rules match the host operators.

// checkElementwise validates residency and elementwise shape agreement.
func checkElementwise[T matrix.Number](a, b *Matrix[T]) error {
	if err := sameResidency(a, b); err != nil {
		return err
	}
	if a.shape.Rank() != b.shape.Rank() {
		return fmt.Errorf("%w: rank %d vs rank %d", matrix.ErrDimensionality, a.shape.Rank(), b.shape.Rank())
	}
	if !a.shape.Equal(b.shape) {
		return fmt.Errorf("%w: %s vs %s", matrix.ErrShapeMismatch, a.shape, b.shape)
	}
	return nil
}

// Add computes the elementwise sum of two device matrices.
func Add[T matrix.Number](ctx context.Context, a, b *Matrix[T]) (*Matrix[T], error) {
	if err := checkElementwise(a, b); err != nil {
		return nil, err
	}
	out, err := alloc[T](a.dev, a.shape)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		out.Free()
		return nil, err
	}
	for i := range a.buf {
		out.buf[i] = a.buf[i] + b.buf[i]
	}
	return out, nil
}

// Hadamard computes the elementwise product of two device matrices.
func Hadamard[T matrix.Number](ctx context.Context, a, b *Matrix[T]) (*Matrix[T], error) {
	if err := checkElementwise(a, b); err != nil {
		return nil, err
	}
	out, err := alloc[T](a.dev, a.shape)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		out.Free()
		return nil, err
	}
	for i := range a.buf {
		out.buf[i] = a.buf[i] * b.buf[i]
	}
	return out, nil
}

// MatMul computes the standard matrix product on the device, dispatching to
// the kernel selected at build time. Operands must be rank <= 2, with rank-1
// operands normalized to a row (left) or column (right) exactly as on the
// host; the inner dimensions must agree after that normalization.
func MatMul[T matrix.Number](ctx context.Context, a, b *Matrix[T]) (*Matrix[T], error) {
	if err := sameResidency(a, b); err != nil {
		return nil, err
	}
	if a.shape.Rank() > 2 || b.shape.Rank() > 2 {
		return nil, fmt.Errorf("%w: matrix product is defined for rank <= 2, got %d and %d",
			matrix.ErrDimensionality, a.shape.Rank(), b.shape.Rank())
	}
	n, inner, m, ok := matrix.MatMulDims(a.shape, b.shape)
	if !ok {
		return nil, fmt.Errorf("%w: cannot multiply %s by %s", matrix.ErrShapeMismatch, a.shape, b.shape)
	}
	shape, err := matrix.NewShape(n, m)
	if err != nil {
		return nil, err
	}
	out, err := alloc[T](a.dev, shape)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		out.Free()
		return nil, err
	}
	if len(out.buf) == 0 || inner == 0 {
		// Degenerate product, nothing for the kernel to do.
		return out, nil
	}
	if err := matmulKernel(a.buf, b.buf, out.buf, n, inner, m); err != nil {
		out.Free()
		return nil, err
	}
	return out, nil
}
