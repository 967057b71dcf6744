package device

import (
	"context"
	"fmt"

	"github.com/artie-nazarov/CULgebra/matrix"
)

// Matrix is a device-resident matrix of rank at most 3. Its buffer is owned
// by the device allocator and is released by Free (or by a failed staged
// construction, which never leaks a reservation). Elements are readable on
// the host only after an explicit Download.
type Matrix[T matrix.Number] struct {
	dev   *Device
	shape matrix.Shape
	buf   []T
	bytes int64
	freed bool
}

// elemBytes reports the device size of one element of T.
func elemBytes[T matrix.Number]() int64 {
	var zero T
	switch any(zero).(type) {
	case float64:
		return 8
	default:
		return 4
	}
}

// alloc reserves budget and stages a zeroed buffer for the given shape.
func alloc[T matrix.Number](dev *Device, shape matrix.Shape) (*Matrix[T], error) {
	bytes := elemBytes[T]() * int64(shape.Elems())
	if err := dev.reserve(bytes); err != nil {
		return nil, err
	}
	return &Matrix[T]{
		dev:   dev,
		shape: shape,
		buf:   make([]T, shape.Elems()),
		bytes: bytes,
	}, nil
}

// Zeros allocates a zero-filled device matrix with the given sizes.
func Zeros[T matrix.Number](ctx context.Context, dev *Device, sizes ...int) (*Matrix[T], error) {
	shape, err := matrix.NewShape(sizes...)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return alloc[T](dev, shape)
}

// Upload allocates a device matrix and stages the host matrix's elements
// into it. The transfer is the only way host data reaches the device. On any
// failure, including context cancellation mid-transfer, the reservation is
// released before returning.
func Upload[T matrix.Number](ctx context.Context, dev *Device, host *matrix.Matrix[T]) (*Matrix[T], error) {
	m, err := alloc[T](dev, host.Shape())
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		m.Free()
		return nil, err
	}
	copy(m.buf, host.Flat())
	return m, nil
}

// Download transfers the device matrix back into a freshly allocated host
// matrix. It is the synchronization point: once Download returns, all device
// writes to this matrix are visible in the result. Returns
// ErrResidencyMismatch when the matrix has been freed.
func (m *Matrix[T]) Download(ctx context.Context) (*matrix.Matrix[T], error) {
	if m.freed {
		return nil, fmt.Errorf("%w: download of freed matrix", ErrResidencyMismatch)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return matrix.FromFlat(m.buf, m.shape.Sizes()...)
}

// Free releases the matrix's device memory. Safe to call twice; any use of
// the matrix afterwards fails with ErrResidencyMismatch.
func (m *Matrix[T]) Free() {
	if m.freed {
		return
	}
	m.freed = true
	m.buf = nil
	m.dev.release(m.bytes)
}

// Shape returns the matrix's dimension descriptor.
func (m *Matrix[T]) Shape() matrix.Shape { return m.shape }

// DimX returns the size of the first axis.
func (m *Matrix[T]) DimX() int { return m.shape.DimX() }

// DimY returns the size of the second axis, 1 when unused by the rank.
func (m *Matrix[T]) DimY() int { return m.shape.DimY() }

// DimZ returns the size of the third axis, 1 when unused by the rank.
func (m *Matrix[T]) DimZ() int { return m.shape.DimZ() }

// Device returns the device this matrix is resident on.
func (m *Matrix[T]) Device() *Device { return m.dev }

// sameResidency validates that both operands are live and on one device.
func sameResidency[T matrix.Number](a, b *Matrix[T]) error {
	if a.freed || b.freed {
		return fmt.Errorf("%w: operand has been freed", ErrResidencyMismatch)
	}
	if a.dev != b.dev {
		return fmt.Errorf("%w: operands on %s and %s", ErrResidencyMismatch, a.dev.name, b.dev.name)
	}
	return nil
}
