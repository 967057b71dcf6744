// Package matrix implements the generic numeric matrix at the core of
// CULgebra: a 1-, 2-, or 3-dimensional array stored in a single contiguous
// row-major buffer and addressed through per-axis strides. Every other
// routine in the library (linear-algebra consumers, device kernels,
// serialization) operates purely through this contract.
package matrix

import (
	"fmt"
	"strings"
)

// Element enumerates the kinds a Matrix may hold. Instantiating Matrix with
// any other type fails at compile time.
type Element interface {
	int32 | uint32 | float32 | float64 | bool
}

// Number is the arithmetic subset of Element. Operations that require
// addition or multiplication are constrained to Number, so applying them to
// a bool matrix fails at compile time rather than at runtime.
type Number interface {
	int32 | uint32 | float32 | float64
}

// Matrix is a dense numeric array of up to three dimensions. The zero total
// size (the default uninitialized state, shape (0)) is a legitimate terminal
// state: it reports dimension 0 on the first axis and holds no elements.
//
// A Matrix exclusively owns its buffer. Clone and every operator returning a
// new Matrix produce deep copies; no two matrices ever alias storage.
type Matrix[T Element] struct {
	shape Shape
	data  storage[T]
}

// New creates a zero-filled matrix with the given per-axis sizes, coarsest
// axis first. With no sizes it returns the uninitialized matrix of shape (0).
// Returns ErrShape if more than three sizes are given or any is negative.
func New[T Element](sizes ...int) (*Matrix[T], error) {
	shape, err := NewShape(sizes...)
	if err != nil {
		return nil, err
	}
	return &Matrix[T]{shape: shape, data: newStorage[T](shape.Elems())}, nil
}

// FromFlat creates a matrix of the given sizes seeded from a flat row-major
// slice. The seed is copied, never retained. Returns ErrShape for an invalid
// dimension list and ErrShapeMismatch when len(data) != product(sizes).
func FromFlat[T Element](data []T, sizes ...int) (*Matrix[T], error) {
	shape, err := NewShape(sizes...)
	if err != nil {
		return nil, err
	}
	buf, err := newStorageFromFlat(shape, data)
	if err != nil {
		return nil, err
	}
	return &Matrix[T]{shape: shape, data: buf}, nil
}

// FromVector creates a rank-1 matrix from a 1D seed.
func FromVector[T Element](data []T) (*Matrix[T], error) {
	return FromFlat(data, len(data))
}

// FromRows creates a rank-2 matrix from a nested 2D seed. Every row must
// have the same length; returns ErrShapeMismatch otherwise.
func FromRows[T Element](rows [][]T) (*Matrix[T], error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	shape, err := NewShape(len(rows), cols)
	if err != nil {
		return nil, err
	}
	buf, err := newStorageFromRows(shape, rows)
	if err != nil {
		return nil, err
	}
	return &Matrix[T]{shape: shape, data: buf}, nil
}

// FromBlocks creates a rank-3 matrix from a nested 3D seed. All nested
// levels must be rectangular; returns ErrShapeMismatch otherwise.
func FromBlocks[T Element](blocks [][][]T) (*Matrix[T], error) {
	dimY, dimZ := 0, 0
	if len(blocks) > 0 {
		dimY = len(blocks[0])
		if dimY > 0 {
			dimZ = len(blocks[0][0])
		}
	}
	shape, err := NewShape(len(blocks), dimY, dimZ)
	if err != nil {
		return nil, err
	}
	buf, err := newStorageFromBlocks(shape, blocks)
	if err != nil {
		return nil, err
	}
	return &Matrix[T]{shape: shape, data: buf}, nil
}

// Clone returns an independent deep copy of the matrix.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{shape: m.shape, data: m.data.clone()}
}

// Shape returns the matrix's dimension descriptor.
func (m *Matrix[T]) Shape() Shape { return m.shape }

// Rank returns the number of axes (1, 2, or 3).
func (m *Matrix[T]) Rank() int { return m.shape.Rank() }

// Len returns the total element count.
func (m *Matrix[T]) Len() int { return len(m.data) }

// DimX returns the size of the first axis.
func (m *Matrix[T]) DimX() int { return m.shape.DimX() }

// DimY returns the size of the second axis, 1 when unused by the rank.
func (m *Matrix[T]) DimY() int { return m.shape.DimY() }

// DimZ returns the size of the third axis, 1 when unused by the rank.
func (m *Matrix[T]) DimZ() int { return m.shape.DimZ() }

// At returns the element at the given index tuple. The tuple length must
// equal the rank. Returns ErrIndexOutOfRange for any index outside its axis.
func (m *Matrix[T]) At(indices ...int) (T, error) {
	off, err := m.shape.offset(indices...)
	if err != nil {
		var zero T
		return zero, err
	}
	return m.data.at(off)
}

// Set writes the element at the given index tuple. Returns
// ErrIndexOutOfRange for any index outside its axis.
func (m *Matrix[T]) Set(value T, indices ...int) error {
	off, err := m.shape.offset(indices...)
	if err != nil {
		return err
	}
	return m.data.setAt(off, value)
}

// First returns the element at flat offset 0. On a matrix with zero total
// elements, including the default uninitialized matrix, it returns
// ErrEmptyMatrix; there is no sentinel element value.
func (m *Matrix[T]) First() (T, error) {
	if len(m.data) == 0 {
		var zero T
		return zero, fmt.Errorf("%w: first element of shape %s", ErrEmptyMatrix, m.shape)
	}
	return m.data[0], nil
}

// Row returns a view of row i: the contiguous elements sharing the first
// axis index, of length Len()/DimX(). The slice aliases the matrix's buffer
// and stays valid only while the matrix is alive; callers needing an
// independent copy should copy it out. Returns ErrIndexOutOfRange when i is
// outside [0, DimX()).
func (m *Matrix[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.shape.DimX() {
		return nil, fmt.Errorf("%w: row %d outside [0, %d)", ErrIndexOutOfRange, i, m.shape.DimX())
	}
	width := m.shape.DimY() * m.shape.DimZ()
	return m.data[i*width : (i+1)*width], nil
}

// AppendRow returns a new matrix grown by one row along the first axis; the
// receiver is left untouched. The row's length must equal the row width
// DimY()*DimZ() fixed at construction, ErrShapeMismatch otherwise.
func (m *Matrix[T]) AppendRow(row []T) (*Matrix[T], error) {
	width := m.shape.DimY() * m.shape.DimZ()
	if len(row) != width {
		return nil, fmt.Errorf("%w: row of length %d appended to shape %s", ErrShapeMismatch, len(row), m.shape)
	}
	sizes := m.shape.Sizes()
	sizes[0]++
	shape, err := NewShape(sizes...)
	if err != nil {
		return nil, err
	}
	out := &Matrix[T]{shape: shape, data: newStorage[T](shape.Elems())}
	copy(out.data, m.data)
	copy(out.data[len(m.data):], row)
	return out, nil
}

// Flat returns a copy of the backing buffer in row-major order. Combined
// with FromFlat and Sizes it round-trips the matrix exactly.
func (m *Matrix[T]) Flat() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)
	return out
}

// Equal reports whether two matrices have identical shape and elements.
func Equal[T Element](a, b *Matrix[T]) bool {
	if !a.shape.Equal(b.shape) {
		return false
	}
	for i, v := range a.data {
		if v != b.data[i] {
			return false
		}
	}
	return true
}

// String renders the matrix row by row for debugging.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	sb.WriteString(m.shape.String())
	width := m.shape.DimY() * m.shape.DimZ()
	for i := 0; i < m.shape.DimX(); i++ {
		sb.WriteString("\n[")
		for j, v := range m.data[i*width : (i+1)*width] {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", v)
		}
		sb.WriteString("]")
	}
	return sb.String()
}
