package matrix

import "fmt"

// storage is the contiguous row-major element buffer behind a matrix. Its
// length always equals the element count of the owning shape. A storage is
// never shared between two matrices.
type storage[T Element] []T

// newStorage allocates a zero-filled buffer of the given length.
func newStorage[T Element](length int) storage[T] {
	return make(storage[T], length)
}

// newStorageFromFlat copies a flat row-major seed, validating its length
// against the declared shape.
func newStorageFromFlat[T Element](shape Shape, seed []T) (storage[T], error) {
	if len(seed) != shape.Elems() {
		return nil, fmt.Errorf("%w: %d seed elements for shape %s with %d elements",
			ErrShapeMismatch, len(seed), shape, shape.Elems())
	}
	buf := make(storage[T], len(seed))
	copy(buf, seed)
	return buf, nil
}

// newStorageFromRows flattens a 2D seed in row-major order. Every row must
// match the declared column count.
func newStorageFromRows[T Element](shape Shape, rows [][]T) (storage[T], error) {
	if len(rows) != shape.DimX() {
		return nil, fmt.Errorf("%w: %d seed rows for shape %s", ErrShapeMismatch, len(rows), shape)
	}
	buf := make(storage[T], 0, shape.Elems())
	for i, row := range rows {
		if len(row) != shape.DimY() {
			return nil, fmt.Errorf("%w: row %d has %d elements, want %d", ErrShapeMismatch, i, len(row), shape.DimY())
		}
		buf = append(buf, row...)
	}
	return buf, nil
}

// newStorageFromBlocks flattens a 3D seed in row-major order, validating
// every nested level against the declared shape.
func newStorageFromBlocks[T Element](shape Shape, blocks [][][]T) (storage[T], error) {
	if len(blocks) != shape.DimX() {
		return nil, fmt.Errorf("%w: %d seed blocks for shape %s", ErrShapeMismatch, len(blocks), shape)
	}
	buf := make(storage[T], 0, shape.Elems())
	for i, block := range blocks {
		if len(block) != shape.DimY() {
			return nil, fmt.Errorf("%w: block %d has %d rows, want %d", ErrShapeMismatch, i, len(block), shape.DimY())
		}
		for j, row := range block {
			if len(row) != shape.DimZ() {
				return nil, fmt.Errorf("%w: block %d row %d has %d elements, want %d",
					ErrShapeMismatch, i, j, len(row), shape.DimZ())
			}
			buf = append(buf, row...)
		}
	}
	return buf, nil
}

// at reads the element at a flat offset with a bounds check.
func (s storage[T]) at(offset int) (T, error) {
	var zero T
	if offset < 0 || offset >= len(s) {
		return zero, fmt.Errorf("%w: flat offset %d outside buffer of length %d", ErrIndexOutOfRange, offset, len(s))
	}
	return s[offset], nil
}

// setAt writes the element at a flat offset with a bounds check.
func (s storage[T]) setAt(offset int, value T) error {
	if offset < 0 || offset >= len(s) {
		return fmt.Errorf("%w: flat offset %d outside buffer of length %d", ErrIndexOutOfRange, offset, len(s))
	}
	s[offset] = value
	return nil
}

// clone returns an independent deep copy of the buffer.
func (s storage[T]) clone() storage[T] {
	out := make(storage[T], len(s))
	copy(out, s)
	return out
}
