package matrix

import "fmt"

// Transpose returns a new matrix with remapped axes:
//
//   - rank 1: a plain copy (transposing a vector is a no-op);
//   - rank 2: dimensions swapped so result[j][i] == original[i][j];
//   - rank 3: the first two axes are swapped and the third is left fixed, so
//     result[j][i][k] == original[i][j][k]. This convention is fixed because
//     no single 3D transpose is canonical.
func Transpose[T Element](m *Matrix[T]) *Matrix[T] {
	switch m.Rank() {
	case 1:
		return m.Clone()
	case 2:
		n, c := m.DimX(), m.DimY()
		shape, _ := NewShape(c, n)
		out := &Matrix[T]{shape: shape, data: newStorage[T](shape.Elems())}
		for i := 0; i < n; i++ {
			for j := 0; j < c; j++ {
				out.data[j*n+i] = m.data[i*c+j]
			}
		}
		return out
	default:
		x, y, z := m.DimX(), m.DimY(), m.DimZ()
		shape, _ := NewShape(y, x, z)
		out := &Matrix[T]{shape: shape, data: newStorage[T](shape.Elems())}
		for i := 0; i < x; i++ {
			for j := 0; j < y; j++ {
				src := m.data[(i*y+j)*z : (i*y+j)*z+z]
				dst := out.data[(j*x+i)*z : (j*x+i)*z+z]
				copy(dst, src)
			}
		}
		return out
	}
}

// Reshape returns a matrix with the same elements laid out under new
// dimensions. The element count must be preserved: returns ErrShape for an
// invalid dimension list and ErrShapeMismatch when product(sizes) differs
// from the current element count.
func Reshape[T Element](m *Matrix[T], sizes ...int) (*Matrix[T], error) {
	shape, err := NewShape(sizes...)
	if err != nil {
		return nil, err
	}
	if shape.Elems() != len(m.data) {
		return nil, fmt.Errorf("%w: cannot reshape %d elements into %s", ErrShapeMismatch, len(m.data), shape)
	}
	return &Matrix[T]{shape: shape, data: m.data.clone()}, nil
}
