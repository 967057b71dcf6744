package matrix

import "fmt"

// MaxRank caps the number of axes a shape may have.
const MaxRank = 3

// Shape describes the dimensions of a matrix: its rank (1 to 3 axes), the
// per-axis sizes, and the row-major strides derived from them. A Shape is
// immutable after construction; transforms produce new shapes.
type Shape struct {
	rank    int
	sizes   [MaxRank]int
	strides [MaxRank]int
}

// NewShape builds a shape from per-axis sizes, ordered coarsest axis first
// (x, y, z). Called with no sizes it returns the canonical uninitialized
// shape of rank 1 and size 0. Returns ErrShape if more than MaxRank sizes
// are given or any size is negative.
func NewShape(sizes ...int) (Shape, error) {
	if len(sizes) == 0 {
		// Canonical uninitialized shape: rank 1, size (0).
		return Shape{rank: 1, sizes: [MaxRank]int{0, 1, 1}, strides: [MaxRank]int{1, 1, 1}}, nil
	}
	if len(sizes) > MaxRank {
		return Shape{}, fmt.Errorf("%w: %d axes exceeds the %d-dimension cap", ErrShape, len(sizes), MaxRank)
	}
	var s Shape
	s.rank = len(sizes)
	for i := range s.sizes {
		s.sizes[i] = 1
	}
	for i, size := range sizes {
		if size < 0 {
			return Shape{}, fmt.Errorf("%w: negative size %d on axis %d", ErrShape, size, i)
		}
		s.sizes[i] = size
	}
	// Row-major strides: the rightmost axis is contiguous, each coarser axis
	// strides over the product of all finer axes.
	stride := 1
	for i := MaxRank - 1; i >= 0; i-- {
		s.strides[i] = stride
		stride *= s.sizes[i]
	}
	return s, nil
}

// Rank returns the number of axes (1, 2, or 3).
func (s Shape) Rank() int { return s.rank }

// Elems returns the total element count, the product of all axis sizes.
func (s Shape) Elems() int {
	return s.sizes[0] * s.sizes[1] * s.sizes[2]
}

// DimX returns the size of the first axis.
func (s Shape) DimX() int { return s.sizes[0] }

// DimY returns the size of the second axis, 1 when the rank is below 2.
func (s Shape) DimY() int { return s.sizes[1] }

// DimZ returns the size of the third axis, 1 when the rank is below 3.
func (s Shape) DimZ() int { return s.sizes[2] }

// Sizes returns the per-axis sizes up to the shape's rank.
func (s Shape) Sizes() []int {
	out := make([]int, s.rank)
	copy(out, s.sizes[:s.rank])
	return out
}

// Equal reports whether two shapes have identical rank and sizes.
func (s Shape) Equal(other Shape) bool {
	return s.rank == other.rank && s.sizes == other.sizes
}

// offset maps an index tuple to a flat buffer offset via the row-major
// strides. The tuple length must equal the rank; every index must be inside
// its axis. Returns ErrIndexOutOfRange otherwise.
func (s Shape) offset(indices ...int) (int, error) {
	if len(indices) != s.rank {
		return 0, fmt.Errorf("%w: got %d indices for rank %d", ErrIndexOutOfRange, len(indices), s.rank)
	}
	off := 0
	for axis, idx := range indices {
		if idx < 0 || idx >= s.sizes[axis] {
			return 0, fmt.Errorf("%w: index %d outside axis %d of size %d", ErrIndexOutOfRange, idx, axis, s.sizes[axis])
		}
		off += idx * s.strides[axis]
	}
	return off, nil
}

// String renders the shape as "(x, y, z)" up to its rank.
func (s Shape) String() string {
	switch s.rank {
	case 2:
		return fmt.Sprintf("(%d, %d)", s.sizes[0], s.sizes[1])
	case 3:
		return fmt.Sprintf("(%d, %d, %d)", s.sizes[0], s.sizes[1], s.sizes[2])
	default:
		return fmt.Sprintf("(%d)", s.sizes[0])
	}
}
