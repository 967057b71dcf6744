package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShapeUninitialized(t *testing.T) {
	s, err := NewShape()
	require.NoError(t, err)
	assert.Equal(t, 1, s.Rank())
	assert.Equal(t, 0, s.DimX())
	assert.Equal(t, 0, s.Elems())
	assert.Equal(t, "(0)", s.String())
}

func TestNewShapeDims(t *testing.T) {
	tests := []struct {
		name  string
		sizes []int
		rank  int
		x     int
		y     int
		z     int
		elems int
	}{
		{"vector", []int{4}, 1, 4, 1, 1, 4},
		{"matrix", []int{2, 3}, 2, 2, 3, 1, 6},
		{"tensor", []int{2, 3, 4}, 3, 2, 3, 4, 24},
		{"empty axis", []int{0, 5}, 2, 0, 5, 1, 0},
		{"scalar", []int{1}, 1, 1, 1, 1, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewShape(tc.sizes...)
			require.NoError(t, err)
			assert.Equal(t, tc.rank, s.Rank())
			assert.Equal(t, tc.x, s.DimX())
			assert.Equal(t, tc.y, s.DimY())
			assert.Equal(t, tc.z, s.DimZ())
			assert.Equal(t, tc.elems, s.Elems())
			assert.Equal(t, tc.sizes, s.Sizes())
		})
	}
}

func TestNewShapeInvalid(t *testing.T) {
	_, err := NewShape(2, 3, 4, 5)
	assert.ErrorIs(t, err, ErrShape)

	_, err = NewShape(2, -1)
	assert.ErrorIs(t, err, ErrShape)
}

func TestShapeOffsetRowMajor(t *testing.T) {
	s, err := NewShape(2, 3, 4)
	require.NoError(t, err)

	// Row-major: z contiguous, stride y = 4, stride x = 12.
	off, err := s.offset(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, off)

	off, err = s.offset(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 1*12+2*4+3, off)

	seen := make(map[int]bool)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 4; k++ {
				off, err := s.offset(i, j, k)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, off, 0)
				assert.Less(t, off, s.Elems())
				assert.False(t, seen[off], "offset %d mapped twice", off)
				seen[off] = true
			}
		}
	}
}

func TestShapeOffsetOutOfRange(t *testing.T) {
	s, err := NewShape(2, 3)
	require.NoError(t, err)

	_, err = s.offset(2, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = s.offset(0, -1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	// Tuple arity must match the rank.
	_, err = s.offset(1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}
