package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZeroFilledDims(t *testing.T) {
	tests := []struct {
		name  string
		sizes []int
		x     int
		y     int
		z     int
	}{
		{"1d", []int{5}, 5, 1, 1},
		{"2d", []int{2, 3}, 2, 3, 1},
		{"3d", []int{4, 2, 6}, 4, 2, 6},
		{"zero axis", []int{0}, 0, 1, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := New[float64](tc.sizes...)
			require.NoError(t, err)
			assert.Equal(t, tc.x, m.DimX())
			assert.Equal(t, tc.y, m.DimY())
			assert.Equal(t, tc.z, m.DimZ())
			for _, v := range m.Flat() {
				assert.Zero(t, v)
			}
		})
	}
}

func TestNewDefaultUninitialized(t *testing.T) {
	m, err := New[int32]()
	require.NoError(t, err)
	assert.Equal(t, 1, m.Rank())
	assert.Equal(t, 0, m.DimX())
	assert.Equal(t, 0, m.Len())

	_, err = m.First()
	assert.ErrorIs(t, err, ErrEmptyMatrix)
}

func TestNewInvalidShape(t *testing.T) {
	_, err := New[float32](1, 2, 3, 4)
	assert.ErrorIs(t, err, ErrShape)

	_, err = New[float32](-2)
	assert.ErrorIs(t, err, ErrShape)
}

func TestFromFlatRoundTrip(t *testing.T) {
	m, err := FromFlat([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)

	rebuilt, err := FromFlat(m.Flat(), m.Shape().Sizes()...)
	require.NoError(t, err)
	assert.True(t, Equal(m, rebuilt))
}

func TestFromFlatLengthMismatch(t *testing.T) {
	_, err := FromFlat([]float64{1, 2, 3, 4, 5}, 2, 3)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestFromFlatDoesNotAliasSeed(t *testing.T) {
	seed := []int32{1, 2, 3, 4}
	m, err := FromFlat(seed, 2, 2)
	require.NoError(t, err)
	seed[0] = 99

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(1), v)
}

func TestFromRows(t *testing.T) {
	m, err := FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, 2, m.DimX())
	assert.Equal(t, 2, m.DimY())
	assert.Equal(t, []float64{1, 2, 3, 4}, m.Flat())

	_, err = FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestFromBlocks(t *testing.T) {
	m, err := FromBlocks([][][]int32{
		{{1, 2}, {3, 4}},
		{{5, 6}, {7, 8}},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rank())
	assert.Equal(t, []int32{1, 2, 3, 4, 5, 6, 7, 8}, m.Flat())

	v, err := m.At(1, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(6), v)

	_, err = FromBlocks([][][]int32{{{1, 2}}, {{3}}})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestFromVector(t *testing.T) {
	m, err := FromVector([]uint32{7, 8, 9})
	require.NoError(t, err)
	assert.Equal(t, 1, m.Rank())
	assert.Equal(t, 3, m.DimX())

	first, err := m.First()
	require.NoError(t, err)
	assert.Equal(t, uint32(7), first)
}

func TestBoolMatrix(t *testing.T) {
	m, err := FromRows([][]bool{{true, false}, {false, true}})
	require.NoError(t, err)

	v, err := m.At(1, 1)
	require.NoError(t, err)
	assert.True(t, v)

	flipped := Transpose(m)
	assert.True(t, Equal(m, flipped)) // identity pattern is symmetric
}

func TestCloneIsDeep(t *testing.T) {
	m, err := FromFlat([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)

	clone := m.Clone()
	require.NoError(t, clone.Set(42, 0, 0))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, float64(1), v)
	assert.False(t, Equal(m, clone))
}

func TestAtSetBounds(t *testing.T) {
	m, err := New[float64](2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(3.5, 1, 0))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	err = m.Set(1, 0, 2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestRowAccess(t *testing.T) {
	m, err := FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, row)

	// One past the last valid row index.
	_, err = m.Row(m.DimX())
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = m.Row(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestAppendRow(t *testing.T) {
	m, err := FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	grown, err := m.AppendRow([]float64{7, 8, 9})
	require.NoError(t, err)
	assert.Equal(t, 3, grown.DimX())
	assert.Equal(t, 3, grown.DimY())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, grown.Flat())

	// The receiver keeps its shape and elements.
	assert.Equal(t, 2, m.DimX())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.Flat())

	// The column count is fixed at construction.
	_, err = m.AppendRow([]float64{7, 8})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestAppendRowVectorAnd3D(t *testing.T) {
	v, err := FromVector([]int32{1, 2})
	require.NoError(t, err)
	grown, err := v.AppendRow([]int32{3})
	require.NoError(t, err)
	assert.Equal(t, 1, grown.Rank())
	assert.Equal(t, []int32{1, 2, 3}, grown.Flat())

	cube, err := FromBlocks([][][]float64{{{1, 2}, {3, 4}}})
	require.NoError(t, err)
	slab, err := cube.AppendRow([]float64{5, 6, 7, 8})
	require.NoError(t, err)
	assert.Equal(t, 2, slab.DimX())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8}, slab.Flat())

	_, err = cube.AppendRow([]float64{5, 6})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestRow3DSlab(t *testing.T) {
	m, err := FromBlocks([][][]float64{
		{{1, 2}, {3, 4}},
		{{5, 6}, {7, 8}},
	})
	require.NoError(t, err)

	slab, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 6, 7, 8}, slab)
}

func TestFirst(t *testing.T) {
	m, err := FromFlat([]int32{9, 8, 7}, 3)
	require.NoError(t, err)
	first, err := m.First()
	require.NoError(t, err)
	assert.Equal(t, int32(9), first)

	empty, err := New[int32](0, 4)
	require.NoError(t, err)
	_, err = empty.First()
	assert.ErrorIs(t, err, ErrEmptyMatrix)
}
