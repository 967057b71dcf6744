package matrix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFromFlat[T Element](t *testing.T, data []T, sizes ...int) *Matrix[T] {
	t.Helper()
	m, err := FromFlat(data, sizes...)
	require.NoError(t, err)
	return m
}

func TestAddVectors(t *testing.T) {
	a := mustFromFlat(t, []float64{1, 2, 3}, 3)
	b := mustFromFlat(t, []float64{4, 5, 6}, 3)

	sum, err := Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 7, 9}, sum.Flat())

	// Operands are untouched.
	assert.Equal(t, []float64{1, 2, 3}, a.Flat())
	assert.Equal(t, []float64{4, 5, 6}, b.Flat())
}

func TestAddThenSubRestores(t *testing.T) {
	a := mustFromFlat(t, []float64{1.5, -2, 0, 8, 3, 7}, 2, 3)
	b := mustFromFlat(t, []float64{0.5, 10, -4, 2, 2, 2}, 2, 3)

	sum, err := Add(a, b)
	require.NoError(t, err)
	back, err := Sub(sum, b)
	require.NoError(t, err)
	assert.True(t, Equal(a, back))
}

func TestElementwiseShapeMismatch(t *testing.T) {
	a := mustFromFlat(t, []float64{1, 2, 3, 4}, 2, 2)
	b := mustFromFlat(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)

	_, err := Add(a, b)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = Sub(a, b)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = Hadamard(a, b)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = Div(a, b)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestRankMismatch(t *testing.T) {
	vec := mustFromFlat(t, []float64{1, 2, 3, 4}, 4)
	cube := mustFromFlat(t, []float64{1, 2, 3, 4}, 1, 2, 2)

	_, err := Add(vec, cube)
	assert.ErrorIs(t, err, ErrDimensionality)
	_, err = Mul(vec, cube)
	assert.ErrorIs(t, err, ErrDimensionality)
}

func TestMatMulConcrete(t *testing.T) {
	a := mustFromFlat(t, []float64{1, 2, 3, 4}, 2, 2)
	b := mustFromFlat(t, []float64{5, 6, 7, 8}, 2, 2)

	prod, err := MatMul(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{19, 22, 43, 50}, prod.Flat())
	assert.Equal(t, 2, prod.DimX())
	assert.Equal(t, 2, prod.DimY())
}

func TestMatMulShapes(t *testing.T) {
	a := mustFromFlat(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)
	b := mustFromFlat(t, []float64{7, 8, 9, 10, 11, 12}, 3, 2)

	prod, err := MatMul(a, b)
	require.NoError(t, err)
	assert.Equal(t, 2, prod.DimX())
	assert.Equal(t, 2, prod.DimY())
	assert.Equal(t, []float64{58, 64, 139, 154}, prod.Flat())

	_, err = MatMul(b, b)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	cube := mustFromFlat(t, []float64{1, 2, 3, 4}, 1, 2, 2)
	_, err = MatMul(a, cube)
	assert.ErrorIs(t, err, ErrDimensionality)
}

func TestMatMulVectorRow(t *testing.T) {
	// A rank-1 operand participates as a single row.
	v := mustFromFlat(t, []float64{1, 2, 3}, 3)
	m := mustFromFlat(t, []float64{1, 0, 0, 1, 1, 1}, 3, 2)

	prod, err := MatMul(v, m)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5}, prod.Flat())
}

func TestMatMulPropagatesNaN(t *testing.T) {
	// IEEE float semantics hold in the product: 0 * NaN is NaN, so a zero
	// element in the left operand does not mask a NaN on the right.
	a := mustFromFlat(t, []float64{0, 0}, 1, 2)
	b := mustFromFlat(t, []float64{math.NaN(), 1}, 2, 1)

	prod, err := MatMul(a, b)
	require.NoError(t, err)
	first, err := prod.First()
	require.NoError(t, err)
	assert.True(t, math.IsNaN(first))
}

func TestMulDispatch(t *testing.T) {
	// Identical shapes dispatch to the elementwise product.
	a := mustFromFlat(t, []float64{1, 2, 3, 4}, 2, 2)
	b := mustFromFlat(t, []float64{5, 6, 7, 8}, 2, 2)
	had, err := Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 12, 21, 32}, had.Flat())

	// Agreeing inner dimensions dispatch to the matrix product.
	wide := mustFromFlat(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)
	tall := mustFromFlat(t, []float64{7, 8, 9, 10, 11, 12}, 3, 2)
	prod, err := Mul(wide, tall)
	require.NoError(t, err)
	assert.Equal(t, []float64{58, 64, 139, 154}, prod.Flat())

	// Neither rule applies.
	square := mustFromFlat(t, []float64{1, 2, 3, 4}, 2, 2)
	_, err = Mul(wide, square)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestDiv(t *testing.T) {
	a := mustFromFlat(t, []float64{10, 9, 8}, 3)
	b := mustFromFlat(t, []float64{2, 3, 4}, 3)

	quot, err := Div(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 3, 2}, quot.Flat())
}

func TestDivByZero(t *testing.T) {
	a := mustFromFlat(t, []float64{1, 2}, 2)
	b := mustFromFlat(t, []float64{1, 0}, 2)
	_, err := Div(a, b)
	assert.ErrorIs(t, err, ErrDivisionByZero)

	// Same policy for integer kinds.
	ai := mustFromFlat(t, []int32{4, 6}, 2)
	bi := mustFromFlat(t, []int32{2, 0}, 2)
	_, err = Div(ai, bi)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestScale(t *testing.T) {
	m := mustFromFlat(t, []int32{1, -2, 3}, 3)
	scaled := Scale(m, 3)
	assert.Equal(t, []int32{3, -6, 9}, scaled.Flat())
}

func TestArithUint32(t *testing.T) {
	a := mustFromFlat(t, []uint32{1, 2, 3, 4}, 2, 2)
	b := mustFromFlat(t, []uint32{5, 6, 7, 8}, 2, 2)

	prod, err := MatMul(a, b)
	require.NoError(t, err)
	assert.Equal(t, []uint32{19, 22, 43, 50}, prod.Flat())
}
