// Package ops implements the linear-algebra routines layered on top of the
// core matrix contract: inversion, eigendecomposition, and convolution. The
// routines consume matrices purely through the public matrix API and make no
// numerical-stability guarantees beyond partial pivoting where noted.
package ops

import (
	"fmt"
	"math"

	"github.com/artie-nazarov/CULgebra/matrix"
)

// Inverse returns the inverse of a square rank-2 matrix via Gauss-Jordan
// elimination with partial pivoting. Returns ErrNonSquare for non-square
// input and ErrSingular when no usable pivot remains.
func Inverse(m *matrix.Matrix[float64]) (*matrix.Matrix[float64], error) {
	n := m.DimX()
	if m.Rank() != 2 || m.DimY() != n {
		return nil, fmt.Errorf("%w: shape %s", ErrNonSquare, m.Shape())
	}

	// Augmented system [A | I], eliminated in place.
	a := make([][]float64, n)
	for i := 0; i < n; i++ {
		row, err := m.Row(i)
		if err != nil {
			return nil, err
		}
		a[i] = make([]float64, 2*n)
		copy(a[i], row)
		a[i][n+i] = 1
	}

	for col := 0; col < n; col++ {
		// Partial pivoting: swap in the largest remaining pivot.
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if a[pivot][col] == 0 {
			return nil, fmt.Errorf("%w: zero pivot in column %d", ErrSingular, col)
		}
		a[col], a[pivot] = a[pivot], a[col]

		scale := a[col][col]
		for j := 0; j < 2*n; j++ {
			a[col][j] /= scale
		}
		for r := 0; r < n; r++ {
			if r == col || a[r][col] == 0 {
				continue
			}
			factor := a[r][col]
			for j := 0; j < 2*n; j++ {
				a[r][j] -= factor * a[col][j]
			}
		}
	}

	inv := make([][]float64, n)
	for i := 0; i < n; i++ {
		inv[i] = a[i][n:]
	}
	return matrix.FromRows(inv)
}
