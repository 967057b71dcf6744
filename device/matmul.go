//go:build !gonum && !gorgonia
// +build !gonum,!gorgonia

package device

import (
	"github.com/artie-nazarov/CULgebra/matrix"
)

// matmulKernel computes c = a * b with a pure-Go kernel: a is n x inner,
// b is inner x m, c is n x m, all row-major. Iterating k in the middle keeps
// the inner loop streaming over contiguous rows of b and c.
func matmulKernel[T matrix.Number](a, b, c []T, n, inner, m int) error {
	for i := 0; i < n; i++ {
		dst := c[i*m : (i+1)*m]
		for k := 0; k < inner; k++ {
			aik := a[i*inner+k]
			row := b[k*m : (k+1)*m]
			for j, v := range row {
				dst[j] += aik * v
			}
		}
	}
	return nil
}
