//go:build gonum
// +build gonum

package device

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/artie-nazarov/CULgebra/matrix"
)

// matmulKernel computes c = a * b through the registered float64 BLAS
// implementation: a is n x inner, b is inner x m, c is n x m, all row-major.
// Operands are widened to float64 for the Dgemm call and the product is
// narrowed back to T.
func matmulKernel[T matrix.Number](a, b, c []T, n, inner, m int) error {
	A := widen(a)
	B := widen(b)
	C := make([]float64, len(c))

	impl := blas64.Implementation()
	impl.Dgemm(blas.NoTrans, blas.NoTrans, n, m, inner, 1, A, inner, B, m, 0, C, m)

	for i, v := range C {
		c[i] = T(v)
	}
	return nil
}

func widen[T matrix.Number](src []T) []float64 {
	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = float64(v)
	}
	return out
}
