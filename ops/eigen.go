package ops

import (
	"fmt"
	"math"

	"github.com/artie-nazarov/CULgebra/matrix"
)

const (
	// DefaultEigenTolerance bounds the off-diagonal mass at convergence.
	DefaultEigenTolerance = 1e-10
	// DefaultEigenSweeps caps the number of Jacobi sweeps.
	DefaultEigenSweeps = 100
)

// Eigen computes all eigenvalues and eigenvectors of a real symmetric
// rank-2 matrix by cyclic Jacobi rotations. Eigenvectors are the columns of
// the returned matrix, ordered to match the eigenvalues. Returns
// ErrNonSquare, ErrNotSymmetric (checked against tol), or ErrNoConvergence
// when the off-diagonal mass does not fall below tol within maxSweeps.
func Eigen(m *matrix.Matrix[float64], tol float64, maxSweeps int) ([]float64, *matrix.Matrix[float64], error) {
	n := m.DimX()
	if m.Rank() != 2 || m.DimY() != n {
		return nil, nil, fmt.Errorf("%w: shape %s", ErrNonSquare, m.Shape())
	}
	if tol <= 0 {
		tol = DefaultEigenTolerance
	}
	if maxSweeps <= 0 {
		maxSweeps = DefaultEigenSweeps
	}

	// Working copy of A and accumulated rotations Q, as flat row-major
	// buffers for the hot loops.
	a := m.Flat()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(a[i*n+j]-a[j*n+i]) > tol {
				return nil, nil, fmt.Errorf("%w: a[%d][%d] != a[%d][%d]", ErrNotSymmetric, i, j, j, i)
			}
		}
	}
	q := make([]float64, n*n)
	for i := 0; i < n; i++ {
		q[i*n+i] = 1
	}

	offDiag := func() float64 {
		var sum float64
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				sum += a[i*n+j] * a[i*n+j]
			}
		}
		return sum
	}

	for sweep := 0; sweep < maxSweeps; sweep++ {
		if offDiag() <= tol {
			values := make([]float64, n)
			for i := 0; i < n; i++ {
				values[i] = a[i*n+i]
			}
			vectors, err := matrix.FromFlat(q, n, n)
			if err != nil {
				return nil, nil, err
			}
			return values, vectors, nil
		}
		for p := 0; p < n-1; p++ {
			for r := p + 1; r < n; r++ {
				apr := a[p*n+r]
				if apr == 0 {
					continue
				}
				// Jacobi rotation zeroing a[p][r].
				theta := (a[r*n+r] - a[p*n+p]) / (2 * apr)
				t := math.Copysign(1, theta) / (math.Abs(theta) + math.Sqrt(theta*theta+1))
				c := 1 / math.Sqrt(t*t+1)
				s := t * c
				for k := 0; k < n; k++ {
					akp := a[k*n+p]
					akr := a[k*n+r]
					a[k*n+p] = c*akp - s*akr
					a[k*n+r] = s*akp + c*akr
				}
				for k := 0; k < n; k++ {
					apk := a[p*n+k]
					ark := a[r*n+k]
					a[p*n+k] = c*apk - s*ark
					a[r*n+k] = s*apk + c*ark
				}
				for k := 0; k < n; k++ {
					qkp := q[k*n+p]
					qkr := q[k*n+r]
					q[k*n+p] = c*qkp - s*qkr
					q[k*n+r] = s*qkp + c*qkr
				}
			}
		}
	}
	return nil, nil, fmt.Errorf("%w: after %d sweeps", ErrNoConvergence, maxSweeps)
}
