package ops

import (
	"fmt"
	"runtime"

	"github.com/artie-nazarov/CULgebra/matrix"
	"golang.org/x/sync/errgroup"
)

// Convolve2D computes the valid-mode 2D convolution of a rank-2 input with a
// rank-2 kernel: the kernel is flipped in both axes and slid over every
// fully-overlapping position, yielding an output of shape
// (inX-kX+1, inY-kY+1). Output rows are computed in parallel. Returns
// matrix.ErrDimensionality for non-rank-2 operands and ErrKernelSize when
// the kernel exceeds the input in some axis.
func Convolve2D(in, kernel *matrix.Matrix[float64]) (*matrix.Matrix[float64], error) {
	if in.Rank() != 2 || kernel.Rank() != 2 {
		return nil, fmt.Errorf("%w: convolution is defined for rank 2, got %d and %d",
			matrix.ErrDimensionality, in.Rank(), kernel.Rank())
	}
	inX, inY := in.DimX(), in.DimY()
	kX, kY := kernel.DimX(), kernel.DimY()
	if kX > inX || kY > inY {
		return nil, fmt.Errorf("%w: kernel %s over input %s", ErrKernelSize, kernel.Shape(), in.Shape())
	}
	outX, outY := inX-kX+1, inY-kY+1

	src := in.Flat()
	k := kernel.Flat()
	out := make([]float64, outX*outY)

	var group errgroup.Group
	group.SetLimit(runtime.NumCPU())
	for i := 0; i < outX; i++ {
		group.Go(func() error {
			dst := out[i*outY : (i+1)*outY]
			for j := 0; j < outY; j++ {
				var sum float64
				for u := 0; u < kX; u++ {
					// Flipped kernel row against the matching input row.
					krow := k[(kX-1-u)*kY : (kX-u)*kY]
					irow := src[(i+u)*inY+j : (i+u)*inY+j+kY]
					for v := 0; v < kY; v++ {
						sum += irow[v] * krow[kY-1-v]
					}
				}
				dst[j] = sum
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return matrix.FromFlat(out, outX, outY)
}
