//go:build gorgonia
// +build gorgonia

package device

import (
	"errors"

	_ "github.com/artie-nazarov/CULgebra/env"
	"github.com/artie-nazarov/CULgebra/matrix"
	"gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// matmulKernel computes c = a * b by evaluating a gorgonia graph: a is
// n x inner, b is inner x m, c is n x m, all row-major. Operands are widened
// to float64 tensors for the graph and the product is narrowed back to T.
// With a CUDA-enabled gorgonia build the tape machine dispatches the product
// to the GPU.
func matmulKernel[T matrix.Number](a, b, c []T, n, inner, m int) error {
	g := gorgonia.NewGraph()

	aDense := tensor.New(tensor.WithBacking(widen(a)), tensor.WithShape(n, inner))
	bDense := tensor.New(tensor.WithBacking(widen(b)), tensor.WithShape(inner, m))

	aNode := gorgonia.NewMatrix(g, tensor.Float64, gorgonia.WithValue(aDense), gorgonia.WithName("a"))
	bNode := gorgonia.NewMatrix(g, tensor.Float64, gorgonia.WithValue(bDense), gorgonia.WithName("b"))
	prod := gorgonia.Must(gorgonia.Mul(aNode, bNode))

	machine := gorgonia.NewTapeMachine(g)
	defer machine.Close()
	if err := machine.RunAll(); err != nil {
		return errors.Join(errors.New("device: gorgonia matmul failed"), err)
	}

	data, ok := prod.Value().Data().([]float64)
	if !ok {
		return errors.New("device: gorgonia matmul returned unexpected value type")
	}
	for i, v := range data {
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
