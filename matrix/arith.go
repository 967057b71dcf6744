package matrix

import "fmt"

// Arithmetic over matrices. Every operation returns a freshly allocated
// matrix and leaves both operands untouched. Operands must agree in rank
// (ErrDimensionality otherwise; no broadcasting rule is defined) and, for
// the elementwise operations, in every axis size (ErrShapeMismatch).

// checkElementwise validates that two operands are combinable elementwise.
func checkElementwise[T Number](a, b *Matrix[T]) error {
	if a.Rank() != b.Rank() {
		return fmt.Errorf("%w: rank %d vs rank %d", ErrDimensionality, a.Rank(), b.Rank())
	}
	if !a.shape.Equal(b.shape) {
		return fmt.Errorf("%w: %s vs %s", ErrShapeMismatch, a.shape, b.shape)
	}
	return nil
}

// Add returns the elementwise sum a + b.
func Add[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := checkElementwise(a, b); err != nil {
		return nil, err
	}
	out := &Matrix[T]{shape: a.shape, data: newStorage[T](len(a.data))}
	for i := range a.data {
		out.data[i] = a.data[i] + b.data[i]
	}
	return out, nil
}

// Sub returns the elementwise difference a - b.
func Sub[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := checkElementwise(a, b); err != nil {
		return nil, err
	}
	out := &Matrix[T]{shape: a.shape, data: newStorage[T](len(a.data))}
	for i := range a.data {
		out.data[i] = a.data[i] - b.data[i]
	}
	return out, nil
}

// Hadamard returns the elementwise product a * b.
func Hadamard[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := checkElementwise(a, b); err != nil {
		return nil, err
	}
	out := &Matrix[T]{shape: a.shape, data: newStorage[T](len(a.data))}
	for i := range a.data {
		out.data[i] = a.data[i] * b.data[i]
	}
	return out, nil
}

// Div returns the elementwise quotient a / b. Any zero divisor element
// yields ErrDivisionByZero regardless of the element kind, so float division
// never silently produces Inf or NaN.
func Div[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := checkElementwise(a, b); err != nil {
		return nil, err
	}
	var zero T
	out := &Matrix[T]{shape: a.shape, data: newStorage[T](len(a.data))}
	for i := range a.data {
		if b.data[i] == zero {
			return nil, fmt.Errorf("%w: divisor element at flat offset %d", ErrDivisionByZero, i)
		}
		out.data[i] = a.data[i] / b.data[i]
	}
	return out, nil
}

// Scale returns a copy of m with every element multiplied by factor.
func Scale[T Number](m *Matrix[T], factor T) *Matrix[T] {
	out := &Matrix[T]{shape: m.shape, data: newStorage[T](len(m.data))}
	for i, v := range m.data {
		out.data[i] = v * factor
	}
	return out
}

// MatMulDims normalizes two operand shapes for the matrix product: a rank-1
// left operand acts as a 1 x len row, a rank-1 right operand as a len x 1
// column. Returns the product dimensions n x inner times inner x m, with ok
// false when the inner dimensions disagree. Both MatMul and the device
// kernels share this rule.
func MatMulDims(a, b Shape) (n, inner, m int, ok bool) {
	n, inner = a.DimX(), a.DimY()
	if a.Rank() == 1 {
		n, inner = 1, a.DimX()
	}
	bInner, bM := b.DimX(), b.DimY()
	if b.Rank() == 1 {
		bInner, bM = b.DimX(), 1
	}
	return n, inner, bM, inner == bInner
}

// MatMul returns the standard matrix product of two operands of rank at
// most 2. A rank-1 left operand is treated as a single row and a rank-1
// right operand as a single column. The inner dimensions must agree after
// that normalization, giving an n x m result for n x inner times inner x m
// operands. Returns ErrDimensionality for rank-3 operands and
// ErrShapeMismatch when the inner dimensions disagree.
func MatMul[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if a.Rank() > 2 || b.Rank() > 2 {
		return nil, fmt.Errorf("%w: matrix product is defined for rank <= 2, got %d and %d",
			ErrDimensionality, a.Rank(), b.Rank())
	}
	n, inner, m, ok := MatMulDims(a.shape, b.shape)
	if !ok {
		return nil, fmt.Errorf("%w: cannot multiply %s by %s", ErrShapeMismatch, a.shape, b.shape)
	}
	shape, err := NewShape(n, m)
	if err != nil {
		return nil, err
	}
	out := &Matrix[T]{shape: shape, data: newStorage[T](shape.Elems())}
	for i := 0; i < n; i++ {
		dst := out.data[i*m : (i+1)*m]
		for k := 0; k < inner; k++ {
			aik := a.data[i*inner+k]
			row := b.data[k*m : (k+1)*m]
			for j, v := range row {
				dst[j] += aik * v
			}
		}
	}
	return out, nil
}

// Mul multiplies two matrices with shape-based dispatch. The rule is
// deterministic and checked in order:
//
//  1. identical shapes -> elementwise (Hadamard) product;
//  2. both operands rank <= 2 with agreeing inner dimensions (after the
//     rank-1 row/column normalization) -> matrix product;
//  3. otherwise ErrDimensionality (different ranks) or ErrShapeMismatch.
//
// Callers that need one specific semantic should use Hadamard or MatMul
// directly instead of relying on the dispatch.
func Mul[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if a.shape.Equal(b.shape) {
		return Hadamard(a, b)
	}
	if a.Rank() <= 2 && b.Rank() <= 2 {
		if _, _, _, ok := MatMulDims(a.shape, b.shape); ok {
			return MatMul(a, b)
		}
	}
	if a.Rank() != b.Rank() {
		return nil, fmt.Errorf("%w: rank %d vs rank %d", ErrDimensionality, a.Rank(), b.Rank())
	}
	return nil, fmt.Errorf("%w: %s vs %s", ErrShapeMismatch, a.shape, b.shape)
}
