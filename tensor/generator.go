// Package tensor provides the minimal lazy array-expression surface consumed
// by the random generators: shapes with row-major stride bookkeeping and a
// Generator type that turns a per-coordinate function into an indexable,
// materializable array-like value.
package tensor

import "fmt"

// Generator is a lazily evaluated array expression: a shape plus a function
// mapping a multi-index to one element. No element is computed until it is
// requested, and nothing is ever cached here; repeated access re-invokes the
// function.
type Generator[T any] struct {
	shape Shape
	fn    func(ix []int) T
}

// NewGenerator wraps fn as a lazy array expression of the given shape.
func NewGenerator[T any](shape Shape, fn func(ix []int) T) *Generator[T] {
	return &Generator[T]{shape: shape.Clone(), fn: fn}
}

// Shape returns the expression's shape.
func (g *Generator[T]) Shape() Shape {
	return g.shape
}

// Rank returns the number of axes.
func (g *Generator[T]) Rank() int {
	return g.shape.Rank()
}

// Size returns the total element count.
func (g *Generator[T]) Size() int {
	return g.shape.Size()
}

// At returns the element at the given coordinates. A 0-dimensional
// expression is read with no arguments.
func (g *Generator[T]) At(ix ...int) T {
	return g.fn(ix)
}

// Element returns the element at the multi-index held in ix. It is the
// container-based equivalent of At.
func (g *Generator[T]) Element(ix []int) T {
	return g.fn(ix)
}

// Materialize evaluates every element in canonical row-major order and
// returns them as a flat slice. For a shape with a zero extent the result is
// empty and the element function is never invoked.
func (g *Generator[T]) Materialize() []T {
	out := make([]T, g.Size())
	if len(out) == 0 {
		return out
	}
	ix := make([]int, g.Rank())
	for i := range out {
		out[i] = g.fn(ix)
		g.next(ix)
	}
	return out
}

// next advances ix to the following multi-index in row-major order.
func (g *Generator[T]) next(ix []int) {
	for axis := len(ix) - 1; axis >= 0; axis-- {
		ix[axis]++
		if ix[axis] < g.shape[axis] {
			return
		}
		ix[axis] = 0
	}
}

// String materializes the expression and formats it with its shape. Note
// that this evaluates every element.
func (g *Generator[T]) String() string {
	return fmt.Sprintf("%v%v", []int(g.shape), g.Materialize())
}
