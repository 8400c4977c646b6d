package tensor

// Shape is the ordered list of axis extents of an array expression.
// A nil or empty Shape describes a 0-dimensional (scalar) expression.
type Shape []int

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s)
}

// Size returns the total element count: the product of all extents.
// A 0-dimensional shape has size 1; a shape with any zero extent has size 0.
func (s Shape) Size() int {
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

// Strides returns the row-major stride table for the shape: the last axis
// has stride 1 and each preceding axis strides over everything after it.
// The dot product of a multi-index with this table is the element's linear
// position in canonical (last-axis-fastest) order.
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	size := 1
	for i := len(s) - 1; i >= 0; i-- {
		strides[i] = size
		size *= s[i]
	}
	return strides
}

// Clone returns an independent copy of the shape.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	c := make(Shape, len(s))
	copy(c, s)
	return c
}
