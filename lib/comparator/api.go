package comparator

import "cmp"

// CompareFunc is a three-way comparison function. It returns a negative number
// if a sorts before b, zero if they are equal and a positive number if a sorts
// after b.
type CompareFunc[T any] func(a, b T) int

type Comparator[T any] struct {
	compare CompareFunc[T]
}

// Default compares a and b using their natural ordering.
func Default[T cmp.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

// New creates a Comparator using the specified comparison function. If compare
// is nil, the natural ordering of T is used.
func New[T cmp.Ordered](compare CompareFunc[T]) *Comparator[T] {
	if compare == nil {
		compare = Default[T]
	}
	return newComparator(compare)
}

// NewFunc creates a Comparator for types without a natural ordering. It panics
// if compare is nil.
func NewFunc[T any](compare CompareFunc[T]) *Comparator[T] {
	if compare == nil {
		panic("comparator: nil compare function")
	}
	return newComparator(compare)
}

// Compare returns the raw three-way comparison of a and b.
func (c *Comparator[T]) Compare(a, b T) int {
	return c.compare(a, b)
}

// Equal returns true if a and b compare equal.
func (c *Comparator[T]) Equal(a, b T) bool {
	return c.compare(a, b) == 0
}

// GreaterThan returns true if a sorts after b.
func (c *Comparator[T]) GreaterThan(a, b T) bool {
	return c.compare(a, b) > 0
}

// GreaterThanOrEqual returns true if a does not sort before b.
func (c *Comparator[T]) GreaterThanOrEqual(a, b T) bool {
	return c.compare(a, b) >= 0
}

// LessThan returns true if a sorts before b.
func (c *Comparator[T]) LessThan(a, b T) bool {
	return c.compare(a, b) < 0
}

// LessThanOrEqual returns true if a does not sort after b.
func (c *Comparator[T]) LessThanOrEqual(a, b T) bool {
	return c.compare(a, b) <= 0
}

// Reverse returns a new Comparator with the opposite ordering. The receiver is
// not modified.
func (c *Comparator[T]) Reverse() *Comparator[T] {
	return c.reverse()
}
