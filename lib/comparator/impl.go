package comparator

func newComparator[T any](compare CompareFunc[T]) *Comparator[T] {
	return &Comparator[T]{compare: compare}
}

func (c *Comparator[T]) reverse() *Comparator[T] {
	compare := c.compare
	return newComparator(func(a, b T) int {
		return -compare(a, b)
	})
}
