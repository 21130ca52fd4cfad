package list

import (
	"cmp"

	"github.com/Cloud-Foundations/linkedlist/lib/comparator"
)

// IndexError is returned by Insert when the index is beyond the end of the
// list.
type IndexError struct {
	Index  uint
	Length uint
}

func (e *IndexError) Error() string {
	return e.error()
}

// List is a singly linked list. The zero value is not usable, use New or
// NewWithComparator instead. A List is not safe for concurrent use.
type List[T any] struct {
	compare *comparator.Comparator[T]
	head    *Node[T]
	tail    *Node[T] // Not an owner, only used to speed up Append.
	length  uint
}

type Node[T any] struct {
	next  *Node[T]
	value T
}

// New creates an empty list which uses compare to determine element equality.
// If compare is nil the natural ordering of T is used.
func New[T cmp.Ordered](compare *comparator.Comparator[T]) *List[T] {
	if compare == nil {
		compare = comparator.New[T](nil)
	}
	return newList(compare)
}

// NewWithComparator creates an empty list for element types without a natural
// ordering. It panics if compare is nil.
func NewWithComparator[T any](compare *comparator.Comparator[T]) *List[T] {
	if compare == nil {
		panic("list: nil comparator")
	}
	return newList(compare)
}

// Append adds value to the back of the list. It returns the new node.
func (l *List[T]) Append(value T) *Node[T] {
	return l.append(value)
}

// Back returns the last node in the list if there is one, else nil.
func (l *List[T]) Back() *Node[T] {
	return l.tail
}

// Comparator returns the comparator used by the list.
func (l *List[T]) Comparator() *comparator.Comparator[T] {
	return l.compare
}

// Delete removes all nodes with values equal to value. It returns the last
// node removed, or nil if there was no match.
func (l *List[T]) Delete(value T) *Node[T] {
	return l.delete(value)
}

// DeleteHead removes and returns the first node, or nil if the list is empty.
func (l *List[T]) DeleteHead() *Node[T] {
	return l.deleteHead()
}

// DeleteTail removes and returns the last node, or nil if the list is empty.
// This walks the list.
func (l *List[T]) DeleteTail() *Node[T] {
	return l.deleteTail()
}

// Find returns the first node with a value equal to value, else nil.
func (l *List[T]) Find(value T) *Node[T] {
	return l.findFunc(func(v T) bool { return l.compare.Equal(v, value) })
}

// FindFunc returns the first node for which predicate returns true, else nil.
// A nil predicate matches nothing.
func (l *List[T]) FindFunc(predicate func(T) bool) *Node[T] {
	if predicate == nil {
		return nil
	}
	return l.findFunc(predicate)
}

// FromSlice appends each of values to the list, in order.
func (l *List[T]) FromSlice(values []T) {
	for _, value := range values {
		l.append(value)
	}
}

// Front returns the first node in the list if there is one, else nil.
func (l *List[T]) Front() *Node[T] {
	return l.head
}

// Insert adds value so that it ends up at position index (counting from 0).
// Index 0 is the same as Prepend and index Length() is the same as Append.
// If index is greater than Length() an *IndexError is returned and the list is
// not changed.
func (l *List[T]) Insert(value T, index uint) (*Node[T], error) {
	return l.insert(value, index)
}

// IterateValues will call fn for each value in the list, starting from the
// front. If fn returns false the iteration terminates and IterateValues will
// return false, else it will return true.
// The list must not be modified by fn.
func (l *List[T]) IterateValues(fn func(T) bool) bool {
	return l.iterateValues(fn)
}

// Length returns the number of nodes in the list.
func (l *List[T]) Length() uint {
	return l.length
}

// Prepend adds value to the front of the list. It returns the new node.
func (l *List[T]) Prepend(value T) *Node[T] {
	return l.prepend(value)
}

// Reverse reverses the order of the list in place.
func (l *List[T]) Reverse() {
	l.reverse()
}

// String returns the values, front to back, separated by commas.
func (l *List[T]) String() string {
	return l.string()
}

// ToSlice returns a copy of the values, front to back.
func (l *List[T]) ToSlice() []T {
	return l.toSlice()
}

// Next returns the node after n if there is one, else nil. Removed nodes have
// no next node.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Value returns the value held by the node.
func (n *Node[T]) Value() T {
	return n.value
}
