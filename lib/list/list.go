package list

import (
	"fmt"
	"strings"

	"github.com/Cloud-Foundations/linkedlist/lib/comparator"
)

func newList[T any](compare *comparator.Comparator[T]) *List[T] {
	return &List[T]{compare: compare}
}

func (e *IndexError) error() string {
	return fmt.Sprintf("index: %d out of range for list length: %d",
		e.Index, e.Length)
}

func (l *List[T]) append(value T) *Node[T] {
	node := &Node[T]{value: value}
	if l.tail == nil {
		l.head = node
	} else {
		l.tail.next = node
	}
	l.tail = node
	l.length++
	return node
}

func (l *List[T]) delete(value T) *Node[T] {
	var deleted *Node[T]
	for l.head != nil && l.compare.Equal(l.head.value, value) {
		deleted = l.head
		l.head = deleted.next
		deleted.next = nil
		l.length--
	}
	if l.head == nil {
		l.tail = nil
		return deleted
	}
	current := l.head
	for current.next != nil {
		if next := current.next; l.compare.Equal(next.value, value) {
			current.next = next.next
			next.next = nil
			deleted = next
			l.length--
		} else {
			current = next
		}
	}
	l.tail = current // Last survivor.
	return deleted
}

func (l *List[T]) deleteHead() *Node[T] {
	node := l.head
	if node == nil {
		return nil
	}
	l.head = node.next
	node.next = nil
	if l.head == nil {
		l.tail = nil
	}
	l.length--
	return node
}

func (l *List[T]) deleteTail() *Node[T] {
	node := l.tail
	if node == nil {
		return nil
	}
	if l.head == node {
		l.head = nil
		l.tail = nil
	} else {
		previous := l.head
		for previous.next != node {
			previous = previous.next
		}
		previous.next = nil
		l.tail = previous
	}
	l.length--
	return node
}

func (l *List[T]) findFunc(predicate func(T) bool) *Node[T] {
	for node := l.head; node != nil; node = node.next {
		if predicate(node.value) {
			return node
		}
	}
	return nil
}

func (l *List[T]) insert(value T, index uint) (*Node[T], error) {
	if index == 0 {
		return l.prepend(value), nil
	}
	if index > l.length {
		return nil, &IndexError{Index: index, Length: l.length}
	}
	previous := l.head
	for position := uint(1); position < index; position++ {
		previous = previous.next
	}
	node := &Node[T]{next: previous.next, value: value}
	previous.next = node
	if node.next == nil {
		l.tail = node
	}
	l.length++
	return node, nil
}

func (l *List[T]) iterateValues(fn func(T) bool) bool {
	for node := l.head; node != nil; node = node.next {
		if !fn(node.value) {
			return false
		}
	}
	return true
}

func (l *List[T]) prepend(value T) *Node[T] {
	node := &Node[T]{next: l.head, value: value}
	if l.head == nil {
		l.tail = node
	}
	l.head = node
	l.length++
	return node
}

func (l *List[T]) reverse() {
	var previous *Node[T]
	l.tail = l.head
	for node := l.head; node != nil; {
		next := node.next
		node.next = previous
		previous = node
		node = next
	}
	l.head = previous
}

func (l *List[T]) string() string {
	var builder strings.Builder
	for node := l.head; node != nil; node = node.next {
		if node != l.head {
			builder.WriteString(", ")
		}
		fmt.Fprintf(&builder, "%#v", node.value)
	}
	return builder.String()
}

func (l *List[T]) toSlice() []T {
	values := make([]T, 0, l.length)
	for node := l.head; node != nil; node = node.next {
		values = append(values, node.value)
	}
	return values
}
