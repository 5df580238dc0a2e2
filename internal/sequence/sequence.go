// Package sequence implements an immutable singly-linked list.
//
// Every mutating operation returns a new Sequence and leaves the receiver
// untouched. Unchanged suffixes are shared between versions, so pushing or
// popping at the head allocates at most one node while operations at an
// index copy only the nodes in front of it.
package sequence

import (
	"errors"
	"fmt"
	"iter"
)

// ErrIndexOutOfRange is returned when an index falls outside the sequence.
var ErrIndexOutOfRange = errors.New("index out of range")

type node[T comparable] struct {
	value T
	next  *node[T]
}

// Sequence is an ordered, index-addressed chain of values.
// The zero value is an empty sequence ready to use.
type Sequence[T comparable] struct {
	head   *node[T]
	length int
}

// Of builds a sequence holding values in order.
func Of[T comparable](values ...T) Sequence[T] {
	var s Sequence[T]
	for i := len(values) - 1; i >= 0; i-- {
		s = s.PushFront(values[i])
	}
	return s
}

// Len returns the number of values.
func (s Sequence[T]) Len() int {
	return s.length
}

// Get returns the value at index i.
func (s Sequence[T]) Get(i int) (T, error) {
	if i < 0 || i >= s.length {
		var zero T
		return zero, fmt.Errorf("get %d of %d: %w", i, s.length, ErrIndexOutOfRange)
	}
	n := s.head
	for range i {
		n = n.next
	}
	return n.value, nil
}

// All iterates over index/value pairs from head to tail.
func (s Sequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for n := s.head; n != nil; n = n.next {
			if !yield(i, n.value) {
				return
			}
			i++
		}
	}
}

// Values copies the sequence into a slice.
func (s Sequence[T]) Values() []T {
	if s.length == 0 {
		return nil
	}
	out := make([]T, 0, s.length)
	for _, v := range s.All() {
		out = append(out, v)
	}
	return out
}

// IndexesOf returns every index holding v. The whole chain is walked even
// after the first match.
func (s Sequence[T]) IndexesOf(v T) []int {
	var out []int
	for i, value := range s.All() {
		if value == v {
			out = append(out, i)
		}
	}
	return out
}

// Equal reports whether both sequences hold the same values in the same order.
func (s Sequence[T]) Equal(other Sequence[T]) bool {
	if s.length != other.length {
		return false
	}
	a, b := s.head, other.head
	for a != nil {
		if a == b {
			return true // shared suffix
		}
		if a.value != b.value {
			return false
		}
		a, b = a.next, b.next
	}
	return true
}

// PushFront returns a sequence with v prepended.
func (s Sequence[T]) PushFront(v T) Sequence[T] {
	return Sequence[T]{head: &node[T]{value: v, next: s.head}, length: s.length + 1}
}

// PushBack returns a sequence with v appended.
func (s Sequence[T]) PushBack(v T) Sequence[T] {
	out, _ := s.Insert(s.length, v)
	return out
}

// Insert returns a sequence with v placed at index i. Values previously at
// i and beyond shift one position right. Valid indexes are [0, Len()].
func (s Sequence[T]) Insert(i int, v T) (Sequence[T], error) {
	if i < 0 || i > s.length {
		return s, fmt.Errorf("insert at %d of %d: %w", i, s.length, ErrIndexOutOfRange)
	}
	head, last, rest := s.copyPrefix(i)
	return Sequence[T]{
		head:   link(head, last, &node[T]{value: v, next: rest}),
		length: s.length + 1,
	}, nil
}

// RemoveAt returns a sequence without the value at index i, plus that value.
func (s Sequence[T]) RemoveAt(i int) (Sequence[T], T, error) {
	if i < 0 || i >= s.length {
		var zero T
		return s, zero, fmt.Errorf("remove at %d of %d: %w", i, s.length, ErrIndexOutOfRange)
	}
	head, last, rest := s.copyPrefix(i)
	return Sequence[T]{
		head:   link(head, last, rest.next),
		length: s.length - 1,
	}, rest.value, nil
}

// PopFront removes the first value.
func (s Sequence[T]) PopFront() (Sequence[T], T, error) {
	return s.RemoveAt(0)
}

// PopBack removes the last value. Without a back-link this walks the whole
// chain to find the second-to-last node.
func (s Sequence[T]) PopBack() (Sequence[T], T, error) {
	return s.RemoveAt(s.length - 1)
}

// copyPrefix clones the first n nodes. It returns the head and last node of
// the clone (both nil when n is 0) and the first node that was not copied.
func (s Sequence[T]) copyPrefix(n int) (head, last, rest *node[T]) {
	rest = s.head
	for range n {
		c := &node[T]{value: rest.value}
		if last == nil {
			head = c
		} else {
			last.next = c
		}
		last = c
		rest = rest.next
	}
	return head, last, rest
}

func link[T comparable](head, last, tail *node[T]) *node[T] {
	if last == nil {
		return tail
	}
	last.next = tail
	return head
}
