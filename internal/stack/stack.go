package stack

import "iter"

// Stack is a LIFO with indexed access, used as the ancestor path of a tree walk.
// Index 0 is the bottom (the root), Size()-1 is the top.
type Stack[T any] struct {
	items []T
}

func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// NewWithCapacity reduces allocations when the maximum depth is roughly known.
func NewWithCapacity[T any](capacity int) *Stack[T] {
	return &Stack[T]{
		items: make([]T, 0, capacity),
	}
}

// Push adds elements in order with the last element at the top.
func (s *Stack[T]) Push(items ...T) {
	s.items = append(s.items, items...)
}

func (s *Stack[T]) Pop() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	index := len(s.items) - 1
	item := s.items[index]
	var zero T
	s.items[index] = zero
	s.items = s.items[:index]
	return item, true
}

func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	return s.items[len(s.items)-1], true
}

// PeekRef allows modifying the top element in place.
func (s *Stack[T]) PeekRef() *T {
	if len(s.items) == 0 {
		return nil
	}

	return &s.items[len(s.items)-1]
}

// At returns a reference to the element at depth i, or nil when out of range.
// The reference is valid until the next Push.
func (s *Stack[T]) At(i int) *T {
	if i < 0 || i >= len(s.items) {
		return nil
	}

	return &s.items[i]
}

func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

func (s *Stack[T]) Size() int {
	return len(s.items)
}

// Backward yields elements from depth from down to the bottom. A from past
// the top starts at the top.
func (s *Stack[T]) Backward(from int) iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := min(from, len(s.items)-1); i >= 0; i-- {
			if !yield(i, &s.items[i]) {
				return
			}
		}
	}
}

// Reset empties the stack keeping its capacity.
func (s *Stack[T]) Reset() {
	clear(s.items)
	s.items = s.items[:0]
}
