package util

import "github.com/coll-cli/coll/collection"

// Stack implements a parameterized Last-In-First-Out (LIFO) data structure on top of a collection.
// The zero value is an empty stack ready to use.
type Stack[T any] struct {
	items collection.Collection[T]
}

// Push appends a new element to the top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items.Add(item)
}

// Pop removes and returns the topmost element; ok is false if the stack is empty.
func (s *Stack[T]) Pop() (item T, ok bool) {
	if item, ok = s.Peek(); ok {
		_ = s.items.RemoveAt(s.items.Count() - 1)
	}
	return
}

// Peek returns the topmost element without removing it; ok is false if the stack is empty.
func (s *Stack[T]) Peek() (item T, ok bool) {
	item, err := s.items.Get(s.items.Count() - 1)
	return item, err == nil
}

// Len returns the total number of elements currently stored in the stack.
func (s *Stack[T]) Len() int {
	return s.items.Count()
}

// Clear removes all elements from the stack.
func (s *Stack[T]) Clear() {
	s.items.Clear()
}
