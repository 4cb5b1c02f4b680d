// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package stack implements a LIFO container used for
// iterative trie traversals.
//
// The stack holds non-owning references, popping
// never releases the referenced values.
package stack

// Stack is a growable LIFO of T. The zero value is an empty stack.
type Stack[T any] struct {
	items []T
}

// New returns an empty stack with room for capacity items.
func New[T any](capacity int) *Stack[T] {
	return &Stack[T]{items: make([]T, 0, capacity)}
}

// Push puts v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top item, false if the stack is empty.
func (s *Stack[T]) Pop() (v T, ok bool) {
	n := len(s.items)
	if n == 0 {
		return
	}

	var zero T
	v = s.items[n-1]
	s.items[n-1] = zero // let the GC do its job
	s.items = s.items[:n-1]

	return v, true
}

// Top returns the top item without removing it, false if the stack is empty.
func (s *Stack[T]) Top() (v T, ok bool) {
	if n := len(s.items); n > 0 {
		return s.items[n-1], true
	}
	return
}

// IsEmpty reports whether the stack has no items.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}
