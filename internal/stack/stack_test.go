// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValue(t *testing.T) {
	t.Parallel()

	var s Stack[*int]
	assert.True(t, s.IsEmpty())

	v, ok := s.Pop()
	assert.False(t, ok)
	assert.Nil(t, v)

	v, ok = s.Top()
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestLIFO(t *testing.T) {
	t.Parallel()

	s := New[int](2)
	for i := range 10 {
		s.Push(i)
	}

	top, ok := s.Top()
	require.True(t, ok)
	assert.Equal(t, 9, top)

	for want := 9; want >= 0; want-- {
		got, ok := s.Pop()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	assert.True(t, s.IsEmpty())
}

func TestPopReleasesSlot(t *testing.T) {
	t.Parallel()

	x := 42
	s := New[*int](4)
	s.Push(&x)
	s.Push(&x)

	_, _ = s.Pop()
	_, _ = s.Pop()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 42, x, "pop must not touch the referenced values")

	// the backing array keeps no stale references
	for _, v := range s.items[:cap(s.items)] {
		assert.Nil(t, v)
	}

	s.Push(&x)
	top, ok := s.Top()
	require.True(t, ok)
	assert.Same(t, &x, top)
}

func TestNilSentinel(t *testing.T) {
	t.Parallel()

	a, b := 1, 2
	s := New[*int](0)
	s.Push(&a)
	s.Push(nil)
	s.Push(&b)

	got, _ := s.Pop()
	assert.Same(t, &b, got)

	got, ok := s.Pop()
	assert.True(t, ok, "a nil item is still an item")
	assert.Nil(t, got)

	got, _ = s.Pop()
	assert.Same(t, &a, got)
}
