// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package phfwd

import (
	"iter"

	"github.com/gaissmai/phfwd/internal/digit"
	"github.com/gaissmai/phfwd/internal/stack"
)

// kid, a node has no path information about its predecessors,
// we collect this during the descent.
type kid struct {
	n    *node
	path string
}

// All returns an iterator over all forwardings as (source, target) pairs,
// in ascending digit order of the source.
//
// The Forwarder must not be modified during iteration.
func (f *Forwarder) All() iter.Seq2[string, string] {
	return func(yield func(src, dst string) bool) {
		if f == nil {
			return
		}
		f.root.walk("", func(k kid) bool {
			if k.n.hasForward() {
				return yield(k.path, k.n.forward)
			}
			return true
		})
	}
}

// walk visits the subtree of n in pre-order, children in slot order,
// which is the ascending digit order of the paths.
// Iterative, the depth of the trie does not grow the call stack.
func (n *node) walk(path string, visit func(kid) bool) bool {
	st := stack.New[kid](digit.Size)
	st.Push(kid{n: n, path: path})

	for !st.IsEmpty() {
		k, _ := st.Pop()

		if !visit(k) {
			return false
		}
		pushKids(st, k)
	}
	return true
}

// pushKids pushes the children of k in reverse slot order,
// the lowest slot is popped first.
func pushKids(st *stack.Stack[kid], k kid) {
	buf := [digit.Size]uint{}
	slots := k.n.children.AsSlice(buf[:0])

	for i := len(slots) - 1; i >= 0; i-- {
		slot := uint8(slots[i])
		st.Push(kid{
			n:    k.n.getChild(slot),
			path: k.path + string(digit.Char(slot)),
		})
	}
}
