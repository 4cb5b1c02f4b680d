// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package phfwd

import (
	"iter"

	"github.com/gaissmai/phfwd/internal/bitset"
	"github.com/gaissmai/phfwd/internal/digit"
)

// node is a trie level node in the forwarding registry.
//
// A node represents the prefix spelled by the digits on the path
// from the root down to the node. The root is the empty prefix.
//
// Each node contains a fixed sized array of children, one slot per
// phone number symbol, with a bitset tracking the occupied slots.
type node struct {
	children struct {
		bitset.BitSet16
		items [digit.Size]*node
	}

	// cldCount is an O(1) counter tracking the number of child nodes in this node.
	// Automatically maintained during insertChild() and deleteChild() operations.
	cldCount uint8

	// slot is the index of this node in parent.children, unused at the root.
	slot uint8

	// parent is a back reference for pruning, nil at the root.
	// It never owns the parent.
	parent *node

	// forward is the replacement for the prefix of this node, empty if none.
	// A valid replacement is never empty.
	forward string
}

// childCount returns the number of slots used in this node.
func (n *node) childCount() int {
	return int(n.cldCount)
}

// hasForward reports whether a forwarding is registered at this node.
func (n *node) hasForward() bool {
	return n.forward != ""
}

// isEmpty returns true if node has neither a forwarding nor children,
// such a node is dead weight and must be pruned.
func (n *node) isEmpty() bool {
	if n == nil {
		return true
	}
	return n.cldCount == 0 && n.forward == ""
}

// isRoot reports whether n is the root of the trie.
func (n *node) isRoot() bool {
	return n.parent == nil
}

// getChild returns the child node at the specified slot, or nil.
func (n *node) getChild(slot uint8) *node {
	return n.children.items[slot]
}

// insertChild links child at the specified slot and
// sets the back reference of the child.
// Returns true if a child already existed at slot (overwrite case).
func (n *node) insertChild(slot uint8, child *node) (exists bool) {
	child.parent = n
	child.slot = slot

	if n.children.items[slot] != nil {
		n.children.items[slot] = child // overwrite
		return true
	}

	n.children.MustSet(uint(slot))
	n.cldCount++
	n.children.items[slot] = child

	return false
}

// deleteChild unlinks the child node at the specified slot.
// This operation is idempotent - removing a non-existent child is safe.
func (n *node) deleteChild(slot uint8) (exists bool) {
	child := n.children.items[slot]
	if child == nil {
		return false
	}
	n.cldCount--

	n.children.MustClear(uint(slot))
	n.children.items[slot] = nil
	child.parent = nil

	return true
}

// allChildren returns an iterator over all child nodes in slot order.
func (n *node) allChildren() iter.Seq2[uint8, *node] {
	return func(yield func(slot uint8, child *node) bool) {
		// the yielded child may be unlinked by the caller,
		// the search continues after its slot
		for slot, ok := n.children.FirstSet(); ok; slot, ok = n.children.NextSet(slot + 1) {
			if !yield(uint8(slot), n.children.items[slot]) {
				return
			}
		}
	}
}

// reset clears the node for reuse, all links are dropped.
func (n *node) reset() {
	*n = node{}
}
