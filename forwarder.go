// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package phfwd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/gaissmai/phfwd/internal/digit"
	"github.com/gaissmai/phfwd/internal/stack"
)

// Forwarder is a registry of phone number forwardings.
//
// A forwarding redirects every number starting with a source prefix
// to the same number with that prefix replaced by the target prefix.
// Forwardings are not transitive, only the longest matching
// source prefix is applied.
//
// All methods accept a nil receiver: mutations are no-ops
// and queries return a nil result.
//
// A Forwarder is not safe for concurrent mutation, the caller
// must serialize Add, Remove and Reset against all other calls.
type Forwarder struct {
	root *node
	pool *pool
	log  *zap.Logger

	// number of registered forwardings
	size int
}

// Option configures a Forwarder.
type Option func(*Forwarder)

// WithLogger sets the logger for debug messages about mutations.
// A nil logger is ignored.
func WithLogger(log *zap.Logger) Option {
	return func(f *Forwarder) {
		if log != nil {
			f.log = log
		}
	}
}

// New returns an empty Forwarder.
func New(opts ...Option) *Forwarder {
	f := &Forwarder{
		pool: newPool(),
		log:  zap.NewNop(),
	}
	f.root = new(node) // the root is never pooled

	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Len returns the number of registered forwardings.
func (f *Forwarder) Len() int {
	if f == nil {
		return 0
	}
	return f.size
}

// NodeCount returns the number of trie nodes, the root excluded.
func (f *Forwarder) NodeCount() int {
	if f == nil {
		return 0
	}
	live, _ := f.pool.Stats()
	return int(live)
}

// Add registers the forwarding of all numbers with prefix src
// to the same numbers with src replaced by dst.
// A previous forwarding for exactly src is replaced.
//
// Add returns an error wrapping [ErrInvalidNumber] if src or dst is
// not a number, [ErrSameNumber] if they are equal and
// [ErrNilForwarder] if f is nil. In all error cases nothing is changed.
func (f *Forwarder) Add(src, dst string) error {
	if f == nil {
		return ErrNilForwarder
	}
	if !digit.Valid(src) {
		return fmt.Errorf("%w: source %q", ErrInvalidNumber, src)
	}
	if !digit.Valid(dst) {
		return fmt.Errorf("%w: target %q", ErrInvalidNumber, dst)
	}
	if src == dst {
		return fmt.Errorf("%w: %q", ErrSameNumber, src)
	}

	n := f.root
	for i := range len(src) {
		slot, _ := digit.Index(src[i])

		child := n.getChild(slot)

		// create and insert missing intermediate child
		if child == nil {
			child = f.pool.Get()
			n.insertChild(slot, child)
		}
		n = child
	}

	if !n.hasForward() {
		f.size++
	}
	n.forward = dst

	f.log.Debug("forwarding added",
		zap.String("from", src),
		zap.String("to", dst),
		zap.Int("nodes", f.NodeCount()))

	return nil
}

// Remove deletes all forwardings whose source has the given prefix.
// It does nothing if prefix is not a number or no source starts with it.
func (f *Forwarder) Remove(prefix string) {
	if f == nil || !digit.Valid(prefix) {
		return
	}

	// The last significant node on the path, the root or a node that
	// branches or has a forwarding. Everything below it on the path
	// is a chain of single child nodes and can be purged.
	anchor := f.root
	anchorSlot, _ := digit.Index(prefix[0])

	n := f.root
	for i := range len(prefix) {
		slot, _ := digit.Index(prefix[i])

		child := n.getChild(slot)
		if child == nil {
			// prefix not in trie, nothing to remove
			return
		}

		if n.isRoot() || n.childCount() > 1 || n.hasForward() {
			anchor = n
			anchorSlot = slot
		}
		n = child
	}

	removed := f.purge(anchor.getChild(anchorSlot))

	f.log.Debug("forwardings removed",
		zap.String("prefix", prefix),
		zap.Int("removed", removed),
		zap.Int("nodes", f.NodeCount()))
}

// Reset removes all forwardings and releases all nodes.
func (f *Forwarder) Reset() {
	if f == nil {
		return
	}

	removed := 0
	for _, child := range f.root.allChildren() {
		removed += f.purge(child)
	}

	f.log.Debug("forwarder reset", zap.Int("removed", removed))
}

// purge releases the subtree rooted at top and unlinks top from its parent.
// It returns the number of forwardings deleted.
//
// Post-order, without recursion: a node is released only after all of
// its children are gone, a leaf is unlinked from its parent on release.
func (f *Forwarder) purge(top *node) (removed int) {
	if top == nil {
		return 0
	}

	st := stack.New[*node](digit.Size)
	st.Push(top)

	for !st.IsEmpty() {
		n, _ := st.Top()

		if n.childCount() != 0 {
			for _, child := range n.allChildren() {
				st.Push(child)
			}
			continue
		}

		st.Pop()
		if n.hasForward() {
			removed++
		}
		n.parent.deleteChild(n.slot)
		f.pool.Put(n)
	}

	f.size -= removed
	return removed
}

// Lookup returns the target registered for exactly src.
func (f *Forwarder) Lookup(src string) (dst string, ok bool) {
	if f == nil || !digit.Valid(src) {
		return "", false
	}

	n := f.root
	for i := range len(src) {
		slot, _ := digit.Index(src[i])
		if n = n.getChild(slot); n == nil {
			return "", false
		}
	}
	return n.forward, n.hasForward()
}

// Get returns the forwarding of num, a result with exactly one entry.
//
// The longest registered source prefix of num is replaced by its
// target. If no source prefix matches, the entry is num itself.
// If num is not a number the entry is the absent marker "".
// Get returns nil if f is nil.
func (f *Forwarder) Get(num string) *Numbers {
	if f == nil {
		return nil
	}
	if !digit.Valid(num) {
		return newNumbers("")
	}
	return newNumbers(f.resolve(num))
}

// resolve applies the longest matching forwarding to the valid number num.
func (f *Forwarder) resolve(num string) string {
	target := ""
	depth := 0

	n := f.root
	for i := range len(num) {
		slot, _ := digit.Index(num[i])
		if n = n.getChild(slot); n == nil {
			break
		}
		if n.hasForward() {
			target = n.forward
			depth = i + 1
		}
	}

	if target == "" {
		return num
	}
	return target + num[depth:]
}

// Reverse returns every number x such that one registered forwarding,
// taken alone, turns x into num, plus num itself.
//
// The result is sorted in digit order 0<1<...<9<*<# and free of
// duplicates. Not every entry forwards to num, a longer source prefix
// may take precedence, see [Forwarder.GetReverse].
// If num is not a number the result has the absent marker as single entry.
// Reverse returns nil if f is nil.
func (f *Forwarder) Reverse(num string) *Numbers {
	if f == nil {
		return nil
	}
	if !digit.Valid(num) {
		return newNumbers("")
	}

	set := newNumberSet()
	f.reverse(num, set)
	set.add(num)

	return set.numbers()
}

// reverse walks the whole trie and adds every preimage candidate of num to set.
//
// A target may be registered at any depth, so every node is visited.
// The prefix of the current node is kept in buf, a nil on the
// stack marks the return to the parent level.
func (f *Forwarder) reverse(num string, set numberSet) {
	st := stack.New[*node](2 * digit.Size)
	st.Push(f.root)

	buf := make([]byte, 0, len(num))
	depth := 0

	for !st.IsEmpty() {
		n, _ := st.Pop()

		// ascend
		if n == nil {
			depth--
			continue
		}

		if !n.isRoot() {
			buf = append(buf[:depth-1], digit.Char(n.slot))
		}

		if n.hasForward() && digit.HasPrefix(num, n.forward) {
			set.add(string(buf[:depth]) + num[len(n.forward):])
		}

		if n.childCount() != 0 {
			depth++
			st.Push(nil)
			for _, child := range n.allChildren() {
				st.Push(child)
			}
		}
	}
}

// GetReverse returns every number x with Get(x) == num, sorted in digit
// order and free of duplicates. This is the subset of Reverse(num)
// that agrees with the forward resolution.
//
// If num is not a number the result is empty.
// GetReverse returns nil if f is nil.
func (f *Forwarder) GetReverse(num string) *Numbers {
	if f == nil {
		return nil
	}
	if !digit.Valid(num) {
		return newNumbers()
	}

	candidates := f.Reverse(num)
	defer candidates.Release()

	result := newNumbers()
	for _, x := range candidates.All() {
		if f.resolve(x) == num {
			result.items = append(result.items, x)
		}
	}
	return result
}
