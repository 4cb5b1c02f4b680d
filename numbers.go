// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package phfwd

import (
	"iter"
	"strings"

	"github.com/tidwall/btree"

	"github.com/gaissmai/phfwd/internal/digit"
)

// Numbers is the ordered result of a query.
//
// An empty string entry is the absent marker, it is returned
// for queries with a malformed number. All methods accept
// a nil receiver, a nil *Numbers has no entries.
type Numbers struct {
	items []string
}

// newNumbers returns a result with the given entries.
func newNumbers(items ...string) *Numbers {
	return &Numbers{items: items}
}

// Len returns the number of entries.
func (ns *Numbers) Len() int {
	if ns == nil {
		return 0
	}
	return len(ns.items)
}

// At returns the entry at index i, or the empty string
// if i is out of range or the entry is the absent marker.
func (ns *Numbers) At(i int) string {
	if ns == nil || i < 0 || i >= len(ns.items) {
		return ""
	}
	return ns.items[i]
}

// All returns an iterator over the index and entry pairs.
func (ns *Numbers) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		if ns == nil {
			return
		}
		for i, s := range ns.items {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Slice returns a copy of the entries.
func (ns *Numbers) Slice() []string {
	if ns == nil {
		return nil
	}
	return append([]string(nil), ns.items...)
}

// Release drops all entries, the result is empty afterwards.
func (ns *Numbers) Release() {
	if ns == nil {
		return
	}
	clear(ns.items)
	ns.items = nil
}

// String returns the entries, one per line.
func (ns *Numbers) String() string {
	if ns == nil {
		return ""
	}
	return strings.Join(ns.items, "\n")
}

// numberSet collects numbers in digit order without duplicates.
type numberSet struct {
	tree *btree.BTreeG[string]
}

func newNumberSet() numberSet {
	return numberSet{
		tree: btree.NewBTreeGOptions(digit.Less, btree.Options{NoLocks: true}),
	}
}

// add inserts s, a duplicate is collapsed with the stored entry.
func (set numberSet) add(s string) {
	set.tree.Set(s)
}

// numbers flattens the set in ascending digit order.
func (set numberSet) numbers() *Numbers {
	items := make([]string, 0, set.tree.Len())
	set.tree.Scan(func(s string) bool {
		items = append(items, s)
		return true
	})
	return newNumbers(items...)
}
