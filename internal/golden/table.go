// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package golden implements a simple and slow forwarding table,
// used as reference for the trie based implementation in tests.
package golden

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gaissmai/phfwd/internal/digit"
)

// GoldTable is a forwarding table, implemented as a slice of
// source and target pairs.
type GoldTable []GoldTableItem

type GoldTableItem struct {
	Src string
	Dst string
}

func (g GoldTableItem) String() string {
	return fmt.Sprintf("(%s -> %s)", g.Src, g.Dst)
}

// Add inserts or replaces the forwarding for src, it reports
// false for the same inputs that the registry rejects.
func (t *GoldTable) Add(src, dst string) bool {
	if !digit.Valid(src) || !digit.Valid(dst) || src == dst {
		return false
	}
	for i, item := range *t {
		if item.Src == src {
			(*t)[i].Dst = dst // de-dupe
			return true
		}
	}
	*t = append(*t, GoldTableItem{src, dst})
	return true
}

// Remove deletes all forwardings with a source starting with prefix.
func (t *GoldTable) Remove(prefix string) {
	if !digit.Valid(prefix) {
		return
	}
	*t = slices.DeleteFunc(*t, func(item GoldTableItem) bool {
		return strings.HasPrefix(item.Src, prefix)
	})
}

// Get applies the forwarding with the longest matching source to num.
func (t GoldTable) Get(num string) string {
	if !digit.Valid(num) {
		return ""
	}

	best := -1
	for i, item := range t {
		if strings.HasPrefix(num, item.Src) && (best < 0 || len(item.Src) > len(t[best].Src)) {
			best = i
		}
	}
	if best < 0 {
		return num
	}
	return t[best].Dst + num[len(t[best].Src):]
}

// Reverse returns num and all numbers one forwarding maps to num,
// sorted and without duplicates.
func (t GoldTable) Reverse(num string) []string {
	if !digit.Valid(num) {
		return []string{""}
	}

	result := []string{num}
	for _, item := range t {
		if strings.HasPrefix(num, item.Dst) {
			result = append(result, item.Src+num[len(item.Dst):])
		}
	}

	slices.SortFunc(result, digit.Compare)
	return slices.Compact(result)
}

// GetReverse returns all x from Reverse with Get(x) == num.
func (t GoldTable) GetReverse(num string) []string {
	if !digit.Valid(num) {
		return []string{}
	}

	result := []string{}
	for _, x := range t.Reverse(num) {
		if t.Get(x) == num {
			result = append(result, x)
		}
	}
	return result
}

// AllSorted returns all forwardings in ascending digit order of the source.
func (t GoldTable) AllSorted() []GoldTableItem {
	result := slices.Clone(t)
	slices.SortFunc(result, func(a, b GoldTableItem) int {
		return digit.Compare(a.Src, b.Src)
	})
	return result
}
