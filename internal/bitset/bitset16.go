// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package bitset implements a small fixed size bitset,
// a mapping between the digit slots of a trie node and boolean values.
//
// Studied [github.com/bits-and-blooms/bitset] inside out
// and rewrote the needed parts from scratch for this project.
package bitset

import (
	"fmt"
	"math/bits"
)

// BitSet16 represents a fixed size bitset from [0..15].
//
// A phone number digit is one of 12 symbols, so 16 bits
// are enough for the occupancy of all child slots.
type BitSet16 uint16

func (b *BitSet16) String() string {
	return fmt.Sprint(b.All())
}

// MustSet sets the bit, it panic's if bit is > 15 by intention!
func (b *BitSet16) MustSet(bit uint) {
	if bit > 15 {
		panic(fmt.Sprintf("bitset: bit %d out of range [0..15]", bit))
	}
	*b |= 1 << bit
}

// MustClear clear the bit, it panic's if bit is > 15 by intention!
func (b *BitSet16) MustClear(bit uint) {
	if bit > 15 {
		panic(fmt.Sprintf("bitset: bit %d out of range [0..15]", bit))
	}
	*b &^= 1 << bit
}

// Test if the bit is set.
func (b *BitSet16) Test(bit uint) bool {
	return bit < 16 && *b&(1<<bit) != 0
}

// FirstSet returns the first bit set along with an ok code.
func (b *BitSet16) FirstSet() (first uint, ok bool) {
	if x := bits.TrailingZeros16(uint16(*b)); x != 16 {
		return uint(x), true
	}
	return
}

// NextSet returns the next bit set from the specified start bit,
// including possibly the current bit along with an ok code.
func (b *BitSet16) NextSet(bit uint) (uint, bool) {
	if bit >= 16 {
		return 0, false
	}

	if word := uint16(*b) >> bit; word != 0 {
		return bit + uint(bits.TrailingZeros16(word)), true
	}
	return 0, false
}

// AsSlice returns all set bits as slice of uint without
// heap allocations.
//
// This is faster than All, but also more dangerous,
// it panics if the capacity of buf is < b.Size()
func (b *BitSet16) AsSlice(buf []uint) []uint {
	buf = buf[:cap(buf)] // use cap as max len

	size := 0
	for word := uint16(*b); word != 0; size++ {
		// panics if capacity of buf is exceeded.
		buf[size] = uint(bits.TrailingZeros16(word))

		// clear the rightmost set bit
		word &= word - 1
	}

	return buf[:size]
}

// All returns all set bits. This has a simpler API but is slower than AsSlice.
func (b *BitSet16) All() []uint {
	return b.AsSlice(make([]uint, 0, 16))
}

// IsEmpty returns true if no bit is set.
func (b *BitSet16) IsEmpty() bool {
	return *b == 0
}

// Size is the number of set bits (popcount).
func (b *BitSet16) Size() int {
	return bits.OnesCount16(uint16(*b))
}
