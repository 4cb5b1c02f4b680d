// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package digit maps the 12 symbols of a phone number
// to the indices 0..11 and back.
//
//	'0' .. '9' -> 0 .. 9
//	'*'        -> 10
//	'#'        -> 11
//
// The index order is also the sort order of numbers.
package digit

// Size is the number of distinct phone number symbols.
const Size = 12

// invalid is returned by Char for out of range indices.
const invalid = '!'

// Index returns the index of the symbol c and true,
// or 0 and false if c is not a phone number symbol.
func Index(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case c == '*':
		return 10, true
	case c == '#':
		return 11, true
	}
	return 0, false
}

// Char returns the symbol for the index i, or '!' if i > 11.
func Char(i uint8) byte {
	switch {
	case i <= 9:
		return '0' + i
	case i == 10:
		return '*'
	case i == 11:
		return '#'
	}
	return invalid
}

// IsDigit reports whether c is one of the 12 phone number symbols.
func IsDigit(c byte) bool {
	_, ok := Index(c)
	return ok
}

// Valid reports whether s is a well formed number:
// non-empty and made of phone number symbols only.
func Valid(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		if !IsDigit(s[i]) {
			return false
		}
	}
	return true
}

// Compare returns an integer comparing a and b digit by digit
// in the symbol order 0<1<...<9<*<#. A proper prefix sorts first.
// The result is -1, 0 or +1.
//
// Bytes outside the alphabet sort before all symbols,
// callers are expected to compare valid numbers only.
func Compare(a, b string) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] == b[i] {
			continue
		}
		if rank(a[i]) < rank(b[i]) {
			return -1
		}
		return 1
	}

	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// Less reports whether a sorts before b, see [Compare].
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// HasPrefix reports whether prefix is a digit-wise prefix of s.
func HasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

// rank is the sort key of a byte, -1 for non-symbols.
func rank(c byte) int {
	if i, ok := Index(c); ok {
		return int(i)
	}
	return -1
}
