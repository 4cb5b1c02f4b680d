// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package digit

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexChar(t *testing.T) {
	t.Parallel()

	symbols := "0123456789*#"
	for i := range len(symbols) {
		idx, ok := Index(symbols[i])
		assert.True(t, ok, "Index(%q)", symbols[i])
		assert.Equal(t, uint8(i), idx, "Index(%q)", symbols[i])
		assert.Equal(t, symbols[i], Char(uint8(i)), "Char(%d)", i)
	}

	for _, c := range []byte("abc+-! \x00") {
		_, ok := Index(c)
		assert.False(t, ok, "Index(%q)", c)
		assert.False(t, IsDigit(c), "IsDigit(%q)", c)
	}

	assert.Equal(t, byte('!'), Char(12))
	assert.Equal(t, byte('!'), Char(255))
}

func TestValid(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"0", true},
		{"123*#", true},
		{"#*", true},
		{"12a", false},
		{"12 3", false},
		{"+48123", false},
		{"1\x00", false},
	}

	for _, tc := range tcs {
		assert.Equal(t, tc.want, Valid(tc.in), "Valid(%q)", tc.in)
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "0", -1},
		{"0", "", 1},
		{"12", "12", 0},
		{"12", "123", -1},
		{"9", "*", -1},
		{"*", "#", -1},
		{"#", "*", 1},
		{"#0", "*9", 1},
		{"10", "9", -1},
	}

	for _, tc := range tcs {
		assert.Equal(t, tc.want, Compare(tc.a, tc.b), "Compare(%q, %q)", tc.a, tc.b)
		assert.Equal(t, tc.want < 0, Less(tc.a, tc.b), "Less(%q, %q)", tc.a, tc.b)
	}
}

func TestCompareSortOrder(t *testing.T) {
	t.Parallel()

	got := []string{"#", "1", "*", "0", "12", "9", "1#", "1*"}
	slices.SortFunc(got, Compare)

	want := []string{"0", "1", "12", "1*", "1#", "9", "*", "#"}
	assert.Equal(t, want, got)
}

func TestHasPrefix(t *testing.T) {
	t.Parallel()

	assert.True(t, HasPrefix("123", ""))
	assert.True(t, HasPrefix("123", "12"))
	assert.True(t, HasPrefix("123", "123"))
	assert.False(t, HasPrefix("123", "1234"))
	assert.False(t, HasPrefix("123", "13"))
}
