// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gaissmai/phfwd"
)

func TestRunScript(t *testing.T) {
	t.Parallel()

	script := `
ADD 17 0
add 22 0
ADD 601 602

GET 601123
REV 0
GETREV 0
DEL 2
REV 0
GET 12a
LIST
`

	var out bytes.Buffer
	err := runScript(strings.NewReader(script), &out, phfwd.New(), zap.NewNop())
	require.NoError(t, err)

	want := `602123
0 17 22
0 17 22
0 17

▼
├─ 17 -> 0
└─ 601 -> 602
`
	assert.Equal(t, want, out.String())
}

func TestRunScriptErrors(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name   string
		script string
		errMsg string
	}{
		{"unknown verb", "FOO 1", `line 1: unknown command "FOO"`},
		{"arity", "GET\n", "line 1: GET: want 1 arguments, got 0"},
		{"too many", "\nADD 1 2 3", "line 2: ADD: want 2 arguments, got 3"},
		{"invalid add", "ADD 1 1", "line 1: phfwd: source and target are equal"},
		{"invalid number", "ADD 1 2x", "line 1: phfwd: invalid number"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			err := runScript(strings.NewReader(tc.script), &out, phfwd.New(), zap.NewNop())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestRunScriptStopsAtFirstError(t *testing.T) {
	t.Parallel()

	f := phfwd.New()
	var out bytes.Buffer

	err := runScript(strings.NewReader("ADD 1 2\nBOOM\nADD 3 4\n"), &out, f, zap.NewNop())
	require.Error(t, err)
	assert.Equal(t, 1, f.Len())
}
