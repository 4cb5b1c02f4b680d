// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaissmai/phfwd"
)

const sampleRules = `
forwardings:
  - from: "601"
    to: "602"
  - from: "1#"
    to: "*"
  - from: 17
    to: 0
`

func TestDecodeRules(t *testing.T) {
	t.Parallel()

	rules, err := decodeRules(strings.NewReader(sampleRules))
	require.NoError(t, err)

	want := []Rule{
		{From: "601", To: "602"},
		{From: "1#", To: "*"},
		{From: "17", To: "0"},
	}
	assert.Equal(t, want, rules.Forwardings)
}

func TestDecodeRulesEmpty(t *testing.T) {
	t.Parallel()

	rules, err := decodeRules(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rules.Forwardings)
}

func TestDecodeRulesUnknownField(t *testing.T) {
	t.Parallel()

	_, err := decodeRules(strings.NewReader("forwardings:\n  - from: \"1\"\n    too: \"2\"\n"))
	assert.Error(t, err)
}

func TestRulesApply(t *testing.T) {
	t.Parallel()

	rules, err := decodeRules(strings.NewReader(sampleRules))
	require.NoError(t, err)

	f := phfwd.New()
	require.NoError(t, rules.apply(f))

	assert.Equal(t, 3, f.Len())
	assert.Equal(t, "602123", f.Get("601123").At(0))
	assert.Equal(t, "*5", f.Get("1#5").At(0))
}

func TestRulesApplyInvalid(t *testing.T) {
	t.Parallel()

	rules := &Rules{Forwardings: []Rule{
		{From: "1", To: "2"},
		{From: "3", To: "3"},
	}}

	err := rules.apply(phfwd.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, phfwd.ErrSameNumber)
	assert.Contains(t, err.Error(), "rule #2")
}

func TestLoadRules(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleRules), 0o600))

	rules, err := loadRules(path)
	require.NoError(t, err)
	assert.Len(t, rules.Forwardings, 3)

	_, err = loadRules(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
