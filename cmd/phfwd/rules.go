// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gaissmai/phfwd"
)

// Rules is the YAML document with the initial forwardings.
//
//	forwardings:
//	  - from: "601"
//	    to: "602"
//
// Numbers with * or # must be quoted, # starts a YAML comment.
type Rules struct {
	Forwardings []Rule `yaml:"forwardings"`
}

// Rule is a single forwarding.
type Rule struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// decodeRules parses a rules document, an empty document has no rules.
func decodeRules(r io.Reader) (*Rules, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var rules Rules
	if err := dec.Decode(&rules); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding rules: %w", err)
	}
	return &rules, nil
}

// loadRules reads the rules file at path.
func loadRules(path string) (*Rules, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rules, err := decodeRules(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rules, nil
}

// apply adds all rules in order, a later rule for the same source wins.
func (rs *Rules) apply(f *phfwd.Forwarder) error {
	for i, r := range rs.Forwardings {
		if err := f.Add(r.From, r.To); err != nil {
			return fmt.Errorf("rule #%d: %w", i+1, err)
		}
	}
	return nil
}
