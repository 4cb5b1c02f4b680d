// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/gaissmai/phfwd"
)

// runScript executes one command per line against f and writes
// the query results to w, one line per query:
//
//	ADD src dst
//	DEL prefix
//	GET num
//	REV num
//	GETREV num
//	LIST
//
// Verbs are case insensitive, blank lines are skipped.
// The first failing command stops the script.
func runScript(r io.Reader, w io.Writer, f *phfwd.Forwarder, log *zap.Logger) error {
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if err := execLine(fields, w, f); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		log.Debug("executed", zap.Int("line", lineNo), zap.Strings("cmd", fields))
	}

	return scanner.Err()
}

// execLine runs a single command.
func execLine(fields []string, w io.Writer, f *phfwd.Forwarder) error {
	verb, args := strings.ToUpper(fields[0]), fields[1:]

	arity := map[string]int{
		"ADD":    2,
		"DEL":    1,
		"GET":    1,
		"REV":    1,
		"GETREV": 1,
		"LIST":   0,
	}

	want, ok := arity[verb]
	if !ok {
		return fmt.Errorf("unknown command %q", fields[0])
	}
	if len(args) != want {
		return fmt.Errorf("%s: want %d arguments, got %d", verb, want, len(args))
	}

	var err error
	switch verb {
	case "ADD":
		return f.Add(args[0], args[1])
	case "DEL":
		f.Remove(args[0])
	case "GET":
		err = printNumbers(w, f.Get(args[0]))
	case "REV":
		err = printNumbers(w, f.Reverse(args[0]))
	case "GETREV":
		err = printNumbers(w, f.GetReverse(args[0]))
	case "LIST":
		err = f.Fprint(w)
	}
	return err
}

// printNumbers writes the entries of ns space separated on one line.
func printNumbers(w io.Writer, ns *phfwd.Numbers) error {
	_, err := fmt.Fprintln(w, strings.Join(ns.Slice(), " "))
	return err
}
