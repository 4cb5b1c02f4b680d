// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package phfwd provides a registry for phone number forwardings.
//
// A phone number is a non-empty string over the 12 symbols
// 0-9, * and #. A forwarding maps a source prefix to a target prefix:
// every number starting with the source is forwarded to the same
// number with the source replaced by the target.
//
//	f := phfwd.New()
//	_ = f.Add("601", "602")
//	f.Get("601123").At(0) // "602123"
//
// The registry supports:
//
//   - Get:        longest-prefix resolution, applied once, never chained
//   - Reverse:    all structural preimages of a number
//   - GetReverse: the preimages that Get really maps to the number
//   - Remove:     delete every forwarding below a prefix
//
// The forwardings are stored in a 12-ary trie keyed by digit.
// Removal prunes chains of dead nodes up to the nearest branching or
// forwarding ancestor. Add, Remove, the queries and [Forwarder.All] walk
// the trie with an explicit stack, so the length of a number never bounds
// the depth of the call stack. Only the dumpers, [Forwarder.Fprint] and
// [Forwarder.DumpList], recurse: one call level per nested forwarding.
//
// A Forwarder is not safe for concurrent mutation, see the
// concurrency example for a simple wrapper.
package phfwd
