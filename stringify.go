// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package phfwd

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gaissmai/phfwd/internal/digit"
	"github.com/gaissmai/phfwd/internal/stack"
)

// MarshalText implements the [encoding.TextMarshaler] interface,
// just a wrapper for [Forwarder.Fprint].
func (f *Forwarder) MarshalText() ([]byte, error) {
	w := new(bytes.Buffer)
	if err := f.Fprint(w); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// String returns a hierarchical tree diagram of the ordered forwardings
// as string, just a wrapper for [Forwarder.Fprint].
// If Fprint returns an error, String panics.
func (f *Forwarder) String() string {
	w := new(strings.Builder)
	if err := f.Fprint(w); err != nil {
		panic(err)
	}

	return w.String()
}

// Fprint writes a hierarchical tree diagram of the ordered forwardings
// to w. If w is nil, Fprint panics.
//
// The order from top to bottom is the ascending digit order of the
// sources, a forwarding is nested below the forwarding with the
// longest source that is a proper prefix of its own source.
//
//	▼
//	├─ 1 -> 5
//	│  ├─ 12 -> 3
//	│  └─ 1# -> 0
//	└─ 601 -> 602
func (f *Forwarder) Fprint(w io.Writer) error {
	if w == nil {
		panic("phfwd: Fprint with nil writer")
	}
	if f == nil || f.root.isEmpty() {
		return nil
	}

	if _, err := fmt.Fprint(w, "▼\n"); err != nil {
		return err
	}

	return f.root.fprintRec(w, "", "")
}

// fprintRec, the output is a hierarchical tree starting with the
// forwardings covered by the node with the given path.
func (n *node) fprintRec(w io.Writer, path string, pad string) error {
	directKids := n.getKids(path)

	// symbols used in tree
	glyphe := "├─ "
	spacer := "│  "

	// for all direct kids under this node ...
	for i, kid := range directKids {
		// ... treat last kid special
		if i == len(directKids)-1 {
			glyphe = "└─ "
			spacer = "   "
		}

		if _, err := fmt.Fprintf(w, "%s%s -> %s\n", pad+glyphe, kid.path, kid.n.forward); err != nil {
			return err
		}

		// rec-descent with this forwarding as new parent,
		// the depth is bounded by the number of nested forwardings.
		if err := kid.n.fprintRec(w, kid.path, pad+spacer); err != nil {
			return err
		}
	}

	return nil
}

// getKids returns the nearest forwarding nodes below n, in ascending
// digit order. The descent stops at each forwarding node, the forwardings
// below it are its own kids.
func (n *node) getKids(path string) []kid {
	var directKids []kid

	st := stack.New[kid](digit.Size)

	// start with the children, n itself is the parent
	pushKids(st, kid{n: n, path: path})

	for !st.IsEmpty() {
		k, _ := st.Pop()

		if k.n.hasForward() {
			directKids = append(directKids, k)
			continue
		}
		pushKids(st, k)
	}

	return directKids
}
