// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package phfwd

import (
	"encoding/json"
)

// DumpListNode contains a forwarding and the forwardings it covers,
// representing the trie in a sorted, recursive representation,
// especially useful for serialization.
type DumpListNode struct {
	From    string         `json:"from"`
	To      string         `json:"to"`
	Covered []DumpListNode `json:"covered,omitempty"`
}

// MarshalJSON dumps the forwarder into a nested list of forwardings,
// a list and not a map (from -> {to, covered}), because the order matters.
func (f *Forwarder) MarshalJSON() ([]byte, error) {
	list := f.DumpList()
	if list == nil {
		list = []DumpListNode{}
	}

	return json.Marshal(list)
}

// DumpList dumps the forwardings into a list of roots and their covered
// forwardings, nested and ordered like [Forwarder.Fprint].
func (f *Forwarder) DumpList() []DumpListNode {
	if f == nil || f.root.isEmpty() {
		return nil
	}
	return f.root.dumpListRec("")
}

func (n *node) dumpListRec(path string) []DumpListNode {
	directKids := n.getKids(path)

	nodes := make([]DumpListNode, 0, len(directKids))
	for _, kid := range directKids {
		nodes = append(nodes, DumpListNode{
			From:    kid.path,
			To:      kid.n.forward,
			Covered: kid.n.dumpListRec(kid.path),
		})
	}

	return nodes
}
