// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package phfwd

import (
	"testing"
)

func TestNodePool_ReuseAndStats(t *testing.T) {
	t.Parallel()

	pool := newPool()

	live0, total0 := pool.Stats()
	if live0 != 0 || total0 != 0 {
		t.Fatalf("initial stats incorrect: live=%d, total=%d", live0, total0)
	}

	// Get a node from the pool
	n1 := pool.Get()
	n1.forward = "42"
	n1.insertChild(7, new(node))

	live1, total1 := pool.Stats()
	if live1 != 1 || total1 != 1 {
		t.Errorf("expected live=1 and total=1 after Get; got live=%d, total=%d", live1, total1)
	}

	// Return to pool
	pool.Put(n1)

	live2, total2 := pool.Stats()
	if live2 != 0 || total2 != 1 {
		t.Errorf("expected live=0, total=1 after Put(); got live=%d, total=%d", live2, total2)
	}

	// Get again: may reuse, must be reset
	n2 := pool.Get()

	if !n2.isEmpty() || n2.parent != nil || !n2.children.IsEmpty() {
		t.Error("expected reused node to be reset")
	}
	if n2.getChild(7) != nil {
		t.Error("expected child at 7 to be cleared")
	}

	pool.Put(n2)
}

func TestNodePool_Nil(t *testing.T) {
	t.Parallel()

	var pool *pool

	n := pool.Get()
	if n == nil {
		t.Fatal("nil pool must still hand out nodes")
	}
	pool.Put(n)

	if live, total := pool.Stats(); live != 0 || total != 0 {
		t.Errorf("nil pool stats, got live=%d, total=%d", live, total)
	}
}

func TestForwarderReleasesNodes(t *testing.T) {
	t.Parallel()

	f := New()
	mustAdd(t, f, "1234", "5")
	mustAdd(t, f, "1299", "5")

	live, total := f.pool.Stats()
	if live != 6 || total < 6 {
		t.Errorf("after Add: live=%d, total=%d, want live=6", live, total)
	}

	f.Remove("1")

	if live, _ := f.pool.Stats(); live != 0 {
		t.Errorf("after Remove: live=%d, want 0", live)
	}
}
