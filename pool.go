// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package phfwd

import (
	"sync"
	"sync/atomic"
)

// pool is a type-safe wrapper around sync.Pool,
// specialized for managing *node instances.
//
// It reuses node memory and tracks statistics
// on allocations and active use. The live counter is
// the number of nodes currently linked into the trie.
type pool struct {
	sync.Pool // embedded Sync Pool for *node

	totalAllocated atomic.Int64 // total number of *node ever allocated
	currentLive    atomic.Int64 // number of nodes currently in use (not returned to pool)
}

// newPool creates and returns a new pool for *node instances.
func newPool() *pool {
	p := &pool{}
	p.New = func() any {
		p.totalAllocated.Add(1)

		return new(node)
	}
	return p
}

// Get retrieves a clean *node from the pool, or creates a new one if needed.
//
// If the pool is nil, a new node is returned without tracking.
func (p *pool) Get() *node {
	if p == nil {
		return new(node)
	}
	p.currentLive.Add(1)

	return p.Pool.Get().(*node)
}

// Put returns a *node back to the pool for potential reuse.
//
// The node is reset before storage, so no stale links survive.
// If the pool is nil, the node is discarded and not reused.
func (p *pool) Put(n *node) {
	if p == nil {
		return
	}
	p.currentLive.Add(-1)

	n.reset()
	p.Pool.Put(n)
}

// Stats returns the number of currently live (checked-out) nodes
// and the total number of *node objects ever allocated by this pool.
func (p *pool) Stats() (live int64, total int64) {
	if p == nil {
		return 0, 0
	}
	return p.currentLive.Load(), p.totalAllocated.Load()
}
