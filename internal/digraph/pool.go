// SPDX-License-Identifier: MIT

package digraph

import (
	"sync"
	"sync/atomic"
)

// NodePool is a type-safe wrapper around sync.Pool specialised for
// reusable []Node scratch buffers: BFS/DFS work queues used repeatedly
// across run/run_for/standardize calls. It tracks allocation stats the
// same way the teacher's node pool does, for debugging and tuning.
type NodePool struct {
	sync.Pool

	totalAllocated atomic.Int64
	currentLive    atomic.Int64
}

// NewNodePool creates a pool whose fresh buffers start with the given capacity.
func NewNodePool(capacity int) *NodePool {
	p := &NodePool{}
	p.New = func() any {
		p.totalAllocated.Add(1)
		buf := make([]Node, 0, capacity)
		return &buf
	}
	return p
}

// Get retrieves a zero-length buffer from the pool, or allocates one.
func (p *NodePool) Get() *[]Node {
	if p == nil {
		buf := make([]Node, 0)
		return &buf
	}
	p.currentLive.Add(1)
	buf := p.Pool.Get().(*[]Node)
	*buf = (*buf)[:0]
	return buf
}

// Put returns buf to the pool for reuse.
func (p *NodePool) Put(buf *[]Node) {
	if p == nil {
		return
	}
	p.currentLive.Add(-1)
	p.Pool.Put(buf)
}

// Stats reports the number of buffers currently checked out and the
// total ever allocated.
func (p *NodePool) Stats() (live, total int64) {
	if p == nil {
		return 0, 0
	}
	return p.currentLive.Load(), p.totalAllocated.Load()
}
