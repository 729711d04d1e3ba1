// SPDX-License-Identifier: MIT

package toddcoxeter

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/libsemigroups/libsemigroups-sub000/internal/digraph"
)

// Standardize renumbers the active nodes according to order and
// rebuilds the spanning forest used for word<->index conversion.
// order == OrderNone is rejected as invalid. Returns whether the graph
// was actually modified (permutation differed from identity).
func (tc *ToddCoxeter) Standardize(order Order) (bool, error) {
	if order == OrderNone {
		return false, invalidRule("standardize(none) is not a valid request")
	}

	visitOrder, parent, parentLabel := tc.traverse(order)

	changed := false
	for i, old := range visitOrder {
		if int(old) != i {
			changed = true
			break
		}
	}

	if changed {
		oldToNew := make(map[digraph.Node]digraph.Node, len(visitOrder))
		for newID, oldID := range visitOrder {
			oldToNew[oldID] = digraph.Node(newID)
		}
		tc.word.Renumber(visitOrder, oldToNew)
		tc.arena.Renumber(visitOrder)

		remappedParent := make([]digraph.Node, len(visitOrder))
		remappedLabel := make([]int, len(visitOrder))
		for newID, oldID := range visitOrder {
			if oldID == 0 {
				remappedParent[newID] = 0
				continue
			}
			remappedParent[newID] = oldToNew[parent[oldID]]
			remappedLabel[newID] = parentLabel[oldID]
		}
		parent, parentLabel = remappedParent, remappedLabel
	}

	tc.parent = parent
	tc.parentLabel = parentLabel
	tc.standardOrder = order
	tc.standardised = true
	return changed, nil
}

// traverse computes the node-visit order (old ids, in new-id order)
// and the spanning-forest parent/label maps over old ids, for the
// requested order.
func (tc *ToddCoxeter) traverse(order Order) (visitOrder []digraph.Node, parent []digraph.Node, parentLabel []int) {
	capacity := tc.arena.Capacity()
	parent = make([]digraph.Node, capacity)
	parentLabel = make([]int, capacity)
	visited := bitset.New(uint(capacity))

	visitOrder = make([]digraph.Node, 0, tc.arena.Active())
	visit := func(n digraph.Node) {
		visited.Set(uint(n))
		visitOrder = append(visitOrder, n)
	}

	switch order {
	case OrderShortlex:
		queuePtr := tc.scratch.Get()
		defer tc.scratch.Put(queuePtr)
		queue := append(*queuePtr, 0)
		visit(0)
		for len(queue) > 0 {
			n := queue[0]
			queue = queue[1:]
			for a := 0; a < tc.word.Degree; a++ {
				t := tc.word.Target(n, a)
				if t == digraph.Undefined || visited.Test(uint(t)) {
					continue
				}
				parent[t] = n
				parentLabel[t] = a
				visit(t)
				queue = append(queue, t)
			}
		}
		*queuePtr = queue
	case OrderLex, OrderRecursive:
		var dfs func(n digraph.Node)
		dfs = func(n digraph.Node) {
			for a := 0; a < tc.word.Degree; a++ {
				t := tc.word.Target(n, a)
				if t == digraph.Undefined || visited.Test(uint(t)) {
					continue
				}
				parent[t] = n
				parentLabel[t] = a
				visit(t)
				dfs(t)
			}
		}
		visit(0)
		dfs(0)
	}

	return visitOrder, parent, parentLabel
}

// ShrinkToFit compacts inactive nodes away. It is a silent no-op unless
// the engine has already been run to completion.
func (tc *ToddCoxeter) ShrinkToFit() {
	if !tc.finished {
		return
	}
	order := tc.arena.ActiveNodes()
	oldToNew := make(map[digraph.Node]digraph.Node, len(order))
	for newID, oldID := range order {
		oldToNew[oldID] = digraph.Node(newID)
	}
	tc.word.Renumber(order, oldToNew)
	tc.arena.Renumber(order)
	tc.standardised = false
	tc.parent = nil
	tc.parentLabel = nil
}
