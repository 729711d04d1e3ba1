// SPDX-License-Identifier: MIT

package stephen

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/libsemigroups/libsemigroups-sub000/internal/digraph"
)

// Standardize renumbers the active nodes in shortlex (BFS) order,
// builds the spanning forest, and compacts the graph so ids become
// {0, ..., active-1}. Stephen graphs always use shortlex order: it is
// what makes enumerating the left-factor language in shortlex order a
// simple BFS read-off afterwards.
func (s *Stephen) Standardize() {
	capacity := s.arena.Capacity()
	parent := make([]digraph.Node, capacity)
	parentLabel := make([]int, capacity)
	visited := bitset.New(uint(capacity))

	order := make([]digraph.Node, 0, s.arena.Active())
	queuePtr := s.scratch.Get()
	defer s.scratch.Put(queuePtr)
	queue := append(*queuePtr, 0)
	visited.Set(0)
	order = append(order, 0)

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for a := 0; a < s.word.Degree; a++ {
			t := s.word.Target(n, a)
			if t == digraph.Undefined || visited.Test(uint(t)) {
				continue
			}
			visited.Set(uint(t))
			parent[t] = n
			parentLabel[t] = a
			order = append(order, t)
			queue = append(queue, t)
		}
	}
	*queuePtr = queue

	oldToNew := make(map[digraph.Node]digraph.Node, len(order))
	for newID, oldID := range order {
		oldToNew[oldID] = digraph.Node(newID)
	}

	s.word.Renumber(order, oldToNew)
	s.arena.Renumber(order)
	s.accept = oldToNew[s.accept]

	newParent := make([]digraph.Node, len(order))
	newLabel := make([]int, len(order))
	for newID, oldID := range order {
		if oldID == 0 {
			continue
		}
		newParent[newID] = oldToNew[parent[oldID]]
		newLabel[newID] = parentLabel[oldID]
	}

	s.parent = newParent
	s.parentLabel = newLabel
	s.standardised = true
}

// WordOf spells the word labelling the path from node 0 to the given
// (standardised) node index.
func (s *Stephen) WordOf(index digraph.Node) digraph.Word {
	var labels []int
	n := index
	for n != 0 {
		labels = append(labels, s.parentLabel[n])
		n = s.parent[n]
	}
	word := make(digraph.Word, len(labels))
	for i, l := range labels {
		word[len(labels)-1-i] = l
	}
	return word
}
