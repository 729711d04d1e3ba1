// SPDX-License-Identifier: MIT

package toddcoxeter

import "github.com/libsemigroups/libsemigroups-sub000/internal/digraph"

// Reducer maps a word to a reduced representative from some external
// rewriting system (e.g. Knuth-Bendix); it is a pure collaborator
// injected at the call site and never constructed by this package.
type Reducer func(w digraph.Word) digraph.Word

// lookbehindFlushInterval is how often a pending batch of coincidences
// is drained through the coincidence queue while walking nodes.
const lookbehindFlushInterval = 32_768

// PerformLookbehind reconstructs every active node's spelling from the
// current spanning tree, rewrites it through reduce, and merges back
// any resulting collision. Two-sided congruences only, and only once a
// spanning tree exists (i.e. after at least one standardize call).
func (tc *ToddCoxeter) PerformLookbehind(reduce Reducer) error {
	if tc.kind != TwoSided {
		return invalidRule("lookbehind is only defined for two-sided congruences")
	}
	if tc.parent == nil {
		return invalidRule("lookbehind requires a prior standardize call")
	}

	prev := tc.setState(stateLookbehind)
	defer tc.state.Store(int32(prev))
	tc.report("lookbehind:start")
	defer tc.report("lookbehind:stop")

	pending := 0
	for _, n := range tc.arena.ActiveNodes() {
		w := tc.spellFromTree(n)
		reduced := reduce(w)

		target := tc.word.FollowPath(0, reduced)
		if target != digraph.Undefined && target != n {
			lo, hi := n, target
			if lo > hi {
				lo, hi = hi, lo
			}
			tc.fg.Queue.Push(lo, hi)
			pending++
		}

		if pending >= lookbehindFlushInterval {
			tc.fg.ProcessDefinitions()
			pending = 0
		}
	}
	tc.fg.ProcessDefinitions()
	return nil
}

// spellFromTree walks the spanning forest from n back to the root,
// collecting edge labels, then reverses them into a word readable from
// node 0.
func (tc *ToddCoxeter) spellFromTree(n digraph.Node) digraph.Word {
	var labels []int
	for n != 0 {
		labels = append(labels, tc.parentLabel[n])
		n = tc.parent[n]
	}
	word := make(digraph.Word, len(labels))
	for i, l := range labels {
		word[len(labels)-1-i] = l
	}
	return word
}
