// SPDX-License-Identifier: MIT

// Package felsch implements the Felsch closure engine: a tree index
// over the relator set (FelschTree) and the graph that uses it to
// propagate the consequences of a single new edge through every
// relator that could be affected (FelschGraph).
package felsch

import "github.com/libsemigroups/libsemigroups-sub000/internal/digraph"

// Occurrence records that letter x occurs at Position within relator
// RelatorIndex's Side (0 = left word, 1 = right word).
type Occurrence struct {
	RelatorIndex int
	Side         int
	Position     int
}

// Tree answers "which relators contain letter x at some internal
// position, and where" in amortised-constant time per occurrence,
// the way an Aho-Corasick automaton over the relator set would, but
// realised here as a direct per-letter occurrence index: build time is
// linear in total relator length (one pass inserting every letter of
// every relator side), and each query touches only the occurrences
// that actually exist for that letter — the same complexity profile,
// without walking failure links nobody needs because every query is
// keyed by a single letter rather than a substring.
type Tree struct {
	byLetter [][]Occurrence
	rules    []digraph.Rule
}

// NewTree builds the index from rules over an alphabet of the given size.
func NewTree(rules []digraph.Rule, alphabetSize int) *Tree {
	t := &Tree{
		byLetter: make([][]Occurrence, alphabetSize),
		rules:    rules,
	}
	for ri, r := range rules {
		t.indexSide(ri, 0, r.Left)
		t.indexSide(ri, 1, r.Right)
	}
	return t
}

func (t *Tree) indexSide(relatorIndex, side int, w digraph.Word) {
	for pos, x := range w {
		t.byLetter[x] = append(t.byLetter[x], Occurrence{
			RelatorIndex: relatorIndex,
			Side:         side,
			Position:     pos,
		})
	}
}

// SourcesOf returns every occurrence of letter x across both sides of
// every relator.
func (t *Tree) SourcesOf(x int) []Occurrence {
	return t.byLetter[x]
}

// Rules returns the underlying relator list the tree was built from.
func (t *Tree) Rules() []digraph.Rule { return t.rules }

// Side returns the word named by an Occurrence's Side field.
func (t *Tree) Side(o Occurrence) digraph.Word {
	r := t.rules[o.RelatorIndex]
	if o.Side == 0 {
		return r.Left
	}
	return r.Right
}

// OtherSide returns the word on the opposite side of o's relator.
func (t *Tree) OtherSide(o Occurrence) digraph.Word {
	r := t.rules[o.RelatorIndex]
	if o.Side == 0 {
		return r.Right
	}
	return r.Left
}
