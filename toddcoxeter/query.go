// SPDX-License-Identifier: MIT

package toddcoxeter

import "github.com/libsemigroups/libsemigroups-sub000/internal/digraph"

// TriBool is a three-valued result for queries that must not trigger
// enumeration: True, False, or Unknown (not yet determinable).
type TriBool int

const (
	Unknown TriBool = iota
	True
	False
)

// NumberOfClasses runs the engine to completion and returns the class
// count; infinite reports true if the quotient is provably infinite
// (in which case count is meaningless).
func (tc *ToddCoxeter) NumberOfClasses() (count int, infinite bool) {
	if err := tc.Run(); err != nil {
		if _, ok := err.(*UnboundedEnumerationError); ok {
			return 0, true
		}
	}
	n := tc.arena.Active()
	if !tc.pres.ContainsEmptyWord {
		n--
	}
	return n, false
}

// CurrentWordGraph returns the current (possibly incomplete) word
// graph without triggering enumeration.
func (tc *ToddCoxeter) CurrentWordGraph() *digraph.WordGraph { return tc.word }

// CurrentSpanningTree returns the current spanning forest (parent id
// and incoming-edge label per active node), or nil if the graph has
// never been standardised.
func (tc *ToddCoxeter) CurrentSpanningTree() (parent []digraph.Node, label []int) {
	return tc.parent, tc.parentLabel
}

// Graph runs the engine to completion and returns the resulting word graph.
func (tc *ToddCoxeter) Graph() (*digraph.WordGraph, error) {
	if err := tc.Run(); err != nil {
		return nil, err
	}
	return tc.word, nil
}

// SpanningTree runs the engine to completion, standardising if
// necessary, and returns the spanning forest.
func (tc *ToddCoxeter) SpanningTree() ([]digraph.Node, []int, error) {
	if err := tc.Run(); err != nil {
		return nil, nil, err
	}
	if !tc.standardised {
		if _, err := tc.Standardize(OrderShortlex); err != nil {
			return nil, nil, err
		}
	}
	return tc.parent, tc.parentLabel, nil
}

// ReduceNoRun produces a canonical representative of word's class
// using only the current (possibly incomplete) graph; if word's class
// cannot yet be determined or the graph is unstandardised, it returns
// word unchanged.
func (tc *ToddCoxeter) ReduceNoRun(word digraph.Word) digraph.Word {
	n := tc.word.FollowPath(0, word)
	if n == digraph.Undefined || tc.parent == nil {
		return word.Clone()
	}
	return tc.spellFromTree(n)
}

// Reduce runs the engine to completion, standardises if necessary, and
// produces the canonical representative of word's class.
func (tc *ToddCoxeter) Reduce(word digraph.Word) (digraph.Word, error) {
	if err := tc.Run(); err != nil {
		return nil, err
	}
	if !tc.standardised {
		if _, err := tc.Standardize(OrderShortlex); err != nil {
			return nil, err
		}
	}
	return tc.ReduceNoRun(word), nil
}

// Contains runs the engine to completion and reports whether u and v
// name the same class.
func (tc *ToddCoxeter) Contains(u, v digraph.Word) (bool, error) {
	ru, err := tc.Reduce(u)
	if err != nil {
		return false, err
	}
	rv, err := tc.Reduce(v)
	if err != nil {
		return false, err
	}
	return wordsEqual(ru, rv), nil
}

// CurrentlyContains reports class equality using only the current
// graph, never triggering enumeration; it returns Unknown when either
// word's class cannot yet be determined.
func (tc *ToddCoxeter) CurrentlyContains(u, v digraph.Word) TriBool {
	nu := tc.word.FollowPath(0, u)
	nv := tc.word.FollowPath(0, v)
	if nu == digraph.Undefined || nv == digraph.Undefined {
		return Unknown
	}
	if tc.arena.Find(nu) == tc.arena.Find(nv) {
		return True
	}
	return False
}

// IndexOf returns the class index of word once the graph is
// standardised (node ids and class indices coincide after
// standardisation).
func (tc *ToddCoxeter) IndexOf(word digraph.Word) (int, error) {
	if err := tc.Run(); err != nil {
		return 0, err
	}
	if !tc.standardised {
		if _, err := tc.Standardize(OrderShortlex); err != nil {
			return 0, err
		}
	}
	n := tc.word.FollowPath(0, word)
	if n == digraph.Undefined {
		return 0, invalidRule("word does not label a path from the initial node")
	}
	return int(n), nil
}

// WordOf returns a word spelling class index once the graph is
// standardised.
func (tc *ToddCoxeter) WordOf(index int) (digraph.Word, error) {
	if err := tc.Run(); err != nil {
		return nil, err
	}
	if !tc.standardised {
		if _, err := tc.Standardize(OrderShortlex); err != nil {
			return nil, err
		}
	}
	if index < 0 || index >= tc.arena.Active() {
		return nil, &PreconditionError{Sentinel: ErrIndexOutOfBounds, Detail: "class index out of range"}
	}
	return tc.spellFromTree(digraph.Node(index)), nil
}

func wordsEqual(a, b digraph.Word) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
