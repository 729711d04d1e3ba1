// SPDX-License-Identifier: MIT

package felsch

import (
	"testing"

	"github.com/libsemigroups/libsemigroups-sub000/internal/digraph"
)

func newTestGraph(rules []digraph.Rule, alphabetSize, capacity int) *Graph {
	arena := digraph.NewNodeArena(capacity)
	word := digraph.NewWordGraph(alphabetSize, capacity)
	tree := NewTree(rules, alphabetSize)
	return NewGraph(arena, word, tree)
}

// TestMergeTargetsIfPossibleNoOpWhenBothUndefined checks the default
// prefer_defs policy: with neither edge defined, Felsch's merge must
// not grow the graph.
func TestMergeTargetsIfPossibleNoOpWhenBothUndefined(t *testing.T) {
	g := newTestGraph(nil, 2, 4)
	before := g.Arena.Active()

	if g.MergeTargetsIfPossible(0, 0, 0, 1) {
		t.Fatal("MergeTargetsIfPossible must report false when neither edge exists")
	}
	if g.Word.Target(0, 0) != digraph.Undefined || g.Word.Target(0, 1) != digraph.Undefined {
		t.Fatal("MergeTargetsIfPossible must not define any edge when neither exists")
	}
	if g.Arena.Active() != before {
		t.Fatal("MergeTargetsIfPossible must never grow the graph")
	}
}

// TestMergeTargetsOrDefineCreatesSharedNode checks the HLT-mode
// sibling, which does grow the graph when neither edge exists.
func TestMergeTargetsOrDefineCreatesSharedNode(t *testing.T) {
	g := newTestGraph(nil, 2, 4)

	g.mergeTargetsOrDefine(0, 0, 0, 1)

	if g.Word.Target(0, 0) == digraph.Undefined || g.Word.Target(0, 1) == digraph.Undefined {
		t.Fatal("both targets must be defined after mergeTargetsOrDefine")
	}
	if g.Word.Target(0, 0) != g.Word.Target(0, 1) {
		t.Fatal("both labels must point at the same freshly created node")
	}
}

func TestMergeTargetsIfPossibleStacksCoincidenceWhenBothDefined(t *testing.T) {
	g := newTestGraph(nil, 2, 4)
	a := g.NewNode()
	b := g.NewNode()
	g.Word.SetTarget(0, 0, a)
	g.Word.SetTarget(0, 1, b)

	g.MergeTargetsIfPossible(0, 0, 0, 1)

	if g.Queue.Len() != 1 {
		t.Fatalf("Queue.Len() = %d, want 1", g.Queue.Len())
	}
}

// TestProcessDefinitionForcesRelatorEquality checks the trivial monoid
// from spec scenario S1: alphabet {0,1}, rules 00=0 and 0=1.
func TestProcessDefinitionForcesRelatorEquality(t *testing.T) {
	rules := []digraph.Rule{
		{Left: digraph.Word{0, 0}, Right: digraph.Word{0}},
		{Left: digraph.Word{0}, Right: digraph.Word{1}},
	}
	g := newTestGraph(rules, 2, 8)

	// seed both generators from node 0 via HLT-style pushes, then drain.
	g.PushDefinitionHLT(0, rules[0].Left, rules[0].Right, true)
	g.PushDefinitionHLT(0, rules[1].Left, rules[1].Right, true)
	g.ProcessDefinitions()

	t0 := g.Word.Target(0, 0)
	t1 := g.Word.Target(0, 1)
	if t0 == digraph.Undefined || t1 == digraph.Undefined {
		t.Fatal("both generator edges from node 0 must be defined")
	}
	if g.Arena.Find(t0) != g.Arena.Find(t1) {
		t.Fatal("0=1 must force target(0,0) and target(0,1) into the same class")
	}
	// per spec scenario S1 this presentation has exactly two classes:
	// the empty word's class (node 0) and everything else (the shared
	// image of both generators) — it does not collapse further.
	if g.Arena.Find(t0) == g.Arena.Find(digraph.Node(0)) {
		t.Fatal("the generators' class must stay distinct from the empty word's class")
	}
	if g.Arena.Active() != 2 {
		t.Fatalf("Active() = %d, want 2 (S1 has exactly two classes)", g.Arena.Active())
	}
}

func TestDefinitionStackPurgeInactiveRemovesDeadSources(t *testing.T) {
	var s DefinitionStack
	s.Push(Definition{Source: 0, Label: 0})
	s.Push(Definition{Source: 1, Label: 0})
	s.Push(Definition{Source: 2, Label: 0})

	s.PurgeInactive(func(n digraph.Node) bool { return n != 1 })

	if len(s.items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(s.items))
	}
	for _, d := range s.items {
		if d.Source == 1 {
			t.Fatal("source 1 should have been purged")
		}
	}
}

func TestDefinitionStackNoStackIfNoSpaceSetsSkipped(t *testing.T) {
	s := DefinitionStack{Policy: NoStackIfNoSpace, Max: 1}
	s.Push(Definition{Source: 0, Label: 0})
	s.Push(Definition{Source: 1, Label: 0})

	if len(s.items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(s.items))
	}
	if !s.Skipped {
		t.Fatal("Skipped must be set once the stack refuses a push")
	}
}

func TestDefinitionStackDiscardAllIfNoSpaceClears(t *testing.T) {
	s := DefinitionStack{Policy: DiscardAllIfNoSpace, Max: 1}
	s.Push(Definition{Source: 0, Label: 0})
	s.Push(Definition{Source: 1, Label: 0})

	if len(s.items) != 0 {
		t.Fatalf("len(items) = %d, want 0 after discard", len(s.items))
	}
	if !s.Skipped {
		t.Fatal("Skipped must be set")
	}
}
