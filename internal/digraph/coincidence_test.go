// SPDX-License-Identifier: MIT

package digraph

import "testing"

func TestCoincidenceQueueMergesDistinctTargets(t *testing.T) {
	arena := NewNodeArena(1)
	n1 := arena.NewActiveNode()
	n2 := arena.NewActiveNode()
	n3 := arena.NewActiveNode()

	g := NewWordGraph(1, 4)
	g.SetTarget(n1, 0, n3)
	g.SetTarget(n2, 0, n3)

	q := NewCoincidenceQueue(arena, g)
	q.Push(n1, n2)

	q.Drain(nil)

	if arena.Find(n1) != arena.Find(n2) {
		t.Fatal("n1 and n2 must end up in the same class")
	}
}

func TestCoincidenceQueueCopiesMissingEdge(t *testing.T) {
	arena := NewNodeArena(1)
	n1 := arena.NewActiveNode()
	n2 := arena.NewActiveNode()
	n3 := arena.NewActiveNode()

	g := NewWordGraph(1, 4)
	g.SetTarget(n2, 0, n3) // only n2 has the edge

	q := NewCoincidenceQueue(arena, g)
	q.Push(n1, n2)

	var gotCallback bool
	q.Drain(func(s Node, a int) { gotCallback = true })

	survivor := arena.Find(n1)
	if g.Target(survivor, 0) != n3 {
		t.Fatalf("surviving node's edge = %v, want %v", g.Target(survivor, 0), n3)
	}
	if !gotCallback {
		t.Fatal("callback must fire once for the copied edge")
	}
}

func TestCoincidenceQueueRedirectsIncomingEdges(t *testing.T) {
	arena := NewNodeArena(1)
	n1 := arena.NewActiveNode()
	n2 := arena.NewActiveNode()
	src := arena.NewActiveNode()

	g := NewWordGraph(1, 4)
	g.SetTarget(src, 0, n2)

	q := NewCoincidenceQueue(arena, g)
	q.Push(n1, n2)
	q.Drain(nil)

	survivor := arena.Find(n2)
	if g.Target(src, 0) != survivor {
		t.Fatalf("incoming edge from src must now point at %v, got %v", survivor, g.Target(src, 0))
	}
}

func TestCoincidenceQueueNoOpOnEqualPair(t *testing.T) {
	arena := NewNodeArena(1)
	n1 := arena.NewActiveNode()

	g := NewWordGraph(1, 2)
	q := NewCoincidenceQueue(arena, g)
	q.Push(n1, n1)

	if q.Len() != 0 {
		t.Fatalf("pushing an equal pair must be a no-op, Len() = %d", q.Len())
	}
}
