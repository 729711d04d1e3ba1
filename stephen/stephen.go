// SPDX-License-Identifier: MIT

// Package stephen builds the Stephen construction: the deterministic,
// trim, accessible left-factor word graph of a single word under a
// presentation's congruence, reusing the same word graph and
// coincidence machinery as the Todd-Coxeter engine.
package stephen

import (
	"github.com/libsemigroups/libsemigroups-sub000/internal/digraph"
)

// Stephen builds and holds the left-factor graph of Word under
// Presentation. Inverses, if non-nil, names this an inverse
// presentation: Inverses[x] is the generator that is x's two-sided
// inverse (or -1 if x has none), and the construction additionally
// traces every (x, Inverses[x]) pair as an idempotent-idempotent
// equality, yielding the Schützenberger graph.
type Stephen struct {
	Presentation digraph.Presentation
	Word         digraph.Word
	Inverses     []int

	arena *digraph.NodeArena
	word  *digraph.WordGraph
	queue *digraph.CoincidenceQueue

	// scratch reuses BFS queue buffers across Standardize calls instead
	// of allocating a fresh one each time.
	scratch *digraph.NodePool

	accept digraph.Node

	standardised bool
	parent       []digraph.Node
	parentLabel  []int
}

// New builds (but does not yet run) a Stephen construction for w under p.
func New(p digraph.Presentation, w digraph.Word) (*Stephen, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	for _, a := range w {
		if a < 0 || a >= p.AlphabetSize {
			return nil, digraph.ErrLetterOutOfBounds
		}
	}

	s := &Stephen{Presentation: p, Word: w.Clone()}
	s.arena = digraph.NewNodeArena(1)
	s.word = digraph.NewWordGraph(p.AlphabetSize, 1)
	s.queue = digraph.NewCoincidenceQueue(s.arena, s.word)
	s.scratch = digraph.NewNodePool(64)
	return s, nil
}

// newNode allocates a fresh node and keeps the word graph sized to match.
func (s *Stephen) newNode() digraph.Node {
	n := s.arena.NewActiveNode()
	s.word.Reserve(s.arena.Capacity())
	return n
}

// Run seeds the path labelled Word from node 0 and saturates the graph
// against every relator (and, for inverse presentations, every
// generator/inverse idempotent pair) until no edge is created and no
// coincidence fires.
func (s *Stephen) Run() {
	s.accept = s.seed(0, s.Word)

	for {
		progressed := false

		for _, n := range s.arena.ActiveNodes() {
			for _, r := range s.Presentation.Rules {
				if s.traceRelation(n, r.Left, r.Right) {
					progressed = true
				}
			}
			if s.Inverses != nil {
				for x, inv := range s.Inverses {
					if inv < 0 {
						continue
					}
					if s.traceRelation(n, digraph.Word{x, inv}, digraph.Word{}) {
						progressed = true
					}
				}
			}
		}

		if s.queue.Len() > 0 {
			s.queue.Drain(nil)
			progressed = true
		}

		if !progressed {
			break
		}
	}

	s.accept = s.arena.Find(s.accept)
}

// seed creates a fresh path from start labelled w, creating every node
// it needs, and returns the endpoint.
func (s *Stephen) seed(start digraph.Node, w digraph.Word) digraph.Node {
	cur := start
	for _, a := range w {
		next := s.word.Target(cur, a)
		if next == digraph.Undefined {
			next = s.newNode()
			s.word.SetTarget(cur, a, next)
		}
		cur = next
	}
	return cur
}

// traceRelation implements the strict-extension rule: trace both u and
// v from n via existing edges only; if one side traces fully while the
// other got stuck, create the missing edges to finish the stuck side
// and reconcile the endpoints. If both trace fully, the endpoints are
// reconciled. If neither side traces fully, nothing is created, however
// far each got — a later pass, once some other relation fills in more
// of the graph, will resolve it.
func (s *Stephen) traceRelation(n digraph.Node, u, v digraph.Word) (definedAny bool) {
	uPos, uNode := s.traceExisting(n, u)
	vPos, vNode := s.traceExisting(n, v)

	switch {
	case uPos == len(u) && vPos == len(v):
		s.mergeIfDifferent(uNode, vNode)
	case uPos == len(u) && vPos < len(v):
		vEnd := s.finishTrace(vNode, v[vPos:])
		s.mergeIfDifferent(uNode, vEnd)
		definedAny = true
	case vPos == len(v) && uPos < len(u):
		uEnd := s.finishTrace(uNode, u[uPos:])
		s.mergeIfDifferent(uEnd, vNode)
		definedAny = true
	}
	return definedAny
}

// traceExisting follows w from start via existing edges only, stopping
// at the first missing edge; it returns how many letters matched and
// the node reached so far.
func (s *Stephen) traceExisting(start digraph.Node, w digraph.Word) (matched int, at digraph.Node) {
	cur := start
	for i, a := range w {
		next := s.word.Target(cur, a)
		if next == digraph.Undefined {
			return i, cur
		}
		cur = next
	}
	return len(w), cur
}

// finishTrace creates edges for the remainder of a word from node cur.
func (s *Stephen) finishTrace(cur digraph.Node, rest digraph.Word) digraph.Node {
	for _, a := range rest {
		next := s.word.Target(cur, a)
		if next == digraph.Undefined {
			next = s.newNode()
			s.word.SetTarget(cur, a, next)
		}
		cur = next
	}
	return cur
}

func (s *Stephen) mergeIfDifferent(a, b digraph.Node) {
	a, b = s.arena.Find(a), s.arena.Find(b)
	if a == b {
		return
	}
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	s.queue.Push(lo, hi)
}

// Accepts reports whether x is congruent to Word (i.e. names the same
// node as the accept state) under the one-sided congruence generated
// by Presentation with Word as a left factor.
func (s *Stephen) Accepts(x digraph.Word) bool {
	n := s.word.FollowPath(0, x)
	return n != digraph.Undefined && s.arena.Find(n) == s.accept
}

// IsLeftFactor reports whether x is a left factor of Word in the
// congruence, i.e. whether tracing x from node 0 succeeds at all.
func (s *Stephen) IsLeftFactor(x digraph.Word) bool {
	return s.word.FollowPath(0, x) != digraph.Undefined
}

// WordGraph returns the underlying (already-run) left-factor graph.
func (s *Stephen) WordGraph() *digraph.WordGraph { return s.word }

// AcceptState returns the node reached by Word from node 0.
func (s *Stephen) AcceptState() digraph.Node { return s.accept }
