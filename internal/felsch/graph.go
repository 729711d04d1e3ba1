// SPDX-License-Identifier: MIT

package felsch

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/libsemigroups/libsemigroups-sub000/internal/digraph"
)

// DefVersion selects between the two (equivalent) strategies for
// avoiding repeated re-walks while processing a definition. Both must
// produce identical final graphs up to standardisation; Two only
// marks each (node, relator) pair walked while processing one
// definition, so a repeat walk of the same pair is skipped.
type DefVersion int

const (
	DefVersionOne DefVersion = iota
	DefVersionTwo
)

// DefPolicy governs what happens when the definition stack is full.
type DefPolicy int

const (
	NoStackIfNoSpace DefPolicy = iota
	PurgeFromTop
	PurgeAll
	DiscardAllIfNoSpace
	Unlimited
)

// Definition records that source--Label--> something was (or should
// be) set, and still needs to be checked against relators.
type Definition struct {
	Source digraph.Node
	Label  int
}

// DefinitionStack is the ordered, possibly-bounded backlog of pending
// definitions awaiting ProcessDefinitions.
type DefinitionStack struct {
	items   []Definition
	Policy  DefPolicy
	Max     int
	Skipped bool
}

// Push appends d, applying the overflow policy if the stack is full.
func (s *DefinitionStack) Push(d Definition) {
	if s.Max > 0 && len(s.items) >= s.Max {
		switch s.Policy {
		case DiscardAllIfNoSpace:
			s.items = s.items[:0]
			s.Skipped = true
			return
		case NoStackIfNoSpace:
			s.Skipped = true
			return
		case PurgeFromTop, PurgeAll:
			// Push does not call PurgeInactive, so nothing is evicted
			// here: the new entry is dropped, as for NoStackIfNoSpace.
			if len(s.items) >= s.Max {
				s.Skipped = true
				return
			}
		case Unlimited:
			// fall through, grow unconditionally
		}
	}
	s.items = append(s.items, d)
}

// PurgeInactive removes any queued definition whose source is no
// longer active, per the purge_from_top/purge_all policies.
func (s *DefinitionStack) PurgeInactive(isActive func(digraph.Node) bool) {
	out := s.items[:0]
	for _, d := range s.items {
		if isActive(d.Source) {
			out = append(out, d)
		}
	}
	s.items = out
}

// Empty reports whether the stack has no pending definitions.
func (s *DefinitionStack) Empty() bool { return len(s.items) == 0 }

// Pop removes and returns the most recently pushed definition.
func (s *DefinitionStack) Pop() Definition {
	n := len(s.items) - 1
	d := s.items[n]
	s.items = s.items[:n]
	return d
}

// Graph composes a WordGraph, NodeArena, relator Tree and definition
// stack, and performs definition processing: propagating the forced
// equalities a newly created edge implies through the relator set.
type Graph struct {
	Arena *digraph.NodeArena
	Word  *digraph.WordGraph
	Tree  *Tree
	Stack DefinitionStack
	Queue *digraph.CoincidenceQueue

	Version DefVersion

	// visited is the def-version-two scratch mark: bits set for
	// (node, relator) pairs already walked during the current
	// definition, cleared between definitions.
	visited *bitset.BitSet
}

// NewGraph wires arena/word/tree together with a fresh definition
// stack and coincidence queue.
func NewGraph(arena *digraph.NodeArena, word *digraph.WordGraph, tree *Tree) *Graph {
	return &Graph{
		Arena:   arena,
		Word:    word,
		Tree:    tree,
		Queue:   digraph.NewCoincidenceQueue(arena, word),
		Version: DefVersionTwo,
		visited: bitset.New(0),
	}
}

// NewNode allocates a fresh active node and keeps the word graph's
// arrays sized to match the arena.
func (g *Graph) NewNode() digraph.Node {
	n := g.Arena.NewActiveNode()
	g.Word.Reserve(g.Arena.Capacity())
	return n
}

// MergeTargetsIfPossible ensures target(x,a) == target(y,b) using only
// edges that already exist, applying the default prefer_defs policy:
// when neither edge is defined it does nothing (incompatible/no-op)
// rather than growing the graph speculatively — Felsch closure only
// ever follows edges a relator trace already forced into existence.
// Returns whether it found an existing edge to act on.
func (g *Graph) MergeTargetsIfPossible(x digraph.Node, a int, y digraph.Node, b int) bool {
	xt := g.Word.Target(x, a)
	yt := g.Word.Target(y, b)

	switch {
	case xt != digraph.Undefined && yt != digraph.Undefined:
		if xt != yt {
			lo, hi := xt, yt
			if lo > hi {
				lo, hi = hi, lo
			}
			g.Queue.Push(lo, hi)
		}
	case xt != digraph.Undefined:
		g.Word.SetTarget(y, b, xt)
		g.registerDefinition(y, b)
	case yt != digraph.Undefined:
		g.Word.SetTarget(x, a, yt)
		g.registerDefinition(x, a)
	default:
		return false
	}
	return true
}

// mergeTargetsOrDefine is MergeTargetsIfPossible's node-creating
// sibling: when neither target(x,a) nor target(y,b) exists, it
// allocates a fresh node for both to share instead of leaving them
// undefined. Only the HLT tracing primitives use this policy; Felsch
// closure (tryComplete) never does.
func (g *Graph) mergeTargetsOrDefine(x digraph.Node, a int, y digraph.Node, b int) {
	if g.MergeTargetsIfPossible(x, a, y, b) {
		return
	}
	n := g.NewNode()
	g.Word.SetTarget(x, a, n)
	g.Word.SetTarget(y, b, n)
	g.registerDefinition(x, a)
	g.registerDefinition(y, b)
}

func (g *Graph) registerDefinition(s digraph.Node, a int) {
	g.Stack.Push(Definition{Source: s, Label: a})
}

// ProcessDefinition propagates the consequences of the edge
// source--Label-->target through every relator occurrence of Label:
//
//   - occurrences where Label sits at position 0 of a relator side:
//     source itself is the trace's start node.
//   - occurrences at a later position: every node n whose prefix
//     (the relator side up to that position) leads to source is found
//     by walking the reverse-edge source lists backward one label at
//     a time from source, rather than re-tracing forward from a fixed
//     root — this finds every such n, not just ones reachable from
//     node 0.
//
// Anything this misses is still caught by the mandatory full lookahead
// the strategy driver runs before reporting finished(); like
// DefVersion, this is a work-avoidance accelerant, not the sole source
// of truth for confluence.
func (g *Graph) ProcessDefinition(d Definition) {
	if g.Version == DefVersionTwo {
		g.visited.ClearAll()
	}

	for _, o := range g.Tree.SourcesOf(d.Label) {
		side := g.Tree.Side(o)
		other := g.Tree.OtherSide(o)

		if o.Position == 0 {
			g.tryComplete(d.Source, side, other)
			continue
		}

		prefix := side[:o.Position]
		g.walkSourcesBackward(d.Source, prefix, func(n digraph.Node) {
			if g.Version == DefVersionTwo {
				key := uint(n)*uint(len(g.Tree.Rules())+1) + uint(o.RelatorIndex)
				if g.visited.Test(key) {
					// this (node, relator) pair was already completed
					// during this definition; skip the repeat walk.
					return
				}
				g.visited.Set(key)
			}
			g.tryComplete(n, side, other)
		})
	}
}

// walkSourcesBackward calls visit(n) for every node n such that
// following prefix from n via existing edges lands exactly on target,
// found by walking the reverse-edge source lists backward one label
// at a time instead of re-tracing forward from a fixed root.
func (g *Graph) walkSourcesBackward(target digraph.Node, prefix digraph.Word, visit func(digraph.Node)) {
	if len(prefix) == 0 {
		visit(target)
		return
	}
	last := prefix[len(prefix)-1]
	rest := prefix[:len(prefix)-1]
	for s := g.Word.FirstSource(target, last); s != digraph.Undefined; s = g.Word.NextSource(s, last) {
		g.walkSourcesBackward(s, rest, visit)
	}
}

// tryComplete attempts to complete a relator trace anchored at start
// for the two words of one relator, aborting silently (no mutation)
// if any non-final edge along either word is missing. A relator side
// that is the empty word imposes follow_path(start, other) == start
// directly (the empty word's path from start never leaves start), so
// there is no "final edge" to reconcile on that side.
func (g *Graph) tryComplete(start digraph.Node, w, other digraph.Word) {
	switch {
	case len(w) == 0 && len(other) == 0:
		return
	case len(other) == 0:
		if end, ok := g.traceFull(start, w); ok {
			g.mergeNodes(end, start)
		}
		return
	case len(w) == 0:
		if end, ok := g.traceFull(start, other); ok {
			g.mergeNodes(end, start)
		}
		return
	}

	xPre, aLast, ok := g.tracePrefix(start, w)
	if !ok {
		return
	}
	yPre, bLast, ok := g.tracePrefix(start, other)
	if !ok {
		return
	}
	g.MergeTargetsIfPossible(xPre, aLast, yPre, bLast)
}

// tracePrefix follows all but the last letter of w from start via
// existing edges only, returning the node reached, the final letter,
// and whether every intermediate edge existed. w must be non-empty.
func (g *Graph) tracePrefix(start digraph.Node, w digraph.Word) (pre digraph.Node, last int, ok bool) {
	cur := start
	for _, a := range w[:len(w)-1] {
		if cur == digraph.Undefined {
			return 0, 0, false
		}
		next := g.Word.Target(cur, a)
		if next == digraph.Undefined {
			return 0, 0, false
		}
		cur = next
	}
	return cur, w[len(w)-1], true
}

// traceFull follows every letter of w from start via existing edges
// only, returning the node reached and whether every edge existed.
func (g *Graph) traceFull(start digraph.Node, w digraph.Word) (digraph.Node, bool) {
	cur := start
	for _, a := range w {
		if cur == digraph.Undefined {
			return 0, false
		}
		next := g.Word.Target(cur, a)
		if next == digraph.Undefined {
			return 0, false
		}
		cur = next
	}
	return cur, true
}

// mergeNodes stacks a coincidence identifying a and b directly,
// bypassing the edge-pair reconciliation MergeTargetsIfPossible does;
// used when a relator side is the empty word, so there is no edge to
// compare, only the two endpoint nodes themselves.
func (g *Graph) mergeNodes(a, b digraph.Node) {
	if a == b {
		return
	}
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	g.Queue.Push(lo, hi)
}

// ProcessDefinitions drains the definition stack and the coincidence
// queue alternately until both are empty.
func (g *Graph) ProcessDefinitions() {
	for {
		for !g.Stack.Empty() {
			g.ProcessDefinition(g.Stack.Pop())
		}
		if g.Queue.Len() == 0 {
			return
		}
		large := g.Queue.Drain(g.registerDefinition)
		if large {
			g.Word.RebuildSources(g.Arena.ActiveNodes())
		}
	}
}

// PushDefinitionHLT traces the relator pair (u, v) from node c,
// creating every edge but the last along each side, then reconciles
// the final pair via mergeTargetsOrDefine. When registerDefs is true,
// the edges created along each side are also pushed onto the
// definition stack (the HLT "save" mode); the final edges set by
// mergeTargetsOrDefine are pushed whatever registerDefs says. A
// relator side that is the empty word has no
// "last edge" to withhold, so the whole of the other side is traced
// (creating edges throughout) and its endpoint merged directly with c.
func (g *Graph) PushDefinitionHLT(c digraph.Node, u, v digraph.Word, registerDefs bool) {
	switch {
	case len(u) == 0 && len(v) == 0:
		return
	case len(v) == 0:
		g.mergeNodes(g.traceCreatingFull(c, u, registerDefs), c)
		return
	case len(u) == 0:
		g.mergeNodes(g.traceCreatingFull(c, v, registerDefs), c)
		return
	}

	x, a := g.traceCreating(c, u, registerDefs)
	y, b := g.traceCreating(c, v, registerDefs)
	g.mergeTargetsOrDefine(x, a, y, b)
}

// traceCreatingFull walks every letter of w from start, creating any
// missing edge (and optionally registering it as a definition), and
// returns the node reached.
func (g *Graph) traceCreatingFull(start digraph.Node, w digraph.Word, registerDefs bool) digraph.Node {
	cur := start
	for _, a := range w {
		next := g.Word.Target(cur, a)
		if next == digraph.Undefined {
			next = g.NewNode()
			g.Word.SetTarget(cur, a, next)
			if registerDefs {
				g.registerDefinition(cur, a)
			}
		}
		cur = next
	}
	return cur
}

// traceCreating walks all but the last letter of w from start,
// creating any missing edge (and optionally registering it as a
// definition), and returns the pre-final node and final letter.
func (g *Graph) traceCreating(start digraph.Node, w digraph.Word, registerDefs bool) (pre digraph.Node, last int) {
	cur := start
	for _, a := range w[:len(w)-1] {
		next := g.Word.Target(cur, a)
		if next == digraph.Undefined {
			next = g.NewNode()
			g.Word.SetTarget(cur, a, next)
			if registerDefs {
				g.registerDefinition(cur, a)
			}
		}
		cur = next
	}
	return cur, w[len(w)-1]
}

// MakeCompatible pushes (n, relator) work for every node in nodes and
// every relator, draining after each via tryComplete/ProcessDefinitions
// so the graph only ever collapses: unlike PushDefinitionHLT, nothing
// here creates a node, matching the lookahead's "collapse without
// defining new nodes" contract. stopEarly, if non-nil, is consulted
// before each relator; MakeCompatible returns as soon as it reports true.
func (g *Graph) MakeCompatible(nodes []digraph.Node, stopEarly func() bool) {
	for _, n := range nodes {
		for _, r := range g.Tree.Rules() {
			if stopEarly != nil && stopEarly() {
				return
			}
			g.tryComplete(n, r.Left, r.Right)
			g.ProcessDefinitions()
		}
	}
}
