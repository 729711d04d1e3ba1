// SPDX-License-Identifier: MIT

package digraph

// WordGraph is a labelled digraph of bounded out-degree Degree,
// representing the right action of the free monoid on a set of nodes.
// For every (target, label) pair it maintains the linked list of
// source nodes pointing at that target, threaded through nextSource,
// so that a merge can redirect every incoming edge of a dying node in
// time proportional to its in-degree rather than a full scan.
type WordGraph struct {
	Degree int

	target      [][]Node
	firstSource [][]Node
	nextSource  [][]Node
}

// NewWordGraph creates a graph with the given out-degree (alphabet
// size) and room for capacity nodes.
func NewWordGraph(degree, capacity int) *WordGraph {
	g := &WordGraph{Degree: degree}
	g.Reserve(capacity)
	return g
}

// Reserve grows the backing arrays so at least capacity nodes are
// addressable. It never shrinks.
func (g *WordGraph) Reserve(capacity int) {
	for len(g.target) < capacity {
		g.target = append(g.target, newUndefinedRow(g.Degree))
		g.firstSource = append(g.firstSource, newUndefinedRow(g.Degree))
		g.nextSource = append(g.nextSource, newUndefinedRow(g.Degree))
	}
}

func newUndefinedRow(n int) []Node {
	row := make([]Node, n)
	for i := range row {
		row[i] = Undefined
	}
	return row
}

// Target returns the node reached from s by label a, or Undefined.
func (g *WordGraph) Target(s Node, a int) Node {
	return g.target[s][a]
}

// FirstSource returns the head of the source list at (t, a).
func (g *WordGraph) FirstSource(t Node, a int) Node {
	return g.firstSource[t][a]
}

// NextSource returns the next node in the source list after s, which
// must currently point at some node via label a.
func (g *WordGraph) NextSource(s Node, a int) Node {
	return g.nextSource[s][a]
}

// SetTarget records a brand-new edge s --a--> t. Requires
// Target(s,a) == Undefined.
func (g *WordGraph) SetTarget(s Node, a int, t Node) {
	g.target[s][a] = t
	g.prependSource(s, a, t)
}

func (g *WordGraph) prependSource(s Node, a int, t Node) {
	head := g.firstSource[t][a]
	g.nextSource[s][a] = head
	g.firstSource[t][a] = s
}

// RemoveTarget deletes the edge out of s labelled a, unlinking s from
// the source list of its (now former) target.
func (g *WordGraph) RemoveTarget(s Node, a int) {
	t := g.target[s][a]
	if t == Undefined {
		return
	}
	g.unlinkSource(s, a, t)
	g.target[s][a] = Undefined
}

func (g *WordGraph) unlinkSource(s Node, a int, t Node) {
	if g.firstSource[t][a] == s {
		g.firstSource[t][a] = g.nextSource[s][a]
		g.nextSource[s][a] = Undefined
		return
	}
	prev := g.firstSource[t][a]
	for prev != Undefined && g.nextSource[prev][a] != s {
		prev = g.nextSource[prev][a]
	}
	if prev != Undefined {
		g.nextSource[prev][a] = g.nextSource[s][a]
	}
	g.nextSource[s][a] = Undefined
}

// ReplaceTarget atomically redirects the edge s--a--> old to s--a-->
// neu, used while merging: it unlinks s from old's source list and
// prepends it to neu's.
func (g *WordGraph) ReplaceTarget(s Node, a int, neu Node) {
	old := g.target[s][a]
	if old != Undefined {
		g.unlinkSource(s, a, old)
	}
	g.target[s][a] = neu
	if neu != Undefined {
		g.prependSource(s, a, neu)
	}
}

// ReplaceSource rewrites a single entry of the source list rooted at
// (t, a): the node oldSource is spliced out and newSource (which must
// already have target(newSource,a)==t) spliced in at the same
// position. Used while redirecting a dying node's incoming edges.
func (g *WordGraph) ReplaceSource(t Node, a int, oldSource, newSource Node) {
	if g.firstSource[t][a] == oldSource {
		g.firstSource[t][a] = newSource
		g.nextSource[newSource][a] = g.nextSource[oldSource][a]
		return
	}
	prev := g.firstSource[t][a]
	for prev != Undefined && g.nextSource[prev][a] != oldSource {
		prev = g.nextSource[prev][a]
	}
	if prev != Undefined {
		g.nextSource[prev][a] = newSource
		g.nextSource[newSource][a] = g.nextSource[oldSource][a]
	}
}

// IsSource reports whether s appears in the source list at (t, a).
// Linear in list length; intended for assertions/tests only.
func (g *WordGraph) IsSource(s Node, a int, t Node) bool {
	for cur := g.firstSource[t][a]; cur != Undefined; cur = g.nextSource[cur][a] {
		if cur == s {
			return true
		}
	}
	return false
}

// RebuildSources reconstructs the reverse-edge lists for every node in
// nodes from scratch by walking their forward targets. Used after a
// large collapse instead of per-edge repair.
func (g *WordGraph) RebuildSources(nodes []Node) {
	for _, n := range nodes {
		for a := 0; a < g.Degree; a++ {
			g.firstSource[n][a] = Undefined
			g.nextSource[n][a] = Undefined
		}
	}
	set := make(map[Node]struct{}, len(nodes))
	for _, n := range nodes {
		set[n] = struct{}{}
	}
	for _, s := range nodes {
		for a := 0; a < g.Degree; a++ {
			t := g.target[s][a]
			if t == Undefined {
				continue
			}
			if _, ok := set[t]; !ok {
				continue
			}
			g.nextSource[s][a] = g.firstSource[t][a]
			g.firstSource[t][a] = s
		}
	}
}

// DisjointUnionInPlace appends a copy of other's nodes and edges,
// shifting every id by shift (normally the current node count). Target
// ids of Undefined stay Undefined.
func (g *WordGraph) DisjointUnionInPlace(other *WordGraph, shift int) {
	g.Reserve(shift + len(other.target))
	for i, row := range other.target {
		dst := shift + i
		for a, t := range row {
			if t == Undefined {
				continue
			}
			g.SetTarget(Node(dst), a, Node(int(t)+shift))
		}
	}
}

// FollowPath traces word from start, returning the reached node or
// Undefined the moment an edge is missing.
func (g *WordGraph) FollowPath(start Node, word []int) Node {
	cur := start
	for _, a := range word {
		if cur == Undefined {
			return Undefined
		}
		cur = g.target[cur][a]
	}
	return cur
}

// Renumber relabels both the forward and reverse edge arrays to match
// a NodeArena.Renumber(order) call: order[i] is the old id becoming
// new id i, and oldToNew must be its inverse closed over Undefined.
func (g *WordGraph) Renumber(order []Node, oldToNew map[Node]Node) {
	newTarget := make([][]Node, len(g.target))
	newFirst := make([][]Node, len(g.firstSource))
	newNext := make([][]Node, len(g.nextSource))
	for i := range newTarget {
		newTarget[i] = newUndefinedRow(g.Degree)
		newFirst[i] = newUndefinedRow(g.Degree)
		newNext[i] = newUndefinedRow(g.Degree)
	}

	remap := func(id Node) Node {
		if id == Undefined {
			return Undefined
		}
		if v, ok := oldToNew[id]; ok {
			return v
		}
		return Undefined
	}

	for newID, oldID := range order {
		for a := 0; a < g.Degree; a++ {
			newTarget[newID][a] = remap(g.target[oldID][a])
		}
	}

	g.target = newTarget
	// reverse links are cheapest to rebuild wholesale post-renumber.
	g.firstSource = newFirst
	g.nextSource = newNext
	g.RebuildSources(rangeNodes(len(order)))
}

func rangeNodes(n int) []Node {
	out := make([]Node, n)
	for i := range out {
		out[i] = Node(i)
	}
	return out
}

// Clone returns a deep copy: the returned graph shares no row with g, so
// mutating one never affects the other.
func (g *WordGraph) Clone() *WordGraph {
	c := &WordGraph{Degree: g.Degree}
	c.target = cloneRows(g.target)
	c.firstSource = cloneRows(g.firstSource)
	c.nextSource = cloneRows(g.nextSource)
	return c
}

func cloneRows(rows [][]Node) [][]Node {
	out := make([][]Node, len(rows))
	for i, row := range rows {
		out[i] = append([]Node(nil), row...)
	}
	return out
}
