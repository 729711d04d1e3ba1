// SPDX-License-Identifier: MIT

// Package toddcoxeter implements incremental coset enumeration for
// finitely presented monoids and semigroups: given a presentation and
// a set of extra generating pairs defining a one- or two-sided
// congruence, it builds the finite quotient action as a labelled word
// graph whose nodes are congruence classes.
package toddcoxeter

import (
	"sync/atomic"

	"github.com/libsemigroups/libsemigroups-sub000/internal/digraph"
	"github.com/libsemigroups/libsemigroups-sub000/internal/felsch"
)

// runState is read by the cooperative reporter goroutine; it is the
// one piece of state that must be read consistently across threads,
// hence the atomic guard.
type runState int32

const (
	stateNone runState = iota
	stateHLT
	stateFelsch
	stateLookahead
	stateLookbehind
)

// Reporter receives structured progress events; it carries no
// semantic content beyond phase boundaries and coset counts.
type Reporter func(event string, activeNodes int)

// ToddCoxeter is a single congruence enumeration engine.
type ToddCoxeter struct {
	kind Kind
	pres digraph.Presentation
	// extraPairs are the congruence's generating pairs, distinct from
	// pres.Rules (the monoid's own defining relations).
	extraPairs []digraph.Rule

	Settings Settings
	Reporter Reporter

	arena *digraph.NodeArena
	word  *digraph.WordGraph
	tree  *felsch.Tree
	fg    *felsch.Graph

	// scratch reuses BFS queue buffers across standardize calls instead
	// of allocating a fresh one each time.
	scratch *digraph.NodePool

	hltCursor     digraph.Node
	lookaheadNext int

	started  bool
	finished bool
	state    atomic.Int32

	standardOrder Order
	standardised  bool
	parent        []digraph.Node
	parentLabel   []int
}

// New builds an engine for the given congruence kind over presentation p.
// It validates p before any state is touched.
func New(kind Kind, p digraph.Presentation) (*ToddCoxeter, error) {
	if err := validatePresentation(p); err != nil {
		return nil, err
	}

	tc := &ToddCoxeter{
		kind:          kind,
		pres:          p,
		Settings:      DefaultSettings(),
		standardOrder: OrderNone,
		scratch:       digraph.NewNodePool(64),
	}
	tc.rebuildEngine()
	return tc, nil
}

// NewFromWordGraph continues enumeration from a pre-built graph: it
// takes ownership of the given snapshot's underlying nodes/edges as the
// starting point instead of a bare single-node graph.
func NewFromWordGraph(kind Kind, p digraph.Presentation, wg *digraph.WordGraph, nodeCount int) (*ToddCoxeter, error) {
	tc, err := New(kind, p)
	if err != nil {
		return nil, err
	}
	tc.word = wg
	for i := 1; i < nodeCount; i++ {
		tc.arena.NewActiveNode()
	}
	tc.word.Reserve(tc.arena.Capacity())
	tc.rebuildRelators()
	tc.fg.Queue = digraph.NewCoincidenceQueue(tc.arena, tc.word)
	tc.fg.Queue.LargeCollapseThreshold = tc.Settings.LargeCollapse
	return tc, nil
}

// NewFromEngine builds a quotient of another, already (partially) run
// congruence: it starts from a copy of other's current word graph and
// applies this engine's own generating pairs on top of it. other is left
// untouched, so it can keep running independently afterwards.
func NewFromEngine(kind Kind, other *ToddCoxeter) (*ToddCoxeter, error) {
	tc, err := New(kind, other.pres)
	if err != nil {
		return nil, err
	}
	tc.arena = other.arena.Clone()
	tc.word = other.word.Clone()
	tc.fg.Arena = tc.arena
	tc.fg.Word = tc.word
	tc.fg.Queue = digraph.NewCoincidenceQueue(tc.arena, tc.word)
	return tc, nil
}

func validatePresentation(p digraph.Presentation) error {
	if p.AlphabetSize <= 0 {
		return invalidAlphabet("alphabet must be non-empty")
	}
	if err := p.Validate(); err != nil {
		return invalidRule(err.Error())
	}
	return nil
}

func (tc *ToddCoxeter) rebuildEngine() {
	tc.arena = digraph.NewNodeArena(1)
	tc.word = digraph.NewWordGraph(tc.pres.AlphabetSize, 1)
	tc.rebuildRelators()
	tc.hltCursor = 0
	tc.lookaheadNext = tc.Settings.LookaheadNext
}

// activeRelators returns the relator list that HLT/Felsch/lookahead
// should trace: the presentation's own rules, plus (for a two-sided
// congruence, or when UseRelationsInExtra is set) the generating pairs
// treated as ordinary relators. A one-sided congruence's generating
// pairs instead only constrain node 0, applied once in oneSidedSeed.
func (tc *ToddCoxeter) activeRelators() []digraph.Rule {
	rules := make([]digraph.Rule, len(tc.pres.Rules))
	copy(rules, tc.pres.Rules)
	if tc.kind == TwoSided || tc.Settings.UseRelationsInExtra {
		rules = append(rules, tc.extraPairs...)
	}
	return rules
}

// rebuildRelators rebuilds the FelschTree from the current relator
// set. It preserves any pending definition stack / coincidence queue
// contents across the rebuild, since a setter like
// SetUseRelationsInExtra carries no precondition and may legally be
// called mid-run.
func (tc *ToddCoxeter) rebuildRelators() {
	tc.tree = felsch.NewTree(tc.activeRelators(), tc.pres.AlphabetSize)

	var carried felsch.DefinitionStack
	var queue *digraph.CoincidenceQueue
	if tc.fg != nil {
		carried = tc.fg.Stack
		queue = tc.fg.Queue
	}

	tc.fg = felsch.NewGraph(tc.arena, tc.word, tc.tree)
	tc.fg.Version = tc.Settings.DefVersion
	tc.fg.Stack = carried
	tc.fg.Stack.Policy = tc.Settings.DefPolicy
	tc.fg.Stack.Max = tc.Settings.DefMax
	if queue != nil {
		tc.fg.Queue = queue
	}
	tc.fg.Queue.LargeCollapseThreshold = tc.Settings.LargeCollapse
}

// AddGeneratingPair appends (u, v) to the congruence's generating
// pairs. Must be called before run starts.
func (tc *ToddCoxeter) AddGeneratingPair(u, v digraph.Word) error {
	if tc.started {
		return alreadyStarted("cannot add a generating pair after run has started")
	}
	for _, a := range u {
		if a < 0 || a >= tc.pres.AlphabetSize {
			return letterOutOfBounds("generating pair left side")
		}
	}
	for _, a := range v {
		if a < 0 || a >= tc.pres.AlphabetSize {
			return letterOutOfBounds("generating pair right side")
		}
	}
	tc.extraPairs = append(tc.extraPairs, digraph.Rule{Left: u.Clone(), Right: v.Clone()})
	if tc.kind == TwoSided {
		tc.rebuildRelators()
	}
	return nil
}

// report emits a progress event if a Reporter is installed.
func (tc *ToddCoxeter) report(event string) {
	if tc.Reporter != nil {
		tc.Reporter(event, tc.arena.Active())
	}
}

func (tc *ToddCoxeter) setState(s runState) runState {
	old := runState(tc.state.Swap(int32(s)))
	return old
}

// State returns the engine's current phase; safe to call from a
// separate reporting goroutine.
func (tc *ToddCoxeter) State() runState { return runState(tc.state.Load()) }

// Finished reports true iff the graph is provably complete.
func (tc *ToddCoxeter) Finished() bool { return tc.finished }
