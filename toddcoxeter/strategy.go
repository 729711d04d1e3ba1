// SPDX-License-Identifier: MIT

package toddcoxeter

import (
	"github.com/libsemigroups/libsemigroups-sub000/internal/digraph"
	"github.com/libsemigroups/libsemigroups-sub000/internal/felsch"
)

// withTemporaryNext scopes a temporary override of lookaheadNext,
// restoring the previous value on return even if the guarded code
// panics. Nothing in this package calls it: the composite strategies
// run without temporary setting overrides.
func (tc *ToddCoxeter) withTemporaryNext(next int, fn func()) {
	old := tc.lookaheadNext
	tc.lookaheadNext = next
	defer func() { tc.lookaheadNext = old }()
	fn()
}

// isObviouslyInfinite is the cheap pre-run check: an abelianised
// presentation whose rank strictly exceeds its relation count cannot
// present a finite quotient under the identity congruence. It is
// deliberately conservative (false negatives are fine; a false
// positive would wrongly refuse a finite computation, so it never
// fires unless both the presentation and the extra pairs are empty of
// constraints on some generator).
func (tc *ToddCoxeter) isObviouslyInfinite() bool {
	if tc.pres.AlphabetSize == 0 {
		return false
	}
	constrained := make([]bool, tc.pres.AlphabetSize)
	mark := func(w digraph.Word) {
		for _, a := range w {
			constrained[a] = true
		}
	}
	for _, r := range tc.pres.Rules {
		mark(r.Left)
		mark(r.Right)
	}
	for _, r := range tc.extraPairs {
		mark(r.Left)
		mark(r.Right)
	}
	for _, c := range constrained {
		if !c {
			return true
		}
	}
	return false
}

// runStrategy dispatches to the selected top-level strategy, honouring
// stop at its cooperative points.
func (tc *ToddCoxeter) runStrategy(stop func() bool) {
	h := &hltEngine{tc: tc}

	switch tc.Settings.Strategy {
	case StrategyHLT:
		h.runUntil(stop)
	case StrategyFelsch:
		tc.seedFelsch()
		tc.fg.ProcessDefinitions()
	case StrategyCR:
		tc.runCR(h, stop)
	case StrategyROverC:
		tc.runROverC(h, stop)
	case StrategyCr:
		tc.runCr(h, stop)
	case StrategyRc:
		tc.runRc(h, stop)
	case StrategyLookahead:
		tc.performLookahead(tc.Settings.LookaheadStyle, tc.Settings.LookaheadExtent, tc.Settings.LookaheadStopEarly)
	case StrategyLookbehind:
		// lookbehind needs a reducer supplied by the caller; as a bare
		// strategy enum value it is a no-op. See PerformLookbehind for
		// the real entry point.
	}
}

func (tc *ToddCoxeter) seedFelsch() {
	prev := tc.setState(stateFelsch)
	defer tc.state.Store(int32(prev))
	for a := 0; a < tc.pres.AlphabetSize; a++ {
		tc.fg.Stack.Push(felsch.Definition{Source: 0, Label: a})
	}
}

func (tc *ToddCoxeter) runCR(h *hltEngine, stop func() bool) {
	for !tc.converged() {
		if stop != nil && stop() {
			return
		}
		target := tc.arena.Active() + tc.Settings.FDefs
		tc.runFelschUntilActive(target, stop)

		if stop != nil && stop() {
			return
		}
		n := len(tc.activeRelators())
		if n == 0 {
			n = 1
		}
		target = tc.arena.Active() + tc.Settings.HLTDefs/n
		tc.runHLTUntilActive(h, target, stop)
	}
	tc.performLookahead(LookaheadHLT, LookaheadFull, false)
}

func (tc *ToddCoxeter) runROverC(h *hltEngine, stop func() bool) {
	tc.runHLTUntilActive(h, tc.lookaheadNext, stop)
	tc.performLookahead(LookaheadHLT, LookaheadFull, true)
	tc.runCR(h, stop)
}

func (tc *ToddCoxeter) runCr(h *hltEngine, stop func() bool) {
	target := tc.arena.Active() + tc.Settings.FDefs
	tc.runFelschUntilActive(target, stop)

	n := len(tc.activeRelators())
	if n == 0 {
		n = 1
	}
	target = tc.arena.Active() + tc.Settings.HLTDefs/n
	tc.runHLTUntilActive(h, target, stop)

	tc.seedFelsch()
	tc.fg.ProcessDefinitions()
	tc.performLookahead(LookaheadHLT, LookaheadFull, false)
}

func (tc *ToddCoxeter) runRc(h *hltEngine, stop func() bool) {
	n := len(tc.activeRelators())
	if n == 0 {
		n = 1
	}
	target := tc.arena.Active() + tc.Settings.HLTDefs/n
	tc.runHLTUntilActive(h, target, stop)

	target = tc.arena.Active() + tc.Settings.FDefs
	tc.runFelschUntilActive(target, stop)

	h.runUntil(stop)
	tc.performLookahead(LookaheadHLT, LookaheadFull, false)
}

func (tc *ToddCoxeter) runFelschUntilActive(target int, stop func() bool) {
	prev := tc.setState(stateFelsch)
	defer tc.state.Store(int32(prev))
	tc.seedFelsch()
	for !tc.fg.Stack.Empty() || tc.fg.Queue.Len() > 0 {
		if stop != nil && stop() {
			return
		}
		if tc.arena.Active() >= target {
			return
		}
		tc.fg.ProcessDefinitions()
	}
}

func (tc *ToddCoxeter) runHLTUntilActive(h *hltEngine, target int, stop func() bool) {
	for tc.hltCursor != digraph.Undefined && tc.arena.Active() < target {
		h.runUntil(func() bool {
			return (stop != nil && stop()) || tc.arena.Active() >= target
		})
	}
}

// converged is a crude completion check used by the composite
// strategies' outer loop: no pending work and the cursor has caught up.
func (tc *ToddCoxeter) converged() bool {
	return tc.fg.Stack.Empty() && tc.fg.Queue.Len() == 0 && tc.hltCursor == digraph.Undefined
}
