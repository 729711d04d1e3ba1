// SPDX-License-Identifier: MIT

package toddcoxeter

import (
	"time"

	"github.com/libsemigroups/libsemigroups-sub000/internal/digraph"
	"github.com/libsemigroups/libsemigroups-sub000/internal/felsch"
)

// performLookahead runs a bulk relator-tracing pass that collapses the
// graph without creating new nodes beyond what tracing legitimately
// needs, then adjusts lookaheadNext for next time.
func (tc *ToddCoxeter) performLookahead(style LookaheadStyle, extent LookaheadExtent, stopEarly bool) {
	prev := tc.setState(stateLookahead)
	defer tc.state.Store(int32(prev))
	tc.report("lookahead:start")
	defer tc.report("lookahead:stop")

	start := tc.arena.ActiveNodes()
	if extent == LookaheadPartial {
		var from []digraph.Node
		for n := tc.hltCursor; n != digraph.Undefined; n = tc.arena.NextActive(n) {
			from = append(from, n)
		}
		start = from
	}

	killedBefore := tc.arena.Killed()
	activeBefore := tc.arena.Active()

	var stopFn func() bool
	if stopEarly {
		stopFn = tc.stopEarlyChecker()
	}

	switch style {
	case LookaheadHLT:
		tc.fg.MakeCompatible(start, stopFn)
	case LookaheadFelsch:
		for _, n := range start {
			if stopFn != nil && stopFn() {
				break
			}
			for a := 0; a < tc.pres.AlphabetSize; a++ {
				tc.fg.Stack.Push(felsch.Definition{Source: n, Label: a})
			}
			tc.fg.ProcessDefinitions()
		}
	}

	tc.adjustLookaheadNext(killedBefore, activeBefore)
}

// stopEarlyChecker implements the wall-clock sampling heuristic: every
// LookaheadStopEarlyInterval, if fewer than ratio*active nodes died in
// that interval, the lookahead aborts.
func (tc *ToddCoxeter) stopEarlyChecker() func() bool {
	last := time.Now()
	killedAtLast := tc.arena.Killed()
	interval := time.Duration(tc.Settings.LookaheadStopEarlyInterval) * time.Millisecond

	return func() bool {
		if time.Since(last) < interval {
			return false
		}
		killedNow := tc.arena.Killed()
		delta := killedNow - killedAtLast
		last = time.Now()
		killedAtLast = killedNow
		return float64(delta) < tc.Settings.LookaheadStopEarlyRatio*float64(tc.arena.Active())
	}
}

// adjustLookaheadNext grows or shrinks the threshold for the next
// lookahead based on how much the graph just collapsed.
func (tc *ToddCoxeter) adjustLookaheadNext(killedBefore, activeBefore int) {
	active := tc.arena.Active()
	killed := tc.arena.Killed()
	oldNext := tc.lookaheadNext
	gf := tc.Settings.LookaheadGrowthFactor

	switch {
	case float64(active)*gf < float64(oldNext) || active > oldNext:
		next := int(gf * float64(active))
		if next < tc.Settings.LookaheadMin {
			next = tc.Settings.LookaheadMin
		}
		tc.lookaheadNext = next
	case float64(killed) < float64(killed+active)/float64(tc.Settings.LookaheadGrowthThreshold):
		tc.lookaheadNext = int(float64(oldNext) * gf)
	}
}
