// SPDX-License-Identifier: MIT

package toddcoxeter

import "github.com/libsemigroups/libsemigroups-sub000/internal/felsch"

// The setters below are pure, retained across run/run_for/run_until
// calls, and (unlike AddGeneratingPair) carry no precondition — they
// may be called at any point in the engine's lifecycle.

func (tc *ToddCoxeter) SetStrategy(s Strategy) *ToddCoxeter {
	tc.Settings.Strategy = s
	return tc
}

func (tc *ToddCoxeter) SetSave(b bool) *ToddCoxeter {
	tc.Settings.Save = b
	return tc
}

func (tc *ToddCoxeter) SetLowerBound(n int) *ToddCoxeter {
	tc.Settings.LowerBound = n
	return tc
}

func (tc *ToddCoxeter) SetLargeCollapse(n int) *ToddCoxeter {
	tc.Settings.LargeCollapse = n
	tc.fg.Queue.LargeCollapseThreshold = n
	return tc
}

func (tc *ToddCoxeter) SetHLTDefs(n int) *ToddCoxeter {
	tc.Settings.HLTDefs = n
	return tc
}

func (tc *ToddCoxeter) SetFDefs(n int) *ToddCoxeter {
	tc.Settings.FDefs = n
	return tc
}

func (tc *ToddCoxeter) SetUseRelationsInExtra(b bool) *ToddCoxeter {
	tc.Settings.UseRelationsInExtra = b
	tc.rebuildRelators()
	return tc
}

func (tc *ToddCoxeter) SetDefPolicy(p felsch.DefPolicy) *ToddCoxeter {
	tc.Settings.DefPolicy = p
	tc.fg.Stack.Policy = p
	return tc
}

func (tc *ToddCoxeter) SetDefMax(n int) *ToddCoxeter {
	tc.Settings.DefMax = n
	tc.fg.Stack.Max = n
	return tc
}

func (tc *ToddCoxeter) SetDefVersion(v felsch.DefVersion) *ToddCoxeter {
	tc.Settings.DefVersion = v
	tc.fg.Version = v
	return tc
}

func (tc *ToddCoxeter) SetLookaheadStyle(s LookaheadStyle) *ToddCoxeter {
	tc.Settings.LookaheadStyle = s
	return tc
}

func (tc *ToddCoxeter) SetLookaheadExtent(e LookaheadExtent) *ToddCoxeter {
	tc.Settings.LookaheadExtent = e
	return tc
}

func (tc *ToddCoxeter) SetLookaheadMin(n int) *ToddCoxeter {
	tc.Settings.LookaheadMin = n
	return tc
}

func (tc *ToddCoxeter) SetLookaheadNext(n int) *ToddCoxeter {
	tc.Settings.LookaheadNext = n
	tc.lookaheadNext = n
	return tc
}

func (tc *ToddCoxeter) SetLookaheadStopEarly(b bool) *ToddCoxeter {
	tc.Settings.LookaheadStopEarly = b
	return tc
}

func (tc *ToddCoxeter) SetLookaheadStopEarlyRatio(r float64) *ToddCoxeter {
	tc.Settings.LookaheadStopEarlyRatio = r
	return tc
}

// PerformLookaheadNow is the explicit single-shot entry point for
// running a lookahead immediately, independent of the strategy driver.
func (tc *ToddCoxeter) PerformLookaheadNow(stopEarly bool) {
	tc.performLookahead(tc.Settings.LookaheadStyle, LookaheadFull, stopEarly)
}
