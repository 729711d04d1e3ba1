// SPDX-License-Identifier: MIT

package toddcoxeter

import "github.com/libsemigroups/libsemigroups-sub000/internal/digraph"

// hltEngine iterates over active nodes tracing every relator from the
// cursor, forcing missing edges and stacking coincidences.
type hltEngine struct{ tc *ToddCoxeter }

// runUntil advances the cursor, tracing every relator from it, until
// either the cursor runs off the end of the active list, a lookahead
// is triggered, or stop() reports true.
func (h *hltEngine) runUntil(stop func() bool) {
	tc := h.tc
	rules := tc.activeRelators()

	for tc.hltCursor != digraph.Undefined {
		if stop != nil && stop() {
			return
		}

		for _, r := range rules {
			tc.fg.PushDefinitionHLT(tc.hltCursor, r.Left, r.Right, tc.Settings.Save)
			if tc.Settings.Save {
				tc.fg.ProcessDefinitions()
			}
		}
		if !tc.Settings.Save {
			tc.fg.ProcessDefinitions()
		}

		if tc.arena.Active() > tc.lookaheadNext && (!tc.Settings.Save || tc.fg.Stack.Skipped) {
			tc.fg.Stack.Skipped = false
			tc.performLookahead(tc.Settings.LookaheadStyle, LookaheadPartial, tc.Settings.LookaheadStopEarly)
			return
		}

		tc.hltCursor = tc.arena.NextActive(tc.hltCursor)
	}
}

// oneSidedSeed traces a one-sided congruence's generating pairs from
// node 0 only, exactly once, before the main strategy loop starts.
func (tc *ToddCoxeter) oneSidedSeed() {
	if tc.kind != OneSided {
		return
	}
	for _, p := range tc.extraPairs {
		tc.fg.PushDefinitionHLT(0, p.Left, p.Right, true)
	}
	tc.fg.ProcessDefinitions()
}
