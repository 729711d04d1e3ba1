// SPDX-License-Identifier: MIT

package toddcoxeter

import "time"

// Run executes the configured strategy to completion. It fails with
// UnboundedEnumerationError if the presentation is obviously infinite
// and no time budget is given, or HLTNotApplicableError if HLT was
// chosen with nothing at all to trace and no time budget is given
// either (a caller that did supply a budget is never at risk of
// blocking forever, so the same guard does not apply to RunFor/RunUntil).
func (tc *ToddCoxeter) Run() error {
	return tc.run(nil)
}

// RunFor executes the strategy for at most d before returning; a
// subsequent Run/RunFor/RunUntil resumes from where this left off.
func (tc *ToddCoxeter) RunFor(d time.Duration) error {
	deadline := time.Now().Add(d)
	return tc.run(func() bool { return time.Now().After(deadline) })
}

// RunUntil executes the strategy, checking pred at every cooperative
// point, returning as soon as it reports true.
func (tc *ToddCoxeter) RunUntil(pred func() bool) error {
	return tc.run(pred)
}

func (tc *ToddCoxeter) run(stop func() bool) error {
	if tc.finished {
		return nil
	}

	if !tc.started {
		if stop == nil && tc.isObviouslyInfinite() {
			return &UnboundedEnumerationError{Detail: "presentation has an unconstrained generator and no time budget was set"}
		}
		if stop == nil && tc.Settings.Strategy == StrategyHLT &&
			len(tc.pres.Rules) == 0 && len(tc.extraPairs) == 0 && tc.pres.AlphabetSize > 0 {
			return &HLTNotApplicableError{Detail: "HLT has no relators or generating pairs to trace and would never terminate"}
		}
		tc.started = true
		tc.oneSidedSeed()
	}

	interrupted := false
	wrapped := stop
	if stop != nil {
		wrapped = func() bool {
			if stop() {
				interrupted = true
				return true
			}
			return false
		}
	}

	prev := tc.setState(stateHLT)
	tc.runStrategy(wrapped)
	tc.state.Store(int32(prev))

	if interrupted {
		return nil
	}

	// confirm confluence with one final full lookahead before
	// declaring the graph finished.
	tc.performLookahead(LookaheadHLT, LookaheadFull, false)
	tc.finished = true
	return nil
}
