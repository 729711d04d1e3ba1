// SPDX-License-Identifier: MIT

package toddcoxeter

import "github.com/libsemigroups/libsemigroups-sub000/internal/felsch"

// Kind distinguishes a one-sided (right) congruence from a two-sided one.
type Kind int

const (
	OneSided Kind = iota
	TwoSided
)

// Strategy selects the top-level enumeration strategy.
type Strategy int

const (
	StrategyHLT Strategy = iota
	StrategyFelsch
	StrategyCR
	StrategyROverC
	StrategyCr
	StrategyRc
	StrategyLookahead
	StrategyLookbehind
)

// Order selects the Standardiser's traversal/numbering scheme.
type Order int

const (
	OrderNone Order = iota
	OrderShortlex
	OrderLex
	OrderRecursive
)

// LookaheadStyle selects how a lookahead traces relators.
type LookaheadStyle int

const (
	LookaheadHLT LookaheadStyle = iota
	LookaheadFelsch
)

// LookaheadExtent selects whether a lookahead covers the whole active
// range or only what the HLT cursor has not yet passed.
type LookaheadExtent int

const (
	LookaheadPartial LookaheadExtent = iota
	LookaheadFull
)

// Settings holds every tunable governing strategy selection, definition
// processing, and lookahead behaviour. All fields carry sensible
// defaults and are retained across run/run_for/run_until calls.
type Settings struct {
	Strategy            Strategy
	DefPolicy            felsch.DefPolicy
	DefMax               int
	DefVersion           felsch.DefVersion
	Save                 bool
	UseRelationsInExtra  bool
	LargeCollapse        int
	HLTDefs              int
	FDefs                int
	LowerBound           int

	LookaheadStyle              LookaheadStyle
	LookaheadExtent             LookaheadExtent
	LookaheadMin                int
	LookaheadNext               int
	LookaheadGrowthFactor       float64
	LookaheadGrowthThreshold    int
	LookaheadStopEarly          bool
	LookaheadStopEarlyInterval  intMillis
	LookaheadStopEarlyRatio     float64
}

// intMillis documents that the field is a duration expressed in
// milliseconds; kept as a plain int so Settings stays comparable.
type intMillis = int

// DefaultSettings returns the engine's out-of-the-box tuning values.
func DefaultSettings() Settings {
	return Settings{
		Strategy:            StrategyHLT,
		DefPolicy:           felsch.NoStackIfNoSpace,
		DefMax:              2000,
		DefVersion:          felsch.DefVersionTwo,
		Save:                false,
		UseRelationsInExtra: false,
		LargeCollapse:       100_000,
		HLTDefs:             200_000,
		FDefs:               100_000,
		LowerBound:          0,

		LookaheadStyle:             LookaheadHLT,
		LookaheadExtent:            LookaheadFull,
		LookaheadMin:               10_000,
		LookaheadNext:              5_000_000,
		LookaheadGrowthFactor:      2.0,
		LookaheadGrowthThreshold:   4,
		LookaheadStopEarly:         false,
		LookaheadStopEarlyInterval: 1000,
		LookaheadStopEarlyRatio:    0.01,
	}
}
