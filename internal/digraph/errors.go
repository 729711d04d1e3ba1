// SPDX-License-Identifier: MIT

package digraph

import "errors"

// Sentinel errors classifying presentation-validation failures. The
// stephen package returns these as they are, so callers can match on
// them with errors.Is. The toddcoxeter package replaces them with its
// own typed errors (see toddcoxeter/errors.go), keeping only their
// message text, so errors.Is does not match these through that wrapping.
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrLetterOutOfBounds = errors.New("letter out of bounds")
)
