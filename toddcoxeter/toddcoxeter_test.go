// SPDX-License-Identifier: MIT

package toddcoxeter_test

import (
	"errors"
	"testing"
	"time"

	"github.com/libsemigroups/libsemigroups-sub000/internal/digraph"
	"github.com/libsemigroups/libsemigroups-sub000/toddcoxeter"
)

// TestTrivialMonoidTwoClasses is spec scenario S1: alphabet {0,1},
// rules (00=0), (0=1), empty word allowed.
func TestTrivialMonoidTwoClasses(t *testing.T) {
	p := digraph.Presentation{AlphabetSize: 2, ContainsEmptyWord: true}
	p.AddRule(digraph.Word{0, 0}, digraph.Word{0})
	p.AddRule(digraph.Word{0}, digraph.Word{1})

	tc, err := toddcoxeter.New(toddcoxeter.TwoSided, p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	n, infinite := tc.NumberOfClasses()
	if infinite {
		t.Fatal("must not be reported infinite")
	}
	if n != 2 {
		t.Fatalf("NumberOfClasses() = %d, want 2", n)
	}

	r1, err := tc.Reduce(digraph.Word{0, 0, 0, 0})
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	r2, err := tc.Reduce(digraph.Word{0, 0})
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if !wordEqual(r1, r2) {
		t.Fatalf("reduce(0000) = %v, reduce(00) = %v, want equal", r1, r2)
	}

	ok, err := tc.Contains(digraph.Word{0, 0, 0, 0}, digraph.Word{0, 0})
	if err != nil {
		t.Fatalf("Contains: %v", err)
	}
	if !ok {
		t.Fatal("contains(0000, 00) must be true")
	}
}

// TestFreeSemigroupTwoGeneratorsOneClass is spec scenario S3: free
// semigroup on 2 generators, no rules, 2-sided generating pair (0,1).
func TestFreeSemigroupTwoGeneratorsOneClass(t *testing.T) {
	p := digraph.Presentation{AlphabetSize: 2}

	tc, err := toddcoxeter.New(toddcoxeter.TwoSided, p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := tc.AddGeneratingPair(digraph.Word{0}, digraph.Word{1}); err != nil {
		t.Fatalf("AddGeneratingPair: %v", err)
	}

	n, infinite := tc.NumberOfClasses()
	if infinite {
		t.Fatal("must not be reported infinite")
	}
	if n != 1 {
		t.Fatalf("NumberOfClasses() = %d, want 1", n)
	}

	ok, err := tc.Contains(digraph.Word{0, 1, 0, 1, 0}, digraph.Word{1})
	if err != nil {
		t.Fatalf("Contains: %v", err)
	}
	if !ok {
		t.Fatal("contains(01010, 1) must be true")
	}

	r1, err := tc.Reduce(digraph.Word{0, 1, 0, 1, 0})
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	r2, err := tc.Reduce(digraph.Word{1})
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if !wordEqual(r1, r2) {
		t.Fatalf("reduce(01010) = %v, reduce(1) = %v, want equal", r1, r2)
	}
}

// TestInfiniteMonoidUnboundedEnumeration is spec scenario S4: no
// relations, 1 generator, empty word allowed.
func TestInfiniteMonoidUnboundedEnumeration(t *testing.T) {
	p := digraph.Presentation{AlphabetSize: 1, ContainsEmptyWord: true}

	tc, err := toddcoxeter.New(toddcoxeter.TwoSided, p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	err = tc.Run()
	var unbounded *toddcoxeter.UnboundedEnumerationError
	if !errors.As(err, &unbounded) {
		t.Fatalf("Run() error = %v, want *UnboundedEnumerationError", err)
	}

	// With a time budget supplied, RunFor must return normally instead
	// of raising HLTNotApplicableError: a caller who bounded the run
	// accepts an incomplete result, so there is no risk of blocking
	// forever on a presentation with nothing to trace.
	tc2, err := toddcoxeter.New(toddcoxeter.TwoSided, p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := tc2.RunFor(50 * time.Millisecond); err != nil {
		t.Fatalf("RunFor: %v", err)
	}
}

// TestSymmetricGroupS3 is spec scenario S2, scaled down in spirit: the
// standard Coxeter presentation of S_n collapses to n! classes. We use
// S3 (6 classes) to keep the test fast while still exercising HLT,
// standardisation, and index_of/word_of round-tripping.
func TestSymmetricGroupS3(t *testing.T) {
	// Coxeter generators a=0, b=1 for S_3: a^2=b^2=(ab)^3=e, empty word
	// stands for the identity.
	p := digraph.Presentation{AlphabetSize: 2, ContainsEmptyWord: true}
	p.AddRule(digraph.Word{0, 0}, digraph.Word{})
	p.AddRule(digraph.Word{1, 1}, digraph.Word{})
	p.AddRule(digraph.Word{0, 1, 0, 1, 0, 1}, digraph.Word{})

	tc, err := toddcoxeter.New(toddcoxeter.TwoSided, p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	n, infinite := tc.NumberOfClasses()
	if infinite {
		t.Fatal("S_3 is finite")
	}
	if n != 6 {
		t.Fatalf("NumberOfClasses() = %d, want 6 (|S_3| = 6)", n)
	}

	changed, err := tc.Standardize(toddcoxeter.OrderShortlex)
	if err != nil {
		t.Fatalf("Standardize: %v", err)
	}
	_ = changed

	idx, err := tc.IndexOf(digraph.Word{})
	if err != nil {
		t.Fatalf("IndexOf(empty): %v", err)
	}
	if idx != 0 {
		t.Fatalf("IndexOf(empty) = %d, want 0", idx)
	}

	w, err := tc.WordOf(0)
	if err != nil {
		t.Fatalf("WordOf(0): %v", err)
	}
	if len(w) != 0 {
		t.Fatalf("WordOf(0) = %v, want the empty word", w)
	}
}

func TestStandardizeNoneIsRejected(t *testing.T) {
	p := digraph.Presentation{AlphabetSize: 1, ContainsEmptyWord: true}
	p.AddRule(digraph.Word{0}, digraph.Word{})
	tc, err := toddcoxeter.New(toddcoxeter.TwoSided, p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := tc.Standardize(toddcoxeter.OrderNone); err == nil {
		t.Fatal("Standardize(OrderNone) must return an error")
	}
}

func TestAddGeneratingPairAfterStartFails(t *testing.T) {
	p := digraph.Presentation{AlphabetSize: 1, ContainsEmptyWord: true}
	p.AddRule(digraph.Word{0}, digraph.Word{})
	tc, err := toddcoxeter.New(toddcoxeter.TwoSided, p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := tc.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	err = tc.AddGeneratingPair(digraph.Word{0}, digraph.Word{})
	var precondition *toddcoxeter.PreconditionError
	if !errors.As(err, &precondition) {
		t.Fatalf("AddGeneratingPair after Run() error = %v, want *PreconditionError", err)
	}
}

func wordEqual(a, b digraph.Word) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
