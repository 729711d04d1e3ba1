// SPDX-License-Identifier: MIT

package stephen_test

import (
	"testing"

	"github.com/libsemigroups/libsemigroups-sub000/internal/digraph"
	"github.com/libsemigroups/libsemigroups-sub000/stephen"
)

// TestIdempotentMonoidLeftFactors is spec scenario S6: the monoid
// presentation <a,b | a^2=a, b^2=b, (ab)^2=(ba)^2> with w = ab.
func TestIdempotentMonoidLeftFactors(t *testing.T) {
	a, b := 0, 1
	p := digraph.Presentation{AlphabetSize: 2}
	p.AddRule(digraph.Word{a, a}, digraph.Word{a})
	p.AddRule(digraph.Word{b, b}, digraph.Word{b})
	p.AddRule(digraph.Word{a, b, a, b}, digraph.Word{b, a, b, a})

	s, err := stephen.New(p, digraph.Word{a, b})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Run()

	if !s.Accepts(digraph.Word{a, b}) {
		t.Fatal("accepts(ab) must be true")
	}
	if s.Accepts(digraph.Word{b, a}) {
		t.Fatal("accepts(ba) must be false")
	}
	if !s.IsLeftFactor(digraph.Word{a}) {
		t.Fatal("is_left_factor(a) must be true")
	}

	s.Standardize()

	want := []digraph.Word{
		{},
		{a},
		{b},
		{a, b},
		{b, a},
	}
	for i, w := range want {
		got := s.WordOf(digraph.Node(i))
		if !wordEqual(got, w) {
			t.Fatalf("WordOf(%d) = %v, want %v", i, got, w)
		}
	}
}

// TestEmptySidedRelationOrder2Element exercises a relation with an
// empty side (a^2 = e, the order-2 cyclic group) against the word "a":
// a*a*a reduces to a, but a*a does not, since a*a = e != a.
func TestEmptySidedRelationOrder2Element(t *testing.T) {
	const a = 0
	p := digraph.Presentation{AlphabetSize: 1, ContainsEmptyWord: true}
	p.AddRule(digraph.Word{a, a}, digraph.Word{})

	s, err := stephen.New(p, digraph.Word{a})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Run()

	if !s.Accepts(digraph.Word{a, a, a}) {
		t.Fatal("accepts(aaa) must be true: a^3 = a in this group")
	}
	if s.Accepts(digraph.Word{a, a}) {
		t.Fatal("accepts(aa) must be false: a^2 = e != a")
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
