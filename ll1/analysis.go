package ll1

import (
	"sort"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// --- Symbol sets -----------------------------------------------------------

// SymbolSet is an immutable, sorted set of grammar symbols. FIRST sets may
// contain ε, FOLLOW sets may contain the end marker $.
type SymbolSet struct {
	syms []string
}

func freezeSet(s *treeset.Set) SymbolSet {
	values := s.Values()
	syms := make([]string, len(values))
	for i, v := range values {
		syms[i] = v.(string)
	}
	return SymbolSet{syms: syms}
}

// Contains checks for membership of sym.
func (s SymbolSet) Contains(sym string) bool {
	i := sort.SearchStrings(s.syms, sym)
	return i < len(s.syms) && s.syms[i] == sym
}

// Symbols returns the members of the set, sorted.
func (s SymbolSet) Symbols() []string {
	return append([]string(nil), s.syms...)
}

// Len returns the size of the set.
func (s SymbolSet) Len() int {
	return len(s.syms)
}

// Equals compares two sets.
func (s SymbolSet) Equals(other SymbolSet) bool {
	if len(s.syms) != len(other.syms) {
		return false
	}
	for i := range s.syms {
		if s.syms[i] != other.syms[i] {
			return false
		}
	}
	return true
}

func (s SymbolSet) String() string {
	return "{" + strings.Join(s.syms, ", ") + "}"
}

// --- Grammar analysis ------------------------------------------------------

// SetAnalysis holds the FIRST and FOLLOW sets of a grammar. Create one with
// Analysis(g). Sets are computed once and are immutable afterwards.
type SetAnalysis struct {
	g      *Grammar
	first  map[string]SymbolSet
	follow map[string]SymbolSet
}

// Analysis computes FIRST and FOLLOW sets for all non-terminals of g.
func Analysis(g *Grammar) *SetAnalysis {
	ga := &SetAnalysis{g: g}
	first := ga.computeFirstSets()
	follow := ga.computeFollowSets(first)
	ga.first = make(map[string]SymbolSet, len(first))
	for A, set := range first {
		ga.first[A] = freezeSet(set)
	}
	ga.follow = make(map[string]SymbolSet, len(follow))
	for A, set := range follow {
		ga.follow[A] = freezeSet(set)
	}
	return ga
}

// Grammar returns the grammar which has been analysed.
func (ga *SetAnalysis) Grammar() *Grammar {
	return ga.g
}

// First returns FIRST(A) for a non-terminal A. If ε ∈ FIRST(A), A is nullable.
func (ga *SetAnalysis) First(A string) SymbolSet {
	return ga.first[A]
}

// Follow returns FOLLOW(A) for a non-terminal A.
func (ga *SetAnalysis) Follow(A string) SymbolSet {
	return ga.follow[A]
}

// FirstOfSequence returns FIRST(X1 … Xn) for a sequence of grammar symbols.
// FIRST of the empty sequence is {ε}.
func (ga *SetAnalysis) FirstOfSequence(symbols []string) SymbolSet {
	return freezeSet(ga.firstOfSequence(symbols, func(A string) []string {
		return ga.first[A].syms
	}))
}

// IsNullable is true if A derives the empty string.
func (ga *SetAnalysis) IsNullable(A string) bool {
	return ga.first[A].Contains(Epsilon)
}

// firstOfSequence scans a sequence from left to right: a terminal stops the
// scan, an explicit ε contributes ε and stops, a non-terminal contributes its
// FIRST set without ε and lets the scan continue if it is nullable.
// If the whole sequence is nullable, ε is added to the result.
func (ga *SetAnalysis) firstOfSequence(symbols []string, firstOf func(string) []string) *treeset.Set {
	result := treeset.NewWithStringComparator()
	nullable := true
	for _, sym := range symbols {
		if sym == Epsilon {
			break
		}
		if !ga.g.IsNonTerminal(sym) {
			result.Add(sym)
			nullable = false
			break
		}
		hasEpsilon := false
		for _, f := range firstOf(sym) {
			if f == Epsilon {
				hasEpsilon = true
				continue
			}
			result.Add(f)
		}
		if !hasEpsilon {
			nullable = false
			break
		}
	}
	if nullable {
		result.Add(Epsilon)
	}
	return result
}

// computeFirstSets iterates over all rules, adding FIRST(RHS) to FIRST(LHS),
// until no set grows any more.
func (ga *SetAnalysis) computeFirstSets() map[string]*treeset.Set {
	first := make(map[string]*treeset.Set)
	for A := range ga.g.nonterminals {
		first[A] = treeset.NewWithStringComparator()
	}
	firstOf := func(A string) []string {
		return stringValues(first[A])
	}
	changed, iteration := true, 0
	for changed {
		changed = false
		iteration++
		for _, r := range ga.g.rules {
			rhsFirst := ga.firstOfSequence(r.rhs, firstOf)
			if unionInto(first[r.LHS], rhsFirst) {
				changed = true
			}
		}
		tracer().Debugf("FIRST sets, iteration %d, changed=%v", iteration, changed)
	}
	return first
}

// computeFollowSets walks every rule from right to left, keeping a trailer of
// terminals which may follow the current position, until no FOLLOW set changes.
// FOLLOW(start) always contains the end marker.
func (ga *SetAnalysis) computeFollowSets(first map[string]*treeset.Set) map[string]*treeset.Set {
	follow := make(map[string]*treeset.Set)
	for A := range ga.g.nonterminals {
		follow[A] = treeset.NewWithStringComparator()
	}
	follow[ga.g.start].Add(EndMarker)
	changed, iteration := true, 0
	for changed {
		changed = false
		iteration++
		for _, r := range ga.g.rules {
			trailer := copySet(follow[r.LHS])
			for i := len(r.rhs) - 1; i >= 0; i-- {
				sym := r.rhs[i]
				if sym == Epsilon { // contributes nothing
					continue
				}
				if !ga.g.IsNonTerminal(sym) {
					trailer = treeset.NewWithStringComparator()
					trailer.Add(sym)
					continue
				}
				if unionInto(follow[sym], trailer) {
					changed = true
				}
				symFirst := first[sym]
				if !symFirst.Contains(Epsilon) {
					trailer = treeset.NewWithStringComparator()
				}
				for _, f := range stringValues(symFirst) {
					if f != Epsilon {
						trailer.Add(f)
					}
				}
			}
		}
		tracer().Debugf("FOLLOW sets, iteration %d, changed=%v", iteration, changed)
	}
	return follow
}

// --- Helpers ---------------------------------------------------------------

func unionInto(target, source *treeset.Set) bool {
	size := target.Size()
	target.Add(source.Values()...)
	return target.Size() != size
}

func copySet(s *treeset.Set) *treeset.Set {
	c := treeset.NewWithStringComparator()
	c.Add(s.Values()...)
	return c
}

func stringValues(s *treeset.Set) []string {
	values := s.Values()
	syms := make([]string, len(values))
	for i, v := range values {
		syms[i] = v.(string)
	}
	return syms
}
