// Package nfa implements a fixed-capacity nondeterministic finite automaton
// (Q, Σ, δ, I, F) over a small integer alphabet.
//
// Unlike a typical Thompson-construction regex NFA (states linked by
// pointers, built incrementally per-pattern), this NFA is represented as two
// dense transition tables indexed by (state, symbol), each cell a
// bitset.Bitset over destination states — a layout chosen so that cloning
// the whole automaton is a plain value copy and no operation allocates on
// the heap. See the Design Notes in SPEC_FULL.md for the rationale (the
// design originates in a hardware-synthesis target: fixed array sizes map
// directly onto fixed hardware resources).
//
// All states in [0, MaxStates) always exist; the automaton itself has no
// notion of which ones are "in use" versus isolated. That bookkeeping
// belongs to the caller — see package oil's engine state, which tracks live
// state ids externally via a pool and an unused-states bitset.
package nfa

import "github.com/oilnfa/oil/bitset"

// MaxStates is the fixed number of states every NFA has room for. It must
// not exceed bitset.MaxBits, since state ids are also bitset elements.
const MaxStates = 64

// MaxSymbols is the fixed size of the largest alphabet an NFA can use.
const MaxSymbols = 32

// StateID identifies a state by its index in [0, MaxStates).
type StateID = int

// Symbol identifies a letter of the alphabet by its index in [0, MaxSymbols).
type Symbol = int

func init() {
	conformanceCheck()
}

// conformanceCheck asserts the relations MaxStates and MaxSymbols must
// satisfy, mirroring original_source/nfa.c's _conformance_check_nfa. It
// runs once at package load.
func conformanceCheck() {
	if MaxStates > bitset.MaxBits {
		panic(&ConformanceError{Relation: "MaxStates must not exceed bitset.MaxBits"})
	}
	if MaxSymbols <= 0 {
		panic(&ConformanceError{Relation: "MaxSymbols must be positive"})
	}
}

// NFA is a fixed-capacity nondeterministic finite automaton.
//
// The zero value is not usable; construct one with Init.
type NFA struct {
	initials bitset.Bitset
	finals   bitset.Bitset

	// forward[q*symbols+a] = δ(q,a); backward[q*symbols+a] = δ⁻¹(q,a).
	// Sized to the maximum alphabet so that Clone is a plain value copy
	// regardless of how many symbols a particular automaton actually uses.
	forward  [MaxStates * MaxSymbols]bitset.Bitset
	backward [MaxStates * MaxSymbols]bitset.Bitset

	symbols int
}

func mustValidState(q StateID) {
	if q < 0 || q >= MaxStates {
		panic("nfa: state out of range")
	}
}

func mustValidSymbol(n *NFA, a Symbol) {
	if a < 0 || a >= n.symbols {
		panic("nfa: symbol out of range")
	}
}

// Init returns the empty automaton (no transitions, no initial or final
// states) over an alphabet of the given size.
//
// Panics if symbols exceeds MaxSymbols.
func Init(symbols int) NFA {
	if symbols > MaxSymbols {
		panic(ErrTooManySymbols)
	}
	return NFA{symbols: symbols}
}

// GetStates returns MaxStates, the automaton's fixed state capacity. Every
// NFA always exposes the same capacity regardless of how many states are
// actually in use — see the package doc comment.
func (n *NFA) GetStates() int {
	return MaxStates
}

// GetSymbols returns the size of this automaton's alphabet.
func (n *NFA) GetSymbols() int {
	return n.symbols
}

// Clone returns an independent value copy of n. Mutating the result never
// affects n, and vice versa.
func (n *NFA) Clone() NFA {
	return *n
}

func offset(n *NFA, q StateID, a Symbol) int {
	return q*n.symbols + a
}
