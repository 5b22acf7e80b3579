// Package sample holds the external sample model the OIL engine learns
// from: a contiguous symbol buffer plus two index lists addressing
// fixed-length positive and negative examples within it.
//
// Loading this data from a file, a generator, or a network source is
// explicitly out of scope (see spec.md §1, §6) — that is the caller's job.
// This package only holds the resulting structure and validates it against
// the preconditions package oil's Learn requires.
package sample

import (
	"errors"
	"fmt"

	"github.com/oilnfa/oil/nfa"
)

// Sentinel errors wrapped by Set.Validate's returned error.
var (
	// ErrIndexOutOfRange indicates an example offset (or offset+length)
	// falls outside the symbol buffer.
	ErrIndexOutOfRange = errors.New("sample: index out of range")

	// ErrTooManyPositives indicates more positive examples were supplied
	// than the automaton could ever have capacity to introduce spines for.
	ErrTooManyPositives = errors.New("sample: too many positive examples for automaton capacity")

	// ErrTooManySymbols indicates the alphabet exceeds nfa.MaxSymbols.
	ErrTooManySymbols = errors.New("sample: alphabet too large")
)

// Set is the external sample model: a symbol buffer plus index lists for
// the positive examples (which the induced NFA must accept) and negative
// examples (which it must reject). Every example has the same length,
// SampleLength, and Positive[i]/Negative[i] are the offsets of each
// example's first symbol within Buffer.
type Set struct {
	Buffer       []nfa.Symbol
	SampleLength int
	Positive     []int
	Negative     []int
}

// Validate checks the preconditions spec.md §4.3 requires of oil.Learn's
// inputs: every index addresses a complete example inside Buffer, the
// alphabet fits within nfa.MaxSymbols, and there are few enough positive
// examples that a worst-case run (one spine of SampleLength+1 fresh states
// per unmatched positive) could never exceed nfa.MaxStates.
//
// This is a boundary check on caller-supplied data, not an internal
// invariant, so it returns an error instead of panicking (contrast with
// package nfa and package bitset, which panic on internal precondition
// violations).
func (s Set) Validate(symbols int) error {
	if symbols > nfa.MaxSymbols {
		return fmt.Errorf("%w: symbols=%d max=%d", ErrTooManySymbols, symbols, nfa.MaxSymbols)
	}

	for _, idx := range s.Positive {
		if err := s.checkIndex(idx); err != nil {
			return err
		}
	}
	for _, idx := range s.Negative {
		if err := s.checkIndex(idx); err != nil {
			return err
		}
	}

	if cap := nfa.MaxStates / (s.SampleLength + 1); len(s.Positive) > cap {
		return fmt.Errorf("%w: %d positives, capacity for %d", ErrTooManyPositives, len(s.Positive), cap)
	}

	return nil
}

func (s Set) checkIndex(idx int) error {
	if idx < 0 || idx+s.SampleLength > len(s.Buffer) {
		return fmt.Errorf("%w: index %d, sample length %d, buffer length %d",
			ErrIndexOutOfRange, idx, s.SampleLength, len(s.Buffer))
	}
	return nil
}
