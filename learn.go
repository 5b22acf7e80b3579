// Package oil induces a nondeterministic finite automaton consistent
// with a finite set of positive and negative example strings, per the
// OIL (Order Independent Language learning) algorithm of P. García et
// al., "Universal automata and NFA learning," Theoretical Computer
// Science 407 (2008), pp. 192–202.
//
// Learn is the package's single entry point. It drives two lower
// layers: package bitset (fixed-capacity integer sets) and package nfa
// (the fixed-capacity automaton itself, with merge and acceptance
// operations). For each positive example not yet accepted, Learn
// extends the automaton with a fresh chain of states that accepts it
// (introduceSpine), then greedily folds those new states back into the
// existing ones (mergeSweep) for as long as doing so keeps every
// negative example rejected.
package oil

import (
	"fmt"

	"github.com/oilnfa/oil/nfa"
	"github.com/oilnfa/oil/sample"
)

// Learn induces an NFA over the given alphabet size that accepts every
// positive example in set and rejects every negative one, per cfg.
//
// Returns a wrapped ErrInvalidConfig or ErrInvalidSamples if cfg or set
// fails validation. Internal invariant violations (not caller
// mistakes, but bugs) panic rather than returning an error — see
// package nfa and package bitset's precondition-violation panics.
func Learn(set sample.Set, symbols int, cfg Config) (nfa.NFA, error) {
	if err := cfg.Validate(); err != nil {
		return nfa.NFA{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := set.Validate(symbols); err != nil {
		return nfa.NFA{}, fmt.Errorf("%w: %w", ErrInvalidSamples, err)
	}

	e := newEngineState(symbols, cfg)

	for e.sampleIndex = 0; e.sampleIndex < len(set.Positive); e.sampleIndex++ {
		idx := set.Positive[e.sampleIndex]
		example := set.Buffer[idx : idx+set.SampleLength]

		if e.alreadyAccepted(example) {
			continue
		}

		introduceSpine(e, example)
		if e.litCache != nil {
			e.litCache.Learn(symbolsToBytes(example))
		}
		e.mergeSweep(set)
	}

	return e.automaton, nil
}

// alreadyAccepted reports whether e's current hypothesis automaton
// already accepts example, consulting the literal cache first as a
// cheap sufficient (never necessary) shortcut.
func (e *engineState) alreadyAccepted(example []nfa.Symbol) bool {
	if e.litCache != nil && e.litCache.KnownAccepted(symbolsToBytes(example)) {
		return true
	}
	return e.automaton.AcceptSample(example)
}
