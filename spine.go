package oil

import "github.com/oilnfa/oil/nfa"

// introduceSpine extends e's hypothesis automaton with a fresh chain of
// len(example)+1 isolated states q0 -sample[0]-> q1 -sample[1]-> ... -> qL,
// marks q0 initial and qL final, and records the new ids at the end of
// the pool for mergeSweep to fold back into the rest of the automaton.
//
// States are taken from unusedStates in ascending id order: the first
// via First(), each following one via Next() from the previous state's
// position — not via a fresh First() each time. Next never looks back
// at the bit it was called from, only forward, so this is safe even
// though that bit was just cleared by the previous RemoveIter; it also
// means ids only ever increase within one spine, which only matters for
// determinism, never for correctness.
//
// Grounded on original_source/oil.c's oil_coerce_match_sample.
func introduceSpine(e *engineState, example []nfa.Symbol) {
	length := len(example)
	if e.states+length+1 > nfa.MaxStates {
		panic("oil: spine introduction would exceed automaton capacity")
	}

	e.newStatesBegin = e.states

	it := e.unusedStates.First()
	q := it.Element()
	e.automaton.AddInitial(q)
	e.pool[e.states] = q
	e.states++
	e.unusedStates.RemoveIter(it)

	for _, sym := range example {
		next := e.unusedStates.Next(it)
		e.unusedStates.RemoveIter(next)
		r := next.Element()

		e.automaton.AddTransition(q, r, sym)
		e.pool[e.states] = r
		e.states++

		it = next
		q = r
	}

	e.automaton.AddFinal(q)

	if !e.automaton.AcceptSample(example) {
		panic("oil: newly introduced spine does not accept its own example")
	}
}
