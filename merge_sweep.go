package oil

import "github.com/oilnfa/oil/sample"

// mergeSweep greedily collapses the states introduceSpine just added
// into earlier states, for as long as doing so keeps every negative
// example rejected. Among the candidates for a given state that keep
// the negatives rejected, it picks the one whose merged automaton
// accepts the most still-unprocessed positive examples — biasing
// toward merges that will make future spines unnecessary.
//
// Grounded on original_source/oil.c's oil_do_all_merges.
func (e *engineState) mergeSweep(set sample.Set) {
	if !e.cfg.NoRandomSort {
		begin, end := e.newStatesBegin, e.states
		fisherYatesShuffle(e.rng(), e.pool[begin:end])
	}

	remaining := set.Positive[e.sampleIndex+1:]

	i := e.newStatesBegin
	for i < e.states {
		s1 := e.pool[i]

		bestScore := -1
		bestFound := false
		bestAutomaton := e.automaton

		for j := 0; j < i; j++ {
			s2 := e.pool[j]

			candidate := e.automaton.Clone()
			candidate.MergeStates(s2, s1)

			if candidate.AcceptAnySample(set.Buffer, set.SampleLength, set.Negative) {
				continue
			}

			score := candidate.AcceptSamples(set.Buffer, set.SampleLength, remaining)
			if score > bestScore {
				bestScore = score
				bestAutomaton = candidate
				bestFound = true
				if e.cfg.SkipSearchBest {
					break
				}
			}
		}

		if bestFound {
			e.automaton = bestAutomaton
			e.unusedStates.Add(s1)
			e.mergeCounter++

			if e.cfg.NoRandomSort {
				copy(e.pool[i:e.states-1], e.pool[i+1:e.states])
			} else {
				e.pool[i] = e.pool[e.states-1]
			}
			e.states--
		} else {
			i++
		}
	}

	if e.automaton.AcceptAnySample(set.Buffer, set.SampleLength, set.Negative) {
		panic("oil: merge sweep violated the reject-all-negatives invariant")
	}
	if !e.automaton.AcceptAllSamples(set.Buffer, set.SampleLength, set.Positive[:e.sampleIndex+1]) {
		panic("oil: merge sweep violated the accept-all-processed-positives invariant")
	}
}
