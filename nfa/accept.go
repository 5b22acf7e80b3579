package nfa

import "github.com/oilnfa/oil/bitset"

// AcceptSample reports whether n accepts sample, via subset-construction
// simulation: starting from the initial states, repeatedly take the union
// of successors over the next symbol, rejecting early if that union is
// ever empty, and finally checking whether any state reached is final.
//
// The empty sample is accepted iff some initial state is also final.
func (n *NFA) AcceptSample(sample []Symbol) bool {
	var current, next, tmp bitset.Bitset
	n.GetInitials(&current)

	for _, sym := range sample {
		next.Clear()
		for it := current.First(); !it.End(); it = current.Next(it) {
			n.GetSuccessors(it.Element(), sym, &tmp)
			next.Union(&tmp)
		}
		if !next.Any() {
			return false
		}
		current, next = next, current
	}

	n.GetFinals(&tmp)
	current.Intersect(&tmp)
	return current.Any()
}

// sampleAt extracts the length-sampleLength slice of buffer starting at
// idx, as used throughout the batch query functions below.
func sampleAt(buffer []Symbol, sampleLength int, idx int) []Symbol {
	return buffer[idx : idx+sampleLength]
}

// AcceptAnySample reports whether n accepts at least one of the examples
// addressed by indices into buffer, each of length sampleLength.
func (n *NFA) AcceptAnySample(buffer []Symbol, sampleLength int, indices []int) bool {
	for _, idx := range indices {
		if n.AcceptSample(sampleAt(buffer, sampleLength, idx)) {
			return true
		}
	}
	return false
}

// AcceptAllSamples reports whether n accepts every example addressed by
// indices into buffer, each of length sampleLength.
func (n *NFA) AcceptAllSamples(buffer []Symbol, sampleLength int, indices []int) bool {
	for _, idx := range indices {
		if !n.AcceptSample(sampleAt(buffer, sampleLength, idx)) {
			return false
		}
	}
	return true
}

// AcceptSamples returns the number of examples addressed by indices into
// buffer, each of length sampleLength, that n accepts.
func (n *NFA) AcceptSamples(buffer []Symbol, sampleLength int, indices []int) int {
	count := 0
	for _, idx := range indices {
		if n.AcceptSample(sampleAt(buffer, sampleLength, idx)) {
			count++
		}
	}
	return count
}
