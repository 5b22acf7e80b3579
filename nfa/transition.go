package nfa

import "github.com/oilnfa/oil/bitset"

// AddInitial marks state q as an initial state.
//
// Panics if q is out of range.
func (n *NFA) AddInitial(q StateID) {
	mustValidState(q)
	n.initials.Add(q)
}

// RemoveInitial unmarks state q as an initial state.
//
// Panics if q is out of range.
func (n *NFA) RemoveInitial(q StateID) {
	mustValidState(q)
	n.initials.Remove(q)
}

// IsInitial reports whether q is an initial state.
//
// Panics if q is out of range.
func (n *NFA) IsInitial(q StateID) bool {
	mustValidState(q)
	return n.initials.Contains(q)
}

// GetInitials copies the set of initial states into out.
func (n *NFA) GetInitials(out *bitset.Bitset) {
	*out = n.initials
}

// AddFinal marks state q as a final (accepting) state.
//
// Panics if q is out of range.
func (n *NFA) AddFinal(q StateID) {
	mustValidState(q)
	n.finals.Add(q)
}

// RemoveFinal unmarks state q as a final state.
//
// Panics if q is out of range.
func (n *NFA) RemoveFinal(q StateID) {
	mustValidState(q)
	n.finals.Remove(q)
}

// IsFinal reports whether q is a final state.
//
// Panics if q is out of range.
func (n *NFA) IsFinal(q StateID) bool {
	mustValidState(q)
	return n.finals.Contains(q)
}

// GetFinals copies the set of final states into out.
func (n *NFA) GetFinals(out *bitset.Bitset) {
	*out = n.finals
}

// GetSuccessors copies δ(q,a), the set of states reachable from q on
// symbol a, into out.
//
// Panics if q or a is out of range.
func (n *NFA) GetSuccessors(q StateID, a Symbol, out *bitset.Bitset) {
	mustValidState(q)
	mustValidSymbol(n, a)
	*out = n.forward[offset(n, q, a)]
}

// GetPredecessors copies δ⁻¹(q,a), the set of states that reach q on
// symbol a, into out.
//
// Panics if q or a is out of range.
func (n *NFA) GetPredecessors(q StateID, a Symbol, out *bitset.Bitset) {
	mustValidState(q)
	mustValidSymbol(n, a)
	*out = n.backward[offset(n, q, a)]
}

// AddTransition adds the edge q0 --a--> q1. Idempotent: adding the same
// edge twice has no additional effect.
//
// Panics if q0, q1 or a is out of range.
func (n *NFA) AddTransition(q0, q1 StateID, a Symbol) {
	mustValidState(q0)
	mustValidState(q1)
	mustValidSymbol(n, a)
	n.forward[offset(n, q0, a)].Add(q1)
	n.backward[offset(n, q1, a)].Add(q0)
}

// RemoveTransition removes the edge q0 --a--> q1, if present. Idempotent:
// removing an absent edge has no effect.
//
// Panics if q0, q1 or a is out of range.
func (n *NFA) RemoveTransition(q0, q1 StateID, a Symbol) {
	mustValidState(q0)
	mustValidState(q1)
	mustValidSymbol(n, a)
	n.forward[offset(n, q0, a)].Remove(q1)
	n.backward[offset(n, q1, a)].Remove(q0)
}
