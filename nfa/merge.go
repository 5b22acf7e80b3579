package nfa

import "github.com/oilnfa/oil/bitset"

// MergeStates collapses q2 into q1: q1 inherits the union of q1's and q2's
// connectivity (initial/final flags and all incoming/outgoing transitions),
// and q2 becomes isolated (no incoming or outgoing transitions, not
// initial, not final).
//
// The predecessor and successor sets of q2 are copied out before being
// iterated, so that the live transition bitsets can be mutated during the
// walk without disturbing the iteration — see the package bitset doc
// comment on iterator/mutation discipline.
//
// Panics if q1 or q2 is out of range.
func (n *NFA) MergeStates(q1, q2 StateID) {
	mustValidState(q1)
	mustValidState(q2)

	if n.IsInitial(q2) {
		n.AddInitial(q1)
		n.RemoveInitial(q2)
	}
	if n.IsFinal(q2) {
		n.AddFinal(q1)
		n.RemoveFinal(q2)
	}

	var preds, succs bitset.Bitset
	for a := 0; a < n.symbols; a++ {
		n.GetPredecessors(q2, a, &preds)
		for it := preds.First(); !it.End(); it = preds.Next(it) {
			p := it.Element()
			n.AddTransition(p, q1, a)
			n.RemoveTransition(p, q2, a)
		}

		n.GetSuccessors(q2, a, &succs)
		for it := succs.First(); !it.End(); it = succs.Next(it) {
			r := it.Element()
			n.AddTransition(q1, r, a)
			n.RemoveTransition(q2, r, a)
		}
	}
}
