package nfa

import (
	"bufio"
	"fmt"
	"io"

	"github.com/oilnfa/oil/bitset"
)

// Print writes a textual dump of n to w: one line per state that has at
// least one outgoing transition, in the form
//
//	Q[I][F] |a>t1, t2, ... |b>...
//
// where I and F mark the initial/final flags (present only when true) and
// |a> precedes the ascending list of successors of that state on symbol a.
// States with no outgoing transitions on any symbol are omitted entirely.
func (n *NFA) Print(w io.Writer) error {
	bw := bufio.NewWriter(w)

	var succ bitset.Bitset
	for q := 0; q < n.GetStates(); q++ {
		hasSuccessors := false
		for a := 0; a < n.symbols; a++ {
			n.GetSuccessors(q, a, &succ)
			if succ.Any() {
				hasSuccessors = true
				break
			}
		}
		if !hasSuccessors {
			continue
		}

		fmt.Fprintf(bw, "%d", q)
		if n.IsInitial(q) {
			fmt.Fprint(bw, "I")
		}
		if n.IsFinal(q) {
			fmt.Fprint(bw, "F")
		}

		for a := 0; a < n.symbols; a++ {
			fmt.Fprintf(bw, " |%d>", a)
			n.GetSuccessors(q, a, &succ)
			first := true
			for it := succ.First(); !it.End(); it = succ.Next(it) {
				if !first {
					fmt.Fprint(bw, ", ")
				}
				fmt.Fprintf(bw, "%d", it.Element())
				first = false
			}
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}
