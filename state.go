package oil

import (
	"math/rand"

	"github.com/oilnfa/oil/bitset"
	"github.com/oilnfa/oil/internal/litcache"
	"github.com/oilnfa/oil/nfa"
)

// engineState is the mutable state one Learn call threads through spine
// introduction and the merge sweep that follows each one: the
// in-progress hypothesis automaton, the pool of live state ids, and the
// bookkeeping needed to pick fresh ones.
type engineState struct {
	automaton nfa.NFA

	// pool[0:states] holds the live state ids, in the order new ones are
	// appended and merged ones are removed. Fixed-size to match the
	// automaton's own state capacity — see DESIGN.md's note on why
	// this module sizes its arrays to nfa.MaxStates rather than growing
	// a slice.
	pool   [nfa.MaxStates]nfa.StateID
	states int

	// newStatesBegin is the index in pool where the most recent
	// introduceSpine call's fresh states begin; mergeSweep only ever
	// tries to merge states at or after this index into earlier ones.
	newStatesBegin int

	unusedStates bitset.Bitset

	sampleIndex  int
	mergeCounter int

	cfg      Config
	litCache *litcache.Cache
}

func newEngineState(symbols int, cfg Config) *engineState {
	e := &engineState{
		automaton: nfa.Init(symbols),
		cfg:       cfg,
	}
	e.unusedStates.AddRange(0, nfa.MaxStates)
	if cfg.EnableLiteralCache {
		e.litCache = &litcache.Cache{}
	}
	return e
}

// rng returns the shuffle source to use, falling back to the package
// default lazily if the caller didn't supply one via Config.RandSource.
func (e *engineState) rng() *rand.Rand {
	if e.cfg.RandSource != nil {
		return e.cfg.RandSource
	}
	return defaultRand()
}
