package oil

import "math/rand"

// Config controls the learning engine's randomization and performance
// behavior. It does not affect what the induced automaton must satisfy
// (every positive accepted, every negative rejected) — only which
// consistent automaton is found and how fast.
type Config struct {
	// NoRandomSort disables the Fisher-Yates shuffle of newly introduced
	// states before each merge sweep, and switches pool removal from
	// swap-with-last to a left shift that preserves relative order. Two
	// runs with NoRandomSort set always produce the same automaton.
	NoRandomSort bool

	// SkipSearchBest stops a state's merge search at the first candidate
	// that keeps every negative rejected, rather than scoring every
	// candidate and keeping the one that accepts the most remaining
	// positives. Faster, and still correct, but more sensitive to
	// iteration order.
	SkipSearchBest bool

	// EnableLiteralCache toggles the Aho-Corasick "already proven
	// accepted" fast path. Purely a performance knob: disabling it never
	// changes the learned automaton, only how many redundant
	// AcceptSample calls are made.
	EnableLiteralCache bool

	// RandSource seeds the Fisher-Yates shuffle. A nil RandSource uses a
	// package-level default seeded from the current time, which makes
	// two runs with NoRandomSort unset generally not reproducible.
	// Supply a seeded *rand.Rand for reproducible randomized runs.
	RandSource *rand.Rand
}

// DefaultConfig returns the package's standard Config for passing to
// Learn: randomized, exhaustive best-merge search, literal caching
// enabled, unseeded.
func DefaultConfig() Config {
	return Config{
		NoRandomSort:       false,
		SkipSearchBest:     false,
		EnableLiteralCache: true,
	}
}

// Validate reports whether c is well-formed. Every zero-value field
// combination is currently valid; the method exists so callers that
// build a Config programmatically have a single place to check it,
// and so future fields with real constraints have somewhere to enforce
// them without changing Learn's signature.
func (c Config) Validate() error {
	return nil
}
