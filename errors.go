package oil

import "errors"

// Sentinel errors returned by Learn. Use errors.Is to test for them;
// the returned error also wraps the more specific sample/config error
// that caused it.
var (
	// ErrInvalidConfig indicates cfg failed validation.
	ErrInvalidConfig = errors.New("oil: invalid config")

	// ErrInvalidSamples indicates set failed validation against symbols
	// (an out-of-range example offset, too many positives for the
	// automaton's capacity, or an alphabet larger than nfa.MaxSymbols).
	ErrInvalidSamples = errors.New("oil: invalid sample set")
)
