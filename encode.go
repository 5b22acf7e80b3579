package oil

import "github.com/oilnfa/oil/nfa"

// symbolsToBytes converts a symbol sequence to the byte sequence
// internal/litcache indexes on. Every symbol fits: nfa.MaxSymbols is
// well under 256. This is a performance-path conversion, not part of
// the core algorithm, so the one allocation it costs is acceptable
// where the core's fixed-capacity, allocation-free design is not.
func symbolsToBytes(s []nfa.Symbol) []byte {
	b := make([]byte, len(s))
	for i, sym := range s {
		b[i] = byte(sym)
	}
	return b
}
