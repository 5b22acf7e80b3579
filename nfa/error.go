package nfa

import (
	"errors"
	"fmt"
)

// Common NFA errors. Internal invariant violations are programmer errors
// and panic rather than being returned: bad state/symbol indices panic with
// a string (see mustValidState/mustValidSymbol in nfa.go), and capacity
// overflow in Init panics with ErrTooManySymbols as the panic value.
var (
	// ErrTooManySymbols is Init's panic value when an alphabet larger than
	// MaxSymbols is requested.
	ErrTooManySymbols = errors.New("nfa: too many symbols")
)

// ConformanceError reports a violated compile-time capacity relation,
// mirroring original_source/nfa.c's _conformance_check_nfa assertions.
type ConformanceError struct {
	Relation string
}

// Error implements the error interface.
func (e *ConformanceError) Error() string {
	return fmt.Sprintf("nfa: conformance check failed: %s", e.Relation)
}
