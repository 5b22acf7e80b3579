//go:build amd64

package bitscan

import (
	"math/bits"

	"golang.org/x/sys/cpu"
)

// hasBMI1 reports whether the CPU has a dedicated trailing-zero-count
// instruction (TZCNT, via BMI1). When unavailable, bits.TrailingZeros64
// still works but the compiler emits a BSF-based sequence with an extra
// branch for the zero-input case, which trailingZerosGeneric avoids paying
// for on the (already guarded) zero-word path.
var hasBMI1 = cpu.X86.HasBMI1

func init() {
	if hasBMI1 {
		trailingZeros = trailingZerosBMI1
	}
}

// trailingZerosBMI1 is the fast path on CPUs with BMI1 support.
func trailingZerosBMI1(w uint64) int {
	return bits.TrailingZeros64(w)
}
