// Package bitset provides a fixed-capacity set of nonnegative integers,
// stored as an ordered array of fixed-width words.
//
// A Bitset represents a subset of {0, .., MaxBits-1}. Element i is present
// iff bit (i mod WordBits) of buckets[i/WordBits] is 1. Capacity is fixed at
// compile time (no dynamic allocation, no resizing) so that a Bitset can sit
// inline inside larger fixed-size structures — in particular the dense
// per-(state, symbol) transition tables of package nfa — and so that cloning
// one is a plain value copy.
//
// Mutating a Bitset while an Iterator obtained from it is in use is not
// safe: the iterator walks live bucket state and is not a snapshot. Callers
// that need to mutate while iterating a set of elements should copy the
// elements out first (see the package nfa merge routines for the pattern).
package bitset

// WordBits is the number of bits stored per bucket word.
const WordBits = 64

// MaxBuckets is the fixed number of bucket words in every Bitset.
const MaxBuckets = 2

// MaxBits is the fixed capacity of a Bitset: the number of distinct
// elements {0, .., MaxBits-1} it can represent.
const MaxBits = WordBits * MaxBuckets

func init() {
	conformanceCheck()
}

// conformanceCheck asserts the relations this package's capacity constants
// must satisfy, mirroring original_source/bitset.c's
// _conformance_check_bitset. It runs once at package load; a violation here
// is a build-time configuration error, not a runtime condition, so it
// panics rather than returning an error.
func conformanceCheck() {
	if MaxBuckets <= 0 {
		panic("bitset: MaxBuckets must be positive")
	}
	if MaxBits != WordBits*MaxBuckets {
		panic("bitset: MaxBits must equal WordBits*MaxBuckets")
	}
}

// Bitset is a fixed-capacity set of integers in [0, MaxBits).
//
// The zero value is a valid, empty Bitset — equivalent to calling New().
// Unlike the original C bitset_t, bucket_count is not a runtime field here:
// since MaxBuckets is the type's array dimension, every Bitset value has
// the same capacity by construction, and there is nothing left for Union
// or Intersect to check at runtime.
type Bitset struct {
	buckets [MaxBuckets]uint64
}

// New returns an empty Bitset.
func New() Bitset {
	return Bitset{}
}

// BucketCount returns the number of bucket words backing this set. It is
// always MaxBuckets; the method exists so callers can assert the
// bucket_count == MaxBuckets invariant from spec without reaching past the
// package boundary.
func (b *Bitset) BucketCount() int {
	return MaxBuckets
}

// Clear removes all elements from the set.
func (b *Bitset) Clear() {
	for i := range b.buckets {
		b.buckets[i] = 0
	}
}

func mustInRange(i int) {
	if i < 0 || i >= MaxBits {
		panic("bitset: index out of range")
	}
}

// Add inserts element i into the set.
//
// Panics if i is outside [0, MaxBits).
func (b *Bitset) Add(i int) {
	mustInRange(i)
	bucket, bit := i/WordBits, uint(i%WordBits)
	b.buckets[bucket] |= 1 << bit
}

// AddRange inserts the n consecutive elements [begin, begin+n) into the
// set.
//
// Panics if begin+n is outside [0, MaxBits].
func (b *Bitset) AddRange(begin, n int) {
	for i := begin; i < begin+n; i++ {
		b.Add(i)
	}
}

// Remove deletes element i from the set, if present.
//
// Panics if i is outside [0, MaxBits).
func (b *Bitset) Remove(i int) {
	mustInRange(i)
	bucket, bit := i/WordBits, uint(i%WordBits)
	b.buckets[bucket] &^= 1 << bit
}

// Contains reports whether element i is in the set.
//
// Panics if i is outside [0, MaxBits).
func (b *Bitset) Contains(i int) bool {
	mustInRange(i)
	bucket, bit := i/WordBits, uint(i%WordBits)
	return (b.buckets[bucket]>>bit)&1 != 0
}

// Union sets b to the union of b and other.
func (b *Bitset) Union(other *Bitset) {
	for i := range b.buckets {
		b.buckets[i] |= other.buckets[i]
	}
}

// Intersect sets b to the intersection of b and other.
func (b *Bitset) Intersect(other *Bitset) {
	for i := range b.buckets {
		b.buckets[i] &= other.buckets[i]
	}
}

// Any reports whether the set contains at least one element.
func (b *Bitset) Any() bool {
	for _, w := range b.buckets {
		if w != 0 {
			return true
		}
	}
	return false
}
