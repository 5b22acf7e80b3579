package bitset

import "github.com/oilnfa/oil/internal/bitscan"

// Iterator walks the present elements of a Bitset in ascending order.
//
// A non-end Iterator points at a present element; an end Iterator signals
// exhaustion. Exactly one of those two states holds at any time. Obtaining
// an Iterator does not snapshot the set — see the package doc comment for
// the mutation discipline this implies.
type Iterator struct {
	bucket int
	bit    int
	end    bool
}

// End reports whether the iterator has been exhausted.
func (it Iterator) End() bool {
	return it.end
}

// Element returns the element the iterator currently points to.
//
// Panics if the iterator is past the end.
func (it Iterator) Element() int {
	if it.end {
		panic("bitset: Element called on end iterator")
	}
	return it.bucket*WordBits + it.bit
}

// First returns an iterator positioned at the least element of b, or an end
// iterator if b is empty.
func (b *Bitset) First() Iterator {
	for bucket := 0; bucket < MaxBuckets; bucket++ {
		if pos, ok := bitscan.FirstSet(b.buckets[bucket]); ok {
			return Iterator{bucket: bucket, bit: pos}
		}
	}
	return Iterator{end: true}
}

// Next returns an iterator positioned at the next greater element of b
// after it, or an end iterator if none remains.
//
// Panics if it is already an end iterator.
func (b *Bitset) Next(it Iterator) Iterator {
	if it.end {
		panic("bitset: Next called on end iterator")
	}
	if pos, ok := bitscan.NextSet(b.buckets[it.bucket], it.bit); ok {
		return Iterator{bucket: it.bucket, bit: pos}
	}
	for bucket := it.bucket + 1; bucket < MaxBuckets; bucket++ {
		if pos, ok := bitscan.FirstSet(b.buckets[bucket]); ok {
			return Iterator{bucket: bucket, bit: pos}
		}
	}
	return Iterator{end: true}
}

// AddIter inserts the element at iterator position it into the set.
//
// Panics if it is an end iterator.
func (b *Bitset) AddIter(it Iterator) {
	if it.end {
		panic("bitset: AddIter called on end iterator")
	}
	b.buckets[it.bucket] |= 1 << uint(it.bit)
}

// RemoveIter deletes the element at iterator position it from the set.
//
// Panics if it is an end iterator.
func (b *Bitset) RemoveIter(it Iterator) {
	if it.end {
		panic("bitset: RemoveIter called on end iterator")
	}
	b.buckets[it.bucket] &^= 1 << uint(it.bit)
}
