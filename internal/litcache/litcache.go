// Package litcache provides a fast "already proven accepted" membership
// cache for fixed-length symbol sequences, backed by an Aho-Corasick
// automaton.
//
// It exists for the same reason the teacher this module was adapted from
// builds one: meta.buildStrategyEngines constructs an
// github.com/coregx/ahocorasick automaton over known literals and consults
// it (meta/ismatch.go's e.ahoCorasick.IsMatch) before falling back to full
// NFA simulation, because checking membership in a small literal set is far
// cheaper than running the general engine. Here the "known literals" are
// the exact symbol sequences package oil has already proven its hypothesis
// NFA accepts (by having just built a spine for them), and the "general
// engine" is nfa.NFA.AcceptSample.
//
// A cache hit is always correct: every sequence ever passed to Learn was,
// at the time, made accepted by construction. A cache miss proves nothing
// either way — the NFA may have since generalized to accept the sequence
// through an unrelated path — so callers must always fall back to the real
// simulation on a miss. The cache is therefore safe to disable entirely
// (see oil.Config.EnableLiteralCache): it only ever turns a necessary
// simulation into a skipped one, never the reverse.
package litcache

import (
	"github.com/coregx/ahocorasick"
)

// Cache is a set of known-accepted exact symbol sequences, queryable via a
// lazily (re)built Aho-Corasick automaton.
//
// All sequences ever passed to Learn or KnownAccepted on one Cache must
// share the same length (true in package oil, where it is the run's fixed
// sample length) — Aho-Corasick matches patterns as substrings, and a
// substring match only implies equality when haystack and pattern are the
// same length. KnownAccepted enforces this by rejecting any length that
// does not match what Learn has already seen.
//
// The zero value is an empty, usable Cache.
type Cache struct {
	learned []string
	length  int
	auto    *ahocorasick.Automaton
	dirty   bool
}

// Learn records sample as known-accepted. The underlying automaton is not
// rebuilt until the next KnownAccepted call.
//
// Panics if sample's length differs from a previously learned sample's.
func (c *Cache) Learn(sample []byte) {
	if len(c.learned) == 0 {
		c.length = len(sample)
	} else if len(sample) != c.length {
		panic("litcache: Learn called with mismatched sample length")
	}
	c.learned = append(c.learned, string(sample))
	c.dirty = true
	c.auto = nil
}

// KnownAccepted reports whether sample exactly equals a sequence
// previously passed to Learn. A length mismatch against previously
// learned sequences is always a miss, never a panic — this lets callers
// query freely without tracking the cache's established length themselves.
func (c *Cache) KnownAccepted(sample []byte) bool {
	if len(c.learned) == 0 || len(sample) != c.length {
		return false
	}
	if c.dirty {
		c.rebuild()
	}
	if c.auto == nil {
		return false
	}
	return c.auto.IsMatch(sample)
}

func (c *Cache) rebuild() {
	builder := ahocorasick.NewBuilder()
	for _, lit := range c.learned {
		builder.AddPattern([]byte(lit))
	}
	auto, err := builder.Build()
	if err != nil {
		// Building the automaton is a pure performance path; on failure we
		// simply fall back to "no cache", never to an incorrect answer.
		c.auto = nil
		c.dirty = false
		return
	}
	c.auto = auto
	c.dirty = false
}
