package oil

import (
	"math/rand"
	"sync"
	"time"
)

var (
	defaultRandOnce sync.Once
	defaultRandSrc  *rand.Rand
)

// defaultRand lazily constructs the package-level fallback random source,
// seeded from the current time on first use. Lazy so that callers who
// set Config.NoRandomSort (and therefore never shuffle) never pay for it.
func defaultRand() *rand.Rand {
	defaultRandOnce.Do(func() {
		defaultRandSrc = rand.New(rand.NewSource(time.Now().UnixNano()))
	})
	return defaultRandSrc
}

// fisherYatesShuffle permutes buf uniformly at random in place.
func fisherYatesShuffle(rng *rand.Rand, buf []int) {
	for i := len(buf) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		buf[i], buf[j] = buf[j], buf[i]
	}
}
