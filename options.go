package strset

import "github.com/tamirms/strset/internal/dhash"

// Option is a functional option for configuring a Dictionary.
type Option func(*config)

type config struct {
	capacity int    // initial slot count (double-hash engine)
	hash     HashID // primary probe hash (double-hash engine)
	seed     uint64 // seed for the primary hash
}

func defaultConfig() *config {
	return &config{
		capacity: dhash.DefaultCapacity,
		hash:     HashDJB2,
		seed:     dhash.DefaultSeed,
	}
}

// WithInitialCapacity sets the initial slot count of the double-hash engine.
// The count is rounded up to a prime of at least 11. The tree engine ignores it.
func WithInitialCapacity(n int) Option {
	return func(c *config) {
		c.capacity = n
	}
}

// WithHashFunc selects the primary hash of the double-hash engine.
// Default is HashDJB2. The tree engine ignores it.
func WithHashFunc(id HashID) Option {
	return func(c *config) {
		c.hash = id
	}
}

// WithSeed sets the seed of the primary hash. Default is 5381.
// HashMurmur3 uses the low 32 bits.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
	}
}
