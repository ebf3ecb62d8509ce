package dhash

// DefaultSeed is the initial accumulator of the DJB2 primary hash.
const DefaultSeed = 5381

// stepPrime bounds the secondary hash: h2 is always in [1, stepPrime].
const stepPrime = 7

// HashFunc is a primary hash h1. It must be deterministic for the life of a
// table.
type HashFunc func(s string) uint64

// DJB2 returns the multiplicative string hash hash = hash*33 + byte,
// starting from seed.
func DJB2(seed uint64) HashFunc {
	return func(s string) uint64 {
		h := seed
		for i := 0; i < len(s); i++ {
			h = (h << 5) + h + uint64(s[i])
		}
		return h
	}
}

// secondary is the probe step h2: derived from the byte sum and mapped into
// [1, stepPrime] so it is never zero.
func secondary(s string) uint64 {
	var sum uint64
	for i := 0; i < len(s); i++ {
		sum += uint64(s[i])
	}
	return stepPrime - sum%stepPrime
}
