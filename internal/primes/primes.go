// Package primes provides the primality helpers used to size hash tables.
package primes

import "math"

// IsPrime reports whether n is prime.
// Uses trial division by 2, 3 and then 6k±1 up to sqrt(n).
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := uint64(5); i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// Next returns the smallest prime >= n.
// Returns false if no such prime fits in a uint64.
func Next(n uint64) (uint64, bool) {
	if n <= 2 {
		return 2, true
	}
	if n%2 == 0 {
		if n == math.MaxUint64-1 {
			return 0, false
		}
		n++
	}
	for !IsPrime(n) {
		// The largest prime below 2^64 is 2^64-59.
		if n > math.MaxUint64-2 {
			return 0, false
		}
		n += 2
	}
	return n, true
}
