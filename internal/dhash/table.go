// Package dhash implements the double-hashing dictionary engine: an
// open-addressed, prime-sized slot array probed with a two-hash composite
// sequence, grown and rehashed whenever an insert would push the load
// factor past MaxLoadFactor.
package dhash

import (
	"fmt"
	"strings"

	strerrors "github.com/tamirms/strset/errors"
	"github.com/tamirms/strset/internal/primes"
)

const (
	// DefaultCapacity is the initial slot count. It is prime.
	DefaultCapacity = 970031

	// MinCapacity is the smallest prime larger than stepPrime. Every step
	// h2 in [1, stepPrime] is then coprime with the capacity.
	MinCapacity = 11

	// MaxCapacity is the largest slot count a table may grow to (2^31-1, prime).
	MaxCapacity = 1<<31 - 1

	// GrowthFactor scales the capacity on resize, before rounding up to a prime.
	GrowthFactor = 5

	// MaxLoadFactor is loadNum/loadDen: count/capacity never exceeds it
	// once an insert completes.
	MaxLoadFactor = float64(loadNum) / float64(loadDen)

	loadNum = 45
	loadDen = 100
)

// Table is an open-addressing string set. The empty string marks an empty
// slot, so it is never stored.
//
// A Table is NOT safe for concurrent use.
type Table struct {
	slots   []string
	count   int
	initial int
	hash    HashFunc
}

// New creates an empty table of at least capacity slots, rounded up to a
// prime no smaller than MinCapacity. A nil hash selects DJB2(DefaultSeed).
func New(capacity int, hash HashFunc) (*Table, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", strerrors.ErrInvalidCapacity, capacity)
	}
	p, ok := primes.Next(uint64(max(capacity, MinCapacity)))
	if !ok || p > MaxCapacity {
		return nil, fmt.Errorf("%w: initial capacity %d", strerrors.ErrCapacityExceeded, capacity)
	}
	if hash == nil {
		hash = DJB2(DefaultSeed)
	}
	return &Table{
		slots:   make([]string, p),
		initial: int(p),
		hash:    hash,
	}, nil
}

// Len returns the number of occupied slots.
func (t *Table) Len() int {
	return t.count
}

// Capacity returns the current slot count.
func (t *Table) Capacity() int {
	return len(t.slots)
}

// LoadFactor returns count/capacity.
func (t *Table) LoadFactor() float64 {
	if len(t.slots) == 0 {
		return 0
	}
	return float64(t.count) / float64(len(t.slots))
}

// Insert adds value, growing the table first if one more entry would exceed
// MaxLoadFactor. Returns false if value is empty or already present.
func (t *Table) Insert(value string) (bool, error) {
	if value == "" {
		return false, nil
	}
	if len(t.slots) == 0 {
		t.slots = make([]string, t.initial)
	}

	if exceedsLoad(t.count+1, len(t.slots)) {
		if err := t.grow(); err != nil {
			return false, err
		}
	}

	i, found := t.probe(value)
	if found {
		return false, nil
	}
	if i < 0 {
		// Unreachable while the load bound holds.
		return false, fmt.Errorf("%w: no empty slot among %d", strerrors.ErrCorruptedTable, len(t.slots))
	}
	t.slots[i] = strings.Clone(value)
	t.count++
	return true, nil
}

// Contains reports whether value is stored in the table.
func (t *Table) Contains(value string) bool {
	if value == "" || len(t.slots) == 0 {
		return false
	}
	_, found := t.probe(value)
	return found
}

// Release drops the slot array and every stored string. A later Insert
// starts over at the initial capacity.
func (t *Table) Release() {
	clear(t.slots)
	t.slots = nil
	t.count = 0
}

// exceedsLoad reports whether count/capacity > MaxLoadFactor, in exact
// integer arithmetic.
func exceedsLoad(count, capacity int) bool {
	return uint64(count)*loadDen > uint64(capacity)*loadNum
}

// probe walks the probe sequence of value:
//
//	index_i = (h1(value) + i*h2(value)) mod capacity
//
// It returns the index holding value and true, or the first empty index and
// false. It returns -1 only if all capacity slots were visited without
// finding either. The sequence is advanced incrementally so that
// h1 + i*h2 never overflows.
func (t *Table) probe(value string) (int, bool) {
	capacity := uint64(len(t.slots))
	idx := t.hash(value) % capacity
	step := secondary(value) % capacity
	for range capacity {
		switch t.slots[idx] {
		case "":
			return int(idx), false
		case value:
			return int(idx), true
		}
		idx += step
		if idx >= capacity {
			idx -= capacity
		}
	}
	return -1, false
}

// grow resizes to the next prime >= capacity*GrowthFactor and rehashes.
func (t *Table) grow() error {
	next, err := nextCapacity(len(t.slots))
	if err != nil {
		return fmt.Errorf("%w (table holds %d values)", err, t.count)
	}
	t.rehash(next)
	return nil
}

// nextCapacity returns the capacity that follows capacity on growth.
func nextCapacity(capacity int) (int, error) {
	next, ok := primes.Next(uint64(capacity) * GrowthFactor)
	if !ok || next > MaxCapacity {
		return 0, fmt.Errorf("%w: cannot grow past %d slots", strerrors.ErrCapacityExceeded, capacity)
	}
	return int(next), nil
}

// rehash moves every live value into a fresh array of capacity slots.
// The old array serves as the extraction buffer: values are read from it and
// reinserted into the new one, so no live slot is overwritten before it has
// been visited.
func (t *Table) rehash(capacity int) {
	old := t.slots
	t.slots = make([]string, capacity)
	t.count = 0
	for _, v := range old {
		if v == "" {
			continue
		}
		i, _ := t.probe(v)
		t.slots[i] = v
		t.count++
	}
	clear(old)
}
