package dhash

import (
	"fmt"

	strerrors "github.com/tamirms/strset/errors"
	"github.com/tamirms/strset/internal/primes"
)

// Validate checks the table invariants: prime capacity, occupancy count,
// load bound, and that every stored value is found by its own probe
// sequence at the slot it occupies.
func (t *Table) Validate() error {
	if len(t.slots) == 0 {
		if t.count != 0 {
			return fmt.Errorf("%w: released table counts %d values", strerrors.ErrCorruptedTable, t.count)
		}
		return nil
	}
	if !primes.IsPrime(uint64(len(t.slots))) {
		return fmt.Errorf("%w: capacity %d is not prime", strerrors.ErrCorruptedTable, len(t.slots))
	}

	occupied := 0
	for i, v := range t.slots {
		if v == "" {
			continue
		}
		occupied++
		j, found := t.probe(v)
		if !found || j != i {
			return fmt.Errorf("%w: %q at slot %d is not reachable by probing",
				strerrors.ErrCorruptedTable, v, i)
		}
	}
	if occupied != t.count {
		return fmt.Errorf("%w: %d occupied slots, count %d", strerrors.ErrCorruptedTable, occupied, t.count)
	}
	if exceedsLoad(t.count, len(t.slots)) {
		return fmt.Errorf("%w: load %d/%d exceeds %.2f",
			strerrors.ErrCorruptedTable, t.count, len(t.slots), MaxLoadFactor)
	}
	return nil
}
