package strset

import (
	"fmt"

	strerrors "github.com/tamirms/strset/errors"
	"github.com/tamirms/strset/internal/dhash"
	"github.com/tamirms/strset/internal/rbtree"
)

// Dictionary is a set of strings with byte-wise equality.
//
// Both engines honor the same contract:
//   - values are truncated to at most maxStr-1 bytes before storing or lookup
//   - empty or nil values are ignored: Insert stores nothing, Contains reports false
//   - inserting a present value is a no-op and retains no allocation
//   - Close releases all storage; later calls to Close are no-ops
//
// A Dictionary is NOT safe for concurrent use.
type Dictionary interface {
	// Insert adds value. Returns ErrClosed after Close, and
	// ErrCapacityExceeded if the engine cannot grow.
	Insert(value string) error

	// InsertBytes is Insert for a byte slice. A nil slice is a no-op.
	InsertBytes(value []byte) error

	// Contains reports whether value is present.
	Contains(value string) bool

	// ContainsBytes is Contains for a byte slice. A nil slice reports false.
	ContainsBytes(value []byte) bool

	// Len returns the number of distinct values stored.
	Len() int

	// Stats returns engine statistics.
	Stats() Stats

	// Close releases all storage held by the dictionary.
	Close() error
}

// Stats holds dictionary statistics.
type Stats struct {
	Engine EngineID
	Len    int
	MaxStr int

	// Double-hash engine only.
	Capacity   int
	LoadFactor float64

	// Red-black engine only.
	Height      int
	BlackHeight int
}

type dict struct {
	id     EngineID
	maxStr int
	eng    engine
	closed bool
}

var _ Dictionary = (*dict)(nil)

// New creates an empty dictionary backed by the given engine. Stored values
// are always shorter than maxStr bytes; maxStr must be at least 1.
func New(id EngineID, maxStr int, opts ...Option) (Dictionary, error) {
	if maxStr < 1 {
		return nil, fmt.Errorf("%w: got %d", strerrors.ErrInvalidMaxLen, maxStr)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	eng, err := newEngine(id, cfg)
	if err != nil {
		return nil, fmt.Errorf("create %s dictionary: %w", id, err)
	}

	return &dict{
		id:     id,
		maxStr: maxStr,
		eng:    eng,
	}, nil
}

// NewTree creates a dictionary backed by a red-black tree.
func NewTree(maxStr int, opts ...Option) (Dictionary, error) {
	return New(EngineRedBlack, maxStr, opts...)
}

// NewHashTable creates a dictionary backed by a double-hashing table.
func NewHashTable(maxStr int, opts ...Option) (Dictionary, error) {
	return New(EngineDoubleHash, maxStr, opts...)
}

// normalize applies the length bound. The result is empty when the value
// must be ignored.
func (d *dict) normalize(value string) string {
	if len(value) >= d.maxStr {
		return value[:d.maxStr-1]
	}
	return value
}

func (d *dict) Insert(value string) error {
	if d == nil || d.closed {
		return strerrors.ErrClosed
	}
	value = d.normalize(value)
	if value == "" {
		return nil
	}
	if _, err := d.eng.Insert(value); err != nil {
		return fmt.Errorf("insert into %s dictionary: %w", d.id, err)
	}
	return nil
}

func (d *dict) InsertBytes(value []byte) error {
	if len(value) == 0 {
		if d == nil || d.closed {
			return strerrors.ErrClosed
		}
		return nil
	}
	return d.Insert(string(value))
}

func (d *dict) Contains(value string) bool {
	if d == nil || d.closed {
		return false
	}
	value = d.normalize(value)
	if value == "" {
		return false
	}
	return d.eng.Contains(value)
}

func (d *dict) ContainsBytes(value []byte) bool {
	if len(value) == 0 {
		return false
	}
	return d.Contains(string(value))
}

func (d *dict) Len() int {
	if d == nil || d.closed {
		return 0
	}
	return d.eng.Len()
}

func (d *dict) Stats() Stats {
	if d == nil {
		return Stats{}
	}
	s := Stats{
		Engine: d.id,
		MaxStr: d.maxStr,
	}
	if d.closed {
		return s
	}
	s.Len = d.eng.Len()
	switch e := d.eng.(type) {
	case *dhash.Table:
		s.Capacity = e.Capacity()
		s.LoadFactor = e.LoadFactor()
	case *rbtree.Tree:
		s.Height = e.Height()
		s.BlackHeight = e.BlackHeight()
	}
	return s
}

// Close releases all storage. Calling Close on a closed or nil dictionary
// returns nil.
func (d *dict) Close() error {
	if d == nil || d.closed {
		return nil
	}
	d.closed = true
	d.eng.Release()
	d.eng = nil
	return nil
}
