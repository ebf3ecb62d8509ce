package strset

import (
	"fmt"

	strerrors "github.com/tamirms/strset/errors"
	"github.com/tamirms/strset/internal/dhash"
	"github.com/tamirms/strset/internal/rbtree"
)

// EngineID identifies the data structure backing a Dictionary.
type EngineID uint8

const (
	// EngineRedBlack stores values in a red-black tree ordered byte-wise.
	EngineRedBlack EngineID = iota

	// EngineDoubleHash stores values in an open-addressed table probed by
	// double hashing.
	EngineDoubleHash
)

// String returns the engine name.
func (e EngineID) String() string {
	switch e {
	case EngineRedBlack:
		return "redblack"
	case EngineDoubleHash:
		return "doublehash"
	default:
		return "unknown"
	}
}

// engine is the contract both backing structures satisfy.
//
// Values reaching an engine are already normalized by the Dictionary: they
// are non-empty and shorter than the length bound. Engines copy a value
// only when they store it, so a duplicate insert retains nothing.
//
// An engine is NOT safe for concurrent use.
type engine interface {
	// Insert stores value. Returns false if it was already present.
	Insert(value string) (bool, error)

	// Contains reports whether value is stored.
	Contains(value string) bool

	// Len returns the number of stored values.
	Len() int

	// Release drops all storage.
	Release()

	// Validate checks the structure's invariants.
	Validate() error
}

var (
	_ engine = (*rbtree.Tree)(nil)
	_ engine = (*dhash.Table)(nil)
)

// newEngine creates the engine selected by id, configured from cfg.
func newEngine(id EngineID, cfg *config) (engine, error) {
	switch id {
	case EngineRedBlack:
		return rbtree.New(), nil
	case EngineDoubleHash:
		h, err := newHashFunc(cfg.hash, cfg.seed)
		if err != nil {
			return nil, err
		}
		t, err := dhash.New(cfg.capacity, h)
		if err != nil {
			return nil, err
		}
		return t, nil
	}
	return nil, fmt.Errorf("%w: engine ID %d", strerrors.ErrUnknownEngine, id)
}
