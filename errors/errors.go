// Package errors defines all exported error sentinels for the strset library.
//
// This is the single source of truth for error values. Both the top-level
// strset package and the internal engine packages import from here,
// ensuring errors.Is checks work across package boundaries.
package errors

import "errors"

// Construction errors
var (
	ErrInvalidMaxLen   = errors.New("strset: maximum string length must be at least 1")
	ErrUnknownEngine   = errors.New("strset: unknown engine")
	ErrUnknownHash     = errors.New("strset: unknown hash function")
	ErrInvalidCapacity = errors.New("strset: initial capacity must be at least 1")
)

// Dictionary errors
var (
	ErrClosed           = errors.New("strset: dictionary is closed")
	ErrCapacityExceeded = errors.New("strset: table cannot grow past the maximum capacity")
)

// Word list errors
var (
	ErrListClosed = errors.New("strset: word list is closed")
)

// Internal errors (reported by engine validation)
var (
	ErrCorruptedTree  = errors.New("strset: red-black invariant violated")
	ErrCorruptedTable = errors.New("strset: hash table invariant violated")
)
