package strset

import (
	"fmt"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"

	strerrors "github.com/tamirms/strset/errors"
	"github.com/tamirms/strset/internal/dhash"
)

// HashID identifies the primary hash h1 used by the double-hash engine.
// The probe step h2 is fixed regardless of this choice.
type HashID uint8

const (
	// HashDJB2 is the multiplicative hash hash*33 + byte.
	HashDJB2 HashID = iota

	// HashXXH3 is 64-bit xxHash3 (github.com/zeebo/xxh3).
	HashXXH3

	// HashXXHash is 64-bit xxHash (github.com/cespare/xxhash/v2).
	HashXXHash

	// HashMurmur3 is 64-bit MurmurHash3 (github.com/spaolacci/murmur3).
	HashMurmur3
)

// String returns the hash name.
func (h HashID) String() string {
	switch h {
	case HashDJB2:
		return "djb2"
	case HashXXH3:
		return "xxh3"
	case HashXXHash:
		return "xxhash"
	case HashMurmur3:
		return "murmur3"
	default:
		return "unknown"
	}
}

// newHashFunc returns the seeded primary hash for id.
//
// The xxhash digest is reused across calls, so the returned function
// inherits the single-goroutine restriction of the table it serves.
func newHashFunc(id HashID, seed uint64) (dhash.HashFunc, error) {
	switch id {
	case HashDJB2:
		return dhash.DJB2(seed), nil
	case HashXXH3:
		return func(s string) uint64 {
			return xxh3.HashStringSeed(s, seed)
		}, nil
	case HashXXHash:
		d := xxhash.NewWithSeed(seed)
		return func(s string) uint64 {
			d.ResetWithSeed(seed)
			_, _ = d.WriteString(s) // Digest.WriteString never fails
			return d.Sum64()
		}, nil
	case HashMurmur3:
		return func(s string) uint64 {
			return murmur3.Sum64WithSeed(stringBytes(s), uint32(seed))
		}, nil
	}
	return nil, fmt.Errorf("%w: hash ID %d", strerrors.ErrUnknownHash, id)
}

// stringBytes returns the bytes of s without copying. The result must not
// be modified.
func stringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
