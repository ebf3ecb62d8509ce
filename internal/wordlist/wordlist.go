// Package wordlist reads newline-separated word files by memory-mapping them.
package wordlist

import (
	"bytes"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/edsrzf/mmap-go"

	strerrors "github.com/tamirms/strset/errors"
)

// List is a read-only view of a word file. Words are the non-empty lines of
// the file; a trailing '\r' is stripped.
//
// A List is NOT safe for concurrent use with Close.
type List struct {
	mmap   mmap.MMap // nil for empty files and OpenBytes
	data   []byte
	closed bool
}

// Open memory-maps the word file at path. The file descriptor is closed
// before Open returns.
func Open(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	return OpenFile(f)
}

// OpenFile memory-maps f. The caller is responsible for closing f, which may
// happen as soon as OpenFile returns.
func OpenFile(f *os.File) (*List, error) {
	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat word list: %w", err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("open word list: %s is a directory", f.Name())
	}
	// Zero-length mappings are rejected by mmap(2).
	if stat.Size() == 0 {
		return &List{}, nil
	}

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap word list: %w", err)
	}
	adviseSequential(mm)
	return &List{mmap: mm, data: []byte(mm)}, nil
}

// OpenBytes wraps an in-memory word list. Close is a no-op apart from
// invalidating the List. The caller must not modify data while it is in use.
func OpenBytes(data []byte) *List {
	return &List{data: data}
}

// Each calls fn for every word in file order, stopping at the first error.
// The slice passed to fn aliases the mapping and is only valid during the call.
func (l *List) Each(fn func(word []byte) error) error {
	if l.closed {
		return strerrors.ErrListClosed
	}
	data := l.data
	for len(data) > 0 {
		var line []byte
		line, data, _ = bytes.Cut(data, []byte{'\n'})
		line = bytes.TrimSuffix(line, []byte{'\r'})
		if len(line) == 0 {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of words.
func (l *List) Len() (int, error) {
	n := 0
	err := l.Each(func([]byte) error {
		n++
		return nil
	})
	return n, err
}

// Size returns the size of the underlying data in bytes.
func (l *List) Size() int {
	return len(l.data)
}

// Checksum returns the xxHash64 of the raw file contents.
func (l *List) Checksum() (uint64, error) {
	if l.closed {
		return 0, strerrors.ErrListClosed
	}
	return xxhash.Sum64(l.data), nil
}

// Close unmaps the file. Calling Close more than once returns nil.
func (l *List) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true
	l.data = nil
	if l.mmap != nil {
		mm := l.mmap
		l.mmap = nil
		return mm.Unmap()
	}
	return nil
}
