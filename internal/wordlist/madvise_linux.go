//go:build linux

package wordlist

import "golang.org/x/sys/unix"

// adviseSequential hints to the kernel that the mapping will be read front
// to back, enabling aggressive read-ahead.
// Best-effort: errors are silently ignored.
func adviseSequential(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)
}
