//go:build !windows

package quillcrypto

import (
	"golang.org/x/sys/unix"
)

// mlock pins data in RAM so key material is not paged to disk.
// It reports whether the lock was taken.
func mlock(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	return unix.Mlock(data) == nil
}

// munlock releases a region pinned by mlock.
func munlock(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = unix.Munlock(data)
}
