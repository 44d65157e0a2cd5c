//go:build windows

package quillcrypto

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// mlock pins data in RAM so key material is not paged to disk.
// It reports whether the lock was taken.
func mlock(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	return windows.VirtualLock(uintptr(unsafe.Pointer(&data[0])), uintptr(len(data))) == nil
}

// munlock releases a region pinned by mlock.
func munlock(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = windows.VirtualUnlock(uintptr(unsafe.Pointer(&data[0])), uintptr(len(data)))
}
