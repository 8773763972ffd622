//go:build linux

package core

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// setOSThreadName names the current OS thread via prctl. Linux caps
// thread names at 15 bytes plus NUL.
func setOSThreadName(name string) {
	if len(name) > 15 {
		name = name[:15]
	}
	p, err := unix.BytePtrFromString(name)
	if err != nil {
		return
	}
	_ = unix.Prctl(unix.PR_SET_NAME, uintptr(unsafe.Pointer(p)), 0, 0, 0)
}
