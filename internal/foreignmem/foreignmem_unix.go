// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build unix

package foreignmem

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Blocks are anonymous mappings of their own. Event objects are few and
// long-lived, so the page-granular waste is acceptable.
func alloc(size uintptr) (unsafe.Pointer, error) {
	return mapPage(roundUp(size, uintptr(os.Getpagesize())))
}

func free(p unsafe.Pointer, size uintptr) error {
	return unmapPage(p, roundUp(size, uintptr(os.Getpagesize())))
}

func mapPage(size uintptr) (unsafe.Pointer, error) {
	b, err := unix.Mmap(-1, 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, os.NewSyscallError("mmap", err)
	}
	return unsafe.Pointer(&b[0]), nil
}

func unmapPage(base unsafe.Pointer, size uintptr) error {
	if err := unix.Munmap(unsafe.Slice((*byte)(base), size)); err != nil {
		return os.NewSyscallError("munmap", err)
	}
	return nil
}

func protectReadOnly(base unsafe.Pointer, size uintptr) error {
	if err := unix.Mprotect(unsafe.Slice((*byte)(base), size), unix.PROT_READ); err != nil {
		return os.NewSyscallError("mprotect", err)
	}
	return nil
}
