// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package foreignmem

import (
	"os"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

const heapZeroMemory = 0x00000008 // HEAP_ZERO_MEMORY

var processHeap = sync.OnceValues(getProcessHeap)

func alloc(size uintptr) (unsafe.Pointer, error) {
	heap, err := processHeap()
	if err != nil {
		return nil, os.NewSyscallError("GetProcessHeap", err)
	}

	p, err := heapAlloc(heap, heapZeroMemory, size)
	if err != nil {
		return nil, os.NewSyscallError("HeapAlloc", err)
	}
	return unsafe.Pointer(p), nil
}

func free(p unsafe.Pointer, _ uintptr) error {
	heap, err := processHeap()
	if err != nil {
		return os.NewSyscallError("GetProcessHeap", err)
	}

	if err := heapFree(heap, 0, uintptr(p)); err != nil {
		return os.NewSyscallError("HeapFree", err)
	}
	return nil
}

func mapPage(size uintptr) (unsafe.Pointer, error) {
	base, err := windows.VirtualAlloc(0, size, windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, os.NewSyscallError("VirtualAlloc", err)
	}
	return unsafe.Pointer(base), nil
}

func unmapPage(base unsafe.Pointer, size uintptr) error {
	if err := windows.VirtualFree(uintptr(base), 0, windows.MEM_RELEASE); err != nil {
		return os.NewSyscallError("VirtualFree", err)
	}
	return nil
}

func protectReadOnly(base unsafe.Pointer, size uintptr) error {
	var oldProtect uint32
	if err := windows.VirtualProtect(uintptr(base), size, windows.PAGE_READONLY, &oldProtect); err != nil {
		return os.NewSyscallError("VirtualProtect", err)
	}
	return nil
}
