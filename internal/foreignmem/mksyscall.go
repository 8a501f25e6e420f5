// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package foreignmem

//go:generate go run golang.org/x/sys/windows/mkwinsyscall -output zsyscall_windows.go mksyscall.go
//go:generate go run golang.org/x/tools/cmd/goimports -w zsyscall_windows.go

//sys getProcessHeap() (heap windows.Handle, err error) [failretval==0] = kernel32.GetProcessHeap
//sys heapAlloc(heap windows.Handle, flags uint32, size uintptr) (p uintptr, err error) [failretval==0] = kernel32.HeapAlloc
//sys heapFree(heap windows.Handle, flags uint32, mem uintptr) (err error) [int32(failretval)==0] = kernel32.HeapFree
