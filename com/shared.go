// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build (windows || darwin || linux) && (amd64 || arm64)

package com

import (
	"fmt"
	"unsafe"

	"github.com/dblohm7/comshim/internal/foreignmem"
	"github.com/ebitengine/purego"
)

// sharedEventVtbl is built during package initialization, which completes
// before main runs and before any importer can start a goroutine, so readers
// need no further synchronization.
var sharedEventVtbl = newSharedEventVtbl()

func newSharedEventVtbl() *EventVtbl {
	page, err := foreignmem.NewPage(unsafe.Sizeof(EventVtbl{}))
	if err != nil {
		panic(fmt.Sprintf("com: mapping event vtable: %v", err))
	}

	vtbl := (*EventVtbl)(page.Pointer())
	*vtbl = EventVtbl{
		QueryInterface: purego.NewCallback(eventQueryInterface),
		AddRef:         purego.NewCallback(eventAddRef),
		Release:        purego.NewCallback(eventRelease),
		Invoke:         purego.NewCallback(eventInvoke),
	}

	if err := page.Seal(); err != nil {
		panic(fmt.Sprintf("com: sealing event vtable: %v", err))
	}
	return vtbl
}

// SharedEventVtbl returns the vtable shared by every event delegate in the
// process. It is read-only; writing through the result faults.
func SharedEventVtbl() *EventVtbl {
	return sharedEventVtbl
}

// SharedEventVtblAddress returns the address of the shared event vtable, to
// be stored as the first word of an event delegate object. It always returns
// the same value.
func SharedEventVtblAddress() uintptr {
	return uintptr(unsafe.Pointer(sharedEventVtbl))
}
