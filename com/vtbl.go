// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package com

import (
	"unsafe"
)

// EventVtbl is the virtual function table of an event delegate: the three
// IUnknown methods followed by Invoke. Foreign callers index it by slot, so
// the field order and the absence of padding are part of the ABI.
type EventVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
	Invoke         uintptr
}

const (
	ptrSize = unsafe.Sizeof(uintptr(0))

	eventVtblSlots = 4

	slotQueryInterface = 0
	slotAddRef         = 1
	slotRelease        = 2
	slotInvoke         = 3
)

// Compile-time layout checks. Each pair of array types has a negative
// length, which does not compile, unless both sides are equal.
var (
	_ [unsafe.Sizeof(EventVtbl{}) - eventVtblSlots*ptrSize]struct{}
	_ [eventVtblSlots*ptrSize - unsafe.Sizeof(EventVtbl{})]struct{}

	_ [unsafe.Alignof(EventVtbl{}) - unsafe.Alignof(uintptr(0))]struct{}
	_ [unsafe.Alignof(uintptr(0)) - unsafe.Alignof(EventVtbl{})]struct{}

	_ [unsafe.Offsetof(EventVtbl{}.QueryInterface) - slotQueryInterface*ptrSize]struct{}
	_ [slotQueryInterface*ptrSize - unsafe.Offsetof(EventVtbl{}.QueryInterface)]struct{}

	_ [unsafe.Offsetof(EventVtbl{}.AddRef) - slotAddRef*ptrSize]struct{}
	_ [slotAddRef*ptrSize - unsafe.Offsetof(EventVtbl{}.AddRef)]struct{}

	_ [unsafe.Offsetof(EventVtbl{}.Release) - slotRelease*ptrSize]struct{}
	_ [slotRelease*ptrSize - unsafe.Offsetof(EventVtbl{}.Release)]struct{}

	_ [unsafe.Offsetof(EventVtbl{}.Invoke) - slotInvoke*ptrSize]struct{}
	_ [slotInvoke*ptrSize - unsafe.Offsetof(EventVtbl{}.Invoke)]struct{}
)

// slots returns the table as an indexable slice, the way a foreign caller
// sees it.
func (v *EventVtbl) slots() []uintptr {
	return unsafe.Slice((*uintptr)(unsafe.Pointer(v)), eventVtblSlots)
}
