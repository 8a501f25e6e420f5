// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package com

import (
	"unsafe"
)

// IUnknownABI is the ABI view of any COM-style object: a pointer to its
// vtable, which begins with QueryInterface, AddRef and Release.
type IUnknownABI struct {
	Vtbl *uintptr
}

// EventABI is the ABI view of an event delegate, whose vtable is an
// EventVtbl.
type EventABI struct {
	IUnknownABI
}

// eventObject is the layout of an event delegate in foreign memory. vtbl
// must stay the first word: foreign callers dereference the object pointer to
// find the vtable. The rest is host state that Invoke and QueryInterface
// consume. Nothing in here is a Go pointer.
type eventObject struct {
	vtbl   uintptr
	handle uintptr
	iid    IID
	token  EventRegistrationToken
}

var (
	_ [0 - unsafe.Offsetof(eventObject{}.vtbl)]struct{}
	_ [unsafe.Sizeof(eventObject{}) - unsafe.Sizeof(EventABI{})]struct{}
)

func eventObjectFromABI(this uintptr) *eventObject {
	return (*eventObject)(unsafe.Pointer(this))
}
