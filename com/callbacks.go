// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build (windows || darwin || linux) && (amd64 || arm64)

package com

import (
	"unsafe"

	"github.com/dblohm7/comshim"
	"go.uber.org/zap"
)

// The functions in this file become the slots of the shared EventVtbl. They
// are reached from foreign threads, take the object pointer first, and
// return a pointer-sized integer.
//
// See https://learn.microsoft.com/en-us/windows/win32/api/unknwn/nn-unknwn-iunknown
// for the contract they only partially honor.

// eventAddRef reports that a reference exists beyond the caller's.
func eventAddRef(this uintptr) uintptr {
	return 2
}

// eventRelease pretends one reference is left, so the caller never destroys
// the object. Release's return value is documented as being for test
// purposes only, and event sources do not act on it.
func eventRelease(this uintptr) uintptr {
	return 1
}

// eventQueryInterface answers for IUnknown, IAgileObject and the delegate's
// own interface by returning the object itself. Because AddRef is a no-op
// it does not bother calling it.
func eventQueryInterface(this, riid, ppv uintptr) uintptr {
	if ppv == 0 {
		return comshim.E_POINTER.Uintptr()
	}
	out := (*uintptr)(unsafe.Pointer(ppv))

	if this == 0 || riid == 0 {
		*out = 0
		return comshim.E_POINTER.Uintptr()
	}

	obj := eventObjectFromABI(this)
	iid := (*IID)(unsafe.Pointer(riid))
	if iid.Equal(IID_IUnknown) || iid.Equal(IID_IAgileObject) || iid.Equal(&obj.iid) {
		*out = this
		return comshim.S_OK.Uintptr()
	}

	Logger().Debug("QueryInterface for unsupported interface",
		zap.Stringer("iid", iid),
		zap.Stringer("delegate", &obj.iid))
	*out = 0
	return comshim.E_NOINTERFACE.Uintptr()
}

// eventInvoke dispatches to the Go handler registered for this object.
func eventInvoke(this, sender, args uintptr) uintptr {
	if this == 0 {
		return comshim.E_POINTER.Uintptr()
	}

	obj := eventObjectFromABI(this)
	ev := events.lookup(obj.handle)
	if ev == nil {
		Logger().Error("Invoke on unregistered event delegate",
			zap.Uintptr("object", this),
			zap.Uintptr("handle", obj.handle))
		return comshim.E_UNEXPECTED.Uintptr()
	}

	return ev.dispatch(sender, args).Uintptr()
}
