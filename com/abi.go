// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build (windows || darwin || linux) && (amd64 || arm64)

package com

import (
	"unsafe"

	"github.com/dblohm7/comshim"
	"github.com/ebitengine/purego"
)

// These methods call through an object's vtable exactly as a foreign caller
// would: load the vtable pointer from the object's first word, index the
// slot, and call it with the object pointer as the first argument.

func (abi *IUnknownABI) QueryInterface(iid *IID) (result *IUnknownABI, _ error) {
	method := unsafe.Slice(abi.Vtbl, 3)[slotQueryInterface]

	rc, _, _ := purego.SyscallN(
		method,
		uintptr(unsafe.Pointer(abi)),
		uintptr(unsafe.Pointer(iid)),
		uintptr(unsafe.Pointer(&result)),
	)
	if e := comshim.ErrorFromUintptr(rc); e.Failed() {
		return nil, e
	}

	return result, nil
}

func (abi *IUnknownABI) AddRef() uint32 {
	method := unsafe.Slice(abi.Vtbl, 3)[slotAddRef]

	rc, _, _ := purego.SyscallN(
		method,
		uintptr(unsafe.Pointer(abi)),
	)
	return uint32(rc)
}

func (abi *IUnknownABI) Release() uint32 {
	method := unsafe.Slice(abi.Vtbl, 3)[slotRelease]

	rc, _, _ := purego.SyscallN(
		method,
		uintptr(unsafe.Pointer(abi)),
	)
	return uint32(rc)
}

func (abi *EventABI) Invoke(sender, args uintptr) error {
	method := unsafe.Slice(abi.Vtbl, eventVtblSlots)[slotInvoke]

	rc, _, _ := purego.SyscallN(
		method,
		uintptr(unsafe.Pointer(abi)),
		sender,
		args,
	)
	if e := comshim.ErrorFromUintptr(rc); e.Failed() {
		return e
	}

	return nil
}
