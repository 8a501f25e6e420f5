// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

// Package comshim contains the error and identity types shared by the
// foreign-object shim packages.
package comshim

import (
	"fmt"
)

// HRESULT is the status code returned across every COM-style boundary.
type HRESULT int32

type hrFacility uint16
type hrCode uint16

const (
	hrFailBit       = 0x80000000
	hrCustomerBit   = 0x20000000
	hrFacilityNTBit = 0x10000000
	hrFacilityMask  = 0x1FFF
	hrCodeMask      = 0xFFFF

	hrFacilityWin32 = hrFacility(7)
)

const (
	S_OK    = HRESULT(0)
	S_FALSE = HRESULT(1)

	E_NOTIMPL     = HRESULT(-((0x80004001 ^ 0xFFFFFFFF) + 1))
	E_NOINTERFACE = HRESULT(-((0x80004002 ^ 0xFFFFFFFF) + 1))
	E_POINTER     = HRESULT(-((0x80004003 ^ 0xFFFFFFFF) + 1))
	E_FAIL        = HRESULT(-((0x80004005 ^ 0xFFFFFFFF) + 1))
	E_UNEXPECTED  = HRESULT(-((0x8000FFFF ^ 0xFFFFFFFF) + 1))
	E_OUTOFMEMORY = HRESULT(-((0x8007000E ^ 0xFFFFFFFF) + 1))
	E_INVALIDARG  = HRESULT(-((0x80070057 ^ 0xFFFFFFFF) + 1))
)

// Well-known HRESULTs that have a Win32 error code equivalent even though
// their facility is not FACILITY_WIN32.
var hrErrnoEquivalents = map[HRESULT]uint32{
	S_OK:         0,  // ERROR_SUCCESS
	E_NOTIMPL:    50, // ERROR_NOT_SUPPORTED
	E_UNEXPECTED: 59, // ERROR_UNEXP_NET_ERR
	E_FAIL:       31, // ERROR_GEN_FAILURE
}

func hrFromUint32(u uint32) HRESULT {
	return HRESULT(int32(u))
}

// Succeeded returns true when hr indicates success.
func (hr HRESULT) Succeeded() bool {
	return hr >= 0
}

// Failed returns true when hr indicates failure.
func (hr HRESULT) Failed() bool {
	return hr < 0
}

// Uintptr returns hr as the raw return value of a foreign call.
func (hr HRESULT) Uintptr() uintptr {
	return uintptr(uint32(hr))
}

func (hr HRESULT) isCustomer() bool {
	return uint32(hr)&hrCustomerBit != 0
}

// isNT returns true when hr wraps an NTSTATUS. Customer codes may set the
// same bit without meaning it.
func (hr HRESULT) isNT() bool {
	return !hr.isCustomer() && uint32(hr)&hrFacilityNTBit != 0
}

func (hr HRESULT) facility() hrFacility {
	return hrFacility((uint32(hr) >> 16) & hrFacilityMask)
}

func (hr HRESULT) code() hrCode {
	return hrCode(uint32(hr) & hrCodeMask)
}

// Error is an error value that is always representable as an HRESULT.
type Error HRESULT

// ErrorFromHRESULT wraps hr as an Error. hr may indicate success.
func ErrorFromHRESULT(hr HRESULT) Error {
	return Error(hr)
}

// ErrorFromUintptr wraps the low 32 bits of a raw call result, which is how
// HRESULTs come back from purego.SyscallN.
func ErrorFromUintptr(rc uintptr) Error {
	return Error(hrFromUint32(uint32(rc)))
}

// NewError converts code into an Error. code may be an HRESULT, an Error, or
// one of the platform error types (syscall.Errno, windows.NTStatus on
// Windows). The second result is false when code has an unsupported type.
func NewError(code any) (Error, bool) {
	switch v := code.(type) {
	case HRESULT:
		return Error(v), true
	case Error:
		return v, true
	default:
		return newPlatformError(code)
	}
}

func (e Error) Error() string {
	hr := HRESULT(e)
	if s, ok := platformMessage(hr); ok {
		return s
	}
	return fmt.Sprintf("HRESULT 0x%08X", uint32(hr))
}

// AsHRESULT returns e as an HRESULT.
func (e Error) AsHRESULT() HRESULT {
	return HRESULT(e)
}

// Succeeded returns true when e does not indicate a failure.
func (e Error) Succeeded() bool {
	return HRESULT(e).Succeeded()
}

// Failed returns true when e indicates a failure.
func (e Error) Failed() bool {
	return HRESULT(e).Failed()
}

// IsAvailableAsHRESULT is always true; it exists for symmetry with the other
// IsAvailableAs* methods.
func (e Error) IsAvailableAsHRESULT() bool {
	return true
}

// IsAvailableAsErrno returns true when e has a Win32 error code equivalent.
func (e Error) IsAvailableAsErrno() bool {
	hr := HRESULT(e)
	if _, ok := hrErrnoEquivalents[hr]; ok {
		return true
	}
	if hr.isCustomer() {
		return false
	}
	if hr.isNT() {
		return ntStatusHasErrno(uint32(hr) &^ hrFacilityNTBit)
	}
	return hr.Failed() && hr.facility() == hrFacilityWin32
}

// IsAvailableAsNTStatus returns true when e has an NTSTATUS equivalent.
func (e Error) IsAvailableAsNTStatus() bool {
	hr := HRESULT(e)
	return hr == S_OK || hr.isNT()
}

// errnoCode returns the Win32 error code equivalent of e. It is only
// meaningful when IsAvailableAsErrno returns true.
func (e Error) errnoCode() uint32 {
	hr := HRESULT(e)
	if v, ok := hrErrnoEquivalents[hr]; ok {
		return v
	}
	if hr.isNT() {
		return ntStatusToErrno(uint32(hr) &^ hrFacilityNTBit)
	}
	return uint32(hr.code())
}

// hrFromErrno is HRESULT_FROM_WIN32.
func hrFromErrno(errno uint32) HRESULT {
	if int32(errno) <= 0 {
		return hrFromUint32(errno)
	}
	return hrFromUint32((errno & hrCodeMask) | (uint32(hrFacilityWin32) << 16) | hrFailBit)
}

// hrFromNTStatus is HRESULT_FROM_NT.
func hrFromNTStatus(status uint32) HRESULT {
	if status == 0 {
		return S_OK
	}
	return hrFromUint32(status | hrFacilityNTBit)
}
