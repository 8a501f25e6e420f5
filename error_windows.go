// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package comshim

import (
	"syscall"

	"golang.org/x/sys/windows"
)

func newPlatformError(code any) (Error, bool) {
	switch v := code.(type) {
	case syscall.Errno:
		return Error(hrFromErrno(uint32(v))), true
	case windows.NTStatus:
		return Error(hrFromNTStatus(uint32(v))), true
	default:
		return Error(E_UNEXPECTED), false
	}
}

func ntStatusToErrno(status uint32) uint32 {
	return uint32(windows.RtlNtStatusToDosError(windows.NTStatus(status)))
}

// RtlNtStatusToDosError returns this for statuses it cannot map.
const errorMRMidNotFound = 317 // ERROR_MR_MID_NOT_FOUND

func ntStatusHasErrno(status uint32) bool {
	return ntStatusToErrno(status) != errorMRMidNotFound
}

func platformMessage(hr HRESULT) (string, bool) {
	e := Error(hr)
	if hr == S_OK || !e.IsAvailableAsErrno() {
		return "", false
	}
	return syscall.Errno(e.errnoCode()).Error(), true
}

// AsErrno returns e as a syscall.Errno. Check IsAvailableAsErrno first; the
// result is meaningless otherwise.
func (e Error) AsErrno() syscall.Errno {
	return syscall.Errno(e.errnoCode())
}

// AsNTStatus returns e as a windows.NTStatus. Check IsAvailableAsNTStatus
// first; the result is meaningless otherwise.
func (e Error) AsNTStatus() windows.NTStatus {
	hr := HRESULT(e)
	if hr == S_OK {
		return windows.STATUS_SUCCESS
	}
	return windows.NTStatus(uint32(hr) &^ hrFacilityNTBit)
}
