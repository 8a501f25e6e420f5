// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build !windows

package comshim

func newPlatformError(code any) (Error, bool) {
	return Error(E_UNEXPECTED), false
}

// Without the native lookup table only the success status maps cleanly.
func ntStatusToErrno(status uint32) uint32 {
	return 0
}

func ntStatusHasErrno(status uint32) bool {
	return status == 0
}

func platformMessage(hr HRESULT) (string, bool) {
	return "", false
}
