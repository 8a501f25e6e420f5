// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package comshim

import (
	"testing"

	"golang.org/x/sys/windows"
)

var windowsErrorTestCases = []errorTestCase{
	errorTestCase{windows.STATUS_ACCESS_DENIED, true, true, true, true},
	errorTestCase{windows.ERROR_ACCESS_DENIED, true, true, true, false},
}

func TestNewErrorWindows(t *testing.T) {
	runNewErrorCases(t, windowsErrorTestCases)

	err, _ := NewError(windows.ERROR_ACCESS_DENIED)
	if err.AsErrno() != windows.ERROR_ACCESS_DENIED {
		t.Errorf("AsErrno() got %v, want %v", err.AsErrno(), windows.ERROR_ACCESS_DENIED)
	}

	err, _ = NewError(windows.STATUS_ACCESS_DENIED)
	if err.AsNTStatus() != windows.STATUS_ACCESS_DENIED {
		t.Errorf("AsNTStatus() got %v, want %v", err.AsNTStatus(), windows.STATUS_ACCESS_DENIED)
	}
}
