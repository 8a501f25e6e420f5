// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package comshim

import (
	"testing"
)

type hrTestCase struct {
	hr              HRESULT
	expectFacility  hrFacility // only valid when both expectNT and expectCustomer are false
	expectCode      hrCode     // only valid when both expectNT and expectCustomer are false
	expectSucceeded bool
	expectNT        bool
	expectCustomer  bool
}

// TYPE_E_WRONGTYPEKIND, a failure in FACILITY_DISPATCH.
const hrWrongTypeKind = HRESULT(-((0x8002802A ^ 0xFFFFFFFF) + 1))

var hrTestCases = []hrTestCase{
	hrTestCase{S_OK, 0, 0, true, false, false},
	hrTestCase{S_FALSE, 0, 1, true, false, false},
	hrTestCase{hrWrongTypeKind, 2, 0x802A, false, false, false},
	hrTestCase{E_NOINTERFACE, 0, 0x4002, false, false, false},
	hrTestCase{E_OUTOFMEMORY, 7, 0x000E, false, false, false},
	hrTestCase{HRESULT(-((0xC0000022 ^ 0xFFFFFFFF) + 1)) | hrFacilityNTBit, 0, 0, false, true, false},
	hrTestCase{hrFromUint32((hrCustomerBit + 1) | hrFailBit), 0, 0, false, false, true},
	hrTestCase{hrFromUint32((hrCustomerBit + 1) | hrFailBit | hrFacilityNTBit), 0, 0, false, false, true},
}

func TestHRESULT(t *testing.T) {
	for _, tc := range hrTestCases {
		hr := tc.hr
		if hr.Succeeded() != tc.expectSucceeded {
			t.Errorf("hr 0x%08X Succeeded() got %v, want %v", uint32(hr), hr.Succeeded(), tc.expectSucceeded)
		}
		if hr.Failed() == tc.expectSucceeded {
			t.Errorf("hr 0x%08X Failed() got %v, want %v", uint32(hr), hr.Failed(), !tc.expectSucceeded)
		}
		if hr.isNT() != tc.expectNT {
			t.Errorf("hr 0x%08X isNT() got %v, want %v", uint32(hr), hr.isNT(), tc.expectNT)
		}
		if hr.isCustomer() != tc.expectCustomer {
			t.Errorf("hr 0x%08X isCustomer() got %v, want %v", uint32(hr), hr.isCustomer(), tc.expectCustomer)
		}
		if !hr.isNT() && !hr.isCustomer() {
			if hr.facility() != tc.expectFacility {
				t.Errorf("hr 0x%08X facility() got %v, want %v", uint32(hr), hr.facility(), tc.expectFacility)
			}
			if hr.code() != tc.expectCode {
				t.Errorf("hr 0x%08X code() got %v, want %v", uint32(hr), hr.code(), tc.expectCode)
			}
		}
	}
}

type errorTestCase struct {
	code             any
	expectNewErrorOK bool
	expectHRESULT    bool
	expectErrno      bool
	expectNTStatus   bool
}

var errorTestCases = []errorTestCase{
	errorTestCase{int64(0), false, false, false, false},
	errorTestCase{S_OK, true, true, true, true},
	errorTestCase{E_POINTER, true, true, false, false},
	errorTestCase{E_NOTIMPL, true, true, true, false},
	errorTestCase{E_OUTOFMEMORY, true, true, true, false},
	errorTestCase{Error(E_UNEXPECTED), true, true, true, false},
}

func TestNewError(t *testing.T) {
	runNewErrorCases(t, errorTestCases)
}

func runNewErrorCases(t *testing.T, cases []errorTestCase) {
	for _, tc := range cases {
		err, ok := NewError(tc.code)
		if ok != tc.expectNewErrorOK {
			t.Errorf("NewError(%#v) ok got %v, want %v", tc.code, ok, tc.expectNewErrorOK)
		}
		if !ok {
			continue
		}
		if tc.expectHRESULT != err.IsAvailableAsHRESULT() {
			t.Errorf("NewError(%#v) HRESULT got %v, want %v", tc.code, err.IsAvailableAsHRESULT(), tc.expectHRESULT)
		}
		if tc.expectErrno != err.IsAvailableAsErrno() {
			t.Errorf("NewError(%#v) Errno got %v, want %v", tc.code, err.IsAvailableAsErrno(), tc.expectErrno)
		}
		if tc.expectNTStatus != err.IsAvailableAsNTStatus() {
			t.Errorf("NewError(%#v) NTStatus got %v, want %v", tc.code, err.IsAvailableAsNTStatus(), tc.expectNTStatus)
		}
	}
}

func TestErrorFromUintptr(t *testing.T) {
	// Only the low 32 bits of a raw call result carry the HRESULT.
	rc := E_NOINTERFACE.Uintptr()
	if got := ErrorFromUintptr(rc); got.AsHRESULT() != E_NOINTERFACE {
		t.Errorf("ErrorFromUintptr(0x%X) got 0x%08X, want 0x%08X", rc, uint32(got.AsHRESULT()), uint32(E_NOINTERFACE.Uintptr()))
	}
	if got := ErrorFromUintptr(2); !got.Succeeded() {
		t.Errorf("ErrorFromUintptr(2) reports failure")
	}
}

func TestHRFromErrno(t *testing.T) {
	const errorAccessDenied = 5
	hr := hrFromErrno(errorAccessDenied)
	if uint32(hr) != 0x80070005 {
		t.Errorf("hrFromErrno(5) got 0x%08X, want 0x80070005", uint32(hr))
	}
	if got := Error(hr).errnoCode(); got != errorAccessDenied {
		t.Errorf("errnoCode() got %d, want %d", got, errorAccessDenied)
	}
	if hrFromErrno(0) != S_OK {
		t.Errorf("hrFromErrno(0) is not S_OK")
	}
	if hrFromNTStatus(0) != S_OK {
		t.Errorf("hrFromNTStatus(0) is not S_OK")
	}
}
