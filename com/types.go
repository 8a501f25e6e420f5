// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package com

import (
	"github.com/dblohm7/comshim"
)

// IID is a GUID that represents an interface ID.
type IID comshim.GUID

// String formats iid in registry format.
func (iid *IID) String() string {
	return (*comshim.GUID)(iid).String()
}

// Equal reports whether iid and other identify the same interface.
func (iid *IID) Equal(other *IID) bool {
	return (*comshim.GUID)(iid).Equal((*comshim.GUID)(other))
}

// MustParseIID parses s as an IID and panics if it is malformed.
func MustParseIID(s string) *IID {
	g := comshim.MustParseGUID(s)
	return (*IID)(&g)
}

var (
	IID_IUnknown     = &IID{0x00000000, 0x0000, 0x0000, [8]byte{0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46}}
	IID_IAgileObject = &IID{0x94EA2B94, 0xE9CC, 0x49E0, [8]byte{0xC0, 0xFF, 0xEE, 0x64, 0xCA, 0x8F, 0x5B, 0x90}}
)

// EventRegistrationToken identifies one registration of an event delegate
// with its event source. The event source writes it; the host hands it back
// to unregister.
type EventRegistrationToken int64
