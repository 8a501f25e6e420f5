// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build softdevice && s140v6

package softdevice

/*
// Add the SoftDevice include path so that #include in adapter_s140v6.c and in
// the cgo preambles of this package resolves against the s140v6 headers.
#cgo CFLAGS: -I${SRCDIR}/s140_nrf52_6.1.1/s140_nrf52_6.1.1_API/include
*/
import "C"

// Declared once per variant file; selecting two variants redeclares it.
const variantName = "s140v6"
