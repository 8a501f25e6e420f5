// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build softdevice && s110v8

package softdevice

/*
// Add the SoftDevice include path so that #include in adapter_s110v8.c and in
// the cgo preambles of this package resolves against the s110v8 headers.
#cgo CFLAGS: -I${SRCDIR}/s110_nrf51_8.0.0/s110_nrf51_8.0.0_API/include
*/
import "C"

// Declared once per variant file; selecting two variants redeclares it.
const variantName = "s110v8"
