// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build softdevice && s113v7

package softdevice

/*
// Add the SoftDevice include path so that #include in adapter_s113v7.c and in
// the cgo preambles of this package resolves against the s113v7 headers.
#cgo CFLAGS: -I${SRCDIR}/s113_nrf52_7.0.1/s113_nrf52_7.0.1_API/include
*/
import "C"

// Declared once per variant file; selecting two variants redeclares it.
const variantName = "s113v7"
