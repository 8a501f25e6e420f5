// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build softdevice && s132v6

package softdevice

/*
// Add the SoftDevice include path so that #include in adapter_s132v6.c and in
// the cgo preambles of this package resolves against the s132v6 headers.
#cgo CFLAGS: -I${SRCDIR}/s132_nrf52_6.1.1/s132_nrf52_6.1.1_API/include
*/
import "C"

// Declared once per variant file; selecting two variants redeclares it.
const variantName = "s132v6"
