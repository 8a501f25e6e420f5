// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build softdevice && s140v7

package softdevice

/*
// Add the SoftDevice include path so that #include in adapter_s140v7.c and in
// the cgo preambles of this package resolves against the s140v7 headers.
#cgo CFLAGS: -I${SRCDIR}/s140_nrf52_7.3.0/s140_nrf52_7.3.0_API/include

#include <stdint.h>

// Defined in adapter_s140v7.c; nrf_nvic.h only has the inline versions.
uint32_t sd_nvic_critical_region_enter(uint8_t *p_is_nested_critical_region);
uint32_t sd_nvic_critical_region_exit(uint8_t is_nested_critical_region);
*/
import "C"

// Declared once per variant file; selecting two variants redeclares it.
const variantName = "s140v7"

// EnterCriticalRegion disables the application interrupts the SoftDevice
// does not reserve. nested reports whether the caller was already inside a
// critical region and must be passed back to ExitCriticalRegion.
func EnterCriticalRegion() (nested bool, err error) {
	var isNested C.uint8_t
	if err := makeError(uint32(C.sd_nvic_critical_region_enter(&isNested))); err != nil {
		return false, err
	}
	return isNested != 0, nil
}

// ExitCriticalRegion leaves a critical region entered by EnterCriticalRegion.
func ExitCriticalRegion(nested bool) error {
	var isNested C.uint8_t
	if nested {
		isNested = 1
	}
	return makeError(uint32(C.sd_nvic_critical_region_exit(isNested)))
}
