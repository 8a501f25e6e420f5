// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build softdevice

package softdevice

/*
// Declare the SVCall wrappers as plain prototypes; the definitions come from
// the variant's adapter unit.
#define SVCALL_AS_NORMAL_FUNCTION

#include "nrf_sdm.h"
*/
import "C"

// IsSoftDeviceEnabled asks the SoftDevice whether it has been enabled. It is
// the cheapest call that goes through a bridged SVCall wrapper, which makes
// it a useful check that the adapter unit was linked in.
func IsSoftDeviceEnabled() (bool, error) {
	var enabled C.uint8_t
	if err := makeError(uint32(C.sd_softdevice_is_enabled(&enabled))); err != nil {
		return false, err
	}
	return enabled != 0, nil
}
