// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build softdevice && !s110v8 && !s113v7 && !s132v6 && !s140v6 && !s140v7

package softdevice

// The softdevice tag is set but no variant tag is. Refuse to build rather
// than silently linking without a SoftDevice.
const variantName = selectExactlyOneSoftDeviceVariantTag
