// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package softdevice

// FeatureTag is the build tag that turns the linkage adapter on.
const FeatureTag = "softdevice"

// Variant returns the name of the SoftDevice variant compiled into this
// binary, or the empty string when the adapter is disabled.
func Variant() string {
	return variantName
}

// Enabled reports whether a SoftDevice variant is compiled into this binary.
func Enabled() bool {
	return variantName != ""
}
