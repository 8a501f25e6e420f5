// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

// Package softdevice is the linkage adapter for Nordic SoftDevice binaries.
//
// The SoftDevice headers declare their SVCall wrappers as static (and, in
// newer SDKs, as __STATIC_INLINE) functions. Each adapter_<variant>.c unit
// neutralizes those qualifiers before including the headers so that the
// wrappers are emitted as ordinary externally linked functions that cgo
// code elsewhere in the program can call.
//
// A variant is selected with the softdevice build tag plus exactly one of
// s110v8, s113v7, s132v6, s140v6 or s140v7. Selecting two variants, or none
// while softdevice is set, fails the build. Without the softdevice tag the
// adapter is compiled out and [Enabled] reports false.
//
// The vendor SDK is not part of this module. A softdevice build expects the
// Nordic SoftDevice API trees (for example
// s140_nrf52_7.3.0/s140_nrf52_7.3.0_API/include) to be unpacked into this
// directory, and expects the target toolchain to provide the CMSIS device
// header nrf.h on its include path, as TinyGo does for nRF targets. With
// plain go build and neither of those present, -tags softdevice,s140v7
// fails at the first #include.
//
// The variant rules are also available at run time through the embedded
// manifest ([Variants], [LookupVariant] and [SelectVariant]) so that build
// tooling can check a tag set before invoking the compiler.
package softdevice
