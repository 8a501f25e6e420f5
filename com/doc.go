// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

// Package com lets Go code hand callback objects to a COM-style foreign
// runtime, such as the WinRT event sources.
//
// Every event delegate shares one vtable. It lives on a read-only page
// outside the Go heap and is filled in during package initialization, so
// SharedEventVtblAddress may be called from any goroutine or foreign thread.
// Delegate objects themselves are allocated outside the Go heap too, and stay
// valid until Event.Close is called.
//
// AddRef and Release do not count anything: they report 2 and 1
// respectively, so a foreign caller never concludes that the last reference
// is gone and never tears an object down. The host owns every object's
// lifetime. This is enough for event delegates, which the foreign runtime
// only ever invokes and releases, but it is not a conforming IUnknown; in
// particular QueryInterface answers only for IUnknown, IAgileObject and the
// delegate's own interface.
//
// The runtime parts of the package need purego callbacks and are built on
// windows, darwin and linux for amd64 and arm64.
package com
