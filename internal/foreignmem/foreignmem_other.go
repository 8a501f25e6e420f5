// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build !unix && !windows

package foreignmem

import (
	"errors"
	"unsafe"
)

func alloc(size uintptr) (unsafe.Pointer, error) {
	return nil, errors.ErrUnsupported
}

func free(p unsafe.Pointer, size uintptr) error {
	return errors.ErrUnsupported
}

func mapPage(size uintptr) (unsafe.Pointer, error) {
	return nil, errors.ErrUnsupported
}

func unmapPage(base unsafe.Pointer, size uintptr) error {
	return errors.ErrUnsupported
}

func protectReadOnly(base unsafe.Pointer, size uintptr) error {
	return errors.ErrUnsupported
}
