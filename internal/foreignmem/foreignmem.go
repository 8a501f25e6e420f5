// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

// Package foreignmem allocates memory that the Go garbage collector neither
// scans nor moves. Foreign code may keep pointers into it after the call
// that received them has returned.
package foreignmem

import (
	"errors"
	"os"
	"sync"
	"unsafe"
)

var (
	ErrZeroSize     = errors.New("foreignmem: zero-sized allocation")
	ErrNotAllocated = errors.New("foreignmem: pointer was not allocated by this package")
	ErrClosed       = errors.New("foreignmem: page already closed")
)

// blocks maps the base address of every live Alloc block to its size.
var (
	blocksMu sync.Mutex
	blocks   = map[uintptr]uintptr{}
)

// Alloc returns size bytes of zeroed foreign memory. The caller owns the
// memory until it passes it to Free.
func Alloc(size uintptr) (unsafe.Pointer, error) {
	if size == 0 {
		return nil, ErrZeroSize
	}

	p, err := alloc(size)
	if err != nil {
		return nil, err
	}

	blocksMu.Lock()
	blocks[uintptr(p)] = size
	blocksMu.Unlock()
	return p, nil
}

// Free releases memory obtained from Alloc. Freeing nil is a no-op.
func Free(p unsafe.Pointer) error {
	if p == nil {
		return nil
	}

	blocksMu.Lock()
	size, ok := blocks[uintptr(p)]
	delete(blocks, uintptr(p))
	blocksMu.Unlock()

	if !ok {
		return ErrNotAllocated
	}
	return free(p, size)
}

// Live returns the number of Alloc blocks that have not been freed.
func Live() int {
	blocksMu.Lock()
	defer blocksMu.Unlock()
	return len(blocks)
}

// Page is a page-granular mapping whose protection can be lowered to
// read-only once its contents are final.
type Page struct {
	base   unsafe.Pointer
	size   uintptr
	sealed bool
}

// NewPage maps at least size bytes of zeroed, writable memory. The size is
// rounded up to a whole number of pages.
func NewPage(size uintptr) (*Page, error) {
	if size == 0 {
		return nil, ErrZeroSize
	}

	size = roundUp(size, uintptr(os.Getpagesize()))
	base, err := mapPage(size)
	if err != nil {
		return nil, err
	}

	return &Page{base: base, size: size}, nil
}

// Pointer returns the start of the mapping.
func (p *Page) Pointer() unsafe.Pointer {
	return p.base
}

// Size returns the length of the mapping in bytes.
func (p *Page) Size() uintptr {
	return p.size
}

// Sealed reports whether Seal has succeeded.
func (p *Page) Sealed() bool {
	return p.sealed
}

// Seal makes the mapping read-only. Any later write faults.
func (p *Page) Seal() error {
	if p.base == nil {
		return ErrClosed
	}
	if p.sealed {
		return nil
	}
	if err := protectReadOnly(p.base, p.size); err != nil {
		return err
	}
	p.sealed = true
	return nil
}

// Close unmaps the page. Pointers into it become invalid.
func (p *Page) Close() error {
	if p.base == nil {
		return ErrClosed
	}
	err := unmapPage(p.base, p.size)
	p.base = nil
	return err
}

func roundUp(v, align uintptr) uintptr {
	return (v + align - 1) &^ (align - 1)
}
