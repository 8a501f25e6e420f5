// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build (windows || darwin || linux) && (amd64 || arm64)

package com

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/dblohm7/comshim"
	"github.com/dblohm7/comshim/internal/foreignmem"
	"go.uber.org/zap"
)

var (
	ErrNilIID     = errors.New("com: event delegate needs an interface ID")
	ErrNilHandler = errors.New("com: event delegate needs a handler")
)

// EventHandler is called when the foreign runtime invokes an event delegate.
// sender and args are the raw interface pointers the runtime passed; they are
// only valid for the duration of the call unless the handler AddRefs them.
// A returned comshim.Error is handed back to the runtime as its HRESULT; any
// other non-nil error becomes E_FAIL.
type EventHandler func(ev *Event, sender, args uintptr) error

// Event is an event delegate: a COM-style object, allocated outside the Go
// heap, whose vtable is the shared EventVtbl and whose Invoke calls a Go
// handler.
//
// The foreign runtime never frees an Event (see the package documentation),
// so the creator must call Close once the delegate can no longer be invoked,
// typically after unregistering it from its event source.
type Event struct {
	handle  uintptr
	iid     IID
	handler EventHandler

	mu  sync.RWMutex
	obj *eventObject // nil after Close
	// token is the registration token as it was when Close ran.
	token EventRegistrationToken

	closeOnce sync.Once
	closeErr  error
}

// NewEvent allocates an event delegate that answers to iid and calls handler
// when invoked.
func NewEvent(iid *IID, handler EventHandler) (*Event, error) {
	if iid == nil {
		return nil, ErrNilIID
	}
	if handler == nil {
		return nil, ErrNilHandler
	}

	p, err := foreignmem.Alloc(unsafe.Sizeof(eventObject{}))
	if err != nil {
		return nil, fmt.Errorf("com: allocating event delegate: %w", err)
	}

	ev := &Event{obj: (*eventObject)(p), iid: *iid, handler: handler}
	ev.handle = events.register(ev)

	ev.obj.vtbl = SharedEventVtblAddress()
	ev.obj.handle = ev.handle
	ev.obj.iid = *iid

	Logger().Debug("created event delegate",
		zap.Stringer("iid", iid),
		zap.Uintptr("object", ev.Addr()))
	return ev, nil
}

// IID returns the interface the delegate implements.
func (ev *Event) IID() *IID {
	return &ev.iid
}

// ABI returns the delegate as foreign callers see it. It is nil after Close.
func (ev *Event) ABI() *EventABI {
	ev.mu.RLock()
	defer ev.mu.RUnlock()
	return (*EventABI)(unsafe.Pointer(ev.obj))
}

// Addr returns the object pointer to pass to an event registration call.
// It is 0 after Close.
func (ev *Event) Addr() uintptr {
	ev.mu.RLock()
	defer ev.mu.RUnlock()
	return uintptr(unsafe.Pointer(ev.obj))
}

// TokenAddr returns where the event source should write the registration
// token. It points into foreign memory, so it stays valid after the
// registration call returns. It is 0 after Close.
func (ev *Event) TokenAddr() uintptr {
	ev.mu.RLock()
	defer ev.mu.RUnlock()
	if ev.obj == nil {
		return 0
	}
	return uintptr(unsafe.Pointer(&ev.obj.token))
}

// Token returns the registration token written by the event source. After
// Close it returns the token the delegate held when it was closed, which is
// what an unregistration call needs.
func (ev *Event) Token() EventRegistrationToken {
	ev.mu.RLock()
	defer ev.mu.RUnlock()
	if ev.obj == nil {
		return ev.token
	}
	return ev.obj.token
}

// Close unregisters the handler and frees the delegate's foreign memory.
// Only call it once the foreign runtime will no longer invoke the delegate.
// Calling Close more than once returns the first result.
func (ev *Event) Close() error {
	ev.closeOnce.Do(func() {
		events.unregister(ev.handle)

		ev.mu.Lock()
		defer ev.mu.Unlock()
		ev.token = ev.obj.token
		ev.closeErr = foreignmem.Free(unsafe.Pointer(ev.obj))
		ev.obj = nil
	})
	return ev.closeErr
}

// LiveEvents returns the number of event delegates that have not been
// closed.
func LiveEvents() int {
	return events.len()
}

func (ev *Event) dispatch(sender, args uintptr) (hr comshim.HRESULT) {
	defer func() {
		if r := recover(); r != nil {
			Logger().Error("event handler panicked",
				zap.Stringer("iid", &ev.iid),
				zap.Any("panic", r))
			hr = comshim.E_FAIL
		}
	}()

	err := ev.handler(ev, sender, args)
	if err == nil {
		return comshim.S_OK
	}

	hr = comshim.E_FAIL
	var e comshim.Error
	if errors.As(err, &e) && e.Failed() {
		hr = e.AsHRESULT()
	}

	Logger().Debug("event handler failed",
		zap.Stringer("iid", &ev.iid),
		zap.Error(err),
		zap.String("hresult", fmt.Sprintf("0x%08X", uint32(hr))))
	return hr
}
