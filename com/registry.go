// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build (windows || darwin || linux) && (amd64 || arm64)

package com

import (
	"sync"
)

// registry maps the integer handles stored in foreign memory back to the Go
// values they stand for. Foreign memory may not hold Go pointers, so an
// eventObject carries a handle and Invoke looks the Event up here.
type registry struct {
	mu      sync.RWMutex
	entries map[uintptr]*Event
	next    uintptr
}

var events = newRegistry()

func newRegistry() *registry {
	return &registry{entries: make(map[uintptr]*Event), next: 1}
}

func (r *registry) register(ev *Event) uintptr {
	r.mu.Lock()
	defer r.mu.Unlock()
	h := r.next
	r.next++
	r.entries[h] = ev
	return h
}

func (r *registry) lookup(h uintptr) *Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entries[h]
}

func (r *registry) unregister(h uintptr) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, h)
}

func (r *registry) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
