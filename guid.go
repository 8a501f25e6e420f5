// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package comshim

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GUID has the same memory layout as the native GUID structure, so a *GUID
// may be handed directly to foreign code.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

var ErrInvalidGUID = errors.New("invalid GUID string")

// The text form spells Data1, Data2 and Data3 most significant byte first,
// so the 16 bytes of a uuid.UUID are those fields in big-endian order
// followed by Data4.

func guidFromUUID(u uuid.UUID) GUID {
	g := GUID{
		Data1: binary.BigEndian.Uint32(u[0:4]),
		Data2: binary.BigEndian.Uint16(u[4:6]),
		Data3: binary.BigEndian.Uint16(u[6:8]),
	}
	copy(g.Data4[:], u[8:])
	return g
}

func (g GUID) asUUID() uuid.UUID {
	var u uuid.UUID
	binary.BigEndian.PutUint32(u[0:4], g.Data1)
	binary.BigEndian.PutUint16(u[4:6], g.Data2)
	binary.BigEndian.PutUint16(u[6:8], g.Data3)
	copy(u[8:], g.Data4[:])
	return u
}

// String formats g in registry format, including braces.
func (g GUID) String() string {
	return "{" + strings.ToUpper(g.asUUID().String()) + "}"
}

// Equal reports whether g and other hold the same value. Either may be nil.
func (g *GUID) Equal(other *GUID) bool {
	if g == nil || other == nil {
		return g == other
	}
	return *g == *other
}

// ParseGUID parses s in registry format. The surrounding braces are
// optional, and the other forms accepted by uuid.Parse work too.
func ParseGUID(s string) (GUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return GUID{}, fmt.Errorf("%w %q: %v", ErrInvalidGUID, s, err)
	}
	return guidFromUUID(u), nil
}

// MustParseGUID is like ParseGUID but panics on malformed input. It is meant
// for package-level IID declarations.
func MustParseGUID(s string) GUID {
	g, err := ParseGUID(s)
	if err != nil {
		panic(err)
	}
	return g
}
