// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package symvis

import (
	"debug/macho"
	"encoding/binary"
	"fmt"
	"io"
	"strings"
)

// From <mach-o/nlist.h>.
const (
	machoNStab = 0xe0
	machoNPext = 0x10
	machoNType = 0x0e
	machoNExt  = 0x01
	machoNUndf = 0x0
)

func isMachOMagic(magic [4]byte) bool {
	for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
		switch order.Uint32(magic[:]) {
		case macho.Magic32, macho.Magic64:
			return true
		}
	}
	return false
}

func parseMachO(r io.ReaderAt) (*Table, error) {
	f, err := macho.NewFile(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBinary, err)
	}

	t := newTable(FormatMachO)
	if f.Symtab == nil {
		return t, nil
	}

	for _, s := range f.Symtab.Syms {
		if s.Type&machoNStab != 0 {
			continue
		}

		sym := Symbol{Name: strings.TrimPrefix(s.Name, "_")}
		switch {
		case s.Type&machoNType == machoNUndf && s.Value == 0:
			sym.Visibility = Undefined
		case s.Type&machoNPext != 0:
			sym.Visibility = Hidden
		case s.Type&machoNExt != 0:
			sym.Visibility = Exported
		default:
			sym.Visibility = Local
		}
		t.add(sym)
	}

	return t, nil
}
