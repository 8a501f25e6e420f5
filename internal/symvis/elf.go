// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package symvis

import (
	"debug/elf"
	"errors"
	"fmt"
	"io"
)

func parseELF(r io.ReaderAt) (*Table, error) {
	f, err := elf.NewFile(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBinary, err)
	}

	t := newTable(FormatELF)

	syms, err := f.Symbols()
	if err != nil && !errors.Is(err, elf.ErrNoSymbols) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBinary, err)
	}
	for _, s := range syms {
		addELFSymbol(t, s)
	}

	dyn, err := f.DynamicSymbols()
	if err != nil && !errors.Is(err, elf.ErrNoSymbols) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBinary, err)
	}
	for _, s := range dyn {
		addELFSymbol(t, s)
	}

	return t, nil
}

func addELFSymbol(t *Table, s elf.Symbol) {
	switch elf.ST_TYPE(s.Info) {
	case elf.STT_SECTION, elf.STT_FILE:
		return
	}

	bind := elf.ST_BIND(s.Info)
	sym := Symbol{Name: s.Name, Weak: bind == elf.STB_WEAK}
	switch {
	case s.Section == elf.SHN_UNDEF:
		sym.Visibility = Undefined
	case bind == elf.STB_LOCAL:
		sym.Visibility = Local
	case elf.ST_VISIBILITY(s.Other) == elf.STV_HIDDEN, elf.ST_VISIBILITY(s.Other) == elf.STV_INTERNAL:
		sym.Visibility = Hidden
	default:
		sym.Visibility = Exported
	}
	t.add(sym)
}
