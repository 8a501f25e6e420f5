// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package symvis

import (
	"bytes"
	dpe "debug/pe"
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/constraints"
)

// From winnt.h.
const (
	imageSymClassExternal     = 2
	imageSymClassStatic       = 3
	imageSymClassWeakExternal = 105

	maxExportNames = 1 << 20
	maxNameLen     = 4096
)

var coffMachines = map[uint16]bool{
	dpe.IMAGE_FILE_MACHINE_I386:  true,
	dpe.IMAGE_FILE_MACHINE_AMD64: true,
	dpe.IMAGE_FILE_MACHINE_ARM64: true,
	dpe.IMAGE_FILE_MACHINE_ARMNT: true,
}

func isCOFFMachine(m uint16) bool {
	return coffMachines[m]
}

type imageExportDirectory struct {
	Characteristics       uint32
	TimeDateStamp         uint32
	MajorVersion          uint16
	MinorVersion          uint16
	Name                  uint32
	Base                  uint32
	NumberOfFunctions     uint32
	NumberOfNames         uint32
	AddressOfFunctions    uint32
	AddressOfNames        uint32
	AddressOfNameOrdinals uint32
}

func readStruct[T any, O constraints.Integer](r io.ReaderAt, off O) (*T, error) {
	t := new(T)
	sr := io.NewSectionReader(r, int64(off), int64(binary.Size(t)))
	if err := binary.Read(sr, binary.LittleEndian, t); err != nil {
		return nil, ErrInvalidBinary
	}
	return t, nil
}

func readStructArray[T any, O constraints.Integer](r io.ReaderAt, off O, count int) ([]T, error) {
	result := make([]T, count)
	sr := io.NewSectionReader(r, int64(off), int64(binary.Size(result)))
	if err := binary.Read(sr, binary.LittleEndian, result); err != nil {
		return nil, ErrInvalidBinary
	}
	return result, nil
}

func readCString[O constraints.Integer](r io.ReaderAt, off O) (string, error) {
	var buf [256]byte
	var b strings.Builder
	pos := int64(off)
	for b.Len() < maxNameLen {
		n, err := r.ReadAt(buf[:], pos)
		if i := bytes.IndexByte(buf[:n], 0); i >= 0 {
			b.Write(buf[:i])
			return b.String(), nil
		}
		if err != nil {
			return "", ErrInvalidBinary
		}
		b.Write(buf[:n])
		pos += int64(n)
	}
	return "", ErrInvalidBinary
}

// resolveRVA converts an RVA into a file offset using the section table.
func resolveRVA[O constraints.Integer](f *dpe.File, rva O) (int64, bool) {
	urva := uint32(rva)
	for _, s := range f.Sections {
		if urva < s.VirtualAddress {
			continue
		}
		if urva >= s.VirtualAddress+s.VirtualSize {
			continue
		}
		voff := urva - s.VirtualAddress
		if voff >= s.Size {
			return 0, false
		}
		return int64(s.Offset + voff), true
	}
	return 0, false
}

func dataDirectory(f *dpe.File) []dpe.DataDirectory {
	var dd []dpe.DataDirectory
	var cnt uint32
	switch oh := f.OptionalHeader.(type) {
	case *dpe.OptionalHeader32:
		dd, cnt = oh.DataDirectory[:], oh.NumberOfRvaAndSizes
	case *dpe.OptionalHeader64:
		dd, cnt = oh.DataDirectory[:], oh.NumberOfRvaAndSizes
	default:
		return nil
	}
	if maxCnt := uint32(len(dd)); cnt > maxCnt {
		cnt = maxCnt
	}
	return dd[:cnt]
}

// coffName strips the underscore that 32-bit x86 prepends to C symbols.
func coffName(f *dpe.File, name string) string {
	if f.Machine == dpe.IMAGE_FILE_MACHINE_I386 {
		return strings.TrimPrefix(name, "_")
	}
	return name
}

func addCOFFSymbols(t *Table, f *dpe.File, externalVisibility Visibility) {
	for _, s := range f.Symbols {
		if strings.HasPrefix(s.Name, ".") {
			continue
		}

		sym := Symbol{Name: coffName(f, s.Name)}
		switch s.StorageClass {
		case imageSymClassExternal:
			if s.SectionNumber == 0 && s.Value == 0 {
				sym.Visibility = Undefined
			} else {
				sym.Visibility = externalVisibility
			}
		case imageSymClassWeakExternal:
			sym.Visibility = externalVisibility
			sym.Weak = true
		case imageSymClassStatic:
			sym.Visibility = Local
		default:
			continue
		}
		t.add(sym)
	}
}

func parseCOFF(r io.ReaderAt) (*Table, error) {
	f, err := dpe.NewFile(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBinary, err)
	}

	t := newTable(FormatCOFF)
	addCOFFSymbols(t, f, Exported)
	return t, nil
}

// parsePE reads a linked image. Only names in the export directory are
// visible to other modules; external symbols that survive in the COFF
// symbol table are reported as hidden.
func parsePE(r io.ReaderAt) (*Table, error) {
	f, err := dpe.NewFile(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBinary, err)
	}

	t := newTable(FormatPE)
	addCOFFSymbols(t, f, Hidden)

	names, err := exportedNames(r, f)
	if err != nil && err != ErrNotPresent {
		return nil, err
	}
	for _, n := range names {
		t.add(Symbol{Name: n, Visibility: Exported})
	}
	return t, nil
}

func exportedNames(r io.ReaderAt, f *dpe.File) ([]string, error) {
	dd := dataDirectory(f)
	if len(dd) <= dpe.IMAGE_DIRECTORY_ENTRY_EXPORT {
		return nil, ErrNotPresent
	}
	dde := dd[dpe.IMAGE_DIRECTORY_ENTRY_EXPORT]
	if dde.VirtualAddress == 0 || dde.Size == 0 {
		return nil, ErrNotPresent
	}

	off, ok := resolveRVA(f, dde.VirtualAddress)
	if !ok {
		return nil, ErrInvalidBinary
	}
	dir, err := readStruct[imageExportDirectory](r, off)
	if err != nil {
		return nil, err
	}
	if dir.NumberOfNames == 0 {
		return nil, nil
	}
	if dir.NumberOfNames > maxExportNames {
		return nil, ErrInvalidBinary
	}

	namesOff, ok := resolveRVA(f, dir.AddressOfNames)
	if !ok {
		return nil, ErrInvalidBinary
	}
	rvas, err := readStructArray[uint32](r, namesOff, int(dir.NumberOfNames))
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(rvas))
	for _, rva := range rvas {
		noff, ok := resolveRVA(f, rva)
		if !ok {
			return nil, ErrInvalidBinary
		}
		name, err := readCString(r, noff)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}
