// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

// Package symvis reports how visible each symbol in an object file or
// linked binary is to other translation units. It understands ELF, Mach-O,
// COFF objects and PE images (through their export directory).
package symvis

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/exp/maps"
)

var (
	ErrUnknownFormat = errors.New("unrecognized object file format")
	ErrInvalidBinary = errors.New("invalid binary")
	ErrNotPresent    = errors.New("not present in this binary")
)

// Format identifies the container format of a parsed file.
type Format int

const (
	FormatUnknown Format = iota
	FormatELF
	FormatMachO
	FormatCOFF
	FormatPE
)

func (f Format) String() string {
	switch f {
	case FormatELF:
		return "ELF"
	case FormatMachO:
		return "Mach-O"
	case FormatCOFF:
		return "COFF"
	case FormatPE:
		return "PE"
	default:
		return "unknown"
	}
}

// Visibility classifies a symbol. Values are ordered from least to most
// visible.
type Visibility int

const (
	Absent Visibility = iota
	Undefined
	Local
	Hidden
	Exported
)

func (v Visibility) String() string {
	switch v {
	case Absent:
		return "absent"
	case Undefined:
		return "undefined"
	case Local:
		return "local"
	case Hidden:
		return "hidden"
	case Exported:
		return "exported"
	default:
		return fmt.Sprintf("Visibility(%d)", int(v))
	}
}

// Symbol is one named entry of a Table.
type Symbol struct {
	Name       string
	Visibility Visibility
	Weak       bool
}

// Exported reports whether another translation unit can link against s.
func (s Symbol) Exported() bool {
	return s.Visibility == Exported
}

func (s Symbol) String() string {
	if s.Weak {
		return fmt.Sprintf("%s (%s, weak)", s.Name, s.Visibility)
	}
	return fmt.Sprintf("%s (%s)", s.Name, s.Visibility)
}

// Table holds the symbols of one file, keyed by their source-level name.
type Table struct {
	Format Format
	syms   map[string]Symbol
}

func newTable(f Format) *Table {
	return &Table{Format: f, syms: make(map[string]Symbol)}
}

// add records s, keeping the most visible entry when a name appears more
// than once (for example in both the static and dynamic ELF tables).
func (t *Table) add(s Symbol) {
	if s.Name == "" {
		return
	}
	if cur, ok := t.syms[s.Name]; ok && cur.Visibility >= s.Visibility {
		return
	}
	t.syms[s.Name] = s
}

// Lookup returns the symbol called name. Missing symbols are reported with
// Visibility Absent.
func (t *Table) Lookup(name string) Symbol {
	if s, ok := t.syms[name]; ok {
		return s
	}
	return Symbol{Name: name, Visibility: Absent}
}

// Symbols returns every symbol in t sorted by name.
func (t *Table) Symbols() []Symbol {
	names := maps.Keys(t.syms)
	sort.Strings(names)
	result := make([]Symbol, len(names))
	for i, n := range names {
		result[i] = t.syms[n]
	}
	return result
}

// Len returns the number of symbols in t.
func (t *Table) Len() int {
	return len(t.syms)
}

// VisibilityError lists symbols that were expected to be exported but were
// not.
type VisibilityError struct {
	Offenders []Symbol
}

func (e *VisibilityError) Error() string {
	parts := make([]string, len(e.Offenders))
	for i, s := range e.Offenders {
		parts[i] = s.String()
	}
	return "symbols not externally visible: " + strings.Join(parts, ", ")
}

// CheckExported returns a *VisibilityError naming every symbol in names that
// is not exported from t, or nil when all of them are.
func (t *Table) CheckExported(names ...string) error {
	var offenders []Symbol
	for _, n := range names {
		if s := t.Lookup(n); !s.Exported() {
			offenders = append(offenders, s)
		}
	}
	if len(offenders) > 0 {
		return &VisibilityError{Offenders: offenders}
	}
	return nil
}

// Open parses the file at path on the host filesystem.
func Open(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Load parses the file at path in fs.
func Load(fs afero.Fs, path string) (*Table, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse detects the format of r and reads its symbols.
func Parse(r io.ReaderAt) (*Table, error) {
	var magic [4]byte
	if _, err := r.ReadAt(magic[:], 0); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrUnknownFormat
		}
		return nil, err
	}

	switch {
	case string(magic[:]) == "\x7fELF":
		return parseELF(r)
	case isMachOMagic(magic):
		return parseMachO(r)
	case magic[0] == 'M' && magic[1] == 'Z':
		return parsePE(r)
	case isCOFFMachine(uint16(magic[0]) | uint16(magic[1])<<8):
		return parseCOFF(r)
	default:
		return nil, ErrUnknownFormat
	}
}
