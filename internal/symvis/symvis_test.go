// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package symvis

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/afero"
)

func TestParseUnknown(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{"Empty", nil},
		{"Short", []byte{0x7f}},
		{"Text", []byte("#!/bin/sh\necho hi\n")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(bytes.NewReader(tc.data))
			if !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("Parse error got %v, want ErrUnknownFormat", err)
			}
		})
	}
}

func TestParseTruncated(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{"ELF", []byte("\x7fELF\x02\x01\x01")},
		{"MachO", []byte{0xcf, 0xfa, 0xed, 0xfe, 0x07, 0x00}},
		{"PE", []byte("MZ\x90\x00")},
		{"COFF", []byte{0x64, 0x86, 0x01, 0x00, 0x00, 0x00}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(bytes.NewReader(tc.data))
			if !errors.Is(err, ErrInvalidBinary) {
				t.Errorf("Parse error got %v, want ErrInvalidBinary", err)
			}
		})
	}
}

func TestTableAdd(t *testing.T) {
	tbl := newTable(FormatELF)
	tbl.add(Symbol{Name: "f", Visibility: Undefined})
	tbl.add(Symbol{Name: "f", Visibility: Exported})
	tbl.add(Symbol{Name: "f", Visibility: Local})
	tbl.add(Symbol{Name: "", Visibility: Exported})

	if got := tbl.Lookup("f").Visibility; got != Exported {
		t.Errorf("Lookup(f) got %v, want %v", got, Exported)
	}
	if got := tbl.Lookup("g"); got.Visibility != Absent || got.Name != "g" {
		t.Errorf("Lookup(g) got %v, want absent g", got)
	}
	if got := tbl.Len(); got != 1 {
		t.Errorf("Len got %d, want 1", got)
	}
}

func TestCheckExported(t *testing.T) {
	tbl := newTable(FormatELF)
	tbl.add(Symbol{Name: "sd_ble_enable", Visibility: Exported})
	tbl.add(Symbol{Name: "sd_ble_evt_get", Visibility: Local})
	tbl.add(Symbol{Name: "nrf_nvic_state", Visibility: Hidden})

	if err := tbl.CheckExported("sd_ble_enable"); err != nil {
		t.Errorf("CheckExported(sd_ble_enable) error: %v", err)
	}

	err := tbl.CheckExported("sd_ble_enable", "sd_ble_evt_get", "nrf_nvic_state", "sd_missing")
	var verr *VisibilityError
	if !errors.As(err, &verr) {
		t.Fatalf("CheckExported error got %v, want *VisibilityError", err)
	}

	want := []Symbol{
		{Name: "sd_ble_evt_get", Visibility: Local},
		{Name: "nrf_nvic_state", Visibility: Hidden},
		{Name: "sd_missing", Visibility: Absent},
	}
	if len(verr.Offenders) != len(want) {
		t.Fatalf("offenders got %v, want %v", verr.Offenders, want)
	}
	for i := range want {
		if verr.Offenders[i] != want[i] {
			t.Errorf("offender %d got %v, want %v", i, verr.Offenders[i], want[i])
		}
	}

	const wantMsg = "symbols not externally visible: sd_ble_evt_get (local), nrf_nvic_state (hidden), sd_missing (absent)"
	if got := err.Error(); got != wantMsg {
		t.Errorf("Error() got %q, want %q", got, wantMsg)
	}
}

func TestSymbolsSorted(t *testing.T) {
	tbl := newTable(FormatMachO)
	for _, n := range []string{"c", "a", "b"} {
		tbl.add(Symbol{Name: n, Visibility: Exported})
	}

	syms := tbl.Symbols()
	for i, want := range []string{"a", "b", "c"} {
		if syms[i].Name != want {
			t.Errorf("Symbols()[%d] got %q, want %q", i, syms[i].Name, want)
		}
	}
}

const visibilitySource = `
int exported_fn(void) { return 1; }
static int local_fn(void) { return 2; }
__attribute__((visibility("hidden"))) int hidden_fn(void) { return local_fn(); }
extern int undefined_fn(void);
int caller(void) { return undefined_fn(); }
`

func compileObject(t *testing.T, src string) string {
	t.Helper()
	cc, err := exec.LookPath("cc")
	if err != nil {
		t.Skip("no C compiler available")
	}

	dir := t.TempDir()
	cfile := filepath.Join(dir, "vis.c")
	if err := os.WriteFile(cfile, []byte(src), 0o644); err != nil {
		t.Fatalf("writing source: %v", err)
	}
	obj := filepath.Join(dir, "vis.o")
	if out, err := exec.Command(cc, "-c", "-O0", "-o", obj, cfile).CombinedOutput(); err != nil {
		t.Fatalf("cc failed: %v\n%s", err, out)
	}
	return obj
}

func TestCompiledObject(t *testing.T) {
	obj := compileObject(t, visibilitySource)

	tbl, err := Open(obj)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}

	testCases := []struct {
		name string
		want Visibility
	}{
		{"exported_fn", Exported},
		{"caller", Exported},
		{"local_fn", Local},
		{"undefined_fn", Undefined},
		{"never_declared", Absent},
	}
	// PE/COFF has no notion of hidden visibility.
	if runtime.GOOS != "windows" {
		testCases = append(testCases, struct {
			name string
			want Visibility
		}{"hidden_fn", Hidden})
	}

	for _, tc := range testCases {
		if got := tbl.Lookup(tc.name).Visibility; got != tc.want {
			t.Errorf("%s (%s) got %v, want %v", tc.name, tbl.Format, got, tc.want)
		}
	}
}

func TestLoadFromFs(t *testing.T) {
	obj := compileObject(t, visibilitySource)
	data, err := os.ReadFile(obj)
	if err != nil {
		t.Fatalf("reading object: %v", err)
	}

	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/obj/vis.o", data, 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	tbl, err := Load(fs, "/obj/vis.o")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if err := tbl.CheckExported("exported_fn", "caller"); err != nil {
		t.Errorf("CheckExported error: %v", err)
	}

	if _, err := Load(fs, "/obj/missing.o"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error got %v, want os.ErrNotExist", err)
	}
}
