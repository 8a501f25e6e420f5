// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package softdevice

import (
	"bytes"
	"errors"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/dblohm7/comshim/internal/symvis"
)

// The fake SDK in testdata/fakesd mirrors the shape of the s140v7 headers:
// a plain static wrapper, two __STATIC_INLINE helpers and the critical
// region state they share.
var fakeExports = []string{
	"sd_fake_checksum",
	"sd_nvic_critical_region_enter",
	"sd_nvic_critical_region_exit",
}

const wantSmoke = `checksum fabe8ec3
enter rc=0 nested=0
enter rc=0 nested=1
exit rc=0
exit rc=0
exit rc=8
`

type cToolchain struct {
	cc      string
	include string
	dir     string
}

func newCToolchain(t *testing.T) *cToolchain {
	t.Helper()
	cc, err := exec.LookPath("cc")
	if err != nil {
		t.Skip("no C compiler available")
	}
	include, err := filepath.Abs(filepath.Join("testdata", "fakesd"))
	if err != nil {
		t.Fatalf("Abs error: %v", err)
	}
	return &cToolchain{cc: cc, include: include, dir: t.TempDir()}
}

func (tc *cToolchain) run(t *testing.T, args ...string) {
	t.Helper()
	args = append([]string{"-I", tc.include}, args...)
	if out, err := exec.Command(tc.cc, args...).CombinedOutput(); err != nil {
		t.Fatalf("cc %v failed: %v\n%s", args, err, out)
	}
}

func (tc *cToolchain) compile(t *testing.T, src string) string {
	t.Helper()
	obj := filepath.Join(tc.dir, src+".o")
	tc.run(t, "-c", "-o", obj, filepath.Join(tc.include, src))
	return obj
}

func (tc *cToolchain) link(t *testing.T, name string, inputs ...string) string {
	t.Helper()
	exe := filepath.Join(tc.dir, name)
	if runtime.GOOS == "windows" {
		exe += ".exe"
	}
	tc.run(t, append([]string{"-o", exe}, inputs...)...)
	return exe
}

func TestNeutralizedUnitExports(t *testing.T) {
	tc := newCToolchain(t)

	adapter, err := symvis.Open(tc.compile(t, "adapter_fake.c"))
	if err != nil {
		t.Fatalf("reading adapter object: %v", err)
	}
	if err := adapter.CheckExported(append(fakeExports, "nrf_nvic_state")...); err != nil {
		t.Errorf("neutralized unit: %v", err)
	}

	plain, err := symvis.Open(tc.compile(t, "plain_fake.c"))
	if err != nil {
		t.Fatalf("reading plain object: %v", err)
	}
	err = plain.CheckExported(fakeExports...)
	var verr *symvis.VisibilityError
	if !errors.As(err, &verr) {
		t.Fatalf("plain include: CheckExported error got %v, want *VisibilityError", err)
	}
	if len(verr.Offenders) != len(fakeExports) {
		t.Errorf("plain include: offenders got %v, want all of %v", verr.Offenders, fakeExports)
	}
}

func TestNeutralizedUnitBehavior(t *testing.T) {
	tc := newCToolchain(t)

	adapterObj := tc.compile(t, "adapter_fake.c")
	linked := tc.link(t, "driver", filepath.Join(tc.include, "driver.c"), adapterObj)
	direct := tc.link(t, "driver_direct", filepath.Join(tc.include, "driver_direct.c"))

	gotLinked, err := exec.Command(linked).Output()
	if err != nil {
		t.Fatalf("running linked driver: %v", err)
	}
	gotDirect, err := exec.Command(direct).Output()
	if err != nil {
		t.Fatalf("running direct driver: %v", err)
	}

	gotLinked = bytes.ReplaceAll(gotLinked, []byte("\r\n"), []byte("\n"))
	gotDirect = bytes.ReplaceAll(gotDirect, []byte("\r\n"), []byte("\n"))
	if !bytes.Equal(gotLinked, gotDirect) {
		t.Errorf("output differs\nlinked:\n%s\ndirect:\n%s", gotLinked, gotDirect)
	}
	if string(gotDirect) != wantSmoke {
		t.Errorf("smoke output got\n%s\nwant\n%s", gotDirect, wantSmoke)
	}
}
