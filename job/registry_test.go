// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package job

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/dynasolve/yamss/eom"
	"github.com/dynasolve/yamss/integrator"
	"github.com/dynasolve/yamss/observer"
	"github.com/dynasolve/yamss/runner"
	"github.com/dynasolve/yamss/structure"
)

func fakeBuild(path string) (*runner.Runner, error) {
	e := eom.New(1, 2)
	s := structure.New(1)
	r := runner.New(e, s, integrator.NewNewmarkBeta())
	r.AddObserver(observer.NewSummary(filepath.Base(path) + ".summary.txt"))
	return r, nil
}

func TestCreateGetReleaseRoundTrip(tst *testing.T) {
	chk.PrintTitle("job Registry Create/Get/Release")
	dir := tst.TempDir()
	src := filepath.Join(dir, "input.xml")
	if err := os.WriteFile(src, []byte("<yamss/>"), 0o644); err != nil {
		tst.Fatal(err)
	}

	reg := NewRegistry(filepath.Join(dir, "jobs"), NewHTTPTransporter(), fakeBuild)
	key, err := reg.Create(src)
	if err != nil {
		tst.Fatal(err)
	}
	if len(key) != 16 {
		tst.Fatalf("expected 16-hex-char key, got %q", key)
	}

	r, err := reg.Get(key)
	if err != nil {
		tst.Fatal(err)
	}
	if r == nil {
		tst.Fatal("expected non-nil runner")
	}

	wd, err := reg.WorkDir(key)
	if err != nil {
		tst.Fatal(err)
	}
	if _, err := os.Stat(wd); err != nil {
		tst.Fatalf("expected working directory to exist: %v", err)
	}

	reg.Release(key)
	if _, err := reg.Get(key); err == nil {
		tst.Fatal("expected error after release")
	}
}

func TestGetUnknownKeyFails(tst *testing.T) {
	chk.PrintTitle("job Registry unknown key")
	reg := NewRegistry(tst.TempDir(), NewHTTPTransporter(), fakeBuild)
	if _, err := reg.Get(Key("deadbeefdeadbeef")); err == nil {
		tst.Fatal("expected error for unknown key")
	}
	if _, err := reg.WorkDir(Key("deadbeefdeadbeef")); err == nil {
		tst.Fatal("expected error for unknown key")
	}
}

func TestPushOutputsCopiesDeclaredFilesToOriginBase(tst *testing.T) {
	chk.PrintTitle("job Registry PushOutputs")
	dir := tst.TempDir()
	destDir := filepath.Join(dir, "dest")
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		tst.Fatal(err)
	}
	originURL := filepath.Join(destDir, "input.xml")
	if err := os.WriteFile(originURL, []byte("<yamss/>"), 0o644); err != nil {
		tst.Fatal(err)
	}

	reg := NewRegistry(filepath.Join(dir, "jobs"), NewHTTPTransporter(), fakeBuild)
	key, err := reg.Create(originURL)
	if err != nil {
		tst.Fatal(err)
	}

	wd, err := reg.WorkDir(key)
	if err != nil {
		tst.Fatal(err)
	}
	r, err := reg.Get(key)
	if err != nil {
		tst.Fatal(err)
	}
	for f := range r.Files() {
		if err := os.WriteFile(filepath.Join(wd, f), []byte("result"), 0o644); err != nil {
			tst.Fatal(err)
		}
	}

	if err := reg.PushOutputs(key); err != nil {
		tst.Fatal(err)
	}
	for f := range r.Files() {
		if _, err := os.Stat(filepath.Join(destDir, f)); err != nil {
			tst.Fatalf("expected pushed output %s: %v", f, err)
		}
	}
}
