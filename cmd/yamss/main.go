// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command yamss runs a single modal structural dynamics job from an
// input document given on argv or piped on stdin (spec.md §6.4).
package main

import (
	"flag"
	"io/ioutil"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/dynasolve/yamss/config"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	outDir := flag.String("o", "/tmp/yamss", "output directory")
	flag.Parse()

	path := flag.Arg(0)
	if path == "" {
		path = stageStdin()
	}

	io.PfWhite("\nyamss -- modal structural dynamics solver\n\n")

	r, err := config.Build(path)
	if err != nil {
		chk.Panic("%v", err)
	}
	if err := r.Initialize(*outDir); err != nil {
		chk.Panic("%v", err)
	}
	if err := r.Run(); err != nil {
		chk.Panic("%v", err)
	}
	if err := r.Finalize(); err != nil {
		chk.Panic("%v", err)
	}

	r.Report()
	io.Pf("\nsuccess: wrote %d output file(s) to %s\n", len(r.Files()), *outDir)
}

// stageStdin copies stdin to a temporary file so config.Build, which
// reads from a path, can consume it uniformly with the argv case.
func stageStdin() string {
	b, err := ioutil.ReadAll(os.Stdin)
	if err != nil {
		chk.Panic("cannot read input from stdin: %v", err)
	}
	f, err := ioutil.TempFile("", "yamss-input-*.xml")
	if err != nil {
		chk.Panic("cannot stage stdin input: %v", err)
	}
	defer f.Close()
	if _, err := f.Write(b); err != nil {
		chk.Panic("cannot stage stdin input: %v", err)
	}
	return f.Name()
}
