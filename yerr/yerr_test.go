// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yerr

import (
	"fmt"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestNewAndIs(tst *testing.T) {
	chk.PrintTitle("yerr New/Is")
	err := New(DuplicateKey, "structure.add_node", "node %d already exists", 3)
	if !Is(err, DuplicateKey) {
		tst.Fatal("expected DuplicateKey")
	}
	if Is(err, UnknownKey) {
		tst.Fatal("did not expect UnknownKey")
	}
	chk.Strings(tst, "kind", []string{err.Kind.String()}, []string{"DuplicateKey"})
}

func TestWrapPreservesKindThroughFmtErrorf(tst *testing.T) {
	chk.PrintTitle("yerr Wrap through fmt.Errorf")
	cause := fmt.Errorf("boom")
	wrapped := Wrap(SingularSystem, "integrator.newmark_beta", cause)
	outer := fmt.Errorf("step failed: %w", wrapped)
	if !Is(outer, SingularSystem) {
		tst.Fatal("expected SingularSystem to survive fmt.Errorf wrapping")
	}
}

func TestWrapNilIsNil(tst *testing.T) {
	if Wrap(ConfigError, "op", nil) != nil {
		tst.Fatal("Wrap(nil) should return nil")
	}
}
