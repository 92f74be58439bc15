// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestParseMatrixEmptyIsIdentity(tst *testing.T) {
	chk.PrintTitle("config parseMatrix empty")
	m, err := parseMatrix("", 2)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "m00", 1e-15, m.At(0, 0), 1)
	chk.Scalar(tst, "m01", 1e-15, m.At(0, 1), 0)
	chk.Scalar(tst, "m11", 1e-15, m.At(1, 1), 1)
}

func TestParseMatrixDiag(tst *testing.T) {
	chk.PrintTitle("config parseMatrix diag(...)")
	m, err := parseMatrix("diag(2 3 4)", 3)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "m00", 1e-15, m.At(0, 0), 2)
	chk.Scalar(tst, "m11", 1e-15, m.At(1, 1), 3)
	chk.Scalar(tst, "m22", 1e-15, m.At(2, 2), 4)
	chk.Scalar(tst, "m01 off-diag", 1e-15, m.At(0, 1), 0)
}

func TestParseMatrixDiagWrongLengthFails(tst *testing.T) {
	chk.PrintTitle("config parseMatrix diag(...) dimension mismatch")
	if _, err := parseMatrix("diag(1 2)", 3); err == nil {
		tst.Fatal("expected dimension error")
	}
}

func TestParseMatrixRows(tst *testing.T) {
	chk.PrintTitle("config parseMatrix rows")
	m, err := parseMatrix("1 2; 3 4", 2)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "m00", 1e-15, m.At(0, 0), 1)
	chk.Scalar(tst, "m01", 1e-15, m.At(0, 1), 2)
	chk.Scalar(tst, "m10", 1e-15, m.At(1, 0), 3)
	chk.Scalar(tst, "m11", 1e-15, m.At(1, 1), 4)
}

func TestParseMatrixRowCountMismatchFails(tst *testing.T) {
	chk.PrintTitle("config parseMatrix row count mismatch")
	if _, err := parseMatrix("1 2", 2); err == nil {
		tst.Fatal("expected dimension error for single row against m=2")
	}
}

func TestParseVectorEmptyIsZero(tst *testing.T) {
	chk.PrintTitle("config parseVector empty")
	v, err := parseVector("", 3)
	if err != nil {
		tst.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		chk.Scalar(tst, "v", 1e-15, v.AtVec(i), 0)
	}
}

func TestParseVectorValues(tst *testing.T) {
	chk.PrintTitle("config parseVector values")
	v, err := parseVector("1.5 2.5", 2)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "v0", 1e-15, v.AtVec(0), 1.5)
	chk.Scalar(tst, "v1", 1e-15, v.AtVec(1), 2.5)
}

func TestParseVectorWrongLengthFails(tst *testing.T) {
	chk.PrintTitle("config parseVector dimension mismatch")
	if _, err := parseVector("1 2 3", 2); err == nil {
		tst.Fatal("expected dimension error")
	}
}
