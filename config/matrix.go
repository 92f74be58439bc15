// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/dynasolve/yamss/yerr"
)

// parseMatrix parses the matrix literal grammar of spec.md §6.1: either
// `diag(v0 v1 ... v(m-1))` for a diagonal m×m matrix, or whitespace-
// separated rows joined by `;`, each row the same length. An empty
// literal yields an m×m identity, matching eom.New's own default so an
// input document may omit a matrix entirely and get the reference
// solver's implicit behavior.
func parseMatrix(literal string, m int) (*mat.Dense, error) {
	literal = strings.TrimSpace(literal)
	if literal == "" {
		return identity(m), nil
	}
	if strings.HasPrefix(literal, "diag(") && strings.HasSuffix(literal, ")") {
		inner := literal[len("diag(") : len(literal)-1]
		diag, err := parseFloats(inner)
		if err != nil {
			return nil, err
		}
		if len(diag) != m {
			return nil, yerr.New(yerr.DimensionError, "config.parse_matrix",
				"diag(...) literal has %d entries, expected %d", len(diag), m)
		}
		d := mat.NewDense(m, m, nil)
		for i, v := range diag {
			d.Set(i, i, v)
		}
		return d, nil
	}
	rows := strings.Split(literal, ";")
	data := make([]float64, 0, m*m)
	for _, row := range rows {
		vals, err := parseFloats(row)
		if err != nil {
			return nil, err
		}
		if len(vals) != m {
			return nil, yerr.New(yerr.DimensionError, "config.parse_matrix",
				"matrix literal row has %d entries, expected %d", len(vals), m)
		}
		data = append(data, vals...)
	}
	if len(rows) != m || len(data) != m*m {
		return nil, yerr.New(yerr.DimensionError, "config.parse_matrix",
			"matrix literal has %d rows and %d entries, expected %d×%d", len(rows), len(data), m, m)
	}
	return mat.NewDense(m, m, data), nil
}

// parseVector parses a whitespace-separated vector literal of length m,
// or an empty literal as a zero vector.
func parseVector(literal string, m int) (*mat.VecDense, error) {
	literal = strings.TrimSpace(literal)
	if literal == "" {
		return mat.NewVecDense(m, nil), nil
	}
	vals, err := parseFloats(literal)
	if err != nil {
		return nil, err
	}
	if len(vals) != m {
		return nil, yerr.New(yerr.DimensionError, "config.parse_vector",
			"vector literal has %d entries, expected %d", len(vals), m)
	}
	return mat.NewVecDense(m, vals), nil
}

func parseFloats(s string) ([]float64, error) {
	fields := strings.Fields(s)
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, yerr.Wrap(yerr.ConfigError, "config.parse_floats", err)
		}
		out[i] = v
	}
	return out, nil
}

func identity(m int) *mat.Dense {
	d := mat.NewDense(m, m, nil)
	for i := 0; i < m; i++ {
		d.Set(i, i, 1)
	}
	return d
}
