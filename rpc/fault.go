// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rpc implements the server-mode operation surface (spec.md
// §6.2): every operation on a Service takes (at most) a JobKey, and every
// failure — a returned *yerr.Error or a recovered panic — is collapsed
// into a single opaque Fault carrying a human-readable message, per
// spec.md §7's propagation policy. The affected job is never dropped by a
// faulting call; only an explicit Release does that.
package rpc

import (
	"fmt"

	"github.com/dynasolve/yamss/job"
)

// Fault is the one error type this package ever returns to a caller.
type Fault struct {
	Message string
}

func (f *Fault) Error() string { return f.Message }

func newFault(err error) error {
	if err == nil {
		return nil
	}
	return &Fault{Message: err.Error()}
}

// Service adapts a job.Registry to the RPC surface. It is safe for
// concurrent use across jobs; per-job serialization is the caller's
// responsibility (spec.md §5).
type Service struct {
	registry *job.Registry
}

// NewService returns a Service backed by registry.
func NewService(registry *job.Registry) *Service {
	return &Service{registry: registry}
}

// guard recovers a panic from fn, and also wraps any ordinary error fn
// returns, so every path out of a Service method — a recovered
// chk.Panic or a plain *yerr.Error — surfaces as the same Fault type.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newFault(asError(r))
		}
	}()
	if err = fn(); err != nil {
		err = newFault(err)
	}
	return err
}

func asError(r interface{}) error {
	if e, ok := r.(error); ok {
		return e
	}
	return fmt.Errorf("panic: %v", r)
}
