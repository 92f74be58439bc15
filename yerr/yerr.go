// Package yerr defines the closed error taxonomy used across the solver
// core: a handful of kinds, not a zoo of concrete types, so that the RPC
// boundary (package rpc) can collapse any of them into one opaque fault.
package yerr

import "fmt"

// Kind discriminates the taxonomy from spec.md §7.
type Kind int

const (
	// ConfigError marks a malformed input document or an unsupported
	// integrator/evaluator/observer discriminator at the factory layer.
	ConfigError Kind = iota
	// DuplicateKey marks an attempt to register a node/element/load/job
	// key that already exists.
	DuplicateKey
	// UnknownKey marks a lookup of a node/element/load/job key that does
	// not exist.
	UnknownKey
	// DimensionError marks a matrix/vector shape mismatch.
	DimensionError
	// SingularSystem marks a dense solve that could not proceed; the step
	// that triggered it is never committed.
	SingularSystem
	// TransportError marks a file fetch/push failure at the transporter
	// collaborator; the affected operation aborts without mutating the
	// job registry.
	TransportError
	// NumericalOverflow marks an integrator producing non-finite values.
	NumericalOverflow
)

func (k Kind) String() string {
	switch k {
	case ConfigError:
		return "ConfigError"
	case DuplicateKey:
		return "DuplicateKey"
	case UnknownKey:
		return "UnknownKey"
	case DimensionError:
		return "DimensionError"
	case SingularSystem:
		return "SingularSystem"
	case TransportError:
		return "TransportError"
	case NumericalOverflow:
		return "NumericalOverflow"
	default:
		return "UnknownError"
	}
}

// Error is the concrete error value carried by every core operation that
// can fail in a way callers are expected to handle. Op names the failing
// operation (e.g. "structure.add_node"); Err, when present, wraps the
// underlying cause.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an *Error with no wrapped cause.
func New(kind Kind, op, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// Wrap builds an *Error around an existing cause.
func Wrap(kind Kind, op string, err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// Is reports whether err is a *Error of the given kind, unwrapping as
// needed (so a *yerr.Error wrapped by fmt.Errorf("%w", ...) still matches).
func Is(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind == kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
