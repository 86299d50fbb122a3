// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

// Package logoserr defines the error-kind taxonomy shared by every engine
// package, per the propagation policy: numeric and oracle errors recover
// locally, input-validation and persistence errors surface to the caller.
package logoserr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for propagation-policy decisions. It is not a Go
// type hierarchy; every engine package returns *Error with one of these
// kinds rather than defining its own error types.
type Kind int

const (
	// InvalidInput is a parameter out of its documented domain, rejected at
	// a boundary. Surfaces to the caller.
	InvalidInput Kind = iota

	// NumericSingularity is a zero Hessian or zero likelihood. The engine
	// recovers locally (falls back to prior/last-valid) and never
	// propagates this to the caller as a fatal error.
	NumericSingularity

	// InconsistentState is a negative scaffolding gap beyond tolerance or a
	// non-monotone stage attempt. Logged and corrected by clamping.
	InconsistentState

	// OracleUnavailable is a content-provider timeout or error. The caller
	// falls back to the template generator; response scoring proceeds.
	OracleUnavailable

	// PersistenceFailure is a transaction that could not commit. The whole
	// scoring step is aborted and the response is not counted. Surfaces to
	// the caller.
	PersistenceFailure
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid_input"
	case NumericSingularity:
		return "numeric_singularity"
	case InconsistentState:
		return "inconsistent_state"
	case OracleUnavailable:
		return "oracle_unavailable"
	case PersistenceFailure:
		return "persistence_failure"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by engine packages. Callers
// branch on Kind rather than type-asserting to a package-specific error.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s: %v", e.Op, e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New constructs an *Error with no wrapped cause.
func New(kind Kind, op, message string) *Error {
	return &Error{Kind: kind, Op: op, Message: message}
}

// Wrap constructs an *Error wrapping cause.
func Wrap(kind Kind, op, message string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Message: message, Err: cause}
}

// Is reports whether err is a *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Surfaces reports whether this kind of error must propagate to the end
// caller per the §7 propagation policy (InvalidInput, PersistenceFailure),
// as opposed to being recovered locally (NumericSingularity,
// OracleUnavailable, InconsistentState).
func (k Kind) Surfaces() bool {
	return k == InvalidInput || k == PersistenceFailure
}
