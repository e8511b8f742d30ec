// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package status implements the error-kind and particle terminal-status
// taxonomy shared by the spline, equilibrium, integrate and event packages.
package status

import "fmt"

// Kind identifies the class of a construction-time or configuration error.
// Kinds are returned synchronously and abort the whole job; they
// are distinct from the per-particle terminal Status values below, which
// never abort a batch.
type Kind string

// Error kinds. These never describe a particle's outcome; see Status.
const (
	MalformedInput      Kind = "MalformedInput"
	NonMonotone         Kind = "NonMonotone"
	NonPeriodic         Kind = "NonPeriodic"
	InsufficientPoints  Kind = "InsufficientPoints"
	UnknownInterpolation Kind = "UnknownInterpolation"
	ShapeMismatch       Kind = "ShapeMismatch"
	DomainError         Kind = "DomainError"
	ConfigError         Kind = "ConfigError"
)

// Error is a kinded error. Library code returns *Error (as an error) so
// callers can switch on Kind without string matching.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Errf builds a kinded error with a printf-style message, mirroring the
// shape of gosl/chk.Err but attaching a Kind for programmatic dispatch.
func Errf(kind Kind, format string, args...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Is reports whether err is a *Error of the given kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}

// Status is a particle's terminal outcome.
// Unlike Kind, a Status is recorded in the particle's own output and never
// aborts sibling particles.
type Status string

const (
	Completed        Status = "Completed"
	EscapedWall      Status = "EscapedWall"
	StepFloorReached Status = "StepFloorReached"
	NonFinite        Status = "NonFinite"
	Cancelled        Status = "Cancelled"
)

// String implements fmt.Stringer.
func (s Status) String() string { return string(s) }
