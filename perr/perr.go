// Copyright 2019 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package perr defines the small closed set of error codes returned by
// the node and parser packages. Apart from node.Node.At, which panics on
// an out-of-range index the way slice indexing does, every fallible
// operation on the public surface of this module returns one of these
// codes wrapped in an *Error instead of panicking.
package perr

import "fmt"

// Code is one of the taxonomy of error kinds a fallible operation can return.
type Code int

const (
	// InvalidArgument is returned for a nil argument, or a zero-length
	// payload passed to a constructor that requires content.
	InvalidArgument Code = iota
	// OutOfMemory is returned on allocation failure.
	OutOfMemory
	// InvalidKind is returned when an operation is applied to a Node of
	// the wrong kind.
	InvalidKind
	// AlreadyAttached is returned when attaching a Node that already has
	// a parent.
	AlreadyAttached
	// OutOfRange is returned for an array index outside valid bounds.
	OutOfRange
	// NotFound is returned for a dict pop of an absent key, or a parser
	// result requested before the parser reached Done.
	NotFound
	// Invalid is returned for a parse error: bad grammar, an
	// unterminated token, a bad number, a duplicate dict key.
	Invalid
)

var codeNames = [...]string{
	InvalidArgument: "invalid-argument",
	OutOfMemory:     "out-of-memory",
	InvalidKind:     "invalid-kind",
	AlreadyAttached: "already-attached",
	OutOfRange:      "out-of-range",
	NotFound:        "not-found",
	Invalid:         "invalid",
}

func (c Code) String() string {
	if c < InvalidArgument || int(c) >= len(codeNames) {
		return "unknown"
	}
	return codeNames[c]
}

// Error is the concrete error type returned by this module's fallible
// operations. It carries a Code so callers can distinguish failure kinds
// with errors.Is, plus a human-readable message.
type Error struct {
	Code Code
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Code.String()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Is reports whether target is an *Error with the same Code, so callers
// can write errors.Is(err, perr.NotFound) by comparing against a bare
// sentinel built with New(code, "").
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New constructs an *Error with the given code and a formatted message.
func New(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// Is reports whether err is a *perr.Error with the given code.
func Is(err error, code Code) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	return e.Code == code
}
