/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package pdfgraph holds the error taxonomy shared by the value, xref, and
// writer packages.
package pdfgraph

import (
	"fmt"

	"golang.org/x/xerrors"
)

// Kind enumerates the closed set of failure modes the object graph
// serialization layer can report.
type Kind int

const (
	// LexError means bytes at the current position do not form a valid token.
	LexError Kind = iota
	// UnexpectedEof means a read ran past the end of the source.
	UnexpectedEof
	// XrefMissing means neither a valid startxref nor a scannable fallback
	// was found.
	XrefMissing
	// XrefMalformed means an xref section had bad widths, counts, or
	// truncated entries.
	XrefMalformed
	// XrefLoop means a /Prev chain revisited an offset already seen.
	XrefLoop
	// UnresolvedReference means a reference points to a nonexistent object.
	UnresolvedReference
	// ObjectStreamMalformed means a compressed object stream's header is
	// inconsistent.
	ObjectStreamMalformed
	// StreamDecodeError means a filter in a stream's chain failed to decode.
	StreamDecodeError
	// UnknownFilter means a /Filter name has no registered decoder.
	UnknownFilter
	// TypeMismatch means a value was not of the type an operation required.
	TypeMismatch
	// ValueOutOfRange means a numeric field fell outside its legal range.
	ValueOutOfRange
	// IoError wraps a failure from the underlying byte source or sink.
	IoError
)

func (k Kind) String() string {
	switch k {
	case LexError:
		return "LexError"
	case UnexpectedEof:
		return "UnexpectedEof"
	case XrefMissing:
		return "XrefMissing"
	case XrefMalformed:
		return "XrefMalformed"
	case XrefLoop:
		return "XrefLoop"
	case UnresolvedReference:
		return "UnresolvedReference"
	case ObjectStreamMalformed:
		return "ObjectStreamMalformed"
	case StreamDecodeError:
		return "StreamDecodeError"
	case UnknownFilter:
		return "UnknownFilter"
	case TypeMismatch:
		return "TypeMismatch"
	case ValueOutOfRange:
		return "ValueOutOfRange"
	case IoError:
		return "IoError"
	default:
		return "Unknown"
	}
}

// Error is the single error type surfaced by pdfgraph's packages. It carries
// a closed Kind plus an optional wrapped cause, so callers can branch with
// errors.Is/As against either the Kind or the cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// NewError builds an Error of the given Kind with a formatted message.
func NewError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError builds an Error of the given Kind around an existing cause.
func WrapError(kind Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped cause to xerrors.Is/As and the stdlib errors
// package.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same Kind, so callers can
// write `xerrors.Is(err, pdfgraph.NewError(pdfgraph.XrefLoop, ""))`-style
// checks or, more commonly, the IsKind helper below.
func (e *Error) Is(target error) bool {
	var other *Error
	if xerrors.As(target, &other) {
		return other.Kind == e.Kind
	}
	return false
}

// IsKind reports whether err is a *pdfgraph.Error of the given Kind,
// unwrapping through any wrapper chain.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !xerrors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
