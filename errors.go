package omexml

import (
	"errors"
	"fmt"

	"github.com/openmicro/omexml/core"
)

// Sentinel errors.
var (
	// ErrNotOME is returned by [Parse] when the input is well-formed XML
	// but its root element is not OME in an OME schema namespace.
	ErrNotOME = errors.New("omexml: root element is not OME")

	// ErrIndexOutOfRange is reported by indexed accessors for an index
	// outside the current count. Elements are only created through the
	// Set*Count methods, never by out-of-range reads.
	ErrIndexOutOfRange = core.ErrIndexOutOfRange

	// ErrCountTooSmall is reported by Set*Count methods whose collection
	// has a minimum size (images and ROIs must number at least one).
	ErrCountTooSmall = core.ErrCountTooSmall
)

// ParseError reports malformed input XML on document construction. It is
// fatal to that construction call; no partial document is returned.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("omexml: parsing document: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError reports a contract violation at the call that commits
// it: an invalid unit or enumeration value, an ill-formed ID, a count
// precondition failure, or a shape type mismatch. Nothing is written to
// the tree when a ValidationError is returned.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("omexml: %s=%q: %s", e.Field, e.Value, e.Reason)
}

func validationErr(field, value, reason string) error {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}
