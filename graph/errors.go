package graph

import (
	"errors"
	"fmt"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeNilArgument indicates a required argument was absent.
	ErrCodeNilArgument ErrorCode = "NIL_ARGUMENT"
	// ErrCodeDatatypeConflict indicates inconsistent language/datatype inputs.
	ErrCodeDatatypeConflict ErrorCode = "DATATYPE_CONFLICT"
	// ErrCodeDatatypeMapping indicates a value could not be mapped to a datatype's value space.
	ErrCodeDatatypeMapping ErrorCode = "DATATYPE_MAPPING"
	// ErrCodeUnknown indicates an unclassified error.
	ErrCodeUnknown ErrorCode = "UNKNOWN"
)

var (
	// ErrNilArgument indicates a required argument was absent.
	ErrNilArgument = errors.New("graph: required argument is absent")
	// ErrDatatypeConflict indicates that language tag and datatype inputs
	// are mutually inconsistent.
	ErrDatatypeConflict = errors.New("graph: language tag and datatype conflict")
)

// Code returns the error code for an error. Returns empty string for nil
// errors and ErrCodeUnknown for errors this package did not produce.
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrNilArgument):
		return ErrCodeNilArgument
	case errors.Is(err, ErrDatatypeConflict):
		return ErrCodeDatatypeConflict
	}

	var dtErr *DatatypeError
	if errors.As(err, &dtErr) {
		return ErrCodeDatatypeMapping
	}

	return ErrCodeUnknown
}

// DatatypeError reports a failure to map a value to a datatype's value
// space, or a lexical form that cannot be parsed under its datatype.
type DatatypeError struct {
	Datatype string // Datatype IRI ("" if no datatype could be determined)
	Value    any    // Offending value or lexical form
	Err      error  // Underlying error
}

func (e *DatatypeError) Error() string {
	if e.Datatype == "" {
		return fmt.Sprintf("graph: cannot map value %v (%T): %v", e.Value, e.Value, e.Err)
	}
	return fmt.Sprintf("graph: cannot map value %v (%T) under <%s>: %v", e.Value, e.Value, e.Datatype, e.Err)
}

func (e *DatatypeError) Unwrap() error { return e.Err }

// nilArgument builds the standard absent-argument error for a named
// argument.
func nilArgument(name string) error {
	return fmt.Errorf("%w: %s", ErrNilArgument, name)
}
