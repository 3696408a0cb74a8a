package graph

import (
	"errors"
	"fmt"
	"testing"
)

func TestCode(t *testing.T) {
	if Code(nil) != "" {
		t.Fatalf("Code(nil) = %q, want empty", Code(nil))
	}

	_, err := NewURI("")
	if Code(err) != ErrCodeNilArgument {
		t.Fatalf("Code = %s, want %s", Code(err), ErrCodeNilArgument)
	}

	_, err = NewLiteralFull("x", "en", XSDInteger)
	if Code(err) != ErrCodeDatatypeConflict {
		t.Fatalf("Code = %s, want %s", Code(err), ErrCodeDatatypeConflict)
	}

	_, err = NewLiteralByValue(struct{}{})
	if Code(err) != ErrCodeDatatypeMapping {
		t.Fatalf("Code = %s, want %s", Code(err), ErrCodeDatatypeMapping)
	}

	if Code(errors.New("somebody else's error")) != ErrCodeUnknown {
		t.Fatal("foreign errors should classify as unknown")
	}

	// codes survive wrapping
	wrapped := fmt.Errorf("outer: %w", err)
	if Code(wrapped) != ErrCodeDatatypeMapping {
		t.Fatalf("Code(wrapped) = %s, want %s", Code(wrapped), ErrCodeDatatypeMapping)
	}
}

func TestDatatypeErrorMessage(t *testing.T) {
	inner := errors.New("boom")
	err := &DatatypeError{Datatype: XSDIntegerIRI, Value: true, Err: inner}
	if !errors.Is(err, inner) {
		t.Fatal("DatatypeError should unwrap to its cause")
	}
	msg := err.Error()
	if msg == "" || msg == inner.Error() {
		t.Fatalf("unexpected message: %q", msg)
	}

	bare := &DatatypeError{Value: struct{}{}, Err: inner}
	if bare.Error() == "" {
		t.Fatal("message should render without a datatype")
	}
}
