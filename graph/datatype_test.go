package graph

import (
	"math/big"
	"testing"
	"time"
)

func TestBooleanDatatype(t *testing.T) {
	for lex, want := range map[string]bool{"true": true, "1": true, "false": false, "0": false} {
		v, err := XSDBoolean.Parse(lex)
		if err != nil {
			t.Fatalf("Parse(%q): %v", lex, err)
		}
		if v.(bool) != want {
			t.Fatalf("Parse(%q) = %v, want %v", lex, v, want)
		}
	}
	if _, err := XSDBoolean.Parse("TRUE"); err == nil {
		t.Fatal("expected parse error for TRUE")
	}
	if lex, err := XSDBoolean.Format(true); err != nil || lex != "true" {
		t.Fatalf("Format(true) = %q, %v", lex, err)
	}
	if _, err := XSDBoolean.Format("yes"); err == nil {
		t.Fatal("expected format error for string value")
	}
}

func TestIntegerDatatype(t *testing.T) {
	v, err := XSDInteger.Parse("-42")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if v.(*big.Int).Int64() != -42 {
		t.Fatalf("unexpected value: %v", v)
	}

	// arbitrary precision
	big1 := "123456789012345678901234567890"
	if !XSDInteger.IsValid(big1) {
		t.Fatalf("%s should be a valid integer", big1)
	}
	if XSDInteger.IsValid("4.2") || XSDInteger.IsValid("x") {
		t.Fatal("non-integers should be invalid")
	}

	formats := []struct {
		value any
		want  string
	}{
		{7, "7"},
		{int64(-9), "-9"},
		{uint32(8), "8"},
		{big.NewInt(1 << 40), "1099511627776"},
	}
	for _, tt := range formats {
		lex, err := XSDInteger.Format(tt.value)
		if err != nil {
			t.Fatalf("Format(%v): %v", tt.value, err)
		}
		if lex != tt.want {
			t.Fatalf("Format(%v) = %q, want %q", tt.value, lex, tt.want)
		}
	}
	if _, err := XSDInteger.Format(4.2); err == nil {
		t.Fatal("expected format error for float value")
	}
}

func TestDecimalDatatype(t *testing.T) {
	v, err := XSDDecimal.Parse("-1.50")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if v.(*big.Rat).Cmp(big.NewRat(-3, 2)) != 0 {
		t.Fatalf("unexpected value: %v", v)
	}

	// big.Rat extensions are not xsd:decimal
	for _, lex := range []string{"3/2", "1e3", "", ".", "1.2.3"} {
		if XSDDecimal.IsValid(lex) {
			t.Fatalf("%q should be an invalid decimal", lex)
		}
	}

	if lex, err := XSDDecimal.Format(1.5); err != nil || lex != "1.5" {
		t.Fatalf("Format(1.5) = %q, %v", lex, err)
	}
	if lex, err := XSDDecimal.Format(big.NewRat(3, 2)); err != nil || lex != "1.5" {
		t.Fatalf("Format(3/2) = %q, %v", lex, err)
	}
	if lex, err := XSDDecimal.Format(big.NewRat(4, 2)); err != nil || lex != "2" {
		t.Fatalf("Format(4/2) = %q, %v", lex, err)
	}
}

func TestDoubleDatatype(t *testing.T) {
	v, err := XSDDouble.Parse("4.25")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if v.(float64) != 4.25 {
		t.Fatalf("unexpected value: %v", v)
	}

	// XSD spells infinity INF
	if v, err := XSDDouble.Parse("-INF"); err != nil || v.(float64) >= 0 {
		t.Fatalf("Parse(-INF) = %v, %v", v, err)
	}

	if lex, err := XSDDouble.Format(4.25); err != nil || lex != "4.25" {
		t.Fatalf("Format(4.25) = %q, %v", lex, err)
	}
	if _, err := XSDDouble.Format("4.25"); err == nil {
		t.Fatal("expected format error for string value")
	}

	fv, err := XSDFloat.Parse("1.5")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if fv.(float32) != 1.5 {
		t.Fatalf("unexpected float value: %v", fv)
	}
}

func TestDateTimeDatatype(t *testing.T) {
	when := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	lex, err := XSDDateTime.Format(when)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if lex != "2026-01-02T03:04:05Z" {
		t.Fatalf("unexpected lexical form: %q", lex)
	}
	v, err := XSDDateTime.Parse(lex)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !v.(time.Time).Equal(when) {
		t.Fatalf("round trip mismatch: %v", v)
	}

	if lex, err := XSDDate.Format(when); err != nil || lex != "2026-01-02" {
		t.Fatalf("date Format = %q, %v", lex, err)
	}
	if !XSDDate.IsValid("2026-01-02") || XSDDate.IsValid("yesterday") {
		t.Fatal("unexpected date validity")
	}
}

func TestStringDatatypesAcceptAnything(t *testing.T) {
	for _, dt := range []Datatype{XSDString, XSDAnyURI, RDFLangString} {
		if !dt.IsValid("") || !dt.IsValid("anything at all") {
			t.Fatalf("<%s> should accept any lexical form", dt.IRI())
		}
		v, err := dt.Parse("x")
		if err != nil || v.(string) != "x" {
			t.Fatalf("<%s> Parse = %v, %v", dt.IRI(), v, err)
		}
	}
}

func TestSameDatatype(t *testing.T) {
	if !SameDatatype(XSDString, XSDString) {
		t.Fatal("a datatype should equal itself")
	}
	if SameDatatype(XSDString, RDFLangString) {
		t.Fatal("distinct datatypes should differ")
	}
	if !SameDatatype(nil, nil) || SameDatatype(XSDString, nil) {
		t.Fatal("nil handling mismatch")
	}
	// equality is by IRI, not implementation identity
	if !SameDatatype(DefaultRegistry().SafeTypeByName(XSDIntegerIRI), XSDInteger) {
		t.Fatal("registry lookup should yield the same datatype")
	}
}

func TestRegistryLookupIsTotal(t *testing.T) {
	reg := DefaultRegistry()

	dt, ok := reg.TypeByName(XSDIntegerIRI)
	if !ok || !SameDatatype(dt, XSDInteger) {
		t.Fatalf("TypeByName(xsd:integer) = %v, %v", dt, ok)
	}

	if _, ok := reg.TypeByName("http://example.org/custom"); ok {
		t.Fatal("unregistered name should not resolve via TypeByName")
	}

	unknown := reg.SafeTypeByName("http://example.org/custom")
	if unknown == nil {
		t.Fatal("SafeTypeByName must be total")
	}
	if unknown.IRI() != "http://example.org/custom" {
		t.Fatalf("unexpected IRI: %s", unknown.IRI())
	}
	if !unknown.IsValid("anything") {
		t.Fatal("opaque datatype should accept any lexical form")
	}
}

func TestRegistryTypeByValue(t *testing.T) {
	reg := DefaultRegistry()
	mappings := []struct {
		value any
		want  Datatype
	}{
		{"s", XSDString},
		{true, XSDBoolean},
		{7, XSDInteger},
		{int64(7), XSDInteger},
		{uint8(7), XSDInteger},
		{4.2, XSDDouble},
		{float32(4.2), XSDFloat},
		{time.Time{}, XSDDateTime},
	}
	for _, tt := range mappings {
		dt, ok := reg.TypeByValue(tt.value)
		if !ok {
			t.Fatalf("TypeByValue(%T) not found", tt.value)
		}
		if !SameDatatype(dt, tt.want) {
			t.Fatalf("TypeByValue(%T) = %s, want %s", tt.value, dt.IRI(), tt.want.IRI())
		}
	}

	if _, ok := reg.TypeByValue(struct{}{}); ok {
		t.Fatal("unregistered Go type should not resolve")
	}
	if _, ok := reg.TypeByValue(nil); ok {
		t.Fatal("nil value should not resolve")
	}
}

func TestRegistryRegisterCustom(t *testing.T) {
	reg := NewTypeRegistry()
	custom := reg.SafeTypeByName("http://example.org/hex")
	reg.Register(custom)
	if dt, ok := reg.TypeByName("http://example.org/hex"); !ok || !SameDatatype(dt, custom) {
		t.Fatalf("custom datatype not resolvable: %v, %v", dt, ok)
	}
}
