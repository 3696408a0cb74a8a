package graph

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
)

// Datatype describes a literal datatype: its IRI and the mapping between
// lexical space and value space. Implementations must be immutable and safe
// for concurrent use.
type Datatype interface {
	// IRI returns the datatype IRI.
	IRI() string
	// Parse maps a lexical form into the value space.
	Parse(lexical string) (any, error)
	// Format maps a value into its lexical form. It fails when the value
	// is outside the datatype's value space.
	Format(value any) (string, error)
	// IsValid reports whether the lexical form is valid for this datatype.
	IsValid(lexical string) bool
}

// SameDatatype reports whether two datatype references denote the same
// datatype. Datatype identity is IRI identity.
func SameDatatype(a, b Datatype) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.IRI() == b.IRI()
}

// Built-in datatypes. XSDString is the implicit datatype of plain literals;
// RDFLangString is the datatype of language-tagged literals and is never
// chosen implicitly.
var (
	XSDString     Datatype = stringDatatype{iri: XSDStringIRI}
	XSDAnyURI     Datatype = stringDatatype{iri: XSDAnyURIIRI}
	RDFLangString Datatype = stringDatatype{iri: RDFLangStringIRI}
	XSDBoolean    Datatype = booleanDatatype{}
	XSDInteger    Datatype = integerDatatype{}
	XSDDecimal    Datatype = decimalDatatype{}
	XSDDouble     Datatype = doubleDatatype{iri: XSDDoubleIRI, bits: 64}
	XSDFloat      Datatype = doubleDatatype{iri: XSDFloatIRI, bits: 32}
	XSDDateTime   Datatype = timeDatatype{iri: XSDDateTimeIRI, layout: time.RFC3339}
	XSDDate       Datatype = timeDatatype{iri: XSDDateIRI, layout: "2006-01-02"}
)

// stringDatatype covers datatypes whose value space is the lexical space
// itself. It also backs the opaque datatypes returned for unregistered
// names, which accept any lexical form.
type stringDatatype struct {
	iri string
}

func (d stringDatatype) IRI() string { return d.iri }

func (d stringDatatype) Parse(lexical string) (any, error) { return lexical, nil }

func (d stringDatatype) Format(value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("value of type %T is not a string", value)
	}
	return s, nil
}

func (d stringDatatype) IsValid(string) bool { return true }

type booleanDatatype struct{}

func (booleanDatatype) IRI() string { return XSDBooleanIRI }

func (booleanDatatype) Parse(lexical string) (any, error) {
	switch lexical {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return nil, fmt.Errorf("invalid boolean lexical form %q", lexical)
}

func (booleanDatatype) Format(value any) (string, error) {
	b, ok := value.(bool)
	if !ok {
		return "", fmt.Errorf("value of type %T is not a bool", value)
	}
	return strconv.FormatBool(b), nil
}

func (d booleanDatatype) IsValid(lexical string) bool {
	_, err := d.Parse(lexical)
	return err == nil
}

type integerDatatype struct{}

func (integerDatatype) IRI() string { return XSDIntegerIRI }

func (integerDatatype) Parse(lexical string) (any, error) {
	i, ok := new(big.Int).SetString(lexical, 10)
	if !ok {
		return nil, fmt.Errorf("invalid integer lexical form %q", lexical)
	}
	return i, nil
}

func (integerDatatype) Format(value any) (string, error) {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case *big.Int:
		if v == nil {
			return "", fmt.Errorf("nil *big.Int")
		}
		return v.String(), nil
	}
	return "", fmt.Errorf("value of type %T is not an integer", value)
}

func (d integerDatatype) IsValid(lexical string) bool {
	_, err := d.Parse(lexical)
	return err == nil
}

type decimalDatatype struct{}

func (decimalDatatype) IRI() string { return XSDDecimalIRI }

func (decimalDatatype) Parse(lexical string) (any, error) {
	// big.Rat.SetString accepts fractions and exponents; xsd:decimal does not.
	if !isDecimalLexical(lexical) {
		return nil, fmt.Errorf("invalid decimal lexical form %q", lexical)
	}
	r, ok := new(big.Rat).SetString(lexical)
	if !ok {
		return nil, fmt.Errorf("invalid decimal lexical form %q", lexical)
	}
	return r, nil
}

func (decimalDatatype) Format(value any) (string, error) {
	switch v := value.(type) {
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case *big.Rat:
		if v == nil {
			return "", fmt.Errorf("nil *big.Rat")
		}
		if v.IsInt() {
			return v.Num().String(), nil
		}
		return trimTrailingZeros(v.FloatString(32)), nil
	}
	return "", fmt.Errorf("value of type %T is not a decimal", value)
}

func (d decimalDatatype) IsValid(lexical string) bool {
	_, err := d.Parse(lexical)
	return err == nil
}

// isDecimalLexical checks the xsd:decimal lexical grammar: an optional
// sign, digits, and at most one decimal point.
func isDecimalLexical(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	digits := 0
	points := 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			digits++
		case s[i] == '.':
			points++
		default:
			return false
		}
	}
	return digits > 0 && points <= 1
}

func trimTrailingZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// doubleDatatype covers xsd:double and xsd:float.
type doubleDatatype struct {
	iri  string
	bits int
}

func (d doubleDatatype) IRI() string { return d.iri }

func (d doubleDatatype) Parse(lexical string) (any, error) {
	switch lexical {
	case "INF":
		lexical = "+Inf"
	case "-INF":
		lexical = "-Inf"
	}
	f, err := strconv.ParseFloat(lexical, d.bits)
	if err != nil {
		return nil, fmt.Errorf("invalid floating point lexical form %q", lexical)
	}
	if d.bits == 32 {
		return float32(f), nil
	}
	return f, nil
}

func (d doubleDatatype) Format(value any) (string, error) {
	switch v := value.(type) {
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	}
	return "", fmt.Errorf("value of type %T is not a floating point number", value)
}

func (d doubleDatatype) IsValid(lexical string) bool {
	_, err := d.Parse(lexical)
	return err == nil
}

// timeDatatype covers xsd:dateTime and xsd:date via a fixed layout.
type timeDatatype struct {
	iri    string
	layout string
}

func (d timeDatatype) IRI() string { return d.iri }

func (d timeDatatype) Parse(lexical string) (any, error) {
	t, err := time.Parse(d.layout, lexical)
	if err != nil {
		return nil, fmt.Errorf("invalid lexical form %q for <%s>", lexical, d.iri)
	}
	return t, nil
}

func (d timeDatatype) Format(value any) (string, error) {
	t, ok := value.(time.Time)
	if !ok {
		return "", fmt.Errorf("value of type %T is not a time.Time", value)
	}
	return t.Format(d.layout), nil
}

func (d timeDatatype) IsValid(lexical string) bool {
	_, err := d.Parse(lexical)
	return err == nil
}
