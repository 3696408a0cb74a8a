package graph

import "fmt"

// LiteralLabel is the (lexical form, language, datatype) tuple carried by a
// literal node. A label with a language always has the rdf:langString
// datatype; a label without one never does. Labels are built by the factory
// and immutable afterwards.
type LiteralLabel struct {
	// Lexical is the lexical form.
	Lexical string
	// Lang is the language tag, "" when absent.
	Lang string
	// Datatype is the literal's datatype. Never nil on a factory-built label.
	Datatype Datatype
}

// String returns the N-Triples form of the label.
func (l LiteralLabel) String() string { return renderLiteralLabel(l) }

// Value maps the lexical form into the datatype's value space. Labels with
// an unknown datatype yield the lexical form itself.
func (l LiteralLabel) Value() (any, error) {
	dt := l.Datatype
	if dt == nil {
		dt = XSDString
	}
	v, err := dt.Parse(l.Lexical)
	if err != nil {
		return nil, &DatatypeError{Datatype: dt.IRI(), Value: l.Lexical, Err: err}
	}
	return v, nil
}

// newLiteralLabel builds a label from a lexical form without validating the
// form against the datatype; lexical validity is the datatype's concern and
// checked only on value access.
func newLiteralLabel(lexical, lang string, dt Datatype) LiteralLabel {
	return LiteralLabel{Lexical: lexical, Lang: lang, Datatype: dt}
}

// literalLabelByValue builds a label from a Go value. A string value is
// taken as a lexical form. For other values the datatype, when not
// supplied, is resolved from the registry by the value's dynamic type, and
// the lexical form is derived through the datatype's value mapping.
func literalLabelByValue(value any, dt Datatype, reg *TypeRegistry) (LiteralLabel, error) {
	if s, ok := value.(string); ok {
		if dt == nil {
			dt = XSDString
		}
		return newLiteralLabel(s, "", dt), nil
	}

	if dt == nil {
		var ok bool
		dt, ok = reg.TypeByValue(value)
		if !ok {
			return LiteralLabel{}, &DatatypeError{
				Value: value,
				Err:   fmt.Errorf("no datatype registered for Go type %T", value),
			}
		}
	}

	lexical, err := dt.Format(value)
	if err != nil {
		return LiteralLabel{}, &DatatypeError{Datatype: dt.IRI(), Value: value, Err: err}
	}
	return newLiteralLabel(lexical, "", dt), nil
}
