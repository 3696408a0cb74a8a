package graph

import "fmt"

// NodeFactory builds nodes from raw inputs, enforcing the literal
// well-formedness rules before any node exists. It holds no mutable state;
// every operation is a pure function of its arguments, the id generator and
// the type registry.
type NodeFactory struct {
	ids   IDGenerator
	types *TypeRegistry
}

// FactoryOption configures a NodeFactory.
type FactoryOption func(*NodeFactory)

// WithIDGenerator sets the fresh blank node id source.
func WithIDGenerator(g IDGenerator) FactoryOption {
	return func(f *NodeFactory) { f.ids = g }
}

// WithTypeRegistry sets the datatype registry.
func WithTypeRegistry(r *TypeRegistry) FactoryOption {
	return func(f *NodeFactory) { f.types = r }
}

// NewNodeFactory returns a factory drawing fresh ids from a UUIDGenerator
// and datatypes from the default registry unless configured otherwise.
func NewNodeFactory(opts ...FactoryOption) *NodeFactory {
	f := &NodeFactory{ids: UUIDGenerator{}, types: DefaultRegistry()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Registry returns the factory's datatype registry.
func (f *NodeFactory) Registry() *TypeRegistry { return f.types }

// BlankNode returns a blank node with a fresh globally-unique id.
func (f *NodeFactory) BlankNode() Node {
	return BlankNode{ID: f.ids.FreshID()}
}

// BlankNodeID returns a blank node with the supplied id, taken verbatim.
// Uniqueness of supplied ids is the caller's responsibility.
func (f *NodeFactory) BlankNodeID(id string) (Node, error) {
	if id == "" {
		return nil, nilArgument("blank node id")
	}
	return BlankNode{ID: id}, nil
}

// URI returns a URI node. No URI syntax validation is performed; that is
// deferred to consumers.
func (f *NodeFactory) URI(uri string) (Node, error) {
	if uri == "" {
		return nil, nilArgument("uri")
	}
	return URI{Value: uri}, nil
}

// Variable returns a variable node. Names are not required to be unique.
func (f *NodeFactory) Variable(name string) (Node, error) {
	if name == "" {
		return nil, nilArgument("variable name")
	}
	return Variable{Name: name}, nil
}

// Marker returns an extension marker node.
func (f *NodeFactory) Marker(name string) (Node, error) {
	if name == "" {
		return nil, nilArgument("marker name")
	}
	return Marker{Name: name}, nil
}

// Literal returns a plain string literal with the implicit xsd:string
// datatype.
func (f *NodeFactory) Literal(lexical string) Node {
	return Literal{Label: newLiteralLabel(lexical, "", XSDString)}
}

// LiteralLang returns a language-tagged literal with the rdf:langString
// datatype. An empty language tag is treated as absent, yielding a plain
// string literal.
func (f *NodeFactory) LiteralLang(lexical, lang string) Node {
	if lang == "" {
		return f.Literal(lexical)
	}
	return Literal{Label: newLiteralLabel(lexical, lang, RDFLangString)}
}

// LiteralTyped returns a typed literal. A nil datatype falls back to
// xsd:string. The lexical form is not validated against the datatype here;
// value-space access reports invalid forms.
func (f *NodeFactory) LiteralTyped(lexical string, dt Datatype) Node {
	if dt == nil {
		dt = XSDString
	}
	return Literal{Label: newLiteralLabel(lexical, "", dt)}
}

// literalShape is the outcome of the (language, datatype) decision for a
// literal: one of the three well-formed shapes or a conflict.
type literalShape uint8

const (
	shapePlain literalShape = iota
	shapeLang
	shapeTyped
	shapeConflictDatatypeWithLang
	shapeConflictLangStringWithoutLang
)

// literalShapeKey captures the three inputs the decision depends on.
// isLangString is whether the supplied datatype is rdf:langString; it is
// only meaningful when hasDatatype is true.
type literalShapeKey struct {
	hasLang      bool
	hasDatatype  bool
	isLangString bool
}

// literalShapeTable is the full decision table for literal construction.
// Language presence is decided first: a non-empty language always selects
// between the language-tagged shape and the datatype conflict; only without
// a language can a datatype select the typed shape. The two keys with
// hasDatatype=false, isLangString=true are unreachable.
var literalShapeTable = map[literalShapeKey]literalShape{
	{hasLang: false, hasDatatype: false, isLangString: false}: shapePlain,
	{hasLang: false, hasDatatype: true, isLangString: false}:  shapeTyped,
	{hasLang: false, hasDatatype: true, isLangString: true}:   shapeConflictLangStringWithoutLang,
	{hasLang: true, hasDatatype: false, isLangString: false}:  shapeLang,
	{hasLang: true, hasDatatype: true, isLangString: false}:   shapeConflictDatatypeWithLang,
	{hasLang: true, hasDatatype: true, isLangString: true}:    shapeLang,
}

// LiteralFull builds a literal from a lexical form, an optional language
// tag and an optional datatype, normalizing the combination into one of the
// three well-formed literal shapes. An empty language tag is treated as
// absent. A language-tagged literal's datatype must be rdf:langString;
// rdf:langString without a language is rejected.
func (f *NodeFactory) LiteralFull(lexical, lang string, dt Datatype) (Node, error) {
	key := literalShapeKey{
		hasLang:      lang != "",
		hasDatatype:  dt != nil,
		isLangString: dt != nil && SameDatatype(dt, RDFLangString),
	}
	switch literalShapeTable[key] {
	case shapeLang:
		return f.LiteralLang(lexical, lang), nil
	case shapeTyped:
		return f.LiteralTyped(lexical, dt), nil
	case shapeConflictDatatypeWithLang:
		return nil, fmt.Errorf("%w: datatype <%s> is not rdf:langString but a language was given", ErrDatatypeConflict, dt.IRI())
	case shapeConflictLangStringWithoutLang:
		return nil, fmt.Errorf("%w: datatype is rdf:langString but no language was given", ErrDatatypeConflict)
	default:
		return f.Literal(lexical), nil
	}
}

// LiteralByValue builds a literal from a Go value, resolving the datatype
// from the registry by the value's dynamic type. A string value is taken as
// a lexical form for xsd:string.
func (f *NodeFactory) LiteralByValue(value any) (Node, error) {
	return f.LiteralByValueTyped(value, nil)
}

// LiteralByValueTyped builds a literal from a Go value under the given
// datatype, deriving the lexical form through the datatype's value mapping.
// A nil datatype is resolved as in LiteralByValue. Values outside the
// datatype's value space yield a DatatypeError.
func (f *NodeFactory) LiteralByValueTyped(value any, dt Datatype) (Node, error) {
	if value == nil {
		return nil, nilArgument("value")
	}
	label, err := literalLabelByValue(value, dt, f.types)
	if err != nil {
		return nil, err
	}
	return Literal{Label: label}, nil
}

// TripleNode builds an RDF-star quoted triple node from its components.
func (f *NodeFactory) TripleNode(s, p, o Node) (Node, error) {
	t, err := NewTriple(s, p, o)
	if err != nil {
		return nil, err
	}
	return TripleNode{Triple: t}, nil
}

// TripleNodeFromTriple wraps an already-built triple as a node.
func (f *NodeFactory) TripleNodeFromTriple(t Triple) Node {
	return TripleNode{Triple: t}
}

// GraphNode wraps a graph as a formula node.
func (f *NodeFactory) GraphNode(g Graph) (Node, error) {
	if g == nil {
		return nil, nilArgument("graph")
	}
	return GraphNode{Graph: g}, nil
}

// defaultFactory backs the package-level constructors.
var defaultFactory = NewNodeFactory()

// NewBlankNode returns a blank node with a fresh globally-unique id.
func NewBlankNode() Node { return defaultFactory.BlankNode() }

// NewBlankNodeID returns a blank node with the supplied id.
func NewBlankNodeID(id string) (Node, error) { return defaultFactory.BlankNodeID(id) }

// NewURI returns a URI node.
func NewURI(uri string) (Node, error) { return defaultFactory.URI(uri) }

// NewVariable returns a variable node.
func NewVariable(name string) (Node, error) { return defaultFactory.Variable(name) }

// NewMarker returns an extension marker node.
func NewMarker(name string) (Node, error) { return defaultFactory.Marker(name) }

// NewLiteral returns a plain string literal.
func NewLiteral(lexical string) Node { return defaultFactory.Literal(lexical) }

// NewLiteralLang returns a language-tagged literal; an empty language tag
// yields a plain string literal.
func NewLiteralLang(lexical, lang string) Node { return defaultFactory.LiteralLang(lexical, lang) }

// NewLiteralTyped returns a typed literal; a nil datatype falls back to
// xsd:string.
func NewLiteralTyped(lexical string, dt Datatype) Node {
	return defaultFactory.LiteralTyped(lexical, dt)
}

// NewLiteralFull builds a literal from lexical form, optional language and
// optional datatype. See NodeFactory.LiteralFull.
func NewLiteralFull(lexical, lang string, dt Datatype) (Node, error) {
	return defaultFactory.LiteralFull(lexical, lang, dt)
}

// NewLiteralByValue builds a literal from a Go value.
func NewLiteralByValue(value any) (Node, error) { return defaultFactory.LiteralByValue(value) }

// NewLiteralByValueTyped builds a literal from a Go value under a datatype.
func NewLiteralByValueTyped(value any, dt Datatype) (Node, error) {
	return defaultFactory.LiteralByValueTyped(value, dt)
}

// NewTripleNode builds an RDF-star quoted triple node.
func NewTripleNode(s, p, o Node) (Node, error) { return defaultFactory.TripleNode(s, p, o) }

// NewTripleNodeFromTriple wraps a triple as a node.
func NewTripleNodeFromTriple(t Triple) Node { return defaultFactory.TripleNodeFromTriple(t) }

// NewGraphNode wraps a graph as a formula node.
func NewGraphNode(g Graph) (Node, error) { return defaultFactory.GraphNode(g) }
