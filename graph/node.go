package graph

// NodeKind identifies node variants.
type NodeKind uint8

const (
	// KindURI represents a URI reference node.
	KindURI NodeKind = iota
	// KindBlank represents a blank node.
	KindBlank
	// KindVariable represents a named variable node.
	KindVariable
	// KindMarker represents an extension marker node.
	KindMarker
	// KindLiteral represents a literal node.
	KindLiteral
	// KindTriple represents an RDF-star quoted triple node.
	KindTriple
	// KindGraph represents an N3-style formula node wrapping a sub-graph.
	KindGraph
)

// Node is an immutable graph term. The set of implementations is closed:
// URI, BlankNode, Variable, Marker, Literal, TripleNode and GraphNode.
type Node interface {
	Kind() NodeKind
	String() string

	// node restricts implementations to this package.
	node()
}

// URI represents a URI reference node.
type URI struct {
	// Value is the URI reference string, absolute or relative.
	Value string
}

// Kind returns KindURI.
func (n URI) Kind() NodeKind { return KindURI }

// String returns the URI in angle brackets.
func (n URI) String() string { return "<" + n.Value + ">" }

func (URI) node() {}

// BlankNode represents a blank node.
type BlankNode struct {
	// ID is the opaque blank node identifier.
	ID string
}

// Kind returns KindBlank.
func (n BlankNode) Kind() NodeKind { return KindBlank }

// String returns the identifier prefixed with "_:".
func (n BlankNode) String() string { return "_:" + n.ID }

func (BlankNode) node() {}

// Variable represents a named variable node. Names carry no uniqueness
// requirement.
type Variable struct {
	// Name is the variable name, without any leading marker.
	Name string
}

// Kind returns KindVariable.
func (n Variable) Kind() NodeKind { return KindVariable }

// String returns the name prefixed with "?".
func (n Variable) String() string { return "?" + n.Name }

func (Variable) node() {}

// Marker represents an extension node carrying an arbitrary tag, for
// non-RDF extension points.
type Marker struct {
	// Name is the marker tag.
	Name string
}

// Kind returns KindMarker.
func (n Marker) Kind() NodeKind { return KindMarker }

// String returns the marker tag.
func (n Marker) String() string { return n.Name }

func (Marker) node() {}

// Literal represents a literal node.
type Literal struct {
	// Label is the (lexical form, language, datatype) tuple.
	Label LiteralLabel
}

// Kind returns KindLiteral.
func (n Literal) Kind() NodeKind { return KindLiteral }

// String returns the N-Triples form of the literal.
func (n Literal) String() string { return n.Label.String() }

func (Literal) node() {}

// TripleNode is an RDF-star quoted triple node.
type TripleNode struct {
	// Triple is the quoted triple.
	Triple Triple
}

// Kind returns KindTriple.
func (n TripleNode) Kind() NodeKind { return KindTriple }

// String returns the quoted triple in double angle brackets.
func (n TripleNode) String() string {
	return "<<" + n.Triple.S.String() + " " + n.Triple.P.String() + " " + n.Triple.O.String() + ">>"
}

func (TripleNode) node() {}

// GraphNode wraps a sub-graph as a single node. This is an N3 formula
// node, not a named-graph reference. The wrapped graph is shared and
// externally owned.
type GraphNode struct {
	// Graph is the wrapped sub-graph.
	Graph Graph
}

// Kind returns KindGraph.
func (n GraphNode) Kind() NodeKind { return KindGraph }

// String returns the formula in braces, one statement per triple.
func (n GraphNode) String() string {
	if n.Graph == nil {
		return "{}"
	}
	triples := n.Graph.Triples()
	if len(triples) == 0 {
		return "{}"
	}
	s := "{ "
	for _, t := range triples {
		s += t.String() + " "
	}
	return s + "}"
}

func (GraphNode) node() {}
