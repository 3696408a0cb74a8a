package graph

// Triple is a (subject, predicate, object) statement over nodes.
type Triple struct {
	// S is the subject.
	S Node
	// P is the predicate.
	P Node
	// O is the object.
	O Node
}

// NewTriple builds a triple. All three components are required.
func NewTriple(s, p, o Node) (Triple, error) {
	if s == nil {
		return Triple{}, nilArgument("subject")
	}
	if p == nil {
		return Triple{}, nilArgument("predicate")
	}
	if o == nil {
		return Triple{}, nilArgument("object")
	}
	return Triple{S: s, P: p, O: o}, nil
}

// String returns the triple in N-Triples statement form.
func (t Triple) String() string {
	return t.S.String() + " " + t.P.String() + " " + t.O.String() + " ."
}

// Graph is the minimal read surface a GraphNode needs from a wrapped
// sub-graph. Graphs are externally owned; this package only reads them.
type Graph interface {
	// Size returns the number of triples in the graph.
	Size() int
	// Triples returns the graph's triples.
	Triples() []Triple
}

// GraphMem is a small slice-backed Graph for building formula nodes in
// memory. It keeps insertion order and performs no indexing.
type GraphMem struct {
	triples []Triple
}

// NewGraphMem returns an empty in-memory graph.
func NewGraphMem() *GraphMem { return &GraphMem{} }

// Add appends a triple to the graph.
func (g *GraphMem) Add(t Triple) { g.triples = append(g.triples, t) }

// Size returns the number of triples added.
func (g *GraphMem) Size() int { return len(g.triples) }

// Triples returns a copy of the graph's triples in insertion order.
func (g *GraphMem) Triples() []Triple {
	out := make([]Triple, len(g.triples))
	copy(out, g.triples)
	return out
}
