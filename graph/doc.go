// Package graph provides construction and validation of RDF graph nodes.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// It focuses on a small, strongly-typed node model with a factory surface
// that enforces the RDF 1.1 literal rules at construction time:
//   - NewURI, NewVariable, NewMarker: plain wrapper nodes.
//   - NewBlankNode, NewBlankNodeID: blank nodes with fresh or supplied ids.
//   - NewLiteral, NewLiteralLang, NewLiteralTyped, NewLiteralFull: literals
//     from a lexical form, with the language/datatype consistency rules
//     applied before any node is built.
//   - NewLiteralByValue, NewLiteralByValueTyped: literals derived from a Go
//     value through the datatype registry.
//   - NewTripleNode, NewGraphNode: RDF-star quoted triples and N3-style
//     formula nodes.
//
// Node is a closed sum over the seven variants; kind-specific behavior is
// written as an exhaustive type switch, so adding a variant is a compile-time
// event rather than a runtime surprise.
//
// A language-tagged literal always carries the rdf:langString datatype; a
// literal without a language tag never does. Constructors that would violate
// this return ErrDatatypeConflict instead of building a node. An empty
// language tag is normalized to "no language" in every constructor.
//
// Example (building a language-tagged literal):
//
//	n, err := graph.NewLiteralFull("chat", "fr", nil)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(n) // "chat"@fr
//
// Datatypes are resolved through a TypeRegistry. Lookup is total:
// SafeTypeByName returns a usable opaque datatype for unregistered names
// rather than failing. The default registry covers the common XSD types and
// maps Go values to them for by-value construction.
//
// Fresh blank-node ids come from an IDGenerator. The default draws random
// UUIDs and is safe for concurrent callers; SequenceIDGenerator provides a
// deterministic alternative for tests and reproducible pipelines.
//
// All nodes are immutable once constructed and may be shared freely across
// goroutines.
package graph
