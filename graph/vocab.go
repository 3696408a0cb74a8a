package graph

// Namespace IRIs for the vocabularies used by the built-in datatypes.
const (
	// NSXSD is the XML Schema datatypes namespace.
	NSXSD = "http://www.w3.org/2001/XMLSchema#"
	// NSRDF is the RDF Concepts vocabulary namespace.
	NSRDF = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
)

// Datatype IRIs.
const (
	XSDStringIRI   = NSXSD + "string"
	XSDBooleanIRI  = NSXSD + "boolean"
	XSDIntegerIRI  = NSXSD + "integer"
	XSDDecimalIRI  = NSXSD + "decimal"
	XSDDoubleIRI   = NSXSD + "double"
	XSDFloatIRI    = NSXSD + "float"
	XSDDateTimeIRI = NSXSD + "dateTime"
	XSDDateIRI     = NSXSD + "date"
	XSDAnyURIIRI   = NSXSD + "anyURI"

	// RDFLangStringIRI is the datatype of language-tagged string values.
	RDFLangStringIRI = NSRDF + "langString"
)
