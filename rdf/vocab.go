package rdf

import "strconv"

// Namespace prefixes for the W3C vocabularies used by the engine.
//
// References:
// - RDF: https://www.w3.org/TR/rdf12-concepts/
// - XSD: https://www.w3.org/TR/xmlschema11-2/
const (
	// RDFNamespace is the RDF syntax namespace.
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	// XSDNamespace is the XML Schema datatypes namespace.
	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"
)

// RDF vocabulary terms.
var (
	// RDFType relates a resource to its class.
	RDFType = IRI{Value: RDFNamespace + "type"}
	// RDFFirst holds the first element of a list node.
	RDFFirst = IRI{Value: RDFNamespace + "first"}
	// RDFRest links a list node to the remainder of the list.
	RDFRest = IRI{Value: RDFNamespace + "rest"}
	// RDFNil terminates an RDF List.
	RDFNil = IRI{Value: RDFNamespace + "nil"}
	// RDFBag is the unordered container class.
	RDFBag = IRI{Value: RDFNamespace + "Bag"}
	// RDFSeq is the ordered container class.
	RDFSeq = IRI{Value: RDFNamespace + "Seq"}
	// RDFAlt is the alternatives container class.
	RDFAlt = IRI{Value: RDFNamespace + "Alt"}
	// RDFLangString is the datatype of language-tagged literals.
	RDFLangString = IRI{Value: RDFNamespace + "langString"}
)

// XSD datatypes used by literal coercion.
var (
	XSDString       = IRI{Value: XSDNamespace + "string"}
	XSDBoolean      = IRI{Value: XSDNamespace + "boolean"}
	XSDInteger      = IRI{Value: XSDNamespace + "integer"}
	XSDDecimal      = IRI{Value: XSDNamespace + "decimal"}
	XSDFloat        = IRI{Value: XSDNamespace + "float"}
	XSDDouble       = IRI{Value: XSDNamespace + "double"}
	XSDDateTime     = IRI{Value: XSDNamespace + "dateTime"}
	XSDDuration     = IRI{Value: XSDNamespace + "duration"}
	XSDBase64Binary = IRI{Value: XSDNamespace + "base64Binary"}
)

// ContainerMembership returns the rdf:_n membership property for a 1-based
// index.
func ContainerMembership(n int) IRI {
	return IRI{Value: RDFNamespace + "_" + strconv.Itoa(n)}
}
