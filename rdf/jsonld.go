package rdf

import (
	"fmt"
	"strings"

	ld "github.com/piprate/json-gold/ld"
)

// JSON-LD bridge for graphs, built on github.com/piprate/json-gold. The
// graph content travels through the processor as N-Quads, which keeps this
// file independent of json-gold's internal node construction.

// EncodeJSONLD converts the triples of a graph into an expanded JSON-LD
// document. Quoted-triple terms have no JSON-LD representation and fail
// with ErrUnsupportedValue.
func EncodeJSONLD(g Graph) (interface{}, error) {
	triples, err := g.Triples()
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	for _, t := range triples {
		if containsTripleTerm(t) {
			return nil, fmt.Errorf("%w: quoted triple in JSON-LD export", ErrUnsupportedValue)
		}
		b.WriteString(renderTriplePattern(t))
		b.WriteString(" .\n")
	}
	proc := ld.NewJsonLdProcessor()
	opts := ld.NewJsonLdOptions("")
	opts.Format = "application/n-quads"
	return proc.FromRDF(b.String(), opts)
}

// DecodeJSONLD converts a JSON-LD document to RDF and adds its
// default-graph statements to g. Named graph content in the document is
// ignored; this engine assigns graph names through repositories, not
// through serializations.
func DecodeJSONLD(doc interface{}, g Graph) error {
	proc := ld.NewJsonLdProcessor()
	opts := ld.NewJsonLdOptions("")
	result, err := proc.ToRDF(doc, opts)
	if err != nil {
		return err
	}
	dataset, ok := result.(*ld.RDFDataset)
	if !ok {
		return fmt.Errorf("jsonld: unexpected ToRDF result %T", result)
	}
	for _, quad := range dataset.Graphs["@default"] {
		if quad == nil {
			continue
		}
		subject, err := termFromLDNode(quad.Subject)
		if err != nil {
			return err
		}
		predicateTerm, err := termFromLDNode(quad.Predicate)
		if err != nil {
			return err
		}
		predicate, ok := predicateTerm.(IRI)
		if !ok {
			return fmt.Errorf("%w: predicate %s", ErrMalformedTriple, predicateTerm.String())
		}
		object, err := termFromLDNode(quad.Object)
		if err != nil {
			return err
		}
		t, err := NewTriple(subject, predicate, object)
		if err != nil {
			return err
		}
		if err := g.AddTriple(t); err != nil {
			return err
		}
	}
	return nil
}

func containsTripleTerm(t Triple) bool {
	_, s := t.S.(TripleTerm)
	_, o := t.O.(TripleTerm)
	return s || o
}

// termFromLDNode maps a json-gold node to a term. json-gold hands out both
// value and pointer nodes depending on the code path, so both are handled.
func termFromLDNode(node ld.Node) (Term, error) {
	switch n := node.(type) {
	case *ld.IRI:
		return IRI{Value: n.Value}, nil
	case ld.IRI:
		return IRI{Value: n.Value}, nil
	case *ld.BlankNode:
		return NewBlankNode(strings.TrimPrefix(n.Attribute, "_:"))
	case ld.BlankNode:
		return NewBlankNode(strings.TrimPrefix(n.Attribute, "_:"))
	case *ld.Literal:
		return literalFromLD(n.Value, n.Datatype, n.Language), nil
	case ld.Literal:
		return literalFromLD(n.Value, n.Datatype, n.Language), nil
	default:
		return nil, fmt.Errorf("%w: JSON-LD node %T", ErrUnsupportedValue, node)
	}
}

func literalFromLD(value, datatype, language string) Literal {
	if language != "" {
		return Literal{Lexical: value, Datatype: RDFLangString, Lang: language}
	}
	if datatype == "" || datatype == XSDString.Value {
		return NewLiteral(value)
	}
	return Literal{Lexical: value, Datatype: IRI{Value: datatype}}
}
