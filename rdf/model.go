package rdf

import (
	"fmt"
	"strings"
)

// TermKind identifies RDF term types.
type TermKind uint8

const (
	// TermIRI represents an IRI term.
	TermIRI TermKind = iota
	// TermBlankNode represents a blank node term.
	TermBlankNode
	// TermLiteral represents a literal term.
	TermLiteral
	// TermTriple represents an RDF-star triple term.
	TermTriple
)

// Term is a value that can appear in RDF statements.
// All implementations are comparable value structs, so two terms are equal
// exactly when == reports true.
type Term interface {
	Kind() TermKind
	String() string
}

// IRI represents an RDF IRI.
type IRI struct {
	// Value is the IRI string value.
	Value string
}

// NewIRI validates and returns an IRI term.
// The value must be non-blank after trimming; syntax beyond that is not
// validated.
func NewIRI(value string) (IRI, error) {
	if strings.TrimSpace(value) == "" {
		return IRI{}, ErrEmptyIRI
	}
	return IRI{Value: value}, nil
}

// Kind returns TermIRI.
func (i IRI) Kind() TermKind { return TermIRI }

// String returns the IRI value.
func (i IRI) String() string { return i.Value }

// BlankNode represents an RDF blank node.
type BlankNode struct {
	// ID is the blank node identifier.
	ID string
}

// NewBlankNode validates and returns a blank node term.
// The identifier must be non-blank after trimming.
func NewBlankNode(id string) (BlankNode, error) {
	if strings.TrimSpace(id) == "" {
		return BlankNode{}, ErrBlankNodeID
	}
	return BlankNode{ID: id}, nil
}

// Kind returns TermBlankNode.
func (b BlankNode) Kind() TermKind { return TermBlankNode }

// String returns the blank node identifier prefixed with "_:".
func (b BlankNode) String() string { return "_:" + b.ID }

// Literal represents an RDF literal.
//
// Use NewLiteral, NewLangLiteral and NewTypedLiteral to get canonical
// datatypes and lexical forms; literals built directly from the struct are
// compared field by field, exactly as written.
type Literal struct {
	// Lexical is the lexical form of the literal.
	Lexical string
	// Datatype is the datatype IRI, if any.
	Datatype IRI
	// Lang is the language tag, if any.
	Lang string
}

// Kind returns TermLiteral.
func (l Literal) Kind() TermKind { return TermLiteral }

// String returns a string representation of the literal.
func (l Literal) String() string {
	if l.Lang != "" {
		return fmt.Sprintf("%q@%s", l.Lexical, l.Lang)
	}
	if l.Datatype.Value != "" {
		return fmt.Sprintf("%q^^<%s>", l.Lexical, l.Datatype.Value)
	}
	return fmt.Sprintf("%q", l.Lexical)
}

// TripleTerm is an RDF-star quoted triple term, usable as a subject or
// object.
type TripleTerm struct {
	// S is the subject of the quoted triple.
	S Term
	// P is the predicate of the quoted triple.
	P IRI
	// O is the object of the quoted triple.
	O Term
}

// Kind returns TermTriple.
func (t TripleTerm) Kind() TermKind { return TermTriple }

// String returns a string representation of the triple term.
func (t TripleTerm) String() string {
	return fmt.Sprintf("<<%s %s %s>>", t.S.String(), t.P.String(), t.O.String())
}

// Triple is an RDF triple. It is an immutable, comparable value: triples
// compare by structural equality and may be used as map keys.
type Triple struct {
	// S is the subject.
	S Term
	// P is the predicate.
	P IRI
	// O is the object.
	O Term
}

// NewTriple validates and returns a triple.
// The subject must be an IRI, blank node or quoted triple; the predicate
// must be a non-empty IRI; the object may be any term.
func NewTriple(subject Term, predicate IRI, object Term) (Triple, error) {
	switch subject.(type) {
	case IRI, BlankNode, TripleTerm:
	default:
		return Triple{}, fmt.Errorf("%w: subject %T", ErrMalformedTriple, subject)
	}
	if strings.TrimSpace(predicate.Value) == "" {
		return Triple{}, fmt.Errorf("%w: empty predicate", ErrMalformedTriple)
	}
	if object == nil {
		return Triple{}, fmt.Errorf("%w: nil object", ErrMalformedTriple)
	}
	return Triple{S: subject, P: predicate, O: object}, nil
}

// String returns an N-Triples style representation of the triple.
func (t Triple) String() string {
	return renderTerm(t.S) + " " + renderIRI(t.P) + " " + renderTerm(t.O) + " ."
}
