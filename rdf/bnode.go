package rdf

import "strconv"

// BlankNodeFactory allocates sequential blank node identifiers b1, b2, ...
// within one construction session. Identifiers are assigned in call order
// and never reused; a fresh factory restarts at b1, so identical input
// sequences always yield identical identifiers.
type BlankNodeFactory struct {
	counter int
}

// NewBlankNodeFactory returns a factory for a new construction session.
func NewBlankNodeFactory() *BlankNodeFactory {
	return &BlankNodeFactory{}
}

// Next allocates the next blank node in the session.
func (f *BlankNodeFactory) Next() BlankNode {
	f.counter++
	return BlankNode{ID: "b" + strconv.Itoa(f.counter)}
}
