package rdf

// CollectionEncoder turns collection values into triples in a target
// graph. Each encoder owns one blank node session: the first list or
// container it encodes gets b1, and identifiers grow sequentially from
// there. Create a new encoder per construction session to restart at b1.
//
// Elements are coerced with AsTerm, so mixed collections of terms and
// plain Go values are accepted.
type CollectionEncoder struct {
	graph  Graph
	bnodes *BlankNodeFactory
}

// NewCollectionEncoder returns an encoder targeting g with a fresh blank
// node session.
func NewCollectionEncoder(g Graph) *CollectionEncoder {
	return &CollectionEncoder{graph: g, bnodes: NewBlankNodeFactory()}
}

// Triple emits a single subject-predicate-value triple.
func (e *CollectionEncoder) Triple(subject Term, predicate IRI, value interface{}) error {
	object, err := AsTerm(value)
	if err != nil {
		return err
	}
	t, err := NewTriple(subject, predicate, object)
	if err != nil {
		return err
	}
	return e.graph.AddTriple(t)
}

// Values emits one triple per element with a fixed subject and predicate.
// No blank nodes are allocated and no ordering survives beyond the graph's
// set semantics.
func (e *CollectionEncoder) Values(subject Term, predicate IRI, values ...interface{}) error {
	for _, value := range values {
		if err := e.Triple(subject, predicate, value); err != nil {
			return err
		}
	}
	return nil
}

// List emits the elements as an RDF List. An empty list links the subject
// directly to rdf:nil without allocating blank nodes; otherwise one blank
// node per element carries rdf:first and rdf:rest, terminated by rdf:nil.
func (e *CollectionEncoder) List(subject Term, predicate IRI, values ...interface{}) error {
	if len(values) == 0 {
		return e.Triple(subject, predicate, RDFNil)
	}

	nodes := make([]BlankNode, len(values))
	for i := range values {
		nodes[i] = e.bnodes.Next()
	}
	if err := e.Triple(subject, predicate, nodes[0]); err != nil {
		return err
	}
	for i, value := range values {
		if err := e.Triple(nodes[i], RDFFirst, value); err != nil {
			return err
		}
		var rest Term = RDFNil
		if i < len(values)-1 {
			rest = nodes[i+1]
		}
		if err := e.Triple(nodes[i], RDFRest, rest); err != nil {
			return err
		}
	}
	return nil
}

// Bag emits the elements as an rdf:Bag container.
func (e *CollectionEncoder) Bag(subject Term, predicate IRI, values ...interface{}) error {
	return e.container(RDFBag, subject, predicate, values)
}

// Seq emits the elements as an rdf:Seq container.
func (e *CollectionEncoder) Seq(subject Term, predicate IRI, values ...interface{}) error {
	return e.container(RDFSeq, subject, predicate, values)
}

// Alt emits the elements as an rdf:Alt container.
func (e *CollectionEncoder) Alt(subject Term, predicate IRI, values ...interface{}) error {
	return e.container(RDFAlt, subject, predicate, values)
}

// container allocates exactly one blank node, types it (even for an empty
// element list) and emits gap-free 1-based rdf:_n membership triples in
// element order.
func (e *CollectionEncoder) container(kind IRI, subject Term, predicate IRI, values []interface{}) error {
	node := e.bnodes.Next()
	if err := e.Triple(subject, predicate, node); err != nil {
		return err
	}
	if err := e.Triple(node, RDFType, kind); err != nil {
		return err
	}
	for i, value := range values {
		if err := e.Triple(node, ContainerMembership(i+1), value); err != nil {
			return err
		}
	}
	return nil
}
