// Package rdf provides an embeddable RDF data engine: a typed term model,
// in-memory graphs grouped into repositories, dataset federation across
// repositories, and structural encoding of ordinary collections into RDF
// Lists and RDF Containers.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// Author: Stephane Fellah (stephanef@geoknoesis.com)
// Geosemantic-AI expert with 30 years of experience
//
// The engine is organized bottom-up:
//   - Terms: IRI, BlankNode, Literal and the RDF-star TripleTerm are
//     comparable value types; Triple composes them.
//   - Graph: a set-semantics container of triples. NewGraph returns the
//     in-memory implementation; unions and provenance wrappers implement
//     the same interface.
//   - Repository: one default graph plus named graphs, with query methods
//     delegated to an injected QueryEngine.
//   - Dataset: composes graphs (possibly from several repositories) into a
//     single queryable view. When every member can be traced to one
//     repository the dataset rewrites queries with FROM/FROM NAMED clauses
//     instead of materializing a union.
//   - CollectionEncoder: emits collection values as individual triples, an
//     rdf:first/rdf:rest list chain, or an rdf:Bag/rdf:Seq/rdf:Alt
//     container, with deterministic blank node identifiers b1, b2, ...
//
// Example (building and querying a dataset):
//
//	repo := rdf.NewRepository(rdf.OptQueryEngine(engine))
//	_, err := repo.CreateGraph(rdf.IRI{Value: "http://example.org/g1"})
//	if err != nil {
//	    // handle error
//	}
//	ref, _, err := repo.GraphRefFor(rdf.IRI{Value: "http://example.org/g1"})
//	if err != nil {
//	    // handle error
//	}
//	ds, err := rdf.NewDataset([]rdf.Graph{ref}, nil)
//	if err != nil {
//	    // handle error
//	}
//	bindings, err := ds.Select("SELECT * WHERE { ?s ?p ?o }")
//
// The package never parses SPARQL. Query text is opaque: the dataset only
// prepends dataset clauses, and everything else is the QueryEngine's job.
//
// Graphs and repositories are not safe for concurrent mutation; callers
// that share them across goroutines must synchronize externally.
// Transactions are scoping blocks only: they provide no isolation and no
// rollback, and an error mid-block leaves applied writes in place.
package rdf
