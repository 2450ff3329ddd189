package rdf

import (
	"errors"
	"testing"
)

func TestUnionGraphDeduplicates(t *testing.T) {
	g1 := NewGraph()
	g2 := NewGraph()
	shared := testTriple("shared")
	g1.AddTriples(shared, testTriple("1"))
	g2.AddTriples(shared, testTriple("2"))

	union := NewUnionGraph(g1, g2)
	triples, err := union.Triples()
	if err != nil {
		t.Fatalf("triples: %v", err)
	}
	if len(triples) != 3 {
		t.Fatalf("expected deduplicated union of 3, got %d", len(triples))
	}
	if size, _ := union.Size(); size != 3 {
		t.Fatalf("unexpected size: %d", size)
	}
}

func TestUnionGraphHasTriple(t *testing.T) {
	g1 := NewGraph()
	g2 := NewGraph()
	g2.AddTriple(testTriple("2"))

	union := NewUnionGraph(g1, g2)
	if ok, _ := union.HasTriple(testTriple("2")); !ok {
		t.Fatalf("membership must check every source graph")
	}
	if ok, _ := union.HasTriple(testTriple("9")); ok {
		t.Fatalf("unexpected membership")
	}
}

func TestUnionGraphDoesNotCache(t *testing.T) {
	g := NewGraph()
	union := NewUnionGraph(g)
	if size, _ := union.Size(); size != 0 {
		t.Fatalf("unexpected initial size")
	}
	g.AddTriple(testTriple("1"))
	if size, _ := union.Size(); size != 1 {
		t.Fatalf("union must reflect live member state")
	}
}

func TestUnionGraphIsReadOnly(t *testing.T) {
	union := NewUnionGraph(NewGraph())
	if err := union.AddTriple(testTriple("1")); !errors.Is(err, ErrReadOnlyGraph) {
		t.Fatalf("expected ErrReadOnlyGraph, got %v", err)
	}
	if _, err := union.RemoveTriple(testTriple("1")); !errors.Is(err, ErrReadOnlyGraph) {
		t.Fatalf("expected ErrReadOnlyGraph, got %v", err)
	}
	if _, err := union.Clear(); !errors.Is(err, ErrReadOnlyGraph) {
		t.Fatalf("expected ErrReadOnlyGraph, got %v", err)
	}
}

func TestOptimizedUnionHasTripleQueryText(t *testing.T) {
	engine := &stubEngine{askValue: true}
	repo := NewRepository(OptQueryEngine(engine))
	g1 := graphName(1)
	g2 := graphName(2)
	union := NewOptimizedUnionGraph(repo, []*IRI{&g1, &g2})

	lang, _ := NewLangLiteral("hi", "en")
	tr := Triple{S: BlankNode{ID: "b1"}, P: IRI{Value: "http://example.org/p"}, O: lang}
	ok, err := union.HasTriple(tr)
	if err != nil || !ok {
		t.Fatalf("hasTriple: %v %v", ok, err)
	}

	want := `ASK FROM <http://example.org/g1> FROM <http://example.org/g2> WHERE { _:b1 <http://example.org/p> "hi"@en }`
	if engine.lastQuery() != want {
		t.Fatalf("query text:\n got %q\nwant %q", engine.lastQuery(), want)
	}
}

func TestOptimizedUnionDefaultMemberAddsNoClause(t *testing.T) {
	engine := &stubEngine{}
	repo := NewRepository(OptQueryEngine(engine))
	g1 := graphName(1)
	union := NewOptimizedUnionGraph(repo, []*IRI{nil, &g1})

	if _, err := union.Triples(); err != nil {
		t.Fatalf("triples: %v", err)
	}
	want := "SELECT ?s ?p ?o FROM <http://example.org/g1> WHERE { ?s ?p ?o }"
	if engine.lastQuery() != want {
		t.Fatalf("query text:\n got %q\nwant %q", engine.lastQuery(), want)
	}
}

func TestOptimizedUnionMapsBindings(t *testing.T) {
	s := IRI{Value: "http://example.org/s"}
	p := IRI{Value: "http://example.org/p"}
	engine := &stubEngine{bindings: Bindings{
		{"s": s, "p": p, "o": NewLiteral("v")},
		{"s": BlankNode{ID: "x"}, "p": p, "o": IRI{Value: "http://example.org/o"}},
		{"s": s, "p": p, "o": NewLiteral("v")}, // duplicate row
	}}
	repo := NewRepository(OptQueryEngine(engine))
	g1 := graphName(1)
	union := NewOptimizedUnionGraph(repo, []*IRI{&g1})

	triples, err := union.Triples()
	if err != nil {
		t.Fatalf("triples: %v", err)
	}
	if len(triples) != 2 {
		t.Fatalf("expected 2 deduplicated triples, got %d", len(triples))
	}
	if triples[0] != (Triple{S: s, P: p, O: NewLiteral("v")}) {
		t.Fatalf("unexpected first triple: %s", triples[0])
	}
}

func TestOptimizedUnionRejectsMalformedBindings(t *testing.T) {
	engine := &stubEngine{bindings: Bindings{
		{"s": IRI{Value: "http://example.org/s"}, "p": NewLiteral("not an IRI"), "o": NewLiteral("v")},
	}}
	repo := NewRepository(OptQueryEngine(engine))
	g1 := graphName(1)
	union := NewOptimizedUnionGraph(repo, []*IRI{&g1})

	if _, err := union.Triples(); !errors.Is(err, ErrMalformedTriple) {
		t.Fatalf("expected ErrMalformedTriple, got %v", err)
	}
}

func TestOptimizedUnionPropagatesEngineErrors(t *testing.T) {
	engineErr := errors.New("no such graph")
	engine := &stubEngine{err: engineErr}
	repo := NewRepository(OptQueryEngine(engine))
	g1 := graphName(1)
	union := NewOptimizedUnionGraph(repo, []*IRI{&g1})

	if _, err := union.Triples(); !errors.Is(err, engineErr) {
		t.Fatalf("expected engine error, got %v", err)
	}
	if _, err := union.HasTriple(testTriple("1")); !errors.Is(err, engineErr) {
		t.Fatalf("expected engine error, got %v", err)
	}
}
