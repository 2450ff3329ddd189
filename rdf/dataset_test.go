package rdf

import (
	"errors"
	"testing"
)

func namedRef(t *testing.T, repo *Repository, n int) *GraphRef {
	t.Helper()
	name := graphName(n)
	if _, err := repo.CreateGraph(name); err != nil {
		t.Fatalf("create %s: %v", name.Value, err)
	}
	ref, ok, err := repo.GraphRefFor(name)
	if err != nil || !ok {
		t.Fatalf("ref %s: %v %v", name.Value, ok, err)
	}
	return ref
}

func TestDatasetConstructionGuard(t *testing.T) {
	if _, err := NewDataset(nil, nil); !errors.Is(err, ErrNoDefaultGraph) {
		t.Fatalf("expected ErrNoDefaultGraph, got %v", err)
	}
	if _, err := NewDataset([]Graph{}, map[IRI]Graph{graphName(1): NewGraph()}); !errors.Is(err, ErrNoDefaultGraph) {
		t.Fatalf("named members alone must not satisfy the guard, got %v", err)
	}
}

func TestFederationRewrite(t *testing.T) {
	engine := &stubEngine{}
	repo := NewRepository(OptQueryEngine(engine))
	defaultRef, err := repo.DefaultGraphRef()
	if err != nil {
		t.Fatalf("default ref: %v", err)
	}
	r1 := namedRef(t, repo, 1)
	r2 := namedRef(t, repo, 2)

	ds, err := NewDataset([]Graph{defaultRef}, map[IRI]Graph{
		graphName(1): r1,
		graphName(2): r2,
	})
	if err != nil {
		t.Fatalf("dataset: %v", err)
	}

	if _, err := ds.Select("SELECT * WHERE { ?s ?p ?o }"); err != nil {
		t.Fatalf("select: %v", err)
	}
	want := "SELECT * FROM NAMED <http://example.org/g1> FROM NAMED <http://example.org/g2> WHERE { ?s ?p ?o }"
	if engine.lastQuery() != want {
		t.Fatalf("rewrite:\n got %q\nwant %q", engine.lastQuery(), want)
	}
}

func TestFederationRewriteDefaultMembers(t *testing.T) {
	engine := &stubEngine{}
	repo := NewRepository(OptQueryEngine(engine))
	r1 := namedRef(t, repo, 1)
	r2 := namedRef(t, repo, 2)

	ds, err := NewDataset([]Graph{r1, r2}, nil)
	if err != nil {
		t.Fatalf("dataset: %v", err)
	}
	if _, err := ds.Ask("ASK WHERE { ?s ?p ?o }"); err != nil {
		t.Fatalf("ask: %v", err)
	}
	want := "ASK FROM <http://example.org/g1> FROM <http://example.org/g2> WHERE { ?s ?p ?o }"
	if engine.lastQuery() != want {
		t.Fatalf("rewrite:\n got %q\nwant %q", engine.lastQuery(), want)
	}
}

func TestScopedQueryForwardedUnchanged(t *testing.T) {
	engine := &stubEngine{}
	repo := NewRepository(OptQueryEngine(engine))
	r1 := namedRef(t, repo, 1)

	ds, _ := NewDataset([]Graph{r1}, nil)
	query := "SELECT * FROM <http://example.org/other> WHERE { ?s ?p ?o }"
	if _, err := ds.Select(query); err != nil {
		t.Fatalf("select: %v", err)
	}
	if engine.lastQuery() != query {
		t.Fatalf("scoped query must be forwarded byte-for-byte: %q", engine.lastQuery())
	}
}

func TestScopedQueryRequiresSingleRepository(t *testing.T) {
	repoA := NewRepository(OptQueryEngine(&stubEngine{}))
	repoB := NewRepository(OptQueryEngine(&stubEngine{}))
	rA := namedRef(t, repoA, 1)
	rB := namedRef(t, repoB, 2)

	ds, _ := NewDataset([]Graph{rA, rB}, nil)
	query := "SELECT * FROM <http://example.org/g1> WHERE { ?s ?p ?o }"
	if _, err := ds.Select(query); !errors.Is(err, ErrUnsupportedFederation) {
		t.Fatalf("expected ErrUnsupportedFederation, got %v", err)
	}
}

func TestHeterogeneousDatasetRejection(t *testing.T) {
	repoA := NewRepository(OptQueryEngine(&stubEngine{}))
	repoB := NewRepository(OptQueryEngine(&stubEngine{}))
	rA := namedRef(t, repoA, 1)
	rB := namedRef(t, repoB, 2)

	ds, _ := NewDataset([]Graph{rA, rB}, nil)
	query := "SELECT * WHERE { ?s ?p ?o }"

	if _, err := ds.Select(query); !errors.Is(err, ErrUnsupportedFederation) {
		t.Fatalf("select: expected ErrUnsupportedFederation, got %v", err)
	}
	if _, err := ds.Ask(query); !errors.Is(err, ErrUnsupportedFederation) {
		t.Fatalf("ask: expected ErrUnsupportedFederation, got %v", err)
	}
	if _, err := ds.Construct(query); !errors.Is(err, ErrUnsupportedFederation) {
		t.Fatalf("construct: expected ErrUnsupportedFederation, got %v", err)
	}
	if _, err := ds.Describe(query); !errors.Is(err, ErrUnsupportedFederation) {
		t.Fatalf("describe: expected ErrUnsupportedFederation, got %v", err)
	}
	if err := ds.Update("INSERT DATA { }"); !errors.Is(err, ErrUnsupportedFederation) {
		t.Fatalf("update: expected ErrUnsupportedFederation, got %v", err)
	}
}

func TestUpdateForwardedWithoutDatasetClauses(t *testing.T) {
	engine := &stubEngine{}
	repo := NewRepository(OptQueryEngine(engine))
	r1 := namedRef(t, repo, 1)

	ds, err := NewDataset([]Graph{r1}, map[IRI]Graph{graphName(1): r1})
	if err != nil {
		t.Fatalf("dataset: %v", err)
	}
	update := "INSERT DATA { <http://example.org/s> <http://example.org/p> <http://example.org/o> }"
	if err := ds.Update(update); err != nil {
		t.Fatalf("update: %v", err)
	}
	// The update grammar has no FROM clause, so the text must reach the
	// engine byte-for-byte.
	if engine.lastQuery() != update {
		t.Fatalf("update text must not be rewritten:\n got %q\nwant %q", engine.lastQuery(), update)
	}
}

func TestQueryRoutingNeverRewritesUpdateText(t *testing.T) {
	engine := &stubEngine{}
	repo := NewRepository(OptQueryEngine(engine))
	r1 := namedRef(t, repo, 1)

	ds, err := NewDataset([]Graph{r1}, nil)
	if err != nil {
		t.Fatalf("dataset: %v", err)
	}
	// Update text carries a WHERE insertion point, but its leading keyword
	// identifies it and keeps the rewriter away.
	update := "DELETE WHERE { ?s ?p ?o }"
	if _, err := ds.Select(update); err != nil {
		t.Fatalf("select: %v", err)
	}
	if engine.lastQuery() != update {
		t.Fatalf("misrouted update text must still be forwarded unmodified:\n got %q", engine.lastQuery())
	}
}

func TestUntrackedDatasetRejectionAndUnionFallback(t *testing.T) {
	bare1 := NewGraph()
	bare2 := NewGraph()
	bare1.AddTriple(testTriple("1"))
	bare2.AddTriple(testTriple("2"))

	ds, _ := NewDataset([]Graph{bare1, bare2}, nil)
	if _, err := ds.Select("SELECT * WHERE { ?s ?p ?o }"); !errors.Is(err, ErrUnsupportedFederation) {
		t.Fatalf("expected ErrUnsupportedFederation, got %v", err)
	}

	// Graph-level operations still work through the eager union.
	dg := ds.DefaultGraph()
	if _, ok := dg.(*UnionGraph); !ok {
		t.Fatalf("expected eager union, got %T", dg)
	}
	if size, _ := dg.Size(); size != 2 {
		t.Fatalf("unexpected union size: %d", size)
	}
	if ok, _ := dg.HasTriple(testTriple("2")); !ok {
		t.Fatalf("union must answer membership")
	}
}

func TestDatasetDefaultGraphSelection(t *testing.T) {
	single := NewGraph()
	ds, _ := NewDataset([]Graph{single}, nil)
	if ds.DefaultGraph() != Graph(single) {
		t.Fatalf("a single member is returned directly")
	}

	repo := NewRepository(OptQueryEngine(&stubEngine{}))
	r1 := namedRef(t, repo, 1)
	r2 := namedRef(t, repo, 2)
	ds, _ = NewDataset([]Graph{r1, r2}, nil)
	if _, ok := ds.DefaultGraph().(*OptimizedUnionGraph); !ok {
		t.Fatalf("same-backend members must produce a lazy union, got %T", ds.DefaultGraph())
	}
}

func TestNamedGraphFallback(t *testing.T) {
	def := NewGraph()
	named := NewGraph()
	ds, _ := NewDataset([]Graph{def}, map[IRI]Graph{graphName(1): named})

	if ds.NamedGraph(graphName(1)) != Graph(named) {
		t.Fatalf("registered name must resolve to its member")
	}
	if ds.NamedGraph(graphName(9)) != Graph(def) {
		t.Fatalf("absent name must fall back to the default graph")
	}
}

func TestDatasetCloseDedup(t *testing.T) {
	shared := NewGraph()
	shared.AddTriple(testTriple("1"))

	// The same graph registered as the sole default and as a named member,
	// once directly and once through a ref.
	ds, err := NewDataset([]Graph{shared}, map[IRI]Graph{
		graphName(1): NewGraphRef(shared, nil, nil),
	})
	if err != nil {
		t.Fatalf("dataset: %v", err)
	}
	if err := ds.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	// A double close would not error on MemoryGraph, so assert the closed
	// state took effect exactly as a single close would leave it.
	if err := shared.AddTriple(testTriple("2")); !errors.Is(err, ErrGraphClosed) {
		t.Fatalf("underlying graph must be closed, got %v", err)
	}
}

func TestDatasetCloseCountsCloseables(t *testing.T) {
	counter := &closeCountingGraph{MemoryGraph: NewGraph()}
	ds, _ := NewDataset([]Graph{counter}, map[IRI]Graph{
		graphName(1): NewGraphRef(counter, nil, nil),
		graphName(2): counter,
	})
	if err := ds.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if counter.closes != 1 {
		t.Fatalf("graph must be closed exactly once, got %d", counter.closes)
	}
}

type closeCountingGraph struct {
	*MemoryGraph
	closes int
}

func (g *closeCountingGraph) Close() error {
	g.closes++
	return g.MemoryGraph.Close()
}
