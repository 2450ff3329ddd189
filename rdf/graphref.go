package rdf

// GraphRef wraps a graph with its provenance: the repository it came from
// and, for named graphs, the name it is registered under. The dataset uses
// this to prove that members share a backend and can be answered by a
// rewritten query instead of a materialized union.
//
// A GraphRef never owns the graph it wraps; Close on the ref is a no-op so
// an externally-owned graph is never double-closed.
type GraphRef struct {
	graph Graph
	repo  *Repository
	name  *IRI
}

var _ Graph = (*GraphRef)(nil)

// NewGraphRef wraps g with its source repository and graph name. Pass a
// nil name for a repository's default graph; pass a nil repository for an
// untracked wrapper.
func NewGraphRef(g Graph, repo *Repository, name *IRI) *GraphRef {
	return &GraphRef{graph: g, repo: repo, name: name}
}

// Unwrap returns the wrapped graph.
func (r *GraphRef) Unwrap() Graph { return r.graph }

// SourceRepository returns the repository this graph came from, or nil.
// Two refs share a backend only when their repository pointers are
// identical.
func (r *GraphRef) SourceRepository() *Repository { return r.repo }

// SourceGraphName returns the name the graph is registered under in its
// source repository. The second result is false for a repository's
// default graph and for untracked refs.
func (r *GraphRef) SourceGraphName() (IRI, bool) {
	if r.name == nil {
		return IRI{}, false
	}
	return *r.name, true
}

// Trackable reports whether the ref carries enough provenance for
// federation rewriting.
func (r *GraphRef) Trackable() bool { return r.repo != nil }

// AddTriple delegates to the wrapped graph.
func (r *GraphRef) AddTriple(t Triple) error { return r.graph.AddTriple(t) }

// AddTriples delegates to the wrapped graph.
func (r *GraphRef) AddTriples(ts ...Triple) error { return r.graph.AddTriples(ts...) }

// RemoveTriple delegates to the wrapped graph.
func (r *GraphRef) RemoveTriple(t Triple) (bool, error) { return r.graph.RemoveTriple(t) }

// RemoveTriples delegates to the wrapped graph.
func (r *GraphRef) RemoveTriples(ts ...Triple) (bool, error) { return r.graph.RemoveTriples(ts...) }

// HasTriple delegates to the wrapped graph.
func (r *GraphRef) HasTriple(t Triple) (bool, error) { return r.graph.HasTriple(t) }

// Triples delegates to the wrapped graph.
func (r *GraphRef) Triples() ([]Triple, error) { return r.graph.Triples() }

// Size delegates to the wrapped graph.
func (r *GraphRef) Size() (int, error) { return r.graph.Size() }

// Clear delegates to the wrapped graph.
func (r *GraphRef) Clear() (bool, error) { return r.graph.Clear() }

// Close is a no-op: the wrapped graph is owned elsewhere.
func (r *GraphRef) Close() error { return nil }
