package rdf

import (
	"fmt"
	"sort"
)

// RepositoryOption configures repository construction.
type RepositoryOption func(*repositoryOptions)

type repositoryOptions struct {
	engine QueryEngine
}

// OptQueryEngine injects the SPARQL backend used by the repository's query
// methods. Without it, query methods fail with ErrNoQueryEngine.
func OptQueryEngine(engine QueryEngine) RepositoryOption {
	return func(opts *repositoryOptions) {
		opts.engine = engine
	}
}

// Repository owns one default graph plus a set of uniquely named graphs.
//
// A repository is single-writer: it performs no locking and concurrent
// mutation is the caller's responsibility. Once closed, every method fails
// with ErrRepositoryClosed and both the default graph and the named graph
// map are emptied.
type Repository struct {
	engine       QueryEngine
	defaultGraph *MemoryGraph
	named        map[IRI]*MemoryGraph
	closed       bool
}

// NewRepository returns an open repository with an empty default graph.
func NewRepository(opts ...RepositoryOption) *Repository {
	options := repositoryOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	return &Repository{
		engine:       options.engine,
		defaultGraph: NewGraph(),
		named:        make(map[IRI]*MemoryGraph),
	}
}

func (r *Repository) check() error {
	if r.closed {
		return ErrRepositoryClosed
	}
	return nil
}

// DefaultGraph returns the repository's default graph for reading.
func (r *Repository) DefaultGraph() (Graph, error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	return r.defaultGraph, nil
}

// EditDefaultGraph returns the repository's default graph for mutation.
func (r *Repository) EditDefaultGraph() (Graph, error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	return r.defaultGraph, nil
}

// GetGraph returns the named graph for reading. An unregistered name
// yields a detached empty graph; nothing is registered by reading.
func (r *Repository) GetGraph(name IRI) (Graph, error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	if g, ok := r.named[name]; ok {
		return g, nil
	}
	return NewGraph(), nil
}

// EditGraph returns the registered named graph for mutation, or false when
// the name is not registered. Graphs are only ever registered through
// CreateGraph.
func (r *Repository) EditGraph(name IRI) (Graph, bool, error) {
	if err := r.check(); err != nil {
		return nil, false, err
	}
	g, ok := r.named[name]
	if !ok {
		return nil, false, nil
	}
	return g, true, nil
}

// CreateGraph registers a new empty named graph, failing with
// ErrGraphExists when the name is taken.
func (r *Repository) CreateGraph(name IRI) (Graph, error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	if _, ok := r.named[name]; ok {
		return nil, fmt.Errorf("%w: <%s>", ErrGraphExists, name.Value)
	}
	g := NewGraph()
	r.named[name] = g
	return g, nil
}

// RemoveGraph drops a named graph, reporting whether it existed.
func (r *Repository) RemoveGraph(name IRI) (bool, error) {
	if err := r.check(); err != nil {
		return false, err
	}
	if _, ok := r.named[name]; !ok {
		return false, nil
	}
	delete(r.named, name)
	return true, nil
}

// HasGraph reports whether a named graph is registered.
func (r *Repository) HasGraph(name IRI) (bool, error) {
	if err := r.check(); err != nil {
		return false, err
	}
	_, ok := r.named[name]
	return ok, nil
}

// ListGraphs returns the registered graph names sorted by IRI value.
func (r *Repository) ListGraphs() ([]IRI, error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	names := make([]IRI, 0, len(r.named))
	for name := range r.named {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i].Value < names[j].Value })
	return names, nil
}

// NamedGraphs returns a read-only view of the named graph map. The map is
// a copy; the graphs are the live graphs.
func (r *Repository) NamedGraphs() (map[IRI]Graph, error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	view := make(map[IRI]Graph, len(r.named))
	for name, g := range r.named {
		view[name] = g
	}
	return view, nil
}

// Clear empties the default graph and drops all named graphs, reporting
// whether anything was removed.
func (r *Repository) Clear() (bool, error) {
	if err := r.check(); err != nil {
		return false, err
	}
	removed, err := r.defaultGraph.Clear()
	if err != nil {
		return false, err
	}
	if len(r.named) > 0 {
		removed = true
		r.named = make(map[IRI]*MemoryGraph)
	}
	return removed, nil
}

// Transaction runs block with repository access. Transactions are scoping
// blocks only: there is no isolation and no rollback, and an error from
// the block propagates with any already-applied writes left in place.
func (r *Repository) Transaction(block func(*Repository) error) error {
	if err := r.check(); err != nil {
		return err
	}
	return block(r)
}

// ReadTransaction runs block with repository access. Like Transaction it
// is a scoping convenience; it does not enforce read-only use.
func (r *Repository) ReadTransaction(block func(*Repository) error) error {
	if err := r.check(); err != nil {
		return err
	}
	return block(r)
}

// Close empties the default graph, drops all named graphs and marks the
// repository closed. Every subsequent call, including Close, fails with
// ErrRepositoryClosed.
func (r *Repository) Close() error {
	if err := r.check(); err != nil {
		return err
	}
	if _, err := r.defaultGraph.Clear(); err != nil {
		return err
	}
	for _, g := range r.named {
		if _, err := g.Clear(); err != nil {
			return err
		}
	}
	r.named = make(map[IRI]*MemoryGraph)
	r.closed = true
	return nil
}

// DefaultGraphRef returns a provenance-tracked handle to the default
// graph.
func (r *Repository) DefaultGraphRef() (*GraphRef, error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	return NewGraphRef(r.defaultGraph, r, nil), nil
}

// GraphRefFor returns a provenance-tracked handle to a registered named
// graph, or false when the name is not registered.
func (r *Repository) GraphRefFor(name IRI) (*GraphRef, bool, error) {
	if err := r.check(); err != nil {
		return nil, false, err
	}
	g, ok := r.named[name]
	if !ok {
		return nil, false, nil
	}
	return NewGraphRef(g, r, &name), true, nil
}

func (r *Repository) queryEngine() (QueryEngine, error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	if r.engine == nil {
		return nil, ErrNoQueryEngine
	}
	return r.engine, nil
}

// Select delegates a SELECT query to the configured engine.
func (r *Repository) Select(query string) (Bindings, error) {
	engine, err := r.queryEngine()
	if err != nil {
		return nil, err
	}
	return engine.Select(query)
}

// Ask delegates an ASK query to the configured engine.
func (r *Repository) Ask(query string) (bool, error) {
	engine, err := r.queryEngine()
	if err != nil {
		return false, err
	}
	return engine.Ask(query)
}

// Construct delegates a CONSTRUCT query to the configured engine.
func (r *Repository) Construct(query string) (TripleIterator, error) {
	engine, err := r.queryEngine()
	if err != nil {
		return nil, err
	}
	return engine.Construct(query)
}

// Describe delegates a DESCRIBE query to the configured engine.
func (r *Repository) Describe(query string) (TripleIterator, error) {
	engine, err := r.queryEngine()
	if err != nil {
		return nil, err
	}
	return engine.Describe(query)
}

// Update delegates an update request to the configured engine.
func (r *Repository) Update(query string) error {
	engine, err := r.queryEngine()
	if err != nil {
		return err
	}
	return engine.Update(query)
}
