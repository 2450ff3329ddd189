package rdf

// Graph is a mutable, set-semantics container of triples.
//
// The in-memory implementation returned by NewGraph never fails while open;
// the error returns exist because union views answer these operations by
// delegating to a query engine that can fail.
type Graph interface {
	// AddTriple adds a triple. Adding an existing triple is a no-op.
	AddTriple(t Triple) error
	// AddTriples adds a batch of triples.
	AddTriples(ts ...Triple) error
	// RemoveTriple removes a triple, reporting whether it was present.
	RemoveTriple(t Triple) (bool, error)
	// RemoveTriples removes a batch, reporting whether at least one was
	// removed.
	RemoveTriples(ts ...Triple) (bool, error)
	// HasTriple reports whether the graph contains a triple.
	HasTriple(t Triple) (bool, error)
	// Triples returns a snapshot of the graph's triples. Order is not
	// defined.
	Triples() ([]Triple, error)
	// Size returns the number of triples.
	Size() (int, error)
	// Clear removes all triples, reporting whether the graph was non-empty.
	Clear() (bool, error)
	// Close releases the graph. Further operations fail.
	Close() error
}

// MemoryGraph is the in-memory Graph implementation.
type MemoryGraph struct {
	triples map[Triple]struct{}
	closed  bool
}

var _ Graph = (*MemoryGraph)(nil)

// NewGraph returns an empty in-memory graph.
func NewGraph() *MemoryGraph {
	return &MemoryGraph{triples: make(map[Triple]struct{})}
}

func (g *MemoryGraph) check() error {
	if g.closed {
		return ErrGraphClosed
	}
	return nil
}

// AddTriple adds a triple. Adding an existing triple is a no-op.
func (g *MemoryGraph) AddTriple(t Triple) error {
	if err := g.check(); err != nil {
		return err
	}
	g.triples[t] = struct{}{}
	return nil
}

// AddTriples adds a batch of triples.
func (g *MemoryGraph) AddTriples(ts ...Triple) error {
	if err := g.check(); err != nil {
		return err
	}
	for _, t := range ts {
		g.triples[t] = struct{}{}
	}
	return nil
}

// RemoveTriple removes a triple, reporting whether it was present.
// Removing an absent triple is not an error.
func (g *MemoryGraph) RemoveTriple(t Triple) (bool, error) {
	if err := g.check(); err != nil {
		return false, err
	}
	if _, ok := g.triples[t]; !ok {
		return false, nil
	}
	delete(g.triples, t)
	return true, nil
}

// RemoveTriples removes a batch, reporting whether at least one triple was
// removed.
func (g *MemoryGraph) RemoveTriples(ts ...Triple) (bool, error) {
	if err := g.check(); err != nil {
		return false, err
	}
	removed := false
	for _, t := range ts {
		if _, ok := g.triples[t]; ok {
			delete(g.triples, t)
			removed = true
		}
	}
	return removed, nil
}

// HasTriple reports whether the graph contains a triple.
func (g *MemoryGraph) HasTriple(t Triple) (bool, error) {
	if err := g.check(); err != nil {
		return false, err
	}
	_, ok := g.triples[t]
	return ok, nil
}

// Triples returns a snapshot of the graph's triples in unspecified order.
func (g *MemoryGraph) Triples() ([]Triple, error) {
	if err := g.check(); err != nil {
		return nil, err
	}
	out := make([]Triple, 0, len(g.triples))
	for t := range g.triples {
		out = append(out, t)
	}
	return out, nil
}

// Size returns the number of triples.
func (g *MemoryGraph) Size() (int, error) {
	if err := g.check(); err != nil {
		return 0, err
	}
	return len(g.triples), nil
}

// Clear removes all triples, reporting whether the graph was non-empty.
func (g *MemoryGraph) Clear() (bool, error) {
	if err := g.check(); err != nil {
		return false, err
	}
	hadTriples := len(g.triples) > 0
	g.triples = make(map[Triple]struct{})
	return hadTriples, nil
}

// Close empties the graph and marks it closed. Closing twice is a no-op.
func (g *MemoryGraph) Close() error {
	if g.closed {
		return nil
	}
	g.triples = make(map[Triple]struct{})
	g.closed = true
	return nil
}
