package rdf

import "fmt"

// UnionGraph is the eager, deduplicating union of several member graphs.
// It is the fallback view when members cannot be proven to share one
// backend repository.
//
// Triples materializes the union on every call and keeps no internal
// cache; callers needing repeated access should hold on to the result.
// HasTriple checks the members directly without materializing. The union
// is a read-only view: mutations fail with ErrReadOnlyGraph, and Close is
// a no-op because members are owned elsewhere.
type UnionGraph struct {
	members []Graph
}

var _ Graph = (*UnionGraph)(nil)

// NewUnionGraph returns the union view over the given members.
func NewUnionGraph(members ...Graph) *UnionGraph {
	return &UnionGraph{members: members}
}

// AddTriple fails: the union is read-only.
func (u *UnionGraph) AddTriple(Triple) error { return ErrReadOnlyGraph }

// AddTriples fails: the union is read-only.
func (u *UnionGraph) AddTriples(...Triple) error { return ErrReadOnlyGraph }

// RemoveTriple fails: the union is read-only.
func (u *UnionGraph) RemoveTriple(Triple) (bool, error) { return false, ErrReadOnlyGraph }

// RemoveTriples fails: the union is read-only.
func (u *UnionGraph) RemoveTriples(...Triple) (bool, error) { return false, ErrReadOnlyGraph }

// Clear fails: the union is read-only.
func (u *UnionGraph) Clear() (bool, error) { return false, ErrReadOnlyGraph }

// HasTriple reports whether any member contains the triple.
func (u *UnionGraph) HasTriple(t Triple) (bool, error) {
	for _, member := range u.members {
		ok, err := member.HasTriple(t)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// Triples returns the deduplicated set union of all member triples.
func (u *UnionGraph) Triples() ([]Triple, error) {
	seen := make(map[Triple]struct{})
	var out []Triple
	for _, member := range u.members {
		triples, err := member.Triples()
		if err != nil {
			return nil, err
		}
		for _, t := range triples {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out, nil
}

// Size returns the size of the deduplicated union.
func (u *UnionGraph) Size() (int, error) {
	triples, err := u.Triples()
	if err != nil {
		return 0, err
	}
	return len(triples), nil
}

// Close is a no-op: member graphs are owned elsewhere.
func (u *UnionGraph) Close() error { return nil }

// OptimizedUnionGraph is a lazy union over graphs that all live in one
// repository. Instead of materializing, it answers HasTriple and Triples
// by generating scoped SPARQL (one FROM clause per named member) and
// delegating to the repository's query engine. A nil member denotes the
// repository's default graph and contributes no clause.
//
// Engine errors propagate unchanged; there is no retry and no silent empty
// result.
type OptimizedUnionGraph struct {
	repo    *Repository
	members []*IRI
}

var _ Graph = (*OptimizedUnionGraph)(nil)

// NewOptimizedUnionGraph returns a lazy union over the given members of
// repo.
func NewOptimizedUnionGraph(repo *Repository, members []*IRI) *OptimizedUnionGraph {
	return &OptimizedUnionGraph{repo: repo, members: members}
}

// AddTriple fails: the union is read-only.
func (u *OptimizedUnionGraph) AddTriple(Triple) error { return ErrReadOnlyGraph }

// AddTriples fails: the union is read-only.
func (u *OptimizedUnionGraph) AddTriples(...Triple) error { return ErrReadOnlyGraph }

// RemoveTriple fails: the union is read-only.
func (u *OptimizedUnionGraph) RemoveTriple(Triple) (bool, error) { return false, ErrReadOnlyGraph }

// RemoveTriples fails: the union is read-only.
func (u *OptimizedUnionGraph) RemoveTriples(...Triple) (bool, error) { return false, ErrReadOnlyGraph }

// Clear fails: the union is read-only.
func (u *OptimizedUnionGraph) Clear() (bool, error) { return false, ErrReadOnlyGraph }

// scope renders the dataset clause for the member list, in member order.
func (u *OptimizedUnionGraph) scope() string {
	var b []byte
	for _, member := range u.members {
		if member == nil {
			continue
		}
		b = append(b, "FROM "...)
		b = append(b, renderIRI(*member)...)
		b = append(b, ' ')
	}
	return string(b)
}

// HasTriple asks the backend whether the scoped union contains the triple.
func (u *OptimizedUnionGraph) HasTriple(t Triple) (bool, error) {
	query := "ASK " + u.scope() + "WHERE { " + renderTriplePattern(t) + " }"
	return u.repo.Ask(query)
}

// Triples selects the scoped union from the backend and maps each binding
// row back into a triple.
func (u *OptimizedUnionGraph) Triples() ([]Triple, error) {
	query := "SELECT ?s ?p ?o " + u.scope() + "WHERE { ?s ?p ?o }"
	bindings, err := u.repo.Select(query)
	if err != nil {
		return nil, err
	}
	seen := make(map[Triple]struct{}, len(bindings))
	out := make([]Triple, 0, len(bindings))
	for _, row := range bindings {
		t, err := tripleFromBinding(row)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out, nil
}

// Size returns the size of the deduplicated union.
func (u *OptimizedUnionGraph) Size() (int, error) {
	triples, err := u.Triples()
	if err != nil {
		return 0, err
	}
	return len(triples), nil
}

// Close is a no-op: the repository owns the member graphs.
func (u *OptimizedUnionGraph) Close() error { return nil }

// tripleFromBinding reconstructs a triple from a ?s ?p ?o solution,
// validating that each value landed in a position its kind allows.
func tripleFromBinding(row Binding) (Triple, error) {
	subject, ok := row["s"]
	if !ok {
		return Triple{}, fmt.Errorf("%w: missing binding ?s", ErrMalformedTriple)
	}
	predicate, ok := row["p"]
	if !ok {
		return Triple{}, fmt.Errorf("%w: missing binding ?p", ErrMalformedTriple)
	}
	object, ok := row["o"]
	if !ok {
		return Triple{}, fmt.Errorf("%w: missing binding ?o", ErrMalformedTriple)
	}
	p, ok := predicate.(IRI)
	if !ok {
		return Triple{}, fmt.Errorf("%w: predicate bound to %T", ErrMalformedTriple, predicate)
	}
	return NewTriple(subject, p, object)
}
