package rdf

import (
	"errors"
	"fmt"
	"sort"
)

// Dataset composes default and named graphs, possibly from several
// repositories, into one queryable view.
//
// At query time the dataset decides between three outcomes:
//   - a query that already carries a FROM clause, or an update (whose
//     grammar has no FROM clause), is forwarded unmodified, which requires
//     a single backing repository;
//   - when every member is a GraphRef of one repository, the query is
//     rewritten with FROM / FROM NAMED clauses and delegated to that
//     repository's engine;
//   - otherwise query methods fail with ErrUnsupportedFederation, while
//     graph-level operations still work through an eager union.
type Dataset struct {
	defaults   []Graph
	named      map[IRI]Graph
	namedOrder []IRI
}

// NewDataset builds a dataset from default graph members and named graph
// members. At least one default graph is required; named may be nil.
// Named members are ordered by IRI value wherever order is observable.
func NewDataset(defaults []Graph, named map[IRI]Graph) (*Dataset, error) {
	if len(defaults) == 0 {
		return nil, ErrNoDefaultGraph
	}
	ds := &Dataset{
		defaults: append([]Graph(nil), defaults...),
		named:    make(map[IRI]Graph, len(named)),
	}
	for name, g := range named {
		ds.named[name] = g
		ds.namedOrder = append(ds.namedOrder, name)
	}
	sort.Slice(ds.namedOrder, func(i, j int) bool {
		return ds.namedOrder[i].Value < ds.namedOrder[j].Value
	})
	return ds, nil
}

// DefaultGraphs returns the default members in construction order.
func (d *Dataset) DefaultGraphs() []Graph {
	return append([]Graph(nil), d.defaults...)
}

// NamedGraphNames returns the named member names ordered by IRI value.
func (d *Dataset) NamedGraphNames() []IRI {
	return append([]IRI(nil), d.namedOrder...)
}

// DefaultGraph returns the dataset's composed default graph: the sole
// member when there is exactly one, a lazy backend-delegated union when
// every default member traces to one repository, and an eager union
// otherwise.
func (d *Dataset) DefaultGraph() Graph {
	if len(d.defaults) == 1 {
		return d.defaults[0]
	}
	if repo, members, ok := d.trackedDefaults(); ok {
		return NewOptimizedUnionGraph(repo, members)
	}
	return NewUnionGraph(d.defaults...)
}

// NamedGraph returns the named member registered under name, falling back
// to the dataset's default graph when the name is absent.
func (d *Dataset) NamedGraph(name IRI) Graph {
	if g, ok := d.named[name]; ok {
		return g
	}
	return d.DefaultGraph()
}

// trackedDefaults reports whether all default members are GraphRefs of a
// single repository, returning that repository and the member graph names
// (nil for the repository's own default graph).
func (d *Dataset) trackedDefaults() (*Repository, []*IRI, bool) {
	var repo *Repository
	members := make([]*IRI, 0, len(d.defaults))
	for _, member := range d.defaults {
		ref, ok := member.(*GraphRef)
		if !ok || !ref.Trackable() {
			return nil, nil, false
		}
		if repo == nil {
			repo = ref.SourceRepository()
		} else if repo != ref.SourceRepository() {
			return nil, nil, false
		}
		if name, ok := ref.SourceGraphName(); ok {
			members = append(members, &name)
		} else {
			members = append(members, nil)
		}
	}
	return repo, members, true
}

// singleRepository reports whether every member (default and named) is a
// GraphRef of one repository, returning it. Required for forwarding
// queries that already carry their own FROM clause.
func (d *Dataset) singleRepository() (*Repository, bool) {
	var repo *Repository
	track := func(member Graph) bool {
		ref, ok := member.(*GraphRef)
		if !ok || !ref.Trackable() {
			return false
		}
		if repo == nil {
			repo = ref.SourceRepository()
		}
		return repo == ref.SourceRepository()
	}
	for _, member := range d.defaults {
		if !track(member) {
			return nil, false
		}
	}
	for _, name := range d.namedOrder {
		if !track(d.named[name]) {
			return nil, false
		}
	}
	return repo, true
}

// rewriteScope classifies all members for federation rewriting: every
// member must be a GraphRef of one repository, and every named member must
// carry its backend graph name. It returns the repository plus the FROM
// and FROM NAMED graph names in member order.
func (d *Dataset) rewriteScope() (*Repository, []IRI, []IRI, bool) {
	repo, members, ok := d.trackedDefaults()
	if !ok {
		return nil, nil, nil, false
	}
	var defaults []IRI
	for _, member := range members {
		if member != nil {
			defaults = append(defaults, *member)
		}
	}
	var named []IRI
	for _, name := range d.namedOrder {
		ref, ok := d.named[name].(*GraphRef)
		if !ok || !ref.Trackable() || ref.SourceRepository() != repo {
			return nil, nil, nil, false
		}
		source, ok := ref.SourceGraphName()
		if !ok {
			return nil, nil, nil, false
		}
		named = append(named, source)
	}
	return repo, defaults, named, true
}

// route decides how a query reaches a backend: forwarded untouched when it
// is an update or already carries a FROM clause, rewritten with dataset
// clauses when all members share one repository, rejected otherwise.
//
// Updates are never rewritten: the SPARQL Update grammar has no FROM
// clause, so splicing dataset clauses into update text would produce
// invalid syntax. An update is forwarded to the single backing repository
// unmodified, or rejected.
func (d *Dataset) route(query string) (*Repository, string, error) {
	if form, ok := QueryFormOf(query); ok && form == QueryFormUpdate {
		repo, ok := d.singleRepository()
		if !ok {
			return nil, "", fmt.Errorf("%w: update requires a single backing repository", ErrUnsupportedFederation)
		}
		return repo, query, nil
	}
	if containsFromClause(query) {
		repo, ok := d.singleRepository()
		if !ok {
			return nil, "", fmt.Errorf("%w: query with FROM clause requires a single backing repository", ErrUnsupportedFederation)
		}
		return repo, query, nil
	}
	repo, defaults, named, ok := d.rewriteScope()
	if !ok {
		return nil, "", fmt.Errorf("%w: heterogeneous dataset cannot be queried directly", ErrUnsupportedFederation)
	}
	rewritten, err := insertDatasetClauses(query, defaults, named)
	if err != nil {
		return nil, "", err
	}
	return repo, rewritten, nil
}

// Select routes a SELECT query per the federation decision procedure.
func (d *Dataset) Select(query string) (Bindings, error) {
	repo, routed, err := d.route(query)
	if err != nil {
		return nil, err
	}
	return repo.Select(routed)
}

// Ask routes an ASK query per the federation decision procedure.
func (d *Dataset) Ask(query string) (bool, error) {
	repo, routed, err := d.route(query)
	if err != nil {
		return false, err
	}
	return repo.Ask(routed)
}

// Construct routes a CONSTRUCT query per the federation decision
// procedure.
func (d *Dataset) Construct(query string) (TripleIterator, error) {
	repo, routed, err := d.route(query)
	if err != nil {
		return nil, err
	}
	return repo.Construct(routed)
}

// Describe routes a DESCRIBE query per the federation decision procedure.
func (d *Dataset) Describe(query string) (TripleIterator, error) {
	repo, routed, err := d.route(query)
	if err != nil {
		return nil, err
	}
	return repo.Describe(routed)
}

// Update forwards an update request to the single backing repository. The
// update text is never modified; datasets without a single backend reject
// updates with ErrUnsupportedFederation.
func (d *Dataset) Update(query string) error {
	repo, ok := d.singleRepository()
	if !ok {
		return fmt.Errorf("%w: update requires a single backing repository", ErrUnsupportedFederation)
	}
	return repo.Update(query)
}

// Close closes every distinct underlying graph exactly once. GraphRefs are
// unwrapped first, so a graph registered both as a default and as a named
// member, directly or through refs, is still closed a single time.
func (d *Dataset) Close() error {
	seen := make(map[Graph]struct{})
	var errs []error
	closeOnce := func(member Graph) {
		if ref, ok := member.(*GraphRef); ok {
			member = ref.Unwrap()
		}
		if member == nil {
			return
		}
		if _, ok := seen[member]; ok {
			return
		}
		seen[member] = struct{}{}
		if err := member.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	for _, member := range d.defaults {
		closeOnce(member)
	}
	for _, name := range d.namedOrder {
		closeOnce(d.named[name])
	}
	return errors.Join(errs...)
}
