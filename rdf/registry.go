package rdf

import (
	"fmt"
	"sort"
)

// EngineFactory constructs a query engine instance.
type EngineFactory func() (QueryEngine, error)

// EngineRegistry is an explicit query-engine capability registry, passed to
// the code that assembles repositories. There is no ambient global
// registry and no classpath-style discovery; whoever owns startup decides
// what is available.
type EngineRegistry struct {
	factories map[string]EngineFactory
}

// NewEngineRegistry returns an empty registry.
func NewEngineRegistry() *EngineRegistry {
	return &EngineRegistry{factories: make(map[string]EngineFactory)}
}

// Register binds an id to an engine factory. Registering an id twice fails
// with ErrEngineRegistered.
func (r *EngineRegistry) Register(id string, factory EngineFactory) error {
	if _, ok := r.factories[id]; ok {
		return fmt.Errorf("%w: %s", ErrEngineRegistered, id)
	}
	r.factories[id] = factory
	return nil
}

// Lookup returns the factory registered under id.
func (r *EngineRegistry) Lookup(id string) (EngineFactory, bool) {
	factory, ok := r.factories[id]
	return factory, ok
}

// New constructs an engine from the factory registered under id, failing
// with ErrEngineUnknown for unregistered ids.
func (r *EngineRegistry) New(id string) (QueryEngine, error) {
	factory, ok := r.factories[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEngineUnknown, id)
	}
	return factory()
}

// IDs returns the registered ids in sorted order.
func (r *EngineRegistry) IDs() []string {
	ids := make([]string, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
