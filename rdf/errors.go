package rdf

import "errors"

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeMalformedTerm indicates an invalid term or triple construction.
	ErrCodeMalformedTerm ErrorCode = "MALFORMED_TERM"
	// ErrCodeUnsupportedValue indicates a value outside the coercion set.
	ErrCodeUnsupportedValue ErrorCode = "UNSUPPORTED_VALUE"
	// ErrCodeGraphExists indicates a duplicate named graph.
	ErrCodeGraphExists ErrorCode = "GRAPH_EXISTS"
	// ErrCodeGraphClosed indicates an operation on a closed graph.
	ErrCodeGraphClosed ErrorCode = "GRAPH_CLOSED"
	// ErrCodeRepositoryClosed indicates an operation on a closed repository.
	ErrCodeRepositoryClosed ErrorCode = "REPOSITORY_CLOSED"
	// ErrCodeNoQueryEngine indicates a repository without a query backend.
	ErrCodeNoQueryEngine ErrorCode = "NO_QUERY_ENGINE"
	// ErrCodeNoDefaultGraph indicates a dataset built without default graphs.
	ErrCodeNoDefaultGraph ErrorCode = "NO_DEFAULT_GRAPH"
	// ErrCodeUnsupportedFederation indicates a dataset that cannot be folded
	// onto a single repository.
	ErrCodeUnsupportedFederation ErrorCode = "UNSUPPORTED_FEDERATION"
	// ErrCodeReadOnlyGraph indicates a mutation on a union view.
	ErrCodeReadOnlyGraph ErrorCode = "READ_ONLY_GRAPH"
	// ErrCodeEngineRegistry indicates a registry id conflict or miss.
	ErrCodeEngineRegistry ErrorCode = "ENGINE_REGISTRY"
	// ErrCodeQueryFailure indicates an error surfaced by the query engine.
	ErrCodeQueryFailure ErrorCode = "QUERY_FAILURE"
)

var (
	// ErrEmptyIRI indicates an IRI constructed from a blank string.
	ErrEmptyIRI = errors.New("rdf: IRI must not be blank")
	// ErrBlankNodeID indicates a blank node constructed with a blank id.
	ErrBlankNodeID = errors.New("rdf: blank node id must not be blank")
	// ErrLanguageTag indicates a language-tagged literal without a tag.
	ErrLanguageTag = errors.New("rdf: language tag must not be blank")
	// ErrMalformedTriple indicates a triple with an invalid subject,
	// predicate or object.
	ErrMalformedTriple = errors.New("rdf: malformed triple")
	// ErrUnsupportedValue indicates a value that cannot be coerced to a term.
	ErrUnsupportedValue = errors.New("rdf: unsupported value type")
	// ErrGraphExists indicates a named graph that already exists.
	ErrGraphExists = errors.New("rdf: graph already exists")
	// ErrGraphClosed indicates an operation on a closed graph.
	ErrGraphClosed = errors.New("rdf: graph is closed")
	// ErrRepositoryClosed indicates an operation on a closed repository.
	ErrRepositoryClosed = errors.New("rdf: repository is closed")
	// ErrNoQueryEngine indicates a query without a configured engine.
	ErrNoQueryEngine = errors.New("rdf: no query engine configured")
	// ErrNoDefaultGraph indicates a dataset constructed without default
	// graphs.
	ErrNoDefaultGraph = errors.New("rdf: dataset requires at least one default graph")
	// ErrUnsupportedFederation indicates a heterogeneous dataset that cannot
	// be queried directly.
	ErrUnsupportedFederation = errors.New("rdf: unsupported federation")
	// ErrReadOnlyGraph indicates a mutation of a read-only union view.
	ErrReadOnlyGraph = errors.New("rdf: union graph is read-only")
	// ErrEngineRegistered indicates a duplicate engine registration.
	ErrEngineRegistered = errors.New("rdf: query engine already registered")
	// ErrEngineUnknown indicates a lookup of an unregistered engine.
	ErrEngineUnknown = errors.New("rdf: unknown query engine")
)

// Code returns the error code for an error.
// Returns an empty string for nil errors. Errors that do not match any
// sentinel are classified as query failures, since engine errors are the
// only foreign errors this package propagates.
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrEmptyIRI),
		errors.Is(err, ErrBlankNodeID),
		errors.Is(err, ErrLanguageTag),
		errors.Is(err, ErrMalformedTriple):
		return ErrCodeMalformedTerm
	case errors.Is(err, ErrUnsupportedValue):
		return ErrCodeUnsupportedValue
	case errors.Is(err, ErrGraphExists):
		return ErrCodeGraphExists
	case errors.Is(err, ErrGraphClosed):
		return ErrCodeGraphClosed
	case errors.Is(err, ErrRepositoryClosed):
		return ErrCodeRepositoryClosed
	case errors.Is(err, ErrNoQueryEngine):
		return ErrCodeNoQueryEngine
	case errors.Is(err, ErrNoDefaultGraph):
		return ErrCodeNoDefaultGraph
	case errors.Is(err, ErrUnsupportedFederation):
		return ErrCodeUnsupportedFederation
	case errors.Is(err, ErrReadOnlyGraph):
		return ErrCodeReadOnlyGraph
	case errors.Is(err, ErrEngineRegistered), errors.Is(err, ErrEngineUnknown):
		return ErrCodeEngineRegistry
	}

	return ErrCodeQueryFailure
}
