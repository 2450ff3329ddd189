package rdf

import (
	"io"
	"strings"
)

// QueryForm identifies SPARQL query forms.
type QueryForm string

const (
	QueryFormSelect    QueryForm = "select"
	QueryFormAsk       QueryForm = "ask"
	QueryFormConstruct QueryForm = "construct"
	QueryFormDescribe  QueryForm = "describe"
	QueryFormUpdate    QueryForm = "update"
)

// ParseQueryForm normalizes a query form string.
func ParseQueryForm(value string) (QueryForm, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "select":
		return QueryFormSelect, true
	case "ask":
		return QueryFormAsk, true
	case "construct":
		return QueryFormConstruct, true
	case "describe":
		return QueryFormDescribe, true
	case "update", "insert", "delete":
		return QueryFormUpdate, true
	default:
		return "", false
	}
}

// QueryFormOf reports the form of a query from its leading keyword,
// skipping prologue lines (BASE/PREFIX declarations and comments). This is
// a token scan, not a parse.
func QueryFormOf(query string) (QueryForm, bool) {
	for _, line := range strings.Split(query, "\n") {
		for _, field := range strings.Fields(line) {
			if strings.HasPrefix(field, "#") {
				break
			}
			lower := strings.ToLower(field)
			if lower == "base" || lower == "prefix" {
				break
			}
			return ParseQueryForm(field)
		}
	}
	return "", false
}

// Binding maps variable names (without the leading "?") to terms.
type Binding map[string]Term

// Bindings is an ordered list of solutions.
type Bindings []Binding

// TripleIterator streams triples in pull mode. Next returns io.EOF when
// the stream is exhausted.
type TripleIterator interface {
	Next() (Triple, error)
	Close() error
}

// QueryEngine executes SPARQL against some backend. Query text is opaque
// to this package; engine errors propagate to callers unchanged.
type QueryEngine interface {
	Select(query string) (Bindings, error)
	Ask(query string) (bool, error)
	Construct(query string) (TripleIterator, error)
	Describe(query string) (TripleIterator, error)
	Update(query string) error
}

// NewTripleSliceIterator returns an iterator over a fixed slice.
func NewTripleSliceIterator(triples []Triple) TripleIterator {
	return &sliceTripleIterator{triples: triples}
}

type sliceTripleIterator struct {
	triples []Triple
	next    int
}

func (it *sliceTripleIterator) Next() (Triple, error) {
	if it.next >= len(it.triples) {
		return Triple{}, io.EOF
	}
	t := it.triples[it.next]
	it.next++
	return t, nil
}

func (it *sliceTripleIterator) Close() error {
	it.next = len(it.triples)
	return nil
}

// CollectTriples drains an iterator into a slice and closes it.
func CollectTriples(it TripleIterator) ([]Triple, error) {
	defer it.Close()
	var out []Triple
	for {
		t, err := it.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
}
