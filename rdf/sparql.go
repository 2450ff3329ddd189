package rdf

import (
	"fmt"
	"strings"
)

// This file renders terms into SPARQL surface syntax and splices dataset
// clauses into otherwise-opaque query text. Nothing here parses SPARQL:
// keyword location is a token scan over the raw string.

func renderIRI(iri IRI) string {
	return "<" + iri.Value + ">"
}

func renderTerm(term Term) string {
	switch value := term.(type) {
	case IRI:
		return renderIRI(value)
	case BlankNode:
		return value.String()
	case Literal:
		if value.Lang != "" {
			return quoteLexical(value.Lexical) + "@" + value.Lang
		}
		if value.Datatype.Value != "" && value.Datatype != XSDString {
			return quoteLexical(value.Lexical) + "^^" + renderIRI(value.Datatype)
		}
		return quoteLexical(value.Lexical)
	case TripleTerm:
		return "<< " + renderTerm(value.S) + " " + renderIRI(value.P) + " " + renderTerm(value.O) + " >>"
	default:
		return ""
	}
}

// quoteLexical renders a literal's lexical form as a quoted SPARQL and
// N-Quads string: ECHAR escapes for the characters that have them, \u
// escapes for the remaining control characters. Go's %q is not usable here
// because it emits \x escapes, which neither grammar accepts.
func quoteLexical(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

func renderTriplePattern(t Triple) string {
	return renderTerm(t.S) + " " + renderIRI(t.P) + " " + renderTerm(t.O)
}

func isWordByte(b byte) bool {
	return b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z' || b >= '0' && b <= '9' ||
		b == '_' || b == '?' || b == '$'
}

func asciiUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// keywordIndex returns the byte offset of the first standalone,
// case-insensitive occurrence of keyword in query, or -1. The keyword must
// be ASCII uppercase; matching folds the query per byte, so multi-byte
// characters elsewhere in the text never shift the reported offset.
// Occurrences glued to word characters (including variable sigils) do not
// count.
func keywordIndex(query, keyword string) int {
	for pos := 0; pos+len(keyword) <= len(query); pos++ {
		if pos > 0 && isWordByte(query[pos-1]) {
			continue
		}
		match := true
		for i := 0; i < len(keyword); i++ {
			if asciiUpper(query[pos+i]) != keyword[i] {
				match = false
				break
			}
		}
		if !match {
			continue
		}
		if end := pos + len(keyword); end < len(query) && isWordByte(query[end]) {
			continue
		}
		return pos
	}
	return -1
}

// containsFromClause reports whether the query text already carries its
// own dataset clause.
func containsFromClause(query string) bool {
	return keywordIndex(query, "FROM") >= 0
}

// insertDatasetClauses splices FROM clauses for the default graph names
// and FROM NAMED clauses for the named graph names into the query, in the
// given order, after the query form keyword and immediately before WHERE
// (or before the opening brace when WHERE is elided).
func insertDatasetClauses(query string, defaults, named []IRI) (string, error) {
	var clauses strings.Builder
	for _, name := range defaults {
		clauses.WriteString("FROM ")
		clauses.WriteString(renderIRI(name))
		clauses.WriteByte(' ')
	}
	for _, name := range named {
		clauses.WriteString("FROM NAMED ")
		clauses.WriteString(renderIRI(name))
		clauses.WriteByte(' ')
	}
	if clauses.Len() == 0 {
		return query, nil
	}

	idx := keywordIndex(query, "WHERE")
	if idx < 0 {
		idx = strings.IndexByte(query, '{')
	}
	if idx <= 0 {
		return "", fmt.Errorf("%w: no insertion point for dataset clauses", ErrUnsupportedFederation)
	}
	head := query[:idx]
	if !strings.HasSuffix(head, " ") && !strings.HasSuffix(head, "\n") && !strings.HasSuffix(head, "\t") {
		head += " "
	}
	return head + clauses.String() + query[idx:], nil
}
