package rdf

import (
	"errors"
	"testing"
)

func TestJSONLDRoundTrip(t *testing.T) {
	g := NewGraph()
	s := IRI{Value: "http://example.org/s"}
	name := IRI{Value: "http://example.org/name"}
	age := IRI{Value: "http://example.org/age"}
	lang, _ := NewLangLiteral("Alice", "en")

	g.AddTriples(
		Triple{S: s, P: name, O: lang},
		Triple{S: s, P: age, O: Literal{Lexical: "42", Datatype: XSDInteger}},
		Triple{S: s, P: RDFType, O: IRI{Value: "http://example.org/Person"}},
	)

	doc, err := EncodeJSONLD(g)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded := NewGraph()
	if err := DecodeJSONLD(doc, decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}

	original, _ := g.Triples()
	for _, tr := range original {
		if ok, _ := decoded.HasTriple(tr); !ok {
			t.Errorf("round trip lost %s", tr)
		}
	}
	if size, _ := decoded.Size(); size != len(original) {
		t.Fatalf("round trip size mismatch: %d vs %d", size, len(original))
	}
}

func TestJSONLDDecodeLiteralKinds(t *testing.T) {
	doc := map[string]interface{}{
		"@id":                      "http://example.org/s",
		"http://example.org/plain": "hello",
		"http://example.org/typed": map[string]interface{}{
			"@value": "3.14",
			"@type":  XSDDecimal.Value,
		},
		"http://example.org/tagged": map[string]interface{}{
			"@value":    "bonjour",
			"@language": "fr",
		},
	}

	g := NewGraph()
	if err := DecodeJSONLD(doc, g); err != nil {
		t.Fatalf("decode: %v", err)
	}

	s := IRI{Value: "http://example.org/s"}
	if ok, _ := g.HasTriple(Triple{S: s, P: IRI{Value: "http://example.org/plain"}, O: NewLiteral("hello")}); !ok {
		t.Errorf("plain literal not decoded as xsd:string")
	}
	if ok, _ := g.HasTriple(Triple{S: s, P: IRI{Value: "http://example.org/typed"}, O: Literal{Lexical: "3.14", Datatype: XSDDecimal}}); !ok {
		t.Errorf("typed literal not decoded")
	}
	tagged, _ := NewLangLiteral("bonjour", "fr")
	if ok, _ := g.HasTriple(Triple{S: s, P: IRI{Value: "http://example.org/tagged"}, O: tagged}); !ok {
		t.Errorf("language-tagged literal not decoded")
	}
}

func TestJSONLDEncodeRejectsQuotedTriples(t *testing.T) {
	g := NewGraph()
	quoted := TripleTerm{
		S: IRI{Value: "http://example.org/s"},
		P: IRI{Value: "http://example.org/p"},
		O: NewLiteral("o"),
	}
	g.AddTriple(Triple{
		S: quoted,
		P: IRI{Value: "http://example.org/says"},
		O: NewLiteral("claim"),
	})

	if _, err := EncodeJSONLD(g); !errors.Is(err, ErrUnsupportedValue) {
		t.Fatalf("expected ErrUnsupportedValue, got %v", err)
	}
}

func TestJSONLDEncodeEmptyGraph(t *testing.T) {
	doc, err := EncodeJSONLD(NewGraph())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if list, ok := doc.([]interface{}); ok && len(list) != 0 {
		t.Fatalf("empty graph must expand to an empty document, got %v", doc)
	}
}
