package rdf

import (
	"encoding/base64"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
)

// Canonical boolean literals. Boolean coercion always yields one of these
// two values, so "1"/"0" style lexical forms never leak into graphs.
var (
	LiteralTrue  = Literal{Lexical: "true", Datatype: XSDBoolean}
	LiteralFalse = Literal{Lexical: "false", Datatype: XSDBoolean}
)

// NewLiteral returns a plain string literal (datatype xsd:string).
func NewLiteral(lexical string) Literal {
	return Literal{Lexical: lexical, Datatype: XSDString}
}

// NewLangLiteral returns a language-tagged literal. The datatype is pinned
// to rdf:langString and the tag is kept as given (tags compare
// case-sensitively).
func NewLangLiteral(lexical, lang string) (Literal, error) {
	if strings.TrimSpace(lang) == "" {
		return Literal{}, ErrLanguageTag
	}
	return Literal{Lexical: lexical, Datatype: RDFLangString, Lang: lang}, nil
}

// NewTypedLiteral returns a literal with the given datatype, canonicalizing
// the lexical form for the numeric and boolean XSD types. Lexical forms
// that do not parse are kept as written.
func NewTypedLiteral(lexical string, datatype IRI) Literal {
	switch datatype {
	case XSDBoolean:
		if v, err := strconv.ParseBool(strings.TrimSpace(lexical)); err == nil {
			if v {
				return LiteralTrue
			}
			return LiteralFalse
		}
	case XSDInteger:
		if v, ok := new(big.Int).SetString(strings.TrimSpace(lexical), 10); ok {
			lexical = v.String()
		}
	case XSDDecimal:
		lexical = canonicalDecimal(lexical)
	case XSDDouble:
		if v, err := strconv.ParseFloat(strings.TrimSpace(lexical), 64); err == nil {
			lexical = formatFloat(v, 64)
		}
	case XSDFloat:
		if v, err := strconv.ParseFloat(strings.TrimSpace(lexical), 32); err == nil {
			lexical = formatFloat(v, 32)
		}
	}
	return Literal{Lexical: lexical, Datatype: datatype}
}

// AsTerm coerces a value to a term. Terms pass through unchanged; every
// other supported type maps to a canonically-typed literal:
//
//	string               xsd:string
//	bool                 xsd:boolean ("true"/"false")
//	int family, *big.Int xsd:integer
//	float32              xsd:float
//	float64              xsd:double
//	[]byte               xsd:base64Binary
//	time.Time            xsd:dateTime (RFC 3339)
//	time.Duration        xsd:duration
//
// The conversion set is deliberately closed; any other type fails with
// ErrUnsupportedValue.
func AsTerm(value interface{}) (Term, error) {
	switch v := value.(type) {
	case Term:
		return v, nil
	case string:
		return NewLiteral(v), nil
	case bool:
		if v {
			return LiteralTrue, nil
		}
		return LiteralFalse, nil
	case int:
		return integerLiteral(strconv.FormatInt(int64(v), 10)), nil
	case int8:
		return integerLiteral(strconv.FormatInt(int64(v), 10)), nil
	case int16:
		return integerLiteral(strconv.FormatInt(int64(v), 10)), nil
	case int32:
		return integerLiteral(strconv.FormatInt(int64(v), 10)), nil
	case int64:
		return integerLiteral(strconv.FormatInt(v, 10)), nil
	case uint:
		return integerLiteral(strconv.FormatUint(uint64(v), 10)), nil
	case uint8:
		return integerLiteral(strconv.FormatUint(uint64(v), 10)), nil
	case uint16:
		return integerLiteral(strconv.FormatUint(uint64(v), 10)), nil
	case uint32:
		return integerLiteral(strconv.FormatUint(uint64(v), 10)), nil
	case uint64:
		return integerLiteral(strconv.FormatUint(v, 10)), nil
	case *big.Int:
		return integerLiteral(v.String()), nil
	case float32:
		return Literal{Lexical: formatFloat(float64(v), 32), Datatype: XSDFloat}, nil
	case float64:
		return Literal{Lexical: formatFloat(v, 64), Datatype: XSDDouble}, nil
	case []byte:
		encoded := base64.StdEncoding.EncodeToString(v)
		return Literal{Lexical: encoded, Datatype: XSDBase64Binary}, nil
	case time.Time:
		return Literal{Lexical: v.Format(time.RFC3339Nano), Datatype: XSDDateTime}, nil
	case time.Duration:
		return Literal{Lexical: formatDuration(v), Datatype: XSDDuration}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, value)
	}
}

func integerLiteral(lexical string) Literal {
	return Literal{Lexical: lexical, Datatype: XSDInteger}
}

// formatFloat produces the shortest lexical form that round-trips.
func formatFloat(v float64, bits int) string {
	return strconv.FormatFloat(v, 'G', -1, bits)
}

// canonicalDecimal strips insignificant zeros from an xsd:decimal lexical
// form: trailing fractional zeros, a dangling decimal point, leading
// integer zeros and a redundant plus sign.
func canonicalDecimal(lexical string) string {
	s := strings.TrimSpace(lexical)
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	if s == "" || strings.Trim(s, "0123456789.") != "" || strings.Count(s, ".") > 1 {
		return lexical
	}
	intPart, fracPart, _ := strings.Cut(s, ".")
	intPart = strings.TrimLeft(intPart, "0")
	fracPart = strings.TrimRight(fracPart, "0")
	if intPart == "" {
		intPart = "0"
	}
	out := intPart
	if fracPart != "" {
		out += "." + fracPart
	}
	if neg && out != "0" {
		out = "-" + out
	}
	return out
}

// formatDuration renders a duration in the xsd:duration dayTime lexical
// space (e.g. "PT1H30M", "-PT0.5S").
func formatDuration(d time.Duration) string {
	if d == 0 {
		return "PT0S"
	}
	var b strings.Builder
	if d < 0 {
		b.WriteByte('-')
		d = -d
	}
	b.WriteString("PT")
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := float64(d) / float64(time.Second)
	if hours > 0 {
		fmt.Fprintf(&b, "%dH", hours)
	}
	if minutes > 0 {
		fmt.Fprintf(&b, "%dM", minutes)
	}
	if seconds != 0 || (hours == 0 && minutes == 0) {
		fmt.Fprintf(&b, "%sS", strconv.FormatFloat(seconds, 'f', -1, 64))
	}
	return b.String()
}
