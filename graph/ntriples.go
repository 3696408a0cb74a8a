package graph

import (
	"fmt"
	"strings"
)

// renderLiteralLabel renders a label in its N-Triples concrete form:
// "lex", "lex"@lang or "lex"^^<datatype>. The implicit xsd:string datatype
// is suppressed, as N-Triples does.
func renderLiteralLabel(l LiteralLabel) string {
	lex := `"` + escapeLiteral(l.Lexical) + `"`
	if l.Lang != "" {
		return lex + "@" + l.Lang
	}
	if l.Datatype != nil && l.Datatype.IRI() != XSDStringIRI {
		return lex + "^^<" + l.Datatype.IRI() + ">"
	}
	return lex
}

// escapeLiteral escapes a lexical form for use inside a double-quoted
// N-Triples literal.
func escapeLiteral(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
