package combinator

import (
	"strconv"
	"strings"
)

type literal struct {
	text string
	name string
}

// Literal matches text exactly at the current offset and yields One(text).
func Literal(text string) Parser[string] {
	return &literal{text: text, name: "Literal(" + strconv.Quote(text) + ")"}
}

func (p *literal) Transform(s State[string]) State[string] {
	return step(s, p.name, p.transform)
}

func (p *literal) transform(s State[string]) State[string] {
	rest := s.Residual()
	if rest == "" {
		return s.Fail(s.Index, &Error{Kind: EndOfInput, Offset: s.Index, Parser: "Literal"})
	}
	if !strings.HasPrefix(rest, p.text) {
		return s.Fail(s.Index, &Error{
			Kind:     Mismatch,
			Offset:   s.Index,
			Parser:   "Literal",
			Expected: p.text,
			Got:      excerpt(rest, len(p.text)),
		})
	}
	return s.Ok(s.Index+len(p.text), One(p.text))
}

func (p *literal) String() string {
	return p.name
}
