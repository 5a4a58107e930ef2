package combinator

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// class matches the longest run of a character class anchored at the
// current offset.
type class struct {
	name        string
	description string
	re          *regexp2.Regexp
}

func newClass(name, description, pattern string) *class {
	return &class{
		name:        name,
		description: description,
		re:          regexp2.MustCompile(`\A(?:`+pattern+`)`, regexp2.None),
	}
}

var (
	digits     = newClass("Digits", "digits", `[0-9]+`)
	letters    = newClass("Letters", "letters", `[A-Za-z]+`)
	whitespace = newClass("Whitespace", "whitespace", `[ \t\r\n]+`)
)

// Digits matches a run of ASCII digits and yields it as One.
func Digits() Parser[string] { return digits }

// Letters matches a run of ASCII letters and yields it as One.
func Letters() Parser[string] { return letters }

// Whitespace matches a run of spaces, tabs, carriage returns and newlines.
func Whitespace() Parser[string] { return whitespace }

func (p *class) Transform(s State[string]) State[string] {
	return step(s, p.name, p.transform)
}

func (p *class) transform(s State[string]) State[string] {
	rest := s.Residual()
	if rest == "" {
		return s.Fail(s.Index, &Error{Kind: EndOfInput, Offset: s.Index, Parser: p.name})
	}
	m, err := p.re.FindStringMatch(rest)
	if err != nil {
		return s.Fail(s.Index, &Error{Kind: Custom, Offset: s.Index, Parser: p.name, Err: err})
	}
	if m == nil || m.Length == 0 {
		return s.Fail(s.Index, &Error{
			Kind:     ClassMismatch,
			Offset:   s.Index,
			Parser:   p.name,
			Expected: p.description,
			Got:      excerpt(rest, 1),
		})
	}
	return s.Ok(s.Index+m.Length, One(m.String()))
}

func (p *class) String() string {
	return p.name
}

type charRange struct {
	lo, hi byte
	name   string
}

// CharRange matches a single ASCII character c with lo <= c <= hi.
func CharRange(lo, hi byte) Parser[string] {
	if lo > hi {
		panic(fmt.Sprintf("combinator: CharRange(%q, %q) is empty", lo, hi))
	}
	return &charRange{lo: lo, hi: hi, name: fmt.Sprintf("CharRange(%q…%q)", lo, hi)}
}

func (p *charRange) Transform(s State[string]) State[string] {
	return step(s, p.name, p.transform)
}

func (p *charRange) transform(s State[string]) State[string] {
	rest := s.Residual()
	if rest == "" {
		return s.Fail(s.Index, &Error{Kind: EndOfInput, Offset: s.Index, Parser: "CharRange"})
	}
	if c := rest[0]; c < p.lo || c > p.hi {
		return s.Fail(s.Index, &Error{
			Kind:     ClassMismatch,
			Offset:   s.Index,
			Parser:   "CharRange",
			Expected: fmt.Sprintf("characters in %q…%q", p.lo, p.hi),
			Got:      rest[:1],
		})
	}
	return s.Ok(s.Index+1, One(rest[:1]))
}

func (p *charRange) String() string {
	return p.name
}
