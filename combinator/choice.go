package combinator

// ChoiceParser tries alternatives in order. See Choice.
type ChoiceParser[R any] struct {
	parsers []Parser[R]
}

// Choice returns the result of the first alternative that succeeds. Every
// alternative starts from the same index; when all of them fail, Choice
// fails at that index and the individual failures are discarded.
//
// More alternatives may be added with Add, which is how recursive grammars
// are assembled.
func Choice[R any](parsers ...Parser[R]) *ChoiceParser[R] {
	return &ChoiceParser[R]{parsers: parsers}
}

// Add appends alternatives. Call it only while assembling a grammar.
func (p *ChoiceParser[R]) Add(parsers ...Parser[R]) {
	p.parsers = append(p.parsers, parsers...)
}

// Len returns the number of alternatives.
func (p *ChoiceParser[R]) Len() int {
	return len(p.parsers)
}

func (p *ChoiceParser[R]) Transform(s State[R]) State[R] {
	return step(s, "Choice", p.transform)
}

func (p *ChoiceParser[R]) transform(s State[R]) State[R] {
	start := s.fresh()
	for _, alt := range p.parsers {
		next := alt.Transform(start)
		if !next.Failed() {
			return next
		}
	}
	return s.Fail(s.Index, &Error{Kind: NoAlternative, Offset: s.Index, Parser: "Choice"})
}
