package combinator

type repeat[R any] struct {
	parser Parser[R]
	min    int
	name   string
}

// ZeroOrMore applies p until it fails and yields Many of everything it
// matched, which may be nothing. It never fails. The index is left after
// the last successful match.
func ZeroOrMore[R any](p Parser[R]) Parser[R] {
	return &repeat[R]{parser: p, min: 0, name: "ZeroOrMore"}
}

// OneOrMore is like ZeroOrMore but fails, at the index where it started,
// when p does not match at least once.
func OneOrMore[R any](p Parser[R]) Parser[R] {
	return &repeat[R]{parser: p, min: 1, name: "OneOrMore"}
}

func (p *repeat[R]) Transform(s State[R]) State[R] {
	return step(s, p.name, p.transform)
}

func (p *repeat[R]) transform(s State[R]) State[R] {
	var acc []R
	matched := 0
	cur := s.fresh()
	for {
		next := p.parser.Transform(cur)
		if next.Failed() {
			break
		}
		acc = append(acc, next.Value().Values()...)
		matched++
		// A match that consumed nothing would repeat forever.
		if next.Index == cur.Index {
			break
		}
		cur = next.fresh()
	}
	if matched < p.min {
		return s.Fail(s.Index, &Error{Kind: EmptyRepetition, Offset: s.Index, Parser: p.name})
	}
	return s.Ok(cur.Index, Many(acc...))
}
