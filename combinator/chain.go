package combinator

type chained[R, S any] struct {
	parser Parser[R]
	next   func(Cardinality[R]) Parser[S]
}

// Chain runs p, hands its value to next to pick the following parser and
// runs that parser from where p stopped. It allows grammars in which the
// next rule depends on what was just parsed. A failure of p is returned
// without calling next. The value of p is not part of the result; fold it
// into the returned parser if it is needed.
func Chain[R, S any](p Parser[R], next func(Cardinality[R]) Parser[S]) Parser[S] {
	return &chained[R, S]{parser: p, next: next}
}

func (p *chained[R, S]) Transform(s State[S]) State[S] {
	return step(s, "Chain", p.transform)
}

func (p *chained[R, S]) transform(s State[S]) State[S] {
	out := p.parser.Transform(Cast[R](s))
	if !out.Succeeded() {
		return Cast[S](out)
	}
	following := p.next(out.Value())
	if following == nil {
		panic("combinator: Chain function returned a nil parser")
	}
	return following.Transform(Cast[S](out))
}
