package combinator

// mapped runs a parser of one result type and converts its outcome.
type mapped[R, S any] struct {
	parser Parser[R]
	name   string
	fn     func(start State[S], out State[R]) State[S]
}

func (p *mapped[R, S]) Transform(s State[S]) State[S] {
	return step(s, p.name, func(s State[S]) State[S] {
		out := p.parser.Transform(Cast[R](s))
		return p.fn(s, out)
	})
}

// Map runs p and passes its result, successful or not, through f. The
// index reached by p is kept. Map is how intermediate text is turned into
// domain values, or how a flat Many is folded back into a structured One.
func Map[R, S any](p Parser[R], f func(Result[R]) Result[S]) Parser[S] {
	return &mapped[R, S]{
		parser: p,
		name:   "Map",
		fn: func(start State[S], out State[R]) State[S] {
			if out.Result == nil {
				return State[S]{Index: out.Index, Target: out.Target}
			}
			r := f(*out.Result)
			return State[S]{Index: out.Index, Target: out.Target, Result: &r}
		},
	}
}

// MapOK converts the value of a successful step with f; failures pass
// through. An error returned by f fails the step at the offset where p
// started, unless it already is an *Error.
func MapOK[R, S any](p Parser[R], f func(Cardinality[R]) (Cardinality[S], error)) Parser[S] {
	return MapSpan(p, func(_ Span, v Cardinality[R]) (Cardinality[S], error) {
		return f(v)
	})
}

// MapSpan is like MapOK and also tells f which bytes p consumed.
func MapSpan[R, S any](p Parser[R], f func(Span, Cardinality[R]) (Cardinality[S], error)) Parser[S] {
	return &mapped[R, S]{
		parser: p,
		name:   "MapOK",
		fn: func(start State[S], out State[R]) State[S] {
			if !out.Succeeded() {
				return Cast[S](out)
			}
			v, err := f(Span{Start: start.Index, End: out.Index}, out.Value())
			if err != nil {
				return start.Fail(out.Index, customError(start.Index, err))
			}
			return start.Ok(out.Index, v)
		},
	}
}

// MapErr replaces the error of a failed step with f(err); successes pass
// through unchanged. A nil error from f keeps the original one.
func MapErr[R any](p Parser[R], f func(error) error) Parser[R] {
	return &mapped[R, R]{
		parser: p,
		name:   "MapErr",
		fn: func(start State[R], out State[R]) State[R] {
			if !out.Failed() {
				return out
			}
			if err := f(out.Result.Err); err != nil {
				return out.Fail(out.Index, err)
			}
			return out
		},
	}
}

// Skip runs p and discards its value, yielding an empty Many. It lets
// delimiters and separators of another result type take part in a grammar.
func Skip[S, R any](p Parser[R]) Parser[S] {
	return &mapped[R, S]{
		parser: p,
		name:   "Skip",
		fn: func(start State[S], out State[R]) State[S] {
			if !out.Succeeded() {
				return Cast[S](out)
			}
			return start.Ok(out.Index, Many[S]())
		},
	}
}

// Optional yields the result of p, or an empty Many without consuming
// input when p fails.
func Optional[R any](p Parser[R]) Parser[R] {
	return &mapped[R, R]{
		parser: p,
		name:   "Optional",
		fn: func(start State[R], out State[R]) State[R] {
			if out.Failed() {
				return start.Ok(start.Index, Many[R]())
			}
			return out
		},
	}
}

func customError(offset int, err error) error {
	if _, ok := AsError(err); ok {
		return err
	}
	return &Error{Kind: Custom, Offset: offset, Parser: "Map", Err: err}
}
