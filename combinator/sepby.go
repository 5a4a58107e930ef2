package combinator

type sepBy[R any] struct {
	separator Parser[R]
	value     Parser[R]
	min       int
	name      string
}

// SepBy matches zero or more values separated by separator and yields
// Many of the values; separator results are dropped. It stops at the
// first value or separator that fails to match, leaving the index after
// the last one that did. A trailing separator is therefore consumed.
// SepBy never fails.
func SepBy[R any](separator, value Parser[R]) Parser[R] {
	return &sepBy[R]{separator: separator, value: value, min: 0, name: "SepBy"}
}

// SepBy1 is like SepBy but fails, at its starting index, when no value
// could be parsed.
func SepBy1[R any](separator, value Parser[R]) Parser[R] {
	return &sepBy[R]{separator: separator, value: value, min: 1, name: "SepBy1"}
}

func (p *sepBy[R]) Transform(s State[R]) State[R] {
	return step(s, p.name, p.transform)
}

func (p *sepBy[R]) transform(s State[R]) State[R] {
	var acc []R
	values := 0
	cur := s.fresh()
	for {
		start := cur.Index
		v := p.value.Transform(cur)
		if v.Failed() {
			break
		}
		acc = append(acc, v.Value().Values()...)
		values++
		cur = v.fresh()

		sep := p.separator.Transform(cur)
		if sep.Failed() {
			break
		}
		cur = sep.fresh()
		// Neither value nor separator consumed input.
		if cur.Index == start {
			break
		}
	}
	if values < p.min {
		return s.Fail(s.Index, &Error{Kind: EmptyRepetition, Offset: s.Index, Parser: p.name})
	}
	return s.Ok(cur.Index, Many(acc...))
}
