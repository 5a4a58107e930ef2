package combinator

// SequenceParser runs its children in order. See Sequence.
type SequenceParser[R any] struct {
	parsers []Parser[R]
}

// Sequence runs parsers left to right and yields Many of all their values,
// flattening aggregates. The first failing child ends the sequence and its
// failure, including its index, is returned as is.
//
// Sequence panics when called without parsers.
func Sequence[R any](parsers ...Parser[R]) *SequenceParser[R] {
	if len(parsers) == 0 {
		panic("combinator: Sequence requires at least one parser")
	}
	return &SequenceParser[R]{parsers: parsers}
}

// Push appends p to the end of the sequence. Call it only while assembling
// a grammar, before any parse runs.
func (p *SequenceParser[R]) Push(next Parser[R]) {
	p.parsers = append(p.parsers, next)
}

func (p *SequenceParser[R]) Transform(s State[R]) State[R] {
	return step(s, "Sequence", p.transform)
}

func (p *SequenceParser[R]) transform(s State[R]) State[R] {
	acc := make([]R, 0, len(p.parsers))
	cur := s.fresh()
	for _, child := range p.parsers {
		next := child.Transform(cur)
		if next.Failed() {
			return next
		}
		acc = append(acc, next.Value().Values()...)
		cur = next.fresh()
	}
	return s.Ok(cur.Index, Many(acc...))
}
